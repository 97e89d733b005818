package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/opex-tool/models"
	"github.com/opex-tool/validators"
)

// institutionUpdatable lists the institution columns UpdateInstitution may write
var institutionUpdatable = map[string]bool{
	"creator":          true,
	"creator_position": true,
	"signer":           true,
	"signer_position":  true,
}

// InstitutionOption sets an optional institution field on creation
type InstitutionOption func(*models.Institution)

// WithCreator sets who compiled the institution's records and their position
func WithCreator(name, position string) InstitutionOption {
	return func(i *models.Institution) {
		i.Creator = name
		i.CreatorPosition = position
	}
}

// WithSigner sets who signs off the institution's records and their position
func WithSigner(name, position string) InstitutionOption {
	return func(i *models.Institution) {
		i.Signer = name
		i.SignerPosition = position
	}
}

// InstitutionService handles business logic for institutions
type InstitutionService struct {
	base
	institutionRepo InstitutionStore
}

// NewInstitutionService creates a new institution service instance
func NewInstitutionService(institutionRepo InstitutionStore, opts ...Option) *InstitutionService {
	return &InstitutionService{
		base:            newBase("institution", opts),
		institutionRepo: institutionRepo,
	}
}

// AddInstitution registers an institution under project. Both the registration
// number and the name must be unique, and a project holds one institution.
func (s *InstitutionService) AddInstitution(ctx context.Context, regNr int, name string, project *models.Project, opts ...InstitutionOption) (*models.Institution, error) {
	institution := models.Institution{RegNr: regNr, Name: name}
	for _, opt := range opts {
		opt(&institution)
	}
	if err := validators.ValidateStruct(institution); err != nil {
		return nil, s.failed(fmt.Errorf("%w: %w", ErrWrongValue, err))
	}

	exists, err := s.institutionRepo.ExistsByRegNr(ctx, regNr)
	if err != nil {
		return nil, s.failed(s.unexpected(ctx, "add_institution", err))
	}
	if !exists {
		exists, err = s.institutionRepo.ExistsByName(ctx, name)
		if err != nil {
			return nil, s.failed(s.unexpected(ctx, "add_institution", err))
		}
	}
	if exists {
		return nil, s.failed(ErrInstitutionExists)
	}

	if project == nil || project.ID == 0 {
		return nil, s.failed(fmt.Errorf("%w: institution needs a stored project", ErrWrongValue))
	}
	institution.ProjectID = project.ID

	created, err := s.institutionRepo.Create(ctx, institution)
	if err != nil {
		return nil, s.failed(s.translateWriteError(ctx, "add_institution", ErrInstitutionExists, err))
	}
	created.Project = project

	s.created(ctx,
		slog.Uint64("id", uint64(created.ID)),
		slog.Int("reg_nr", created.RegNr),
		slog.Uint64("project_id", uint64(created.ProjectID)),
	)
	return &created, nil
}

// GetInstitutionByRegNr retrieves an institution by its registration number
func (s *InstitutionService) GetInstitutionByRegNr(ctx context.Context, regNr int) (*models.Institution, error) {
	institution, err := s.institutionRepo.FindByRegNr(ctx, regNr)
	if err != nil {
		return nil, s.lookupError(ctx, "get_institution", err)
	}
	return &institution, nil
}

// GetInstitutionByName retrieves an institution by its unique name
func (s *InstitutionService) GetInstitutionByName(ctx context.Context, name string) (*models.Institution, error) {
	institution, err := s.institutionRepo.FindByName(ctx, name)
	if err != nil {
		return nil, s.lookupError(ctx, "get_institution", err)
	}
	return &institution, nil
}

// UpdateInstitution writes the given columns of an institution. The
// registration number, name and owning project cannot change.
func (s *InstitutionService) UpdateInstitution(ctx context.Context, id uint, fields map[string]interface{}) error {
	if err := checkUpdatable(fields, institutionUpdatable); err != nil {
		return err
	}
	if len(fields) == 0 {
		return nil
	}

	if err := s.institutionRepo.Updates(ctx, id, fields); err != nil {
		return s.translateWriteError(ctx, "update_institution", ErrInstitutionExists, err)
	}
	return nil
}

package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/opex-tool/dto"
	"github.com/opex-tool/models"
	"github.com/opex-tool/validators"
)

// fondUpdatable lists the fond columns UpdateFond may write
var fondUpdatable = map[string]bool{
	"arch_abbreviation": true,
	"arch_title":        true,
	"fond_number":       true,
	"fond_title":        true,
	"subfond":           true,
}

// FondService handles business logic for fonds
type FondService struct {
	base
	fondRepo FondStore
}

// NewFondService creates a new fond service instance
func NewFondService(fondRepo FondStore, opts ...Option) *FondService {
	return &FondService{
		base:     newBase("fond", opts),
		fondRepo: fondRepo,
	}
}

// AddFond creates the fond of institution. The fond code must be unique and an
// institution holds one fond.
func (s *FondService) AddFond(ctx context.Context, req dto.CreateFondRequest, institution *models.Institution) (*models.Fond, error) {
	fond := models.Fond{
		FondCode:         req.FondCode,
		ArchAbbreviation: req.ArchAbbreviation,
		ArchTitle:        req.ArchTitle,
		FondNumber:       req.FondNumber,
		FondTitle:        req.FondTitle,
		Subfond:          req.Subfond,
	}
	if err := validators.ValidateStruct(fond); err != nil {
		return nil, s.failed(fmt.Errorf("%w: %w", ErrWrongValue, err))
	}

	exists, err := s.fondRepo.ExistsByCode(ctx, req.FondCode)
	if err != nil {
		return nil, s.failed(s.unexpected(ctx, "add_fond", err))
	}
	if exists {
		return nil, s.failed(ErrFondExists)
	}

	if institution == nil || institution.ID == 0 {
		return nil, s.failed(fmt.Errorf("%w: fond needs a stored institution", ErrWrongValue))
	}
	fond.InstitutionID = institution.ID

	created, err := s.fondRepo.Create(ctx, fond)
	if err != nil {
		return nil, s.failed(s.translateWriteError(ctx, "add_fond", ErrFondExists, err))
	}
	created.Institution = institution

	s.created(ctx,
		slog.String("fond_code", created.FondCode),
		slog.Uint64("institution_id", uint64(created.InstitutionID)),
	)
	return &created, nil
}

// GetFondByCode retrieves a fond by its fond code
func (s *FondService) GetFondByCode(ctx context.Context, code string) (*models.Fond, error) {
	fond, err := s.fondRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, s.lookupError(ctx, "get_fond", err)
	}
	return &fond, nil
}

// UpdateFond writes the given columns of the fond owned by institutionID.
// The fond code and owning institution cannot change.
func (s *FondService) UpdateFond(ctx context.Context, institutionID uint, fields map[string]interface{}) error {
	if err := checkUpdatable(fields, fondUpdatable); err != nil {
		return err
	}
	if len(fields) == 0 {
		return nil
	}

	if err := s.fondRepo.Updates(ctx, institutionID, fields); err != nil {
		return s.translateWriteError(ctx, "update_fond", ErrFondExists, err)
	}
	return nil
}

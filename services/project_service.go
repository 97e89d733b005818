package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/opex-tool/models"
	"github.com/opex-tool/validators"
)

// projectUpdatable lists the project columns UpdateProject may write. The
// validated flag only changes through ChangeValidationStatus.
var projectUpdatable = map[string]bool{
	"created_at": true,
}

// ProjectService handles business logic for projects
type ProjectService struct {
	base
	projectRepo ProjectStore
}

// NewProjectService creates a new project service instance
func NewProjectService(projectRepo ProjectStore, opts ...Option) *ProjectService {
	return &ProjectService{
		base:        newBase("project", opts),
		projectRepo: projectRepo,
	}
}

// AddProject creates a project with the given name. The name must be unique,
// at most 50 characters and alphanumeric.
func (s *ProjectService) AddProject(ctx context.Context, name string) (*models.Project, error) {
	project := models.Project{Name: name}
	if err := validators.ValidateStruct(project); err != nil {
		return nil, s.failed(fmt.Errorf("%w: %w", ErrWrongValue, err))
	}

	exists, err := s.projectRepo.ExistsByName(ctx, name)
	if err != nil {
		return nil, s.failed(s.unexpected(ctx, "add_project", err))
	}
	if exists {
		return nil, s.failed(ErrProjectExists)
	}

	created, err := s.projectRepo.Create(ctx, project)
	if err != nil {
		return nil, s.failed(s.translateWriteError(ctx, "add_project", ErrProjectExists, err))
	}

	s.created(ctx, slog.Uint64("id", uint64(created.ID)), slog.String("name", created.Name))
	return &created, nil
}

// GetProjectByName retrieves a project by its unique name
func (s *ProjectService) GetProjectByName(ctx context.Context, name string) (*models.Project, error) {
	project, err := s.projectRepo.FindByName(ctx, name)
	if err != nil {
		return nil, s.lookupError(ctx, "get_project", err)
	}
	return &project, nil
}

// IsValidated reports the persisted validated flag of a project
func (s *ProjectService) IsValidated(ctx context.Context, id uint) (bool, error) {
	project, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		return false, s.lookupError(ctx, "is_validated", err)
	}
	return project.IsValidated(), nil
}

// ChangeValidationStatus marks the project as validated and persists it.
// Validating an already validated project changes nothing. There is no way
// back to unvalidated.
func (s *ProjectService) ChangeValidationStatus(ctx context.Context, project *models.Project) error {
	if project == nil {
		return ErrWrongValue
	}

	if err := s.projectRepo.SetValidated(ctx, project.ID); err != nil {
		return s.translateWriteError(ctx, "change_validation_status", ErrProjectExists, err)
	}

	project.Validated = true
	s.logger.InfoContext(ctx, "project validated", slog.Uint64("id", uint64(project.ID)))
	return nil
}

// UpdateProject writes the given columns of a project. Identity columns and the
// validated flag are rejected with ErrFieldNotUpdatable.
func (s *ProjectService) UpdateProject(ctx context.Context, id uint, fields map[string]interface{}) error {
	if err := checkUpdatable(fields, projectUpdatable); err != nil {
		return err
	}
	if len(fields) == 0 {
		return nil
	}

	if err := s.projectRepo.Updates(ctx, id, fields); err != nil {
		return s.translateWriteError(ctx, "update_project", ErrProjectExists, err)
	}
	return nil
}

package repositories

import (
	"context"

	"github.com/opex-tool/database"
	"github.com/opex-tool/models"
	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	base
}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository(db *gorm.DB, retry database.RetryPolicy) *ProjectRepository {
	return &ProjectRepository{base{db: db, retry: retry}}
}

// ExistsByName checks if a project with the given name exists
func (r *ProjectRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	return r.exists(ctx, "projects.exists_by_name", &models.Project{}, "name = ?", name)
}

// Create inserts a new project into the database
func (r *ProjectRepository) Create(ctx context.Context, project models.Project) (models.Project, error) {
	err := r.create(ctx, "projects.create", &project)
	return project, err
}

// FindByID retrieves a project by its ID
func (r *ProjectRepository) FindByID(ctx context.Context, id uint) (models.Project, error) {
	var project models.Project
	err := r.first(ctx, "projects.find_by_id", &project, "id = ?", id)
	return project, err
}

// FindByName retrieves a project by its unique name
func (r *ProjectRepository) FindByName(ctx context.Context, name string) (models.Project, error) {
	var project models.Project
	err := r.first(ctx, "projects.find_by_name", &project, "name = ?", name)
	return project, err
}

// SetValidated marks a project as validated
func (r *ProjectRepository) SetValidated(ctx context.Context, id uint) error {
	return r.updates(ctx, "projects.set_validated", &models.Project{},
		map[string]interface{}{"validated": true}, "id = ?", id)
}

// Updates writes the given columns of a project
func (r *ProjectRepository) Updates(ctx context.Context, id uint, fields map[string]interface{}) error {
	return r.updates(ctx, "projects.update", &models.Project{}, fields, "id = ?", id)
}

// Count counts all projects
func (r *ProjectRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, "projects.count", &models.Project{})
}

// Delete removes a project together with its institution, fond and inventories
func (r *ProjectRepository) Delete(ctx context.Context, id uint) error {
	return r.delete(ctx, "projects.delete", &models.Project{}, "id = ?", id)
}

package repositories

import (
	"context"

	"github.com/opex-tool/database"
	"github.com/opex-tool/models"
	"gorm.io/gorm"
)

// InstitutionRepository handles database operations for institutions
type InstitutionRepository struct {
	base
}

// NewInstitutionRepository creates a new institution repository instance
func NewInstitutionRepository(db *gorm.DB, retry database.RetryPolicy) *InstitutionRepository {
	return &InstitutionRepository{base{db: db, retry: retry}}
}

// ExistsByRegNr checks if an institution with the given registration number exists
func (r *InstitutionRepository) ExistsByRegNr(ctx context.Context, regNr int) (bool, error) {
	return r.exists(ctx, "institutions.exists_by_reg_nr", &models.Institution{}, "reg_nr = ?", regNr)
}

// ExistsByName checks if an institution with the given name exists
func (r *InstitutionRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	return r.exists(ctx, "institutions.exists_by_name", &models.Institution{}, "name = ?", name)
}

// Create inserts a new institution into the database
func (r *InstitutionRepository) Create(ctx context.Context, institution models.Institution) (models.Institution, error) {
	err := r.create(ctx, "institutions.create", &institution)
	return institution, err
}

// FindByID retrieves an institution by its ID
func (r *InstitutionRepository) FindByID(ctx context.Context, id uint) (models.Institution, error) {
	var institution models.Institution
	err := r.first(ctx, "institutions.find_by_id", &institution, "id = ?", id)
	return institution, err
}

// FindByRegNr retrieves an institution by its registration number
func (r *InstitutionRepository) FindByRegNr(ctx context.Context, regNr int) (models.Institution, error) {
	var institution models.Institution
	err := r.first(ctx, "institutions.find_by_reg_nr", &institution, "reg_nr = ?", regNr)
	return institution, err
}

// FindByName retrieves an institution by its unique name
func (r *InstitutionRepository) FindByName(ctx context.Context, name string) (models.Institution, error) {
	var institution models.Institution
	err := r.first(ctx, "institutions.find_by_name", &institution, "name = ?", name)
	return institution, err
}

// Updates writes the given columns of an institution
func (r *InstitutionRepository) Updates(ctx context.Context, id uint, fields map[string]interface{}) error {
	return r.updates(ctx, "institutions.update", &models.Institution{}, fields, "id = ?", id)
}

// Count counts all institutions
func (r *InstitutionRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, "institutions.count", &models.Institution{})
}

// Delete removes an institution together with its fond and inventories
func (r *InstitutionRepository) Delete(ctx context.Context, id uint) error {
	return r.delete(ctx, "institutions.delete", &models.Institution{}, "id = ?", id)
}

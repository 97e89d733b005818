package repositories

import (
	"context"

	"github.com/opex-tool/database"
	"github.com/opex-tool/models"
	"gorm.io/gorm"
)

// FondRepository handles database operations for fonds. A fond is keyed by its
// institution's ID.
type FondRepository struct {
	base
}

// NewFondRepository creates a new fond repository instance
func NewFondRepository(db *gorm.DB, retry database.RetryPolicy) *FondRepository {
	return &FondRepository{base{db: db, retry: retry}}
}

// ExistsByCode checks if a fond with the given fond code exists
func (r *FondRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	return r.exists(ctx, "fonds.exists_by_code", &models.Fond{}, "fond_code = ?", code)
}

// Create inserts a new fond into the database
func (r *FondRepository) Create(ctx context.Context, fond models.Fond) (models.Fond, error) {
	err := r.create(ctx, "fonds.create", &fond)
	return fond, err
}

// FindByInstitutionID retrieves the fond owned by an institution
func (r *FondRepository) FindByInstitutionID(ctx context.Context, institutionID uint) (models.Fond, error) {
	var fond models.Fond
	err := r.first(ctx, "fonds.find_by_institution_id", &fond, "institution_id = ?", institutionID)
	return fond, err
}

// FindByCode retrieves a fond by its fond code
func (r *FondRepository) FindByCode(ctx context.Context, code string) (models.Fond, error) {
	var fond models.Fond
	err := r.first(ctx, "fonds.find_by_code", &fond, "fond_code = ?", code)
	return fond, err
}

// Updates writes the given columns of a fond
func (r *FondRepository) Updates(ctx context.Context, institutionID uint, fields map[string]interface{}) error {
	return r.updates(ctx, "fonds.update", &models.Fond{}, fields, "institution_id = ?", institutionID)
}

// Count counts all fonds
func (r *FondRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, "fonds.count", &models.Fond{})
}

package repositories

import (
	"context"

	"github.com/opex-tool/database"
	"github.com/opex-tool/models"
	"gorm.io/gorm"
)

// InventoryRepository handles database operations for inventory lists
type InventoryRepository struct {
	base
}

// NewInventoryRepository creates a new inventory repository instance
func NewInventoryRepository(db *gorm.DB, retry database.RetryPolicy) *InventoryRepository {
	return &InventoryRepository{base{db: db, retry: retry}}
}

// ExistsByNumber checks if an inventory with the given number exists
func (r *InventoryRepository) ExistsByNumber(ctx context.Context, number int) (bool, error) {
	return r.exists(ctx, "inventories.exists_by_number", &models.Inventory{}, "number = ?", number)
}

// Create inserts a new inventory into the database
func (r *InventoryRepository) Create(ctx context.Context, inventory models.Inventory) (models.Inventory, error) {
	err := r.create(ctx, "inventories.create", &inventory)
	return inventory, err
}

// FindByNumber retrieves an inventory, with its fond, by number
func (r *InventoryRepository) FindByNumber(ctx context.Context, number int) (models.Inventory, error) {
	var inventory models.Inventory
	err := r.retry.Do(ctx, "inventories.find_by_number", func(ctx context.Context) error {
		return r.db.WithContext(ctx).Preload("Fond").Where("number = ?", number).First(&inventory).Error
	})
	return inventory, err
}

// FindByFondID retrieves every inventory of a fond ordered by number
func (r *InventoryRepository) FindByFondID(ctx context.Context, fondID uint) ([]models.Inventory, error) {
	var inventories []models.Inventory
	err := r.retry.Do(ctx, "inventories.find_by_fond_id", func(ctx context.Context) error {
		return r.db.WithContext(ctx).Where("fond_id = ?", fondID).Order("number asc").Find(&inventories).Error
	})
	return inventories, err
}

// Updates writes the given columns of an inventory
func (r *InventoryRepository) Updates(ctx context.Context, id uint, fields map[string]interface{}) error {
	return r.updates(ctx, "inventories.update", &models.Inventory{}, fields, "id = ?", id)
}

// Count counts all inventories
func (r *InventoryRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, "inventories.count", &models.Inventory{})
}

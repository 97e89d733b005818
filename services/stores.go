package services

//go:generate mockgen -source=stores.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/opex-tool/models"
)

// ProjectStore persists projects
type ProjectStore interface {
	ExistsByName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, project models.Project) (models.Project, error)
	FindByID(ctx context.Context, id uint) (models.Project, error)
	FindByName(ctx context.Context, name string) (models.Project, error)
	SetValidated(ctx context.Context, id uint) error
	Updates(ctx context.Context, id uint, fields map[string]interface{}) error
}

// InstitutionStore persists institutions
type InstitutionStore interface {
	ExistsByRegNr(ctx context.Context, regNr int) (bool, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, institution models.Institution) (models.Institution, error)
	FindByRegNr(ctx context.Context, regNr int) (models.Institution, error)
	FindByName(ctx context.Context, name string) (models.Institution, error)
	Updates(ctx context.Context, id uint, fields map[string]interface{}) error
}

// FondStore persists fonds
type FondStore interface {
	ExistsByCode(ctx context.Context, code string) (bool, error)
	Create(ctx context.Context, fond models.Fond) (models.Fond, error)
	FindByCode(ctx context.Context, code string) (models.Fond, error)
	Updates(ctx context.Context, institutionID uint, fields map[string]interface{}) error
}

// InventoryStore persists inventory lists
type InventoryStore interface {
	ExistsByNumber(ctx context.Context, number int) (bool, error)
	Create(ctx context.Context, inventory models.Inventory) (models.Inventory, error)
	FindByNumber(ctx context.Context, number int) (models.Inventory, error)
	FindByFondID(ctx context.Context, fondID uint) ([]models.Inventory, error)
	Updates(ctx context.Context, id uint, fields map[string]interface{}) error
}

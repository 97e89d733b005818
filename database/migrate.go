package database

import (
	"fmt"
	"log/slog"

	"github.com/opex-tool/models"
	"gorm.io/gorm"
)

// Models lists the archive tables in dependency order
var Models = []interface{}{
	&models.Project{},
	&models.Institution{},
	&models.Fond{},
	&models.Inventory{},
}

// Migrate creates or updates the archive tables, their unique indexes and the
// cascading foreign keys
func Migrate(db *gorm.DB, log *slog.Logger) error {
	log.Debug("syncing archive schema")
	if err := db.AutoMigrate(Models...); err != nil {
		return fmt.Errorf("failed to migrate archive schema: %w", err)
	}
	log.Info("archive schema synced", slog.Int("tables", len(Models)))
	return nil
}

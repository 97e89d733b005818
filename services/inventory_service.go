package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/opex-tool/dto"
	"github.com/opex-tool/models"
	"github.com/opex-tool/validators"
)

// inventoryUpdatable lists the inventory columns UpdateInventory may write
var inventoryUpdatable = map[string]bool{
	"postfix":          true,
	"type":             true,
	"electronic":       true,
	"last_gv":          true,
	"start_date":       true,
	"end_date":         true,
	"storage_term":     true,
	"items_per_period": true,
	"total_items":      true,
}

// InventoryService handles business logic for inventory lists
type InventoryService struct {
	base
	inventoryRepo InventoryStore
}

// NewInventoryService creates a new inventory service instance
func NewInventoryService(inventoryRepo InventoryStore, opts ...Option) *InventoryService {
	return &InventoryService{
		base:          newBase("inventory", opts),
		inventoryRepo: inventoryRepo,
	}
}

// AddInventoryFromVVAIS creates an inventory in fond from a VVAIS record.
// A record whose number is already taken fails with ErrInventoryExists before
// its fields are checked; a record with invalid fields fails with the
// validators.FieldErrors naming them.
func (s *InventoryService) AddInventoryFromVVAIS(ctx context.Context, record map[string]interface{}, fond *models.Fond) (*models.Inventory, error) {
	if number, ok := validators.AsInt(record["number"]); ok {
		exists, err := s.inventoryRepo.ExistsByNumber(ctx, number)
		if err != nil {
			return nil, s.failed(s.unexpected(ctx, "add_inventory", err))
		}
		if exists {
			return nil, s.failed(ErrInventoryExists)
		}
	}

	fields, err := validators.ValidateInventory(record)
	if err != nil {
		return nil, s.failed(err)
	}

	if fond == nil || fond.InstitutionID == 0 {
		return nil, s.failed(fmt.Errorf("%w: inventory needs a stored fond", ErrWrongValue))
	}

	created, err := s.inventoryRepo.Create(ctx, inventoryFromFields(fields, fond.InstitutionID))
	if err != nil {
		return nil, s.failed(s.translateWriteError(ctx, "add_inventory", ErrInventoryExists, err))
	}
	created.Fond = fond

	s.created(ctx,
		slog.Uint64("id", uint64(created.ID)),
		slog.String("inventory", created.String()),
	)
	return &created, nil
}

// inventoryFromFields builds an inventory from fields already accepted by
// validators.ValidateInventory
func inventoryFromFields(fields map[string]interface{}, fondID uint) models.Inventory {
	number, _ := validators.AsInt(fields["number"])
	lastGV, _ := validators.AsInt(fields["last_gv"])
	totalItems, _ := validators.AsInt(fields["total_items"])
	kind, _ := validators.AsString(fields["type"])
	term, _ := validators.AsString(fields["storage_term"])
	postfix, _ := fields["postfix"].(string)
	electronic, _ := fields["electronic"].(bool)

	return models.Inventory{
		Number:      number,
		Postfix:     postfix,
		Type:        models.InventoryType(kind),
		Electronic:  electronic,
		LastGV:      lastGV,
		StorageTerm: models.StorageTerm(term),
		TotalItems:  &totalItems,
		FondID:      fondID,
	}
}

// ImportVVAISReport adds every record of a VVAIS report to fond. A failed
// record does not stop the import; its outcome is listed in the report.
func (s *InventoryService) ImportVVAISReport(ctx context.Context, fond *models.Fond, records []map[string]interface{}) dto.ImportReport {
	report := dto.ImportReport{
		BatchID: uuid.NewString(),
		Total:   len(records),
	}
	if fond != nil {
		report.FondCode = fond.FondCode
	}
	logger := s.logger.With(slog.String("batch_id", report.BatchID))

	for i, record := range records {
		if err := ctx.Err(); err != nil {
			for j := i; j < len(records); j++ {
				report.Failures = append(report.Failures, dto.ImportFailure{
					Index:  j,
					Number: records[j]["number"],
					Error:  err.Error(),
				})
			}
			break
		}

		if _, err := s.AddInventoryFromVVAIS(ctx, record, fond); err != nil {
			failure := dto.ImportFailure{Index: i, Number: record["number"], Error: err.Error()}
			var fieldErrs validators.FieldErrors
			if errors.As(err, &fieldErrs) {
				failure.Fields = fieldErrs
			}
			report.Failures = append(report.Failures, failure)
			continue
		}
		report.Created++
	}

	logger.InfoContext(ctx, "vvais report imported",
		slog.String("fond_code", report.FondCode),
		slog.Int("total", report.Total),
		slog.Int("created", report.Created),
		slog.Int("failed", report.Failed()),
	)
	return report
}

// GetInventoryByNumber retrieves an inventory, with its fond, by number
func (s *InventoryService) GetInventoryByNumber(ctx context.Context, number int) (*models.Inventory, error) {
	inventory, err := s.inventoryRepo.FindByNumber(ctx, number)
	if err != nil {
		return nil, s.lookupError(ctx, "get_inventory", err)
	}
	return &inventory, nil
}

// ListInventoriesByFond lists the inventories of fond ordered by number
func (s *InventoryService) ListInventoriesByFond(ctx context.Context, fond *models.Fond) ([]models.Inventory, error) {
	if fond == nil {
		return nil, ErrWrongValue
	}
	inventories, err := s.inventoryRepo.FindByFondID(ctx, fond.InstitutionID)
	if err != nil {
		return nil, s.lookupError(ctx, "list_inventories", err)
	}
	return inventories, nil
}

// UpdateInventory writes the given columns of an inventory. VVAIS fields are
// checked as in AddInventoryFromVVAIS; the number and owning fond cannot change.
func (s *InventoryService) UpdateInventory(ctx context.Context, id uint, fields map[string]interface{}) error {
	if err := checkUpdatable(fields, inventoryUpdatable); err != nil {
		return err
	}
	if len(fields) == 0 {
		return nil
	}

	normalized, err := validators.ValidateInventoryFields(fields)
	if err != nil {
		return err
	}
	for _, column := range []string{"type", "storage_term"} {
		if v, ok := normalized[column]; ok {
			normalized[column], _ = validators.AsString(v)
		}
	}

	if err := s.inventoryRepo.Updates(ctx, id, normalized); err != nil {
		return s.translateWriteError(ctx, "update_inventory", ErrInventoryExists, err)
	}
	return nil
}

package repositories

import (
	"context"

	"github.com/opex-tool/database"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// base carries the connection and retry policy every repository shares
type base struct {
	db    *gorm.DB
	retry database.RetryPolicy
}

// exists counts rows of model matching query and reports whether any were found
func (b base) exists(ctx context.Context, operation string, model interface{}, query string, args ...interface{}) (bool, error) {
	var count int64
	err := b.retry.Do(ctx, operation, func(ctx context.Context) error {
		return b.db.WithContext(ctx).Model(model).Where(query, args...).Count(&count).Error
	})
	return count > 0, err
}

// create inserts value without touching its associations
func (b base) create(ctx context.Context, operation string, value interface{}) error {
	return b.retry.Do(ctx, operation, func(ctx context.Context) error {
		return b.db.WithContext(ctx).Omit(clause.Associations).Create(value).Error
	})
}

// first loads the first row matching query into dest
func (b base) first(ctx context.Context, operation string, dest interface{}, query string, args ...interface{}) error {
	return b.retry.Do(ctx, operation, func(ctx context.Context) error {
		return b.db.WithContext(ctx).Where(query, args...).First(dest).Error
	})
}

// updates writes fields to the rows matching query. No matching row is
// reported as gorm.ErrRecordNotFound.
func (b base) updates(ctx context.Context, operation string, model interface{}, fields map[string]interface{}, query string, args ...interface{}) error {
	return b.retry.Do(ctx, operation, func(ctx context.Context) error {
		result := b.db.WithContext(ctx).Model(model).Where(query, args...).Updates(fields)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// count returns the number of rows in model's table
func (b base) count(ctx context.Context, operation string, model interface{}) (int64, error) {
	var count int64
	err := b.retry.Do(ctx, operation, func(ctx context.Context) error {
		return b.db.WithContext(ctx).Model(model).Count(&count).Error
	})
	return count, err
}

// delete removes the rows matching query; dependants go with them via ON DELETE CASCADE
func (b base) delete(ctx context.Context, operation string, model interface{}, query string, args ...interface{}) error {
	return b.retry.Do(ctx, operation, func(ctx context.Context) error {
		return b.db.WithContext(ctx).Where(query, args...).Delete(model).Error
	})
}

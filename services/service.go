package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/opex-tool/database"
	"github.com/opex-tool/metrics"
	"github.com/opex-tool/utils"
	"github.com/opex-tool/validators"
)

// Option configures a service
type Option func(*base)

// WithLogger sets the logger used for fault reports
func WithLogger(logger *slog.Logger) Option {
	return func(b *base) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithMetrics sets the metrics the service records creation outcomes on
func WithMetrics(m *metrics.Metrics) Option {
	return func(b *base) {
		b.metrics = m
	}
}

// base holds what every entity service shares
type base struct {
	entity  string
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func newBase(entity string, opts []Option) base {
	b := base{entity: entity, logger: utils.DiscardLogger()}
	for _, opt := range opts {
		opt(&b)
	}
	b.logger = b.logger.With(slog.String("entity", entity))
	return b
}

// failed records a rejected creation by the reason err carries and returns err.
// Struct violations wrap FieldErrors in ErrWrongValue and count as wrong values.
func (b base) failed(err error) error {
	var fieldErrs validators.FieldErrors
	reason := metrics.ReasonUnexpected
	switch {
	case errors.Is(err, ErrWrongValue):
		reason = metrics.ReasonWrongValue
	case errors.As(err, &fieldErrs):
		reason = metrics.ReasonInvalid
	case errors.Is(err, ErrProjectExists), errors.Is(err, ErrInstitutionExists),
		errors.Is(err, ErrFondExists), errors.Is(err, ErrInventoryExists):
		reason = metrics.ReasonExists
	}
	b.metrics.IncrementFailure(b.entity, reason)
	return err
}

// unexpected logs a fault no other outcome covers
func (b base) unexpected(ctx context.Context, operation string, err error) error {
	b.logger.ErrorContext(ctx, "unexpected error",
		slog.String("operation", operation),
		slog.Any("error", err),
	)
	return fmt.Errorf("%w: %w", ErrUnexpected, err)
}

// translateWriteError maps a failed insert or update to its outcome. A unique
// violation means a concurrent writer got past the existence check first.
func (b base) translateWriteError(ctx context.Context, operation string, exists, err error) error {
	switch {
	case database.IsUniqueViolation(err):
		return exists
	case database.IsNotFound(err):
		return ErrNotFound
	case database.IsValueError(err):
		b.logger.ErrorContext(ctx, "wrong value provided",
			slog.String("operation", operation),
			slog.Any("error", err),
		)
		return fmt.Errorf("%w: %w", ErrWrongValue, err)
	default:
		return b.unexpected(ctx, operation, err)
	}
}

// lookupError maps a failed read
func (b base) lookupError(ctx context.Context, operation string, err error) error {
	if database.IsNotFound(err) {
		return ErrNotFound
	}
	return b.unexpected(ctx, operation, err)
}

// created records a successful creation
func (b base) created(ctx context.Context, attrs ...any) {
	b.metrics.IncrementCreated(b.entity)
	b.logger.InfoContext(ctx, b.entity+" created", attrs...)
}

// checkUpdatable rejects any field outside allowed. Fields are checked in name
// order so the reported field is stable.
func checkUpdatable(fields map[string]interface{}, allowed map[string]bool) error {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if !allowed[name] {
			return fmt.Errorf("%w: %s", ErrFieldNotUpdatable, name)
		}
	}
	return nil
}

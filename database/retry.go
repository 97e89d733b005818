package database

import (
	"context"
	"log/slog"
	"time"

	"github.com/opex-tool/config"
	"k8s.io/apimachinery/pkg/util/wait"
	"k8s.io/client-go/util/retry"
)

// Default retry parameters for storage calls
const (
	DefaultRetryAttempts = 3
	DefaultRetryDelay    = time.Second
)

// RetryPolicy retries a storage call while it fails with a transient fault.
// The delay between attempts is constant.
type RetryPolicy struct {
	Attempts  int
	Delay     time.Duration
	Retryable func(error) bool
	Logger    *slog.Logger

	// OnRetry is called once per retry, after the failed attempt
	OnRetry func(operation string)
}

// NewRetryPolicy builds the policy from config, retrying on IsTransient
func NewRetryPolicy(cfg config.Config, logger *slog.Logger) RetryPolicy {
	return RetryPolicy{
		Attempts:  cfg.RetryAttempts,
		Delay:     cfg.RetryDelay,
		Retryable: IsTransient,
		Logger:    logger,
	}
}

// DefaultRetryPolicy retries transient faults 3 times, 1s apart
func DefaultRetryPolicy(logger *slog.Logger) RetryPolicy {
	return RetryPolicy{
		Attempts:  DefaultRetryAttempts,
		Delay:     DefaultRetryDelay,
		Retryable: IsTransient,
		Logger:    logger,
	}
}

// Do runs fn until it succeeds, fails with a non-retryable error, or the
// attempts run out. The last error is returned as is.
func (p RetryPolicy) Do(ctx context.Context, operation string, fn func(ctx context.Context) error) error {
	attempts := p.Attempts
	if attempts < 1 {
		attempts = 1
	}
	retryable := p.Retryable
	if retryable == nil {
		retryable = IsTransient
	}

	backoff := wait.Backoff{
		Steps:    attempts,
		Duration: p.Delay,
	}

	attempt := 0
	return retry.OnError(backoff, func(err error) bool {
		if ctx.Err() != nil || !retryable(err) {
			return false
		}
		if attempt < attempts {
			p.logRetry(operation, attempt, attempts, err)
			if p.OnRetry != nil {
				p.OnRetry(operation)
			}
		}
		return true
	}, func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		attempt++
		return fn(ctx)
	})
}

func (p RetryPolicy) logRetry(operation string, attempt, attempts int, err error) {
	if p.Logger == nil {
		return
	}
	p.Logger.Warn("transient database error, retrying",
		slog.String("operation", operation),
		slog.Int("attempt", attempt),
		slog.Int("max_attempts", attempts),
		slog.Duration("delay", p.Delay),
		slog.Any("error", err),
	)
}

package backend

import (
	"context"
	"time"

	dErrors "coreid/pkg/domain-errors"
)

// backoffMultiplier is fixed; only the attempt count and first delay vary.
const backoffMultiplier = 2

// RetryOptions configures Retry. The zero value uses three attempts starting
// at one second and doubling.
type RetryOptions struct {
	MaxRetries int
	BaseDelay  time.Duration
	// OnlyRetryable stops early on errors dErrors.IsRetryable rejects.
	OnlyRetryable bool
	// Sleep replaces the context-aware timer, for tests.
	Sleep func(ctx context.Context, d time.Duration) error
}

func (o RetryOptions) withDefaults() RetryOptions {
	if o.MaxRetries < 1 {
		o.MaxRetries = 3
	}
	if o.BaseDelay <= 0 {
		o.BaseDelay = time.Second
	}
	if o.Sleep == nil {
		o.Sleep = sleep
	}
	return o
}

// Retry calls fn at most MaxRetries times and returns its first success. When
// every attempt fails the final attempt's error is returned unchanged. The
// wait before attempt n+1 is BaseDelay * 2^n.
func Retry[T any](ctx context.Context, opts RetryOptions, fn func(ctx context.Context) (T, error)) (T, error) {
	opts = opts.withDefaults()

	var zero T
	var lastErr error
	delay := opts.BaseDelay
	for attempt := 0; attempt < opts.MaxRetries; attempt++ {
		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if attempt == opts.MaxRetries-1 {
			break
		}
		if opts.OnlyRetryable && !dErrors.IsRetryable(err) {
			break
		}
		if err := opts.Sleep(ctx, delay); err != nil {
			return zero, lastErr
		}
		delay *= backoffMultiplier
	}
	return zero, lastErr
}

// RetryDo is Retry for functions without a result.
func RetryDo(ctx context.Context, opts RetryOptions, fn func(ctx context.Context) error) error {
	_, err := Retry(ctx, opts, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

package download

import (
	"context"
	"time"
)

// RetryPolicy controls how binary asset fetches are retried.
//
// The default is MaxAttempts 0 and Cooldown 0: retry forever,
// immediately, suppressing every error until a payload arrives. The
// asset CDN fails often and transiently, and the pipeline's contract
// is to block until bytes are obtained.
type RetryPolicy struct {
	// MaxAttempts caps the number of attempts. 0 means unlimited.
	MaxAttempts int

	// Cooldown is the fixed delay between attempts.
	Cooldown time.Duration
}

// UnlimitedRetry returns the reference policy: retry forever with no
// delay.
func UnlimitedRetry() RetryPolicy {
	return RetryPolicy{}
}

// Do runs fn until it succeeds, the attempt budget is exhausted, or
// the context is cancelled.
//
// Every suppressed error is passed to onRetry (may be nil); only the
// final error of a capped policy, or the context's error, is ever
// returned. With an unlimited policy the only possible error is the
// context's.
func (p RetryPolicy) Do(ctx context.Context, fn func() error, onRetry func(err error)) error {
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := fn()
		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if onRetry != nil {
			onRetry(err)
		}
		if p.MaxAttempts > 0 && attempt >= p.MaxAttempts {
			return err
		}

		if p.Cooldown > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(p.Cooldown):
			}
		}
	}
}

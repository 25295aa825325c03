package llm

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"
)

// maxInvalidRetries caps how often a schema-violating answer is re-requested.
const maxInvalidRetries = 1

// RetryProvider re-sends requests that failed for transient reasons, waiting
// with capped exponential backoff between attempts.
type RetryProvider struct {
	inner Provider
	cfg   RetryConfig

	// jitter returns a factor in [0.8, 1.2). Replaced in tests.
	jitter func() float64
}

// WithRetry wraps p. A MaxAttempts below 1 is treated as 1.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &RetryProvider{
		inner:  p,
		cfg:    cfg,
		jitter: func() float64 { return 0.8 + 0.4*rand.Float64() },
	}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	invalid := 0
	for attempt := 1; ; attempt++ {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		if !retryable(err) || attempt >= r.cfg.MaxAttempts {
			return nil, err
		}
		var inv *ErrInvalidResponse
		if errors.As(err, &inv) {
			if invalid >= maxInvalidRetries {
				return nil, err
			}
			invalid++
		}
		if werr := sleepCtx(ctx, r.delay(attempt, err)); werr != nil {
			return nil, werr
		}
	}
}

func (r *RetryProvider) ModelID() string { return r.inner.ModelID() }

// delay is the pause after the given 1-based attempt failed with err.
// A provider's RetryAfter hint wins over the computed backoff.
func (r *RetryProvider) delay(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}
	d := r.cfg.InitialWait
	for i := 1; i < attempt; i++ {
		d = time.Duration(float64(d) * r.cfg.Multiplier)
		if r.cfg.MaxWait > 0 && d >= r.cfg.MaxWait {
			d = r.cfg.MaxWait
			break
		}
	}
	return time.Duration(float64(d) * r.jitter())
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

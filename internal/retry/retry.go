// Package retry runs an operation again when it fails with a transient
// error, waiting BaseDelay*2^i before retry i.
package retry

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

const (
	DefaultMaxAttempts = 3
	DefaultBaseDelay   = 2 * time.Second
)

// Policy bounds the number of tries and the backoff between them.
type Policy struct {
	// MaxAttempts counts every call, the first one included.
	MaxAttempts int
	BaseDelay   time.Duration
}

func DefaultPolicy() Policy {
	return Policy{MaxAttempts: DefaultMaxAttempts, BaseDelay: DefaultBaseDelay}
}

// MaxDelay caps a single backoff wait.
const MaxDelay = time.Hour

// Delay returns the wait before retry i (0-indexed), capped at MaxDelay.
func (p Policy) Delay(i int) time.Duration {
	if p.BaseDelay <= 0 {
		return 0
	}
	d := p.BaseDelay
	for ; i > 0; i-- {
		if d >= MaxDelay/2 {
			return MaxDelay
		}
		d *= 2
	}
	return min(d, MaxDelay)
}

// Classifier reports whether err is worth another attempt.
type Classifier func(err error) bool

// SleepFunc waits for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

type Retrier struct {
	policy    Policy
	retryable Classifier
	sleep     SleepFunc
	log       zerolog.Logger
}

type Option func(*Retrier)

func WithSleep(fn SleepFunc) Option {
	return func(r *Retrier) { r.sleep = fn }
}

func WithLogger(l zerolog.Logger) Option {
	return func(r *Retrier) { r.log = l }
}

func New(p Policy, retryable Classifier, opts ...Option) *Retrier {
	if p.MaxAttempts < 1 {
		p.MaxAttempts = 1
	}
	r := &Retrier{
		policy:    p,
		retryable: retryable,
		sleep:     Sleep,
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Retrier) Policy() Policy { return r.policy }

// Do calls op until it succeeds, fails with an error the classifier rejects,
// or the attempt budget is spent. The error of the last attempt is returned
// as is. If ctx is cancelled while waiting, ctx.Err() is returned.
func Do[T any](ctx context.Context, r *Retrier, op func(context.Context) (T, error)) (T, error) {
	var zero T
	for attempt := 0; ; attempt++ {
		res, err := op(ctx)
		if err == nil {
			return res, nil
		}

		if !r.retryable(err) {
			return zero, err
		}
		if attempt+1 >= r.policy.MaxAttempts {
			r.log.Warn().Err(err).Int("attempts", attempt+1).Msg("retry budget exhausted")
			return zero, err
		}

		delay := r.policy.Delay(attempt)
		r.log.Warn().
			Err(err).
			Int("attempt", attempt+1).
			Int("max_attempts", r.policy.MaxAttempts).
			Dur("delay", delay).
			Msg("transient failure, retrying")

		if err := r.sleep(ctx, delay); err != nil {
			return zero, err
		}
	}
}

// Sleep is the default SleepFunc.
func Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

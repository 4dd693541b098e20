package retry

import (
	"context"
	"math/rand"
	"time"
)

type Operation = func() error

// Classifier decides whether err is worth another attempt.
// A positive wait overrides the computed backoff delay.
type Classifier = func(err error) (retry bool, wait time.Duration)

type Config struct {
	MaxRetries    int
	BackoffFactor float64
	InitialDelay  time.Duration
	MaxDelay      time.Duration
	Jitter        time.Duration
}

func NewDefaultConfig() *Config {
	return &Config{
		MaxRetries:    3,
		BackoffFactor: 2,
		InitialDelay:  500 * time.Millisecond,
		MaxDelay:      30 * time.Second,
		Jitter:        100 * time.Millisecond,
	}
}

type Retrier struct {
	config *Config
}

func NewRetrier(config *Config) *Retrier {
	return &Retrier{
		config: config,
	}
}

func NewDefaultRetrier() *Retrier {
	return NewRetrier(NewDefaultConfig())
}

// Do retries op on any error.
func (r *Retrier) Do(ctx context.Context, op Operation) error {
	return r.DoWhen(ctx, func(error) (bool, time.Duration) { return true, 0 }, op)
}

// DoWhen retries op only while classify reports the error as retryable.
func (r *Retrier) DoWhen(ctx context.Context, classify Classifier, op Operation) error {
	var err error
	delay := r.config.InitialDelay
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

	for attempt := 0; attempt <= r.config.MaxRetries; attempt++ {
		err = op()
		if err == nil {
			return nil
		}

		retry, wait := classify(err)
		if !retry || attempt == r.config.MaxRetries {
			return err
		}

		nextDelay := wait
		if nextDelay <= 0 {
			nextDelay = delay
			if r.config.Jitter > 0 {
				nextDelay += time.Duration(rnd.Float64() * float64(r.config.Jitter))
			}
		}
		if nextDelay > r.config.MaxDelay {
			nextDelay = r.config.MaxDelay
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(nextDelay):
		}

		delay = time.Duration(float64(delay) * r.config.BackoffFactor)
		if delay > r.config.MaxDelay {
			delay = r.config.MaxDelay
		}
	}
	return err
}

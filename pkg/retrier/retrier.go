package retrier

import (
	"context"
	"time"
)

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type (
	ShouldRetryFunc func(error) bool
	OnRetryFunc     func(err error, wait time.Duration)
)

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64
	// 0 leaves only MaxElapsedTime as the limit
	MaxRetries      uint64

	// nil retries every error
	ShouldRetry ShouldRetryFunc
	// optional, called before each wait
	OnRetry OnRetryFunc
}

// ConnectConfig is used while waiting for infrastructure (database, broker) at start-up.
func ConnectConfig() Config {
	return Config{
		InitialInterval: time.Second,
		MaxInterval:     30 * time.Second,
		MaxElapsedTime:  2 * time.Minute,
		Randomization:   0.5,
		Multiplier:      2,
	}
}

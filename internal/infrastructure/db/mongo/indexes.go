package mongo

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Indexer is implemented by repositories that own collection indexes.
type Indexer interface {
	EnsureIndexes(ctx context.Context) error
}

// BackoffConfig bounds the delay between EnsureIndexes attempts.
type BackoffConfig struct {
	BaseDelay time.Duration
	MaxDelay  time.Duration
}

func DefaultBackoff() BackoffConfig {
	return BackoffConfig{BaseDelay: time.Second, MaxDelay: time.Minute}
}

func (b BackoffConfig) next(delay time.Duration) time.Duration {
	if delay <= 0 {
		return b.BaseDelay
	}
	delay *= 2
	if b.MaxDelay > 0 && delay > b.MaxDelay {
		return b.MaxDelay
	}
	return delay
}

// EnsureIndexes pings the deployment and builds every indexer's indexes,
// retrying with exponential backoff until all of them succeed. Indexers that
// already succeeded are not retried. It returns ctx.Err() when ctx ends first.
func EnsureIndexes(ctx context.Context, ping func(context.Context) error, log zerolog.Logger, backoff BackoffConfig, indexers ...Indexer) error {
	pending := indexers
	var delay time.Duration

	for attempt := 1; ; attempt++ {
		err := ping(ctx)
		if err == nil {
			remaining := pending[:0:0]
			for _, ix := range pending {
				if ixErr := ix.EnsureIndexes(ctx); ixErr != nil {
					err = ixErr
					remaining = append(remaining, ix)
				}
			}
			pending = remaining
			if len(pending) == 0 {
				log.Info().Int("attempt", attempt).Msg("mongodb indexes ready")
				return nil
			}
		}

		delay = backoff.next(delay)
		log.Warn().Err(err).Int("attempt", attempt).Dur("retry_in", delay).Msg("mongodb not ready, retrying index setup")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
}

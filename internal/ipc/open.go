package ipc

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"
)

// Opener creates a channel; OpenWithRetry calls it until it succeeds.
type Opener func() (Channel, error)

// OpenWithRetry retries open with backoff while it keeps failing. A zero or
// negative attempts value retries until ctx is done. The last error is
// returned wrapped, so ErrChannelUnavailable stays matchable.
func OpenWithRetry(ctx context.Context, open Opener, attempts int, backoff BackoffConfig, logger zerolog.Logger) (Channel, error) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	var lastErr error
	for attempt := 1; attempts <= 0 || attempt <= attempts; attempt++ {
		ch, err := open()
		if err == nil {
			if attempt > 1 {
				logger.Info().Int("attempt", attempt).Msg("ipc.OpenWithRetry opened")
			}
			return ch, nil
		}
		lastErr = err
		if errors.Is(err, ErrUnsupported) {
			return nil, err
		}
		delay := NextBackoffDelay(backoff, attempt, rng)
		logger.Warn().
			Err(err).
			Int("attempt", attempt).
			Int("max_attempts", attempts).
			Dur("retry_in", delay).
			Msg("ipc.OpenWithRetry open failed")

		if attempts > 0 && attempt == attempts {
			break
		}
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, fmt.Errorf("ipc: open aborted: %w", errors.Join(ctx.Err(), lastErr))
		case <-timer.C:
		}
	}
	return nil, fmt.Errorf("ipc: open failed after %d attempts: %w", attempts, lastErr)
}

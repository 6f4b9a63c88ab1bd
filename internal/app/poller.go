package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/five82/glide/internal/deck"
	"github.com/five82/glide/internal/state"
)

const (
	defaultPollInterval = 5 * time.Second
	maxBackoff          = 30 * time.Second
)

// LoadFunc produces the current deck from its source.
type LoadFunc func(ctx context.Context) (*deck.Deck, error)

// StartPoller launches a background goroutine that refreshes the store at a
// fixed cadence, backing off while the source keeps failing. The first refresh
// happens one interval after the call. It returns immediately.
func StartPoller(ctx context.Context, store *state.Store, load LoadFunc, interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		for {
			wait := calculateBackoff(store.Snapshot().ConsecutiveFailures, interval)
			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
			refresh(ctx, store, load, logger)
		}
	}()
}

// calculateBackoff doubles the interval for each consecutive failure, capped
// at maxBackoff.
func calculateBackoff(failures int, interval time.Duration) time.Duration {
	if failures <= 0 {
		return interval
	}
	wait := interval
	for i := 0; i < failures; i++ {
		wait *= 2
		if wait >= maxBackoff {
			return maxBackoff
		}
	}
	return wait
}

func refresh(ctx context.Context, store *state.Store, load LoadFunc, logger *slog.Logger) bool {
	d, err := load(ctx)
	if err != nil {
		store.Update(nil, err)
		logger.Warn("deck load failed", "source", store.Snapshot().Source, "error", err)
		return false
	}
	changed := store.Update(d, nil)
	if changed {
		logger.Info("deck loaded", "title", d.Title, "slides", len(d.Slides))
	}
	return changed
}

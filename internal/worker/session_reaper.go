package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// SessionStore is the subset of the session registry the reaper needs.
type SessionStore interface {
	Reap() int
	Len() int
}

// SessionReaper periodically evicts expired checkout sessions, cancelling
// any verification attempts they still hold.
type SessionReaper struct {
	store    SessionStore
	interval time.Duration
	logger   *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewSessionReaper constructs the reaper.
func NewSessionReaper(store SessionStore, interval time.Duration, logger *slog.Logger) *SessionReaper {
	if interval <= 0 {
		interval = time.Minute
	}
	return &SessionReaper{
		store:    store,
		interval: interval,
		logger:   logger,
	}
}

// Start launches the background sweep loop.
func (r *SessionReaper) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	r.wg.Add(1)
	go r.loop(runCtx)
}

// Stop waits for the sweep loop to finish.
func (r *SessionReaper) Stop() {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.mu.Unlock()

	r.wg.Wait()
}

func (r *SessionReaper) loop(ctx context.Context) {
	defer r.wg.Done()
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if evicted := r.store.Reap(); evicted > 0 {
				r.logger.Info("expired checkout sessions evicted",
					slog.Int("evicted", evicted),
					slog.Int("live", r.store.Len()),
				)
			}
		}
	}
}

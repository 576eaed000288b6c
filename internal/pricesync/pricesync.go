// Package pricesync runs the periodic price refresh in the background.
package pricesync

import (
	"context"
	"sync"
	"time"

	"carteira/internal/logger"
	"carteira/internal/services"
)

// Syncer periodically refreshes all portfolio prices. A tick that
// arrives while the previous refresh is still running is skipped
// rather than queued.
type Syncer struct {
	prices   services.PriceServicer
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a Syncer with the given refresh interval.
func New(prices services.PriceServicer, interval time.Duration) *Syncer {
	return &Syncer{
		prices:   prices,
		interval: interval,
	}
}

// Start launches the refresh loop. It returns immediately; the loop
// runs until Stop is called or the context is cancelled.
func (s *Syncer) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.run(ctx)
}

// Stop ends the refresh loop and waits for an in-flight refresh to
// finish.
func (s *Syncer) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done

	// Wait for a tick still in flight.
	s.mu.Lock()
	s.mu.Unlock() //nolint:staticcheck
}

func (s *Syncer) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			go s.tick(ctx)
		}
	}
}

// tick runs one refresh unless the previous one is still in flight.
func (s *Syncer) tick(ctx context.Context) {
	if !s.mu.TryLock() {
		logger.Get().Warnw("price refresh still running, skipping tick")
		return
	}
	defer s.mu.Unlock()

	changed, err := s.prices.RefreshAll(ctx)
	if err != nil {
		logger.Get().Errorw("background price refresh failed", "error", err)
		return
	}
	logger.Get().Infow("background price refresh done", "portfolios_changed", changed)
}

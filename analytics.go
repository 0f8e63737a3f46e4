package flagkit

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// DefaultAnalyticsFlushInterval is how often tracked evaluation counts are
// flushed when no interval is configured.
const DefaultAnalyticsFlushInterval = 10 * time.Second

// FlushFunc receives the evaluation counts accumulated since the last
// successful flush, keyed by flag name.
type FlushFunc func(ctx context.Context, counts map[string]int) error

type analyticsStore struct {
	mu   sync.Mutex
	data map[string]int
}

// AnalyticsProcessor counts flag evaluations and periodically hands the
// counts to a caller-supplied flush function. On a failed flush the counts
// are retained and included in the next attempt.
type AnalyticsProcessor struct {
	store *analyticsStore
	flush FlushFunc
	log   *slog.Logger
}

func NewAnalyticsProcessor(ctx context.Context, flush FlushFunc, interval time.Duration, log *slog.Logger) *AnalyticsProcessor {
	processor := &AnalyticsProcessor{
		store: &analyticsStore{data: make(map[string]int)},
		flush: flush,
		log:   log,
	}
	go processor.start(ctx, interval)
	return processor
}

func (a *AnalyticsProcessor) start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if err := a.Flush(ctx); err != nil {
				a.log.Warn("failed to flush analytics data", "error", err)
			}
		case <-ctx.Done():
			return
		}
	}
}

// Flush delivers the pending counts. It is a no-op when nothing was tracked.
func (a *AnalyticsProcessor) Flush(ctx context.Context) error {
	a.store.mu.Lock()
	defer a.store.mu.Unlock()
	if len(a.store.data) == 0 {
		return nil
	}
	if err := a.flush(ctx, a.store.data); err != nil {
		return err
	}
	a.store.data = make(map[string]int)
	return nil
}

// TrackFlag records one evaluation of the named flag.
func (a *AnalyticsProcessor) TrackFlag(flagName string) {
	a.store.mu.Lock()
	defer a.store.mu.Unlock()
	a.store.data[flagName]++
}

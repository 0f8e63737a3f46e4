package flagkit

import (
	"context"
	"log/slog"
	"time"

	"github.com/flagkit/flagkit-go/flagengine/filters"
)

type Option func(c *Client)

type config struct {
	analyticsFlush         FlushFunc
	analyticsFlushInterval time.Duration
}

func defaultConfig() config {
	return config{
		analyticsFlushInterval: DefaultAnalyticsFlushInterval,
	}
}

// WithLogger sets the structured logger used for snapshot swaps, rejected
// configurations and analytics failures.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// WithRegistry replaces the default filter registry, typically to add custom
// filter kinds or to restrict the built-in set.
func WithRegistry(registry *filters.Registry) Option {
	return func(c *Client) {
		c.registry = registry
	}
}

// WithAnalytics enables evaluation counting. Counts are flushed periodically
// through fn.
func WithAnalytics(fn FlushFunc) Option {
	return func(c *Client) {
		c.config.analyticsFlush = fn
	}
}

// WithAnalyticsFlushInterval overrides the analytics flush period.
func WithAnalyticsFlushInterval(interval time.Duration) Option {
	return func(c *Client) {
		c.config.analyticsFlushInterval = interval
	}
}

// WithContext bounds the lifetime of the client's background goroutines.
func WithContext(ctx context.Context) Option {
	return func(c *Client) {
		c.ctx = ctx
	}
}

// Package flagkit is a deterministic, stateless feature-flag evaluation
// library. A Client holds an immutable snapshot of flag configurations and
// decides flags against caller-supplied evaluation contexts. It performs no
// I/O of its own: configuration arrives as parsed records or raw JSON bytes,
// and reloads replace the whole snapshot atomically.
package flagkit

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync/atomic"

	"github.com/flagkit/flagkit-go/flagengine"
	"github.com/flagkit/flagkit-go/flagengine/evalcontext"
	"github.com/flagkit/flagkit-go/flagengine/filters"
	"github.com/flagkit/flagkit-go/flagengine/flags"
)

// Client evaluates feature flags against a configuration snapshot.
//
// Evaluations are lock-free: the snapshot is read through an atomic pointer
// and is never mutated in place, so concurrent evaluations always observe one
// consistent configuration. Publishing new configuration swaps the pointer.
type Client struct {
	config    config
	registry  *filters.Registry
	snapshot  atomic.Pointer[flagengine.Snapshot]
	analytics *AnalyticsProcessor
	log       *slog.Logger
	ctx       context.Context
}

// New creates a Client. Without options it uses the default filter registry,
// a discarding logger and no analytics.
func New(options ...Option) *Client {
	c := &Client{
		config:   defaultConfig(),
		registry: filters.DefaultRegistry(),
		log:      slog.New(discardHandler{}),
		ctx:      context.Background(),
	}

	for _, opt := range options {
		opt(c)
	}

	if c.config.analyticsFlush != nil {
		c.analytics = NewAnalyticsProcessor(c.ctx, c.config.analyticsFlush, c.config.analyticsFlushInterval, c.log)
	}

	return c
}

// UpdateFlags compiles configs into a new snapshot and publishes it. On any
// configuration error the previous snapshot stays in place, so in-flight and
// subsequent evaluations keep a consistent view.
func (c *Client) UpdateFlags(configs []flags.FlagConfiguration) error {
	snapshot, err := flagengine.NewSnapshot(c.registry, configs)
	if err != nil {
		c.log.Error("rejected flag configuration", "error", err)
		return err
	}
	c.snapshot.Store(snapshot)
	c.log.Info("flag configuration updated",
		slog.String("snapshot", snapshot.ID()),
		slog.Int("flags", len(configs)),
	)
	return nil
}

// LoadConfiguration parses a raw configuration document and publishes it.
func (c *Client) LoadConfiguration(raw []byte) error {
	configs, err := ParseConfiguration(raw)
	if err != nil {
		return err
	}
	return c.UpdateFlags(configs)
}

// IsEnabled decides the named flag for the given context. A flag that is
// missing from the snapshot is an UnknownFlagError, never a silent false.
func (c *Client) IsEnabled(name string, ec evalcontext.Context) (bool, error) {
	snapshot := c.snapshot.Load()
	if snapshot == nil {
		return false, &UnknownFlagError{Name: name}
	}
	enabled, err := snapshot.Evaluate(name, ec)
	if err != nil {
		return false, err
	}
	if c.analytics != nil {
		c.analytics.TrackFlag(name)
	}
	return enabled, nil
}

// EvaluateFilter builds a single filter from raw parameters and evaluates it
// directly, outside any flag. Useful for testing filter configurations.
func (c *Client) EvaluateFilter(kind string, parameters json.RawMessage, ec evalcontext.Context) (bool, error) {
	f, err := c.registry.New(kind, parameters)
	if err != nil {
		return false, err
	}
	return f.Evaluate(ec)
}

// HasFlag reports whether the current snapshot has a configuration for name.
func (c *Client) HasFlag(name string) bool {
	snapshot := c.snapshot.Load()
	return snapshot != nil && snapshot.HasFlag(name)
}

// Flags returns the configurations of the current snapshot.
func (c *Client) Flags() []flags.FlagConfiguration {
	snapshot := c.snapshot.Load()
	if snapshot == nil {
		return nil
	}
	return snapshot.Flags()
}

// Registry exposes the client's filter registry so callers can register
// custom filter kinds before loading configuration.
func (c *Client) Registry() *filters.Registry {
	return c.registry
}

// discardHandler drops all records. slog.DiscardHandler needs go 1.24 and
// this module supports 1.22.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }

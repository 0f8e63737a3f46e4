// Package flagengine compiles flag configurations into immutable snapshots
// and evaluates them. A snapshot is a pure function of its configurations: a
// fixed snapshot, flag name and context always produce the same decision
// (modulo filters that intentionally read the clock or randomness).
package flagengine

import (
	"time"

	"github.com/google/uuid"

	"github.com/flagkit/flagkit-go/flagengine/evalcontext"
	"github.com/flagkit/flagkit-go/flagengine/filters"
	"github.com/flagkit/flagkit-go/flagengine/flags"
)

// CompiledFlag is a FlagConfiguration with its filters resolved and their
// parameters validated.
type CompiledFlag struct {
	config  flags.FlagConfiguration
	filters []filters.Filter
}

// Evaluate combines the flag's filter results per its combinator. Evaluation
// short-circuits: ALL stops at the first false, ANY at the first true.
// Filters are pure, so short-circuiting is not observable.
func (cf *CompiledFlag) Evaluate(ec evalcontext.Context) (bool, error) {
	if len(cf.filters) == 0 {
		return cf.config.Default, nil
	}
	all := cf.config.EffectiveCombinator() == flags.All
	for _, f := range cf.filters {
		enabled, err := f.Evaluate(ec)
		if err != nil {
			return false, err
		}
		if all && !enabled {
			return false, nil
		}
		if !all && enabled {
			return true, nil
		}
	}
	return all, nil
}

// Snapshot is an immutable, point-in-time view of all flag configurations.
// Compilation fails fast: unknown filter kinds, invalid parameters and
// duplicate flag names are rejected before the snapshot can serve a single
// evaluation.
type Snapshot struct {
	id        string
	createdAt time.Time
	flags     map[string]*CompiledFlag
	configs   []flags.FlagConfiguration
}

// NewSnapshot compiles configs against the registry.
func NewSnapshot(registry *filters.Registry, configs []flags.FlagConfiguration) (*Snapshot, error) {
	s := &Snapshot{
		id:        uuid.NewString(),
		createdAt: time.Now(),
		flags:     make(map[string]*CompiledFlag, len(configs)),
		configs:   append([]flags.FlagConfiguration(nil), configs...),
	}
	for _, config := range configs {
		if err := config.Validate(); err != nil {
			return nil, err
		}
		if _, exists := s.flags[config.Name]; exists {
			return nil, &DuplicateFlagError{Name: config.Name}
		}
		cf := &CompiledFlag{config: config}
		for _, ref := range config.Filters {
			f, err := registry.New(ref.Kind, ref.Parameters)
			if err != nil {
				return nil, err
			}
			cf.filters = append(cf.filters, f)
		}
		s.flags[config.Name] = cf
	}
	return s, nil
}

// ID identifies the snapshot in logs.
func (s *Snapshot) ID() string {
	return s.id
}

func (s *Snapshot) CreatedAt() time.Time {
	return s.createdAt
}

// Evaluate decides the named flag for the given context. A name with no
// configuration is a typed failure, never a silent false: callers can tell
// "flag is off" apart from "flag is missing".
func (s *Snapshot) Evaluate(name string, ec evalcontext.Context) (bool, error) {
	cf, exists := s.flags[name]
	if !exists {
		return false, &UnknownFlagError{Name: name}
	}
	return cf.Evaluate(ec)
}

// HasFlag reports whether the snapshot holds a configuration for name.
func (s *Snapshot) HasFlag(name string) bool {
	_, exists := s.flags[name]
	return exists
}

// Flags returns the configurations the snapshot was compiled from, in their
// original order.
func (s *Snapshot) Flags() []flags.FlagConfiguration {
	return append([]flags.FlagConfiguration(nil), s.configs...)
}

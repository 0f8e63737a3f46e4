// Package flags defines the configuration model of a feature flag.
package flags

import (
	"encoding/json"
	"fmt"
)

// Combinator decides how the results of a flag's filters are combined.
type Combinator string

const (
	// All requires every filter to be true.
	All Combinator = "ALL"
	// Any requires at least one filter to be true.
	Any Combinator = "ANY"
)

// FilterReference names a filter kind together with its raw parameters.
// Parameters are decoded and validated when a snapshot is compiled, not when
// a flag is evaluated.
type FilterReference struct {
	Kind       string          `json:"kind"`
	Parameters json.RawMessage `json:"parameters,omitempty"`
}

// FlagConfiguration is the declarative form of one flag. Order of filters is
// preserved for evaluation and logging but does not affect the boolean
// result. A flag with no filters evaluates to Default.
type FlagConfiguration struct {
	Name       string            `json:"name"`
	Combinator Combinator        `json:"combinator,omitempty"`
	Default    bool              `json:"default,omitempty"`
	Filters    []FilterReference `json:"filters,omitempty"`
}

// EffectiveCombinator returns the configured combinator, defaulting to All.
func (fc *FlagConfiguration) EffectiveCombinator() Combinator {
	if fc.Combinator == "" {
		return All
	}
	return fc.Combinator
}

// Validate checks the configuration shape. Filter parameters are validated
// separately, by the factories of their kinds.
func (fc *FlagConfiguration) Validate() error {
	if fc.Name == "" {
		return &InvalidConfigurationError{Reason: "flag with empty name"}
	}
	switch fc.Combinator {
	case "", All, Any:
	default:
		return &InvalidConfigurationError{
			Flag:   fc.Name,
			Reason: fmt.Sprintf("unknown combinator %q", fc.Combinator),
		}
	}
	for _, ref := range fc.Filters {
		if ref.Kind == "" {
			return &InvalidConfigurationError{Flag: fc.Name, Reason: "filter reference with empty kind"}
		}
	}
	return nil
}

// InvalidConfigurationError reports a structurally invalid flag configuration.
type InvalidConfigurationError struct {
	Flag   string
	Reason string
}

func (e *InvalidConfigurationError) Error() string {
	if e.Flag == "" {
		return "invalid flag configuration: " + e.Reason
	}
	return fmt.Sprintf("invalid configuration for flag %q: %s", e.Flag, e.Reason)
}

// Package filters implements the evaluation rules a flag is composed of.
//
// Every filter kind has a compiled Filter form and a Factory that builds it
// from raw JSON parameters. Factories validate eagerly so that a bad
// configuration is rejected when it is loaded, not when it is evaluated.
package filters

import (
	"encoding/json"

	"github.com/flagkit/flagkit-go/flagengine/evalcontext"
)

// Built-in filter kind names, as they appear in configuration documents.
const (
	KindBoolean    = "boolean"
	KindPercentage = "percentage"
	KindTimeWindow = "time_window"
	KindTargeting  = "targeting"
	KindLanguage   = "language"
	KindVersion    = "version"
	KindJSONLogic  = "jsonlogic"
)

// Filter is a compiled evaluation rule. Implementations are immutable and
// safe for concurrent use; Evaluate is pure apart from reading the context
// clock and, for non-sticky percentage rollouts, a randomness source.
type Filter interface {
	Evaluate(ec evalcontext.Context) (bool, error)
}

// Factory builds a Filter from raw configuration parameters.
type Factory func(parameters json.RawMessage) (Filter, error)

// decodeParameters unmarshals raw parameters into a typed parameter struct.
// Missing parameters decode as the zero value; factories decide which fields
// are required.
func decodeParameters(kind string, raw json.RawMessage, into any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, into); err != nil {
		return &FilterParameterError{Kind: kind, Err: err}
	}
	return nil
}

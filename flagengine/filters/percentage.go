package filters

import (
	"encoding/json"
	"math/rand"

	"github.com/flagkit/flagkit-go/flagengine/evalcontext"
	"github.com/flagkit/flagkit-go/flagengine/utils"
)

// PercentageFilter rolls a feature out to a fraction of evaluations.
//
// When the context carries a stable identifier the decision is sticky: the
// identifier hashes to a bucket in [0,100) that never changes. Anonymous
// contexts draw a fresh uniform value on every call instead.
type PercentageFilter struct {
	Threshold float64
}

// NewPercentageFilter validates the threshold and returns the filter.
func NewPercentageFilter(threshold float64) (PercentageFilter, error) {
	if threshold < 0 || threshold > 100 {
		return PercentageFilter{}, &InvalidPercentageThresholdError{Threshold: threshold}
	}
	return PercentageFilter{Threshold: threshold}, nil
}

func (f PercentageFilter) Evaluate(ec evalcontext.Context) (bool, error) {
	if f.Threshold == 0 {
		return false, nil
	}
	if f.Threshold == 100 {
		return true, nil
	}
	if id := ec.Identifier(); id != "" {
		return utils.PercentageForKeys([]string{id}, 1) < f.Threshold, nil
	}
	return randomPercentage() < f.Threshold, nil
}

func uniformPercentage() float64 {
	return rand.Float64() * 100
}

var randomPercentage = uniformPercentage

// MockSetRandomPercentage replaces the anonymous-context randomness source
// for tests; nil restores it.
func MockSetRandomPercentage(fn func() float64) {
	if fn == nil {
		fn = uniformPercentage
	}
	randomPercentage = fn
}

type percentageParameters struct {
	Threshold *float64 `json:"threshold"`
}

func newPercentageFilter(raw json.RawMessage) (Filter, error) {
	var p percentageParameters
	if err := decodeParameters(KindPercentage, raw, &p); err != nil {
		return nil, err
	}
	var threshold float64
	if p.Threshold != nil {
		threshold = *p.Threshold
	}
	return NewPercentageFilter(threshold)
}

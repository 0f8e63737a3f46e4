package filters

import (
	"encoding/json"

	"github.com/flagkit/flagkit-go/flagengine/evalcontext"
)

// BooleanFilter returns its configured value for every context. It exists so
// that plain on/off flags go through the same dispatch as everything else.
type BooleanFilter struct {
	Value bool
}

func (f BooleanFilter) Evaluate(_ evalcontext.Context) (bool, error) {
	return f.Value, nil
}

type booleanParameters struct {
	Value bool `json:"value"`
}

func newBooleanFilter(raw json.RawMessage) (Filter, error) {
	var p booleanParameters
	if err := decodeParameters(KindBoolean, raw, &p); err != nil {
		return nil, err
	}
	return BooleanFilter{Value: p.Value}, nil
}

package filters

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/diegoholiveira/jsonlogic/v3"

	"github.com/flagkit/flagkit-go/flagengine/evalcontext"
)

// JSONLogicFilter applies a JSONLogic rule to the context document. The
// filter is true only when the rule evaluates to boolean true; any other
// result, including non-boolean values, is false.
type JSONLogicFilter struct {
	Rule json.RawMessage
}

// NewJSONLogicFilter validates the rule and returns the filter.
func NewJSONLogicFilter(rule json.RawMessage) (JSONLogicFilter, error) {
	if len(rule) == 0 {
		return JSONLogicFilter{}, &FilterParameterError{Kind: KindJSONLogic, Err: errors.New("missing rule")}
	}
	if !jsonlogic.IsValid(bytes.NewReader(rule)) {
		return JSONLogicFilter{}, &FilterParameterError{Kind: KindJSONLogic, Err: errors.New("invalid jsonlogic rule")}
	}
	return JSONLogicFilter{Rule: rule}, nil
}

func (f JSONLogicFilter) Evaluate(ec evalcontext.Context) (bool, error) {
	data, err := json.Marshal(ec.Document())
	if err != nil {
		return false, err
	}
	var result bytes.Buffer
	if err := jsonlogic.Apply(bytes.NewReader(f.Rule), bytes.NewReader(data), &result); err != nil {
		return false, err
	}
	var decision bool
	if err := json.Unmarshal(result.Bytes(), &decision); err != nil {
		return false, nil
	}
	return decision, nil
}

type jsonLogicParameters struct {
	Rule json.RawMessage `json:"rule"`
}

func newJSONLogicFilter(raw json.RawMessage) (Filter, error) {
	var p jsonLogicParameters
	if err := decodeParameters(KindJSONLogic, raw, &p); err != nil {
		return nil, err
	}
	return NewJSONLogicFilter(p.Rule)
}

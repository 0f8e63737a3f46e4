package filters

import (
	"encoding/json"
	"time"

	"github.com/flagkit/flagkit-go/flagengine/evalcontext"
	"github.com/flagkit/flagkit-go/flagengine/utils"
)

// TimeWindowFilter is true while the context timestamp falls inside the
// half-open interval [Start, End). A nil bound leaves that side of the window
// open.
type TimeWindowFilter struct {
	Start *time.Time
	End   *time.Time
}

// NewTimeWindowFilter validates the bounds and returns the filter. At least
// one bound must be set, and when both are, the start must precede the end.
func NewTimeWindowFilter(start, end *time.Time) (TimeWindowFilter, error) {
	if start == nil && end == nil {
		return TimeWindowFilter{}, &InvalidTimeWindowError{Reason: "at least one of start and end must be set"}
	}
	if start != nil && end != nil && !start.Before(*end) {
		return TimeWindowFilter{}, &InvalidTimeWindowError{Reason: "start must precede end"}
	}
	return TimeWindowFilter{Start: start, End: end}, nil
}

func (f TimeWindowFilter) Evaluate(ec evalcontext.Context) (bool, error) {
	now := ec.Now()
	if f.Start != nil && now.Before(*f.Start) {
		return false, nil
	}
	if f.End != nil && !now.Before(*f.End) {
		return false, nil
	}
	return true, nil
}

type timeWindowParameters struct {
	Start *string `json:"start"`
	End   *string `json:"end"`
}

func newTimeWindowFilter(raw json.RawMessage) (Filter, error) {
	var p timeWindowParameters
	if err := decodeParameters(KindTimeWindow, raw, &p); err != nil {
		return nil, err
	}
	var start, end *time.Time
	if p.Start != nil {
		t, err := utils.ParseTimestamp(*p.Start)
		if err != nil {
			return nil, &InvalidTimeWindowError{Reason: "unparsable start " + *p.Start}
		}
		start = &t
	}
	if p.End != nil {
		t, err := utils.ParseTimestamp(*p.End)
		if err != nil {
			return nil, &InvalidTimeWindowError{Reason: "unparsable end " + *p.End}
		}
		end = &t
	}
	return NewTimeWindowFilter(start, end)
}

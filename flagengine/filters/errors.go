package filters

import "fmt"

// UnknownFilterKindError is returned when a configuration references a filter
// kind that was never registered. It surfaces at snapshot compile time so
// that misconfigured flags never silently evaluate to false.
type UnknownFilterKindError struct {
	Kind string
}

func (e *UnknownFilterKindError) Error() string {
	return fmt.Sprintf("unknown filter kind %q", e.Kind)
}

// DuplicateFilterKindError is returned when a filter kind is registered twice.
type DuplicateFilterKindError struct {
	Kind string
}

func (e *DuplicateFilterKindError) Error() string {
	return fmt.Sprintf("filter kind %q is already registered", e.Kind)
}

// FilterParameterError wraps a parameter decoding or validation failure.
type FilterParameterError struct {
	Kind string
	Err  error
}

func (e *FilterParameterError) Error() string {
	return fmt.Sprintf("invalid parameters for filter kind %q: %v", e.Kind, e.Err)
}

func (e *FilterParameterError) Unwrap() error {
	return e.Err
}

// InvalidTimeWindowError is returned for a time window with no bounds, an
// unparsable bound, or a start that does not precede its end.
type InvalidTimeWindowError struct {
	Reason string
}

func (e *InvalidTimeWindowError) Error() string {
	return "invalid time window: " + e.Reason
}

// InvalidPercentageThresholdError is returned for a rollout threshold outside
// the range [0,100].
type InvalidPercentageThresholdError struct {
	Threshold float64
}

func (e *InvalidPercentageThresholdError) Error() string {
	return fmt.Sprintf("percentage threshold %v is outside [0,100]", e.Threshold)
}

// InvalidAudienceConfigurationError is returned for a targeting audience with
// no members or a group rollout outside the range [0,100].
type InvalidAudienceConfigurationError struct {
	Reason string
}

func (e *InvalidAudienceConfigurationError) Error() string {
	return "invalid targeting audience: " + e.Reason
}

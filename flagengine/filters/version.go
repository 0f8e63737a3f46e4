package filters

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/blang/semver/v4"

	"github.com/flagkit/flagkit-go/flagengine/evalcontext"
)

// Comparison operators accepted by the version filter.
const (
	VersionEqual                = "EQUAL"
	VersionNotEqual             = "NOT_EQUAL"
	VersionGreaterThan          = "GREATER_THAN"
	VersionGreaterThanInclusive = "GREATER_THAN_INCLUSIVE"
	VersionLessThan             = "LESS_THAN"
	VersionLessThanInclusive    = "LESS_THAN_INCLUSIVE"
)

// VersionFilter compares a semver context attribute against a configured
// version. Contexts whose attribute is missing or not valid semver evaluate
// to false rather than erroring, so that old clients sending junk versions
// simply stay off the feature.
type VersionFilter struct {
	Attribute string
	Operator  string
	Version   semver.Version
}

// NewVersionFilter validates the operator and version and returns the filter.
func NewVersionFilter(attribute, operator, version string) (VersionFilter, error) {
	if attribute == "" {
		return VersionFilter{}, &FilterParameterError{Kind: KindVersion, Err: errors.New("missing attribute")}
	}
	switch operator {
	case VersionEqual, VersionNotEqual, VersionGreaterThan, VersionGreaterThanInclusive,
		VersionLessThan, VersionLessThanInclusive:
	default:
		return VersionFilter{}, &FilterParameterError{Kind: KindVersion, Err: fmt.Errorf("unknown operator %q", operator)}
	}
	v, err := semver.Make(version)
	if err != nil {
		return VersionFilter{}, &FilterParameterError{Kind: KindVersion, Err: fmt.Errorf("invalid version %q: %w", version, err)}
	}
	return VersionFilter{Attribute: attribute, Operator: operator, Version: v}, nil
}

func (f VersionFilter) Evaluate(ec evalcontext.Context) (bool, error) {
	raw, ok := ec.ResolveString(f.Attribute)
	if !ok {
		return false, nil
	}
	contextVersion, err := semver.Make(raw)
	if err != nil {
		return false, nil
	}
	switch f.Operator {
	case VersionEqual:
		return contextVersion.EQ(f.Version), nil
	case VersionNotEqual:
		return contextVersion.NE(f.Version), nil
	case VersionGreaterThan:
		return contextVersion.GT(f.Version), nil
	case VersionGreaterThanInclusive:
		return contextVersion.GE(f.Version), nil
	case VersionLessThan:
		return contextVersion.LT(f.Version), nil
	case VersionLessThanInclusive:
		return contextVersion.LTE(f.Version), nil
	}
	return false, nil
}

type versionParameters struct {
	Attribute string `json:"attribute"`
	Operator  string `json:"operator"`
	Version   string `json:"version"`
}

func newVersionFilter(raw json.RawMessage) (Filter, error) {
	var p versionParameters
	if err := decodeParameters(KindVersion, raw, &p); err != nil {
		return nil, err
	}
	return NewVersionFilter(p.Attribute, p.Operator, p.Version)
}

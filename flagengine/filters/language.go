package filters

import (
	"encoding/json"
	"errors"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/flagkit/flagkit-go/flagengine/evalcontext"
)

// DefaultLanguageAttribute is the context attribute the language filter reads
// when the configuration does not name one. Callers typically store the raw
// Accept-Language header under it.
const DefaultLanguageAttribute = "accept_language"

// LanguageFilter matches a context-supplied language header against an
// allow-list of language tags.
//
// Matching is deliberately permissive substring containment, in either
// direction: an allow-listed "en" matches a header of "en-GB", and a bare
// header of "en" matches an allow-listed "en-GB". Callers relying on exact
// tags should not use this filter as a strict equality check.
type LanguageFilter struct {
	Attribute string
	Allowed   []string
}

// NewLanguageFilter validates the allow-list and returns the filter.
func NewLanguageFilter(attribute string, allowed []string) (LanguageFilter, error) {
	if attribute == "" {
		attribute = DefaultLanguageAttribute
	}
	if len(allowed) == 0 {
		return LanguageFilter{}, &FilterParameterError{Kind: KindLanguage, Err: errors.New("empty allow-list")}
	}
	return LanguageFilter{Attribute: attribute, Allowed: slices.Clone(allowed)}, nil
}

func (f LanguageFilter) Evaluate(ec evalcontext.Context) (bool, error) {
	header, ok := ec.ResolveString(f.Attribute)
	if !ok || header == "" {
		return false, nil
	}
	for _, tag := range f.Allowed {
		if strings.Contains(header, tag) || strings.Contains(tag, header) {
			return true, nil
		}
	}
	return false, nil
}

type languageParameters struct {
	Attribute string   `json:"attribute"`
	Allowed   []string `json:"allowed"`
}

func newLanguageFilter(raw json.RawMessage) (Filter, error) {
	var p languageParameters
	if err := decodeParameters(KindLanguage, raw, &p); err != nil {
		return nil, err
	}
	return NewLanguageFilter(p.Attribute, p.Allowed)
}

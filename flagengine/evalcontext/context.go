// Package evalcontext carries the request-scoped inputs of a flag evaluation.
//
// A Context is an immutable bag of attributes supplied by the caller: the
// stable identifier of the current user or session, group memberships, the
// evaluation timestamp, and arbitrary attributes such as header values. The
// engine never reaches into ambient request state; everything it may look at
// has to be put into the Context first.
package evalcontext

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ohler55/ojg/jp"
)

// Context is contextual data used during feature flag evaluation.
//
// The zero value carries no identifier, no groups and no attributes.
type Context struct {
	identifier string
	groups     []string
	now        time.Time
	attributes map[string]any
}

// NewContext creates an evaluation context for an identity.
//
// An empty identifier represents an anonymous (transient) evaluation:
// percentage rollouts will not be sticky for it.
func NewContext(identifier string, attributes map[string]any) Context {
	ec := Context{identifier: identifier}
	// Store a copy of the attribute map
	ec.attributes = make(map[string]any, len(attributes))
	for k, v := range attributes {
		ec.attributes[k] = v
	}
	return ec
}

// NewTransientContext is equivalent to NewContext("", attributes).
func NewTransientContext(attributes map[string]any) Context {
	return NewContext("", attributes)
}

// WithGroups returns a copy of the context with the given group memberships.
func (c Context) WithGroups(groups ...string) Context {
	c.groups = append([]string(nil), groups...)
	return c
}

// WithTimestamp returns a copy of the context pinned to the given evaluation
// time. Contexts without a timestamp are evaluated at the wall clock time.
func (c Context) WithTimestamp(t time.Time) Context {
	c.now = t
	return c
}

func (c Context) Identifier() string {
	return c.identifier
}

func (c Context) Groups() []string {
	return append([]string(nil), c.groups...)
}

// Now returns the evaluation timestamp, falling back to time.Now when the
// caller did not pin one.
func (c Context) Now() time.Time {
	if c.now.IsZero() {
		return time.Now()
	}
	return c.now
}

// Attribute returns the raw attribute stored under key.
func (c Context) Attribute(key string) (any, bool) {
	v, ok := c.attributes[key]
	return v, ok
}

// Resolve looks up a property in the context. Properties starting with "$."
// are treated as JSONPath expressions over the context document; anything
// else is a direct attribute lookup. A nil result means the property is not
// set.
func (c Context) Resolve(property string) any {
	if strings.HasPrefix(property, "$.") {
		p, err := jp.ParseString(property)
		if err != nil {
			return nil
		}
		results := p.Get(c.Document())
		if len(results) > 0 {
			return results[0]
		}
		return nil
	}
	if v, ok := c.attributes[property]; ok {
		return v
	}
	return nil
}

// ResolveString is Resolve with the result coerced to a string.
func (c Context) ResolveString(property string) (string, bool) {
	v := c.Resolve(property)
	if v == nil {
		return "", false
	}
	return ToString(v), true
}

// Document renders the context as a plain map, the shape seen by JSONPath
// properties and JSONLogic rules.
func (c Context) Document() map[string]any {
	attrs := make(map[string]any, len(c.attributes))
	for k, v := range c.attributes {
		attrs[k] = v
	}
	doc := map[string]any{
		"identifier": c.identifier,
		"groups":     c.Groups(),
		"attributes": attrs,
	}
	if !c.now.IsZero() {
		doc["timestamp"] = c.now.Format(time.RFC3339)
	}
	return doc
}

// ToString renders a context value the way conditions compare it.
func ToString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	}
	return fmt.Sprint(value)
}

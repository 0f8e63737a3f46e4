package evalcontext_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/flagkit/flagkit-go/flagengine/evalcontext"
)

func TestNewContextCopiesAttributes(t *testing.T) {
	attrs := map[string]any{"plan": "pro"}
	ec := evalcontext.NewContext("user-1", attrs)

	attrs["plan"] = "free"

	v, ok := ec.Attribute("plan")
	assert.True(t, ok)
	assert.Equal(t, "pro", v)
}

func TestIdentifierAndGroups(t *testing.T) {
	ec := evalcontext.NewContext("user-1", nil).WithGroups("beta", "staff")

	assert.Equal(t, "user-1", ec.Identifier())
	assert.Equal(t, []string{"beta", "staff"}, ec.Groups())
}

func TestTransientContextHasNoIdentifier(t *testing.T) {
	ec := evalcontext.NewTransientContext(map[string]any{"k": "v"})
	assert.Equal(t, "", ec.Identifier())
}

func TestNowFallsBackToWallClock(t *testing.T) {
	ec := evalcontext.NewContext("user-1", nil)
	assert.WithinDuration(t, time.Now(), ec.Now(), time.Second)
}

func TestNowUsesPinnedTimestamp(t *testing.T) {
	pinned := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	ec := evalcontext.NewContext("user-1", nil).WithTimestamp(pinned)
	assert.Equal(t, pinned, ec.Now())
}

func TestResolveDirectAttribute(t *testing.T) {
	ec := evalcontext.NewContext("user-1", map[string]any{"country": "SE"})

	assert.Equal(t, "SE", ec.Resolve("country"))
	assert.Nil(t, ec.Resolve("missing"))
}

func TestResolveJSONPath(t *testing.T) {
	ec := evalcontext.NewContext("user-1", map[string]any{
		"country": "SE",
		"device":  map[string]any{"os": "ios"},
	}).WithGroups("beta")

	assert.Equal(t, "user-1", ec.Resolve("$.identifier"))
	assert.Equal(t, "SE", ec.Resolve("$.attributes.country"))
	assert.Equal(t, "ios", ec.Resolve("$.attributes.device.os"))
	assert.Nil(t, ec.Resolve("$.attributes.nope"))
}

func TestResolveString(t *testing.T) {
	ec := evalcontext.NewContext("user-1", map[string]any{
		"count":   3,
		"ratio":   1.5,
		"enabled": true,
		"name":    "x",
	})

	cases := []struct {
		property string
		expected string
	}{
		{"count", "3"},
		{"ratio", "1.5"},
		{"enabled", "true"},
		{"name", "x"},
	}
	for _, c := range cases {
		s, ok := ec.ResolveString(c.property)
		assert.True(t, ok)
		assert.Equal(t, c.expected, s)
	}

	_, ok := ec.ResolveString("missing")
	assert.False(t, ok)
}

func TestDocumentShape(t *testing.T) {
	pinned := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	ec := evalcontext.NewContext("user-1", map[string]any{"country": "SE"}).
		WithGroups("beta").
		WithTimestamp(pinned)

	doc := ec.Document()
	assert.Equal(t, "user-1", doc["identifier"])
	assert.Equal(t, []string{"beta"}, doc["groups"])
	assert.Equal(t, map[string]any{"country": "SE"}, doc["attributes"])
	assert.Equal(t, "2024-06-01T12:00:00Z", doc["timestamp"])
}

package filters_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flagkit/flagkit-go/flagengine/evalcontext"
	"github.com/flagkit/flagkit-go/flagengine/filters"
)

func versionContext(version string) evalcontext.Context {
	return evalcontext.NewContext("user-1", map[string]any{"app_version": version})
}

func TestVersionFilterComparisons(t *testing.T) {
	cases := []struct {
		operator string
		context  string
		expected bool
	}{
		{filters.VersionEqual, "1.2.3", true},
		{filters.VersionEqual, "1.2.4", false},
		{filters.VersionNotEqual, "1.2.4", true},
		{filters.VersionGreaterThan, "1.2.4", true},
		{filters.VersionGreaterThan, "1.2.3", false},
		{filters.VersionGreaterThanInclusive, "1.2.3", true},
		{filters.VersionLessThan, "1.2.2", true},
		{filters.VersionLessThan, "1.2.3", false},
		{filters.VersionLessThanInclusive, "1.2.3", true},
	}

	for _, c := range cases {
		t.Run(c.operator+"/"+c.context, func(t *testing.T) {
			f, err := filters.NewVersionFilter("app_version", c.operator, "1.2.3")
			require.NoError(t, err)

			enabled, err := f.Evaluate(versionContext(c.context))
			assert.NoError(t, err)
			assert.Equal(t, c.expected, enabled)
		})
	}
}

func TestVersionFilterUnparsableContextIsFalse(t *testing.T) {
	f, err := filters.NewVersionFilter("app_version", filters.VersionGreaterThan, "1.0.0")
	require.NoError(t, err)

	enabled, err := f.Evaluate(versionContext("not-a-version"))
	assert.NoError(t, err)
	assert.False(t, enabled)

	enabled, err = f.Evaluate(evalcontext.NewContext("user-1", nil))
	assert.NoError(t, err)
	assert.False(t, enabled)
}

func TestVersionFilterInvalidConfiguration(t *testing.T) {
	var paramErr *filters.FilterParameterError

	_, err := filters.NewVersionFilter("", filters.VersionEqual, "1.0.0")
	assert.ErrorAs(t, err, &paramErr)

	_, err = filters.NewVersionFilter("app_version", "SPACESHIP", "1.0.0")
	assert.ErrorAs(t, err, &paramErr)

	_, err = filters.NewVersionFilter("app_version", filters.VersionEqual, "one point oh")
	assert.ErrorAs(t, err, &paramErr)
}

func TestVersionFilterFromParameters(t *testing.T) {
	r := filters.DefaultRegistry()

	f, err := r.New(filters.KindVersion, json.RawMessage(
		`{"attribute": "app_version", "operator": "GREATER_THAN_INCLUSIVE", "version": "2.0.0"}`,
	))
	require.NoError(t, err)

	enabled, err := f.Evaluate(versionContext("2.1.0"))
	assert.NoError(t, err)
	assert.True(t, enabled)

	enabled, err = f.Evaluate(versionContext("1.9.9"))
	assert.NoError(t, err)
	assert.False(t, enabled)
}

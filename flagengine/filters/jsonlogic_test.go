package filters_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flagkit/flagkit-go/flagengine/evalcontext"
	"github.com/flagkit/flagkit-go/flagengine/filters"
)

func TestJSONLogicRuleOverAttributes(t *testing.T) {
	f, err := filters.NewJSONLogicFilter(json.RawMessage(
		`{"==": [{"var": "attributes.plan"}, "pro"]}`,
	))
	require.NoError(t, err)

	pro := evalcontext.NewContext("user-1", map[string]any{"plan": "pro"})
	enabled, err := f.Evaluate(pro)
	assert.NoError(t, err)
	assert.True(t, enabled)

	free := evalcontext.NewContext("user-1", map[string]any{"plan": "free"})
	enabled, err = f.Evaluate(free)
	assert.NoError(t, err)
	assert.False(t, enabled)
}

func TestJSONLogicRuleOverIdentifierAndGroups(t *testing.T) {
	f, err := filters.NewJSONLogicFilter(json.RawMessage(
		`{"and": [
			{"==": [{"var": "identifier"}, "user-1"]},
			{"in": ["beta", {"var": "groups"}]}
		]}`,
	))
	require.NoError(t, err)

	enabled, err := f.Evaluate(evalcontext.NewContext("user-1", nil).WithGroups("beta"))
	assert.NoError(t, err)
	assert.True(t, enabled)

	enabled, err = f.Evaluate(evalcontext.NewContext("user-1", nil))
	assert.NoError(t, err)
	assert.False(t, enabled)
}

func TestJSONLogicNonBooleanResultIsFalse(t *testing.T) {
	f, err := filters.NewJSONLogicFilter(json.RawMessage(`{"var": "attributes.plan"}`))
	require.NoError(t, err)

	enabled, err := f.Evaluate(evalcontext.NewContext("user-1", map[string]any{"plan": "pro"}))
	assert.NoError(t, err)
	assert.False(t, enabled)
}

func TestJSONLogicInvalidRule(t *testing.T) {
	var paramErr *filters.FilterParameterError

	_, err := filters.NewJSONLogicFilter(nil)
	assert.ErrorAs(t, err, &paramErr)

	_, err = filters.NewJSONLogicFilter(json.RawMessage(`{"frobnicate": []}`))
	assert.ErrorAs(t, err, &paramErr)
}

func TestJSONLogicFromParameters(t *testing.T) {
	r := filters.DefaultRegistry()

	f, err := r.New(filters.KindJSONLogic, json.RawMessage(
		`{"rule": {">": [{"var": "attributes.purchases"}, 10]}}`,
	))
	require.NoError(t, err)

	enabled, err := f.Evaluate(evalcontext.NewContext("user-1", map[string]any{"purchases": 12}))
	assert.NoError(t, err)
	assert.True(t, enabled)
}

package filters_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flagkit/flagkit-go/flagengine/evalcontext"
	"github.com/flagkit/flagkit-go/flagengine/filters"
)

func TestPercentageThresholdZeroIsAlwaysFalse(t *testing.T) {
	f, err := filters.NewPercentageFilter(0)
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		ec := evalcontext.NewContext(fmt.Sprintf("user-%d", i), nil)
		enabled, err := f.Evaluate(ec)
		assert.NoError(t, err)
		assert.False(t, enabled)
	}
}

func TestPercentageThresholdHundredIsAlwaysTrue(t *testing.T) {
	f, err := filters.NewPercentageFilter(100)
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		ec := evalcontext.NewContext(fmt.Sprintf("user-%d", i), nil)
		enabled, err := f.Evaluate(ec)
		assert.NoError(t, err)
		assert.True(t, enabled)
	}
}

func TestPercentageIsStickyForIdentifier(t *testing.T) {
	f, err := filters.NewPercentageFilter(50)
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		ec := evalcontext.NewContext(fmt.Sprintf("user-%d", i), nil)
		first, err := f.Evaluate(ec)
		require.NoError(t, err)
		for j := 0; j < 5; j++ {
			again, err := f.Evaluate(ec)
			require.NoError(t, err)
			assert.Equal(t, first, again)
		}
	}
}

func TestPercentageAnonymousUsesRandomDraw(t *testing.T) {
	defer filters.MockSetRandomPercentage(nil)

	f, err := filters.NewPercentageFilter(50)
	require.NoError(t, err)
	ec := evalcontext.NewTransientContext(nil)

	filters.MockSetRandomPercentage(func() float64 { return 49.9 })
	enabled, err := f.Evaluate(ec)
	assert.NoError(t, err)
	assert.True(t, enabled)

	filters.MockSetRandomPercentage(func() float64 { return 50.0 })
	enabled, err = f.Evaluate(ec)
	assert.NoError(t, err)
	assert.False(t, enabled)
}

func TestPercentageThresholdOutsideRange(t *testing.T) {
	for _, threshold := range []float64{-0.1, 100.1} {
		_, err := filters.NewPercentageFilter(threshold)
		var invalid *filters.InvalidPercentageThresholdError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, threshold, invalid.Threshold)
	}
}

func TestPercentageFromParameters(t *testing.T) {
	r := filters.DefaultRegistry()

	f, err := r.New(filters.KindPercentage, json.RawMessage(`{"threshold": 100}`))
	require.NoError(t, err)
	enabled, err := f.Evaluate(evalcontext.NewContext("user-1", nil))
	assert.NoError(t, err)
	assert.True(t, enabled)

	_, err = r.New(filters.KindPercentage, json.RawMessage(`{"threshold": 101}`))
	var invalid *filters.InvalidPercentageThresholdError
	assert.ErrorAs(t, err, &invalid)
}

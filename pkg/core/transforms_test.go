package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToBoundedRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		kind     TransformKind
		lo, hi   float64
		bounded  []float64
		tolerant float64
	}{
		{
			name:     "identity",
			kind:     Identity,
			bounded:  []float64{-3.5, 0, 0.25, 12.0},
			tolerant: 0,
		},
		{
			name:     "square root sigmoid",
			kind:     SquareRootSigmoid,
			lo:       1e-5,
			hi:       0.999,
			bounded:  []float64{0.01, 0.1596, 0.5, 0.894, 0.99},
			tolerant: 1e-12,
		},
		{
			name:     "exponential",
			kind:     Exponential,
			lo:       1.0,
			hi:       10.0,
			bounded:  []float64{1.0001, 1.1066, 2.7314, 9.5},
			tolerant: 1e-12,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			for _, x := range tc.bounded {
				u, err := ToUnbounded(x, tc.lo, tc.hi, tc.kind)
				require.NoError(t, err)
				back, err := ToBounded(u, tc.lo, tc.hi, tc.kind)
				require.NoError(t, err)
				assert.InDelta(t, x, back, tc.tolerant, "round trip of %g", x)
			}
		})
	}
}

func TestToBoundedMapsIntoInterval(t *testing.T) {
	t.Parallel()

	for _, u := range []float64{-50, -1, 0, 1, 50} {
		x, err := ToBounded(u, 0, 1, SquareRootSigmoid)
		require.NoError(t, err)
		assert.Greater(t, x, 0.0)
		assert.Less(t, x, 1.0)

		y, err := ToBounded(u, 1, 0, Exponential)
		require.NoError(t, err)
		assert.Greater(t, y, 1.0)
	}
}

func TestInvalidTransformKind(t *testing.T) {
	t.Parallel()

	bad := TransformKind(42)
	_, err := ToBounded(0.5, 0, 1, bad)
	var terr *InvalidTransformError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, bad, terr.Kind)

	_, err = ToUnbounded(0.5, 0, 1, bad)
	require.ErrorAs(t, err, &terr)
}

func TestToUnboundedOutsideSupport(t *testing.T) {
	t.Parallel()

	_, err := ToUnbounded(1.5, 0, 1, SquareRootSigmoid)
	assert.Error(t, err)

	_, err = ToUnbounded(0.5, 1, 0, Exponential)
	assert.Error(t, err)
}

package core

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macrokit/dsge/internal/config"
	"github.com/macrokit/dsge/pkg/solver"
)

func newDefaultModel(t *testing.T) *Model {
	t.Helper()
	m, err := DefaultModel(config.NewSettings())
	require.NoError(t, err)
	return m
}

func TestDefaultModelBuilds(t *testing.T) {
	t.Parallel()

	m := newDefaultModel(t)
	assert.NotEmpty(t, m.Parameters())
	assert.Len(t, m.SteadyStateParameters(), 32)

	// Steady-state values are the NaN sentinel until the first recomputation.
	v, err := m.Get("kstar")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v))
}

func TestGetSetAndUnknownNames(t *testing.T) {
	t.Parallel()

	m := newDefaultModel(t)

	v, err := m.Get("alpha")
	require.NoError(t, err)
	assert.Equal(t, 0.1596, v)

	require.NoError(t, m.Set("alpha", 0.17))
	v, err = m.Get("alpha")
	require.NoError(t, err)
	assert.Equal(t, 0.17, v)

	var uerr *UnknownNameError
	_, err = m.Get("no_such_parameter")
	require.ErrorAs(t, err, &uerr)
	err = m.Set("no_such_parameter", 1.0)
	require.ErrorAs(t, err, &uerr)

	// Steady-state parameters share the namespace but reject mutation.
	err = m.Set("kstar", 5.0)
	assert.Error(t, err)
}

func TestFixedParametersNeverChange(t *testing.T) {
	t.Parallel()

	m := newDefaultModel(t)

	fixed := 0
	for _, p := range m.Parameters() {
		if !p.Fixed {
			continue
		}
		fixed++
		before := p.Value()
		err := m.Set(p.Name, before+1)
		var ferr *FixedParameterError
		require.ErrorAs(t, err, &ferr, "parameter %s", p.Name)
		assert.Equal(t, before, p.Value(), "parameter %s", p.Name)
	}
	assert.Greater(t, fixed, 0, "default model should carry fixed parameters")
}

func TestUnboundedVectorRoundTrip(t *testing.T) {
	t.Parallel()

	m := newDefaultModel(t)

	before := make(map[string]float64)
	free := 0
	for _, p := range m.Parameters() {
		before[p.Name] = p.Value()
		if !p.Fixed {
			free++
		}
	}

	us, err := m.UnboundedVector()
	require.NoError(t, err)
	assert.Len(t, us, free)

	require.NoError(t, m.SetUnboundedVector(us))
	for _, p := range m.Parameters() {
		assert.InDelta(t, before[p.Name], p.Value(), 1e-10, "parameter %s", p.Name)
	}

	err = m.SetUnboundedVector(us[:len(us)-1])
	assert.Error(t, err)
}

func TestRecomputeSteadyStateIsIdempotent(t *testing.T) {
	t.Parallel()

	m := newDefaultModel(t)

	first, err := m.RecomputeSteadyState()
	require.NoError(t, err)
	assert.True(t, first.Converged)

	values := make(map[string]float64)
	for _, sp := range m.SteadyStateParameters() {
		values[sp.Name] = sp.Value()
		assert.False(t, math.IsNaN(sp.Value()), "steady-state %s still NaN", sp.Name)
	}

	second, err := m.RecomputeSteadyState()
	require.NoError(t, err)
	assert.Equal(t, first.SigmaOmega, second.SigmaOmega)
	for _, sp := range m.SteadyStateParameters() {
		assert.Equal(t, values[sp.Name], sp.Value(), "steady-state %s", sp.Name)
	}
	assert.Zero(t, m.FallbackCount())
}

func TestRecomputeReactsToParameterChanges(t *testing.T) {
	t.Parallel()

	m := newDefaultModel(t)
	_, err := m.RecomputeSteadyState()
	require.NoError(t, err)
	ystarBefore, err := m.Get("ystar")
	require.NoError(t, err)

	require.NoError(t, m.Set("alpha", 0.20))
	_, err = m.RecomputeSteadyState()
	require.NoError(t, err)
	ystarAfter, err := m.Get("ystar")
	require.NoError(t, err)

	assert.NotEqual(t, ystarBefore, ystarAfter)
}

func TestRecomputeCountsFallbacks(t *testing.T) {
	t.Parallel()

	m := newDefaultModel(t)

	// No dispersion in the search interval attains this target, so the
	// root-find cannot bracket and the recomputation falls back.
	require.NoError(t, m.Set("zeta_spb", -10.0))

	outcome, err := m.RecomputeSteadyState()
	require.NoError(t, err)
	assert.False(t, outcome.Converged)
	assert.Equal(t, solver.SigmaOmegaDefault, outcome.SigmaOmega)
	assert.Equal(t, 1, m.FallbackCount())

	// The vector is still published off the fallback dispersion.
	sigw, err := m.Get("sigw_star")
	require.NoError(t, err)
	assert.Equal(t, solver.SigmaOmegaDefault, sigw)
	for _, sp := range m.SteadyStateParameters() {
		assert.False(t, math.IsNaN(sp.Value()), "steady-state %s is NaN", sp.Name)
	}

	_, err = m.RecomputeSteadyState()
	require.NoError(t, err)
	assert.Equal(t, 2, m.FallbackCount())
}

func TestAnticipatedShockIndexing(t *testing.T) {
	t.Parallel()

	settings := config.NewSettings()
	settings.Set(config.Setting{Key: config.KeyNumAnticipatedShocks, Value: 4})
	m, err := DefaultModel(settings)
	require.NoError(t, err)

	baseShocks := len(defaultExogenousShocks())
	require.Equal(t, baseShocks+4, m.ExogenousShocks.Len())
	names := m.ExogenousShocks.Names()
	for i := 1; i <= 4; i++ {
		want := fmt.Sprintf("rm_shl%d", i)
		assert.Equal(t, want, names[baseShocks+i-1])
		pos, ok := m.ExogenousShocks.Lookup(want)
		require.True(t, ok)
		assert.Equal(t, baseShocks+i-1, pos)
	}

	// Expectational shocks never get anticipated entries.
	assert.Equal(t, len(defaultExpectationalShocks()), m.ExpectationalShocks.Len())

	// Post-solution positions start after the primary endogenous table.
	pos, ok := m.PostSolutionStates.Lookup("y_t1")
	require.True(t, ok)
	assert.Equal(t, m.Endogenous.Len(), pos)
}

func TestModelRandIsSeeded(t *testing.T) {
	t.Parallel()

	s1 := config.NewSettings()
	s2 := config.NewSettings()
	m1, err := DefaultModel(s1)
	require.NoError(t, err)
	m2, err := DefaultModel(s2)
	require.NoError(t, err)

	// Same seed, independent sources, identical streams.
	for i := 0; i < 5; i++ {
		assert.Equal(t, m1.Rand().Float64(), m2.Rand().Float64())
	}
}

func TestBuilderRejectsDuplicatesAndBadSpecs(t *testing.T) {
	t.Parallel()

	_, err := NewBuilder(config.NewSettings()).
		AddParameter(ParameterSpec{Name: "alpha", Value: 0.2, Lower: 0, Upper: 1, Transform: SquareRootSigmoid}).
		AddParameter(ParameterSpec{Name: "alpha", Value: 0.3, Lower: 0, Upper: 1, Transform: SquareRootSigmoid}).
		Build()
	assert.Error(t, err)

	_, err = NewBuilder(config.NewSettings()).
		AddParameter(ParameterSpec{Name: "alpha", Value: 0.2, Transform: TransformKind(7)}).
		Build()
	var terr *InvalidTransformError
	assert.ErrorAs(t, err, &terr)

	// Parameter and steady-state names share one namespace.
	_, err = NewBuilder(config.NewSettings()).
		AddParameter(ParameterSpec{Name: "kstar", Value: 1.0}).
		AddSteadyStateParameter("kstar", "effective capital").
		Build()
	assert.Error(t, err)
}

package core

import (
	"fmt"
	"math/rand"

	"github.com/macrokit/dsge/internal/config"
	"github.com/macrokit/dsge/internal/logging"
	"github.com/macrokit/dsge/internal/metrics"
	"github.com/macrokit/dsge/pkg/solver"
)

// nameRef locates a name in the shared parameter namespace.
type nameRef struct {
	steady bool
	idx    int
}

// Model owns the parameter collections, the six index tables, the settings,
// and a seeded random source. One logical thread mutates a given instance at a
// time; independent instances share nothing.
type Model struct {
	params []*Parameter
	steady []*SteadyStateParameter
	refs   map[string]nameRef

	// Index tables consumed read-only by the downstream linear solver.
	Endogenous            *IndexTable
	ExogenousShocks       *IndexTable
	ExpectationalShocks   *IndexTable
	EquilibriumConditions *IndexTable
	PostSolutionStates    *IndexTable
	Observables           *IndexTable

	settings *config.Settings
	rng      *rand.Rand

	fallbacks int
}

// Parameters returns the ordinary parameters in registration order.
func (m *Model) Parameters() []*Parameter {
	return m.params
}

// SteadyStateParameters returns the derived parameters in registration order.
func (m *Model) SteadyStateParameters() []*SteadyStateParameter {
	return m.steady
}

// Settings returns the model's configuration.
func (m *Model) Settings() *config.Settings {
	return m.settings
}

// Rand returns the model-owned random source, seeded from settings for
// reproducibility. The external estimator draws from it; the core itself is
// deterministic.
func (m *Model) Rand() *rand.Rand {
	return m.rng
}

// FallbackCount reports how many recomputations fell back to the default
// dispersion since construction.
func (m *Model) FallbackCount() int {
	return m.fallbacks
}

// Parameter returns the named ordinary parameter.
func (m *Model) Parameter(name string) (*Parameter, error) {
	ref, ok := m.refs[name]
	if !ok || ref.steady {
		return nil, &UnknownNameError{Name: name}
	}
	return m.params[ref.idx], nil
}

// Get returns the bounded value of an ordinary parameter or the most recently
// published value of a steady-state parameter.
func (m *Model) Get(name string) (float64, error) {
	ref, ok := m.refs[name]
	if !ok {
		return 0, &UnknownNameError{Name: name}
	}
	if ref.steady {
		return m.steady[ref.idx].Value(), nil
	}
	return m.params[ref.idx].Value(), nil
}

// GetScaled returns the value of an ordinary parameter in equation units.
func (m *Model) GetScaled(name string) (float64, error) {
	p, err := m.Parameter(name)
	if err != nil {
		return 0, err
	}
	return p.Scaled(), nil
}

// Set assigns a bounded value to an ordinary parameter. Fixed parameters and
// steady-state parameters reject mutation. Callers must recompute the steady
// state before reading derived values again.
func (m *Model) Set(name string, x float64) error {
	ref, ok := m.refs[name]
	if !ok {
		return &UnknownNameError{Name: name}
	}
	if ref.steady {
		return fmt.Errorf("core: %q is a steady-state parameter and cannot be set", name)
	}
	return m.params[ref.idx].Set(x)
}

// UnboundedVector returns the free representations of all non-fixed
// parameters, in registration order. This is the estimator's optimization and
// sampling space.
func (m *Model) UnboundedVector() ([]float64, error) {
	out := make([]float64, 0, len(m.params))
	for _, p := range m.params {
		if p.Fixed {
			continue
		}
		u, err := p.Unbounded()
		if err != nil {
			return nil, fmt.Errorf("core: parameter %q: %w", p.Name, err)
		}
		out = append(out, u)
	}
	return out, nil
}

// SetUnboundedVector assigns all non-fixed parameters from free values in the
// same ordering UnboundedVector produces.
func (m *Model) SetUnboundedVector(us []float64) error {
	free := make([]*Parameter, 0, len(m.params))
	for _, p := range m.params {
		if !p.Fixed {
			free = append(free, p)
		}
	}
	if len(us) != len(free) {
		return fmt.Errorf("core: unbounded vector has %d entries, want %d", len(us), len(free))
	}
	for i, p := range free {
		if err := p.SetUnbounded(us[i]); err != nil {
			return fmt.Errorf("core: parameter %q: %w", p.Name, err)
		}
	}
	return nil
}

// RecomputeSteadyState re-derives every steady-state parameter from the
// current ordinary parameter values. The whole vector is computed first and
// published at the end, so no reader observes a partial update. The tagged
// root-find outcome is returned; a fallback increments the model's counter and
// the Prometheus metric rather than failing the call.
func (m *Model) RecomputeSteadyState() (solver.RootFind, error) {
	in, err := m.solverInputs()
	if err != nil {
		return solver.RootFind{}, err
	}

	res, err := solver.SteadyState(in)
	if err != nil {
		return solver.RootFind{}, err
	}

	named := res.Values.Named()
	published := make(map[string]float64, len(named))
	for _, nv := range named {
		ref, ok := m.refs[nv.Name]
		if !ok || !ref.steady {
			return solver.RootFind{}, &UnknownNameError{Name: nv.Name}
		}
		published[nv.Name] = nv.Value
	}
	for _, nv := range named {
		m.steady[m.refs[nv.Name].idx].value = nv.Value
	}

	if !res.RootFind.Converged {
		m.fallbacks++
		logging.Log.Info("Steady state published with fallback dispersion",
			"sigw_star", res.RootFind.SigmaOmega, "fallbacks", m.fallbacks)
	}
	metrics.ObserveRootFind(res.RootFind.Iterations, !res.RootFind.Converged)
	metrics.EmitSteadyState(published)

	return res.RootFind, nil
}

func (m *Model) solverInputs() (solver.Inputs, error) {
	var in solver.Inputs
	for name, dst := range map[string]*float64{
		"alpha":      &in.Alpha,
		"gam":        &in.Gamma,
		"ups":        &in.Upsilon,
		"bet":        &in.Beta,
		"sigma_c":    &in.SigmaC,
		"pi_star":    &in.PiStar,
		"del":        &in.Delta,
		"bigphi":     &in.BigPhi,
		"g_star":     &in.GShare,
		"lambda_w":   &in.LambdaW,
		"f_om":       &in.Fom,
		"spr":        &in.Spread,
		"zeta_spb":   &in.ZetaSpb,
		"gamma_star": &in.GammaStar,
	} {
		v, err := m.GetScaled(name)
		if err != nil {
			return solver.Inputs{}, err
		}
		*dst = v
	}
	return in, nil
}

package core

import (
	"fmt"
	"math/rand"

	"github.com/macrokit/dsge/internal/config"
)

// ParameterSpec is the immutable declaration a Builder turns into a live
// Parameter.
type ParameterSpec struct {
	Name        string
	Value       float64
	Description string

	Lower, Upper           float64
	PriorLower, PriorUpper float64
	Transform              TransformKind
	Fixed                  bool
	Scaling                ScalingFunc
	Prior                  Prior
}

func (s ParameterSpec) validate() error {
	if s.Name == "" {
		return fmt.Errorf("core: parameter spec without a name")
	}
	switch s.Transform {
	case Identity:
	case SquareRootSigmoid:
		if !(s.Lower < s.Upper) {
			return fmt.Errorf("core: parameter %q: bounds (%g, %g) are not an interval", s.Name, s.Lower, s.Upper)
		}
		if !(s.Value > s.Lower && s.Value < s.Upper) {
			return fmt.Errorf("core: parameter %q: value %g outside (%g, %g)", s.Name, s.Value, s.Lower, s.Upper)
		}
	case Exponential:
		if !(s.Value > s.Lower) {
			return fmt.Errorf("core: parameter %q: value %g not above lower bound %g", s.Name, s.Value, s.Lower)
		}
	default:
		return &InvalidTransformError{Kind: s.Transform}
	}
	return nil
}

// indexSpec carries one table's base names plus the prefix for generated
// anticipated-shock names. An empty prefix means the table gets no generated
// entries.
type indexSpec struct {
	base      []string
	genPrefix string
}

// Builder assembles an immutable model configuration (names, bounds, priors,
// index name lists) and then produces a Model whose only mutable state is
// parameter and steady-state values.
type Builder struct {
	settings *config.Settings
	params   []ParameterSpec
	steady   []*SteadyStateParameter

	endogenous    indexSpec
	exogenous     indexSpec
	expectational indexSpec
	equilibrium   indexSpec
	postSolution  indexSpec
	observables   indexSpec
}

// NewBuilder creates a Builder over the given settings.
func NewBuilder(settings *config.Settings) *Builder {
	return &Builder{settings: settings}
}

// AddParameter registers an ordinary parameter declaration.
func (b *Builder) AddParameter(spec ParameterSpec) *Builder {
	b.params = append(b.params, spec)
	return b
}

// AddSteadyStateParameter registers a derived parameter, initialized to the
// NaN sentinel until the first recomputation.
func (b *Builder) AddSteadyStateParameter(name, description string) *Builder {
	b.steady = append(b.steady, NewSteadyStateParameter(name, description))
	return b
}

// EndogenousStates declares the primary endogenous state names. Anticipated
// policy states "<genPrefix>1.." are appended per the settings.
func (b *Builder) EndogenousStates(names []string, genPrefix string) *Builder {
	b.endogenous = indexSpec{base: names, genPrefix: genPrefix}
	return b
}

// ExogenousShocks declares the exogenous shock names.
func (b *Builder) ExogenousShocks(names []string, genPrefix string) *Builder {
	b.exogenous = indexSpec{base: names, genPrefix: genPrefix}
	return b
}

// ExpectationalShocks declares the expectational error names.
func (b *Builder) ExpectationalShocks(names []string) *Builder {
	b.expectational = indexSpec{base: names}
	return b
}

// EquilibriumConditions declares the equilibrium-condition row names.
func (b *Builder) EquilibriumConditions(names []string, genPrefix string) *Builder {
	b.equilibrium = indexSpec{base: names, genPrefix: genPrefix}
	return b
}

// PostSolutionStates declares states appended after the linear solver runs.
// Their positions are offset by the primary endogenous table length.
func (b *Builder) PostSolutionStates(names []string) *Builder {
	b.postSolution = indexSpec{base: names}
	return b
}

// Observables declares the observable names.
func (b *Builder) Observables(names []string, genPrefix string) *Builder {
	b.observables = indexSpec{base: names, genPrefix: genPrefix}
	return b
}

// Build validates the configuration and produces a Model. Duplicate names
// anywhere in the shared parameter namespace, invalid transforms, and invalid
// index declarations are construction errors.
func (b *Builder) Build() (*Model, error) {
	if b.settings == nil {
		b.settings = config.NewSettings()
	}
	if err := b.settings.Validate(); err != nil {
		return nil, err
	}
	nAnt, err := b.settings.GetInt(config.KeyNumAnticipatedShocks)
	if err != nil {
		return nil, err
	}
	seed, err := b.settings.GetInt64(config.KeyRNGSeed)
	if err != nil {
		return nil, err
	}

	m := &Model{
		params:   make([]*Parameter, 0, len(b.params)),
		steady:   make([]*SteadyStateParameter, 0, len(b.steady)),
		refs:     make(map[string]nameRef, len(b.params)+len(b.steady)),
		settings: b.settings,
		rng:      rand.New(rand.NewSource(seed)),
	}

	for _, spec := range b.params {
		if err := spec.validate(); err != nil {
			return nil, err
		}
		if _, dup := m.refs[spec.Name]; dup {
			return nil, fmt.Errorf("core: duplicate parameter name %q", spec.Name)
		}
		p := &Parameter{
			Name:        spec.Name,
			Description: spec.Description,
			value:       spec.Value,
			Lower:       spec.Lower,
			Upper:       spec.Upper,
			PriorLower:  spec.PriorLower,
			PriorUpper:  spec.PriorUpper,
			Transform:   spec.Transform,
			Fixed:       spec.Fixed,
			Scaling:     spec.Scaling,
			Prior:       spec.Prior,
		}
		m.refs[spec.Name] = nameRef{idx: len(m.params)}
		m.params = append(m.params, p)
	}

	for _, sp := range b.steady {
		if _, dup := m.refs[sp.Name]; dup {
			return nil, fmt.Errorf("core: duplicate parameter name %q", sp.Name)
		}
		m.refs[sp.Name] = nameRef{steady: true, idx: len(m.steady)}
		m.steady = append(m.steady, sp)
	}

	build := func(spec indexSpec, offset int) (*IndexTable, error) {
		count := 0
		if spec.genPrefix != "" {
			count = nAnt
		}
		return BuildIndexTable(spec.base, spec.genPrefix, count, offset)
	}

	if m.Endogenous, err = build(b.endogenous, 0); err != nil {
		return nil, err
	}
	if m.ExogenousShocks, err = build(b.exogenous, 0); err != nil {
		return nil, err
	}
	if m.ExpectationalShocks, err = build(b.expectational, 0); err != nil {
		return nil, err
	}
	if m.EquilibriumConditions, err = build(b.equilibrium, 0); err != nil {
		return nil, err
	}
	if m.PostSolutionStates, err = build(b.postSolution, m.Endogenous.Len()); err != nil {
		return nil, err
	}
	if m.Observables, err = build(b.observables, 0); err != nil {
		return nil, err
	}

	return m, nil
}

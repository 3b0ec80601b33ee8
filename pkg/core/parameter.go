package core

import (
	"fmt"
	"math"
)

// FixedParameterError reports an attempt to mutate a fixed parameter. Fixed
// parameters are excluded from estimation and never change after construction.
type FixedParameterError struct {
	Name string
}

func (e *FixedParameterError) Error() string {
	return fmt.Sprintf("core: parameter %q is fixed and cannot be set", e.Name)
}

// UnknownNameError reports a lookup of a name that is registered neither as a
// parameter nor as a steady-state parameter.
type UnknownNameError struct {
	Name string
}

func (e *UnknownNameError) Error() string {
	return fmt.Sprintf("core: unknown parameter %q", e.Name)
}

// ScalingFunc converts a stored economic value to the units the equilibrium
// equations consume, e.g. an annualized percentage to a quarterly gross rate.
// It is applied on read only and is strictly separate from the bounds
// transform used by the estimator.
type ScalingFunc func(x float64) float64

// Parameter is a named scalar with a bounded economic value, a free
// (unbounded) representation under a declared transform, and estimation
// metadata.
type Parameter struct {
	// Name is the stable key for lookups and vector ordering.
	Name string

	// Description is free-form documentation.
	Description string

	value float64

	// Lower and Upper bound the economic value under the transform.
	Lower, Upper float64

	// PriorLower and PriorUpper bound the prior's support; they may differ
	// from the transform bounds.
	PriorLower, PriorUpper float64

	// Transform maps between the bounded value and the free representation.
	Transform TransformKind

	// Fixed excludes the parameter from estimation; its setter is rejected.
	Fixed bool

	// Scaling, when non-nil, is applied by Scaled(). Never applied to the
	// stored or optimized value.
	Scaling ScalingFunc

	// Prior is the prior descriptor consumed by the external estimator.
	Prior Prior
}

// Value returns the bounded economic value.
func (p *Parameter) Value() float64 {
	return p.value
}

// Scaled returns the value in the units the equations consume.
func (p *Parameter) Scaled() float64 {
	if p.Scaling == nil {
		return p.value
	}
	return p.Scaling(p.value)
}

// Set assigns a bounded value. Fixed parameters reject mutation.
func (p *Parameter) Set(x float64) error {
	if p.Fixed {
		return &FixedParameterError{Name: p.Name}
	}
	p.value = x
	return nil
}

// SetUnbounded assigns from the free representation.
func (p *Parameter) SetUnbounded(u float64) error {
	x, err := ToBounded(u, p.Lower, p.Upper, p.Transform)
	if err != nil {
		return err
	}
	return p.Set(x)
}

// Unbounded returns the free representation of the current value.
func (p *Parameter) Unbounded() (float64, error) {
	return ToUnbounded(p.value, p.Lower, p.Upper, p.Transform)
}

func (p *Parameter) String() string {
	return fmt.Sprintf("{%s=%g bounds=(%g,%g) transform=%s fixed=%t}",
		p.Name, p.value, p.Lower, p.Upper, p.Transform, p.Fixed)
}

// SteadyStateParameter is a named scalar derived from the ordinary parameters
// by a full steady-state recomputation. It carries no bounds, prior, or fixed
// flag, and is stale the moment any ordinary parameter changes.
type SteadyStateParameter struct {
	Name        string
	Description string

	value float64
}

// NewSteadyStateParameter creates a steady-state parameter with the NaN
// sentinel, overwritten wholesale on every recomputation.
func NewSteadyStateParameter(name, description string) *SteadyStateParameter {
	return &SteadyStateParameter{Name: name, Description: description, value: math.NaN()}
}

// Value returns the most recently published value, NaN before the first
// recomputation.
func (p *SteadyStateParameter) Value() float64 {
	return p.value
}

package core

import (
	"fmt"
	"math"
)

// TransformKind selects the map between a parameter's bounded economic value
// and its free (unbounded) representation used by optimization and sampling.
type TransformKind int

const (
	// Identity leaves the value unchanged; used for already-unbounded or
	// fixed parameters.
	Identity TransformKind = iota

	// SquareRootSigmoid maps the real line onto the open interval (a, b) via
	// x = a + (b-a)/2 * (1 + u/sqrt(1+u^2)).
	SquareRootSigmoid

	// Exponential maps the real line onto the half line (a, inf) via
	// x = a + exp(u).
	Exponential
)

func (k TransformKind) String() string {
	switch k {
	case Identity:
		return "identity"
	case SquareRootSigmoid:
		return "square-root-sigmoid"
	case Exponential:
		return "exponential"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// InvalidTransformError reports an unrecognized transform kind. It is fatal at
// construction time; a transform is never silently defaulted.
type InvalidTransformError struct {
	Kind TransformKind
}

func (e *InvalidTransformError) Error() string {
	return fmt.Sprintf("core: invalid transform kind %d", int(e.Kind))
}

// ToBounded maps a free value u into the bounded interval (lo, hi) under kind.
func ToBounded(u, lo, hi float64, kind TransformKind) (float64, error) {
	switch kind {
	case Identity:
		return u, nil
	case SquareRootSigmoid:
		return lo + (hi-lo)/2*(1+u/math.Sqrt(1+u*u)), nil
	case Exponential:
		return lo + math.Exp(u), nil
	default:
		return 0, &InvalidTransformError{Kind: kind}
	}
}

// ToUnbounded is the exact inverse of ToBounded for the same kind and bounds.
func ToUnbounded(x, lo, hi float64, kind TransformKind) (float64, error) {
	switch kind {
	case Identity:
		return x, nil
	case SquareRootSigmoid:
		c := 2*(x-lo)/(hi-lo) - 1
		if !(c > -1 && c < 1) {
			return 0, fmt.Errorf("core: value %g outside open interval (%g, %g)", x, lo, hi)
		}
		return c / math.Sqrt(1-c*c), nil
	case Exponential:
		if !(x > lo) {
			return 0, fmt.Errorf("core: value %g not above lower bound %g", x, lo)
		}
		return math.Log(x - lo), nil
	default:
		return 0, &InvalidTransformError{Kind: kind}
	}
}

package core

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"
)

// PriorFamily names the distribution family of a parameter's prior.
type PriorFamily int

const (
	NoPrior PriorFamily = iota
	BetaPrior
	GammaPrior
	NormalPrior
	InverseGammaPrior
)

func (f PriorFamily) String() string {
	switch f {
	case NoPrior:
		return "none"
	case BetaPrior:
		return "beta"
	case GammaPrior:
		return "gamma"
	case NormalPrior:
		return "normal"
	case InverseGammaPrior:
		return "inverse-gamma"
	default:
		return fmt.Sprintf("unknown(%d)", int(f))
	}
}

// Prior describes a parameter's prior distribution for the external
// estimator. The core stores and exposes it; it plays no role in the steady
// state. Beta, gamma and normal priors are parameterized by (mean, stddev);
// inverse-gamma by (scale, shape).
type Prior struct {
	Family PriorFamily
	A, B   float64
}

// LogProb evaluates the log prior density at x. A NoPrior family contributes
// zero.
func (p Prior) LogProb(x float64) (float64, error) {
	switch p.Family {
	case NoPrior:
		return 0, nil
	case BetaPrior:
		mean, sd := p.A, p.B
		// moment matching: alpha/(alpha+beta) = mean, matching variance
		nu := mean*(1-mean)/(sd*sd) - 1
		if nu <= 0 || mean <= 0 || mean >= 1 {
			return 0, fmt.Errorf("core: beta prior hyperparameters (%g, %g) are infeasible", p.A, p.B)
		}
		d := distuv.Beta{Alpha: mean * nu, Beta: (1 - mean) * nu}
		return d.LogProb(x), nil
	case GammaPrior:
		mean, sd := p.A, p.B
		if mean <= 0 || sd <= 0 {
			return 0, fmt.Errorf("core: gamma prior hyperparameters (%g, %g) are infeasible", p.A, p.B)
		}
		shape := mean * mean / (sd * sd)
		rate := mean / (sd * sd)
		d := distuv.Gamma{Alpha: shape, Beta: rate}
		return d.LogProb(x), nil
	case NormalPrior:
		if p.B <= 0 {
			return 0, fmt.Errorf("core: normal prior stddev must be positive, got %g", p.B)
		}
		d := distuv.Normal{Mu: p.A, Sigma: p.B}
		return d.LogProb(x), nil
	case InverseGammaPrior:
		if p.A <= 0 || p.B <= 0 {
			return 0, fmt.Errorf("core: inverse-gamma prior hyperparameters (%g, %g) are infeasible", p.A, p.B)
		}
		d := distuv.InverseGamma{Alpha: p.B, Beta: p.A}
		return d.LogProb(x), nil
	default:
		return 0, fmt.Errorf("core: unknown prior family %d", int(p.Family))
	}
}

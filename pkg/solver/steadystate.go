// Package solver computes the steady-state equilibrium of the model: the
// trend/returns and factor-market blocks by closed-form substitution, one
// univariate root-find for the idiosyncratic dispersion, and the elasticity
// block for the net-worth law of motion.
package solver

import (
	"errors"
	"fmt"
	"math"

	"github.com/macrokit/dsge/internal/engines/rootfind"
	"github.com/macrokit/dsge/internal/logging"
	"github.com/macrokit/dsge/pkg/frictions"
)

// SigmaOmegaDefault is the dispersion used when the root-find does not
// converge. Falling back keeps a single bad draw from aborting an entire
// estimation run; callers observe the event through Result.RootFind.
const SigmaOmegaDefault = 0.5

// Dispersion search interval. The spread-leverage elasticity is monotone
// increasing over this range for economically relevant thresholds.
const (
	sigmaOmegaMin = 1e-3
	sigmaOmegaMax = 5.0
)

// Inputs are the scaled parameter values the steady state depends on.
type Inputs struct {
	Alpha     float64 // capital share
	Gamma     float64 // net quarterly trend growth
	Upsilon   float64 // investment-goods price trend
	Beta      float64 // quarterly discount factor
	SigmaC    float64 // inverse intertemporal elasticity
	PiStar    float64 // gross quarterly inflation target
	Delta     float64 // depreciation rate
	BigPhi    float64 // fixed-cost markup
	GShare    float64 // government share of output
	LambdaW   float64 // wage markup
	Fom       float64 // quarterly default probability
	Spread    float64 // gross quarterly credit spread
	ZetaSpb   float64 // target spread-leverage elasticity
	GammaStar float64 // entrepreneur survival rate

	// SigmaOmegaGuess seeds the dispersion root-find and serves as the
	// fallback value. Zero selects SigmaOmegaDefault.
	SigmaOmegaGuess float64
}

// Values is the full steady-state vector, published atomically by the caller.
type Values struct {
	ZStar    float64 // trend growth of the economy
	RStar    float64 // gross real rate
	RStarN   float64 // net annualized nominal rate, percent
	RkStar   float64 // rental rate of capital
	WStar    float64 // real wage
	LStar    float64 // hours
	KStar    float64 // effective capital
	KBarStar float64 // installed capital
	IStar    float64 // investment
	YStar    float64 // output
	CStar    float64 // consumption
	WLC      float64 // labor income share of consumption

	ZOmegaStar     float64 // standardized default threshold
	SigmaOmegaStar float64 // idiosyncratic dispersion
	OmegaBarStar   float64 // return threshold
	GFnStar        float64 // defaulting-borrower payoff share
	GammaFnStar    float64 // lender gross payoff share
	MuEStar        float64 // bankruptcy cost share
	NKStar         float64 // net-worth-to-capital ratio
	RhoStar        float64 // leverage net of one
	WeKStar        float64 // entrepreneurial-wage-to-capital ratio
	VKStar         float64 // equity-to-capital ratio
	NStar          float64 // net worth
	VStar          float64 // equity

	ZetaSpSigmaOmega float64 // spread elasticity wrt dispersion
	ZetaSpMuE        float64 // spread elasticity wrt bankruptcy costs
	ZetaNRk          float64 // net-worth elasticity wrt return on capital
	ZetaNR           float64 // net-worth elasticity wrt the risk-free rate
	ZetaNQk          float64 // net-worth elasticity wrt the price of capital
	ZetaNN           float64 // net-worth elasticity wrt net worth
	ZetaNMuE         float64 // net-worth elasticity wrt bankruptcy costs
	ZetaNSigmaOmega  float64 // net-worth elasticity wrt dispersion
}

// RootFind is the tagged outcome of the dispersion root-find.
type RootFind struct {
	SigmaOmega float64
	Converged  bool
	Iterations int
}

// Result pairs the steady-state vector with the root-find outcome.
type Result struct {
	Values   Values
	RootFind RootFind
}

func (in Inputs) check() error {
	switch {
	case !(in.Alpha > 0 && in.Alpha < 1):
		return fmt.Errorf("solver: capital share must lie in (0,1), got %g", in.Alpha)
	case !(in.Beta > 0 && in.Beta < 1):
		return fmt.Errorf("solver: discount factor must lie in (0,1), got %g", in.Beta)
	case !(in.Delta > 0 && in.Delta < 1):
		return fmt.Errorf("solver: depreciation rate must lie in (0,1), got %g", in.Delta)
	case !(in.Upsilon > 0):
		return fmt.Errorf("solver: investment price trend must be positive, got %g", in.Upsilon)
	case !(in.BigPhi > 0):
		return fmt.Errorf("solver: fixed-cost markup must be positive, got %g", in.BigPhi)
	case !(in.LambdaW > 0):
		return fmt.Errorf("solver: wage markup must be positive, got %g", in.LambdaW)
	case !(in.GShare >= 0 && in.GShare < 1):
		return fmt.Errorf("solver: government share must lie in [0,1), got %g", in.GShare)
	case !(in.Fom > 0 && in.Fom < 1):
		return fmt.Errorf("solver: default probability must lie in (0,1), got %g", in.Fom)
	case !(in.Spread > 1):
		return fmt.Errorf("solver: gross spread must exceed 1, got %g", in.Spread)
	case !(in.GammaStar > 0 && in.GammaStar < 1):
		return fmt.Errorf("solver: survival rate must lie in (0,1), got %g", in.GammaStar)
	case 1+in.Gamma <= 0:
		return fmt.Errorf("solver: trend growth must exceed -1, got %g", in.Gamma)
	}
	return nil
}

// SteadyState evaluates the full steady-state chain. The returned error is
// reserved for invalid inputs and domain violations; root-find non-convergence
// degrades to the documented fallback and is reported in Result.RootFind.
func SteadyState(in Inputs) (Result, error) {
	if err := in.check(); err != nil {
		return Result{}, err
	}

	var v Values

	// Trend/returns and factor-market blocks, closed form.
	v.ZStar = math.Log(1+in.Gamma) + in.Alpha/(1-in.Alpha)*math.Log(in.Upsilon)
	v.RStar = math.Exp(in.SigmaC*v.ZStar) / in.Beta
	v.RStarN = 100 * (v.RStar*in.PiStar - 1)
	v.RkStar = in.Spread*v.RStar*in.Upsilon - (1 - in.Delta)
	v.WStar = math.Pow(
		math.Pow(in.Alpha, in.Alpha)*math.Pow(1-in.Alpha, 1-in.Alpha)*
			math.Pow(v.RkStar, -in.Alpha)/in.BigPhi,
		1/(1-in.Alpha))
	v.LStar = 1.0
	v.KStar = in.Alpha / (1 - in.Alpha) * v.WStar * v.LStar / v.RkStar
	upsilonTrend := (1 + in.Gamma) * math.Pow(in.Upsilon, 1/(1-in.Alpha))
	v.KBarStar = v.KStar * upsilonTrend
	v.IStar = v.KBarStar * (1 - (1-in.Delta)/upsilonTrend)
	v.YStar = math.Pow(v.KStar, in.Alpha) * math.Pow(v.LStar, 1-in.Alpha) / in.BigPhi
	v.CStar = (1-in.GShare)*v.YStar - v.IStar
	v.WLC = v.WStar * v.LStar / (v.CStar * in.LambdaW)

	// Pin the default threshold, then solve for the dispersion.
	zOmega, err := frictions.Quantile(in.Fom)
	if err != nil {
		return Result{}, err
	}
	v.ZOmegaStar = zOmega

	rf, err := solveSigmaOmega(zOmega, in.Spread, in.ZetaSpb, in.SigmaOmegaGuess)
	if err != nil {
		return Result{}, err
	}
	v.SigmaOmegaStar = rf.SigmaOmega
	sigma := rf.SigmaOmega

	// Frictions-library quantities at the solved point.
	if v.OmegaBarStar, err = frictions.Omega(zOmega, sigma); err != nil {
		return Result{}, err
	}
	if v.GFnStar, err = frictions.G(zOmega, sigma); err != nil {
		return Result{}, err
	}
	if v.GammaFnStar, err = frictions.Gamma(zOmega, sigma); err != nil {
		return Result{}, err
	}
	dG, err := frictions.DGDOmega(zOmega, sigma)
	if err != nil {
		return Result{}, err
	}
	dGamma, err := frictions.DGammaDOmega(zOmega)
	if err != nil {
		return Result{}, err
	}
	dGdS, err := frictions.DGDSigma(zOmega, sigma)
	if err != nil {
		return Result{}, err
	}
	dGammadS, err := frictions.DGammaDSigma(zOmega, sigma)
	if err != nil {
		return Result{}, err
	}
	d2GdWdS, err := frictions.D2GDOmegaDSigma(zOmega, sigma)
	if err != nil {
		return Result{}, err
	}
	d2GammadWdS, err := frictions.D2GammaDOmegaDSigma(zOmega, sigma)
	if err != nil {
		return Result{}, err
	}

	// Leverage and net-worth block.
	if v.MuEStar, err = frictions.Mu(zOmega, sigma, in.Spread); err != nil {
		return Result{}, err
	}
	if v.NKStar, err = frictions.NK(zOmega, sigma, in.Spread); err != nil {
		return Result{}, err
	}
	if v.NKStar == 0 {
		return Result{}, &frictions.DomainError{Fn: "SteadyState", Reason: "net worth ratio is zero"}
	}
	v.RhoStar = 1/v.NKStar - 1
	survOverBeta := in.GammaStar / in.Beta
	v.WeKStar = (1-survOverBeta)*v.NKStar -
		survOverBeta*(in.Spread*(1-v.MuEStar*v.GFnStar)-1)
	v.VKStar = (v.NKStar - v.WeKStar) / in.GammaStar
	v.NStar = v.NKStar * v.KStar
	v.VStar = v.VKStar * v.KStar

	// Elasticity block. Later elasticities reuse earlier ones, so the order
	// below matters.
	shareStar := v.GammaFnStar - v.MuEStar*v.GFnStar
	sharePrime := dGamma - v.MuEStar*dG
	if shareStar == 0 || sharePrime == 0 {
		return Result{}, &frictions.DomainError{Fn: "SteadyState", Reason: "degenerate lender payoff share"}
	}

	zetaBW, err := frictions.ZetaBOmega(zOmega, sigma, in.Spread)
	if err != nil {
		return Result{}, err
	}
	zetaZW, err := frictions.ZetaZOmega(zOmega, sigma, in.Spread)
	if err != nil {
		return Result{}, err
	}
	if zetaZW == 0 {
		return Result{}, &frictions.DomainError{Fn: "SteadyState", Reason: "threshold elasticity is zero"}
	}
	zetaBWZW := zetaBW / zetaZW
	if zetaBWZW == 1 {
		return Result{}, &frictions.DomainError{Fn: "SteadyState", Reason: "elasticity ratio is unity"}
	}

	zetaBDenom := (1-v.GammaFnStar)*in.Spread + dGamma/sharePrime*(1-v.NKStar)
	if zetaBDenom == 0 {
		return Result{}, &frictions.DomainError{Fn: "SteadyState", Reason: "degenerate break-even elasticity denominator"}
	}
	zetaBSigma := sigma * (((1-v.MuEStar*dGdS/dGammadS)/(1-v.MuEStar*dG/dGamma)-1)*dGammadS*in.Spread +
		v.MuEStar*v.NKStar*(dG*d2GammadWdS-dGamma*d2GdWdS)/(sharePrime*sharePrime)) /
		zetaBDenom
	zetaZSigma := sigma * (dGammadS - v.MuEStar*dGdS) / sharePrime
	v.ZetaSpSigmaOmega = (zetaBWZW*zetaZSigma - zetaBSigma) / (1 - zetaBWZW)

	zetaBMuE := v.MuEStar * (v.NKStar*dGamma*dG/sharePrime + dGamma*v.GFnStar*in.Spread) /
		((1-v.GammaFnStar)*sharePrime*in.Spread + dGamma*(1-v.NKStar))
	// d(Gamma - mu*G)/dmu = -G, so the log-elasticity of the share in mu
	// carries a negative sign.
	zetaZMuE := -v.MuEStar * v.GFnStar / shareStar
	v.ZetaSpMuE = (zetaBWZW*zetaZMuE - zetaBMuE) / (1 - zetaBWZW)

	rkGross := in.Spread * in.PiStar * v.RStar
	zetaGW := dG * v.OmegaBarStar / v.GFnStar
	zetaGSigma := dGdS / v.GFnStar * sigma

	discounted := in.GammaStar * rkGross / in.PiStar / math.Exp(v.ZStar)
	leverage := 1 + v.RhoStar
	muG := v.MuEStar * v.GFnStar
	v.ZetaNRk = discounted * leverage * (1 - muG*(1-zetaGW/zetaZW))
	v.ZetaNR = survOverBeta * leverage * (1 - v.NKStar + muG*in.Spread*zetaGW/zetaZW)
	v.ZetaNQk = discounted*leverage*(1-muG*(1+zetaGW/zetaZW/v.RhoStar)) -
		survOverBeta*leverage
	v.ZetaNN = survOverBeta + discounted*leverage*muG*zetaGW/zetaZW/v.RhoStar
	v.ZetaNMuE = discounted * leverage * muG * (1 - zetaGW*zetaZMuE/zetaZW)
	v.ZetaNSigmaOmega = discounted * leverage * muG * (zetaGSigma - zetaGW/zetaZW*zetaZSigma)

	return Result{Values: v, RootFind: rf}, nil
}

// solveSigmaOmega inverts the spread-leverage elasticity for the dispersion.
// Non-convergence degrades to the initial guess rather than failing the whole
// recomputation; the outcome tag lets callers count the event.
func solveSigmaOmega(zOmega, spread, target, guess float64) (RootFind, error) {
	if guess == 0 {
		guess = SigmaOmegaDefault
	}

	objective := func(sigma float64) (float64, error) {
		zsp, err := frictions.ZetaSpreadLeverage(zOmega, sigma, spread)
		if err != nil {
			return 0, err
		}
		return zsp - target, nil
	}

	opts := rootfind.DefaultOptions()
	opts.Min = sigmaOmegaMin
	opts.Max = sigmaOmegaMax

	res, err := rootfind.FromGuess(objective, guess, opts)
	switch {
	case err == nil:
		return RootFind{SigmaOmega: res.Root, Converged: true, Iterations: res.Iterations}, nil
	case errors.Is(err, rootfind.ErrNoBracket) || errors.Is(err, rootfind.ErrMaxIterations):
		logging.Log.Info("Dispersion root-find did not converge, using fallback",
			"target", target, "spread", spread, "fallback", guess, "reason", err.Error())
		return RootFind{SigmaOmega: guess, Converged: false, Iterations: res.Iterations}, nil
	default:
		var derr *frictions.DomainError
		if errors.As(err, &derr) {
			return RootFind{}, derr
		}
		return RootFind{}, fmt.Errorf("solver: dispersion root-find: %w", err)
	}
}

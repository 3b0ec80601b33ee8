// Package frictions implements the financial-frictions (BGG-style) function
// library: the truncated-lognormal credit-risk shares, their first and second
// partial derivatives in the standardized default threshold z and the
// idiosyncratic dispersion sigma, and the derived elasticities of the lender
// break-even condition.
//
// All functions are pure. Arguments outside a function's valid domain return a
// *DomainError instead of propagating NaN through the elasticity chain.
package frictions

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

var stdNormal = distuv.UnitNormal

// DomainError reports arguments outside a frictions function's valid domain.
type DomainError struct {
	Fn     string
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("frictions: %s: %s", e.Fn, e.Reason)
}

func checkSigma(fn string, sigma float64) error {
	if !(sigma > 0) || math.IsInf(sigma, 0) {
		return &DomainError{Fn: fn, Reason: fmt.Sprintf("sigma must be positive and finite, got %g", sigma)}
	}
	return nil
}

func checkZ(fn string, z float64) error {
	if math.IsNaN(z) || math.IsInf(z, 0) {
		return &DomainError{Fn: fn, Reason: fmt.Sprintf("threshold z must be finite, got %g", z)}
	}
	return nil
}

func checkZSigma(fn string, z, sigma float64) error {
	if err := checkZ(fn, z); err != nil {
		return err
	}
	return checkSigma(fn, sigma)
}

func checkSpread(fn string, spread float64) error {
	if !(spread > 1) || math.IsInf(spread, 0) {
		return &DomainError{Fn: fn, Reason: fmt.Sprintf("gross spread must exceed 1, got %g", spread)}
	}
	return nil
}

// Quantile returns the standard-normal quantile of p, used to pin the default
// threshold z from a default probability.
func Quantile(p float64) (float64, error) {
	if !(p > 0 && p < 1) {
		return 0, &DomainError{Fn: "Quantile", Reason: fmt.Sprintf("probability must lie in (0,1), got %g", p)}
	}
	return stdNormal.Quantile(p), nil
}

// raw forms below assume sigma > 0.

func omega(z, sigma float64) float64 {
	return math.Exp(sigma*z - sigma*sigma/2)
}

func gShare(z, sigma float64) float64 {
	return stdNormal.CDF(z - sigma)
}

func gammaShare(z, sigma float64) float64 {
	return omega(z, sigma)*(1-stdNormal.CDF(z)) + stdNormal.CDF(z-sigma)
}

func dGdOmega(z, sigma float64) float64 {
	return stdNormal.Prob(z) / sigma
}

func d2GdOmega2(z, sigma float64) float64 {
	return -z * stdNormal.Prob(z) / (omega(z, sigma) * sigma * sigma)
}

func dGammadOmega(z float64) float64 {
	return 1 - stdNormal.CDF(z)
}

func d2GammadOmega2(z, sigma float64) float64 {
	return -stdNormal.Prob(z) / (omega(z, sigma) * sigma)
}

func dGdSigma(z, sigma float64) float64 {
	return -z * stdNormal.Prob(z-sigma) / sigma
}

func d2GdOmegadSigma(z, sigma float64) float64 {
	return -stdNormal.Prob(z) * (1 - z*(z-sigma)) / (sigma * sigma)
}

func dGammadSigma(z, sigma float64) float64 {
	return -stdNormal.Prob(z - sigma)
}

func d2GammadOmegadSigma(z, sigma float64) float64 {
	return (z/sigma - 1) * stdNormal.Prob(z)
}

func muRaw(z, sigma, spread float64) (float64, error) {
	denom := dGdOmega(z, sigma)/dGammadOmega(z)*(1-gammaShare(z, sigma)) + gShare(z, sigma)
	if denom == 0 {
		return 0, &DomainError{Fn: "Mu", Reason: "break-even denominator is zero"}
	}
	return (1 - 1/spread) / denom, nil
}

func nkRaw(z, sigma, spread float64) (float64, error) {
	mu, err := muRaw(z, sigma, spread)
	if err != nil {
		return 0, err
	}
	return 1 - (gammaShare(z, sigma)-mu*gShare(z, sigma))*spread, nil
}

// Omega is the idiosyncratic-return threshold exp(sigma*z - sigma^2/2).
func Omega(z, sigma float64) (float64, error) {
	if err := checkZSigma("Omega", z, sigma); err != nil {
		return 0, err
	}
	return omega(z, sigma), nil
}

// G is the expected payoff share lost to defaulting borrowers, Phi(z-sigma).
func G(z, sigma float64) (float64, error) {
	if err := checkZSigma("G", z, sigma); err != nil {
		return 0, err
	}
	return gShare(z, sigma), nil
}

// Gamma is the expected gross payoff share to the lender,
// omega*(1-Phi(z)) + Phi(z-sigma).
func Gamma(z, sigma float64) (float64, error) {
	if err := checkZSigma("Gamma", z, sigma); err != nil {
		return 0, err
	}
	return gammaShare(z, sigma), nil
}

// DGDOmega is the first partial of G with respect to the omega threshold.
func DGDOmega(z, sigma float64) (float64, error) {
	if err := checkZSigma("DGDOmega", z, sigma); err != nil {
		return 0, err
	}
	return dGdOmega(z, sigma), nil
}

// D2GDOmega2 is the second partial of G with respect to the omega threshold.
func D2GDOmega2(z, sigma float64) (float64, error) {
	if err := checkZSigma("D2GDOmega2", z, sigma); err != nil {
		return 0, err
	}
	return d2GdOmega2(z, sigma), nil
}

// DGammaDOmega is the first partial of Gamma with respect to the omega
// threshold, 1 - Phi(z).
func DGammaDOmega(z float64) (float64, error) {
	if err := checkZ("DGammaDOmega", z); err != nil {
		return 0, err
	}
	return dGammadOmega(z), nil
}

// D2GammaDOmega2 is the second partial of Gamma with respect to the omega
// threshold.
func D2GammaDOmega2(z, sigma float64) (float64, error) {
	if err := checkZSigma("D2GammaDOmega2", z, sigma); err != nil {
		return 0, err
	}
	return d2GammadOmega2(z, sigma), nil
}

// DGDSigma is the first partial of G with respect to sigma.
func DGDSigma(z, sigma float64) (float64, error) {
	if err := checkZSigma("DGDSigma", z, sigma); err != nil {
		return 0, err
	}
	return dGdSigma(z, sigma), nil
}

// D2GDOmegaDSigma is the cross partial of G in the omega threshold and sigma.
func D2GDOmegaDSigma(z, sigma float64) (float64, error) {
	if err := checkZSigma("D2GDOmegaDSigma", z, sigma); err != nil {
		return 0, err
	}
	return d2GdOmegadSigma(z, sigma), nil
}

// DGammaDSigma is the first partial of Gamma with respect to sigma.
func DGammaDSigma(z, sigma float64) (float64, error) {
	if err := checkZSigma("DGammaDSigma", z, sigma); err != nil {
		return 0, err
	}
	return dGammadSigma(z, sigma), nil
}

// D2GammaDOmegaDSigma is the cross partial of Gamma in the omega threshold and
// sigma.
func D2GammaDOmegaDSigma(z, sigma float64) (float64, error) {
	if err := checkZSigma("D2GammaDOmegaDSigma", z, sigma); err != nil {
		return 0, err
	}
	return d2GammadOmegadSigma(z, sigma), nil
}

// Mu is the bankruptcy cost share consistent with the lender break-even
// condition at gross spread.
func Mu(z, sigma, spread float64) (float64, error) {
	if err := checkZSigma("Mu", z, sigma); err != nil {
		return 0, err
	}
	if err := checkSpread("Mu", spread); err != nil {
		return 0, err
	}
	return muRaw(z, sigma, spread)
}

// NK is the net-worth-to-capital ratio, 1 - (Gamma - mu*G)*spread.
func NK(z, sigma, spread float64) (float64, error) {
	if err := checkZSigma("NK", z, sigma); err != nil {
		return 0, err
	}
	if err := checkSpread("NK", spread); err != nil {
		return 0, err
	}
	return nkRaw(z, sigma, spread)
}

// ZetaBOmega is the elasticity of the lender break-even condition with respect
// to the omega threshold.
func ZetaBOmega(z, sigma, spread float64) (float64, error) {
	if err := checkZSigma("ZetaBOmega", z, sigma); err != nil {
		return 0, err
	}
	if err := checkSpread("ZetaBOmega", spread); err != nil {
		return 0, err
	}
	mu, err := muRaw(z, sigma, spread)
	if err != nil {
		return 0, err
	}
	nk, err := nkRaw(z, sigma, spread)
	if err != nil {
		return 0, err
	}
	w := omega(z, sigma)
	gam := gammaShare(z, sigma)
	g := gShare(z, sigma)
	dGam := dGammadOmega(z)
	dG := dGdOmega(z, sigma)
	sharePrime := dGam - mu*dG
	if sharePrime == 0 {
		return 0, &DomainError{Fn: "ZetaBOmega", Reason: "marginal lender share is zero"}
	}
	outer := 1 - gam + dGam*(gam-mu*g)/sharePrime
	if outer == 0 {
		return 0, &DomainError{Fn: "ZetaBOmega", Reason: "break-even scaling term is zero"}
	}
	num := w * mu * nk * (d2GammadOmega2(z, sigma)*dG - d2GdOmega2(z, sigma)*dGam)
	return num / (sharePrime * sharePrime) / spread / outer, nil
}

// ZetaZOmega is the elasticity of the threshold condition with respect to the
// omega threshold.
func ZetaZOmega(z, sigma, spread float64) (float64, error) {
	if err := checkZSigma("ZetaZOmega", z, sigma); err != nil {
		return 0, err
	}
	if err := checkSpread("ZetaZOmega", spread); err != nil {
		return 0, err
	}
	mu, err := muRaw(z, sigma, spread)
	if err != nil {
		return 0, err
	}
	share := gammaShare(z, sigma) - mu*gShare(z, sigma)
	if share == 0 {
		return 0, &DomainError{Fn: "ZetaZOmega", Reason: "lender payoff share is zero"}
	}
	return omega(z, sigma) * (dGammadOmega(z) - mu*dGdOmega(z, sigma)) / share, nil
}

// ZetaSpreadLeverage is the elasticity of the credit spread with respect to
// leverage. This is the function the steady-state solver inverts for the
// idiosyncratic dispersion.
func ZetaSpreadLeverage(z, sigma, spread float64) (float64, error) {
	zb, err := ZetaBOmega(z, sigma, spread)
	if err != nil {
		return 0, err
	}
	zz, err := ZetaZOmega(z, sigma, spread)
	if err != nil {
		return 0, err
	}
	if zz == 0 {
		return 0, &DomainError{Fn: "ZetaSpreadLeverage", Reason: "threshold elasticity is zero"}
	}
	ratio := zb / zz
	if ratio == 1 {
		return 0, &DomainError{Fn: "ZetaSpreadLeverage", Reason: "elasticity ratio is unity"}
	}
	nk, err := nkRaw(z, sigma, spread)
	if err != nil {
		return 0, err
	}
	if nk == 1 {
		return 0, &DomainError{Fn: "ZetaSpreadLeverage", Reason: "net worth ratio is unity"}
	}
	return -ratio / (1 - ratio) * nk / (1 - nk), nil
}

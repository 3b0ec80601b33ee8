package frictions

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreakEvenIdentity(t *testing.T) {
	t.Parallel()

	// Gamma - mu*G == (1 - nk)/spread links the library functions; it must
	// hold across the economically relevant domain.
	for _, z := range []float64{-3.0, -2.43, -1.88, -0.5, 0.0, 1.0} {
		for _, sigma := range []float64{0.05, 0.26, 0.5, 1.0, 2.0} {
			for _, spread := range []float64{1.0043, 1.02, 1.7444} {
				gamma, err := Gamma(z, sigma)
				require.NoError(t, err)
				g, err := G(z, sigma)
				require.NoError(t, err)
				mu, err := Mu(z, sigma, spread)
				require.NoError(t, err)
				nk, err := NK(z, sigma, spread)
				require.NoError(t, err)

				assert.InDelta(t, (1-nk)/spread, gamma-mu*g, 1e-12,
					"z=%g sigma=%g spread=%g", z, sigma, spread)
			}
		}
	}
}

func TestLenderSharesAreShares(t *testing.T) {
	t.Parallel()

	for _, z := range []float64{-2.43, -1.0, 0.5} {
		for _, sigma := range []float64{0.1, 0.5, 1.5} {
			g, err := G(z, sigma)
			require.NoError(t, err)
			gamma, err := Gamma(z, sigma)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, g, 0.0)
			assert.LessOrEqual(t, g, 1.0)
			assert.GreaterOrEqual(t, gamma, g, "z=%g sigma=%g", z, sigma)
			assert.LessOrEqual(t, gamma, 1.0)
		}
	}
}

// Central finite differences in sigma validate the closed-form sigma partials.
func TestSigmaPartialsMatchFiniteDifferences(t *testing.T) {
	t.Parallel()

	const h = 1e-6
	for _, z := range []float64{-2.43, -1.88, -0.3} {
		for _, sigma := range []float64{0.2, 0.5, 1.1} {
			gPlus, err := G(z, sigma+h)
			require.NoError(t, err)
			gMinus, err := G(z, sigma-h)
			require.NoError(t, err)
			want := (gPlus - gMinus) / (2 * h)
			got, err := DGDSigma(z, sigma)
			require.NoError(t, err)
			assert.InDelta(t, want, got, 1e-7, "dG/dsigma at z=%g sigma=%g", z, sigma)

			gamPlus, err := Gamma(z, sigma+h)
			require.NoError(t, err)
			gamMinus, err := Gamma(z, sigma-h)
			require.NoError(t, err)
			want = (gamPlus - gamMinus) / (2 * h)
			got, err = DGammaDSigma(z, sigma)
			require.NoError(t, err)
			assert.InDelta(t, want, got, 1e-7, "dGamma/dsigma at z=%g sigma=%g", z, sigma)
		}
	}
}

// The omega partials are expressed in z; the chain rule through
// omega = exp(sigma*z - sigma^2/2) ties them to finite differences in z.
func TestOmegaPartialsMatchChainRule(t *testing.T) {
	t.Parallel()

	const h = 1e-6
	for _, z := range []float64{-2.43, -1.0, 0.4} {
		for _, sigma := range []float64{0.2, 0.5, 1.1} {
			w, err := Omega(z, sigma)
			require.NoError(t, err)
			dOmegaDz := sigma * w

			gPlus, err := G(z+h, sigma)
			require.NoError(t, err)
			gMinus, err := G(z-h, sigma)
			require.NoError(t, err)
			dGdz := (gPlus - gMinus) / (2 * h)
			got, err := DGDOmega(z, sigma)
			require.NoError(t, err)
			assert.InDelta(t, dGdz/dOmegaDz, got, 1e-6, "dG/domega at z=%g sigma=%g", z, sigma)

			gamPlus, err := Gamma(z+h, sigma)
			require.NoError(t, err)
			gamMinus, err := Gamma(z-h, sigma)
			require.NoError(t, err)
			dGammaDz := (gamPlus - gamMinus) / (2 * h)
			dGamma, err := DGammaDOmega(z)
			require.NoError(t, err)
			assert.InDelta(t, dGammaDz/dOmegaDz, dGamma, 1e-6,
				"dGamma/domega at z=%g sigma=%g", z, sigma)
		}
	}
}

func TestDomainErrors(t *testing.T) {
	t.Parallel()

	var derr *DomainError

	_, err := G(-2.0, 0)
	require.ErrorAs(t, err, &derr)

	_, err = Gamma(-2.0, -0.5)
	require.ErrorAs(t, err, &derr)

	_, err = Mu(-2.0, 0.5, 1.0)
	require.ErrorAs(t, err, &derr)

	_, err = NK(-2.0, 0.5, math.Inf(1))
	require.ErrorAs(t, err, &derr)

	// A non-finite threshold is rejected, not propagated as NaN.
	_, err = G(math.NaN(), 0.5)
	require.ErrorAs(t, err, &derr)

	_, err = Gamma(math.Inf(1), 0.5)
	require.ErrorAs(t, err, &derr)

	_, err = DGammaDOmega(math.NaN())
	require.ErrorAs(t, err, &derr)

	_, err = ZetaZOmega(math.Inf(-1), 0.5, 1.7444)
	require.ErrorAs(t, err, &derr)

	_, err = Quantile(0)
	require.ErrorAs(t, err, &derr)

	_, err = Quantile(1.2)
	require.ErrorAs(t, err, &derr)

	// Valid arguments stay NaN-free.
	zsp, err := ZetaSpreadLeverage(-1.88, 0.26, 1.7444)
	require.NoError(t, err)
	assert.False(t, math.IsNaN(zsp))
}

func TestZetaSpreadLeverageIsMonotoneInSigma(t *testing.T) {
	t.Parallel()

	z, err := Quantile(0.0075858827)
	require.NoError(t, err)

	prev := math.Inf(-1)
	for _, sigma := range []float64{0.05, 0.1, 0.2, 0.3, 0.5, 0.8, 1.0} {
		zsp, zerr := ZetaSpreadLeverage(z, sigma, 1.0043327594)
		require.NoError(t, zerr)
		assert.Greater(t, zsp, prev, "sigma=%g", sigma)
		prev = zsp
	}
}

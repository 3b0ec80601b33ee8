package core

import (
	"math"

	"github.com/macrokit/dsge/internal/config"
)

// Usage scalings: annualized quantities are stored as estimated and converted
// to quarterly equation units on read.
func scaleDiscount(x float64) float64    { return 1 / (1 + x/100) }
func scalePercent(x float64) float64     { return x / 100 }
func scaleGrossRate(x float64) float64   { return 1 + x/100 }
func scaleSpread(x float64) float64      { return math.Pow(1+x/100, 0.25) }
func scaleDefaultProb(x float64) float64 { return 1 - math.Pow(1-x, 0.25) }

// DefaultModel builds the model with its literal default parameter set, the
// steady-state parameter registrations, and the six index tables.
func DefaultModel(settings *config.Settings) (*Model, error) {
	b := NewBuilder(settings)

	// Preferences, technology and nominal rigidities.
	b.AddParameter(ParameterSpec{Name: "alpha", Value: 0.1596, Description: "capital share",
		Lower: 1e-5, Upper: 0.999, Transform: SquareRootSigmoid,
		Prior: Prior{Family: NormalPrior, A: 0.30, B: 0.05}})
	b.AddParameter(ParameterSpec{Name: "zeta_p", Value: 0.8940, Description: "Calvo price stickiness",
		Lower: 1e-5, Upper: 0.999, Transform: SquareRootSigmoid,
		Prior: Prior{Family: BetaPrior, A: 0.5, B: 0.1}})
	b.AddParameter(ParameterSpec{Name: "iota_p", Value: 0.1865, Description: "price indexation",
		Lower: 1e-5, Upper: 0.999, Transform: SquareRootSigmoid,
		Prior: Prior{Family: BetaPrior, A: 0.5, B: 0.15}})
	b.AddParameter(ParameterSpec{Name: "del", Value: 0.025, Description: "depreciation rate",
		Fixed: true})
	b.AddParameter(ParameterSpec{Name: "ups", Value: 1.000, Description: "investment-goods price trend",
		Fixed: true})
	b.AddParameter(ParameterSpec{Name: "bigphi", Value: 1.1066, Description: "fixed-cost markup",
		Lower: 1.0, Upper: 10.0, Transform: Exponential,
		Prior: Prior{Family: NormalPrior, A: 1.25, B: 0.12}})
	b.AddParameter(ParameterSpec{Name: "s2", Value: 2.7314, Description: "investment adjustment cost curvature",
		Lower: 0, Upper: 15.0, Transform: Exponential,
		Prior: Prior{Family: NormalPrior, A: 4.0, B: 1.5}})
	b.AddParameter(ParameterSpec{Name: "h", Value: 0.5347, Description: "habit persistence",
		Lower: 1e-5, Upper: 0.999, Transform: SquareRootSigmoid,
		Prior: Prior{Family: BetaPrior, A: 0.7, B: 0.1}})
	b.AddParameter(ParameterSpec{Name: "ppsi", Value: 0.6862, Description: "capital utilization cost",
		Lower: 1e-5, Upper: 0.999, Transform: SquareRootSigmoid,
		Prior: Prior{Family: BetaPrior, A: 0.5, B: 0.15}})
	b.AddParameter(ParameterSpec{Name: "nu_l", Value: 2.5975, Description: "inverse Frisch elasticity",
		Lower: 1e-5, Upper: 10.0, Transform: Exponential,
		Prior: Prior{Family: NormalPrior, A: 2.0, B: 0.75}})
	b.AddParameter(ParameterSpec{Name: "zeta_w", Value: 0.9291, Description: "Calvo wage stickiness",
		Lower: 1e-5, Upper: 0.999, Transform: SquareRootSigmoid,
		Prior: Prior{Family: BetaPrior, A: 0.5, B: 0.1}})
	b.AddParameter(ParameterSpec{Name: "iota_w", Value: 0.2992, Description: "wage indexation",
		Lower: 1e-5, Upper: 0.999, Transform: SquareRootSigmoid,
		Prior: Prior{Family: BetaPrior, A: 0.5, B: 0.15}})
	b.AddParameter(ParameterSpec{Name: "lambda_w", Value: 1.5000, Description: "wage markup",
		Fixed: true})
	b.AddParameter(ParameterSpec{Name: "bet", Value: 0.1402, Description: "discount rate, annualized percent",
		Lower: 1e-5, Upper: 10.0, Transform: Exponential, Scaling: scaleDiscount,
		Prior: Prior{Family: GammaPrior, A: 0.25, B: 0.1}})
	b.AddParameter(ParameterSpec{Name: "pi_star", Value: 0.5000, Description: "inflation target, annualized percent",
		Lower: 1e-5, Upper: 10.0, Transform: Exponential, Scaling: scaleGrossRate,
		Prior: Prior{Family: GammaPrior, A: 0.75, B: 0.4}})
	b.AddParameter(ParameterSpec{Name: "sigma_c", Value: 0.8719, Description: "inverse intertemporal elasticity",
		Lower: 1e-5, Upper: 10.0, Transform: Exponential,
		Prior: Prior{Family: NormalPrior, A: 1.5, B: 0.37}})
	b.AddParameter(ParameterSpec{Name: "gam", Value: 0.3673, Description: "trend growth, quarterly percent",
		Lower: -5.0, Upper: 5.0, Transform: Identity, Scaling: scalePercent,
		Prior: Prior{Family: NormalPrior, A: 0.4, B: 0.1}})
	b.AddParameter(ParameterSpec{Name: "g_star", Value: 0.1800, Description: "government share of output",
		Fixed: true})

	// Monetary policy rule.
	b.AddParameter(ParameterSpec{Name: "psi1", Value: 1.3679, Description: "policy response to inflation",
		Lower: 1e-5, Upper: 10.0, Transform: Exponential,
		Prior: Prior{Family: NormalPrior, A: 1.5, B: 0.25}})
	b.AddParameter(ParameterSpec{Name: "psi2", Value: 0.0388, Description: "policy response to output gap",
		Lower: -0.5, Upper: 0.5, Transform: Identity,
		Prior: Prior{Family: NormalPrior, A: 0.12, B: 0.05}})
	b.AddParameter(ParameterSpec{Name: "psi3", Value: 0.2464, Description: "policy response to output growth",
		Lower: -0.5, Upper: 0.5, Transform: Identity,
		Prior: Prior{Family: NormalPrior, A: 0.12, B: 0.05}})
	b.AddParameter(ParameterSpec{Name: "rho", Value: 0.7126, Description: "policy rate smoothing",
		Lower: 1e-5, Upper: 0.999, Transform: SquareRootSigmoid,
		Prior: Prior{Family: BetaPrior, A: 0.75, B: 0.1}})

	// Financial frictions.
	b.AddParameter(ParameterSpec{Name: "f_om", Value: 0.0300, Description: "default probability, annualized",
		Lower: 1e-5, Upper: 0.999, Transform: SquareRootSigmoid, Fixed: true, Scaling: scaleDefaultProb,
		Prior: Prior{Family: BetaPrior, A: 0.03, B: 0.01}})
	b.AddParameter(ParameterSpec{Name: "spr", Value: 1.7444, Description: "credit spread, annualized percent",
		Lower: 0, Upper: 100.0, Transform: Exponential, Scaling: scaleSpread,
		Prior: Prior{Family: GammaPrior, A: 2.0, B: 0.1}})
	b.AddParameter(ParameterSpec{Name: "zeta_spb", Value: 0.0559, Description: "target spread-leverage elasticity",
		Lower: 1e-5, Upper: 0.999, Transform: SquareRootSigmoid,
		Prior: Prior{Family: BetaPrior, A: 0.05, B: 0.005}})
	b.AddParameter(ParameterSpec{Name: "gamma_star", Value: 0.9900, Description: "entrepreneur survival rate",
		Lower: 1e-5, Upper: 0.999, Transform: SquareRootSigmoid, Fixed: true,
		Prior: Prior{Family: BetaPrior, A: 0.99, B: 0.002}})

	// Shock processes.
	for _, s := range []struct {
		name  string
		value float64
		desc  string
	}{
		{"rho_g", 0.9863, "government spending shock persistence"},
		{"rho_b", 0.9410, "risk premium shock persistence"},
		{"rho_mu", 0.8735, "investment technology shock persistence"},
		{"rho_z", 0.9446, "productivity shock persistence"},
		{"rho_sigw", 0.9898, "dispersion shock persistence"},
	} {
		b.AddParameter(ParameterSpec{Name: s.name, Value: s.value, Description: s.desc,
			Lower: 1e-5, Upper: 0.999, Transform: SquareRootSigmoid,
			Prior: Prior{Family: BetaPrior, A: 0.75, B: 0.15}})
	}
	for _, s := range []struct {
		name  string
		value float64
		desc  string
	}{
		{"sig_g", 2.5230, "government spending shock std dev"},
		{"sig_b", 0.0292, "risk premium shock std dev"},
		{"sig_mu", 0.4559, "investment technology shock std dev"},
		{"sig_z", 0.6742, "productivity shock std dev"},
		{"sig_rm", 0.2380, "policy shock std dev"},
		{"sig_sigw", 0.0428, "dispersion shock std dev"},
	} {
		b.AddParameter(ParameterSpec{Name: s.name, Value: s.value, Description: s.desc,
			Lower: 1e-8, Upper: 5.0, Transform: Exponential,
			Prior: Prior{Family: InverseGammaPrior, A: 0.10, B: 2.0}})
	}

	for _, s := range []struct{ name, desc string }{
		{"zstar", "trend growth of the economy"},
		{"rstar", "gross real rate"},
		{"Rstarn", "net annualized nominal rate, percent"},
		{"rkstar", "rental rate of capital"},
		{"wstar", "real wage"},
		{"Lstar", "hours"},
		{"kstar", "effective capital"},
		{"kbarstar", "installed capital"},
		{"istar", "investment"},
		{"ystar", "output"},
		{"cstar", "consumption"},
		{"wl_c", "labor income share of consumption"},
		{"zomega_star", "standardized default threshold"},
		{"sigw_star", "idiosyncratic dispersion"},
		{"omegabar_star", "return threshold"},
		{"G_star", "defaulting-borrower payoff share"},
		{"Gamma_star", "lender gross payoff share"},
		{"mu_e_star", "bankruptcy cost share"},
		{"nk_star", "net-worth-to-capital ratio"},
		{"rho_star", "leverage net of one"},
		{"wekstar", "entrepreneurial-wage-to-capital ratio"},
		{"vkstar", "equity-to-capital ratio"},
		{"nstar", "net worth"},
		{"vstar", "equity"},
		{"zeta_spsigw", "spread elasticity wrt dispersion"},
		{"zeta_spmue", "spread elasticity wrt bankruptcy costs"},
		{"zeta_nRk", "net-worth elasticity wrt return on capital"},
		{"zeta_nR", "net-worth elasticity wrt the risk-free rate"},
		{"zeta_nqk", "net-worth elasticity wrt the price of capital"},
		{"zeta_nn", "net-worth elasticity wrt net worth"},
		{"zeta_nmue", "net-worth elasticity wrt bankruptcy costs"},
		{"zeta_nsigw", "net-worth elasticity wrt dispersion"},
	} {
		b.AddSteadyStateParameter(s.name, s.desc)
	}

	b.EndogenousStates(defaultEndogenousStates(), "rm_tl")
	b.ExogenousShocks(defaultExogenousShocks(), "rm_shl")
	b.ExpectationalShocks(defaultExpectationalShocks())
	b.EquilibriumConditions(defaultEquilibriumConditions(), "eq_rml")
	b.PostSolutionStates(defaultPostSolutionStates())
	b.Observables(defaultObservables(), "obs_nominalrate")

	return b.Build()
}

func defaultEndogenousStates() []string {
	return []string{
		"y_t", "c_t", "i_t", "qk_t", "k_t", "kbar_t", "u_t", "rk_t", "Rktil_t",
		"n_t", "mc_t", "pi_t", "muw_t", "w_t", "L_t", "R_t",
		"g_t", "b_t", "mu_t", "z_t", "laf_t", "laf_t1", "law_t", "law_t1",
		"rm_t", "sigw_t", "mue_t", "gamm_t", "pist_t",
		"E_c", "E_qk", "E_pi", "E_L", "E_rk", "E_w", "E_Rktil",
		"y_f_t", "c_f_t", "i_f_t", "qk_f_t", "k_f_t", "kbar_f_t", "u_f_t",
		"rk_f_t", "w_f_t", "L_f_t", "r_f_t",
		"E_c_f", "E_qk_f", "E_L_f", "E_rk_f",
		"ztil_t", "pi_t1", "pi_t2", "pi_a_t", "R_t1", "zp_t", "E_z",
	}
}

func defaultExogenousShocks() []string {
	return []string{
		"g_sh", "b_sh", "mu_sh", "z_sh", "laf_sh", "law_sh", "rm_sh",
		"sigw_sh", "mue_sh", "gamm_sh", "pist_sh",
		"lr_sh", "zp_sh", "tfp_sh", "gdpdef_sh", "pce_sh",
	}
}

func defaultExpectationalShocks() []string {
	return []string{
		"Ec_sh", "Eqk_sh", "Epi_sh", "EL_sh", "Erk_sh", "Ew_sh", "ERktil_sh",
		"Ec_f_sh", "Eqk_f_sh", "EL_f_sh", "Erk_f_sh", "Ez_sh",
	}
}

func defaultEquilibriumConditions() []string {
	return []string{
		"eq_euler", "eq_inv", "eq_capval", "eq_spread", "eq_nevol",
		"eq_output", "eq_caputl", "eq_capsrv", "eq_capev",
		"eq_mkupp", "eq_phlps", "eq_caprnt", "eq_msub", "eq_wage",
		"eq_mp", "eq_res",
		"eq_g", "eq_b", "eq_mu", "eq_z", "eq_laf", "eq_law",
		"eq_rm", "eq_sigw", "eq_mue", "eq_gamm", "eq_laf1", "eq_law1",
		"eq_Ec", "eq_Eqk", "eq_Epi", "eq_EL", "eq_Erk", "eq_Ew", "eq_ERktil",
		"eq_euler_f", "eq_inv_f", "eq_capval_f", "eq_output_f", "eq_caputl_f",
		"eq_capsrv_f", "eq_capev_f", "eq_caprnt_f", "eq_msub_f", "eq_res_f",
		"eq_Ec_f", "eq_Eqk_f", "eq_EL_f", "eq_Erk_f",
		"eq_ztil", "eq_pist", "eq_pi1", "eq_pi2", "eq_pi_a", "eq_Rt1",
		"eq_zp", "eq_Ez",
	}
}

func defaultPostSolutionStates() []string {
	return []string{
		"y_t1", "c_t1", "i_t1", "w_t1", "L_t1", "u_t1",
		"Et_pi_t", "lr_t", "tfp_t", "e_gdpdef", "e_pce",
	}
}

func defaultObservables() []string {
	return []string{
		"obs_gdp", "obs_hours", "obs_wages", "obs_gdpdeflator", "obs_corepce",
		"obs_nominalrate", "obs_consumption", "obs_investment", "obs_spread",
		"obs_longinflation", "obs_longrate", "obs_tfp",
	}
}

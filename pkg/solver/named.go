package solver

// NamedValue pairs a steady-state parameter name with its computed value.
type NamedValue struct {
	Name  string
	Value float64
}

// Named returns the steady-state vector in its canonical publication order.
// The names match the model's steady-state parameter registrations.
func (v Values) Named() []NamedValue {
	return []NamedValue{
		{"zstar", v.ZStar},
		{"rstar", v.RStar},
		{"Rstarn", v.RStarN},
		{"rkstar", v.RkStar},
		{"wstar", v.WStar},
		{"Lstar", v.LStar},
		{"kstar", v.KStar},
		{"kbarstar", v.KBarStar},
		{"istar", v.IStar},
		{"ystar", v.YStar},
		{"cstar", v.CStar},
		{"wl_c", v.WLC},
		{"zomega_star", v.ZOmegaStar},
		{"sigw_star", v.SigmaOmegaStar},
		{"omegabar_star", v.OmegaBarStar},
		{"G_star", v.GFnStar},
		{"Gamma_star", v.GammaFnStar},
		{"mu_e_star", v.MuEStar},
		{"nk_star", v.NKStar},
		{"rho_star", v.RhoStar},
		{"wekstar", v.WeKStar},
		{"vkstar", v.VKStar},
		{"nstar", v.NStar},
		{"vstar", v.VStar},
		{"zeta_spsigw", v.ZetaSpSigmaOmega},
		{"zeta_spmue", v.ZetaSpMuE},
		{"zeta_nRk", v.ZetaNRk},
		{"zeta_nR", v.ZetaNR},
		{"zeta_nqk", v.ZetaNQk},
		{"zeta_nn", v.ZetaNN},
		{"zeta_nmue", v.ZetaNMuE},
		{"zeta_nsigw", v.ZetaNSigmaOmega},
	}
}

/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package e2e

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/macrokit/dsge/internal/config"
	"github.com/macrokit/dsge/pkg/core"
)

// goldenSteadyState is the reference vector for the default parameter set.
var goldenSteadyState = map[string]float64{
	"zstar":         0.003666271008,
	"rstar":         1.004608225169,
	"Rstarn":        0.963126629518,
	"rkstar":        0.033960950868,
	"wstar":         0.999471540617,
	"Lstar":         1.000000000000,
	"kstar":         5.589042783761,
	"kbarstar":      5.609571337906,
	"istar":         0.160254623739,
	"ystar":         1.189280747997,
	"cstar":         0.814955589619,
	"wl_c":          0.817608184911,
	"zomega_star":   -2.428252762745,
	"sigw_star":     0.499364227656,
	"omegabar_star": 0.262562827862,
	"G_star":        0.001707852649,
	"Gamma_star":    0.262278909692,
	"mu_e_star":     0.131339483669,
	"nk_star":       0.736809979265,
	"rho_star":      0.357202030567,
	"wekstar":       0.002273316960,
	"vkstar":        0.741956224550,
	"nstar":         4.118062497612,
	"vstar":         4.146825082686,
	"zeta_spsigw":   0.026669920531,
	"zeta_spmue":    -0.004229153112,
	"zeta_nRk":      1.352379293565,
	"zeta_nR":       0.356099937141,
	"zeta_nqk":      -0.000631771259,
	"zeta_nn":       0.996912054618,
	"zeta_nmue":     0.000304664494,
	"zeta_nsigw":    0.002374931796,
}

var _ = Describe("Default model steady state", func() {
	var m *core.Model

	BeforeEach(func() {
		var err error
		m, err = core.DefaultModel(config.NewSettings())
		Expect(err).NotTo(HaveOccurred())
	})

	It("reproduces the golden reference vector", func() {
		outcome, err := m.RecomputeSteadyState()
		Expect(err).NotTo(HaveOccurred())
		Expect(outcome.Converged).To(BeTrue())

		for name, want := range goldenSteadyState {
			got, err := m.Get(name)
			Expect(err).NotTo(HaveOccurred(), name)
			Expect(got).To(BeNumerically("~", want, 1e-6), name)
		}
	})

	It("exposes the six index tables with anticipated entries appended", func() {
		nAnt, err := m.Settings().GetInt(config.KeyNumAnticipatedShocks)
		Expect(err).NotTo(HaveOccurred())

		Expect(m.Endogenous.Len()).To(BeNumerically(">", 0))
		Expect(m.ExogenousShocks.Len()).To(BeNumerically(">", nAnt))
		Expect(m.ExpectationalShocks.Len()).To(BeNumerically(">", 0))
		Expect(m.EquilibriumConditions.Len()).To(BeNumerically(">", 0))
		Expect(m.Observables.Len()).To(BeNumerically(">", 0))

		// Anticipated names sit at the tail of the shock table.
		names := m.ExogenousShocks.Names()
		Expect(names[len(names)-1]).To(Equal("rm_shl6"))
		Expect(names[len(names)-nAnt]).To(Equal("rm_shl1"))

		// Post-solution positions continue after the endogenous table.
		pos, ok := m.PostSolutionStates.Lookup("y_t1")
		Expect(ok).To(BeTrue())
		Expect(pos).To(Equal(m.Endogenous.Len()))
	})

	It("recomputes after estimator-style parameter moves", func() {
		_, err := m.RecomputeSteadyState()
		Expect(err).NotTo(HaveOccurred())

		us, err := m.UnboundedVector()
		Expect(err).NotTo(HaveOccurred())

		// Nudge the free vector the way a sampler proposal would.
		for i := range us {
			us[i] += 0.01
		}
		Expect(m.SetUnboundedVector(us)).To(Succeed())

		outcome, err := m.RecomputeSteadyState()
		Expect(err).NotTo(HaveOccurred())
		Expect(outcome.SigmaOmega).To(BeNumerically(">", 0))

		got, err := m.Get("ystar")
		Expect(err).NotTo(HaveOccurred())
		Expect(got).NotTo(BeNumerically("~", goldenSteadyState["ystar"], 1e-9))
	})
})

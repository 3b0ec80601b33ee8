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

package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	steadyStateGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dsge_steady_state_value",
			Help: "Most recently computed steady-state value, by name",
		},
		[]string{"name"},
	)
	rootFindFallbacks = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "dsge_steady_state_root_find_fallback_total",
			Help: "Number of steady-state recomputations that fell back to the default dispersion",
		},
	)
	rootFindIterations = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dsge_steady_state_root_find_iterations",
			Help:    "Bisection iterations taken by the dispersion root-find",
			Buckets: prometheus.LinearBuckets(0, 10, 12),
		},
	)

	registerOnce sync.Once
)

// Register registers the steady-state metrics with the default Prometheus
// registry. Safe to call more than once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(steadyStateGauge, rootFindFallbacks, rootFindIterations)
	})
}

// EmitSteadyState publishes a freshly computed steady-state vector.
func EmitSteadyState(values map[string]float64) {
	for name, v := range values {
		steadyStateGauge.WithLabelValues(name).Set(v)
	}
}

// ObserveRootFind records the outcome of the dispersion root-find.
func ObserveRootFind(iterations int, fellBack bool) {
	rootFindIterations.Observe(float64(iterations))
	if fellBack {
		rootFindFallbacks.Inc()
	}
}

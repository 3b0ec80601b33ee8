// The dsge command builds the model with its default parameter set, applies
// optional overrides, recomputes the steady state, and reports the result.
package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"

	"github.com/macrokit/dsge/internal/config"
	"github.com/macrokit/dsge/internal/logging"
	"github.com/macrokit/dsge/internal/metrics"
	"github.com/macrokit/dsge/pkg/core"
)

func main() {
	var (
		configPath    string
		overridesPath string
		metricsAddr   string
		logLevel      string
		devMode       bool
		testMode      bool
	)
	pflag.StringVar(&configPath, "config", "", "path to a settings file")
	pflag.StringVar(&overridesPath, "overrides", "", "path to a YAML parameter-override file")
	pflag.StringVar(&metricsAddr, "metrics-addr", "", "address to serve Prometheus metrics on (empty disables)")
	pflag.StringVar(&logLevel, "log-level", "info", "zap log level")
	pflag.BoolVar(&devMode, "dev", false, "use the development log encoder")
	pflag.BoolVar(&testMode, "test-mode", false, "resolve settings against the test map")
	pflag.Parse()

	logging.Setup(logLevel, devMode)
	log := logging.Log

	if err := run(configPath, overridesPath, metricsAddr, testMode); err != nil {
		log.Error(err, "dsge failed")
		os.Exit(1)
	}
}

func run(configPath, overridesPath, metricsAddr string, testMode bool) error {
	log := logging.Log

	settings, err := config.Load(configPath)
	if err != nil {
		return err
	}
	settings.SetTestMode(testMode)

	m, err := core.DefaultModel(settings)
	if err != nil {
		return fmt.Errorf("building model: %w", err)
	}

	if overridesPath != "" {
		payload, err := os.ReadFile(overridesPath)
		if err != nil {
			return fmt.Errorf("reading overrides: %w", err)
		}
		overrides, err := config.ParseParameterOverrides(payload)
		if err != nil {
			return fmt.Errorf("parsing overrides: %w", err)
		}
		for _, o := range overrides {
			if err := m.Set(o.Name, o.Value); err != nil {
				return fmt.Errorf("applying override: %w", err)
			}
		}
		log.Info("Applied parameter overrides", "count", len(overrides))
	}

	metrics.Register()

	outcome, err := m.RecomputeSteadyState()
	if err != nil {
		return fmt.Errorf("recomputing steady state: %w", err)
	}
	log.Info("Steady state computed",
		"sigw_star", outcome.SigmaOmega,
		"converged", outcome.Converged,
		"iterations", outcome.Iterations)
	for _, sp := range m.SteadyStateParameters() {
		log.V(logging.DEBUG).Info("Steady-state value", "name", sp.Name, "value", sp.Value())
	}

	if metricsAddr == "" {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{
		Addr:              metricsAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Info("Serving metrics", "addr", metricsAddr)
	return srv.ListenAndServe()
}

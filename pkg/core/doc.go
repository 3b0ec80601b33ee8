// Package core provides the structural model: parameters, index tables, and
// the aggregate that ties them to the steady-state solver.
//
// The package contains the domain types the rest of the system is built on:
//
//   - Parameter: a scalar with a bounded economic value, a free (unbounded)
//     representation under a declared transform, an optional usage scaling,
//     and a prior descriptor for the external estimator
//   - SteadyStateParameter: a derived scalar, overwritten wholesale on every
//     steady-state recomputation
//   - IndexTable: name-to-position maps defining matrix row and column order
//     for the downstream linear rational-expectations solver
//   - Builder: assembles an immutable configuration and produces a Model
//   - Model: the aggregate owning both parameter collections, the six index
//     tables, the settings, and a seeded random source
//
// Example usage:
//
//	m, err := core.DefaultModel(config.NewSettings())
//	if err != nil {
//	    log.Error(err, "building model")
//	    return err
//	}
//
//	// Estimator loop primitive: perturb, recompute, read.
//	if err := m.Set("alpha", 0.17); err != nil {
//	    return err
//	}
//	outcome, err := m.RecomputeSteadyState()
//	if err != nil {
//	    return err
//	}
//	kstar, _ := m.Get("kstar")
//	log.Info("recomputed", "kstar", kstar, "converged", outcome.Converged)
//
// The estimator moves through the free space via UnboundedVector and
// SetUnboundedVector; fixed parameters are excluded from both and reject
// mutation. Steady-state values are stale the moment any ordinary parameter
// changes; callers recompute before reading.
//
// The core package is designed to be:
//   - Deterministic: same parameter values produce the same steady state
//   - Independent of any estimation or solution backend (pure domain logic)
//   - Safe for concurrent use across instances (no shared state), with at
//     most one logical thread mutating a given instance
package core

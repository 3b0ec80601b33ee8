// Package rootfind provides a bounded-iteration univariate root finder used by
// the steady-state solver. The objective is assumed monotone over the search
// interval; the finder expands a bracket around an initial guess and then
// bisects it.
package rootfind

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNoBracket indicates the objective never changed sign inside the
	// allowed interval, so no root can be bracketed.
	ErrNoBracket = errors.New("rootfind: no sign change inside search interval")

	// ErrMaxIterations indicates the bisection loop hit its iteration budget
	// before reaching the requested tolerance.
	ErrMaxIterations = errors.New("rootfind: iteration budget exhausted")
)

// Func is a univariate objective. A returned error marks the point as outside
// the function's domain and aborts the search.
type Func func(x float64) (float64, error)

// Options bound the search.
type Options struct {
	// Tolerance is the |f(x)| convergence threshold.
	Tolerance float64

	// MaxIterations caps the bisection loop.
	MaxIterations int

	// Min and Max clamp the search interval.
	Min, Max float64

	// ExpandFactor grows the bracket around the initial guess on each
	// expansion attempt.
	ExpandFactor float64
}

// Result reports the located root and the work done finding it.
type Result struct {
	Root       float64
	Iterations int
}

// DefaultOptions are suitable for well-scaled economic elasticities.
func DefaultOptions() Options {
	return Options{
		Tolerance:     1e-10,
		MaxIterations: 200,
		Min:           1e-6,
		Max:           1e3,
		ExpandFactor:  2.0,
	}
}

func (o *Options) check() error {
	if o.Tolerance <= 0 {
		return fmt.Errorf("rootfind: tolerance must be > 0, got %g", o.Tolerance)
	}
	if o.MaxIterations <= 0 {
		return fmt.Errorf("rootfind: max iterations must be > 0, got %d", o.MaxIterations)
	}
	if o.Min >= o.Max {
		return fmt.Errorf("rootfind: invalid interval [%g, %g]", o.Min, o.Max)
	}
	if o.ExpandFactor <= 1 {
		return fmt.Errorf("rootfind: expand factor must be > 1, got %g", o.ExpandFactor)
	}
	return nil
}

// FromGuess locates a root of f starting from an initial guess. The bracket
// [guess/ExpandFactor, guess*ExpandFactor] is widened geometrically until the
// objective changes sign, then bisected.
func FromGuess(f Func, guess float64, opts Options) (Result, error) {
	if err := opts.check(); err != nil {
		return Result{}, err
	}
	if guess <= opts.Min || guess >= opts.Max {
		return Result{}, fmt.Errorf("rootfind: guess %g outside interval [%g, %g]",
			guess, opts.Min, opts.Max)
	}

	lo := math.Max(guess/opts.ExpandFactor, opts.Min)
	hi := math.Min(guess*opts.ExpandFactor, opts.Max)
	for {
		flo, err := f(lo)
		if err != nil {
			return Result{}, fmt.Errorf("rootfind: evaluating at %g: %w", lo, err)
		}
		fhi, err := f(hi)
		if err != nil {
			return Result{}, fmt.Errorf("rootfind: evaluating at %g: %w", hi, err)
		}
		if flo == 0 {
			return Result{Root: lo}, nil
		}
		if fhi == 0 {
			return Result{Root: hi}, nil
		}
		if flo*fhi < 0 {
			return bisect(f, lo, hi, flo, opts)
		}
		if lo == opts.Min && hi == opts.Max {
			return Result{}, ErrNoBracket
		}
		lo = math.Max(lo/opts.ExpandFactor, opts.Min)
		hi = math.Min(hi*opts.ExpandFactor, opts.Max)
	}
}

// bisect assumes f(lo) and f(hi) have opposite signs.
func bisect(f Func, lo, hi, flo float64, opts Options) (Result, error) {
	for i := 1; i <= opts.MaxIterations; i++ {
		mid := 0.5 * (lo + hi)
		fmid, err := f(mid)
		if err != nil {
			return Result{}, fmt.Errorf("rootfind: evaluating at %g: %w", mid, err)
		}
		if math.Abs(fmid) < opts.Tolerance || 0.5*(hi-lo) < opts.Tolerance*math.Abs(mid) {
			return Result{Root: mid, Iterations: i}, nil
		}
		if flo*fmid < 0 {
			hi = mid
		} else {
			lo, flo = mid, fmid
		}
	}
	return Result{Root: 0.5 * (lo + hi), Iterations: opts.MaxIterations}, ErrMaxIterations
}

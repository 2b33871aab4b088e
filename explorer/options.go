// File: options.go
// Role: explorer.Options, functional-options configuration for Engine.
package explorer

import (
	"time"

	"github.com/routeopt/espprc/lbound"
)

// Options configures an Engine's search policy.
//
// MaxIterations   – caps the number of label pops; zero means unbounded.
// TimeLimit       – caps wall-clock time; zero means no limit.
// Oracle          – the lower-bound oracle used to compute each extended
//                    label's LB. Defaults to lbound.ZeroOracle if unset.
// AlternateDirections – true enforces strict forward/backward alternation
//                    (spec.md §5 "alternating"); false advances whichever
//                    queue's cheapest label is cheaper (§5
//                    "cheaper-front"). Both are named as valid policies.
type Options struct {
	MaxIterations       int
	TimeLimit           time.Duration
	Oracle              lbound.Oracle
	AlternateDirections bool
}

// Option is a functional option for Options, mirroring
// dijkstra.Option's func(*Options) shape.
type Option func(*Options)

// WithMaxIterations caps the number of label pops the Engine performs.
func WithMaxIterations(n int) Option {
	return func(o *Options) { o.MaxIterations = n }
}

// WithTimeLimit caps wall-clock time spent in Run.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) { o.TimeLimit = d }
}

// WithOracle sets the lower-bound oracle used during extension.
func WithOracle(oracle lbound.Oracle) Option {
	return func(o *Options) { o.Oracle = oracle }
}

// WithAlternateDirections selects strict forward/backward alternation
// instead of the cheaper-front default.
func WithAlternateDirections(alternate bool) Option {
	return func(o *Options) { o.AlternateDirections = alternate }
}

// DefaultOptions returns unbounded iterations/time, lbound.ZeroOracle, and
// cheaper-front direction policy — the cheapest correct configuration,
// matching ZeroOracle's role as the "correctness-only build" bound.
func DefaultOptions() Options {
	return Options{
		MaxIterations:       0,
		TimeLimit:           0,
		Oracle:              lbound.ZeroOracle{},
		AlternateDirections: false,
	}
}

// Build applies opts over DefaultOptions, the same fold dijkstra callers
// use before invoking the algorithm.
func Build(opts ...Option) Options {
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	return o
}

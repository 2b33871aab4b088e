// File: options.go
// Role: espprc's public functional options, thin wrappers over
//       explorer.Options (dijkstra.Option's func(*Options) shape).
package espprc

import (
	"time"

	"github.com/routeopt/espprc/explorer"
	"github.com/routeopt/espprc/lbound"
)

// Option configures a Solve call.
type Option = explorer.Option

// WithOracle overrides the lower-bound oracle used during label extension.
func WithOracle(oracle lbound.Oracle) Option { return explorer.WithOracle(oracle) }

// WithMaxIterations caps the number of label pops the search performs.
func WithMaxIterations(n int) Option { return explorer.WithMaxIterations(n) }

// WithTimeLimit caps wall-clock time spent searching.
func WithTimeLimit(d time.Duration) Option { return explorer.WithTimeLimit(d) }

// WithAlternateDirections selects strict forward/backward alternation
// (true, Solve's default) or the cheaper-front policy (false).
func WithAlternateDirections(alternate bool) Option { return explorer.WithAlternateDirections(alternate) }

// DefaultOptions returns espprc's production defaults: a composite bound
// combining ShortestPathOracle and KnapsackOracle, and strict direction
// alternation for deterministic, balanced bidirectional growth.
func DefaultOptions() explorer.Options {
	return explorer.Options{
		Oracle:              lbound.Composite(lbound.NewShortestPathOracle(), lbound.KnapsackOracle{}),
		AlternateDirections: true,
	}
}

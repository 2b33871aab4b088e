package lbound

import (
	"github.com/routeopt/espprc/bitset"
	"github.com/routeopt/espprc/graph"
)

// ZeroOracle always returns a bound of 0, the trivial valid lower bound
// spec.md §4.3/§9 names explicitly ("a trivial zero-bound implementation is
// valid and useful for correctness-only builds"). Callers pass it via
// WithOracle to disable pruning strength entirely, and tests use it to
// verify that pruning strength changes expansion counts but never the
// final optimum (spec.md §8 Scenario 5).
type ZeroOracle struct{}

// Bound always returns (0, nil).
func (ZeroOracle) Bound(_ int, _ []float64, _ *bitset.Set, _ graph.Direction, _ *graph.Graph) (float64, error) {
	return 0, nil
}

// Package lbound implements the pluggable LowerBoundOracle of spec.md §4.3:
// given the residual resource budget and the still-reachable vertex set of
// a label, return a valid lower bound on the cost of any feasible
// elementary completion.
//
// Grounded on tsp/bb.go's lowerBound (an admissible combinatorial
// relaxation called inside the hot DFS loop) and tsp/bound_onetree.go's
// pattern of shipping a bound as its own pluggable type. Per spec.md §9
// ("define an interface LBOracle.bound(label, graph) -> real"), the Oracle
// interface here takes the label's residual resources and reachable bitset
// rather than the label itself, to avoid a label<->lbound import cycle and
// because those two projections are exactly what every implementation
// below needs (and exactly the cache key spec.md §4.3 names: "(reachable,
// resources_bucket)").
package lbound

import (
	"errors"

	"github.com/routeopt/espprc/bitset"
	"github.com/routeopt/espprc/graph"
)

// ErrOracleFailure is spec.md §7's OracleFailure: an oracle implementation
// could not produce a bound (e.g. an internal solver fault). Per spec.md
// §7 the caller's fallback is LB = -Inf, which disables pruning for that
// one label without aborting the search; that fallback lives in
// package label (the only caller that knows the "disable, don't fail"
// policy), not here.
var ErrOracleFailure = errors.New("lbound: oracle failed to produce a bound")

// Oracle bounds the cost of completing a partial path. v is the label's
// current vertex; residual[k] is ResMax[k] minus the label's accumulated
// resources[k]; reachable marks which vertices the label may still extend
// into; dir is the label's direction of growth. The returned value must be
// a true lower bound on the achievable completion cost (never an
// over-approximation) for pruning to remain sound.
//
// v was added to the signature spec.md §9's cache-key sketch omits
// ("(reachable, resources_bucket)"): ShortestPathOracle cannot answer "cost
// to the depot" without knowing where the walk starts, and every other
// oracle below is free to ignore it. DESIGN.md records this as a resolved
// refinement of the open question, not a deviation from it.
//
// dir is a second such refinement: a forward label still owes the path
// v->0, a backward label still owes 0->v, and on an asymmetric graph those
// two costs differ. An oracle that answers the wrong one over-estimates the
// bound and can prune away the optimal label.
type Oracle interface {
	Bound(v int, residual []float64, reachable *bitset.Set, dir graph.Direction, g *graph.Graph) (float64, error)
}

// File: shortestpath.go
// Role: ShortestPathOracle, a resource-oblivious Bellman-Ford bound.
package lbound

import (
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/routeopt/espprc/bitset"
	"github.com/routeopt/espprc/graph"
)

// ShortestPathOracle bounds the completion cost by the weight of the
// cheapest walk from v to the depot (vertex 0) in the resource-oblivious
// graph (resources dropped, reachability ignored): every feasible
// elementary completion is also a walk in that relaxed graph, so its
// shortest-walk cost lower-bounds any feasible completion's cost. Negative
// edge costs are explicitly permitted by spec.md §1, which rules out
// Dijkstra and motivates gonum's graph/path.BellmanFordFrom.
//
// The mirror is rebuilt on every call rather than cached: spec.md leaves
// caching an implementation concern ("a cache keyed by (reachable,
// resources_bucket) is a valid optimization, not a correctness
// requirement"). Callers sensitive to the rebuild cost should wrap this
// oracle in their own cache.
type ShortestPathOracle struct{}

// NewShortestPathOracle returns a ShortestPathOracle.
func NewShortestPathOracle() *ShortestPathOracle { return &ShortestPathOracle{} }

// Bound ignores residual and reachable (the relaxation already drops both).
// A forward label still owes the walk v->0; a backward label still owes
// 0->v. Those two costs can differ on an asymmetric graph, so dir picks
// which Bellman-Ford tree to read the answer from.
func (o *ShortestPathOracle) Bound(v int, _ []float64, _ *bitset.Set, dir graph.Direction, g *graph.Graph) (float64, error) {
	wg := g.ToGonum()
	if dir == graph.Backward {
		shortest, ok := path.BellmanFordFrom(simple.Node(0), wg)
		if !ok {
			return 0, ErrOracleFailure
		}
		return shortest.WeightTo(int64(v)), nil
	}
	shortest, ok := path.BellmanFordFrom(simple.Node(v), wg)
	if !ok {
		return 0, ErrOracleFailure
	}
	return shortest.WeightTo(0), nil
}

// File: gonum.go
// Role: build a gonum mirror of the instance graph for lbound.ShortestPathOracle.
package graph

import (
	"gonum.org/v1/gonum/graph/simple"
)

// ToGonum builds a *simple.WeightedDirectedGraph mirror of g, one node per
// vertex index and one edge per Edge.Cost (resources are dropped: this
// mirror exists solely to run a resource-oblivious shortest-path relaxation
// via gonum/graph/path, per SPEC_FULL.md's lbound.ShortestPathOracle).
//
// Parallel edges collapse to their cheapest cost, since the mirror is used
// only for a lower bound and the cheapest parallel edge is the only one
// that can ever matter to a shortest path. Self-loops are left out: gonum's
// simple graphs do not hold them, and an elementary path never uses one.
func (g *Graph) ToGonum() *simple.WeightedDirectedGraph {
	wg := simple.NewWeightedDirectedGraph(0, 0)
	for v := 0; v < g.NumNodes; v++ {
		wg.AddNode(simple.Node(v))
	}
	for v := 0; v < g.NumNodes; v++ {
		for _, e := range g.out[v] {
			if e.From == e.To {
				continue
			}
			from, to := simple.Node(e.From), simple.Node(e.To)
			if existing := wg.WeightedEdge(from.ID(), to.ID()); existing != nil && existing.Weight() <= e.Cost {
				continue
			}
			wg.SetWeightedEdge(wg.NewWeightedEdge(from, to, e.Cost))
		}
	}
	return wg
}

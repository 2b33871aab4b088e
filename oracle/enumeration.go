// File: enumeration.go
// Role: EnumerationOracle, a brute-force ExactOracle cross-checker.
package oracle

import (
	"errors"

	"github.com/routeopt/espprc/concat"
	"github.com/routeopt/espprc/graph"
)

// MaxExactNodes bounds the instance size EnumerationOracle will attempt,
// the same pragmatic time/memory guard tsp.MaxExactN applies to Held-Karp
// (there: 16 vertices bound a 2^n DP table; here: the same bound caps a
// DFS whose branching factor is the graph's out-degree rather than 2^n,
// but enumeration over elementary paths is still combinatorially
// explosive enough to need a hard ceiling).
const MaxExactNodes = 16

// ErrSizeTooLarge signals that g.NumNodes exceeds MaxExactNodes.
var ErrSizeTooLarge = errors.New("oracle: enumeration oracle supports at most 16 vertices")

// EnumerationOracle solves ESPPRC by exhaustive depth-first search over
// elementary cycles through vertex 0, pruning branches that overflow a
// resource bound. It is the enumeration-based stand-in spec.md's design
// notes call for in place of the out-of-scope Gurobi MIP
// (original_source/ESPPRC.cpp / MIP.cpp): correct but exponential, usable
// only to cross-check the bidirectional solver on small instances.
//
// Grounded on tsp/bb.go's dfs: a plain branch-and-bound walk over a
// dense visited bitmap, here specialized to resource-bound pruning
// instead of TSP's bounding-function pruning, since ESPPRC's elementary-
// plus-resource-budget state space has no Held-Karp-style polynomial
// subset encoding.
type EnumerationOracle struct{}

// Solve implements ExactOracle.
func (EnumerationOracle) Solve(g *graph.Graph) (*concat.Solution, error) {
	if g.NumNodes > MaxExactNodes {
		return nil, ErrSizeTooLarge
	}

	visited := make([]bool, g.NumNodes)
	visited[0] = true
	resources := make([]float64, g.NumRes)
	path := []int{0}

	var best *concat.Solution

	var dfs func(v int, cost float64)
	dfs = func(v int, cost float64) {
		for _, e := range g.Neighbors(v, graph.Forward) {
			if e.To == 0 {
				feasible := true
				for k := 0; k < g.NumRes; k++ {
					if resources[k]+e.Resources[k] > g.ResMax[k] {
						feasible = false
						break
					}
				}
				if feasible && len(path) > 1 {
					totalCost := cost + e.Cost
					if best == nil || totalCost < best.Cost {
						closed := append(append([]int(nil), path...), 0)
						best = &concat.Solution{
							Path: closed,
							Cost: totalCost,
							ID:   concat.Fingerprint(closed),
						}
					}
				}
				continue
			}
			if visited[e.To] {
				continue
			}
			overflow := false
			for k := 0; k < g.NumRes; k++ {
				if resources[k]+e.Resources[k] > g.ResMax[k] {
					overflow = true
					break
				}
			}
			if overflow {
				continue
			}

			visited[e.To] = true
			path = append(path, e.To)
			for k := 0; k < g.NumRes; k++ {
				resources[k] += e.Resources[k]
			}

			dfs(e.To, cost+e.Cost)

			for k := 0; k < g.NumRes; k++ {
				resources[k] -= e.Resources[k]
			}
			path = path[:len(path)-1]
			visited[e.To] = false
		}
	}

	dfs(0, 0)

	if best == nil {
		return nil, nil
	}
	return best, nil
}

// Package oracle defines the external collaborator interfaces spec.md §6
// names as out-of-scope: a baseline exact solver used as a cross-checker
// (standing in for the out-of-scope MIP formulation), and the reduced-cost
// extraction interface a column-generation caller would implement to use
// espprc as a pricing subproblem. Only ExactOracle ships a production
// implementation (EnumerationOracle); PricingOracle is interface-only.
package oracle

import (
	"github.com/routeopt/espprc/concat"
	"github.com/routeopt/espprc/graph"
)

// ExactOracle solves an ESPPRC instance to proven optimality by some means
// independent of the bidirectional labeling algorithm, for use as a
// correctness cross-checker.
type ExactOracle interface {
	Solve(g *graph.Graph) (*concat.Solution, error)
}

// PricingOracle extracts reduced costs for a given path under some external
// linear relaxation, the interface a column-generation master problem
// would implement to recover dual prices for espprc.Solve's edge costs.
// Per spec.md §6 this requires an external LP/MIP backend and is
// explicitly out of scope; no implementation ships.
type PricingOracle interface {
	ReducedCosts(g *graph.Graph, path []int) (map[[2]int]float64, float64, error)
}

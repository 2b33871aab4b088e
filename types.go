// Package espprc is the top-level entry point for the Elementary Shortest
// Path Problem with Resource Constraints solver: given a directed
// multigraph with per-edge cost and resource consumption and a vector of
// per-resource budgets, Solve finds a minimum-cost elementary cycle
// through vertex 0 via bidirectional labeling with dominance pruning.
//
// Grounded on tsp/solve.go's dispatcher style: a plain Instance-plus-
// Options-in, Solution-plus-sentinel-error-out entry point that builds the
// internal representation, validates it, and delegates to the search
// engine.
package espprc

// EdgeSpec describes one directed edge of an Instance.
type EdgeSpec struct {
	From, To  int
	Cost      float64
	Resources []float64
}

// Instance is the caller-facing description of an ESPPRC problem: a
// directed multigraph over NumNodes vertices (vertex 0 is the depot) with
// NumRes resource dimensions bounded by ResMax.
type Instance struct {
	NumNodes int
	NumRes   int
	ResMax   []float64
	Edges    []EdgeSpec
}

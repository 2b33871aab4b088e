// File: solve.go
// Role: Solve, the dispatcher entry point.
package espprc

import (
	"context"
	"fmt"

	"github.com/routeopt/espprc/concat"
	"github.com/routeopt/espprc/explorer"
	"github.com/routeopt/espprc/graph"
)

// Solve builds inst's graph, validates it, and runs the bidirectional
// labeling search to find a minimum-cost elementary cycle through vertex
// 0. The returned bool is "optimal" (false if the search was cut short by
// a budget or cancellation, per spec.md §7). If the search finds no
// feasible tour at all, Solve returns (nil, false, ErrInfeasibleInstance).
func Solve(inst Instance, opts ...Option) (*concat.Solution, bool, error) {
	g, err := buildGraph(inst)
	if err != nil {
		return nil, false, err
	}
	g.Finalize()

	engineOpts := explorer.Build(applyDefaults(opts)...)
	engine := explorer.NewEngine(g, engineOpts)

	sol, optimal, err := engine.Run(context.Background())
	if err != nil {
		return nil, false, fmt.Errorf("espprc: %w", err)
	}
	if sol == nil {
		return nil, false, ErrInfeasibleInstance
	}
	return sol, optimal, nil
}

// applyDefaults prepends espprc's own defaults (composite oracle, strict
// alternation) ahead of the caller's overrides, so opts can still turn
// them off.
func applyDefaults(opts []Option) []Option {
	defaults := DefaultOptions()
	prefix := []Option{
		WithOracle(defaults.Oracle),
		WithAlternateDirections(defaults.AlternateDirections),
	}
	return append(prefix, opts...)
}

// buildGraph validates inst and constructs its graph.Graph representation
// (spec.md §7 InvalidInput: negative counts, malformed resource vectors,
// out-of-range vertices).
func buildGraph(inst Instance) (*graph.Graph, error) {
	if inst.NumNodes < 1 {
		return nil, fmt.Errorf("%w: NumNodes must be >= 1", ErrInvalidInput)
	}

	g, err := graph.NewGraph(inst.NumNodes, inst.NumRes, inst.ResMax)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	for _, e := range inst.Edges {
		if _, err := g.AddEdge(e.From, e.To, e.Cost, e.Resources); err != nil {
			return nil, fmt.Errorf("%w: edge %d->%d: %v", ErrInvalidInput, e.From, e.To, err)
		}
	}

	return g, nil
}

// Package explorer implements the bidirectional extension loop of
// spec.md §4.5/§5: pops an open label, extends it along feasible edges,
// inserts children into the store, and triggers half-point transitions,
// until both open queues are exhausted.
//
// Grounded on tsp/bb.go's bbEngine/dfs (engine struct with an explicit
// main loop and small numbered steps) and dijkstra/dijkstra.go's
// runner/process structure.
package explorer

import (
	"context"
	"math"
	"time"

	"github.com/routeopt/espprc/concat"
	"github.com/routeopt/espprc/graph"
	"github.com/routeopt/espprc/label"
	"github.com/routeopt/espprc/store"
)

// Engine runs the bidirectional labeling search over a finalized graph.
type Engine struct {
	g     *graph.Graph
	store *store.Store
	opts  Options

	ub   float64
	best *concat.Solution

	qFwd, qBwd []*label.Label

	steps int // sparse cancellation-check counter, tsp/bb.go's deadlineCheck cadence
}

// NewEngine builds an Engine seeded with one initial forward and one
// initial backward label (spec.md §4.5 Initialization).
func NewEngine(g *graph.Graph, opts Options) *Engine {
	e := &Engine{
		g:     g,
		store: store.New(),
		opts:  opts,
		ub:    math.Inf(1),
	}

	fwd := label.NewInitial(graph.Forward, g)
	bwd := label.NewInitial(graph.Backward, g)
	e.store.Insert(fwd)
	e.store.Insert(bwd)
	e.qFwd = append(e.qFwd, fwd)
	e.qBwd = append(e.qBwd, bwd)

	return e
}

// Store exposes the underlying label store, primarily for tests and for
// concat.Concatenate's final pass.
func (e *Engine) Store() *store.Store { return e.store }

// Run executes the main loop until both queues are empty, the iteration or
// time budget is exhausted, or ctx is cancelled. The returned bool is
// "optimal": true if the search ran to natural completion, false if it
// was cut short by a budget or cancellation (spec.md §7's "flag
// optimal = false").
func (e *Engine) Run(ctx context.Context) (*concat.Solution, bool, error) {
	var deadline time.Time
	hasDeadline := e.opts.TimeLimit > 0
	if hasDeadline {
		deadline = time.Now().Add(e.opts.TimeLimit)
	}

	iterations := 0
	for len(e.qFwd) > 0 || len(e.qBwd) > 0 {
		if e.cancelled(ctx, hasDeadline, deadline) {
			sol, ok := concat.Concatenate(e.g, e.store, e.ub)
			if ok {
				e.ub = sol.Cost
				e.best = sol
			}
			return e.best, false, nil
		}
		if e.opts.MaxIterations > 0 && iterations >= e.opts.MaxIterations {
			sol, ok := concat.Concatenate(e.g, e.store, e.ub)
			if ok {
				e.ub = sol.Cost
				e.best = sol
			}
			return e.best, false, nil
		}
		iterations++

		l, ok := e.pop()
		if !ok {
			continue
		}
		if l.Status == label.Dominated {
			continue
		}

		e.checkDirectClosure(l)

		if l.HalfPoint {
			continue // ready for concatenation, not extended further
		}

		for _, child := range e.extendOne(l) {
			outcome := e.store.Insert(child)
			if outcome != store.Accepted {
				continue
			}
			e.pushChild(child)
		}
	}

	sol, ok := concat.Concatenate(e.g, e.store, e.ub)
	if ok {
		e.ub = sol.Cost
		e.best = sol
	}
	return e.best, true, nil
}

// extendOne produces every feasible child of l by walking its direction's
// neighbor list, filtered to still-reachable endpoints.
func (e *Engine) extendOne(l *label.Label) []*label.Label {
	var out []*label.Label
	for _, edge := range e.g.Neighbors(l.Vertex, l.Direction) {
		other := edge.To
		if l.Direction == graph.Backward {
			other = edge.From
		}
		if !l.Reachable.Test(other) {
			continue
		}
		child, err := l.Extend(e.g, edge, e.ub, e.opts.Oracle)
		if err != nil {
			continue
		}
		out = append(out, child)
	}
	return out
}

// checkDirectClosure implements spec.md §4.5 step 5: at any point, a label
// may close directly back to vertex 0 along a single edge, immediately
// forming a complete tour. This bypasses the ordinary Extend/Reachable
// path deliberately: Reachable[0] is permanently false (construct_initial
// disables it "to disable premature return", spec.md §3), which would
// otherwise make a direct two-hop tour like 0->v->0 unreachable through
// the normal extension pipeline.
func (e *Engine) checkDirectClosure(l *label.Label) {
	if l.Vertex == 0 {
		return
	}

	for _, edge := range e.g.Neighbors(l.Vertex, l.Direction) {
		var closes bool
		if l.Direction == graph.Forward {
			closes = edge.To == 0
		} else {
			closes = edge.From == 0
		}
		if !closes {
			continue
		}

		feasible := true
		for k := 0; k < e.g.NumRes; k++ {
			if l.Resources[k]+edge.Resources[k] > e.g.ResMax[k] {
				feasible = false
				break
			}
		}
		if !feasible {
			continue
		}

		cost := l.Cost + edge.Cost
		if cost >= e.ub {
			continue
		}

		var path []int
		if l.Direction == graph.Forward {
			path = append(append([]int(nil), l.Path...), 0)
		} else {
			path = append([]int{0}, l.Path...)
		}

		e.ub = cost
		e.best = &concat.Solution{
			Path: path,
			Cost: cost,
			ID:   concat.Fingerprint(path),
		}
		e.store.PruneByUB(e.ub)
	}
}

// pop selects the next label per opts.AlternateDirections: strict
// alternation, or the cheaper-front policy (spec.md §5 "alternating or
// cheaper-front").
func (e *Engine) pop() (*label.Label, bool) {
	if len(e.qFwd) == 0 && len(e.qBwd) == 0 {
		return nil, false
	}
	if e.chooseForward() {
		l := e.qFwd[0]
		e.qFwd = e.qFwd[1:]
		return l, true
	}
	l := e.qBwd[0]
	e.qBwd = e.qBwd[1:]
	return l, true
}

func (e *Engine) chooseForward() bool {
	if len(e.qFwd) == 0 {
		return false
	}
	if len(e.qBwd) == 0 {
		return true
	}
	if e.opts.AlternateDirections {
		return e.steps%2 == 0
	}
	return e.qFwd[0].Cost <= e.qBwd[0].Cost
}

func (e *Engine) pushChild(l *label.Label) {
	if l.Direction == graph.Forward {
		e.qFwd = append(e.qFwd, l)
		return
	}
	e.qBwd = append(e.qBwd, l)
}

// cancelled performs a sparse cancellation check (every 4096 pops, the same
// cadence as tsp/bb.go's deadlineCheck) against ctx and the configured
// time limit.
func (e *Engine) cancelled(ctx context.Context, hasDeadline bool, deadline time.Time) bool {
	e.steps++
	if e.steps&4095 != 0 {
		return false
	}
	if ctx != nil {
		select {
		case <-ctx.Done():
			return true
		default:
		}
	}
	if hasDeadline && time.Now().After(deadline) {
		return true
	}
	return false
}

// Package label implements the ESPPRC Label of spec.md §3/§4.2: immutable-
// once-extended partial path state, extended one edge at a time under
// resource and lower-bound feasibility checks, and compared by a
// dominance relation used by package store to discard redundant labels.
//
// Grounded on dijkstra/types.go's small-struct-plus-enum style and
// tsp/bb.go's dense-bitmask engine discipline: Reachable is a
// bitset.Set rather than a map[int]bool for exactly the reason
// tsp/bb.go keeps `visited []bool` dense — this type sits on the hottest
// loop in the solver.
package label

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/routeopt/espprc/bitset"
	"github.com/routeopt/espprc/graph"
	"github.com/routeopt/espprc/lbound"
)

// ErrInfeasibleExtension is returned by Extend whenever the candidate
// extension cannot produce a valid label: wrong edge endpoint, an
// unreachable target, a self-loop, resource overflow, or a bound that
// already exceeds the running upper bound. Per spec.md §7 this is normal,
// expected control flow inside the Explorer's hot loop, never logged or
// wrapped with stack context.
var ErrInfeasibleExtension = errors.New("label: infeasible extension")

// Label is an immutable-once-constructed partial path, either growing
// forward from vertex 0 or backward into vertex 0 (spec.md §3).
type Label struct {
	Vertex    int
	Path      []int
	Cost      float64
	Resources []float64
	Reachable *bitset.Set
	HalfPoint bool
	Direction graph.Direction
	LB        float64
	Status    Status

	seq int64 // insertion-order tie-break, set by store.Insert
}

// NewInitial builds the construct_initial label of spec.md §4.2: path =
// [0], zero cost, zero resources, every non-depot vertex reachable.
func NewInitial(dir graph.Direction, g *graph.Graph) *Label {
	reachable := bitset.New(g.NumNodes)
	for v := 1; v < g.NumNodes; v++ {
		reachable.Set(v)
	}
	return &Label{
		Vertex:    0,
		Path:      []int{0},
		Cost:      0,
		Resources: make([]float64, g.NumRes),
		Reachable: reachable,
		Direction: dir,
		LB:        0,
	}
}

// Seq returns the insertion-order tie-break value store.Insert assigned to
// this label (0 until inserted).
func (l *Label) Seq() int64 { return l.seq }

// SetSeq is called by package store exactly once, at insertion time.
func (l *Label) SetSeq(seq int64) { l.seq = seq }

// Invalidate marks l as Dominated, the signal package explorer's open-queue
// uses to skip a popped label that the store has since evicted (spec.md
// §4.5 step 2, "if L was invalidated ... skip").
func (l *Label) Invalidate() { l.Status = Dominated }

// Key returns the (vertex, direction) bucket this label belongs to in a
// store.
func (l *Label) Key() (vertex int, dir graph.Direction) {
	return l.Vertex, l.Direction
}

// Extend implements spec.md §4.2's extend steps 1-7, producing a new child
// label by walking edge e from the current frontier. e must originate at
// l.Vertex (Forward) or terminate at l.Vertex (Backward); the other
// endpoint is the new frontier vertex w.
func (l *Label) Extend(g *graph.Graph, e graph.Edge, ub float64, lb lbound.Oracle) (*Label, error) {
	var w int
	switch l.Direction {
	case graph.Forward:
		if e.From != l.Vertex {
			return nil, fmt.Errorf("%w: edge.From %d != label.Vertex %d", ErrInfeasibleExtension, e.From, l.Vertex)
		}
		w = e.To
	case graph.Backward:
		if e.To != l.Vertex {
			return nil, fmt.Errorf("%w: edge.To %d != label.Vertex %d", ErrInfeasibleExtension, e.To, l.Vertex)
		}
		w = e.From
	default:
		return nil, fmt.Errorf("%w: unknown direction %v", ErrInfeasibleExtension, l.Direction)
	}

	if w == l.Vertex {
		return nil, fmt.Errorf("%w: self-loop", ErrInfeasibleExtension)
	}
	if !l.Reachable.Test(w) {
		return nil, fmt.Errorf("%w: vertex %d not reachable", ErrInfeasibleExtension, w)
	}

	// Step 2: clone path/cost/resources.
	path := make([]int, len(l.Path)+1)
	resources := make([]float64, g.NumRes)
	switch l.Direction {
	case graph.Forward:
		copy(path, l.Path)
		path[len(l.Path)] = w
	case graph.Backward:
		path[0] = w
		copy(path[1:], l.Path)
	}
	copy(resources, l.Resources)
	floats.Add(resources, e.Resources)

	// Step 3: resource overflow check.
	for k := 0; k < g.NumRes; k++ {
		if resources[k] > g.ResMax[k] {
			return nil, fmt.Errorf("%w: resource %d overflow", ErrInfeasibleExtension, k)
		}
	}

	// Step 4: mark w visited/unreachable in the child.
	reachable := l.Reachable.Clone()
	reachable.Clear(w)

	// Step 5: propagate reachability tightening from w's frontier.
	childDir := l.Direction
	for _, fe := range g.Neighbors(w, childDir) {
		u := fe.To
		if childDir == graph.Backward {
			u = fe.From
		}
		if !reachable.Test(u) {
			continue
		}
		for k := 0; k < g.NumRes; k++ {
			if resources[k]+fe.Resources[k] > g.ResMax[k] {
				reachable.Clear(u)
				break
			}
		}
	}

	child := &Label{
		Vertex:    w,
		Path:      path,
		Cost:      l.Cost + e.Cost,
		Resources: resources,
		Reachable: reachable,
		Direction: l.Direction,
		HalfPoint: l.HalfPoint,
	}

	// Step 6: lower bound and UB feasibility.
	residual := make([]float64, g.NumRes)
	for k := 0; k < g.NumRes; k++ {
		residual[k] = g.ResMax[k] - resources[k]
	}
	bound, err := lb.Bound(w, residual, reachable, childDir, g)
	if err != nil {
		if !errors.Is(err, lbound.ErrOracleFailure) {
			return nil, fmt.Errorf("label: lower bound: %w", err)
		}
		bound = math.Inf(-1) // spec.md §7 OracleFailure fallback: disable pruning for this label only
	}
	child.LB = bound
	if child.Cost+bound > ub {
		return nil, fmt.Errorf("%w: cost+LB exceeds UB", ErrInfeasibleExtension)
	}

	// Step 7: half-point detection.
	if !l.HalfPoint {
		for k := 0; k < g.NumRes; k++ {
			if resources[k] >= g.ResMax[k]/2 {
				child.HalfPoint = true
				break
			}
		}
	}

	return child, nil
}

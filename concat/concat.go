// Package concat implements the bidirectional concatenation of spec.md
// §4.6: joining a forward label and a backward label into a complete
// elementary tour through 0, at the point where the two frontiers meet.
//
// Per the half-point rule (label.Label.HalfPoint), a label stops being
// extended the moment its accumulated resource first reaches the half
// threshold (res_max/2). Because the threshold is fixed relative to
// res_max rather than to the eventual path's total resource, the forward
// and backward frontiers of the true optimal path do not always land on
// the same vertex: depending on how the per-edge resource consumption
// lines up against the threshold, they either overlap on a shared vertex
// (both sides hold a label for that vertex, at least one of them past
// half) or land on two vertices joined by a single direct edge (both
// sides past half, nothing in between). Concatenate checks both cases.
//
// Grounded on tsp/eulerian.go's path-stitching style (walk one structure
// forward, the other in reverse, splice at the shared vertex) and
// tsp/cost.go's small, allocation-conscious, side-effect-free helper
// functions.
package concat

import (
	"github.com/routeopt/espprc/graph"
	"github.com/routeopt/espprc/label"
	"github.com/routeopt/espprc/store"
)

// Solution is a complete elementary tour through vertex 0.
type Solution struct {
	Path []int
	Cost float64
	ID   [3]int64 // (length, fingerprint_lo, fingerprint_hi)
}

// Concatenate scans every vertex for a forward/backward label pair meeting
// spec.md §4.6's join conditions and returns the cheapest complete tour
// found, improving on ub if any pair beats it.
func Concatenate(g *graph.Graph, s *store.Store, ub float64) (*Solution, bool) {
	var best *Solution
	bestCost := ub

	for v := 1; v < g.NumNodes; v++ {
		bestCost = concatenateSameVertex(g, s.Iterate(v, graph.Forward), s.Iterate(v, graph.Backward), bestCost, &best)
		bestCost = concatenateAcrossEdge(g, s, v, bestCost, &best)
	}

	if best == nil {
		return nil, false
	}
	return best, true
}

// concatenateSameVertex handles the case where the forward and backward
// frontiers overlap on vertex v itself: at least one side must already be
// past half (otherwise both sides would still be extending and v would not
// be a true meeting point), but the other side need not be — it may be any
// label stored for v, since every forward/backward label ever inserted
// remains a valid sub-path regardless of whether it was later extended
// further.
func concatenateSameVertex(g *graph.Graph, forward, backward []*label.Label, bestCost float64, best **Solution) float64 {
	for _, f := range forward {
		inPath := pathSet(f.Path)
		for _, b := range backward {
			cost := f.Cost + b.Cost
			if cost >= bestCost {
				break // backward is cost-ascending: no later b helps this f either
			}
			if !f.HalfPoint && !b.HalfPoint {
				continue
			}
			if !elementary(f.Path, b.Path, inPath) {
				continue
			}
			if !resourceFeasibleTwo(f.Resources, b.Resources, g.ResMax) {
				continue
			}
			path := stitch(f.Path, b.Path)
			bestCost = cost
			*best = &Solution{Path: path, Cost: cost, ID: Fingerprint(path)}
		}
	}
	return bestCost
}

// concatenateAcrossEdge handles the case where the forward frontier stops
// at v (past half) and the backward frontier stops at some other vertex j
// reachable from v by a single direct edge, past half on its own side, with
// nothing in between: the two halves share no vertex, only the connecting
// edge.
func concatenateAcrossEdge(g *graph.Graph, s *store.Store, v int, bestCost float64, best **Solution) float64 {
	forward := s.Iterate(v, graph.Forward)
	var halfForward []*label.Label
	for _, f := range forward {
		if f.HalfPoint {
			halfForward = append(halfForward, f)
		}
	}
	if len(halfForward) == 0 {
		return bestCost
	}

	for _, edge := range g.Neighbors(v, graph.Forward) {
		j := edge.To
		if j == v || j == 0 {
			continue
		}
		backward := s.Iterate(j, graph.Backward)
		for _, f := range halfForward {
			inPath := pathSet(f.Path)
			for _, b := range backward {
				if !b.HalfPoint {
					continue
				}
				cost := f.Cost + edge.Cost + b.Cost
				if cost >= bestCost {
					break // backward is cost-ascending
				}
				if !disjoint(b.Path, inPath) {
					continue
				}
				if !resourceFeasibleThree(f.Resources, edge.Resources, b.Resources, g.ResMax) {
					continue
				}
				path := stitchAcrossEdge(f.Path, b.Path)
				bestCost = cost
				*best = &Solution{Path: path, Cost: cost, ID: Fingerprint(path)}
			}
		}
	}
	return bestCost
}

func pathSet(path []int) map[int]struct{} {
	set := make(map[int]struct{}, len(path))
	for _, p := range path {
		set[p] = struct{}{}
	}
	return set
}

// elementary reports whether f.Path and b.Path share no vertex other than
// the meeting point v (already present in both) and the depot 0 (the
// first element of f.Path and the last of b.Path), i.e. their
// intersection, viewed as sets, is {v, 0}. inPath is f.Path's membership
// set, built once by the caller and reused across the inner loop.
func elementary(fPath, bPath []int, inPath map[int]struct{}) bool {
	v := fPath[len(fPath)-1]
	for _, p := range bPath {
		if p == v || p == 0 {
			continue
		}
		if _, ok := inPath[p]; ok {
			return false
		}
	}
	return true
}

// disjoint reports whether bPath shares no vertex with inPath, other than
// the trailing depot (0, always bPath's last element and never an interior
// vertex of either half per the reachability invariant).
func disjoint(bPath []int, inPath map[int]struct{}) bool {
	for _, p := range bPath {
		if p == 0 {
			continue
		}
		if _, ok := inPath[p]; ok {
			return false
		}
	}
	return true
}

// resourceFeasibleTwo implements spec.md §9's resolved open question on
// resource attachment: resources are counted edges-only, so a feasible
// same-vertex join requires the two halves' sums to fit the budget, with no
// vertex-level double-count subtraction.
func resourceFeasibleTwo(fRes, bRes, resMax []float64) bool {
	for k := range resMax {
		if fRes[k]+bRes[k] > resMax[k] {
			return false
		}
	}
	return true
}

// resourceFeasibleThree is resourceFeasibleTwo extended with the connecting
// edge's own resource consumption, for the across-edge join.
func resourceFeasibleThree(fRes, edgeRes, bRes, resMax []float64) bool {
	for k := range resMax {
		if fRes[k]+edgeRes[k]+bRes[k] > resMax[k] {
			return false
		}
	}
	return true
}

// stitch joins a forward path (0 ... v) and a backward label's path
// (v ... 0 — label.Extend builds backward paths frontier-first, so
// bPath[0] == v and bPath[len(bPath)-1] == 0) into the complete tour
// 0 ... v ... 0. bPath[0] duplicates fPath's last element and is dropped.
func stitch(fPath, bPath []int) []int {
	out := make([]int, 0, len(fPath)+len(bPath)-1)
	out = append(out, fPath...)
	out = append(out, bPath[1:]...)
	return out
}

// stitchAcrossEdge joins a forward path (0 ... i) and a backward path
// (j ... 0) connected by the single edge i->j, with no shared vertex to
// drop.
func stitchAcrossEdge(fPath, bPath []int) []int {
	out := make([]int, 0, len(fPath)+len(bPath))
	out = append(out, fPath...)
	out = append(out, bPath...)
	return out
}

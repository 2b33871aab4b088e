// File: methods.go
// Role: Edge lifecycle (AddEdge/DeleteEdge), neighbor queries, and the
//       derived-statistics pass (Finalize/minWeight/maxValue).
// Determinism: out[v]/in[v] preserve insertion order; edge IDs are
//              monotonic and stable.
package graph

// AddEdge appends a directed edge from->to with the given cost (may be
// negative) and resource vector. No deduplication: parallel edges are
// permitted, matching core.AddEdge's multigraph support and spec.md §4.1
// ("No edge deduplication"). Self-loops are accepted here — the spec
// rejects them at label-extension time (see package label), not at the
// graph-construction level, since the graph is only a container.
//
// Returns the new edge's ID, or ErrInvalidInput if from/to are out of
// range, the resource vector has the wrong length, or any entry is
// negative.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, cost float64, resources []float64) (int, error) {
	if from < 0 || from >= g.NumNodes || to < 0 || to >= g.NumNodes {
		return 0, ErrInvalidInput
	}
	if len(resources) != g.NumRes {
		return 0, ErrInvalidInput
	}
	for _, r := range resources {
		if r < 0 {
			return 0, ErrInvalidInput
		}
	}

	id := g.nextEdgeID
	g.nextEdgeID++

	e := Edge{
		ID:        id,
		From:      from,
		To:        to,
		Cost:      cost,
		Resources: append([]float64(nil), resources...),
	}

	g.out[from] = append(g.out[from], e)
	g.in[to] = append(g.in[to], e)
	g.predecessor[from][to] = true
	g.finalized = false

	return id, nil
}

// DeleteEdge removes every edge from->to from both adjacency lists and
// clears predecessor[from][to]. No-op if no such edge exists (spec.md
// §4.1: "delete_edge on missing edge is a no-op").
//
// Complexity: O(deg(from) + deg(to)).
func (g *Graph) DeleteEdge(from, to int) {
	if from < 0 || from >= g.NumNodes || to < 0 || to >= g.NumNodes {
		return
	}

	kept := g.out[from][:0]
	for _, e := range g.out[from] {
		if e.To != to {
			kept = append(kept, e)
		}
	}
	g.out[from] = kept

	keptIn := g.in[to][:0]
	for _, e := range g.in[to] {
		if e.From != from {
			keptIn = append(keptIn, e)
		}
	}
	g.in[to] = keptIn

	g.predecessor[from][to] = false
	g.finalized = false
}

// Neighbors returns the edges incident to v in the requested direction:
// out-edges (Forward) or in-edges (Backward). The returned slice is the
// internal storage and must not be mutated by callers.
func (g *Graph) Neighbors(v int, dir Direction) []Edge {
	if v < 0 || v >= g.NumNodes {
		return nil
	}
	if dir == Forward {
		return g.out[v]
	}
	return g.in[v]
}

// IsPredecessor reports whether some edge from->to exists, in O(1).
func (g *Graph) IsPredecessor(from, to int) bool {
	if from < 0 || from >= g.NumNodes || to < 0 || to >= g.NumNodes {
		return false
	}
	return g.predecessor[from][to]
}

// Finalize computes minWeight[v][k] (minimum outgoing edge's resources[k])
// and maxValue[v] (minimum outgoing edge cost) in one O(|E|*R) / O(|E|)
// pass, per spec.md §4.1. Must be called before the graph is handed to an
// Explorer or a lbound.Oracle. Vertices with no outgoing edges get the
// fallback sentinel minWeight[v][k] = ResMax[k] (the tightest valid upper
// bound on an unreachable contribution) and maxValue[v] = 0 (a vertex that
// can never be entered contributes nothing to the optimistic reward).
func (g *Graph) Finalize() {
	g.minWeight = make([][]float64, g.NumNodes)
	g.maxValue = make([]float64, g.NumNodes)

	for v := 0; v < g.NumNodes; v++ {
		mw := make([]float64, g.NumRes)
		copy(mw, g.ResMax)

		var maxVal float64
		for i, e := range g.out[v] {
			if i == 0 || e.Cost < maxVal {
				maxVal = e.Cost
			}
			for k := 0; k < g.NumRes; k++ {
				if e.Resources[k] < mw[k] {
					mw[k] = e.Resources[k]
				}
			}
		}
		if len(g.out[v]) == 0 {
			maxVal = 0
		}

		g.minWeight[v] = mw
		g.maxValue[v] = maxVal
	}

	g.finalized = true
}

// MinWeight returns minWeight[v][k] computed by the last Finalize() call.
// Returns ResMax[k] if Finalize has not been called or v is out of range.
func (g *Graph) MinWeight(v, k int) float64 {
	if !g.finalized || v < 0 || v >= g.NumNodes || k < 0 || k >= g.NumRes {
		if k >= 0 && k < len(g.ResMax) {
			return g.ResMax[k]
		}
		return 0
	}
	return g.minWeight[v][k]
}

// MaxValue returns maxValue[v] computed by the last Finalize() call.
func (g *Graph) MaxValue(v int) float64 {
	if !g.finalized || v < 0 || v >= g.NumNodes {
		return 0
	}
	return g.maxValue[v]
}

// Finalized reports whether Finalize() has been called since the last
// mutation (AddEdge/DeleteEdge).
func (g *Graph) Finalized() bool { return g.finalized }

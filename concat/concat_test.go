package concat_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/routeopt/espprc/bitset"
	"github.com/routeopt/espprc/concat"
	"github.com/routeopt/espprc/graph"
	"github.com/routeopt/espprc/label"
	"github.com/routeopt/espprc/store"
)

func makeLabel(vertex int, dir graph.Direction, path []int, cost float64, resources []float64, halfPoint bool, numNodes int) *label.Label {
	r := bitset.New(numNodes)
	for v := 0; v < numNodes; v++ {
		r.Set(v)
	}
	return &label.Label{
		Vertex:    vertex,
		Path:      path,
		Cost:      cost,
		Resources: resources,
		Reachable: r,
		Direction: dir,
		HalfPoint: halfPoint,
	}
}

func TestConcatenateJoinsAtSharedVertex(t *testing.T) {
	g, _ := graph.NewGraph(3, 1, []float64{10})
	g.Finalize()

	s := store.New()
	f := makeLabel(2, graph.Forward, []int{0, 2}, 3, []float64{2}, true, 3)
	b := makeLabel(2, graph.Backward, []int{2, 0}, 4, []float64{2}, true, 3)
	s.Insert(f)
	s.Insert(b)

	sol, ok := concat.Concatenate(g, s, 1e18)
	require.True(t, ok)
	require.Equal(t, []int{0, 2, 0}, sol.Path)
	require.Equal(t, 7.0, sol.Cost)
}

func TestConcatenateRejectsSharedInteriorVertex(t *testing.T) {
	g, _ := graph.NewGraph(4, 1, []float64{10})
	g.Finalize()

	s := store.New()
	f := makeLabel(3, graph.Forward, []int{0, 1, 3}, 1, []float64{1}, true, 4)
	b := makeLabel(3, graph.Backward, []int{3, 1, 0}, 1, []float64{1}, true, 4) // shares vertex 1
	s.Insert(f)
	s.Insert(b)

	_, ok := concat.Concatenate(g, s, 1e18)
	require.False(t, ok)
}

func TestConcatenateRejectsResourceOverflow(t *testing.T) {
	g, _ := graph.NewGraph(3, 1, []float64{3})
	g.Finalize()

	s := store.New()
	f := makeLabel(2, graph.Forward, []int{0, 2}, 1, []float64{2}, true, 3)
	b := makeLabel(2, graph.Backward, []int{2, 0}, 1, []float64{2}, true, 3) // 2+2 > 3

	s.Insert(f)
	s.Insert(b)

	_, ok := concat.Concatenate(g, s, 1e18)
	require.False(t, ok)
}

func TestConcatenateAcceptsOneSidedHalfPoint(t *testing.T) {
	g, _ := graph.NewGraph(3, 1, []float64{10})
	g.Finalize()

	s := store.New()
	f := makeLabel(2, graph.Forward, []int{0, 2}, 1, []float64{1}, false, 3)
	b := makeLabel(2, graph.Backward, []int{2, 0}, 1, []float64{1}, true, 3)
	s.Insert(f)
	s.Insert(b)

	sol, ok := concat.Concatenate(g, s, 1e18)
	require.True(t, ok)
	require.Equal(t, []int{0, 2, 0}, sol.Path)
	require.Equal(t, 2.0, sol.Cost)
}

func TestConcatenateRejectsNeitherHalfPoint(t *testing.T) {
	g, _ := graph.NewGraph(3, 1, []float64{10})
	g.Finalize()

	s := store.New()
	f := makeLabel(2, graph.Forward, []int{0, 2}, 1, []float64{1}, false, 3)
	b := makeLabel(2, graph.Backward, []int{2, 0}, 1, []float64{1}, false, 3)
	s.Insert(f)
	s.Insert(b)

	_, ok := concat.Concatenate(g, s, 1e18)
	require.False(t, ok)
}

func TestConcatenateAcrossEdgeJoinsDistinctVertices(t *testing.T) {
	g, _ := graph.NewGraph(4, 1, []float64{10})
	_, _ = g.AddEdge(1, 2, 5, []float64{1})
	g.Finalize()

	s := store.New()
	f := makeLabel(1, graph.Forward, []int{0, 1}, 1, []float64{1}, true, 4)
	b := makeLabel(2, graph.Backward, []int{2, 3, 0}, 1, []float64{1}, true, 4)
	s.Insert(f)
	s.Insert(b)

	sol, ok := concat.Concatenate(g, s, 1e18)
	require.True(t, ok)
	require.Equal(t, []int{0, 1, 2, 3, 0}, sol.Path)
	require.Equal(t, 7.0, sol.Cost) // 1 + edge(1,2)=5 + 1
}

func TestConcatenateAcrossEdgeRejectsSharedVertex(t *testing.T) {
	g, _ := graph.NewGraph(4, 1, []float64{10})
	_, _ = g.AddEdge(1, 2, 5, []float64{1})
	g.Finalize()

	s := store.New()
	f := makeLabel(1, graph.Forward, []int{0, 3, 1}, 1, []float64{1}, true, 4)
	b := makeLabel(2, graph.Backward, []int{2, 3, 0}, 1, []float64{1}, true, 4) // shares vertex 3
	s.Insert(f)
	s.Insert(b)

	_, ok := concat.Concatenate(g, s, 1e18)
	require.False(t, ok)
}

func TestFingerprintStableAndSensitiveToOrder(t *testing.T) {
	a := concat.Fingerprint([]int{0, 1, 2, 0})
	b := concat.Fingerprint([]int{0, 1, 2, 0})
	c := concat.Fingerprint([]int{0, 2, 1, 0})

	require.Equal(t, a, b)
	require.NotEqual(t, a, c)
	require.Equal(t, int64(4), a[0])
}

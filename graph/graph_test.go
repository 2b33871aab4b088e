package graph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/routeopt/espprc/graph"
)

func TestNewGraphValidation(t *testing.T) {
	cases := []struct {
		name             string
		numNodes, numRes int
		resMax           []float64
	}{
		{"zero nodes", 0, 1, []float64{1}},
		{"zero resources", 2, 0, []float64{}},
		{"wrong resMax length", 2, 2, []float64{1}},
		{"negative resMax", 2, 1, []float64{-1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := graph.NewGraph(tc.numNodes, tc.numRes, tc.resMax)
			require.True(t, errors.Is(err, graph.ErrInvalidInput))
		})
	}
}

func TestAddEdgeAndNeighbors(t *testing.T) {
	g, err := graph.NewGraph(3, 1, []float64{10})
	require.NoError(t, err)

	id0, err := g.AddEdge(0, 1, 2.0, []float64{1})
	require.NoError(t, err)
	require.Equal(t, 0, id0)

	id1, err := g.AddEdge(0, 1, 3.0, []float64{1}) // parallel edge, no dedup
	require.NoError(t, err)
	require.Equal(t, 1, id1)

	require.Len(t, g.Neighbors(0, graph.Forward), 2)
	require.Len(t, g.Neighbors(1, graph.Backward), 2)
	require.True(t, g.IsPredecessor(0, 1))
	require.False(t, g.IsPredecessor(1, 0))
}

func TestAddEdgeOutOfRange(t *testing.T) {
	g, _ := graph.NewGraph(2, 1, []float64{10})
	_, err := g.AddEdge(0, 5, 1.0, []float64{1})
	require.True(t, errors.Is(err, graph.ErrInvalidInput))

	_, err = g.AddEdge(0, 1, 1.0, []float64{1, 2})
	require.True(t, errors.Is(err, graph.ErrInvalidInput))

	_, err = g.AddEdge(0, 1, 1.0, []float64{-1})
	require.True(t, errors.Is(err, graph.ErrInvalidInput))
}

func TestDeleteEdge(t *testing.T) {
	g, _ := graph.NewGraph(2, 1, []float64{10})
	_, _ = g.AddEdge(0, 1, 1.0, []float64{1})
	require.True(t, g.IsPredecessor(0, 1))

	g.DeleteEdge(0, 1)
	require.False(t, g.IsPredecessor(0, 1))
	require.Empty(t, g.Neighbors(0, graph.Forward))

	g.DeleteEdge(0, 1) // no-op, no panic
}

func TestFinalizeStatistics(t *testing.T) {
	g, _ := graph.NewGraph(3, 1, []float64{10})
	_, _ = g.AddEdge(0, 1, -5.0, []float64{2})
	_, _ = g.AddEdge(0, 2, 3.0, []float64{1})

	require.False(t, g.Finalized())
	g.Finalize()
	require.True(t, g.Finalized())

	require.Equal(t, -5.0, g.MaxValue(0)) // cheapest out-edge cost
	require.Equal(t, 1.0, g.MinWeight(0, 0))

	require.Equal(t, 0.0, g.MaxValue(1)) // no out-edges
	require.Equal(t, 10.0, g.MinWeight(1, 0))
}

func TestToGonumCollapsesParallelEdgesToCheapest(t *testing.T) {
	g, _ := graph.NewGraph(2, 1, []float64{10})
	_, _ = g.AddEdge(0, 1, 5.0, []float64{1})
	_, _ = g.AddEdge(0, 1, 2.0, []float64{1})

	wg := g.ToGonum()
	edge := wg.WeightedEdge(simple.Node(0).ID(), simple.Node(1).ID())
	require.NotNil(t, edge)
	require.Equal(t, 2.0, edge.Weight())
}

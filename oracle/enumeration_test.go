package oracle_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/routeopt/espprc/graph"
	"github.com/routeopt/espprc/oracle"
)

func TestEnumerationOracleTwoNode(t *testing.T) {
	g, _ := graph.NewGraph(2, 1, []float64{5})
	_, _ = g.AddEdge(0, 1, -3, []float64{1})
	_, _ = g.AddEdge(1, 0, 1, []float64{1})
	g.Finalize()

	sol, err := oracle.EnumerationOracle{}.Solve(g)
	require.NoError(t, err)
	require.NotNil(t, sol)
	require.Equal(t, -2.0, sol.Cost)
	require.Equal(t, []int{0, 1, 0}, sol.Path)
}

func TestEnumerationOracleInfeasible(t *testing.T) {
	g, _ := graph.NewGraph(3, 1, []float64{2})
	_, _ = g.AddEdge(0, 1, 1, []float64{1})
	_, _ = g.AddEdge(1, 2, 1, []float64{1})
	_, _ = g.AddEdge(2, 0, 1, []float64{1})
	g.Finalize()

	sol, err := oracle.EnumerationOracle{}.Solve(g)
	require.NoError(t, err)
	require.Nil(t, sol)
}

func TestEnumerationOracleSizeLimit(t *testing.T) {
	g, _ := graph.NewGraph(oracle.MaxExactNodes+1, 1, []float64{5})
	g.Finalize()

	_, err := oracle.EnumerationOracle{}.Solve(g)
	require.ErrorIs(t, err, oracle.ErrSizeTooLarge)
}

func TestEnumerationOraclePicksCheapestCycle(t *testing.T) {
	g, _ := graph.NewGraph(3, 1, []float64{10})
	_, _ = g.AddEdge(0, 1, 1, []float64{1})
	_, _ = g.AddEdge(1, 0, 1, []float64{1}) // direct 2-cycle: cost 2
	_, _ = g.AddEdge(0, 2, 1, []float64{1})
	_, _ = g.AddEdge(2, 1, 1, []float64{1})
	_, _ = g.AddEdge(1, 2, 1, []float64{1})
	_, _ = g.AddEdge(2, 0, 10, []float64{1}) // longer cycle via 2: cost 12
	g.Finalize()

	sol, err := oracle.EnumerationOracle{}.Solve(g)
	require.NoError(t, err)
	require.Equal(t, 2.0, sol.Cost)
}

package store_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/routeopt/espprc/bitset"
	"github.com/routeopt/espprc/graph"
	"github.com/routeopt/espprc/label"
	"github.com/routeopt/espprc/store"
)

func newLabel(vertex int, cost float64, resources []float64, numNodes int) *label.Label {
	r := bitset.New(numNodes)
	for v := 0; v < numNodes; v++ {
		if v != vertex {
			r.Set(v)
		}
	}
	return &label.Label{
		Vertex:    vertex,
		Path:      []int{0, vertex},
		Cost:      cost,
		Resources: resources,
		Reachable: r,
		Direction: graph.Forward,
	}
}

func TestInsertEmptyList(t *testing.T) {
	s := store.New()
	l := newLabel(1, 1.0, []float64{1}, 3)

	outcome := s.Insert(l)
	require.Equal(t, store.Accepted, outcome)
	require.Equal(t, 1, s.Len())
}

func TestInsertSingleElementBucketAcceptsNonDominated(t *testing.T) {
	s := store.New()
	a := newLabel(1, 1.0, []float64{1}, 3)
	b := newLabel(1, 2.0, []float64{0.5}, 3) // costlier but lighter: incomparable with a

	require.Equal(t, store.Accepted, s.Insert(a))
	require.Equal(t, store.Accepted, s.Insert(b))
	require.Len(t, s.Iterate(1, graph.Forward), 2)
}

func TestInsertRejectsDominated(t *testing.T) {
	s := store.New()
	a := newLabel(1, 1.0, []float64{1, 1}, 4)
	b := newLabel(1, 2.0, []float64{2, 2}, 4)

	require.Equal(t, store.Accepted, s.Insert(a))
	require.Equal(t, store.Rejected, s.Insert(b)) // spec.md §8 Scenario 4
	require.Len(t, s.Iterate(1, graph.Forward), 1)
}

func TestInsertEvictsDominatedIncumbent(t *testing.T) {
	s := store.New()
	worse := newLabel(1, 5.0, []float64{5}, 3)
	better := newLabel(1, 1.0, []float64{1}, 3)

	require.Equal(t, store.Accepted, s.Insert(worse))
	require.Equal(t, store.Accepted, s.Insert(better))

	list := s.Iterate(1, graph.Forward)
	require.Len(t, list, 1)
	require.Equal(t, 1.0, list[0].Cost)
}

func TestCostAscendingOrder(t *testing.T) {
	s := store.New()
	// Labels incomparable in resources so neither dominates the other.
	c := newLabel(1, 3.0, []float64{1}, 3)
	a := newLabel(1, 1.0, []float64{3}, 3)
	b := newLabel(1, 2.0, []float64{2}, 3)

	s.Insert(c)
	s.Insert(a)
	s.Insert(b)

	list := s.Iterate(1, graph.Forward)
	require.Len(t, list, 3)
	require.Equal(t, 1.0, list[0].Cost)
	require.Equal(t, 2.0, list[1].Cost)
	require.Equal(t, 3.0, list[2].Cost)
}

func TestDominanceIdempotence(t *testing.T) {
	s := store.New()
	a := newLabel(1, 1.0, []float64{1}, 3)
	b := newLabel(1, 1.0, []float64{1}, 3)

	require.Equal(t, store.Accepted, s.Insert(a))
	require.Equal(t, store.Rejected, s.Insert(b)) // identical state: earlier wins
	require.Len(t, s.Iterate(1, graph.Forward), 1)
}

func TestPruneByUB(t *testing.T) {
	s := store.New()
	a := newLabel(1, 1.0, []float64{1}, 3)
	a.LB = 0
	b := newLabel(2, 5.0, []float64{1}, 3)
	b.LB = 10

	s.Insert(a)
	s.Insert(b)
	require.Equal(t, 2, s.Len())

	s.PruneByUB(3) // b.Cost+b.LB = 15 > 3
	require.Equal(t, 1, s.Len())
	require.Equal(t, 1, s.Stats().Pruned)
}

func TestStatsAccounting(t *testing.T) {
	s := store.New()
	a := newLabel(1, 1.0, []float64{1, 1}, 4)
	b := newLabel(1, 2.0, []float64{2, 2}, 4)

	s.Insert(a)
	s.Insert(b)

	stats := s.Stats()
	require.Equal(t, 1, stats.Accepted)
	require.Equal(t, 1, stats.Rejected)
}

// Package store implements the per-vertex, per-direction ordered label
// collections of spec.md §4.4: cost-ascending slices keyed by (vertex,
// direction), inserted with a dominance check and pruned by a running
// upper bound.
//
// Grounded on dijkstra/dijkstra.go's nodePQ (an ordered container keyed by
// a numeric priority) and tsp/bb.go's explicit-engine-struct-over-closures
// discipline: Store exposes plain methods over its own state, no
// goroutines, no locks (package explorer is documented as its sole,
// single-threaded writer).
package store

import (
	"sort"

	"github.com/routeopt/espprc/graph"
	"github.com/routeopt/espprc/label"
)

// Outcome is the result of an Insert call.
type Outcome int

const (
	// Accepted means the candidate was added to its bucket (and may have
	// displaced one or more dominated incumbents).
	Accepted Outcome = iota
	// Rejected means an existing label already dominates the candidate.
	Rejected
)

// Stats counts store activity across its lifetime, for tests that assert
// pruning strength changes expansion counts but never the final optimum
// (spec.md §8 Scenario 5). Grounded on tsp.TSResult's small-results-struct
// idiom.
type Stats struct {
	Accepted  int
	Rejected  int
	Dominated int // existing labels evicted by a later insertion
	Pruned    int // evicted by PruneByUB
}

type entry struct {
	lbl *label.Label
	seq int64
}

// Store holds non-dominated labels, bucketed by (vertex, direction) and
// kept cost-ascending within each bucket (spec.md invariant 5).
type Store struct {
	forward  map[int][]*entry
	backward map[int][]*entry
	seq      int64
	stats    Stats
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		forward:  make(map[int][]*entry),
		backward: make(map[int][]*entry),
	}
}

func (s *Store) bucket(vertex int, dir graph.Direction) map[int][]*entry {
	if dir == graph.Forward {
		return s.forward
	}
	return s.backward
}

// Insert adds l to its (vertex, direction) bucket unless an existing label
// already dominates it, evicting any existing labels l in turn dominates.
// Ties in the dominance relation are broken by insertion order (earlier
// wins), so Insert must assign l's sequence number before running any
// comparison.
func (s *Store) Insert(l *label.Label) Outcome {
	s.seq++
	l.SetSeq(s.seq)

	vertex, dir := l.Key()
	b := s.bucket(vertex, dir)
	list := b[vertex]

	if len(list) == 0 {
		b[vertex] = []*entry{{lbl: l, seq: l.Seq()}}
		s.stats.Accepted++
		return Accepted
	}

	if len(list) == 1 {
		existing := list[0]
		if existing.lbl.Dominates(l) {
			s.stats.Rejected++
			return Rejected
		}
		if l.Dominates(existing.lbl) {
			existing.lbl.Invalidate()
			b[vertex] = []*entry{{lbl: l, seq: l.Seq()}}
			s.stats.Dominated++
			s.stats.Accepted++
			return Accepted
		}
		pos := 0
		if l.Cost >= existing.lbl.Cost {
			pos = 1
		}
		b[vertex] = insertAt(list, pos, &entry{lbl: l, seq: l.Seq()})
		s.stats.Accepted++
		return Accepted
	}

	// Cost-ascending short-circuit (spec.md §4.4): an existing label can
	// only dominate l while its cost <= l.Cost.
	for _, e := range list {
		if e.lbl.Cost > l.Cost {
			break
		}
		if e.lbl.Dominates(l) {
			s.stats.Rejected++
			return Rejected
		}
	}

	survivors := list[:0:0]
	for _, e := range list {
		if l.Dominates(e.lbl) {
			e.lbl.Invalidate()
			s.stats.Dominated++
			continue
		}
		survivors = append(survivors, e)
	}

	pos := sort.Search(len(survivors), func(i int) bool {
		return survivors[i].lbl.Cost >= l.Cost
	})
	b[vertex] = insertAt(survivors, pos, &entry{lbl: l, seq: l.Seq()})
	s.stats.Accepted++
	return Accepted
}

func insertAt(list []*entry, pos int, e *entry) []*entry {
	list = append(list, nil)
	copy(list[pos+1:], list[pos:])
	list[pos] = e
	return list
}

// PruneByUB removes every stored label with Cost+LB > newUB, maintaining
// invariant 4.
func (s *Store) PruneByUB(newUB float64) {
	s.pruneMap(s.forward, newUB)
	s.pruneMap(s.backward, newUB)
}

func (s *Store) pruneMap(m map[int][]*entry, ub float64) {
	for v, list := range m {
		kept := list[:0:0]
		for _, e := range list {
			if e.lbl.Cost+e.lbl.LB > ub {
				e.lbl.Invalidate()
				s.stats.Pruned++
				continue
			}
			kept = append(kept, e)
		}
		m[v] = kept
	}
}

// Iterate returns a cost-ascending snapshot of the labels stored for
// (vertex, dir).
func (s *Store) Iterate(vertex int, dir graph.Direction) []*label.Label {
	list := s.bucket(vertex, dir)[vertex]
	out := make([]*label.Label, len(list))
	for i, e := range list {
		out[i] = e.lbl
	}
	return out
}

// Len returns the total number of currently stored labels across both
// directions.
func (s *Store) Len() int {
	n := 0
	for _, list := range s.forward {
		n += len(list)
	}
	for _, list := range s.backward {
		n += len(list)
	}
	return n
}

// Stats returns the store's running counters.
func (s *Store) Stats() Stats { return s.stats }

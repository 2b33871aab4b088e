// File: composite.go
// Role: Composite, the max-of-bounds combinator.
package lbound

import (
	"math"

	"github.com/routeopt/espprc/bitset"
	"github.com/routeopt/espprc/graph"
)

// compositeOracle combines several oracles by taking the max of their
// bounds: the max of any number of valid lower bounds is itself a valid,
// and at least as tight, lower bound.
type compositeOracle struct {
	oracles []Oracle
}

// Composite returns an Oracle whose bound is the maximum over every child
// oracle's bound. If any child returns ErrOracleFailure its contribution is
// skipped rather than failing the whole composite; if every child fails,
// Composite itself returns ErrOracleFailure so the caller can apply its
// LB = -Inf fallback.
func Composite(oracles ...Oracle) Oracle {
	return &compositeOracle{oracles: oracles}
}

func (c *compositeOracle) Bound(v int, residual []float64, reachable *bitset.Set, dir graph.Direction, g *graph.Graph) (float64, error) {
	best := math.Inf(-1)
	anyOK := false
	for _, o := range c.oracles {
		b, err := o.Bound(v, residual, reachable, dir, g)
		if err != nil {
			continue
		}
		anyOK = true
		if b > best {
			best = b
		}
	}
	if !anyOK {
		return 0, ErrOracleFailure
	}
	return best, nil
}

// File: knapsack.go
// Role: KnapsackOracle, the canonical relaxed-knapsack lower bound of
//       spec.md §4.3.
package lbound

import (
	"math"
	"sort"

	"github.com/routeopt/espprc/bitset"
	"github.com/routeopt/espprc/graph"
)

// KnapsackOracle implements spec.md §4.3's relaxed-knapsack formulation:
//
//	maximize   sum_v -maxValue[v] * x[v]
//	subject to sum_v minWeight[v][k] * x[v] <= residual[k]   for all k
//	           x[v] in {0,1}, x[v] <= reachable[v]
//
// A multi-dimensional 0/1 knapsack is itself NP-hard, and spec.md §4.3
// explicitly allows "any correct upper bound on the achievable reward ...
// an LP relaxation, a greedy ratio approach, or a zero bound". KnapsackOracle
// picks the single most binding resource dimension (least slack relative to
// aggregate demand) and solves *that* one-dimensional knapsack exactly via
// its fractional (LP) relaxation: a fractional optimum upper-bounds the true
// 0/1 optimum, and dropping every other resource dimension only relaxes the
// problem further, so the composed bound stays admissible (see DESIGN.md
// "Open Question resolutions", item 5).
//
// The reward optimum R bounds how far the still-reachable vertices can pull
// the completion cost down, so the bound returned is maxValue[d] - R, where
// d is the vertex the completion's first edge leaves: the label's vertex v
// (Forward) or the depot 0 (Backward). d is never in reachable, so its
// cheapest outgoing cost is added separately.
type KnapsackOracle struct{}

// Bound implements lbound.Oracle. The knapsack itself only cares which
// vertices remain reachable; v and dir only pick the departure vertex d.
func (KnapsackOracle) Bound(v int, residual []float64, reachable *bitset.Set, dir graph.Direction, g *graph.Graph) (float64, error) {
	for _, r := range residual {
		if r < 0 {
			// Already resource-infeasible: no completion exists, so +Inf is
			// a (vacuously) valid lower bound that forces pruning.
			return math.Inf(1), nil
		}
	}

	depart := v
	if dir == graph.Backward {
		depart = 0
	}

	k := mostBindingDimension(residual, reachable, g)
	items := reachable.Slice()

	type item struct {
		weight, reward float64
	}
	withWeight := make([]item, 0, len(items))
	var freeReward float64 // vertices with zero weight on dimension k

	for _, v := range items {
		w := g.MinWeight(v, k)
		r := -g.MaxValue(v)
		switch {
		case w <= 0 && r > 0:
			freeReward += r
		case w > 0:
			withWeight = append(withWeight, item{weight: w, reward: r})
		}
	}

	sort.Slice(withWeight, func(i, j int) bool {
		return withWeight[i].reward/withWeight[i].weight > withWeight[j].reward/withWeight[j].weight
	})

	capacity := residual[k]
	total := freeReward
	for _, it := range withWeight {
		if it.reward <= 0 {
			continue // never helps a maximization objective
		}
		if capacity <= 0 {
			break
		}
		if it.weight <= capacity {
			total += it.reward
			capacity -= it.weight
			continue
		}
		total += it.reward * (capacity / it.weight)
		capacity = 0
		break
	}

	return g.MaxValue(depart) - total, nil
}

// mostBindingDimension returns the resource index k whose aggregate demand
// from reachable vertices is largest relative to its residual budget: the
// dimension most likely to actually constrain the knapsack.
func mostBindingDimension(residual []float64, reachable *bitset.Set, g *graph.Graph) int {
	best, bestRatio := 0, -1.0
	for k := 0; k < len(residual); k++ {
		var demand float64
		for _, v := range reachable.Slice() {
			demand += g.MinWeight(v, k)
		}
		var ratio float64
		if residual[k] <= 0 {
			if demand > 0 {
				return k // immediately binding: zero budget, positive demand
			}
			ratio = 0
		} else {
			ratio = demand / residual[k]
		}
		if ratio > bestRatio {
			bestRatio = ratio
			best = k
		}
	}
	return best
}

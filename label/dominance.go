// File: dominance.go
// Role: the Label.Dominates relation of spec.md §4.2.
package label

// Dominates reports whether l dominates rival: both must share the same
// (vertex, direction) bucket (the caller, package store, only ever compares
// labels within one bucket). self dominates rival iff l.Cost <= rival.Cost,
// l.Resources[k] <= rival.Resources[k] for every k, and l.Reachable is a
// superset of rival.Reachable — ties broken by insertion order, so that
// equal-on-every-component labels still resolve deterministically (spec.md
// §9's open-question resolution: "earlier label wins").
func (l *Label) Dominates(rival *Label) bool {
	if l == rival {
		return false
	}
	if l.Cost > rival.Cost {
		return false
	}
	for k := range l.Resources {
		if l.Resources[k] > rival.Resources[k] {
			return false
		}
	}
	if !l.Reachable.SupersetOf(rival.Reachable) {
		return false
	}

	strictlyBetter := l.Cost < rival.Cost
	for k := range l.Resources {
		if l.Resources[k] < rival.Resources[k] {
			strictlyBetter = true
		}
	}
	if l.Reachable.Count() > rival.Reachable.Count() {
		strictlyBetter = true
	}
	if strictlyBetter {
		return true
	}

	// Every component tied: break by insertion order, earlier wins.
	return l.seq <= rival.seq
}

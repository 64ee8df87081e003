// File: search.go
// Role: The iterative DFS search driver. Go has no native generators, so the
// producer/consumer relationship of the algorithm this package is modeled on
// is expressed as an explicit stack plus a yield callback: yield is invoked
// once per full mapping found, in deterministic order, and may return false
// to stop the search early.
// Determinism:
//   - Candidate lists are computed fresh per frame from sorted indexes, so
//     repeated searches over the same graphs/mode produce identical
//     sequences of yielded mappings.
// Concurrency:
//   - A single search owns sp exclusively for its entire run; do not share a
//     StateParameters across concurrent searches.

package vf2

// searchFrame is one level of the explicit DFS stack: the G1 vertex being
// matched at this depth, its precomputed candidate list, and a cursor into
// it.
type searchFrame struct {
	u     string
	cands []string
	idx   int
}

// runSearch performs the full VF2++ search over gp, calling yield once per
// complete mapping (a fresh Mapping.Clone(), safe for the caller to retain).
// It stops as soon as yield returns false, or once the search space is
// exhausted.
func runSearch(gp *GraphParameters, sp *StateParameters, yield func(Mapping) bool) {
	order := matchingOrder(gp)
	// A complete mapping covers every pattern (G2) vertex, not every host
	// (G1) vertex — G1 may be strictly larger in ModeSUB/ModeIND, so the
	// matching order (which walks all of G1 per the matching-order pass)
	// only ever needs to be consumed down to n entries.
	n := gp.G2.Order()
	if n == 0 {
		yield(Mapping{}.Clone())
		return
	}

	stack := []searchFrame{{u: order[0], cands: findCandidates(gp, sp, order[0])}}
	var recs []*undoRecord

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		if top.idx >= len(top.cands) {
			stack = stack[:len(stack)-1]
			if len(recs) > 0 {
				popPair(sp, recs[len(recs)-1])
				recs = recs[:len(recs)-1]
			}
			continue
		}

		v := top.cands[top.idx]
		top.idx++

		if !feasible(gp, sp, top.u, v) {
			continue
		}

		rec := pushPair(gp, sp, top.u, v)
		recs = append(recs, rec)
		depth := len(stack)

		if depth == n {
			cont := yield(Mapping(sp.Mapping).Clone())
			popPair(sp, rec)
			recs = recs[:len(recs)-1]
			if !cont {
				return
			}
			continue
		}

		nextU := order[depth]
		stack = append(stack, searchFrame{u: nextU, cands: findCandidates(gp, sp, nextU)})
	}
}

// File: state.go
// Role: Partial-mapping state and the four VF2++ frontier sets, with
// bit-exact push/pop so the search driver can backtrack without rebuilding
// any set from scratch.
// Determinism:
//   - pushPair and popPair are inverses: popping the record produced by a
//     pushPair call restores every set to its exact pre-push membership.
// AI-HINT (file):
//   - Invariant: every uncovered vertex of a graph is in exactly one of
//     {Tk, TkOut} at all times. newStateParameters seeds TkOut with every
//     vertex of its graph; pushPair/popPair only ever move vertices between
//     the two sets or out of both (on covering), never insert from nowhere.

package vf2

// undoRecord captures exactly what pushPair changed, so popPair can restore
// the prior state without recomputation. Vertex IDs are recorded in the order
// they were moved; undo replays each move in reverse.
type undoRecord struct {
	g1, g2 string // the pair that was pushed

	// coveredWasInT1/T2: true if u (resp. v) was in Tk rather than TkOut
	// immediately before being covered.
	coveredWasInT1, coveredWasInT2 bool

	// promotedT1, promotedT2: uncovered neighbors of u (resp. v) that moved
	// from TkOut into Tk as a side effect of covering u/v.
	promotedT1 []string
	promotedT2 []string
}

// newStateParameters builds an empty StateParameters with T1Out/T2Out seeded
// to every vertex of g1/g2 respectively, per the frontier invariant.
func newStateParameters(gp *GraphParameters) *StateParameters {
	sp := &StateParameters{
		Mapping:        make(map[string]string),
		ReverseMapping: make(map[string]string),
		T1:             make(map[string]struct{}),
		T1Out:          make(map[string]struct{}),
		T2:             make(map[string]struct{}),
		T2Out:          make(map[string]struct{}),
	}
	for _, id := range gp.G1.Vertices() {
		sp.T1Out[id] = struct{}{}
	}
	for _, id := range gp.G2.Vertices() {
		sp.T2Out[id] = struct{}{}
	}
	return sp
}

// pushPair covers (u in G1, v in G2): records the mapping, removes u and v
// from whichever frontier set held them, and promotes each graph's uncovered
// neighbors of the newly covered vertex from TkOut into Tk.
func pushPair(gp *GraphParameters, sp *StateParameters, u, v string) *undoRecord {
	rec := &undoRecord{g1: u, g2: v}

	sp.Mapping[u] = v
	sp.ReverseMapping[v] = u

	rec.coveredWasInT1 = removeFromEither(sp.T1, sp.T1Out, u)
	rec.coveredWasInT2 = removeFromEither(sp.T2, sp.T2Out, v)

	for _, w := range gp.G1.Neighbors(u) {
		if _, covered := sp.Mapping[w]; covered {
			continue
		}
		if _, inOut := sp.T1Out[w]; inOut {
			delete(sp.T1Out, w)
			sp.T1[w] = struct{}{}
			rec.promotedT1 = append(rec.promotedT1, w)
		}
	}
	for _, w := range gp.G2.Neighbors(v) {
		if _, covered := sp.ReverseMapping[w]; covered {
			continue
		}
		if _, inOut := sp.T2Out[w]; inOut {
			delete(sp.T2Out, w)
			sp.T2[w] = struct{}{}
			rec.promotedT2 = append(rec.promotedT2, w)
		}
	}

	return rec
}

// popPair undoes exactly the changes recorded by the pushPair call that
// produced rec, restoring Mapping/ReverseMapping and all four frontier sets
// to their exact pre-push membership.
func popPair(sp *StateParameters, rec *undoRecord) {
	for i := len(rec.promotedT1) - 1; i >= 0; i-- {
		w := rec.promotedT1[i]
		delete(sp.T1, w)
		sp.T1Out[w] = struct{}{}
	}
	for i := len(rec.promotedT2) - 1; i >= 0; i-- {
		w := rec.promotedT2[i]
		delete(sp.T2, w)
		sp.T2Out[w] = struct{}{}
	}

	delete(sp.Mapping, rec.g1)
	delete(sp.ReverseMapping, rec.g2)

	if rec.coveredWasInT1 {
		sp.T1[rec.g1] = struct{}{}
	} else {
		sp.T1Out[rec.g1] = struct{}{}
	}
	if rec.coveredWasInT2 {
		sp.T2[rec.g2] = struct{}{}
	} else {
		sp.T2Out[rec.g2] = struct{}{}
	}
}

// removeFromEither deletes id from whichever of (in, out) currently holds it
// and reports whether it was found in in (as opposed to out).
func removeFromEither(in, out map[string]struct{}, id string) bool {
	if _, ok := in[id]; ok {
		delete(in, id)
		return true
	}
	delete(out, id)
	return false
}

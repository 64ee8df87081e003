// File: precheck.go
// Role: Fast structural rejection of (G1, G2, Mode) triples before any search
// begins, grounded on the three checks specified for this family of
// algorithms: size, degree sequence, and label histogram.
// Determinism:
//   - All comparisons operate on sorted slices/counts; no map-iteration order
//     ever affects the verdict.

package vf2

import "sort"

// precheck returns PrecheckOK when no structural obstruction rules out a
// mapping under mode, or the first violated reason otherwise. It never
// inspects edges beyond degree, so a PrecheckOK result is necessary but not
// sufficient for a mapping to exist.
func precheck(g1, g2 GraphView, mode Mode) PrecheckReason {
	if reason := precheckSize(g1, g2, mode); reason != PrecheckOK {
		return reason
	}
	if reason := precheckDegreeSequence(g1, g2, mode); reason != PrecheckOK {
		return reason
	}
	if reason := precheckLabelHistogram(g1, g2, mode); reason != PrecheckOK {
		return reason
	}
	return PrecheckOK
}

// precheckSize enforces the order relation required by mode: equality for
// ModeISO, |V(G1)| >= |V(G2)| for ModeSUB and ModeIND — G1 is the host graph
// being searched, G2 the pattern it must contain.
func precheckSize(g1, g2 GraphView, mode Mode) PrecheckReason {
	n1, n2 := g1.Order(), g2.Order()
	switch mode {
	case ModeISO:
		if n1 != n2 {
			return PrecheckSizeMismatch
		}
	case ModeSUB, ModeIND:
		if n1 < n2 {
			return PrecheckSizeMismatch
		}
	}
	return PrecheckOK
}

// precheckDegreeSequence compares sorted degree sequences. For ModeISO the
// sequences must match exactly. For ModeSUB and ModeIND, the host's (G1's)
// degree sequence must majorize the pattern's (G2's): it suffices (and is
// cheap) to require that G2's k-th largest degree never exceeds G1's k-th
// largest degree, for k = 1..|V(G2)|.
func precheckDegreeSequence(g1, g2 GraphView, mode Mode) PrecheckReason {
	d1 := degreeSequenceDesc(g1)
	d2 := degreeSequenceDesc(g2)

	switch mode {
	case ModeISO:
		if len(d1) != len(d2) {
			return PrecheckDegreeSequenceMismatch
		}
		for i := range d1 {
			if d1[i] != d2[i] {
				return PrecheckDegreeSequenceMismatch
			}
		}
	case ModeSUB, ModeIND:
		if len(d2) > len(d1) {
			return PrecheckDegreeSequenceMismatch
		}
		for i := range d2 {
			if d2[i] > d1[i] {
				return PrecheckDegreeSequenceMismatch
			}
		}
	}
	return PrecheckOK
}

// degreeSequenceDesc returns the degrees of every vertex in v, sorted
// descending.
func degreeSequenceDesc(v GraphView) []int {
	ids := v.Vertices()
	degs := make([]int, len(ids))
	for i, id := range ids {
		degs[i] = v.Degree(id)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(degs)))
	return degs
}

// precheckLabelHistogram compares per-label vertex counts. For ModeISO every
// label's count must match exactly. For ModeSUB and ModeIND, every label
// present in the pattern (G2) must appear in the host (G1) with at least as
// many vertices.
func precheckLabelHistogram(g1, g2 GraphView, mode Mode) PrecheckReason {
	h1 := labelHistogram(g1)
	h2 := labelHistogram(g2)

	switch mode {
	case ModeISO:
		if len(h1) != len(h2) {
			return PrecheckLabelHistogramMismatch
		}
		for label, c1 := range h1 {
			if h2[label] != c1 {
				return PrecheckLabelHistogramMismatch
			}
		}
	case ModeSUB, ModeIND:
		for label, c2 := range h2 {
			if h1[label] < c2 {
				return PrecheckLabelHistogramMismatch
			}
		}
	}
	return PrecheckOK
}

// labelHistogram tallies how many vertices of v carry each resolved label.
func labelHistogram(v GraphView) map[string]int {
	hist := make(map[string]int)
	for _, id := range v.Vertices() {
		hist[v.Label(id)]++
	}
	return hist
}

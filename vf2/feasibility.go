// File: feasibility.go
// Role: Per-candidate-pair feasibility testing: self-loop compatibility,
// consistency with already-mapped neighbors, and the 1-look-ahead cutting
// rules over the four frontier sets, all mode-aware.
// AI-HINT (file):
//   - consistent checks edges already decided by the partial mapping.
//   - cutPT checks necessary (not sufficient) conditions on frontier counts
//     per label, pruning branches that cannot possibly extend to a full
//     mapping without paying the cost of recursing into them.

package vf2

// feasible reports whether candidate pair (u, v) may be added to the partial
// mapping: self-loop multiplicity must be compatible, all edges between u and
// already-mapped G1 neighbors must be consistent with v's edges to their
// images, and the frontier cutting rules must not rule the pair out.
func feasible(gp *GraphParameters, sp *StateParameters, u, v string) bool {
	if !selfLoopCompatible(gp, u, v) {
		return false
	}
	if !consistentPT(gp, sp, u, v) {
		return false
	}
	return cutPT(gp, sp, u, v)
}

// selfLoopCompatible requires the self-loop multiplicities at u (host) and v
// (pattern) to satisfy the mode's relation: equality for ModeISO/ModeIND,
// >= for ModeSUB.
func selfLoopCompatible(gp *GraphParameters, u, v string) bool {
	lu := gp.G1.EdgeMultiplicity(u, u)
	lv := gp.G2.EdgeMultiplicity(v, v)
	return edgeMultiplicityCompatible(gp.Mode, lu, lv)
}

// consistentPT checks every G2 (pattern) neighbor of v that is already
// mapped: the edge multiplicity required between v and that neighbor must be
// compatible (per mode) with the edge multiplicity u actually has, in G1
// (host), to the neighbor's preimage. This is the essential direction for
// every mode — a pattern edge with no corresponding host edge always fails,
// never just for ModeISO/ModeIND. The check also walks u's already-mapped G1
// neighbors to catch host edges with no pattern counterpart, which ModeISO
// and ModeIND forbid and ModeSUB permits; edgeMultiplicityCompatible already
// reduces that second walk to a no-op for ModeSUB, so no mode branch is
// needed here.
func consistentPT(gp *GraphParameters, sp *StateParameters, u, v string) bool {
	for _, nbr2 := range gp.G2.Neighbors(v) {
		preimage, ok := sp.ReverseMapping[nbr2]
		if !ok {
			continue
		}
		m1 := gp.G1.EdgeMultiplicity(u, preimage)
		m2 := gp.G2.EdgeMultiplicity(v, nbr2)
		if !edgeMultiplicityCompatible(gp.Mode, m1, m2) {
			return false
		}
	}

	for _, nbr1 := range gp.G1.Neighbors(u) {
		image, ok := sp.Mapping[nbr1]
		if !ok {
			continue
		}
		m1 := gp.G1.EdgeMultiplicity(u, nbr1)
		m2 := gp.G2.EdgeMultiplicity(v, image)
		if !edgeMultiplicityCompatible(gp.Mode, m1, m2) {
			return false
		}
	}
	return true
}

// edgeMultiplicityCompatible applies the mode's relation between a G1 (host)
// edge multiplicity m1 and the corresponding G2 (pattern) edge multiplicity
// m2: the host must carry at least as much multiplicity as the pattern
// requires for ModeSUB, and exactly as much for ModeISO/ModeIND.
func edgeMultiplicityCompatible(mode Mode, m1, m2 int) bool {
	if mode == ModeSUB {
		return m1 >= m2
	}
	return m1 == m2
}

// cutPT applies the frontier-count cutting rules: for every label present
// among u's or v's neighbors, the number of u's neighbors in T1 (resp.
// T1_out) carrying that label must relate, per mode, to the number of v's
// neighbors in T2 (resp. T2_out) carrying that label.
func cutPT(gp *GraphParameters, sp *StateParameters, u, v string) bool {
	u1T1, u1T1Out := labelCountsOfNeighbors(gp.G1, gp.labelsOfG1, sp.T1, sp.T1Out, u)
	u2T2, u2T2Out := labelCountsOfNeighbors(gp.G2, gp.labelsOfG2, sp.T2, sp.T2Out, v)

	if !countsCompatible(gp.Mode, u1T1, u2T2) {
		return false
	}
	if !countsCompatible(gp.Mode, u1T1Out, u2T2Out) {
		return false
	}
	return true
}

// labelCountsOfNeighbors tallies, per label, how many neighbors of w fall in
// frontier and in frontierOut respectively.
func labelCountsOfNeighbors(g GraphView, labels map[string]string, frontier, frontierOut map[string]struct{}, w string) (map[string]int, map[string]int) {
	inFrontier := make(map[string]int)
	inFrontierOut := make(map[string]int)
	for _, nb := range g.Neighbors(w) {
		label := labels[nb]
		if _, ok := frontier[nb]; ok {
			inFrontier[label]++
		}
		if _, ok := frontierOut[nb]; ok {
			inFrontierOut[label]++
		}
	}
	return inFrontier, inFrontierOut
}

// countsCompatible requires, for every label key appearing on the G2
// (pattern) side, that the host's (G1's) frontier count of that label is
// enough to satisfy the pattern's: equality for ModeISO/ModeIND, >= for
// ModeSUB (the host may have more candidates waiting in the frontier than
// the pattern needs, but never fewer).
func countsCompatible(mode Mode, g1Counts, g2Counts map[string]int) bool {
	for label, c2 := range g2Counts {
		c1 := g1Counts[label]
		if mode == ModeSUB {
			if c1 < c2 {
				return false
			}
			continue
		}
		if c1 != c2 {
			return false
		}
	}
	if mode != ModeSUB {
		for label, c1 := range g1Counts {
			if g2Counts[label] != c1 {
				return false
			}
		}
	}
	return true
}

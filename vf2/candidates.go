// File: candidates.go
// Role: Per-step candidate generation for the vertex u currently being
// matched, restricted by label, degree, and (once u has covered G1
// neighbors) by G2-adjacency to their images.
// AI-HINT (file):
//   - When u has no covered G1 neighbor yet, candidates are every uncovered
//     G2 vertex of the same label and the degree relation required by mode,
//     drawn from T2Out (the frontier of a fresh component).
//   - When u has covered neighbors, candidates are restricted to the common
//     G2 neighborhood of their images, further filtered by label/degree.

package vf2

import "sort"

// findCandidates returns, in ascending vertex-ID order, the G2 vertices
// eligible to be matched against u given the current state.
func findCandidates(gp *GraphParameters, sp *StateParameters, u string) []string {
	coveredNeighbors := coveredG1Neighbors(gp, sp, u)

	if len(coveredNeighbors) == 0 {
		return candidatesFromFrontier(gp, sp, u)
	}
	return candidatesFromCommonNeighborhood(gp, sp, u, coveredNeighbors)
}

// coveredG1Neighbors returns u's G1 neighbors that are already mapped.
func coveredG1Neighbors(gp *GraphParameters, sp *StateParameters, u string) []string {
	var out []string
	for _, w := range gp.G1.Neighbors(u) {
		if _, ok := sp.Mapping[w]; ok {
			out = append(out, w)
		}
	}
	return out
}

// candidatesFromFrontier handles the no-covered-neighbor case: intersect
// G2's same-label vertices (drawn from the precomputed nodesOfG2Label index,
// or further narrowed by g2NodesOfDegree when mode demands exact degree
// equality) with T2Out (uncovered, not yet adjacent to the mapped region).
func candidatesFromFrontier(gp *GraphParameters, sp *StateParameters, u string) []string {
	label := gp.labelsOfG1[u]
	degU := gp.G1.Degree(u)

	pool := gp.nodesOfG2Label[label]
	if gp.Mode != ModeSUB {
		pool = intersectSorted(pool, gp.g2NodesOfDegree[degU])
	}

	var out []string
	for _, v := range pool {
		if _, mapped := sp.ReverseMapping[v]; mapped {
			continue
		}
		if _, inOut := sp.T2Out[v]; !inOut {
			continue
		}
		if !degreeCompatible(gp.Mode, degU, gp.G2.Degree(v)) {
			continue
		}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// intersectSorted returns the intersection of two ascending-sorted string
// slices.
func intersectSorted(a, b []string) []string {
	var out []string
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return out
}

// candidatesFromCommonNeighborhood handles the has-covered-neighbor case:
// intersect the G2 neighborhoods of every covered neighbor's image, then
// filter by label, degree, and uncovered status.
func candidatesFromCommonNeighborhood(gp *GraphParameters, sp *StateParameters, u string, coveredNeighbors []string) []string {
	label := gp.labelsOfG1[u]
	degU := gp.G1.Degree(u)

	var common map[string]struct{}
	for _, nbr1 := range coveredNeighbors {
		image := sp.Mapping[nbr1]
		neighborsOfImage := gp.G2.Neighbors(image)
		if common == nil {
			common = make(map[string]struct{}, len(neighborsOfImage))
			for _, w := range neighborsOfImage {
				common[w] = struct{}{}
			}
			continue
		}
		next := make(map[string]struct{}, len(common))
		for _, w := range neighborsOfImage {
			if _, ok := common[w]; ok {
				next[w] = struct{}{}
			}
		}
		common = next
		if len(common) == 0 {
			break
		}
	}

	out := make([]string, 0, len(common))
	for v := range common {
		if _, mapped := sp.ReverseMapping[v]; mapped {
			continue
		}
		if gp.labelsOfG2[v] != label {
			continue
		}
		if !degreeCompatible(gp.Mode, degU, gp.G2.Degree(v)) {
			continue
		}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// degreeCompatible reports whether a G1 (host) vertex of degree degU may be
// matched to a G2 (pattern) vertex of degree degV under mode: exact equality
// for ModeISO and ModeIND (induced subgraphs preserve non-adjacency, so
// degree equality within the mapped region is required at the endpoint level
// too), and degU >= degV for ModeSUB (the host vertex may carry extra
// incident edges beyond what the pattern requires).
func degreeCompatible(mode Mode, degU, degV int) bool {
	switch mode {
	case ModeSUB:
		return degU >= degV
	default: // ModeISO, ModeIND
		return degU == degV
	}
}

// File: params.go
// Role: Builds the immutable GraphParameters bundle once per query: resolved
// vertex labels and the label/degree indexes the candidate generator relies
// on, grounded on the namedtuple the algorithm this package is modeled on
// builds during initialization.
// AI-HINT (file):
//   - Everything here is computed exactly once; GraphParameters is read-only
//     for the remainder of a search.

package vf2

// newGraphParameters precomputes every index the solver needs from g1 and g2
// under mode, without touching any mutable search state.
func newGraphParameters(g1, g2 GraphView, mode Mode) *GraphParameters {
	gp := &GraphParameters{
		G1:              g1,
		G2:              g2,
		Mode:            mode,
		labelsOfG1:      make(map[string]string),
		labelsOfG2:      make(map[string]string),
		nodesOfG1Label:  make(map[string][]string),
		nodesOfG2Label:  make(map[string][]string),
		g2NodesOfDegree: make(map[int][]string),
	}

	for _, id := range g1.Vertices() {
		label := g1.Label(id)
		gp.labelsOfG1[id] = label
		gp.nodesOfG1Label[label] = append(gp.nodesOfG1Label[label], id)
	}
	for _, id := range g2.Vertices() {
		label := g2.Label(id)
		gp.labelsOfG2[id] = label
		gp.nodesOfG2Label[label] = append(gp.nodesOfG2Label[label], id)

		deg := g2.Degree(id)
		gp.g2NodesOfDegree[deg] = append(gp.g2NodesOfDegree[deg], id)
	}

	return gp
}

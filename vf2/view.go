// File: view.go
// Role: Adapts a *core.Graph into the read-only GraphView surface the vf2
// algorithm consumes.
// Determinism:
//   - Vertices() and Neighbors() are always returned sorted ascending by ID,
//     matching core.Graph's own NeighborIDs ordering guarantee.
// Concurrency:
//   - coreGraphView holds no mutable state of its own; every call delegates
//     straight through to *core.Graph, which guards itself with its own locks.
// AI-HINT (file):
//   - A vertex with no Metadata[labelKey] entry (or a non-string entry)
//     resolves to defaultLabel, never to an error.

package vf2

import (
	"sort"

	"github.com/katalvlaran/vf2pp/core"
)

// coreGraphView adapts a *core.Graph to GraphView using a configurable
// Metadata key for categorical vertex labels.
type coreGraphView struct {
	g            *core.Graph
	labelKey     string
	defaultLabel string
}

// NewGraphView wraps g as a GraphView, resolving each vertex's label from
// Metadata[labelKey] (falling back to defaultLabel when absent or of the
// wrong type). g must not be nil.
func NewGraphView(g *core.Graph, labelKey, defaultLabel string) (GraphView, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	return &coreGraphView{g: g, labelKey: labelKey, defaultLabel: defaultLabel}, nil
}

// Order implements GraphView.
func (v *coreGraphView) Order() int {
	return v.g.VertexCount()
}

// Vertices implements GraphView.
func (v *coreGraphView) Vertices() []string {
	ids := v.g.Vertices()
	sort.Strings(ids)
	return ids
}

// Degree implements GraphView. It sums the graph's own in/out/undirected
// tally, so directed, undirected, and mixed graphs all report total incidence.
func (v *coreGraphView) Degree(id string) int {
	in, out, undirected, err := v.g.Degree(id)
	if err != nil {
		return 0
	}
	return in + out + undirected
}

// Neighbors implements GraphView, returning distinct sorted neighbor IDs.
func (v *coreGraphView) Neighbors(id string) []string {
	ids, err := v.g.NeighborIDs(id)
	if err != nil {
		return nil
	}
	sort.Strings(ids)
	return ids
}

// EdgeMultiplicity implements GraphView by counting every edge incident to u
// whose other endpoint is v (directed edges from either side count).
func (v *coreGraphView) EdgeMultiplicity(u, v2 string) int {
	edges, err := v.g.Neighbors(u)
	if err != nil {
		return 0
	}
	count := 0
	for _, e := range edges {
		if (e.From == u && e.To == v2) || (e.From == v2 && e.To == u) {
			count++
		}
	}
	return count
}

// Label implements GraphView.
func (v *coreGraphView) Label(id string) string {
	vertex, ok := v.g.VerticesMap()[id]
	if !ok || vertex.Metadata == nil {
		return v.defaultLabel
	}
	raw, ok := vertex.Metadata[v.labelKey]
	if !ok {
		return v.defaultLabel
	}
	s, ok := raw.(string)
	if !ok || s == "" {
		return v.defaultLabel
	}
	return s
}

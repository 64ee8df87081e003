// File: gonum.go
// Role: Read-only adapter from *core.Graph to the github.com/gonum/graph
// Node/Edge/Graph interfaces, so callers can run gonum's own traversal and
// search algorithms (shortest paths, topological sort, connected
// components) over a graph built or matched by this module without
// duplicating that logic here.
// Determinism:
//   - NodeList() is sorted by the wrapped vertex ID, and each graph.Node's
//     integer ID is assigned by that same sorted position, so repeated calls
//     against an unchanged *core.Graph are stable.
// AI-HINT (file):
//   - This adapter is one-directional (core.Graph -> graph.Graph) and
//     read-only; it never mutates the wrapped *core.Graph.

package converters

import (
	"sort"

	"github.com/gonum/graph"

	"github.com/katalvlaran/vf2pp/core"
)

// coreNode is a graph.Node backed by a vertex's position in the adapter's
// sorted vertex list.
type coreNode struct {
	id  int
	vid string
}

// ID implements graph.Node.
func (n coreNode) ID() int { return n.id }

// coreEdge is a graph.Edge backed by a *core.Edge's endpoints.
type coreEdge struct {
	head, tail coreNode
	weight     float64
}

// Head implements graph.Edge.
func (e coreEdge) Head() graph.Node { return e.head }

// Tail implements graph.Edge.
func (e coreEdge) Tail() graph.Node { return e.tail }

// GraphView adapts a *core.Graph to graph.Graph (and graph.Coster, via
// Cost) for read-only consumption by gonum's search algorithms.
type GraphView struct {
	g     *core.Graph
	nodes []coreNode
	byID  map[string]coreNode
	byInt map[int]coreNode
}

// NewGraphView builds a GraphView over g. Vertex IDs are assigned integer
// node IDs in ascending lexicographic order of their string IDs.
func NewGraphView(g *core.Graph) *GraphView {
	ids := g.Vertices()
	sort.Strings(ids)

	v := &GraphView{
		g:     g,
		nodes: make([]coreNode, len(ids)),
		byID:  make(map[string]coreNode, len(ids)),
		byInt: make(map[int]coreNode, len(ids)),
	}
	for i, id := range ids {
		n := coreNode{id: i, vid: id}
		v.nodes[i] = n
		v.byID[id] = n
		v.byInt[i] = n
	}
	return v
}

// Has implements graph.Graph.
func (v *GraphView) Has(n graph.Node) bool {
	_, ok := v.byInt[n.ID()]
	return ok
}

// NodeList implements graph.Graph.
func (v *GraphView) NodeList() []graph.Node {
	out := make([]graph.Node, len(v.nodes))
	for i, n := range v.nodes {
		out[i] = n
	}
	return out
}

// Neighbors implements graph.Graph.
func (v *GraphView) Neighbors(n graph.Node) []graph.Node {
	cn, ok := v.byInt[n.ID()]
	if !ok {
		return nil
	}
	ids, err := v.g.NeighborIDs(cn.vid)
	if err != nil {
		return nil
	}
	out := make([]graph.Node, 0, len(ids))
	for _, id := range ids {
		out = append(out, v.byID[id])
	}
	return out
}

// EdgeBetween implements graph.Graph, returning the first edge found between
// the two nodes' vertices (callers needing every parallel edge should use
// *core.Graph.Neighbors directly).
func (v *GraphView) EdgeBetween(a, b graph.Node) graph.Edge {
	ca, okA := v.byInt[a.ID()]
	cb, okB := v.byInt[b.ID()]
	if !okA || !okB {
		return nil
	}
	edges, err := v.g.Neighbors(ca.vid)
	if err != nil {
		return nil
	}
	for _, e := range edges {
		if (e.From == ca.vid && e.To == cb.vid) || (e.From == cb.vid && e.To == ca.vid) {
			return coreEdge{head: ca, tail: cb, weight: float64(e.Weight)}
		}
	}
	return nil
}

// Cost implements graph.Coster using the wrapped edge's weight.
func (v *GraphView) Cost(e graph.Edge) float64 {
	ce, ok := e.(coreEdge)
	if !ok {
		return 1
	}
	return ce.weight
}

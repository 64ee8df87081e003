// Package converters adapts core.Graph to the read-only graph.Graph surface
// of github.com/gonum/graph, so a caller can run gonum's own search and
// traversal algorithms (shortest paths, topological sort, connected
// components) over a graph this module built or matched, without
// reimplementing those algorithms here.
//
// See gonum.go for the adapter (GraphView) and its supporting Node/Edge
// wrappers.
package converters

// Package vf2pp is a VF2++ graph and subgraph isomorphism toolkit for Go.
//
// 🚀 What is vf2pp?
//
//	A thread-safe graph substrate plus a deterministic VF2++ matcher:
//
//	  • Core primitives: create vertices & edges, mutate safely under locks
//	  • Fixture builders: cycles, paths, grids, Platonic solids, and more
//	  • VF2++ matching: isomorphism, subgraph, and induced-subgraph search
//
// ✨ Why choose vf2pp?
//
//   - Deterministic    — fixed matching order and candidate iteration mean
//     repeated searches over the same inputs always yield mappings in the
//     same order
//   - Rock-solid       — built-in R/W locks on the graph store ensure
//     thread-safety; a search owns its own state exclusively
//   - Label-aware      — categorical vertex labels participate in every
//     pruning rule, not just an afterthought filter
//   - Pure Go          — no cgo; the only non-stdlib dependencies are
//     testify (tests) and gonum/graph (optional interop)
//
// Everything is organized under four subpackages:
//
//	core/       — fundamental Graph, Vertex, Edge types & thread-safe primitives
//	builder/    — functional-options fixture constructors for core.Graph
//	vf2/        — the VF2++ matcher: FindMapping, IsIsomorphic, SubgraphIsIsomorphic,
//	              InducedSubgraphIsIsomorphic, AllMappings
//	converterts/ — package converters: read-only adapter from core.Graph to gonum/graph's interfaces
//
// Quick example:
//
//	g1 := core.NewGraph()
//	g2 := core.NewGraph()
//	// ... build g1 and g2 ...
//	ok, err := vf2.IsIsomorphic(g1, g2, vf2.DefaultLabelKey, vf2.DefaultLabel)
//
//	go get github.com/katalvlaran/vf2pp
package vf2pp

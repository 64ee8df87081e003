// SPDX-License-Identifier: MIT
// Package: vf2pp/vf2
//
// Package vf2 implements the VF2++ algorithm for graph and subgraph
// isomorphism over labeled, undirected, possibly multi-edged graphs.
//
// The package is organized around five collaborating pieces:
//
//   - GraphView (view.go):        a minimal read-only adapter over core.Graph.
//   - precheck (precheck.go):     fast rejection of trivially impossible pairs.
//   - state (state.go):           the partial mapping plus frontier sets,
//     with bit-exact push/pop.
//   - matching order (order.go):  the deterministic VF2++ vertex ordering.
//   - candidates (candidates.go) and feasibility (feasibility.go): per-step
//     branching and pruning.
//
// search.go drives these pieces through an explicit iterative stack, and
// api.go exposes the five operations a caller needs: FindMapping,
// IsIsomorphic, SubgraphIsIsomorphic, InducedSubgraphIsIsomorphic, and
// AllMappings.
//
// Determinism:
//   - For fixed graphs, labels, and mode, mappings are produced in a fixed
//     order driven entirely by the matching order and candidate iteration
//     order; vertex-id ordering is the tie-break of last resort throughout.
//
// Concurrency:
//   - Each API call builds and exclusively owns its mutable search state;
//     GraphView and its derived indexes are read-only after construction.
//     Multiple calls may run concurrently over the same graphs.
package vf2

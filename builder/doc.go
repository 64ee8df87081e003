// Package builder provides reusable “functional‐options”‐style building blocks
// for constructing core.Graph fixtures. It lives alongside core to centralize
// common configuration, ID schemes, weight distributions, categorical vertex
// labeling, and validation logic, keeping implementations DRY, testable, and
// consistent.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, ID‐scheme, weight function, etc.
//   - Vertex‐ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – SymbolIDFn:        single letters ("A","B",…).
//     – ExcelColumnIDFn:   Excel‐style columns ("A","Z","AA",…).
//     – AlphanumericIDFn:  base-36 strings ("0"…"z","10",…).
//     – HexIDFn:           lowercase hexadecimal ("0","a","ff",…).
//   - Edge‐weight distributions (WeightFn implementations):
//     – DefaultWeightFn:   constant weight DefaultEdgeWeight.
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   uniform ∼U[min,max].
//     – NormalWeightFn:    Gaussian ∼N(mean,stddev), clipped.
//     – ExponentialWeightFn: exponential ∼Exp(rate).
//   - Validation helpers:
//     – validateMin:       ensure integer ≥ minimum.
//     – validatePartition: ensure bipartition sizes ≥1.
//     – validateProbability: ensure p ∈ [0.0,1.0].
//   - Shared constants:
//     – MinCycleNodes, MinPathNodes, MinStarNodes, MinWheelNodes, MinGridDim.
//     – DefaultEdgeWeight, MinProbability, MaxProbability.
//     – MethodCycle, MethodPath, … tokens for builderErrorf context.
//
// Guarantees:
//
//   - Deterministic construction: the same builder and options on a fresh graph
//     yield the same vertices and edges (re-running on the same graph adds edges again).
//   - Fast‐fail on invalid option parameters via panics in option‐constructors.
//   - Structured runtime errors for invalid build parameters: a method-name prefix
//     plus a wrapped sentinel (%w) for errors.Is filtering.
//   - Documented algorithmic complexity (O(n), O(n²), O(V+E), etc.) per constructor.
//   - Unit tests for constructors, IDFn, WeightFn, and configuration live in
//     builder_impl_test.go, id_fn_test.go, weight_fn_test.go, and config_test.go.
//
// See individual function documentation for detailed contracts, panic conditions,
// parameter descriptions, and performance notes.
package builder

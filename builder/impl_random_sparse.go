// SPDX-License-Identifier: MIT
// Package: vf2pp/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model (approved in Ta-builder V1):
//   - Erdős–Rényi-like generator: include each admissible edge independently with prob p.
//   - Undirected: iterate unordered pairs {i,j} with i<j.
//   - Directed: iterate ordered pairs (i,j); allow self-loops iff g.Looped()==true.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Weight policy: if g.Weighted() then cfg.weightFn(cfg.rng) else 0.
//   - Honors core flags (Directed/Weighted/Loops/Multigraph) without silent degrade.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n) vertices + O(n²) Bernoulli trials / edge checks.
//   - Space: O(1) extra (no global buffers).
//
// Determinism:
//   - Stable vertex order: i asc.
//   - Stable edge-trial order: for each i asc, j asc (undirected uses j>i).
//   - Deterministic outcomes for fixed seed/options due to fixed trial order.
//   - p==0.0 / p==1.0 are deterministic even with a nil RNG (no trial needed).

package builder

import (
	"fmt"

	"github.com/katalvlaran/vf2pp/core"
)

// File-local constants (no magic literals; stable method tag and domains).
const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi-like graph
// over n vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	// The returned closure captures (n, p); BuildGraph supplies (g, cfg).
	return func(g *core.Graph, cfg builderConfig) error {
		// Validate vertex count domain: n must be at least 1.
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}

		// Validate probability: must lie in the closed interval [0,1].
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}

		// RNG is only required when 0 < p < 1 (true stochastic sampling).
		if cfg.rng == nil && p > 0.0 && p < 1.0 {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// Add all vertices deterministically via cfg.idFn (IDs 0..n-1).
		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodRandomSparse, id, err)
			}
			setVertexLabel(g, id, cfg.labelFor(i))
		}

		// Cache mode flags for single-branch logic.
		useWeight := g.Weighted()
		rng := cfg.rng
		loops := g.Looped()
		directed := g.Directed()

		// include reports whether a Bernoulli(p) trial admits the edge,
		// deterministically for p ∈ {0,1} even without an RNG.
		include := func() bool {
			if p == 0.0 {
				return false
			}
			if p == 1.0 {
				return true
			}

			return rng.Float64() <= p
		}

		weightFor := func() int64 {
			if !useWeight {
				return 0
			}

			return cfg.weightFn(rng)
		}

		if directed {
			// Directed case: consider all ordered pairs (i,j).
			for i := 0; i < n; i++ {
				u := cfg.idFn(i)
				for j := 0; j < n; j++ {
					if i == j && !loops {
						continue
					}
					if !include() {
						continue
					}
					v := cfg.idFn(j)
					w := weightFor()
					if _, err := g.AddEdge(u, v, w); err != nil {
						return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", methodRandomSparse, u, v, w, err)
					}
				}
			}
		} else {
			// Undirected case: consider unordered pairs {i,j} with i<j (no duplicates).
			for i := 0; i < n; i++ {
				u := cfg.idFn(i)
				for j := i + 1; j < n; j++ {
					if !include() {
						continue
					}
					v := cfg.idFn(j)
					w := weightFor()
					if _, err := g.AddEdge(u, v, w); err != nil {
						return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", methodRandomSparse, u, v, w, err)
					}
				}
			}
		}

		// Success: random sparse graph sampled deterministically for a fixed seed.
		return nil
	}
}

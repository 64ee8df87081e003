// SPDX-License-Identifier: MIT
// Package: vf2pp/builder
//
// config.go — the resolved configuration every constructor reads from.
//
// Contract (strict):
//   • builderConfig is assembled once per BuildGraph/BuildXxx call via
//     newBuilderConfig(opts...) and then treated as read-only by constructors.
//   • Defaults are deterministic: nil RNG, decimal IDs, DefaultWeightFn,
//     empty vertex label, canonical bipartite prefixes.
//   • Later options override earlier ones (last-wins), matching how
//     core.GraphOption/EdgeOption resolve.

package builder

import (
	"math/rand"
)

// builderConfig holds every knob a Constructor may consult:
//   - rng:          optional RNG; nil means deterministic (non-random) behavior.
//   - idFn:         index -> vertex ID generator.
//   - weightFn:     RNG -> edge weight generator (consulted only on weighted graphs).
//   - leftPrefix/rightPrefix: side labels for CompleteBipartite.
//   - defaultLabel: categorical label applied to every vertex a constructor emits.
//   - labelByIndex: per-index label override, consulted before defaultLabel.
//
// builderConfig is not safe for concurrent mutation; each top-level call
// creates its own instance via newBuilderConfig.
type builderConfig struct {
	rng      *rand.Rand
	idFn     IDFn
	weightFn WeightFn

	leftPrefix, rightPrefix string

	defaultLabel string
	labelByIndex map[int]string
}

// newBuilderConfig returns a builderConfig seeded with deterministic defaults,
// then applies opts in order (later options override earlier ones).
//
// Complexity: O(len(opts)) time, O(1) extra space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:         nil,
		idFn:        DefaultIDFn,
		weightFn:    DefaultWeightFn,
		leftPrefix:  "L",
		rightPrefix: "R",
	}

	var opt BuilderOption
	for _, opt = range opts {
		opt(&cfg)
	}

	return cfg
}

// labelFor resolves the categorical label for vertex index idx: an explicit
// labelByIndex entry wins, otherwise defaultLabel (possibly empty) applies.
func (cfg *builderConfig) labelFor(idx int) string {
	if cfg.labelByIndex != nil {
		if lbl, ok := cfg.labelByIndex[idx]; ok {
			return lbl
		}
	}

	return cfg.defaultLabel
}

// SPDX-License-Identifier: MIT
// Package: vf2pp/builder
//
// impl_hexagram.go — Star-of-David (hexagram) patterns as deterministic builders.
//
// Purpose:
//   - Provide several hexagram variants by overlaying chord sets over a base cycle/wheel.
//   - Keep full determinism, idempotency, and respect for core flags.
//   - Weight policy: if g.Weighted() → cfg.weightFn(cfg.rng); else weight=0.
//
// Contract:
//   - Hexagram(variant) returns a Constructor (no panics, sentinel errors only).
//   - Base ring vertices are assumed to be indexed with cfg.idFn(0..n-1).
//   - For Wheel-based variants, we do not touch the hub ("Center"); chords connect ring vertices.
//   - Directed graphs: we explicitly mirror semantic undirected edges.
//
// Complexity:
//   - O(n + |chords|) time, O(1) extra space; n is the base ring size per variant.
//
// Design contract:
//  – Ring IDs follow cfg.idFn(0..n-1); wheel hub is literal "Center" (document explicitly).
//  - Idempotency: chords are added only if edge absent (both orientations for undirected).
//  - Directed mirroring: always mirror to preserve undirected semantics.
//
// AI-Hints:
//  - To add a new variant, extend hexSizes and hexChordSets only; do not touch builder logic.
//  - Keep chord emission order stable to preserve determinism (affects weight RNG sequence).
//  - If you need weighted chords with a different distribution than the base ring, inject a local weightFn via a dedicated option and read it in the constructor (backward-compatible).

package builder

import (
	"fmt"

	"github.com/katalvlaran/vf2pp/core"
)

// ----------------------------
// Context tag for error wraps.
// ----------------------------

const methodHexagram = "Hexagram" // used in error messages

// Variant enumeration, ring sizes, and chord sets live in variants.go
// (HexagramVariant, hexSizes, hexChordSets, Chord) — shared with no
// redeclaration here.

// ----------------------------------------
// Local hasEdge consistent with semantics.
// ----------------------------------------

func hasEdgeUndirAware(g *core.Graph, u, v string) bool {
	if g.Directed() {
		return g.HasEdge(u, v)
	}
	return g.HasEdge(u, v) || g.HasEdge(v, u)
}

// ----------------------------------------
// Public constructor.
// ----------------------------------------

// Hexagram builds a Star-of-David pattern for the given variant.
//
// Base:
//   - HexDefault/HexMedium → base ring via Cycle(n).
//   - HexBig/HexHuge       → base ring + hub via Wheel(n+1) (hub is "Center").
//
// Chords:
//   - Overlayed between ring vertices only (no hub involvement).
//
// Directed policy:
//   - We preserve undirected semantics by mirroring (u→v) and (v→u).
//
// Weight policy:
//   - If g.Weighted(): weight := cfg.weightFn(cfg.rng); else 0.
//
// Returns:
//
//	– Constructor.
//
// Errors:
//   - ErrOptionViolation (wrapped with "Hexagram: unknown variant") for an unknown variant.
//   - ErrConstructFailed (wrapped) for a variant without base or chords.
//   - Cycle/Wheel and core.AddEdge errors, wrapped with the "Hexagram:" prefix.
//
// Complexity:
//   - O(hSize + |chords|) time, O(1) space.
func Hexagram(variant HexagramVariant) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// Resolve ring size.
		n, ok := hexSizes[variant]
		if !ok || n <= 0 {
			return fmt.Errorf("%s: unknown variant %v: %w", methodHexagram, variant, ErrOptionViolation)
		}

		// Build base structure deterministically.
		switch variant {
		case HexDefault, HexMedium:
			if err := Cycle(n)(g, cfg); err != nil {
				return fmt.Errorf("%s: base cycle: %w", methodHexagram, err)
			}
		case HexBig, HexHuge:
			// Wheel(k) rings a cycle of size (k-1) plus a "Center" hub; request
			// k=n+1 so the ring itself has exactly n vertices for chord indices below.
			if err := Wheel(n + 1)(g, cfg); err != nil {
				return fmt.Errorf("%s: base wheel: %w", methodHexagram, err)
			}
		default:
			return fmt.Errorf("%s: unhandled variant %v: %w", methodHexagram, variant, ErrConstructFailed)
		}

		// Fetch chords to overlay (stable emission order).
		set, ok := hexChordSets[variant]
		if !ok || len(set) == 0 {
			return fmt.Errorf("%s: missing chords for %v: %w", methodHexagram, variant, ErrConstructFailed)
		}

		// Weight resolution once per edge (deterministic for same rng state).
		var w int64
		nextWeight := func() int64 {
			if g.Weighted() {
				return cfg.weightFn(cfg.rng)
			}
			return 0
		}

		// Emit chords with idempotency and directed mirroring.
		for _, ch := range set {
			// Derive ring endpoint IDs via cfg.idFn (consistent with Cycle/Wheel).
			u := cfg.idFn(ch.U)
			v := cfg.idFn(ch.V)

			// Skip invalid self-chords if loops are not allowed.
			if u == v && !g.Looped() {
				continue
			}

			// Add (u,v) once if not present.
			if !hasEdgeUndirAware(g, u, v) {
				w = nextWeight()
				if _, err := g.AddEdge(u, v, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s,w=%d): %w", methodHexagram, u, v, w, err)
				}
			}

			// Mirror explicitly for directed graphs to preserve undirected intent.
			if g.Directed() && !hasEdgeUndirAware(g, v, u) {
				w = nextWeight()
				if _, err := g.AddEdge(v, u, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s,w=%d): %w", methodHexagram, v, u, w, err)
				}
			}
		}

		return nil
	}
}

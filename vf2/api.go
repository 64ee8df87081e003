// File: api.go
// Role: Public entry points — FindMapping, IsIsomorphic, SubgraphIsIsomorphic,
// InducedSubgraphIsIsomorphic, and AllMappings — the five external operations
// callers use, each a thin, precheck-guarded wrapper around runSearch.
// Error policy:
//   - A nil graph or unknown Mode returns the sentinel error itself
//     (ErrNilGraph / ErrUnknownMode), since that is a caller mistake, not a
//     property of the graphs.
//   - A PrecheckFail or search exhaustion is NOT an error: both report
//     found == false with a nil error. The PrecheckReason return value tells
//     the caller which case happened (PrecheckOK means the search actually
//     ran and found nothing).

package vf2

import "github.com/katalvlaran/vf2pp/core"

// DefaultLabelKey is the Metadata key vf2 consults for categorical vertex
// labels when callers do not need a custom one.
const DefaultLabelKey = "label"

// DefaultLabel is the label assigned to a vertex with no entry under the
// configured label key.
const DefaultLabel = ""

// FindMapping searches for a single mapping from g1 into g2 under mode,
// using labelKey to resolve each vertex's categorical label (vertices
// missing the key resolve to defaultLabel). It returns the first mapping
// found in deterministic order, or found == false if none exists.
func FindMapping(g1, g2 *core.Graph, labelKey, defaultLabel string, mode Mode) (mapping Mapping, found bool, reason PrecheckReason, err error) {
	gp, sp, reason, err := prepare(g1, g2, labelKey, defaultLabel, mode)
	if err != nil || reason != PrecheckOK {
		return nil, false, reason, err
	}

	runSearch(gp, sp, func(m Mapping) bool {
		mapping, found = m, true
		return false // stop at the first mapping
	})

	return mapping, found, PrecheckOK, nil
}

// AllMappings enumerates every mapping from g1 into g2 under mode, invoking
// yield once per mapping in deterministic order until yield returns false or
// the search space is exhausted. reason reports why no search ran, if
// precheck rejected the pair outright.
func AllMappings(g1, g2 *core.Graph, labelKey, defaultLabel string, mode Mode, yield func(Mapping) bool) (reason PrecheckReason, err error) {
	gp, sp, reason, err := prepare(g1, g2, labelKey, defaultLabel, mode)
	if err != nil || reason != PrecheckOK {
		return reason, err
	}

	runSearch(gp, sp, yield)

	return PrecheckOK, nil
}

// IsIsomorphic reports whether g1 and g2 are isomorphic under the resolved
// labels.
func IsIsomorphic(g1, g2 *core.Graph, labelKey, defaultLabel string) (bool, error) {
	_, found, _, err := FindMapping(g1, g2, labelKey, defaultLabel, ModeISO)
	return found, err
}

// SubgraphIsIsomorphic reports whether g1 contains a subgraph isomorphic to
// g2.
func SubgraphIsIsomorphic(g1, g2 *core.Graph, labelKey, defaultLabel string) (bool, error) {
	_, found, _, err := FindMapping(g1, g2, labelKey, defaultLabel, ModeSUB)
	return found, err
}

// InducedSubgraphIsIsomorphic reports whether g1 contains an induced
// subgraph isomorphic to g2.
func InducedSubgraphIsIsomorphic(g1, g2 *core.Graph, labelKey, defaultLabel string) (bool, error) {
	_, found, _, err := FindMapping(g1, g2, labelKey, defaultLabel, ModeIND)
	return found, err
}

// prepare validates inputs, builds both GraphViews and the precomputed
// GraphParameters, and runs the structural precheck. Callers get back a nil
// GraphParameters whenever err != nil or reason != PrecheckOK, signaling
// there is nothing left to search.
func prepare(g1, g2 *core.Graph, labelKey, defaultLabel string, mode Mode) (gp *GraphParameters, sp *StateParameters, reason PrecheckReason, err error) {
	if mode != ModeISO && mode != ModeSUB && mode != ModeIND {
		return nil, nil, PrecheckOK, ErrUnknownMode
	}

	v1, err := NewGraphView(g1, labelKey, defaultLabel)
	if err != nil {
		return nil, nil, PrecheckOK, err
	}
	v2, err := NewGraphView(g2, labelKey, defaultLabel)
	if err != nil {
		return nil, nil, PrecheckOK, err
	}

	gp = newGraphParameters(v1, v2, mode)
	reason = precheck(v1, v2, mode)
	if reason != PrecheckOK {
		return nil, nil, reason, nil
	}

	return gp, newStateParameters(gp), PrecheckOK, nil
}

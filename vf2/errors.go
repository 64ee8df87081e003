// File: errors.go
// Role: Sentinel errors and the PrecheckReason enumeration for the vf2 package.
// AI-HINT (file):
//   - Fatal, caller-facing errors use package-level sentinels; branch with errors.Is.
//   - PrecheckFail and NoSolution are NOT errors: they are expected outcomes of a
//     search and are reported as ordinary (bool, reason) or (Mapping, bool) results.

package vf2

import (
	"errors"
)

// ErrInvalidInput is a general sentinel for a structurally invalid request.
// No function in this package returns it: a nil graph is reported as
// ErrNilGraph and an unknown Mode as ErrUnknownMode, neither wrapped in
// ErrInvalidInput.
var ErrInvalidInput = errors.New("vf2: invalid input")

// ErrNilGraph indicates a GraphView (or the *core.Graph behind it) was nil.
var ErrNilGraph = errors.New("vf2: graph is nil")

// ErrUnknownMode indicates a Mode value outside {ModeISO, ModeSUB, ModeIND}.
var ErrUnknownMode = errors.New("vf2: unknown mode")

// PrecheckReason classifies why a fast structural precheck rejected a pair of
// graphs before any search began. It is informational, not an error: a
// rejected precheck means "no mapping exists", which is a legitimate answer.
type PrecheckReason int

const (
	// PrecheckOK indicates no structural obstruction was found; search may proceed.
	PrecheckOK PrecheckReason = iota

	// PrecheckSizeMismatch indicates an order (vertex count) mismatch incompatible
	// with the requested Mode (e.g. |V1| != |V2| for ModeISO, or |V1| < |V2| for
	// ModeSUB/ModeIND).
	PrecheckSizeMismatch

	// PrecheckDegreeSequenceMismatch indicates the sorted degree sequences (or, for
	// ModeSUB/ModeIND, the degree-majorization relation) cannot be satisfied.
	PrecheckDegreeSequenceMismatch

	// PrecheckLabelHistogramMismatch indicates the per-label vertex counts cannot
	// satisfy the requested Mode's containment relation.
	PrecheckLabelHistogramMismatch
)

// String renders a PrecheckReason for logs and test failure messages.
func (r PrecheckReason) String() string {
	switch r {
	case PrecheckOK:
		return "ok"
	case PrecheckSizeMismatch:
		return "size-mismatch"
	case PrecheckDegreeSequenceMismatch:
		return "degree-sequence-mismatch"
	case PrecheckLabelHistogramMismatch:
		return "label-histogram-mismatch"
	default:
		return "unknown-precheck-reason"
	}
}

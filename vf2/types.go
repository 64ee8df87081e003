// File: types.go
// Role: Core public types for the vf2 package — Mode, Mapping, GraphView, and
// the internal GraphParameters/StateParameters aggregates that replace the
// namedtuple bundles of the algorithm this package is modeled on.
// AI-HINT (file):
//   - GraphParameters is built once per API call and never mutated afterward.
//   - StateParameters is the live, mutable partial-mapping state; see state.go
//     for its push/pop contract.

package vf2

// Mode selects which isomorphism relation a search looks for.
type Mode int

const (
	// ModeISO requires a bijective, edge-preserving mapping between all vertices
	// of G1 and all vertices of G2 (graph isomorphism).
	ModeISO Mode = iota

	// ModeSUB asks whether G1 (the host) contains a subgraph isomorphic to G2
	// (the pattern): every G2 vertex is paired with a distinct G1 vertex and
	// every G2 edge corresponds to a G1 edge (subgraph isomorphism; G1 may have
	// extra edges between matched vertices).
	ModeSUB

	// ModeIND asks whether G1 (the host) contains an induced subgraph
	// isomorphic to G2 (the pattern): every G2 vertex is paired with a distinct
	// G1 vertex and edges correspond exactly: u~v in G1 iff f(u)~f(v) in G2
	// (induced subgraph isomorphism; no extra edges permitted).
	ModeIND
)

// String renders a Mode for logs and test names.
func (m Mode) String() string {
	switch m {
	case ModeISO:
		return "iso"
	case ModeSUB:
		return "sub"
	case ModeIND:
		return "ind"
	default:
		return "unknown"
	}
}

// Mapping is a partial or total vertex correspondence from G1 vertex IDs to
// G2 vertex IDs. A returned Mapping is always a fresh copy safe to retain.
type Mapping map[string]string

// Clone returns a shallow copy of m, safe for the caller to mutate or retain
// past the lifetime of the search that produced it.
func (m Mapping) Clone() Mapping {
	out := make(Mapping, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// GraphView is the minimal read-only surface the vf2 algorithm needs from a
// graph. Concrete graphs (e.g. *core.Graph) are adapted to this interface by
// NewGraphView; a GraphView must be safe for concurrent read-only use.
type GraphView interface {
	// Order returns the number of vertices.
	Order() int

	// Vertices returns all vertex IDs. The slice order is implementation
	// defined but MUST be stable across repeated calls on the same view.
	Vertices() []string

	// Degree returns the total number of edge endpoints incident to v,
	// counting a self-loop twice.
	Degree(v string) int

	// Neighbors returns the distinct vertex IDs adjacent to v, sorted ascending.
	Neighbors(v string) []string

	// EdgeMultiplicity returns the number of edges between u and v (0 if none,
	// counting a self-loop once when u == v).
	EdgeMultiplicity(u, v string) int

	// Label returns the categorical label of v, or the view's configured
	// default label if v carries none.
	Label(v string) string
}

// GraphParameters bundles the two graphs under comparison together with the
// indexes precomputed once at initialization: per-label vertex membership for
// both graphs, and per-degree vertex membership for G2 (used by the candidate
// generator to intersect on label and degree without re-scanning G2).
//
// Fields are named, never positional, and the struct is passed by pointer;
// nothing here is mutated once newGraphParameters returns.
type GraphParameters struct {
	G1, G2 GraphView
	Mode   Mode

	// labelsOfG1, labelsOfG2 map a vertex ID to its resolved label.
	labelsOfG1, labelsOfG2 map[string]string

	// nodesOfG1Label, nodesOfG2Label map a label to the sorted vertex IDs
	// carrying it.
	nodesOfG1Label, nodesOfG2Label map[string][]string

	// g2NodesOfDegree maps a degree to the sorted G2 vertex IDs with exactly
	// that degree.
	g2NodesOfDegree map[int][]string
}

// StateParameters is the live, mutable search state: the partial mapping in
// both directions plus the four frontier sets defined for VF2++ (T1, T1_out,
// T2, T2_out). All sets are represented as map[string]struct{} for O(1)
// membership; no result depends on their iteration order (candidate lists
// are sorted in candidates.go).
type StateParameters struct {
	Mapping        map[string]string // G1 vertex -> G2 vertex
	ReverseMapping map[string]string // G2 vertex -> G1 vertex

	// T1 holds uncovered G1 vertices adjacent to a covered G1 vertex.
	T1 map[string]struct{}
	// T1Out holds uncovered G1 vertices with no covered neighbor.
	T1Out map[string]struct{}
	// T2 holds uncovered G2 vertices adjacent to a covered G2 vertex.
	T2 map[string]struct{}
	// T2Out holds uncovered G2 vertices with no covered neighbor.
	T2Out map[string]struct{}
}

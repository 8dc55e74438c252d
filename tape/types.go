package tape

import (
	"math"
	"sync"

	"github.com/gowermello/edgepush/sparse"
)

// VertexID identifies a vertex within a single Tape, in strict appending
// order starting at 0 (V3). Ids are tape-relative: the same numeric value
// on two different tapes names unrelated vertices.
type VertexID int

// edgeRef is one outgoing first-order edge: the id of the (strictly
// older, V1) parent vertex this vertex was built from, and the local
// partial derivative of this vertex's value with respect to that parent.
//
// The "edge does not exist" sentinel is Parent == the id of the vertex
// that owns this edgeRef — checked at call sites, never against a magic
// constant, because the owning id is the only value that can never be a
// legitimate parent (V1: every real parent is strictly smaller).
type edgeRef struct {
	Parent VertexID
	Weight float64
}

// vertex is one record on the tape: up to two outgoing edges plus the
// first-order adjoint accumulator and local second-order curvature (§3).
type vertex struct {
	e1, e2 edgeRef
	w      float64 // first-order adjoint, zero until seeded/propagated to (V5)
	soW    float64 // local second-order curvature, overloaded by arity (§3)
}

// EdgeView is a read-only mirror of edgeRef, returned by Edges so that
// package edgepush can inspect a vertex's first-order edges without
// importing tape's unexported vertex type.
type EdgeView struct {
	Parent VertexID
	Weight float64
}

// SOEntry is one second-order accumulator entry adjacent to a vertex, as
// returned by SOEntries: the neighboring vertex and the weight
// accumulated at the canonical pair they form.
type SOEntry struct {
	Index  VertexID
	Weight float64
}

// Tape is the append-only vertex sequence plus the second-order edge
// accumulator for one independent evaluation. A Tape is safe for
// concurrent use by multiple goroutines; see the package doc and Use for
// the distinction between that guarantee and the specification's
// "thread-local current tape" idea.
type Tape struct {
	mu       sync.Mutex
	vertices []vertex
	so       *sparse.Matrix
}

// Option configures a Tape at construction. There are currently no
// options; the type exists so NewTape's signature does not need to
// change if the need arises, mirroring this lineage's GraphOption /
// BuilderOption functional-options convention even where, today, there
// is nothing yet to configure.
type Option func(*Tape)

// NewTape returns an empty, newly-constructed Tape with no vertices and
// an empty second-order accumulator.
func NewTape(opts ...Option) *Tape {
	t := &Tape{so: sparse.New()}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

// maxVertices bounds the id space actually usable on this build: beyond
// it, VertexID arithmetic (used internally as plain int indices) could in
// principle wrap. See ErrIDOverflow.
const maxVertices = math.MaxInt - 1

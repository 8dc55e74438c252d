package scalar

import "github.com/gowermello/edgepush/tape"

// Scalar is a floating-point value paired with the id of the vertex that
// represents it on its tape (§3 "Active scalar"). The zero Scalar is not
// meaningful — every Scalar must come from New, NewOn, or a method on an
// existing Scalar.
type Scalar struct {
	Val float64
	id  tape.VertexID
	tp  *tape.Tape
}

// ID returns the vertex id this Scalar occupies on its tape. Exposed for
// callers that need to seed an adjoint or read a Hessian entry directly
// through the underlying *tape.Tape (Tape also returns it, for
// SetAdjoint/Hessian calls against the matching instance).
func (s Scalar) ID() tape.VertexID { return s.id }

// Tape returns the *tape.Tape this Scalar was recorded on.
func (s Scalar) Tape() *tape.Tape { return s.tp }

// New creates a leaf Scalar with value val on the current tape (the one
// last installed via tape.Use). Panics with tape.ErrNoCurrentTape if
// none has been installed — a programmer error, not a data error, per
// §7's "should detect and abort with a clear diagnostic".
func New(val float64) Scalar {
	t := tape.Current()
	if t == nil {
		panic(tape.ErrNoCurrentTape)
	}

	return NewOn(t, val)
}

// NewOn creates a leaf Scalar with value val on an explicit tape,
// bypassing the current-tape singleton entirely — the "thread an
// explicit handle through every operation" alternative from §9.
func NewOn(t *tape.Tape, val float64) Scalar {
	return Scalar{Val: val, id: t.NewLeaf(), tp: t}
}

// wrap builds a Scalar from a primal value and a vertex id already
// appended to tp, sharing tp's pointer. Every arithmetic/transcendental
// method below funnels its result through wrap.
func wrap(tp *tape.Tape, id tape.VertexID, val float64) Scalar {
	return Scalar{Val: val, id: id, tp: tp}
}

// checkSameTape panics with ErrTapeMismatch if a and b were not
// recorded on the same *tape.Tape.
func checkSameTape(a, b Scalar) {
	if a.tp != b.tp {
		panic(ErrTapeMismatch)
	}
}

/*
Edge-pushing reverse sweep

Description:

	Computes the gradient and full Hessian of a scalar function recorded
	on a tape.Tape, in one backward pass, by exploiting Hessian symmetry
	(Gower & Mello, 2010).

Algorithm outline (§4.3):

 1. Resize the second-order accumulator to the current vertex count.
 2. For v from Len()-1 down to 1:
    a. If v is a leaf, skip it.
    b. Push every second-order entry adjacent to v through v's outgoing
       first-order edges (off-diagonal case) or onto v's parents directly
       (diagonal case, the entry (v, v) itself).
    c. If v's adjoint a is non-zero and v's local curvature is non-zero,
       create a new second-order entry from a*soW.
    d. If a is non-zero, propagate a onto v's parents via their first-
       order edge weights, then zero v's adjoint.

Time complexity: O(N + sum of second-order degree over all vertices).
Memory: O(1) beyond the tape and its accumulator.
*/
package edgepush

import "github.com/gowermello/edgepush/tape"

// sweep holds the single piece of state the reverse pass needs: the tape
// it is walking. Mirrors this lineage's runner-struct convention
// (dijkstraRunner) for multi-step algorithms, even though here the state
// is trivial — the struct exists so the step methods below read as
// methods on "the algorithm in progress" rather than free functions
// repeating a *tape.Tape parameter five times.
type sweep struct {
	t *tape.Tape
}

// Run performs the edge-pushing reverse sweep over t. The caller must
// have already seeded the output vertex's adjoint to 1 (and may have
// pre-populated second-order weights for a pure Hessian-vector product);
// see the package doc for the full entry contract.
func Run(t *tape.Tape) error {
	if t.Len() == 0 {
		return ErrEmptyTape
	}

	s := &sweep{t: t}
	s.run()

	return nil
}

func (s *sweep) run() {
	s.t.PrepareForPropagation()

	for v := tape.VertexID(s.t.Len() - 1); v >= 1; v-- {
		if s.t.IsLeaf(v) {
			continue
		}
		s.step(v)
	}
}

// step processes one non-leaf vertex: push existing second-order edges
// through it, create from local curvature, then propagate the
// first-order adjoint. The three phases run in this order deliberately
// (§4.3): pushing before the adjoint update preserves the invariant that,
// at the moment v is visited, its incident second-order edges reflect
// every descendant's contribution but none of v's own creation step.
func (s *sweep) step(v tape.VertexID) {
	e1, e2, hasE2 := s.t.Edges(v)

	s.pushExisting(v, e1, e2, hasE2)

	a := s.t.Adjoint(v)
	if a == 0 {
		return
	}

	soW := s.t.Curvature(v)
	if soW != 0 {
		s.createFromCurvature(e1, e2, hasE2, a*soW)
	}

	s.propagateAdjoint(v, e1, e2, hasE2, a)
}

// pushExisting walks every second-order entry adjacent to v and pushes
// it through v's outgoing edges (§4.3 step 2).
func (s *sweep) pushExisting(v tape.VertexID, e1, e2 tape.EdgeView, hasE2 bool) {
	for _, entry := range s.t.SOEntries(v) {
		k, sWeight := entry.Index, entry.Weight
		if k != v {
			s.pushOffDiagonal(e1, e2, hasE2, k, sWeight)
		} else {
			s.pushDiagonal(e1, e2, hasE2, sWeight)
		}
	}
}

// pushOffDiagonal handles an entry (v, k) with k != v: each outgoing
// edge (e.Parent, e.Weight) of v contributes e.Weight*s onto the pair
// (e.Parent, k), doubled when e.Parent == k.
func (s *sweep) pushOffDiagonal(e1, e2 tape.EdgeView, hasE2 bool, k tape.VertexID, sWeight float64) {
	s.pushOneEdge(e1, k, sWeight)
	if hasE2 {
		s.pushOneEdge(e2, k, sWeight)
	}
}

func (s *sweep) pushOneEdge(e tape.EdgeView, k tape.VertexID, sWeight float64) {
	factor := 1.0
	if e.Parent == k {
		factor = 2.0
	}
	s.t.AddSO(e.Parent, k, factor*e.Weight*sWeight)
}

// pushDiagonal handles the entry (v, v) itself: self-curvature on each
// parent, and cross-curvature between the two parents of a binary vertex
// (§4.3 step 2, diagonal case).
func (s *sweep) pushDiagonal(e1, e2 tape.EdgeView, hasE2 bool, sWeight float64) {
	s.t.AddSO(e1.Parent, e1.Parent, e1.Weight*e1.Weight*sWeight)
	if !hasE2 {
		return
	}
	s.t.AddSO(e2.Parent, e2.Parent, e2.Weight*e2.Weight*sWeight)

	factor := 1.0
	if e1.Parent == e2.Parent {
		factor = 2.0
	}
	s.t.AddSO(e1.Parent, e2.Parent, factor*e1.Weight*e2.Weight*sWeight)
}

// createFromCurvature adds a new second-order entry seeded by v's local
// curvature scaled by its adjoint (§4.3 step 3).
func (s *sweep) createFromCurvature(e1, e2 tape.EdgeView, hasE2 bool, weighted float64) {
	if !hasE2 {
		s.t.AddSO(e1.Parent, e1.Parent, weighted)
		return
	}
	factor := 1.0
	if e1.Parent == e2.Parent {
		factor = 2.0
	}
	s.t.AddSO(e1.Parent, e2.Parent, factor*weighted)
}

// propagateAdjoint pushes v's first-order adjoint onto its parents, then
// zeroes it — v will not be visited again (§4.3 step 4).
func (s *sweep) propagateAdjoint(v tape.VertexID, e1, e2 tape.EdgeView, hasE2 bool, a float64) {
	s.t.ZeroAdjoint(v)
	s.t.AddAdjoint(e1.Parent, a*e1.Weight)
	if hasE2 {
		s.t.AddAdjoint(e2.Parent, a*e2.Weight)
	}
}

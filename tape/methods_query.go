// File methods_query.go holds the read/write accessors used by package
// edgepush to run the reverse sweep, plus the result-extraction methods
// (Adjoint, Hessian) used by callers after propagation. Unlike the public
// sparse.Matrix.At/Add, which must never panic on a bad index (they serve
// arbitrary external callers), these accessors take a VertexID that the
// caller is expected to have obtained from this same Tape (a leaf/unary/
// binary constructor, or Len()); an out-of-range id here is a programmer
// error and panics, the same contract plain slice indexing has.
package tape

// Len returns the number of vertices recorded so far (N, §3 V3). The
// reverse sweep runs from Len()-1 down to 1.
func (t *Tape) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.vertices)
}

func (t *Tape) vertexAt(v VertexID) *vertex {
	if int(v) < 0 || int(v) >= len(t.vertices) {
		panic(ErrUnknownVertex)
	}

	return &t.vertices[v]
}

// IsLeaf reports whether v has no outgoing edges (e1 self-sentinel).
// Per V2, e2 can only exist if e1 does, so checking e1 alone suffices.
func (t *Tape) IsLeaf(v VertexID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	vert := t.vertexAt(v)

	return vert.e1.Parent == v
}

// Edges returns v's first-order edges. hasE2 reports whether e2 is
// present (e2.Parent != v); when false, e2's zero value must be ignored.
func (t *Tape) Edges(v VertexID) (e1, e2 EdgeView, hasE2 bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	vert := t.vertexAt(v)
	e1 = EdgeView{Parent: vert.e1.Parent, Weight: vert.e1.Weight}
	hasE2 = vert.e2.Parent != v
	if hasE2 {
		e2 = EdgeView{Parent: vert.e2.Parent, Weight: vert.e2.Weight}
	}

	return e1, e2, hasE2
}

// Curvature returns v's local second-order weight soW.
func (t *Tape) Curvature(v VertexID) float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.vertexAt(v).soW
}

// Adjoint returns v's current first-order adjoint accumulator w.
func (t *Tape) Adjoint(v VertexID) float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.vertexAt(v).w
}

// SetAdjoint overwrites v's adjoint accumulator. Used by callers to seed
// the output vertex's adjoint to 1 before calling edgepush.Run (§4.3
// entry contract), and by tests that pre-seed a Hessian-vector product.
func (t *Tape) SetAdjoint(v VertexID, w float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.vertexAt(v).w = w
}

// AddAdjoint accumulates delta into v's adjoint. Used by the reverse
// sweep to propagate a*e.Weight onto a parent vertex.
func (t *Tape) AddAdjoint(v VertexID, delta float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.vertexAt(v).w += delta
}

// ZeroAdjoint resets v's adjoint to 0. The reverse sweep calls this on
// v immediately after reading it (step 4, §4.3), since each vertex is
// visited exactly once and its adjoint has no further use afterward.
func (t *Tape) ZeroAdjoint(v VertexID) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.vertexAt(v).w = 0
}

// SOEntries returns every non-zero second-order entry adjacent to v, in
// either direction (sparse.Matrix.Row's contract).
func (t *Tape) SOEntries(v VertexID) []SOEntry {
	t.mu.Lock()
	defer t.mu.Unlock()

	entries := t.so.Row(int(v))
	out := make([]SOEntry, len(entries))
	for i, e := range entries {
		out[i] = SOEntry{Index: VertexID(e.Index), Weight: e.Weight}
	}

	return out
}

// PrepareForPropagation resizes the second-order accumulator to the
// current vertex count, per the accumulator's external contract that its
// row/column dimension equal the number of vertices before the sweep
// runs (§4.1). edgepush.Run calls this once, before visiting any vertex.
func (t *Tape) PrepareForPropagation() {
	t.mu.Lock()
	defer t.mu.Unlock()

	_ = t.so.Resize(len(t.vertices)) // len() is never negative; error is unreachable
}

// Hessian returns the accumulated second-order weight for the
// unordered pair (i, j) — the mixed partial ∂²f/∂i∂j after propagation.
// By construction this is symmetric: Hessian(i, j) == Hessian(j, i).
func (t *Tape) Hessian(i, j VertexID) float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.so.At(int(i), int(j))
}

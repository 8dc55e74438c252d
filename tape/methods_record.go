// File methods_record.go holds the append-only recording primitives used
// by package scalar as a side effect of evaluating an expression:
// NewLeaf, NewUnary, NewBinary, AddSO, and Clear. Every method here either
// appends exactly one vertex or mutates the second-order accumulator;
// none of them reads adjoints or runs the reverse sweep (see
// methods_query.go for that).
package tape

// NewLeaf appends a leaf vertex: both edges self-sentinel, adjoint and
// curvature zero. Leaves represent independent variables or bare
// constants (§3 Lifecycles).
//
// Complexity: O(1) amortized.
func (t *Tape) NewLeaf() VertexID {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.checkCapacity()
	id := VertexID(len(t.vertices))
	t.vertices = append(t.vertices, vertex{
		e1: edgeRef{Parent: id},
		e2: edgeRef{Parent: id},
	})

	return id
}

// NewUnary appends a vertex built from a single operand: e1 points to
// parent with first-order weight w, e2 remains self-sentinel, and soW is
// the local second-order curvature with respect to parent.
//
// Complexity: O(1) amortized.
func (t *Tape) NewUnary(parent VertexID, w, soW float64) VertexID {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.checkCapacity()
	id := VertexID(len(t.vertices))
	t.vertices = append(t.vertices, vertex{
		e1:  edgeRef{Parent: parent, Weight: w},
		e2:  edgeRef{Parent: id},
		soW: soW,
	})

	return id
}

// NewBinary appends a vertex built from two operands: e1 and e2 point to
// p1 and p2 with first-order weights w1 and w2, and soW is the mixed
// partial ∂²f/∂p1∂p2. Per §3, binary ops must satisfy ∂²f/∂p1²=∂²f/∂p2²=0;
// callers that need the same-operand square (p1 == p2, both ∂²≠0) should
// use a dedicated unary squaring primitive instead (see scalar.Sqr).
//
// Complexity: O(1) amortized.
func (t *Tape) NewBinary(p1, p2 VertexID, w1, w2, soW float64) VertexID {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.checkCapacity()
	id := VertexID(len(t.vertices))
	t.vertices = append(t.vertices, vertex{
		e1:  edgeRef{Parent: p1, Weight: w1},
		e2:  edgeRef{Parent: p2, Weight: w2},
		soW: soW,
	})

	return id
}

// checkCapacity panics with ErrIDOverflow if appending one more vertex
// would exceed maxVertices. Callers must hold t.mu.
func (t *Tape) checkCapacity() {
	if len(t.vertices) >= maxVertices {
		panic(ErrIDOverflow)
	}
}

// AddSO accumulates w into the second-order accumulator's canonical slot
// for (i, j). Exposed both as a recording primitive (a caller may choose
// to pre-seed second-order weights before calling edgepush.Run, per the
// entry contract in §4.3) and as the primitive edgepush.Run itself uses
// to create new entries during the sweep.
func (t *Tape) AddSO(i, j VertexID, w float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.so.Add(int(i), int(j), w)
}

// Clear empties the vertex sequence and resets the second-order
// accumulator, returning the Tape to its just-constructed state.
// Active scalars built before Clear reference ids that no longer mean
// anything on this Tape; using them afterward is the cross-tape
// contamination case the specification (§7) leaves undefined.
func (t *Tape) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.vertices = nil
	t.so.Clear()
}

// Package scalar is the recording front end of edgepush: it provides
// Scalar, a differentiable float64 wrapper, and the arithmetic,
// comparison and transcendental methods that, as a side effect of
// producing a new Scalar, append a vertex to a tape.Tape with the
// first- and second-order local partials the edge-pushing sweep needs.
//
// A Scalar is a small value type — a float64, a tape.VertexID, and a
// *tape.Tape pointer — cheap to copy, per the specification's "active
// scalar" contract (§3): copying a Scalar never duplicates its vertex.
//
// Leaves are created with New (using the package-level current tape
// installed via tape.Use) or NewOn (given an explicit *tape.Tape).
// Every other Scalar is produced by a method on an existing Scalar and
// shares its tape.
package scalar

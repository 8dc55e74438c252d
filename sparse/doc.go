// Package sparse implements the second-order edge accumulator used by
// package tape: a symmetric-by-convention, upper-triangular sparse matrix
// of float64 weights, indexed by pairs of non-negative vertex ids.
//
// The accumulator is the one required external collaborator named in the
// edge-pushing specification (construction; resize; zero-reset;
// coefficient-wise additive update at (i, j); row-or-column iteration
// yielding (index, value) pairs). It is deliberately dumb: it knows
// nothing about vertices, edges, or derivatives, only about pairs of
// integers and the weights accumulated at them.
//
// Storage is a map of maps keyed by the smaller index, mirroring the
// nested-map adjacency idiom used elsewhere in this lineage for sparse
// graph-shaped data, plus a small reverse index so that "every entry
// touching v" can be produced without a full scan.
package sparse

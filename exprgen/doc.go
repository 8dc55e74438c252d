// Package exprgen generates small, deterministic random arithmetic
// expression DAGs over scalar.Scalar, for property-based testing of
// package edgepush and package scalar. Adapted from this lineage's
// builder package: a functional-options Config resolves an RNG seed,
// a maximum depth, and a vocabulary of operations, and Generate walks
// that config to produce one output Scalar rooted on a set of fresh
// leaves on a caller-supplied tape.
//
// Unlike builder, which assembles a core.Graph from named topology
// constructors, exprgen assembles an expression by repeatedly picking a
// random already-built node (or fresh leaf) and applying a randomly
// chosen operation from Config's vocabulary — the DAG equivalent of
// RandomSparse's edge-by-edge construction, but over scalar.Scalar
// instead of core.Vertex.
package exprgen

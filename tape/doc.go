// Package tape implements the append-only vertex sequence and second-order
// edge accumulator underlying edge-pushing reverse-mode automatic
// differentiation.
//
// A Tape records one vertex per intermediate scalar value produced by
// package scalar's arithmetic, in strict creation order; vertex ids are
// dense integers starting at 0. Each vertex carries up to two first-order
// edges to older vertices (its operands) plus a single local second-order
// curvature weight. A *sparse.Matrix owned by the Tape accumulates
// second-order contributions between pairs of vertices as package
// edgepush's reverse sweep discovers them.
//
// Tape exposes two layers of API:
//
//   - Recording primitives (NewLeaf, NewUnary, NewBinary, AddSO) used by
//     package scalar as a side effect of evaluating an expression.
//   - Read/write accessors (IsLeaf, Edges, Curvature, Adjoint, AddAdjoint,
//     ZeroAdjoint, SOEntries, SetAdjoint, Hessian) used by package edgepush
//     to run the reverse sweep without reaching into Tape's unexported
//     fields — the same public-API-only discipline this lineage's
//     traversal packages (dijkstra, bfs, dfs) use against core.Graph.
//
// A single *Tape may be installed as the current tape for convenient leaf
// construction via Use/Current, or threaded explicitly through NewLeaf and
// package scalar's NewOn; see the package-level Use doc for the tradeoffs.
package tape

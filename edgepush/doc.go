// Package edgepush implements the reverse sweep of the edge-pushing
// scheme (Gower & Mello, 2010): a single backward pass over a
// *tape.Tape, in strictly decreasing vertex-id order, that simultaneously
// propagates first-order adjoints and builds the full Hessian by pushing
// existing second-order edges through each vertex and creating new ones
// from local curvature.
//
// Run operates entirely through tape.Tape's exported accessors (IsLeaf,
// Edges, Curvature, Adjoint, AddAdjoint, ZeroAdjoint, SOEntries, AddSO,
// PrepareForPropagation) — the same discipline this lineage's traversal
// packages (dijkstra, bfs, dfs) use against core.Graph's exported API,
// never reaching into a vertex record's unexported fields directly.
//
// # Entry contract
//
// Before calling Run, seed the output vertex's adjoint to 1 via
// t.SetAdjoint(outputID, 1). Run then sweeps vertices from t.Len()-1 down
// to 1 (vertex 0 is always a leaf and needs no processing); afterward,
// t.Adjoint(v) is the gradient at v and t.Hessian(i, j) is the mixed
// second partial between i and j.
package edgepush

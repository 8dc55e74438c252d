// Package edgepush is a reverse-mode automatic differentiation engine
// specialized for second-order (Hessian) computation via the
// edge-pushing scheme (Gower & Mello, 2010): record a scalar expression
// as it evaluates, then run a single backward sweep that produces both
// the gradient and the full Hessian, exploiting symmetry to avoid ever
// materializing more than the upper triangle.
//
// 🚀 What is edgepush?
//
//	A small, thread-safe, nearly-dependency-free engine that brings
//	together:
//		• Tape: an append-only, implicit computation graph (no pointers,
//		  no cycles — just monotonically increasing vertex ids)
//		• Scalar: an active floating-point type whose arithmetic and
//		  transcendental methods record onto a tape as a side effect
//		• Sparse accumulator: an upper-triangular second-order store
//		  sized to the DAG, not to the full dense Hessian
//		• Edge-pushing: the reverse sweep itself — one pass, gradient and
//		  Hessian together
//
// ✨ Why edge-pushing?
//
//   - One backward pass computes the entire Hessian, not just one row
//     or column at a time
//   - Memory scales with the DAG's second-order edge count, not N²
//   - Built from primitives (Tape, Scalar) that read like ordinary
//     arithmetic — x.Mul(y).Add(z) — not a symbolic-differentiation DSL
//
// Under the hood, everything is organized under five subpackages:
//
//	sparse/   — the upper-triangular second-order accumulator
//	tape/     — vertex recording, adjoint/curvature storage, and the
//	            query accessors the reverse sweep runs against
//	scalar/   — the active scalar type: arithmetic, transcendental, and
//	            comparison methods that record onto a tape
//	edgepush/ — the reverse sweep itself
//	exprgen/  — deterministic random expression DAGs, for property-based
//	            tests of the other four packages
//
// Quick example:
//
//	t := tape.NewTape()
//	tape.Use(t)
//	x := scalar.New(3)
//	y := scalar.New(4)
//	z := x.Mul(y).Add(x.Sqr())
//	t.SetAdjoint(z.ID(), 1)
//	edgepush.Run(t)
//	// t.Adjoint(x.ID()) is dz/dx, t.Hessian(x.ID(), y.ID()) is d²z/dxdy
//
// The module ships no runnable example programs; the tests in each
// subpackage are the usage examples.
package edgepush

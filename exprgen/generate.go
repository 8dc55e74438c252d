// generate.go — implementation of Generate.
//
// Canonical model:
//   - Start with numLeaves fresh leaf scalars drawn uniformly from
//     [leafLo, leafHi].
//   - Repeat up to depth times: pick an operation from the vocabulary
//     whose arity has enough already-built nodes to draw operands from,
//     pick that many operands uniformly among the nodes built so far
//     (with replacement — this is exactly how repeated operands like
//     x.Mul(x) or a shared subexpression feeding two parents arise),
//     apply it, and append the result to the pool of built nodes.
//   - The last node appended is the output.
//
// Determinism: stable for a fixed (seed, depth, numLeaves, leafLo,
// leafHi, vocabulary) — every random draw goes through cfg.rng in a
// fixed order.
package exprgen

import (
	"github.com/gowermello/edgepush/scalar"
	"github.com/gowermello/edgepush/tape"
)

// Generate builds a random expression DAG on t and returns its output
// scalar plus the leaves it was built from (in creation order), so a
// caller can seed adjoints/finite-difference probes against them.
func Generate(t *tape.Tape, opts ...Option) (scalar.Scalar, []scalar.Scalar) {
	cfg := newGenConfig(opts...)

	leaves := make([]scalar.Scalar, cfg.numLeaves)
	pool := make([]scalar.Scalar, 0, cfg.numLeaves+cfg.depth)
	for i := range leaves {
		// Always draw, even when leafValues overrides the result below,
		// so the RNG stream position going into the operation loop is
		// identical whether or not a caller pinned explicit leaf values
		// (WithLeafValues) — this is what lets a finite-difference probe
		// rebuild the same DAG shape with one leaf perturbed.
		span := cfg.leafHi - cfg.leafLo
		val := cfg.leafLo + cfg.rng.Float64()*span
		if cfg.leafValues != nil {
			val = cfg.leafValues[i]
		}
		leaves[i] = scalar.NewOn(t, val)
		pool = append(pool, leaves[i])
	}

	for step := 0; step < cfg.depth; step++ {
		candidates := vocabularyFor(cfg.vocabulary, len(pool))
		if len(candidates) == 0 {
			break
		}
		chosen := candidates[cfg.rng.Intn(len(candidates))]

		args := make([]scalar.Scalar, chosen.arity)
		for a := range args {
			args[a] = pool[cfg.rng.Intn(len(pool))]
		}

		pool = append(pool, chosen.apply(args))
	}

	return pool[len(pool)-1], leaves
}

// vocabularyFor returns vocab unchanged once at least one node has been
// built, since every op here draws operands with replacement — even a
// binary op is satisfiable from a single built node (it is drawn twice).
// With zero built nodes no op is satisfiable.
func vocabularyFor(vocab []op, poolSize int) []op {
	if poolSize == 0 {
		return nil
	}

	return vocab
}

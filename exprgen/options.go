// options.go — functional options for package exprgen, following this
// lineage's BuilderOption convention: option constructors validate and
// panic on meaningless inputs, Generate itself never panics on option
// values it has already validated.
package exprgen

import "math/rand"

// Option customizes a genConfig before Generate walks it.
type Option func(*genConfig)

// Op is one vocabulary entry, as returned by FullVocabulary or built
// with custom names via the unexported constructors used internally.
type Op = op

// WithSeed creates a new deterministic RNG from seed. Use this in tests
// to lock a generated DAG's shape across runs.
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand installs an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("exprgen: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
	}
}

// WithDepth sets the maximum number of operations Generate applies after
// creating the leaves. One operation can append more than one tape vertex
// (the default "exp" entry appends two), so the tape may hold more than
// depth internal vertices. Panics if depth < 1.
func WithDepth(depth int) Option {
	if depth < 1 {
		panic("exprgen: WithDepth(depth<1)")
	}
	return func(c *genConfig) {
		c.depth = depth
	}
}

// WithLeaves sets how many fresh leaf scalars Generate creates before
// combining them, and the closed interval their values are drawn from.
// Panics if n < 1 or lo > hi.
func WithLeaves(n int, lo, hi float64) Option {
	if n < 1 {
		panic("exprgen: WithLeaves(n<1)")
	}
	if lo > hi {
		panic("exprgen: WithLeaves(lo>hi)")
	}
	return func(c *genConfig) {
		c.numLeaves, c.leafLo, c.leafHi = n, lo, hi
	}
}

// WithLeafValues pins Generate's leaf values to vals instead of drawing
// them from the RNG, without shifting the RNG stream position consumed
// by leaf generation (Generate still draws and discards one Float64 per
// leaf). Combined with the same seed and depth as an earlier call, this
// reproduces an identical DAG shape with different leaf values — the
// primitive a finite-difference probe needs. Panics if len(vals) == 0.
func WithLeafValues(vals []float64) Option {
	if len(vals) == 0 {
		panic("exprgen: WithLeafValues(empty)")
	}
	return func(c *genConfig) {
		c.numLeaves = len(vals)
		c.leafValues = vals
	}
}

// WithVocabulary overrides the set of operations Generate draws from.
// Panics if ops is empty.
func WithVocabulary(ops ...Op) Option {
	if len(ops) == 0 {
		panic("exprgen: WithVocabulary(empty)")
	}
	return func(c *genConfig) {
		c.vocabulary = ops
	}
}

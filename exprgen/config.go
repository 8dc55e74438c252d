// config.go — internal configuration and deterministic defaults.
//
// genConfig is the single source of truth for every generator knob, the
// same role builderConfig plays for the topology builders: an immutable
// value resolved once from functional options and then read everywhere.
package exprgen

import "math/rand"

// genConfig aggregates all knobs used by Generate. Passed by value.
type genConfig struct {
	rng        *rand.Rand
	depth      int // maximum number of operations applied after the leaves
	numLeaves  int
	leafLo     float64
	leafHi     float64
	leafValues []float64 // non-nil overrides drawn leaf values, len must equal numLeaves
	vocabulary []op
}

const (
	defaultDepth     = 8
	defaultNumLeaves = 3
	defaultLeafLo    = -3.0
	defaultLeafHi    = 3.0
)

// newGenConfig builds a genConfig with deterministic defaults, then
// applies opts in order (later overrides earlier).
func newGenConfig(opts ...Option) genConfig {
	cfg := genConfig{
		rng:        rand.New(rand.NewSource(1)),
		depth:      defaultDepth,
		numLeaves:  defaultNumLeaves,
		leafLo:     defaultLeafLo,
		leafHi:     defaultLeafHi,
		vocabulary: defaultVocabulary(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

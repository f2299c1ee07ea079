package transposition

import (
	"math/rand"

	"github.com/katalvlaran/transpose/alphabet"
)

// Option customizes a Cipher at construction.
// Option constructors validate their arguments and panic on nil: passing nil
// is a programmer error, not an input error.
type Option func(*cipherConfig)

type cipherConfig struct {
	alpha *alphabet.Alphabet
	seed  int64
	rng   *rand.Rand // nil: derive from seed and block size
}

func defaultCipherConfig() cipherConfig {
	return cipherConfig{
		alpha: alphabet.Latin,
	}
}

// WithAlphabet selects the plain-text alphabet used for filtering and
// padding. The default is alphabet.Latin.
func WithAlphabet(a *alphabet.Alphabet) Option {
	if a == nil {
		panic("transposition: WithAlphabet(nil)")
	}
	return func(c *cipherConfig) {
		c.alpha = a
	}
}

// WithRand provides the padding source. The Cipher takes ownership of r and
// serializes access to it; do not use r elsewhere concurrently.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("transposition: WithRand(nil)")
	}
	return func(c *cipherConfig) {
		c.rng = r
	}
}

// WithSeed seeds the padding source deterministically. Seed 0 selects the
// package default seed. The stream also depends on the block size, so the
// same seed pads a stencil and a zigzag cipher differently.
func WithSeed(seed int64) Option {
	return func(c *cipherConfig) {
		c.seed = seed
		c.rng = nil
	}
}

package transposition

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/katalvlaran/transpose/alphabet"
	"github.com/katalvlaran/transpose/permutation"
)

// Cipher applies a block permutation to filtered text. It holds no state
// besides its permutation, alphabet and padding source, and is safe for
// concurrent use.
type Cipher struct {
	perm  permutation.Permutation
	alpha *alphabet.Alphabet

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

// New returns a Cipher for the permutation derived by g.
// Returns ErrNilGenerator for a nil g and permutation.ErrInvalidPermutation
// if g yields an empty permutation.
func New(g Generator, opts ...Option) (*Cipher, error) {
	if g == nil {
		return nil, ErrNilGenerator
	}
	perm := g.Permutation()
	if perm.Len() == 0 {
		return nil, fmt.Errorf("%w: generator produced an empty permutation", permutation.ErrInvalidPermutation)
	}

	cfg := defaultCipherConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	rng := cfg.rng
	if rng == nil {
		rng = paddingRNG(cfg.seed, perm.Len())
	}

	return &Cipher{
		perm:  perm,
		alpha: cfg.alpha,
		rng:   rng,
	}, nil
}

// NewWithPermutation returns a Cipher keyed directly by p.
// Returns permutation.ErrInvalidPermutation for the empty permutation.
func NewWithPermutation(p permutation.Permutation, opts ...Option) (*Cipher, error) {
	e, err := NewExplicit(p)
	if err != nil {
		return nil, err
	}
	return New(e, opts...)
}

// BlockSize returns B, the permutation length.
func (c *Cipher) BlockSize() int {
	return c.perm.Len()
}

// Permutation returns the block permutation.
func (c *Cipher) Permutation() permutation.Permutation {
	return c.perm
}

// Alphabet returns the plain-text alphabet.
func (c *Cipher) Alphabet() *alphabet.Alphabet {
	return c.alpha
}

// Encrypt filters plain (spaces removed), pads the final block from the
// Cipher's own random source, and permutes every block independently:
// out[b·B + i] = pt[b·B + P[i]].
// Complexity: O(n) time and memory.
func (c *Cipher) Encrypt(plain string) string {
	pt := []rune(c.alpha.Filter(plain, false))
	c.mu.Lock()
	pt = c.pad(pt, c.rng)
	c.mu.Unlock()

	return string(c.permuteBlocks(c.perm, pt))
}

// EncryptWithRand is Encrypt with a per-call padding source. A nil rng uses
// a fresh default-seed stream for this block size, the same one WithSeed(0)
// starts from. The Cipher's own source is not touched.
func (c *Cipher) EncryptWithRand(plain string, rng *rand.Rand) string {
	if rng == nil {
		rng = paddingRNG(0, c.perm.Len())
	}
	pt := c.pad([]rune(c.alpha.Filter(plain, false)), rng)

	return string(c.permuteBlocks(c.perm, pt))
}

// Decrypt applies the inverse permutation to every block of ciphertext.
// Padding added at encryption is returned verbatim.
// Returns ErrMisalignedBlock, and no output, if the ciphertext length is not a
// multiple of the block size.
// Complexity: O(n) time and memory.
func (c *Cipher) Decrypt(cipherText string) (string, error) {
	ct := []rune(cipherText)
	if b := c.perm.Len(); len(ct)%b != 0 {
		return "", fmt.Errorf("%w: %d symbols for block size %d", ErrMisalignedBlock, len(ct), b)
	}

	return string(c.permuteBlocks(c.perm.Invert(), ct)), nil
}

// pad appends B - (len mod B) random alphabet symbols when pt does not fill
// whole blocks.
func (c *Cipher) pad(pt []rune, rng *rand.Rand) []rune {
	b := c.perm.Len()
	rem := len(pt) % b
	if rem == 0 {
		return pt
	}
	for i := 0; i < b-rem; i++ {
		pt = append(pt, c.alpha.Random(rng))
	}
	return pt
}

// permuteBlocks applies p to each consecutive block of text. len(text) must
// be a multiple of p.Len().
func (c *Cipher) permuteBlocks(p permutation.Permutation, text []rune) []rune {
	b := p.Len()
	out := make([]rune, len(text))
	for off := 0; off < len(text); off += b {
		permutation.ApplyTo(p, out[off:off+b], text[off:off+b])
	}
	return out
}

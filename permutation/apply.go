package permutation

import "fmt"

// Apply returns a new block with out[i] = block[P[i]]. The input block is
// not modified.
// Returns ErrLengthMismatch if len(block) != p.Len().
// Complexity: O(B) time, one allocation.
func Apply[S ~[]E, E any](p Permutation, block S) (S, error) {
	if len(block) != len(p.p) {
		return nil, fmt.Errorf("%w: block of %d for permutation of %d", ErrLengthMismatch, len(block), len(p.p))
	}
	out := make(S, len(block))
	ApplyTo[E](p, out, block)
	return out, nil
}

// ApplyTo writes the permuted src into dst without allocating. Both slices
// must have length p.Len(); the caller guarantees this and that dst and src
// do not overlap.
func ApplyTo[E any](p Permutation, dst, src []E) {
	for i, v := range p.p {
		dst[i] = src[v]
	}
}

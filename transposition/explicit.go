package transposition

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/transpose/permutation"
)

// Explicit is a transposition keyed directly by its permutation.
type Explicit struct {
	perm permutation.Permutation
}

// NewExplicit wraps p as a Generator.
// Returns permutation.ErrInvalidPermutation for the empty permutation.
func NewExplicit(p permutation.Permutation) (Explicit, error) {
	if p.Len() == 0 {
		return Explicit{}, fmt.Errorf("%w: empty permutation", permutation.ErrInvalidPermutation)
	}
	return Explicit{perm: p}, nil
}

// ParseExplicit reads a key such as "(2,0,3,1)".
// Unreadable notation is reported as ErrInvalidKey; readable values that do
// not form a bijection as permutation.ErrInvalidPermutation.
func ParseExplicit(key string) (Explicit, error) {
	p, err := permutation.Parse(key)
	if err != nil {
		if errors.Is(err, permutation.ErrSyntax) {
			return Explicit{}, fmt.Errorf("%w: %w", ErrInvalidKey, err)
		}
		return Explicit{}, err
	}
	return Explicit{perm: p}, nil
}

// Permutation returns the key permutation.
func (e Explicit) Permutation() permutation.Permutation { return e.perm }

// BlockSize returns the permutation length.
func (e Explicit) BlockSize() int { return e.perm.Len() }

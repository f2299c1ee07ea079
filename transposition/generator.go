package transposition

import (
	"github.com/katalvlaran/transpose/grid"
	"github.com/katalvlaran/transpose/permutation"
)

// Generator derives the transposition permutation of a cipher key.
type Generator interface {
	// Permutation returns the block permutation. It is never empty.
	Permutation() permutation.Permutation
	// BlockSize returns Permutation().Len().
	BlockSize() int
}

// Layout is implemented by generators whose permutation is read off a grid.
// Grid returns a fresh copy that the caller may modify.
type Layout interface {
	Grid() *grid.Grid
}

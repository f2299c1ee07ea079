package transposition

import (
	"github.com/katalvlaran/transpose/grid"
	"github.com/katalvlaran/transpose/permutation"
)

// StencilSize is the side of the square stencil grid.
const StencilSize = 6

// stencilTable is the rotating grille of the 1911 "Manual of Cryptography",
// page 80, in grid form:
//
//	 9  0 18  1 10  2
//	19 27  3 28 20 29
//	11  4 12  5 30 13
//	31 14 21 32 22 33
//	15  6 16 23 17  7
//	24 34 25  8 26 35
//
// The punch pattern is the historical artifact, so the table is kept
// verbatim rather than derived from geometry at run time.
var stencilTable = []int{
	9, 0, 18, 1, 10, 2,
	19, 27, 3, 28, 20, 29,
	11, 4, 12, 5, 30, 13,
	31, 14, 21, 32, 22, 33,
	15, 6, 16, 23, 17, 7,
	24, 34, 25, 8, 26, 35,
}

var stencilPermutation = permutation.MustNew(stencilTable)

// Stencil is the fixed 36-symbol rotating-grille transposition. A grille with
// a quarter of its cells punched out is laid on a 6×6 grid; nine symbols are
// written through the holes, the grille is turned a quarter, and so on four
// times. The ciphertext is the grid read row by row.
type Stencil struct{}

// NewStencil returns the stencil generator. The key is accepted for
// uniformity with other ciphers and ignored.
func NewStencil(key string) (Stencil, error) {
	return Stencil{}, nil
}

// Permutation returns the fixed stencil permutation.
func (Stencil) Permutation() permutation.Permutation {
	return stencilPermutation
}

// BlockSize returns 36.
func (Stencil) BlockSize() int {
	return StencilSize * StencilSize
}

// Grid returns the stencil table in its 6×6 grid form.
func (Stencil) Grid() *grid.Grid {
	g, _ := grid.FromCells(StencilSize, StencilSize, stencilTable)
	return g
}

package transposition

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/transpose/grid"
	"github.com/katalvlaran/transpose/permutation"
)

// MaxBlockSize bounds H·W for keyed generators so that a hostile key cannot
// request an arbitrarily large allocation.
const MaxBlockSize = 1 << 20

// Zigzag is the rail-fence style transposition of the 1911 "Manual of
// Cryptography", page 21. Symbols are written down the first column, up the
// second, down the third and so on; the ciphertext reads the rows. For
// height 5 and width 4 the grid is:
//
//	0  9 10 19
//	1  8 11 18
//	2  7 12 17
//	3  6 13 16
//	4  5 14 15
type Zigzag struct {
	height, width int
	perm          permutation.Permutation
}

// NewZigzag builds the zigzag permutation of a height×width grid.
// Returns ErrInvalidKey when a dimension is not positive or the block would
// exceed MaxBlockSize.
// Complexity: O(H·W) time and memory.
func NewZigzag(height, width int) (Zigzag, error) {
	if height <= 0 || width <= 0 {
		return Zigzag{}, fmt.Errorf("%w: zigzag dimensions %dx%d must be positive", ErrInvalidKey, height, width)
	}
	if height > MaxBlockSize/width {
		return Zigzag{}, fmt.Errorf("%w: zigzag block %dx%d exceeds %d symbols", ErrInvalidKey, height, width, MaxBlockSize)
	}

	g, err := grid.New(height, width)
	if err != nil {
		return Zigzag{}, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			row := y // even column: zig down
			if x%2 == 1 {
				row = height - 1 - y // odd column: zag up
			}
			if err = g.Set(x, row, x*height+y); err != nil {
				return Zigzag{}, err
			}
		}
	}
	perm, err := permutation.New(g.Cells())
	if err != nil {
		return Zigzag{}, err
	}

	return Zigzag{height: height, width: width, perm: perm}, nil
}

// ParseZigzag builds a Zigzag from a key of the form "HxW", e.g. "5x4".
// Surrounding whitespace and an upper-case 'X' are accepted.
// Returns ErrInvalidKey for anything that is not two positive integers.
func ParseZigzag(key string) (Zigzag, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(key)), "x")
	if len(parts) != 2 {
		return Zigzag{}, fmt.Errorf("%w: zigzag key %q must have the form HxW", ErrInvalidKey, key)
	}
	height, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Zigzag{}, fmt.Errorf("%w: zigzag height %q", ErrInvalidKey, parts[0])
	}
	width, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Zigzag{}, fmt.Errorf("%w: zigzag width %q", ErrInvalidKey, parts[1])
	}

	return NewZigzag(height, width)
}

// Height returns the number of grid rows.
func (z Zigzag) Height() int { return z.height }

// Width returns the number of grid columns.
func (z Zigzag) Width() int { return z.width }

// Permutation returns the zigzag permutation.
func (z Zigzag) Permutation() permutation.Permutation { return z.perm }

// BlockSize returns Height·Width.
func (z Zigzag) BlockSize() int { return z.perm.Len() }

// Grid returns the zigzag permutation in its height×width grid form.
func (z Zigzag) Grid() *grid.Grid {
	g, _ := grid.FromCells(z.height, z.width, z.perm.Indices())
	return g
}

// String returns the key in "HxW" form.
func (z Zigzag) String() string {
	return fmt.Sprintf("%dx%d", z.height, z.width)
}

package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// Grid is a rectangular table of ints. Width and Height are fixed at
// construction; cells are stored row-major.
type Grid struct {
	Width, Height int
	cells         []int
}

// New returns a zero-filled grid with the given dimensions.
// Returns ErrEmptyGrid if either dimension is not positive.
// Complexity: O(W×H) time and memory.
func New(height, width int) (*Grid, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, height, width)
	}
	return &Grid{
		Width:  width,
		Height: height,
		cells:  make([]int, height*width),
	}, nil
}

// FromRows builds a grid from a non-empty rectangular 2D slice, deep-copying
// the input.
// Returns ErrEmptyGrid or ErrNonRectangular on malformed input.
func FromRows(rows [][]int) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g, _ := New(h, w)
	for y, row := range rows {
		copy(g.cells[y*w:(y+1)*w], row)
	}

	return g, nil
}

// FromCells builds a height×width grid over a row-major copy of cells.
// Returns ErrEmptyGrid on non-positive dimensions and ErrNonRectangular when
// len(cells) != height*width.
func FromCells(height, width int, cells []int) (*Grid, error) {
	g, err := New(height, width)
	if err != nil {
		return nil, err
	}
	if len(cells) != height*width {
		return nil, fmt.Errorf("%w: %d cells for %dx%d", ErrNonRectangular, len(cells), height, width)
	}
	copy(g.cells, cells)
	return g, nil
}

// InBounds reports whether (x,y) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Index maps (x,y) to its row-major index y*Width + x. It does not check
// bounds.
// Complexity: O(1).
func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// At returns the value at (x,y), or ErrOutOfRange.
func (g *Grid) At(x, y int) (int, error) {
	if !g.InBounds(x, y) {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfRange, x, y, g.Height, g.Width)
	}
	return g.cells[g.Index(x, y)], nil
}

// Set stores v at (x,y), or returns ErrOutOfRange.
func (g *Grid) Set(x, y, v int) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfRange, x, y, g.Height, g.Width)
	}
	g.cells[g.Index(x, y)] = v
	return nil
}

// Cells returns a row-major copy of the grid contents.
func (g *Grid) Cells() []int {
	out := make([]int, len(g.cells))
	copy(out, g.cells)
	return out
}

// Rows returns a deep copy of the grid as Height rows of Width values.
func (g *Grid) Rows() [][]int {
	rows := make([][]int, g.Height)
	for y := range rows {
		rows[y] = make([]int, g.Width)
		copy(rows[y], g.cells[y*g.Width:(y+1)*g.Width])
	}
	return rows
}

// RotateCounterClockwise returns a new grid turned 90° counter-clockwise.
// The cell at (x,y) moves to (y, Width-1-x); the result is Width rows tall.
// Complexity: O(W×H).
func (g *Grid) RotateCounterClockwise() *Grid {
	r := &Grid{Width: g.Height, Height: g.Width, cells: make([]int, len(g.cells))}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			r.cells[r.Index(y, g.Width-1-x)] = g.cells[g.Index(x, y)]
		}
	}
	return r
}

// String renders the grid as right-aligned columns separated by one space,
// one row per line, without a trailing newline.
func (g *Grid) String() string {
	width := 1
	for _, v := range g.cells {
		if n := len(strconv.Itoa(v)); n > width {
			width = n
		}
	}
	var b strings.Builder
	for y := 0; y < g.Height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < g.Width; x++ {
			if x > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%*d", width, g.cells[g.Index(x, y)])
		}
	}
	return b.String()
}

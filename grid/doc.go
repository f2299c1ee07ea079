// Package grid provides the rectangular cell geometry behind grid-based
// transposition ciphers: row-major indexing, coordinate conversion, quarter
// turns, and the tabular rendering used in historic cipher manuals.
//
// What:
//
//   - Grid is a Width×Height table of ints stored row-major.
//   - Index(x,y) = y*Width + x; Coordinate is its inverse.
//   - RotateCounterClockwise returns a new grid turned by 90°, which is how a
//     rotating stencil uncovers a new quarter of the cells.
//   - String renders right-aligned columns, e.g.
//
//     0  9 10 19
//     1  8 11 18
//     2  7 12 17
//
// Why:
//
//   - A permutation read off a grid row by row is exactly the transposition
//     table; keeping the geometry in one place keeps zigzag construction and
//     stencil verification consistent.
//
// Complexity:
//
//   - New, FromRows, Cells, Rows, RotateCounterClockwise, String: O(W×H).
//   - Index, Coordinate, InBounds, At, Set: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: a dimension is zero or negative.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrOutOfRange: a coordinate lies outside the grid.
package grid

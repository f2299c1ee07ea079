package grid_test

import (
	"fmt"

	"github.com/katalvlaran/transpose/grid"
)

// ExampleGrid_RotateCounterClockwise turns a 3×3 stencil mask by a quarter.
func ExampleGrid_RotateCounterClockwise() {
	g, _ := grid.FromRows([][]int{
		{1, 0, 0},
		{0, 0, 1},
		{0, 0, 0},
	})
	fmt.Println(g.RotateCounterClockwise())

	// Output:
	// 0 1 0
	// 0 0 0
	// 1 0 0
}

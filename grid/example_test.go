package grid_test

import (
	"fmt"

	"github.com/katalvlaran/cobench/grid"
)

// ExampleBlock_Index shows how a quadrant maps local coordinates onto the
// shared row-major buffer without copying.
func ExampleBlock_Index() {
	m, _ := grid.FromSlice(4, []int32{
		0, 1, 2, 3,
		4, 5, 6, 7,
		8, 9, 10, 11,
		12, 13, 14, 15,
	})
	q := grid.Whole(m.Side()).Quad(1, 0) // bottom-left 2×2
	for i := 0; i < q.Side; i++ {
		for j := 0; j < q.Side; j++ {
			fmt.Print(m.Load(q.Index(m.Side(), i, j)), " ")
		}
	}
	fmt.Println()
	// Output: 8 9 12 13
}

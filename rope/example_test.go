package rope_test

import (
	"fmt"

	"github.com/katalvlaran/advent2022/rope"
)

// ExampleCountTailPositions runs the short rope sample.
func ExampleCountTailPositions() {
	n, err := rope.CountTailPositions([]string{"R 4", "U 4", "L 3", "D 1", "R 4", "D 1", "L 5", "R 2"}, rope.ShortRope)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(n)
	// Output: 13
}

package calories_test

import (
	"fmt"

	"github.com/katalvlaran/advent2022/calories"
)

// ExampleTopN sums the two heaviest of three groups.
func ExampleTopN() {
	groups, err := calories.ParseGroups([]string{"10", "20", "", "5", "", "40"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	top, _ := calories.TopN(groups, 2)
	fmt.Println(calories.Max(groups), top)
	// Output: 40 70
}

package calories

import "errors"

// Sentinel errors returned by the calories package.
var (
	// ErrBadCalories indicates a line that is neither blank nor a non-negative integer.
	ErrBadCalories = errors.New("calories: line is not a non-negative integer")
	// ErrNoGroups indicates an input without any numeric line.
	ErrNoGroups = errors.New("calories: input holds no groups")
	// ErrNotEnoughGroups indicates TopN was asked for more groups than exist.
	ErrNotEnoughGroups = errors.New("calories: not enough groups")
)

// DefaultTopN is the number of groups summed by the second part of the puzzle.
const DefaultTopN = 3

// Group is one contiguous run of item values.
type Group []int

// Total returns the sum of every item in g.
func (g Group) Total() int {
	sum := 0
	for _, v := range g {
		sum += v
	}

	return sum
}

package calories

import (
	"container/heap"
	"fmt"
	"strconv"
	"strings"
)

// ParseGroups reads lines into groups. Blank lines close the current group;
// consecutive blank lines do not produce empty groups.
func ParseGroups(lines []string) ([]Group, error) {
	var (
		groups  []Group
		current Group
	)
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			if len(current) > 0 {
				groups = append(groups, current)
				current = nil
			}
			continue
		}
		v, err := strconv.Atoi(line)
		if err != nil || v < 0 {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadCalories, i+1, raw)
		}
		current = append(current, v)
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}
	if len(groups) == 0 {
		return nil, ErrNoGroups
	}

	return groups, nil
}

// Max returns the largest group total, or 0 for no groups.
func Max(groups []Group) int {
	best := 0
	for _, g := range groups {
		if t := g.Total(); t > best {
			best = t
		}
	}

	return best
}

// TopN returns the sum of the n largest group totals.
// Returns ErrNotEnoughGroups if len(groups) < n.
func TopN(groups []Group, n int) (int, error) {
	if n < 0 || len(groups) < n {
		return 0, fmt.Errorf("%w: want %d, have %d", ErrNotEnoughGroups, n, len(groups))
	}

	h := make(totalHeap, 0, len(groups))
	for _, g := range groups {
		h = append(h, g.Total())
	}
	heap.Init(&h)

	sum := 0
	for i := 0; i < n; i++ {
		sum += heap.Pop(&h).(int)
	}

	return sum, nil
}

// totalHeap is a max-heap of group totals.
type totalHeap []int

func (h totalHeap) Len() int           { return len(h) }
func (h totalHeap) Less(i, j int) bool { return h[i] > h[j] }
func (h totalHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *totalHeap) Push(x interface{}) { *h = append(*h, x.(int)) }

func (h *totalHeap) Pop() interface{} {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]

	return v
}

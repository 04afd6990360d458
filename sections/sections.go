package sections

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseRange parses "a-b" into a Range.
func ParseRange(s string) (Range, error) {
	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		return Range{}, fmt.Errorf("%w: range %q", ErrBadPair, s)
	}
	a, err := strconv.Atoi(lo)
	if err != nil {
		return Range{}, fmt.Errorf("%w: range %q", ErrBadPair, s)
	}
	b, err := strconv.Atoi(hi)
	if err != nil {
		return Range{}, fmt.Errorf("%w: range %q", ErrBadPair, s)
	}
	if a > b {
		return Range{}, fmt.Errorf("%w: %q", ErrInvertedRange, s)
	}

	return Range{Lo: a, Hi: b}, nil
}

// ParsePair parses "a-b,c-d" into its two ranges.
func ParsePair(line string) (Range, Range, error) {
	left, right, ok := strings.Cut(strings.TrimSpace(line), ",")
	if !ok {
		return Range{}, Range{}, fmt.Errorf("%w: %q", ErrBadPair, line)
	}
	r1, err := ParseRange(left)
	if err != nil {
		return Range{}, Range{}, err
	}
	r2, err := ParseRange(right)
	if err != nil {
		return Range{}, Range{}, err
	}

	return r1, r2, nil
}

// countPairs counts the lines whose pair satisfies match.
func countPairs(lines []string, match func(a, b Range) bool) (int, error) {
	n := 0
	for i, line := range lines {
		a, b, err := ParsePair(line)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		if match(a, b) {
			n++
		}
	}

	return n, nil
}

// CountContained counts pairs where either range contains the other.
func CountContained(lines []string) (int, error) {
	return countPairs(lines, func(a, b Range) bool {
		return a.Contains(b) || b.Contains(a)
	})
}

// CountOverlapping counts pairs whose ranges overlap.
func CountOverlapping(lines []string) (int, error) {
	return countPairs(lines, Range.Overlaps)
}

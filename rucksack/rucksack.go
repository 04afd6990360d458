package rucksack

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Priority returns the priority of item type b.
func Priority(b byte) (int, error) {
	switch {
	case b >= 'a' && b <= 'z':
		return int(b-'a') + 1, nil
	case b >= 'A' && b <= 'Z':
		return int(b-'A') + 27, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadItem, b)
	}
}

// itemSet builds the set of item priorities present in s.
func itemSet(s string) (*bitset.BitSet, error) {
	set := bitset.New(maxPriority + 1)
	for i := 0; i < len(s); i++ {
		p, err := Priority(s[i])
		if err != nil {
			return nil, err
		}
		set.Set(uint(p))
	}

	return set, nil
}

// common intersects every set and returns the single shared priority.
func common(sets ...*bitset.BitSet) (int, error) {
	shared := sets[0].Clone()
	for _, s := range sets[1:] {
		shared.InPlaceIntersection(s)
	}
	switch shared.Count() {
	case 0:
		return 0, ErrNoCommonItem
	case 1:
		p, _ := shared.NextSet(0)
		return int(p), nil
	default:
		return 0, ErrAmbiguousItem
	}
}

// CompartmentPriority splits line into two equal compartments and returns
// the priority of the one item type found in both.
func CompartmentPriority(line string) (int, error) {
	if len(line)%2 != 0 {
		return 0, fmt.Errorf("%w: %q", ErrOddLength, line)
	}
	half := len(line) / 2
	left, err := itemSet(line[:half])
	if err != nil {
		return 0, err
	}
	right, err := itemSet(line[half:])
	if err != nil {
		return 0, err
	}
	p, err := common(left, right)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", err, line)
	}

	return p, nil
}

// BadgePriority returns the priority of the one item type carried by all
// three rucksacks.
func BadgePriority(a, b, c string) (int, error) {
	sets := make([]*bitset.BitSet, 0, GroupSize)
	for _, line := range []string{a, b, c} {
		s, err := itemSet(line)
		if err != nil {
			return 0, err
		}
		sets = append(sets, s)
	}

	return common(sets...)
}

// SumCompartments sums CompartmentPriority over lines.
func SumCompartments(lines []string) (int, error) {
	sum := 0
	for i, line := range lines {
		p, err := CompartmentPriority(line)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		sum += p
	}

	return sum, nil
}

// SumBadges sums BadgePriority over consecutive groups of three lines.
func SumBadges(lines []string) (int, error) {
	if len(lines)%GroupSize != 0 {
		return 0, fmt.Errorf("%w: %d lines", ErrIncompleteGroup, len(lines))
	}
	sum := 0
	for i := 0; i < len(lines); i += GroupSize {
		p, err := BadgePriority(lines[i], lines[i+1], lines[i+2])
		if err != nil {
			return 0, fmt.Errorf("group starting at line %d: %w", i+1, err)
		}
		sum += p
	}

	return sum, nil
}

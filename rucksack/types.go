package rucksack

import "errors"

// Sentinel errors for rucksack parsing and matching.
var (
	// ErrBadItem indicates a byte outside a..z and A..Z.
	ErrBadItem = errors.New("rucksack: invalid item type")
	// ErrOddLength indicates a rucksack that cannot be split into equal compartments.
	ErrOddLength = errors.New("rucksack: odd number of items")
	// ErrNoCommonItem indicates the compared sets share no item type.
	ErrNoCommonItem = errors.New("rucksack: no common item type")
	// ErrAmbiguousItem indicates the compared sets share more than one item type.
	ErrAmbiguousItem = errors.New("rucksack: more than one common item type")
	// ErrIncompleteGroup indicates a line count that is not a multiple of GroupSize.
	ErrIncompleteGroup = errors.New("rucksack: incomplete group")
)

// GroupSize is the number of rucksacks that share one badge.
const GroupSize = 3

// maxPriority is the highest item priority ('Z').
const maxPriority = 52

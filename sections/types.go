package sections

import "errors"

// Sentinel errors for section pairs.
var (
	// ErrBadPair indicates a line not shaped like "a-b,c-d".
	ErrBadPair = errors.New("sections: malformed pair")
	// ErrInvertedRange indicates a range whose low bound exceeds its high bound.
	ErrInvertedRange = errors.New("sections: range start after end")
)

// Range is an inclusive span of section IDs.
type Range struct {
	Lo, Hi int
}

// Len returns the number of sections in r.
func (r Range) Len() int { return r.Hi - r.Lo + 1 }

// Contains reports whether every section of o lies within r.
func (r Range) Contains(o Range) bool {
	return r.Lo <= o.Lo && o.Hi <= r.Hi
}

// Overlaps reports whether r and o share at least one section.
func (r Range) Overlaps(o Range) bool {
	return r.Lo <= o.Hi && o.Lo <= r.Hi
}

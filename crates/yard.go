package crates

import (
	"fmt"
	"strings"
)

// Yard is an ordered set of crate stacks. Each stack lists crates bottom
// to top.
type Yard struct {
	stacks [][]byte
}

// NewYard builds a yard from bottom-to-top stacks. The input is copied.
func NewYard(stacks ...string) *Yard {
	y := &Yard{stacks: make([][]byte, len(stacks))}
	for i, s := range stacks {
		y.stacks[i] = []byte(s)
	}

	return y
}

// Len returns the number of stacks.
func (y *Yard) Len() int { return len(y.stacks) }

// Stack returns a copy of stack i (1-based), bottom to top.
func (y *Yard) Stack(i int) (string, error) {
	if i < 1 || i > len(y.stacks) {
		return "", fmt.Errorf("%w: %d", ErrNoSuchStack, i)
	}

	return string(y.stacks[i-1]), nil
}

// Clone returns a deep copy of y.
func (y *Yard) Clone() *Yard {
	c := &Yard{stacks: make([][]byte, len(y.stacks))}
	for i, s := range y.stacks {
		c.stacks[i] = append([]byte(nil), s...)
	}

	return c
}

// Apply performs m with the given crane model. On error the yard is left
// unchanged.
func (y *Yard) Apply(m Move, model Model) error {
	if m.From < 1 || m.From > len(y.stacks) {
		return fmt.Errorf("%w: from %d", ErrNoSuchStack, m.From)
	}
	if m.To < 1 || m.To > len(y.stacks) {
		return fmt.Errorf("%w: to %d", ErrNoSuchStack, m.To)
	}
	src := y.stacks[m.From-1]
	if m.Count < 0 || m.Count > len(src) {
		return fmt.Errorf("%w: move %d from stack %d holding %d", ErrNotEnoughCrates, m.Count, m.From, len(src))
	}
	if m.From == m.To || m.Count == 0 {
		return nil
	}

	cut := len(src) - m.Count
	block := append([]byte(nil), src[cut:]...)
	if model == CrateMover9000 {
		for l, r := 0, len(block)-1; l < r; l, r = l+1, r-1 {
			block[l], block[r] = block[r], block[l]
		}
	}
	y.stacks[m.From-1] = src[:cut]
	y.stacks[m.To-1] = append(y.stacks[m.To-1], block...)

	return nil
}

// Tops returns the top crate of every stack; empty stacks render as a space.
func (y *Yard) Tops() string {
	var b strings.Builder
	for _, s := range y.stacks {
		if len(s) == 0 {
			b.WriteByte(' ')
			continue
		}
		b.WriteByte(s[len(s)-1])
	}

	return b.String()
}

// Rearrange parses lines, applies every move with model and returns the
// resulting tops.
func Rearrange(lines []string, model Model) (string, error) {
	yard, moves, err := Parse(lines)
	if err != nil {
		return "", err
	}
	for i, m := range moves {
		if err := yard.Apply(m, model); err != nil {
			return "", fmt.Errorf("move %d: %w", i+1, err)
		}
	}

	return yard.Tops(), nil
}

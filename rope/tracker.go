package rope

import "fmt"

// Tracker drives a Rope and records every distinct tail position,
// including the starting origin.
type Tracker struct {
	rope    *Rope
	visited map[Pos]struct{}
}

// NewTracker returns a tracker over a fresh rope of n knots.
func NewTracker(n int) (*Tracker, error) {
	r, err := New(n)
	if err != nil {
		return nil, err
	}

	return &Tracker{
		rope:    r,
		visited: map[Pos]struct{}{r.Tail(): {}},
	}, nil
}

// Apply expands m into unit steps, recording the tail after each one.
func (t *Tracker) Apply(m Move) error {
	for i := 0; i < m.Count; i++ {
		tail, err := t.rope.Step(m.Dir)
		if err != nil {
			return err
		}
		t.visited[tail] = struct{}{}
	}

	return nil
}

// Visited returns the number of distinct tail positions seen so far.
func (t *Tracker) Visited() int { return len(t.visited) }

// Rope returns the tracked rope.
func (t *Tracker) Rope() *Rope { return t.rope }

// CountTailPositions simulates every move line on a rope of knots knots and
// returns the number of distinct tail positions.
func CountTailPositions(lines []string, knots int) (int, error) {
	t, err := NewTracker(knots)
	if err != nil {
		return 0, err
	}
	for i, line := range lines {
		m, err := ParseMove(line)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		if err := t.Apply(m); err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
	}

	return t.Visited(), nil
}

package rope

import (
	"fmt"
	"strconv"
	"strings"
)

// Rope is a fixed-length chain of knots. knots[0] is the head.
type Rope struct {
	knots []Pos
}

// New returns a rope of n knots collapsed at the origin.
func New(n int) (*Rope, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrTooFewKnots, n)
	}

	return &Rope{knots: make([]Pos, n)}, nil
}

// Len returns the number of knots.
func (r *Rope) Len() int { return len(r.knots) }

// Head returns the first knot.
func (r *Rope) Head() Pos { return r.knots[0] }

// Tail returns the last knot.
func (r *Rope) Tail() Pos { return r.knots[len(r.knots)-1] }

// Knots returns a copy of every knot, head first.
func (r *Rope) Knots() []Pos { return append([]Pos(nil), r.knots...) }

// Step moves the head one unit in direction d, reconciles the chain and
// returns the new tail position.
func (r *Rope) Step(d Direction) (Pos, error) {
	delta, ok := deltas[d]
	if !ok {
		return Pos{}, fmt.Errorf("%w: direction %q", ErrBadMove, byte(d))
	}
	r.knots[0] = r.knots[0].Add(delta)
	r.reconcile()

	return r.Tail(), nil
}

// reconcile pulls every knot after the head toward its leader. Knot i+1
// only moves once knot i is final for this step.
func (r *Rope) reconcile() {
	for i := 1; i < len(r.knots); i++ {
		lead, follow := r.knots[i-1], r.knots[i]
		if lead.Chebyshev(follow) <= 1 {
			// Knots further down cannot move either.
			return
		}
		r.knots[i] = follow.Toward(lead)
	}
}

// ParseMove parses a line such as "R 4".
func ParseMove(line string) (Move, error) {
	dir, count, ok := strings.Cut(strings.TrimSpace(line), " ")
	if !ok || len(dir) != 1 {
		return Move{}, fmt.Errorf("%w: %q", ErrBadMove, line)
	}
	d := Direction(dir[0])
	if _, known := deltas[d]; !known {
		return Move{}, fmt.Errorf("%w: unexpected direction %q", ErrBadMove, dir)
	}
	n, err := strconv.Atoi(count)
	if err != nil || n < 0 {
		return Move{}, fmt.Errorf("%w: bad count in %q", ErrBadMove, line)
	}

	return Move{Dir: d, Count: n}, nil
}

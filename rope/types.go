package rope

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for rope simulation.
var (
	// ErrBadMove indicates a move line not shaped like "<U|D|L|R> <count>".
	ErrBadMove = errors.New("rope: malformed move")
	// ErrTooFewKnots indicates a rope with no knots.
	ErrTooFewKnots = errors.New("rope: a rope needs at least one knot")
)

const (
	// ShortRope is the knot count of the first puzzle part.
	ShortRope = 2
	// LongRope is the knot count of the second puzzle part.
	LongRope = 10
)

// Point is a position on the integer plane.
type Point[T constraints.Signed] struct {
	X, Y T
}

// Pos is the point type used by Rope.
type Pos = Point[int]

func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

func sign[T constraints.Signed](v T) T {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// Chebyshev returns the chessboard distance between p and q.
func (p Point[T]) Chebyshev(q Point[T]) T {
	dx, dy := abs(p.X-q.X), abs(p.Y-q.Y)
	if dx > dy {
		return dx
	}
	return dy
}

// Toward returns p moved at most one unit toward q along each axis.
func (p Point[T]) Toward(q Point[T]) Point[T] {
	return Point[T]{X: p.X + sign(q.X-p.X), Y: p.Y + sign(q.Y-p.Y)}
}

// Add returns p translated by q.
func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{X: p.X + q.X, Y: p.Y + q.Y}
}

// Direction is a cardinal direction of head movement.
type Direction byte

const (
	Up    Direction = 'U'
	Down  Direction = 'D'
	Left  Direction = 'L'
	Right Direction = 'R'
)

// deltas maps every valid Direction to its unit vector; Y grows upward.
var deltas = map[Direction]Pos{
	Up:    {X: 0, Y: 1},
	Down:  {X: 0, Y: -1},
	Left:  {X: -1, Y: 0},
	Right: {X: 1, Y: 0},
}

// Move is a head move of Count unit steps in direction Dir.
type Move struct {
	Dir   Direction
	Count int
}

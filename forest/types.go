package forest

import "errors"

// Sentinel errors for forest grids.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("forest: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("forest: all rows must have the same length")
	// ErrBadHeight indicates a cell that is not a single decimal digit.
	ErrBadHeight = errors.New("forest: height must be a digit")
	// ErrOutOfBounds indicates a query for a cell outside the grid.
	ErrOutOfBounds = errors.New("forest: cell out of bounds")
)

// Direction is one of the four axis directions a ray can travel.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every Direction in declaration order.
var Directions = [...]Direction{Up, Down, Left, Right}

// offsets holds the (row, col) step of each Direction.
var offsets = [...][2]int{
	Up:    {-1, 0},
	Down:  {1, 0},
	Left:  {0, -1},
	Right: {0, 1},
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Grid is an immutable rectangle of heights. heights[row][col] holds the
// height at (row, col).
type Grid struct {
	Width, Height int
	heights       [][]int
}

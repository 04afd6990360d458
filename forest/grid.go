package forest

import "fmt"

// NewGrid parses one row per line, one digit per cell.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrBadHeight on bad input.
func NewGrid(lines []string) (*Grid, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(lines), len(lines[0])
	heights := make([][]int, h)
	for r, line := range lines {
		if len(line) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(line), w)
		}
		heights[r] = make([]int, w)
		for c := 0; c < w; c++ {
			b := line[c]
			if b < '0' || b > '9' {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadHeight, b, r, c)
			}
			heights[r][c] = int(b - '0')
		}
	}

	return &Grid{Width: w, Height: h, heights: heights}, nil
}

// InBounds reports whether (row, col) lies within the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Height && col >= 0 && col < g.Width
}

// At returns the height at (row, col).
func (g *Grid) At(row, col int) (int, error) {
	if !g.InBounds(row, col) {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, row, col)
	}

	return g.heights[row][col], nil
}

// Visible reports whether every cell strictly between (row, col) and the
// edge in direction d is lower than (row, col). Edge cells are visible
// toward their own edge.
func (g *Grid) Visible(row, col int, d Direction) (bool, error) {
	if !g.InBounds(row, col) {
		return false, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, row, col)
	}

	return g.visible(row, col, d), nil
}

func (g *Grid) visible(row, col int, d Direction) bool {
	h := g.heights[row][col]
	dr, dc := offsets[d][0], offsets[d][1]
	for r, c := row+dr, col+dc; g.InBounds(r, c); r, c = r+dr, c+dc {
		if g.heights[r][c] >= h {
			return false
		}
	}

	return true
}

// ViewingDistance counts the cells seen from (row, col) in direction d:
// the ray stops at the edge or after the first cell at least as tall.
func (g *Grid) ViewingDistance(row, col int, d Direction) (int, error) {
	if !g.InBounds(row, col) {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, row, col)
	}

	return g.viewingDistance(row, col, d), nil
}

func (g *Grid) viewingDistance(row, col int, d Direction) int {
	h := g.heights[row][col]
	dr, dc := offsets[d][0], offsets[d][1]
	n := 0
	for r, c := row+dr, col+dc; g.InBounds(r, c); r, c = r+dr, c+dc {
		n++
		if g.heights[r][c] >= h {
			break
		}
	}

	return n
}

// VisibleFromOutside reports whether (row, col) is visible from at least
// one edge.
func (g *Grid) VisibleFromOutside(row, col int) (bool, error) {
	if !g.InBounds(row, col) {
		return false, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, row, col)
	}

	return g.visibleFromOutside(row, col), nil
}

func (g *Grid) visibleFromOutside(row, col int) bool {
	for _, d := range Directions {
		if g.visible(row, col, d) {
			return true
		}
	}

	return false
}

// ScenicScore returns the product of the four viewing distances.
func (g *Grid) ScenicScore(row, col int) (int, error) {
	if !g.InBounds(row, col) {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, row, col)
	}

	return g.scenicScore(row, col), nil
}

func (g *Grid) scenicScore(row, col int) int {
	score := 1
	for _, d := range Directions {
		score *= g.viewingDistance(row, col, d)
		if score == 0 {
			return 0
		}
	}

	return score
}

// CountVisible returns how many cells are visible from outside the grid.
func (g *Grid) CountVisible() int {
	n := 0
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			if g.visibleFromOutside(r, c) {
				n++
			}
		}
	}

	return n
}

// MaxScenicScore returns the highest scenic score of any cell.
func (g *Grid) MaxScenicScore() int {
	best := 0
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			if s := g.scenicScore(r, c); s > best {
				best = s
			}
		}
	}

	return best
}

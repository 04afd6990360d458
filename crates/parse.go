package crates

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/grafana/regexp"
)

var movePattern = regexp.MustCompile(`^move (\d+) from (\d+) to (\d+)$`)

// ParseMove parses a single "move N from A to B" line.
func ParseMove(line string) (Move, error) {
	m := movePattern.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return Move{}, fmt.Errorf("%w: %q", ErrBadMove, line)
	}
	var nums [3]int
	for i := range nums {
		v, err := strconv.Atoi(m[i+1])
		if err != nil {
			return Move{}, fmt.Errorf("%w: %q: %v", ErrBadMove, line, err)
		}
		nums[i] = v
	}

	return Move{Count: nums[0], From: nums[1], To: nums[2]}, nil
}

// Parse reads the drawing and the move list.
func Parse(lines []string) (*Yard, []Move, error) {
	// 1) Drawing rows: every line whose first non-blank byte is '['.
	i := 0
	for i < len(lines) && strings.HasPrefix(strings.TrimSpace(lines[i]), "[") {
		i++
	}
	rows := lines[:i]
	if i == len(lines) {
		return nil, nil, fmt.Errorf("%w: missing label row", ErrBadDrawing)
	}

	// 2) Label row: 1 2 ... n.
	labels := strings.Fields(lines[i])
	if len(labels) == 0 {
		return nil, nil, fmt.Errorf("%w: empty label row", ErrBadDrawing)
	}
	for k, label := range labels {
		if label != strconv.Itoa(k+1) {
			return nil, nil, fmt.Errorf("%w: label %q at position %d", ErrBadDrawing, label, k+1)
		}
	}
	i++

	yard, err := buildYard(rows, len(labels))
	if err != nil {
		return nil, nil, err
	}

	// 3) Blank separator, unless the input ends right after the labels.
	if i < len(lines) {
		if strings.TrimSpace(lines[i]) != "" {
			return nil, nil, fmt.Errorf("%w: expected blank line after labels, got %q", ErrBadDrawing, lines[i])
		}
		i++
	}

	// 4) Moves.
	moves := make([]Move, 0, len(lines)-i)
	for ; i < len(lines); i++ {
		m, err := ParseMove(lines[i])
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		moves = append(moves, m)
	}

	return yard, moves, nil
}

// buildYard stacks the crates of rows bottom-up into n stacks.
func buildYard(rows []string, n int) (*Yard, error) {
	stacks := make([][]byte, n)
	for r := len(rows) - 1; r >= 0; r-- {
		row := rows[r]
		for col := 1; col < len(row); col += cellWidth {
			c := row[col]
			if c == ' ' {
				continue
			}
			if c < 'A' || c > 'Z' || row[col-1] != '[' {
				return nil, fmt.Errorf("%w: bad cell %q in row %q", ErrBadDrawing, c, row)
			}
			k := col / cellWidth
			if k >= n {
				return nil, fmt.Errorf("%w: crate %q outside %d stacks", ErrBadDrawing, c, n)
			}
			stacks[k] = append(stacks[k], c)
		}
	}

	return &Yard{stacks: stacks}, nil
}

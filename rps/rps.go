package rps

import (
	"fmt"
	"strings"
)

// RoundScore returns the score of a single round line under strategy s.
func RoundScore(round string, s Strategy) (int, error) {
	round = strings.TrimSpace(round)
	if _, ok := outcomeByRound[round]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrBadRound, round)
	}
	column := round[len(round)-1]

	switch s {
	case AsShapes:
		return shapeByColumn[column] + outcomeByRound[round], nil
	case AsOutcomes:
		return outcomeByColumn[column] + shapeByLetter[responseByRound[round]], nil
	default:
		return 0, fmt.Errorf("rps: unknown strategy %d", int(s))
	}
}

// Score sums RoundScore over every line of the guide. Blank lines are not
// rounds and abort like any other malformed line.
func Score(lines []string, s Strategy) (int, error) {
	total := 0
	for i, line := range lines {
		v, err := RoundScore(line, s)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		total += v
	}

	return total, nil
}

package rps

import "errors"

// ErrBadRound indicates a line that is not one of the nine valid rounds.
var ErrBadRound = errors.New("rps: malformed round")

// Strategy selects how the second column of a round is read.
type Strategy int

const (
	// AsShapes reads X, Y, Z as rock, paper, scissors.
	AsShapes Strategy = iota
	// AsOutcomes reads X, Y, Z as lose, draw, win.
	AsOutcomes
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case AsShapes:
		return "shapes"
	case AsOutcomes:
		return "outcomes"
	default:
		return "unknown"
	}
}

// outcomeByRound is the outcome score of each round under AsShapes.
var outcomeByRound = map[string]int{
	"A X": 3, "A Y": 6, "A Z": 0,
	"B X": 0, "B Y": 3, "B Z": 6,
	"C X": 6, "C Y": 0, "C Z": 3,
}

// shapeByColumn is the shape score of the played column under AsShapes.
var shapeByColumn = map[byte]int{'X': 1, 'Y': 2, 'Z': 3}

// responseByRound is the opponent-letter shape to play under AsOutcomes.
var responseByRound = map[string]byte{
	"A X": 'C', "A Y": 'A', "A Z": 'B',
	"B X": 'A', "B Y": 'B', "B Z": 'C',
	"C X": 'B', "C Y": 'C', "C Z": 'A',
}

// outcomeByColumn is the outcome score of the desired column under AsOutcomes.
var outcomeByColumn = map[byte]int{'X': 0, 'Y': 3, 'Z': 6}

// shapeByLetter is the shape score of an opponent-alphabet shape.
var shapeByLetter = map[byte]int{'A': 1, 'B': 2, 'C': 3}

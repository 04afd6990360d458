package crates

import "errors"

// Sentinel errors returned by the crates package.
var (
	// ErrBadDrawing indicates a drawing without a valid label row or blank
	// separator, a malformed cell, or a crate outside the labelled stacks.
	ErrBadDrawing = errors.New("crates: malformed stack drawing")

	// ErrBadMove indicates a line that is not "move <n> from <i> to <j>".
	ErrBadMove = errors.New("crates: malformed move")

	// ErrNoSuchStack indicates a move naming a stack outside 1..Len().
	ErrNoSuchStack = errors.New("crates: no such stack")

	// ErrNotEnoughCrates indicates a move taking more crates than the
	// source stack holds.
	ErrNotEnoughCrates = errors.New("crates: not enough crates on stack")
)

// Model selects the crane behaviour used by Yard.Apply.
type Model int

const (
	// CrateMover9000 moves crates one at a time.
	CrateMover9000 Model = iota
	// CrateMover9001 moves several crates at once, preserving their order.
	CrateMover9001
)

// Move lifts Count crates from stack From onto stack To. Stacks are
// numbered from 1, as in the drawing's label row.
type Move struct {
	Count, From, To int
}

// cellWidth is the distance between two crate columns in the drawing.
const cellWidth = 4

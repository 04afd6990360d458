// Package crates parses a drawing of crate stacks and replays crane moves
// over it.
//
// Input layout:
//
//	    [D]
//	[N] [C]
//	[Z] [M] [P]
//	 1   2   3
//
//	move 1 from 2 to 1
//
// Crate cells sit four columns apart; the label row closes the drawing and
// a blank line separates it from the move list. Two crane models exist:
// CrateMover9000 lifts one crate at a time, so a multi-crate move reverses
// the moved block; CrateMover9001 lifts the block at once and keeps its
// order.
//
// Errors:
//
//   - ErrBadDrawing:      the drawing has no label row, a bad label, a crate
//     outside the labelled stacks, or no blank line before the moves.
//   - ErrBadMove:         a move line does not match the move grammar.
//   - ErrNoSuchStack:     a move names a stack that does not exist.
//   - ErrNotEnoughCrates: a move lifts more crates than the stack holds.
package crates

// Package rps scores a rock-paper-scissors strategy guide.
//
// Each round line is "<opponent> <column>" with opponent in {A,B,C} and
// column in {X,Y,Z}. The column has two readings, selected by Strategy:
//
//   - AsShapes:   the column is the shape to play.
//   - AsOutcomes: the column is the outcome to reach; the shape is looked up.
//
// A round scores its shape (rock 1, paper 2, scissors 3) plus its outcome
// (loss 0, draw 3, win 6). All scores come from fixed lookup tables.
package rps

// Package rope simulates a chain of knots dragged by its head across an
// integer plane.
//
// The head moves one unit at a time. After every unit step each following
// knot reconciles with the knot ahead of it, in order from head to tail:
// when the two are more than one unit apart on either axis, the follower
// steps one unit toward its leader along every axis on which they differ
// (a diagonal step when both differ). The tail's position after every
// unit step is recorded; multi-unit moves are always expanded into unit
// steps because the tail may land on a new square at any of them.
//
// Complexity: O(S × K) for S unit steps and K knots, O(V) memory for V
// distinct tail positions.
package rope

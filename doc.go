// Package advent2022 solves the Advent of Code 2022 puzzles for days 1
// through 9.
//
// Each day lives in its own package with a small, independently testable
// API:
//
//	calories/ Day 1: per-elf calorie totals, max and top-N
//	rps/      Day 2: rock-paper-scissors strategy guide scoring
//	rucksack/ Day 3: shared item priorities (bitsets)
//	sections/ Day 4: inclusive range containment and overlap
//	crates/   Day 5: stack drawing parser and two crane models
//	signal/   Day 6: start-of-packet and start-of-message markers
//	fstree/   Day 7: filesystem tree rebuilt from a shell transcript
//	forest/   Day 8: tree visibility and scenic scores on a height grid
//	rope/     Day 9: multi-knot rope simulation and tail coverage
//
// The puzzle package registers every day behind a common Runner and the
// aoc command (cmd/aoc) reads inputs, solves, and prints the answers.
package advent2022

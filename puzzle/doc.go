// Package puzzle maps day numbers to their solvers and runs them.
//
// Every day is a pure pipeline parse → compute → format producing two
// answers. A Runner holds only immutable configuration (puzzle Params and a
// logger), so solving the same input twice always yields the same
// Answers. The first error of a day aborts that day; no partial answers
// are returned.
package puzzle

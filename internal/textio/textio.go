// Package textio loads puzzle input files and splits them into lines.
//
// Inputs are read wholesale before any processing begins; there is no
// streaming. Lines drops the single empty element produced by a final
// newline so that solvers never see a phantom trailing line.
package textio

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrEmptyInput indicates that an input file exists but holds no bytes.
var ErrEmptyInput = errors.New("textio: input is empty")

// ReadFile returns the full contents of path as a string.
// Returns ErrEmptyInput if the file is empty.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("textio: read %s: %w", path, err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%w: %s", ErrEmptyInput, path)
	}

	return string(data), nil
}

// Lines splits s on '\n', strips a trailing '\r' from every line and drops
// the one empty line produced by a terminating newline. Interior blank
// lines are kept because several puzzles use them as separators.
func Lines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}

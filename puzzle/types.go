package puzzle

import (
	"errors"
	"time"

	"github.com/katalvlaran/advent2022/calories"
	"github.com/katalvlaran/advent2022/fstree"
	"github.com/katalvlaran/advent2022/rope"
	"github.com/katalvlaran/advent2022/signal"
	"go.uber.org/zap"
)

// ErrUnknownDay indicates a day number with no registered solver.
var ErrUnknownDay = errors.New("puzzle: no solver registered for day")

// Answers holds the two answers of a day, already formatted.
type Answers struct {
	Part1 string `yaml:"part1" json:"part1"`
	Part2 string `yaml:"part2" json:"part2"`
}

// Result is the outcome of solving one day.
type Result struct {
	Day        int           `yaml:"day"`
	Title      string        `yaml:"title"`
	Answers    Answers       `yaml:"answers"`
	InputBytes int           `yaml:"input_bytes"`
	Elapsed    time.Duration `yaml:"elapsed"`
}

// Params carries the tunable puzzle constants.
type Params struct {
	TopElves          int
	PacketWindow      int
	MessageWindow     int
	SmallDirThreshold int64
	DiskCapacity      int64
	RequiredFree      int64
	ShortKnots        int
	LongKnots         int
}

// DefaultParams returns the standard puzzle constants.
func DefaultParams() Params {
	return Params{
		TopElves:          calories.DefaultTopN,
		PacketWindow:      signal.PacketMarkerSize,
		MessageWindow:     signal.MessageMarkerSize,
		SmallDirThreshold: fstree.SmallDirThreshold,
		DiskCapacity:      fstree.DiskCapacity,
		RequiredFree:      fstree.RequiredFree,
		ShortKnots:        rope.ShortRope,
		LongKnots:         rope.LongRope,
	}
}

// Day describes one registered puzzle.
type Day struct {
	Number int
	Title  string

	solve func(r *Runner, text string) (Answers, error)
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger used for debug traces. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithParams overrides the puzzle constants.
func WithParams(p Params) Option {
	return func(r *Runner) {
		r.params = p
	}
}

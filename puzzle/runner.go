package puzzle

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/katalvlaran/advent2022/internal/textio"
)

// Runner solves registered days.
type Runner struct {
	params Params
	logger *zap.Logger
	days   map[int]Day
}

// NewRunner returns a Runner with DefaultParams and a no-op logger unless
// overridden by opts.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		params: DefaultParams(),
		logger: zap.NewNop(),
		days:   make(map[int]Day, len(registry)),
	}
	for _, opt := range opts {
		opt(r)
	}
	for _, d := range registry {
		r.days[d.Number] = d
	}

	return r
}

// Days returns every registered day in ascending order.
func (r *Runner) Days() []Day {
	out := make([]Day, len(registry))
	copy(out, registry)

	return out
}

// Lookup returns the registered day n.
func (r *Runner) Lookup(n int) (Day, error) {
	d, ok := r.days[n]
	if !ok {
		return Day{}, fmt.Errorf("%w: %d", ErrUnknownDay, n)
	}

	return d, nil
}

// Solve runs day n over the raw input text.
func (r *Runner) Solve(n int, text string) (Result, error) {
	d, err := r.Lookup(n)
	if err != nil {
		return Result{}, err
	}

	start := time.Now()
	answers, err := d.solve(r, text)
	if err != nil {
		return Result{}, fmt.Errorf("day %d: %w", n, err)
	}
	elapsed := time.Since(start)
	r.logger.Debug("day solved",
		zap.Int("day", n),
		zap.String("part1", answers.Part1),
		zap.String("part2", answers.Part2),
		zap.Duration("elapsed", elapsed))

	return Result{
		Day:        n,
		Title:      d.Title,
		Answers:    answers,
		InputBytes: len(text),
		Elapsed:    elapsed,
	}, nil
}

// SolveFile reads path and solves day n over its contents.
func (r *Runner) SolveFile(n int, path string) (Result, error) {
	if _, err := r.Lookup(n); err != nil {
		return Result{}, err
	}
	text, err := textio.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("day %d: %w", n, err)
	}
	r.logger.Debug("input loaded",
		zap.Int("day", n),
		zap.String("path", path),
		zap.String("size", humanize.Bytes(uint64(len(text)))))

	return r.Solve(n, text)
}

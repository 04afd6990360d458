package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/advent2022/puzzle"
)

var errBadDayArg = errors.New("day must be a number")

func newRunCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run [day...]",
		Short: "Solve the given days, or every registered day",
		Example: `  aoc run
  aoc run 7 8 9 --format plain
  aoc run 7 --input-dir ./puzzles -v`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.load(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			runner := puzzle.NewRunner(puzzle.WithLogger(logger), puzzle.WithParams(cfg.Params()))

			days, err := selectDays(runner, args)
			if err != nil {
				return err
			}

			results := make([]puzzle.Result, 0, len(days))
			var solveErr error
			for _, day := range days {
				path := cfg.InputPath(day)
				logger.Debug("solving", zap.Int("day", day), zap.String("input", path))

				res, err := runner.SolveFile(day, path)
				if err != nil {
					solveErr = err
					break
				}
				results = append(results, res)
			}

			if len(results) > 0 {
				if err := render(cmd.OutOrStdout(), results, cfg.Output.Format, cfg.Output.Color); err != nil {
					return err
				}
			}

			return solveErr
		},
	}
}

// selectDays parses day arguments, defaulting to every registered day.
func selectDays(runner *puzzle.Runner, args []string) ([]int, error) {
	if len(args) == 0 {
		all := runner.Days()
		days := make([]int, len(all))
		for i, d := range all {
			days[i] = d.Number
		}

		return days, nil
	}

	days := make([]int, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", errBadDayArg, arg)
		}
		if _, err := runner.Lookup(n); err != nil {
			return nil, err
		}
		days = append(days, n)
	}

	return days, nil
}

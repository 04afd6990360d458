package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/advent2022/internal/config"
	"github.com/katalvlaran/advent2022/internal/logging"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

type rootOptions struct {
	configPath string
	inputDir   string
	format     string
	verbose    bool
	noColor    bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "aoc",
		Short: "Advent of Code 2022 solvers",
		Long: `aoc solves the Advent of Code 2022 puzzles for days 1 to 9.

Inputs are read from <input-dir>/day<N>.txt unless the configuration
says otherwise. Configuration is read from aoc.yaml in the working
directory, or --config, and AOC_* environment variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to a configuration file")
	flags.StringVarP(&opts.inputDir, "input-dir", "i", "", "directory holding the puzzle inputs")
	flags.StringVarP(&opts.format, "format", "f", "", "output format: table, plain or yaml")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging to stderr")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(newRunCommand(opts))
	rootCmd.AddCommand(newListCommand(opts))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// load reads the configuration, applies flag overrides and builds the logger.
func (o *rootOptions) load(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("input-dir") {
		cfg.Inputs.Dir = o.inputDir
	}
	if flags.Changed("format") {
		cfg.Output.Format = o.format
	}
	if o.noColor {
		cfg.Output.Color = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid flags: %w", err)
	}

	logger, err := logging.New(cfg.Log.Level, o.verbose)
	if err != nil {
		return nil, nil, err
	}

	return cfg, logger, nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "aoc %s\n", version)
		},
	}
}

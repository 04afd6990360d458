// Package config loads the aoc configuration from file and environment.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/advent2022/puzzle"
)

// Sentinel validation errors.
var (
	ErrInvalidFormat    = errors.New("config: output format must be table, plain or yaml")
	ErrInvalidPattern   = errors.New("config: input pattern must contain exactly one %d verb")
	ErrInvalidWindow    = errors.New("config: marker window must be positive")
	ErrInvalidKnots     = errors.New("config: rope must have at least one knot")
	ErrInvalidTopElves  = errors.New("config: top elves must be positive")
	ErrInvalidDiskSpace = errors.New("config: disk sizes must be positive and required free must not exceed capacity")
	ErrInvalidThreshold = errors.New("config: small directory threshold must not be negative")
)

// Output formats.
const (
	FormatTable = "table"
	FormatPlain = "plain"
	FormatYAML  = "yaml"
)

const (
	envPrefix      = "AOC"
	defaultDir     = "inputs"
	defaultPattern = "day%d.txt"
)

// Config holds the whole aoc configuration.
type Config struct {
	Inputs  InputsConfig  `mapstructure:"inputs"`
	Log     LogConfig     `mapstructure:"log"`
	Output  OutputConfig  `mapstructure:"output"`
	Puzzles PuzzlesConfig `mapstructure:"puzzles"`
}

// InputsConfig locates the puzzle input files.
type InputsConfig struct {
	Dir     string `mapstructure:"dir"`
	Pattern string `mapstructure:"pattern"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// OutputConfig controls how answers are rendered.
type OutputConfig struct {
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// PuzzlesConfig holds the tunable puzzle constants.
type PuzzlesConfig struct {
	TopElves int          `mapstructure:"top_elves"`
	FSTree   FSTreeConfig `mapstructure:"fstree"`
	Signal   SignalConfig `mapstructure:"signal"`
	Rope     RopeConfig   `mapstructure:"rope"`
}

// FSTreeConfig holds the Day 7 disk constants.
type FSTreeConfig struct {
	SmallDirThreshold int64 `mapstructure:"small_dir_threshold"`
	DiskCapacity      int64 `mapstructure:"disk_capacity"`
	RequiredFree      int64 `mapstructure:"required_free"`
}

// SignalConfig holds the Day 6 marker windows.
type SignalConfig struct {
	PacketWindow  int `mapstructure:"packet_window"`
	MessageWindow int `mapstructure:"message_window"`
}

// RopeConfig holds the Day 9 rope lengths.
type RopeConfig struct {
	ShortKnots int `mapstructure:"short_knots"`
	LongKnots  int `mapstructure:"long_knots"`
}

// Load reads configuration from configPath, or from aoc.yaml in the
// working directory when configPath is empty, then applies AOC_*
// environment overrides. A missing default file is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("aoc")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	p := puzzle.DefaultParams()

	v.SetDefault("inputs.dir", defaultDir)
	v.SetDefault("inputs.pattern", defaultPattern)

	v.SetDefault("log.level", "info")

	v.SetDefault("output.format", FormatTable)
	v.SetDefault("output.color", true)

	v.SetDefault("puzzles.top_elves", p.TopElves)
	v.SetDefault("puzzles.fstree.small_dir_threshold", p.SmallDirThreshold)
	v.SetDefault("puzzles.fstree.disk_capacity", p.DiskCapacity)
	v.SetDefault("puzzles.fstree.required_free", p.RequiredFree)
	v.SetDefault("puzzles.signal.packet_window", p.PacketWindow)
	v.SetDefault("puzzles.signal.message_window", p.MessageWindow)
	v.SetDefault("puzzles.rope.short_knots", p.ShortKnots)
	v.SetDefault("puzzles.rope.long_knots", p.LongKnots)
}

// Validate checks every field for a usable value.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatTable, FormatPlain, FormatYAML:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.Output.Format)
	}

	if strings.Count(c.Inputs.Pattern, "%d") != 1 || strings.Count(c.Inputs.Pattern, "%") != 1 {
		return fmt.Errorf("%w: %q", ErrInvalidPattern, c.Inputs.Pattern)
	}

	pz := c.Puzzles
	if pz.TopElves <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTopElves, pz.TopElves)
	}

	if pz.Signal.PacketWindow <= 0 || pz.Signal.MessageWindow <= 0 {
		return fmt.Errorf("%w: %d, %d", ErrInvalidWindow, pz.Signal.PacketWindow, pz.Signal.MessageWindow)
	}

	if pz.Rope.ShortKnots <= 0 || pz.Rope.LongKnots <= 0 {
		return fmt.Errorf("%w: %d, %d", ErrInvalidKnots, pz.Rope.ShortKnots, pz.Rope.LongKnots)
	}

	if pz.FSTree.SmallDirThreshold < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidThreshold, pz.FSTree.SmallDirThreshold)
	}

	if pz.FSTree.DiskCapacity <= 0 || pz.FSTree.RequiredFree <= 0 ||
		pz.FSTree.RequiredFree > pz.FSTree.DiskCapacity {
		return fmt.Errorf("%w: capacity %d, required %d",
			ErrInvalidDiskSpace, pz.FSTree.DiskCapacity, pz.FSTree.RequiredFree)
	}

	return nil
}

// Params converts the puzzle section into solver parameters.
func (c *Config) Params() puzzle.Params {
	return puzzle.Params{
		TopElves:          c.Puzzles.TopElves,
		PacketWindow:      c.Puzzles.Signal.PacketWindow,
		MessageWindow:     c.Puzzles.Signal.MessageWindow,
		SmallDirThreshold: c.Puzzles.FSTree.SmallDirThreshold,
		DiskCapacity:      c.Puzzles.FSTree.DiskCapacity,
		RequiredFree:      c.Puzzles.FSTree.RequiredFree,
		ShortKnots:        c.Puzzles.Rope.ShortKnots,
		LongKnots:         c.Puzzles.Rope.LongKnots,
	}
}

// InputPath returns the input file path for day.
func (c *Config) InputPath(day int) string {
	return filepath.Join(c.Inputs.Dir, fmt.Sprintf(c.Inputs.Pattern, day))
}

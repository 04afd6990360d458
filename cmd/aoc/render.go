package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/advent2022/internal/config"
	"github.com/katalvlaran/advent2022/puzzle"
)

const yamlIndent = 2

// render writes results to w in the named format.
func render(w io.Writer, results []puzzle.Result, format string, colored bool) error {
	switch format {
	case config.FormatTable:
		return renderTable(w, results, colored)
	case config.FormatPlain:
		return renderPlain(w, results, colored)
	case config.FormatYAML:
		return renderYAML(w, results)
	default:
		return fmt.Errorf("%w: %q", config.ErrInvalidFormat, format)
	}
}

func renderTable(w io.Writer, results []puzzle.Result, colored bool) error {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	if colored {
		tbl.Style().Color.Header = text.Colors{text.Bold, text.FgCyan}
	}
	tbl.AppendHeader(table.Row{"Day", "Title", "Part 1", "Part 2", "Input", "Time"})
	for _, r := range results {
		tbl.AppendRow(table.Row{
			r.Day,
			r.Title,
			r.Answers.Part1,
			r.Answers.Part2,
			humanize.Bytes(uint64(r.InputBytes)),
			r.Elapsed.String(),
		})
	}
	_, err := fmt.Fprintln(w, tbl.Render())

	return err
}

func renderPlain(w io.Writer, results []puzzle.Result, colored bool) error {
	label := color.New(color.FgCyan, color.Bold)
	answer := color.New(color.FgGreen)
	if colored {
		label.EnableColor()
		answer.EnableColor()
	} else {
		label.DisableColor()
		answer.DisableColor()
	}

	for _, r := range results {
		_, err := fmt.Fprintf(w, "%s %s / %s\n",
			label.Sprintf("Day %d (%s):", r.Day, r.Title),
			answer.Sprint(r.Answers.Part1),
			answer.Sprint(r.Answers.Part2))
		if err != nil {
			return err
		}
	}

	return nil
}

func renderYAML(w io.Writer, results []puzzle.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(yamlIndent)
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}

	return enc.Close()
}

package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/advent2022/puzzle"
)

func newListCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the registered days and their input paths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := opts.load(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			tbl := table.NewWriter()
			tbl.SetStyle(table.StyleLight)
			tbl.AppendHeader(table.Row{"Day", "Title", "Input"})
			for _, d := range puzzle.NewRunner().Days() {
				tbl.AppendRow(table.Row{d.Number, d.Title, cfg.InputPath(d.Number)})
			}
			fmt.Fprintln(cmd.OutOrStdout(), tbl.Render())

			return nil
		},
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"readtrack/internal/tracker"
)

func newReportCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize reading progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := ctx.ensureTracker(cmd)
			if err != nil {
				return err
			}
			return showReport(cmd, tr, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func showReport(cmd *cobra.Command, tr *tracker.Tracker, asJSON bool) error {
	report := tr.Report()
	if asJSON {
		return writeJSON(cmd, report)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, reportBlock(report).render(shouldColorize(out)))
	if len(report.ByGenre) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, genresTable(report.ByGenre))
	}
	return nil
}

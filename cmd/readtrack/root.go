package main

import (
	"errors"

	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var flags globalFlags

	ctx := newCommandContext(&flags)

	rootCmd := &cobra.Command{
		Use:           "readtrack",
		Short:         "Track reading progress across your bookshelf",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.config, "config", "c", "", "Configuration file path")
	pf.StringVar(&flags.shelf, "shelf", "", "Shelf file path (overrides paths.shelf_file)")
	pf.BoolVar(&flags.events, "events", false, "Print the event log after the command")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Mirror log output to stderr")

	rootCmd.AddCommand(newAddCommand(ctx))
	rootCmd.AddCommand(newListCommand(ctx))
	rootCmd.AddCommand(newGenresCommand(ctx))
	rootCmd.AddCommand(newProgressCommand(ctx))
	rootCmd.AddCommand(newTagCommand(ctx))
	rootCmd.AddCommand(newReportCommand(ctx))
	rootCmd.AddCommand(newJournalCommand(ctx))
	rootCmd.AddCommand(newShellCommand(ctx))
	rootCmd.AddCommand(newDoctorCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	finishAfterRun(rootCmd, ctx)
	return rootCmd
}

// finishAfterRun wraps every RunE in the tree so the event log and journal are
// handled even when the command fails. Cobra skips post-run hooks on error.
func finishAfterRun(cmd *cobra.Command, ctx *commandContext) {
	if run := cmd.RunE; run != nil {
		cmd.RunE = func(cmd *cobra.Command, args []string) (err error) {
			defer func() {
				if finishErr := ctx.finish(cmd); finishErr != nil {
					err = errors.Join(err, finishErr)
				}
			}()
			return run(cmd, args)
		}
	}
	for _, child := range cmd.Commands() {
		finishAfterRun(child, ctx)
	}
}

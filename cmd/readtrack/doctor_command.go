package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"readtrack/internal/preflight"
)

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check directories, the shelf file, and the journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			results := preflight.RunAll(ctx.runContext(cmd), cfg)
			block := doctorBlock(results, cfg.Journal.Enabled)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, block.render(shouldColorize(out)))
			if preflight.Failed(results) {
				return errors.New("one or more checks failed")
			}
			return nil
		},
	}
}

package main

import (
	"github.com/spf13/cobra"
)

func newAnalyzeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze",
		Short: "Summarize the current inventory and export the analysis snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := ctx.service(cmd)
			if err != nil {
				return err
			}
			_, err = svc.Analyze(cmd.Context(), cmd.OutOrStdout())
			return err
		},
	}
}

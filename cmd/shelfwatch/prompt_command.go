package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okian/shelfwatch/internal/assistant"
)

func newPromptCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "prompt [question]",
		Short: "Build the guardrailed assistant prompt for an inventory question",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := ctx.service(cmd)
			if err != nil {
				return err
			}
			records, degraded, err := svc.FetchInventory(cmd.Context())
			if err != nil {
				return err
			}

			builder := assistant.NewBuilder(ctx.cfg.LowStockThreshold)
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				prompt, err := builder.Build(args[0], records)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, prompt.System)
				fmt.Fprintf(out, "USER: %s\n", prompt.User)
			} else {
				fmt.Fprintln(out, "Inventory context provided to the model:")
				fmt.Fprintln(out, builder.FormatContext(records))
				fmt.Fprintln(out, "Example queries:")
				for i, q := range assistant.ExampleQueries {
					fmt.Fprintf(out, "  %d. %s\n", i+1, q)
				}
			}

			if degraded {
				fmt.Fprintln(out, "WARNING: prompt built from fallback inventory data")
			}
			return nil
		},
	}
}

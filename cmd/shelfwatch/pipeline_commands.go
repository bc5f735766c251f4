package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okian/shelfwatch/internal/domain/model"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the full pipeline: classify, threshold, reconcile",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := ctx.service(cmd)
			if err != nil {
				return err
			}
			report, err := svc.Run(cmd.Context(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			printRunSummary(cmd, report)
			return nil
		},
	}
}

func newClassifyCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "classify",
		Short: "Run the classifier over labeled scenes and persist predictions",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := ctx.service(cmd)
			if err != nil {
				return err
			}
			scenes, err := svc.Classify(cmd.Context())
			if err != nil {
				return err
			}
			for _, scene := range scenes {
				fmt.Fprintf(cmd.OutOrStdout(), "scene %s: %d predictions\n", scene.SceneID, len(scene.Predictions))
				for _, pred := range scene.Predictions {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s: %.2f\n", pred.Name, pred.Confidence)
				}
			}
			return nil
		},
	}
}

func newThresholdCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "threshold",
		Short: "Partition persisted predictions by confidence threshold",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := ctx.service(cmd)
			if err != nil {
				return err
			}
			part, events, err := svc.Threshold(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "accepted predictions:  %d\n", model.PredictionCount(part.Accepted))
			fmt.Fprintf(cmd.OutOrStdout(), "uncertain predictions: %d\n", model.PredictionCount(part.Uncertain))
			fmt.Fprintf(cmd.OutOrStdout(), "audit events staged:   %d\n", len(events))
			return nil
		},
	}
}

func newReconcileCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile",
		Short: "Reconcile persisted partitions against the inventory record",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := ctx.service(cmd)
			if err != nil {
				return err
			}
			report, err := svc.Reconcile(cmd.Context())
			if err != nil {
				return err
			}
			printRunSummary(cmd, report)
			return nil
		},
	}
}

func printRunSummary(cmd *cobra.Command, report model.Report) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run %s\n", report.RunID)
	fmt.Fprintf(out, "verified:        %d\n", report.Summary.VerifiedCount)
	fmt.Fprintf(out, "discrepancies:   %d\n", report.Summary.DiscrepancyCount)
	fmt.Fprintf(out, "uncertain:       %d\n", report.Summary.UncertainCount)
	fmt.Fprintf(out, "missing from DB: %d\n", report.Summary.MissingFromDBCount)
	if report.Degraded {
		fmt.Fprintln(out, "WARNING: reconciled against fallback inventory data")
	}
}

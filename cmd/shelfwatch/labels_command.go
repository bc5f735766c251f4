package main

import (
	"fmt"
	"math/rand"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/okian/shelfwatch/internal/adapters/artifacts"
	"github.com/okian/shelfwatch/internal/domain/classify"
)

func newGenLabelsCommand(ctx *commandContext) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "gen-labels",
		Short: "Generate demo scene label files for the classifier",
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("count must be at least 1, got %d", count)
			}

			rng := rand.New(rand.NewSource(ctx.cfg.ClassifierSeed)) //nolint:gosec // demo data, not crypto
			for i := 0; i < count; i++ {
				label := classify.Label{
					SceneID:      fmt.Sprintf("shelf_%03d", i+1),
					ItemsPresent: sampleItems(rng),
				}
				path := filepath.Join(ctx.cfg.LabelsDir, label.SceneID+".json")
				if err := artifacts.WriteJSON(path, label); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d items)\n", path, len(label.ItemsPresent))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 3, "Number of scene labels to generate")
	return cmd
}

// sampleItems draws a random nonempty subset of the known catalog.
func sampleItems(rng *rand.Rand) []string {
	catalog := classify.KnownItems
	n := 1 + rng.Intn(len(catalog))
	perm := rng.Perm(len(catalog))

	items := make([]string, 0, n)
	for _, idx := range perm[:n] {
		items = append(items, catalog[idx])
	}
	return items
}

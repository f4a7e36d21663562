package main

import (
	"slices"

	"github.com/spf13/cobra"

	"github.com/zooyer/drawing/shapes"
	"github.com/zooyer/drawing/utils"
)

func (a *app) infoCmd() *cobra.Command {
	var gap int

	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Summarize the shapes in a drawing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.open(args[0])
			if err != nil {
				return err
			}

			stats := utils.Count(doc.Root())
			printf(cmd, "document: %s\n", doc.ID())
			printf(cmd, "shapes:   %d\n", stats.Total)
			printf(cmd, "depth:    %d\n", stats.MaxDepth)

			kinds := make([]shapes.Kind, 0, len(stats.Kinds))
			for kind := range stats.Kinds {
				kinds = append(kinds, kind)
			}
			slices.Sort(kinds)
			for _, kind := range kinds {
				printf(cmd, "  %-10s %d\n", kind, stats.Kinds[kind])
			}

			if box := utils.Bounds(doc.Root()); !box.IsEmpty() {
				printf(cmd, "bounds:   %s - %s (%dx%d)\n", box.Min, box.Max, box.Width(), box.Height())
			} else {
				printf(cmd, "bounds:   empty\n")
			}

			if group, ok := doc.Root().(*shapes.Group); ok {
				for _, pair := range utils.Overlaps(group, gap) {
					printf(cmd, "overlap:  #%d %s and #%d %s\n",
						pair[0], group.At(pair[0]).Kind(), pair[1], group.At(pair[1]).Kind())
				}
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&gap, "gap", 0, "minimum distance for top-level shapes to count as separate")
	return cmd
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/zooyer/drawing/core"
	"github.com/zooyer/drawing/utils"
)

func (a *app) convertCmd() *cobra.Command {
	var normalize bool

	cmd := &cobra.Command{
		Use:   "convert <in> [out]",
		Short: "Read a drawing and write it back in canonical form",
		Long: `convert loads a drawing and saves it again, one record per line.
Legacy multi-record input (--legacy) is wrapped into a single ShapeGroup.
Without an output file the result is written to stdout.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.open(args[0])
			if err != nil {
				return err
			}

			if normalize {
				dx, dy := utils.MoveTo(doc.Root(), core.Point{})
				core.Logger().Debug("normalized", "dx", dx, "dy", dy)
			}

			if len(args) == 2 {
				return doc.SaveFile(args[1])
			}
			return doc.Save(cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&normalize, "normalize", false, "move the drawing so its bounding box starts at (0, 0)")
	return cmd
}

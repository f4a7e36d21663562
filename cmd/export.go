package main

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zooyer/drawing/render/raster"
)

func (a *app) exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <in> [out.png]",
		Short: "Export the drawing as a PNG image",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.open(args[0])
			if err != nil {
				return err
			}

			opts := raster.Options{
				Scale:      a.cfg.Raster.Scale,
				Width:      a.cfg.Raster.Width,
				Margin:     a.cfg.Raster.Margin,
				LineWidth:  a.cfg.Raster.LineWidth,
				Stroke:     a.cfg.Raster.Stroke,
				Background: a.cfg.Raster.Background,
			}

			flags := cmd.Flags()
			if flags.Changed("scale") {
				opts.Scale, _ = flags.GetFloat64("scale")
			}
			if flags.Changed("width") {
				opts.Width, _ = flags.GetInt("width")
			}

			out := strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".png"
			if len(args) == 2 {
				out = args[1]
			}

			if err = raster.ExportFile(doc.Root(), out, opts); err != nil {
				return err
			}

			printf(cmd, "exported %s\n", out)
			return nil
		},
	}
	cmd.Flags().Float64("scale", 0, "pixels per unit (overrides raster.scale)")
	cmd.Flags().Int("width", 0, "image width in pixels (overrides raster.width)")
	return cmd
}

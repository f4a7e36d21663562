package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/zooyer/drawing/render/term"
)

func (a *app) viewCmd() *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "view <file>",
		Short: "Show the drawing in the terminal; arrow keys move it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.open(args[0])
			if err != nil {
				return err
			}

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("creating screen: %w", err)
			}
			if err = screen.Init(); err != nil {
				return fmt.Errorf("initializing screen: %w", err)
			}

			viewer := term.NewViewer(screen, doc.Root(), a.cfg.View.Step)
			err = viewer.Run()
			screen.Fini()
			if err != nil {
				return err
			}

			offset := viewer.Offset()
			if !save || (offset.X == 0 && offset.Y == 0) {
				return nil
			}

			if err = doc.SaveFile(args[0]); err != nil {
				return err
			}
			printf(cmd, "saved %s, moved by %s\n", args[0], offset)
			return nil
		},
	}
	cmd.Flags().BoolVar(&save, "save", false, "write the moved drawing back to the file")
	return cmd
}

package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zooyer/golib/xos"

	"github.com/zooyer/drawing/render/term"
	"github.com/zooyer/drawing/render/text"
)

func (a *app) renderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Print the drawing as text, or as ASCII art with --ascii",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runRender,
	}
	cmd.Flags().Bool("ascii", false, "draw the shapes on a character canvas")
	cmd.Flags().String("log", "", "also append the output to this file")
	return cmd
}

func (a *app) runRender(cmd *cobra.Command, args []string) error {
	doc, err := a.open(args[0])
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if ascii, _ := cmd.Flags().GetBool("ascii"); ascii {
		canvas, err := term.Fit(doc.Root())
		if err != nil {
			return err
		}
		buf.WriteString(canvas.String())
		buf.WriteByte('\n')
	} else {
		r := text.New(&buf)
		doc.Render(r)
		if err = r.Err(); err != nil {
			return err
		}
	}

	if _, err = cmd.OutOrStdout().Write(buf.Bytes()); err != nil {
		return err
	}

	// root 命令没有注册 log 标志
	if flag := cmd.Flags().Lookup("log"); flag != nil && flag.Value.String() != "" {
		if err = xos.AppendFile(flag.Value.String(), buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("appending log: %w", err)
		}
	}

	return nil
}

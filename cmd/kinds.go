package main

import (
	"slices"

	"github.com/spf13/cobra"

	"github.com/zooyer/drawing/serial"
	"github.com/zooyer/drawing/shapes"
)

func (a *app) kindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the registered shape identifiers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ids := shapes.Factory().Keys()
			slices.Sort(ids)

			for _, id := range ids {
				shape, err := shapes.Factory().Create(id)
				if err != nil {
					return err
				}

				serializer := "yes"
				if !serial.Factory().Registered(shape.Kind()) {
					serializer = "no"
				}
				printf(cmd, "%-12s kind=%-10s serializer=%s\n", id, shape.Kind(), serializer)
			}
			return nil
		},
	}
}

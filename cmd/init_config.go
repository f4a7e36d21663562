package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/zooyer/drawing/config"
)

func (a *app) initConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init-config [path]",
		Short: "Write a config file with the default settings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.cfgFile
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				home, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				path = filepath.Join(home, ".config", "drawing", "config.yaml")
			}

			if err := config.WriteDefault(path); err != nil {
				return err
			}
			printf(cmd, "wrote %s\n", path)
			return nil
		},
	}
}

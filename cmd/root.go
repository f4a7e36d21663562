package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ncruces/zenity"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/zooyer/golib/xos"

	"github.com/zooyer/drawing"
	"github.com/zooyer/drawing/config"
	"github.com/zooyer/drawing/core"
)

var version = "dev"

// app 保存一次命令执行的配置，测试中每次新建
type app struct {
	cfgFile string
	cfg     config.Config
	v       *viper.Viper
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "drawing [file]",
		Short: "Load, render and convert shape drawings",
		Long: `drawing reads documents made of shapes (Rectangle, Square, Circle, Line,
Polyline and nested ShapeGroup records) and renders, converts or exports them.
Without a subcommand the given file is rendered as text.`,
		Version:           version,
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.initConfig,
		RunE:              a.runDefault,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "config file (default: ~/.config/drawing/config.yaml)")
	flags.Bool("debug", false, "enable debug logging")
	flags.Bool("legacy", false, "input is a sequence of top-level records without an enclosing ShapeGroup")
	_ = a.v.BindPFlag("debug", flags.Lookup("debug"))
	_ = a.v.BindPFlag("legacy", flags.Lookup("legacy"))

	root.AddCommand(
		a.renderCmd(),
		a.convertCmd(),
		a.exportCmd(),
		a.viewCmd(),
		a.infoCmd(),
		a.kindsCmd(),
		a.watchCmd(),
		a.initConfigCmd(),
	)

	return root
}

func (a *app) initConfig(cmd *cobra.Command, _ []string) error {
	defaults := config.Defaults()
	a.v.SetDefault("debug", defaults.Debug)
	a.v.SetDefault("legacy", defaults.Legacy)
	a.v.SetDefault("raster.scale", defaults.Raster.Scale)
	a.v.SetDefault("raster.width", defaults.Raster.Width)
	a.v.SetDefault("raster.margin", defaults.Raster.Margin)
	a.v.SetDefault("raster.line_width", defaults.Raster.LineWidth)
	a.v.SetDefault("raster.stroke", defaults.Raster.Stroke)
	a.v.SetDefault("raster.background", defaults.Raster.Background)
	a.v.SetDefault("view.step", defaults.View.Step)
	a.v.SetDefault("watch.debounce", defaults.Watch.Debounce)

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		home, _ := os.UserHomeDir()
		a.v.AddConfigPath(filepath.Join(home, ".config", "drawing"))
		a.v.SetConfigName("config")
		a.v.SetConfigType("yaml")
	}

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	if err := a.v.Unmarshal(&a.cfg); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}
	if err := a.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	level := slog.LevelWarn
	if a.cfg.Debug {
		level = slog.LevelDebug
	}
	core.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

	if used := a.v.ConfigFileUsed(); used != "" {
		core.Logger().Debug("config loaded", "path", used)
	}
	return nil
}

// runDefault 没有给出文件时弹出文件选择框，适合拖放或双击启动
func (a *app) runDefault(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		return a.runRender(cmd, args)
	}

	path, err := zenity.SelectFile(
		zenity.Title("Select a drawing"),
		zenity.FileFilters{
			{Name: "Drawings", Patterns: []string{"*.txt", "*.shp"}},
		},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return cmd.Help()
		}
		return fmt.Errorf("selecting file: %w", err)
	}

	defer xos.PauseExit()
	return a.runRender(cmd, []string{path})
}

// open 按配置选择单记录或多记录格式加载文档
func (a *app) open(path string) (*drawing.Document, error) {
	if a.cfg.Legacy {
		return drawing.OpenAll(path)
	}
	return drawing.Open(path)
}

func printf(cmd *cobra.Command, format string, args ...any) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}

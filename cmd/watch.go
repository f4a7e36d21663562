package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/zooyer/drawing/core"
)

func (a *app) watchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Render the drawing as text every time the file changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			w, err := newWatcher(args[0], a.cfg.Watch.Debounce)
			if err != nil {
				return err
			}
			defer func() { _ = w.Close() }()

			render := func() {
				if err := a.runRender(cmd, args); err != nil {
					// 编辑过程中文件可能暂时不完整，继续监视
					cmd.PrintErrf("error: %v\n", err)
				}
			}

			render()
			for {
				select {
				case <-ctx.Done():
					return nil
				case _, ok := <-w.Changes():
					if !ok {
						return nil
					}
					printf(cmd, "---\n")
					render()
				}
			}
		},
	}
	cmd.Flags().Bool("ascii", false, "draw the shapes on a character canvas")
	return cmd
}

// watcher 监视单个文件，合并 debounce 时间内的多次写入
type watcher struct {
	fs       *fsnotify.Watcher
	name     string
	debounce time.Duration
	changes  chan struct{}
	done     chan struct{}
}

func newWatcher(path string, debounce time.Duration) (*watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	// 监视目录，编辑器保存时常用重命名替换原文件
	dir := filepath.Dir(path)
	if err = fs.Add(dir); err != nil {
		_ = fs.Close()
		return nil, fmt.Errorf("watching directory %s: %w", dir, err)
	}

	w := &watcher{
		fs:       fs,
		name:     filepath.Clean(path),
		debounce: debounce,
		changes:  make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
	go w.loop()

	return w, nil
}

func (w *watcher) Changes() <-chan struct{} { return w.changes }

func (w *watcher) Close() error {
	close(w.done)
	return w.fs.Close()
}

func (w *watcher) loop() {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 ||
				filepath.Clean(event.Name) != w.name {
				continue
			}

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			select {
			case w.changes <- struct{}{}:
			default:
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			core.Logger().Warn("watch error", "path", w.name, "err", err)

		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

// 演示在代码中构建图纸：组合、克隆、移动、保存、再加载
package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/zooyer/drawing"
	"github.com/zooyer/drawing/core"
	"github.com/zooyer/drawing/render/text"
	"github.com/zooyer/drawing/shapes"
	"github.com/zooyer/drawing/utils"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	core.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))

	// 1. 一扇窗：外框加十字分隔
	window := shapes.NewGroup(
		shapes.NewRectangle(0, 0, 40, 30),
		shapes.NewLine(20, 0, 20, 30),
		shapes.NewLine(0, 15, 40, 15),
	)

	// 2. 克隆出第二扇窗并右移，原窗不受影响
	second := window.Clone()
	second.Move(50, 0)

	doc := drawing.New()
	doc.Add(window)
	doc.Add(second)
	doc.Add(shapes.NewCircle(45, 45, 5))

	var buf bytes.Buffer
	if err := doc.Save(&buf); err != nil {
		return err
	}
	fmt.Print(buf.String())

	// 3. 重新加载，结果应与保存前一致
	loaded := drawing.New()
	if err := loaded.Load(&buf); err != nil {
		return err
	}

	stats := utils.Count(loaded.Root())
	box := utils.Bounds(loaded.Root())
	fmt.Printf("\n%d shapes, bounds %s - %s\n\n", stats.Total, box.Min, box.Max)

	r := text.New(os.Stdout)
	loaded.Render(r)
	return r.Err()
}

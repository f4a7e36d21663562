// Package raster 使用 gg 把图形导出为 PNG
package raster

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gogpu/gg"
	"github.com/zooyer/golib/xmath"

	"github.com/zooyer/drawing/core"
	"github.com/zooyer/drawing/shapes"
)

const epsilon = 1e-9

var ErrInvalidOptions = errors.New("invalid raster options")

type Options struct {
	Scale      float64 // 每个坐标单位对应的像素，Width > 0 时忽略
	Width      int     // 目标图片宽度(像素)，0 表示按 Scale 计算
	Margin     int     // 四周留白(像素)
	LineWidth  float64
	Stroke     string // 十六进制颜色，如 "#000000"
	Background string
}

func DefaultOptions() Options {
	return Options{
		Scale:      4,
		Margin:     16,
		LineWidth:  1,
		Stroke:     "#000000",
		Background: "#FFFFFF",
	}
}

// Renderer 把图元画到 gg.Context 上，坐标先减去 origin 再乘以 scale
type Renderer struct {
	ctx    *gg.Context
	origin core.Point
	scale  float64
	margin float64
	err    error
}

func (r *Renderer) Rect(x, y, width, height int) {
	r.ctx.DrawRectangle(r.tx(x), r.ty(y), float64(width)*r.scale, float64(height)*r.scale)
	r.stroke()
}

func (r *Renderer) Square(x, y, size int) {
	r.Rect(x, y, size, size)
}

func (r *Renderer) Circle(x, y, radius int) {
	r.ctx.DrawCircle(r.tx(x), r.ty(y), float64(radius)*r.scale)
	r.stroke()
}

func (r *Renderer) Line(x1, y1, x2, y2 int) {
	r.ctx.DrawLine(r.tx(x1), r.ty(y1), r.tx(x2), r.ty(y2))
	r.stroke()
}

// Err 返回第一次描边失败的错误
func (r *Renderer) Err() error { return r.err }

func (r *Renderer) tx(x int) float64 { return float64(x-r.origin.X)*r.scale + r.margin }

func (r *Renderer) ty(y int) float64 { return float64(y-r.origin.Y)*r.scale + r.margin }

func (r *Renderer) stroke() {
	if err := r.ctx.Stroke(); err != nil && r.err == nil {
		r.err = err
	}
}

// scaleFor 根据目标宽度计算缩放，图形宽度为 0 时退回 Scale
func scaleFor(box core.BBox, opts Options) (float64, error) {
	if opts.Width > 0 && !xmath.Equal(float64(box.Width()), 0, epsilon) {
		usable := opts.Width - 2*opts.Margin
		if usable <= 0 {
			return 0, fmt.Errorf("%w: width %d leaves no room inside margin %d", ErrInvalidOptions, opts.Width, opts.Margin)
		}
		return float64(usable) / float64(box.Width()), nil
	}

	if opts.Scale <= 0 || xmath.Equal(opts.Scale, 0, epsilon) {
		return 0, fmt.Errorf("%w: scale must be positive, got %v", ErrInvalidOptions, opts.Scale)
	}
	return opts.Scale, nil
}

// Export 把 shape 画成 PNG 写入 w，图片大小由包围盒、缩放和留白决定
func Export(shape shapes.Shape, w io.Writer, opts Options) error {
	if opts.Margin < 0 {
		return fmt.Errorf("%w: negative margin %d", ErrInvalidOptions, opts.Margin)
	}

	box := shape.Bounds()
	if box.IsEmpty() {
		box = core.BBox{}
	}

	scale, err := scaleFor(box, opts)
	if err != nil {
		return err
	}

	var (
		width  = int(float64(box.Width())*scale) + 2*opts.Margin + 1
		height = int(float64(box.Height())*scale) + 2*opts.Margin + 1
		ctx    = gg.NewContext(width, height)
	)
	defer func() { _ = ctx.Close() }()

	ctx.ClearWithColor(gg.Hex(opts.Background))
	ctx.SetHexColor(opts.Stroke)
	ctx.SetLineWidth(opts.LineWidth)

	r := &Renderer{ctx: ctx, origin: box.Min, scale: scale, margin: float64(opts.Margin)}
	shape.Draw(r)
	if err = r.Err(); err != nil {
		return fmt.Errorf("raster: %w", err)
	}

	core.Logger().Debug("raster export", "width", width, "height", height, "scale", scale)

	if err = ctx.EncodePNG(w); err != nil {
		return fmt.Errorf("%w: %w", core.ErrUnwritableSink, err)
	}

	return nil
}

// ExportFile 导出到文件
func ExportFile(shape shapes.Shape, filename string, opts Options) (err error) {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("%w: %w", core.ErrUnwritableSink, err)
	}

	defer func() {
		if e := file.Close(); e != nil && err == nil {
			err = e
		}
	}()

	return Export(shape, file, opts)
}

package shapes

import "github.com/zooyer/drawing/core"

type Rectangle struct {
	Base
	Width, Height int
}

func NewRectangle(x, y, width, height int) *Rectangle {
	return &Rectangle{Base: Base{Pos: core.Point{X: x, Y: y}}, Width: width, Height: height}
}

func (r *Rectangle) Kind() Kind { return KindRectangle }

func (r *Rectangle) Draw(dst Renderer) {
	dst.Rect(r.Pos.X, r.Pos.Y, r.Width, r.Height)
}

func (r *Rectangle) Clone() Shape {
	c := *r
	return &c
}

func (r *Rectangle) Bounds() core.BBox {
	return normalize(r.Pos, r.Pos.Translate(r.Width, r.Height))
}

// normalize 允许负的宽高
func normalize(a, b core.Point) core.BBox {
	return core.BBox{
		Min: core.Point{X: min(a.X, b.X), Y: min(a.Y, b.Y)},
		Max: core.Point{X: max(a.X, b.X), Y: max(a.Y, b.Y)},
	}
}

package shapes

import "github.com/zooyer/drawing/core"

// Circle 以 Pos 为圆心
type Circle struct {
	Base
	Radius int
}

func NewCircle(x, y, radius int) *Circle {
	return &Circle{Base: Base{Pos: core.Point{X: x, Y: y}}, Radius: radius}
}

func (c *Circle) Kind() Kind { return KindCircle }

func (c *Circle) Draw(dst Renderer) {
	dst.Circle(c.Pos.X, c.Pos.Y, c.Radius)
}

func (c *Circle) Clone() Shape {
	cp := *c
	return &cp
}

func (c *Circle) Bounds() core.BBox {
	return normalize(c.Pos.Translate(-c.Radius, -c.Radius), c.Pos.Translate(c.Radius, c.Radius))
}

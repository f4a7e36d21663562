package shapes

import "github.com/zooyer/drawing/core"

type Line struct {
	Start, End core.Point
}

func NewLine(x1, y1, x2, y2 int) *Line {
	return &Line{Start: core.Point{X: x1, Y: y1}, End: core.Point{X: x2, Y: y2}}
}

func (l *Line) Kind() Kind { return KindLine }

func (l *Line) Move(dx, dy int) {
	l.Start = l.Start.Translate(dx, dy)
	l.End = l.End.Translate(dx, dy)
}

func (l *Line) Draw(dst Renderer) {
	dst.Line(l.Start.X, l.Start.Y, l.End.X, l.End.Y)
}

func (l *Line) Clone() Shape {
	c := *l
	return &c
}

func (l *Line) Bounds() core.BBox {
	return normalize(l.Start, l.End)
}

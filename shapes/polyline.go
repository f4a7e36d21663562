package shapes

import (
	"slices"

	"github.com/zooyer/drawing/core"
)

// Polyline 由顶点依次相连的折线，Closed 时首尾相连
type Polyline struct {
	Vertices []core.Point
	Closed   bool
}

func NewPolyline(closed bool, vertices ...core.Point) *Polyline {
	p := &Polyline{Closed: closed}
	if len(vertices) > 0 {
		p.Vertices = slices.Clone(vertices)
	}
	return p
}

func (p *Polyline) Kind() Kind { return KindPolyline }

func (p *Polyline) Move(dx, dy int) {
	for i := range p.Vertices {
		p.Vertices[i] = p.Vertices[i].Translate(dx, dy)
	}
}

func (p *Polyline) Draw(dst Renderer) {
	for i := 1; i < len(p.Vertices); i++ {
		a, b := p.Vertices[i-1], p.Vertices[i]
		dst.Line(a.X, a.Y, b.X, b.Y)
	}
	if p.Closed && len(p.Vertices) > 2 {
		a, b := p.Vertices[len(p.Vertices)-1], p.Vertices[0]
		dst.Line(a.X, a.Y, b.X, b.Y)
	}
}

// Clone 顶点切片必须复制，否则移动副本会影响原图形
func (p *Polyline) Clone() Shape {
	return &Polyline{Vertices: slices.Clone(p.Vertices), Closed: p.Closed}
}

func (p *Polyline) Bounds() core.BBox {
	box := core.EmptyBBox
	for _, v := range p.Vertices {
		box = box.Union(core.BBox{Min: v, Max: v})
	}
	return box
}

package shapes

import "github.com/zooyer/drawing/core"

type Square struct {
	Base
	Size int
}

func NewSquare(x, y, size int) *Square {
	return &Square{Base: Base{Pos: core.Point{X: x, Y: y}}, Size: size}
}

func (s *Square) Kind() Kind { return KindSquare }

func (s *Square) Draw(dst Renderer) {
	dst.Square(s.Pos.X, s.Pos.Y, s.Size)
}

func (s *Square) Clone() Shape {
	c := *s
	return &c
}

func (s *Square) Bounds() core.BBox {
	return normalize(s.Pos, s.Pos.Translate(s.Size, s.Size))
}

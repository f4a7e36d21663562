package shapes

import (
	"iter"

	"github.com/zooyer/drawing/core"
)

// Group 按顺序持有子图形，子图形的顺序即文档中的顺序
type Group struct {
	shapes []Shape
}

func NewGroup(children ...Shape) *Group {
	g := &Group{}
	for _, child := range children {
		g.Add(child)
	}
	return g
}

// Add 把图形追加到末尾，组从此独占该图形
func (g *Group) Add(s Shape) {
	if s == nil {
		return
	}
	g.shapes = append(g.shapes, s)
}

func (g *Group) Len() int { return len(g.shapes) }

func (g *Group) At(i int) Shape { return g.shapes[i] }

// All 按顺序遍历子图形
func (g *Group) All() iter.Seq2[int, Shape] {
	return func(yield func(int, Shape) bool) {
		for i, s := range g.shapes {
			if !yield(i, s) {
				return
			}
		}
	}
}

func (g *Group) Kind() Kind { return KindGroup }

func (g *Group) Move(dx, dy int) {
	for _, s := range g.shapes {
		s.Move(dx, dy)
	}
}

func (g *Group) Draw(dst Renderer) {
	for _, s := range g.shapes {
		s.Draw(dst)
	}
}

// Clone 递归复制所有子图形
func (g *Group) Clone() Shape {
	c := &Group{shapes: make([]Shape, 0, len(g.shapes))}
	for _, s := range g.shapes {
		c.shapes = append(c.shapes, s.Clone())
	}
	return c
}

// Bounds 空组(包括只含空组的组)返回 core.EmptyBBox
func (g *Group) Bounds() core.BBox {
	box := core.EmptyBBox
	for _, s := range g.shapes {
		box = box.Union(s.Bounds())
	}
	return box
}

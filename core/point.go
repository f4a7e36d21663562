package core

import (
	"fmt"
	"math"
)

// Point 代表二维平面上的一个整数坐标
type Point struct {
	X, Y int
}

func (p Point) Translate(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// String 与文档格式一致的 "x y" 形式不同，这里只用于展示
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// BBox 代表包围盒，Min > Max 时为空盒
type BBox struct {
	Min, Max Point
}

// EmptyBBox 与任意盒子合并都得到该盒子本身
var EmptyBBox = BBox{
	Min: Point{X: math.MaxInt, Y: math.MaxInt},
	Max: Point{X: math.MinInt, Y: math.MinInt},
}

func (b BBox) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y
}

func (b BBox) Width() int {
	if b.IsEmpty() {
		return 0
	}
	return b.Max.X - b.Min.X
}

func (b BBox) Height() int {
	if b.IsEmpty() {
		return 0
	}
	return b.Max.Y - b.Min.Y
}

// Union 返回同时包含 b 和 o 的最小盒子
func (b BBox) Union(o BBox) BBox {
	return BBox{
		Min: Point{X: min(b.Min.X, o.Min.X), Y: min(b.Min.Y, o.Min.Y)},
		Max: Point{X: max(b.Max.X, o.Max.X), Y: max(b.Max.Y, o.Max.Y)},
	}
}

// Contains 判断点是否在盒子内(含边界)
func (b BBox) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

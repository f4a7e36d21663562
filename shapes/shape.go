package shapes

import (
	"fmt"

	"github.com/zooyer/drawing/core"
)

// Kind 标识图形的具体类型，只在运行时用于查找读写器，不写入文档
type Kind uint16

const (
	KindInvalid Kind = iota
	KindRectangle
	KindSquare
	KindCircle
	KindLine
	KindPolyline
	KindGroup
)

// KindUser 及之后的值留给扩展图形
const KindUser Kind = 1 << 8

// 文档中使用的图形标识
const (
	RectangleID = "Rectangle"
	SquareID    = "Square"
	CircleID    = "Circle"
	LineID      = "Line"
	PolylineID  = "Polyline"
	GroupID     = "ShapeGroup"
)

var kindNames = map[Kind]string{
	KindRectangle: RectangleID,
	KindSquare:    SquareID,
	KindCircle:    CircleID,
	KindLine:      LineID,
	KindPolyline:  PolylineID,
	KindGroup:     GroupID,
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint16(k))
}

// Shape 是一切可绘制图形的接口
type Shape interface {
	Kind() Kind
	Move(dx, dy int)
	Draw(r Renderer)
	// Clone 返回与自身相等且不共享任何状态的新图形
	Clone() Shape
	Bounds() core.BBox
}

// Renderer 接收图形绘制出的图元
type Renderer interface {
	Rect(x, y, width, height int)
	Square(x, y, size int)
	Circle(x, y, radius int)
	Line(x1, y1, x2, y2 int)
}

// Base 存放所有图形通用的定位属性
type Base struct {
	Pos core.Point
}

func (b *Base) Position() core.Point { return b.Pos }

func (b *Base) SetPosition(p core.Point) { b.Pos = p }

func (b *Base) Move(dx, dy int) {
	b.Pos = b.Pos.Translate(dx, dy)
}

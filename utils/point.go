package utils

import (
	"github.com/zooyer/drawing/core"
	"github.com/zooyer/drawing/shapes"
)

// MoveTo 平移图形，使包围盒左上角落在 p，返回实际的位移
func MoveTo(shape shapes.Shape, p core.Point) (dx, dy int) {
	box := shape.Bounds()
	if box.IsEmpty() {
		return 0, 0
	}

	dx, dy = p.X-box.Min.X, p.Y-box.Min.Y
	if dx != 0 || dy != 0 {
		shape.Move(dx, dy)
	}
	return
}

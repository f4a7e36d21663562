package utils

import (
	"github.com/zooyer/drawing/core"
	"github.com/zooyer/drawing/shapes"
)

// Bounds 返回多个图形的总包围盒，没有可见图形时返回 core.EmptyBBox
func Bounds(list ...shapes.Shape) core.BBox {
	box := core.EmptyBBox
	for _, s := range list {
		box = box.Union(s.Bounds())
	}
	return box
}

// IsSeparate 判断两个 BBox 是否完全分离，gap 为容差
func IsSeparate(a, b core.BBox, gap int) bool {
	if a.IsEmpty() || b.IsEmpty() {
		return true
	}

	return a.Max.X+gap < b.Min.X || a.Min.X-gap > b.Max.X ||
		a.Max.Y+gap < b.Min.Y || a.Min.Y-gap > b.Max.Y
}

// Overlaps 返回组内包围盒相交的子图形下标对
func Overlaps(group *shapes.Group, gap int) (pairs [][2]int) {
	boxes := make([]core.BBox, 0, group.Len())
	for _, s := range group.All() {
		boxes = append(boxes, s.Bounds())
	}

	for i := 0; i < len(boxes); i++ {
		for j := i + 1; j < len(boxes); j++ {
			if !IsSeparate(boxes[i], boxes[j], gap) {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}

	return
}

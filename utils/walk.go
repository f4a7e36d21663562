package utils

import "github.com/zooyer/drawing/shapes"

// Walk 先序遍历图形树，fn 返回 false 时不再进入该图形的子图形
func Walk(shape shapes.Shape, fn func(depth int, s shapes.Shape) bool) {
	walk(shape, 0, fn)
}

func walk(shape shapes.Shape, depth int, fn func(int, shapes.Shape) bool) {
	if !fn(depth, shape) {
		return
	}

	group, ok := shape.(*shapes.Group)
	if !ok {
		return
	}

	for _, child := range group.All() {
		walk(child, depth+1, fn)
	}
}

// Stats 图形树的统计信息
type Stats struct {
	Kinds    map[shapes.Kind]int
	Total    int
	MaxDepth int
}

func Count(shape shapes.Shape) Stats {
	stats := Stats{Kinds: make(map[shapes.Kind]int)}

	Walk(shape, func(depth int, s shapes.Shape) bool {
		stats.Kinds[s.Kind()]++
		stats.Total++
		stats.MaxDepth = max(stats.MaxDepth, depth)
		return true
	})

	return stats
}

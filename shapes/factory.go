package shapes

import (
	"sync"

	"github.com/zooyer/drawing/registry"
)

// Factory 返回进程内唯一的图形注册表，首次调用时注册全部内置图形。
// 扩展图形在使用文档前调用 Factory().Register 注册自己。
var Factory = sync.OnceValue(func() *registry.Registry[string, Shape] {
	r := registry.New[string, Shape]("shapes")
	RegisterBuiltins(r)
	return r
})

// RegisterBuiltins 把内置图形注册到 r，重复注册会被忽略
func RegisterBuiltins(r *registry.Registry[string, Shape]) {
	r.Register(RectangleID, func() Shape { return &Rectangle{} })
	r.Register(SquareID, func() Shape { return &Square{} })
	r.Register(CircleID, func() Shape { return &Circle{} })
	r.Register(LineID, func() Shape { return &Line{} })
	r.Register(PolylineID, func() Shape { return &Polyline{} })
	r.Register(GroupID, func() Shape { return &Group{} })
}

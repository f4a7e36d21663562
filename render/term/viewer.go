package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/zooyer/drawing/core"
	"github.com/zooyer/drawing/shapes"
)

// Viewer 在终端中显示图形，方向键移动图形，q 或 Esc 退出。
// 移动直接作用在传入的图形上，调用方可以在退出后保存结果。
type Viewer struct {
	screen tcell.Screen
	shape  shapes.Shape
	step   int
	origin core.Point
	offset core.Point
}

// NewViewer screen 必须已经 Init
func NewViewer(screen tcell.Screen, shape shapes.Shape, step int) *Viewer {
	if step <= 0 {
		step = 1
	}

	v := &Viewer{screen: screen, shape: shape, step: step}
	if box := shape.Bounds(); !box.IsEmpty() {
		v.origin = box.Min.Translate(-1, -1)
	}
	return v
}

// Offset 返回累计移动量
func (v *Viewer) Offset() core.Point { return v.offset }

// Draw 重绘整个屏幕，最后一行是状态栏
func (v *Viewer) Draw() {
	width, height := v.screen.Size()

	canvas := NewCanvas(width, height-1)
	canvas.Origin = v.origin
	v.shape.Draw(canvas)

	v.screen.Clear()
	for y := 0; y < height-1; y++ {
		for x := 0; x < width; x++ {
			if r := canvas.Get(x, y); r != ' ' {
				v.screen.SetContent(x, y, r, nil, tcell.StyleDefault)
			}
		}
	}

	status := fmt.Sprintf(" %s  offset %s  arrows: move  q: quit", v.shape.Kind(), v.offset)
	style := tcell.StyleDefault.Reverse(true)
	for x, r := range []rune(status) {
		if x >= width {
			break
		}
		v.screen.SetContent(x, height-1, r, nil, style)
	}

	v.screen.Show()
}

// HandleKey 处理按键，返回 false 表示退出
func (v *Viewer) HandleKey(ev *tcell.EventKey) bool {
	var dx, dy int

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		dx = -v.step
	case tcell.KeyRight:
		dx = v.step
	case tcell.KeyUp:
		dy = -v.step
	case tcell.KeyDown:
		dy = v.step
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return false
		case 'h':
			dx = -v.step
		case 'l':
			dx = v.step
		case 'k':
			dy = -v.step
		case 'j':
			dy = v.step
		}
	}

	if dx != 0 || dy != 0 {
		v.shape.Move(dx, dy)
		v.offset = v.offset.Translate(dx, dy)
		core.Logger().Debug("shape moved", "dx", dx, "dy", dy, "offset", v.offset)
	}

	return true
}

// Run 进入事件循环直到退出或屏幕关闭
func (v *Viewer) Run() error {
	v.Draw()

	for {
		switch ev := v.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			v.screen.Sync()
			v.Draw()
		case *tcell.EventKey:
			if !v.HandleKey(ev) {
				return nil
			}
			v.Draw()
		}
	}
}

// Package text 把图形绘制为逐行的文字描述
package text

import (
	"fmt"
	"io"
)

// Renderer 每个图元输出一行，写入失败后忽略后续图元，错误由 Err 返回
type Renderer struct {
	w   io.Writer
	err error
}

func New(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

func (r *Renderer) Rect(x, y, width, height int) {
	r.printf("Drawing rectangle at (%d, %d) with width: %d and height: %d\n", x, y, width, height)
}

func (r *Renderer) Square(x, y, size int) {
	r.printf("Drawing square at (%d, %d) with size: %d\n", x, y, size)
}

func (r *Renderer) Circle(x, y, radius int) {
	r.printf("Drawing circle at (%d, %d) with radius: %d\n", x, y, radius)
}

func (r *Renderer) Line(x1, y1, x2, y2 int) {
	r.printf("Drawing line from (%d, %d) to (%d, %d)\n", x1, y1, x2, y2)
}

func (r *Renderer) Err() error {
	return r.err
}

func (r *Renderer) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

// Package term 在字符矩阵上绘制图形，并通过 tcell 在终端中显示
package term

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/zooyer/drawing/core"
	"github.com/zooyer/drawing/shapes"
)

// 图元使用的字符
const (
	charCorner     = '+'
	charHorizontal = '-'
	charVertical   = '|'
	charCircle     = 'o'
	charLine       = '*'
)

// Canvas 字符矩阵，(0,0) 在左上角，图形坐标减去 Origin 后落到矩阵上，越界部分被裁剪。
// 非并发安全。
type Canvas struct {
	Origin core.Point
	width  int
	height int
	matrix [][]rune
}

func NewCanvas(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)

	c := &Canvas{width: width, height: height, matrix: make([][]rune, height)}
	for y := range c.matrix {
		c.matrix[y] = make([]rune, width)
	}
	c.Clear()
	return c
}

// MaxFitSize Fit 允许的最大宽度和高度(字符)
const MaxFitSize = 4096

var ErrCanvasTooLarge = errors.New("canvas too large")

// Fit 创建恰好容纳 shape 的画布并绘制它，任一边超过 MaxFitSize 时返回 ErrCanvasTooLarge
func Fit(shape shapes.Shape) (*Canvas, error) {
	box := shape.Bounds()
	if box.IsEmpty() {
		return NewCanvas(0, 0), nil
	}

	// 用无符号差值，避免极端坐标相减溢出
	width, height := uint64(box.Max.X)-uint64(box.Min.X), uint64(box.Max.Y)-uint64(box.Min.Y)
	if width >= MaxFitSize || height >= MaxFitSize {
		return nil, fmt.Errorf("%w: %s - %s needs more than %d columns or rows",
			ErrCanvasTooLarge, box.Min, box.Max, MaxFitSize)
	}

	c := NewCanvas(int(width)+1, int(height)+1)
	c.Origin = box.Min
	shape.Draw(c)
	return c, nil
}

func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Get 按画布坐标取字符，越界返回空格
func (c *Canvas) Get(x, y int) rune {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return ' '
	}
	return c.matrix[y][x]
}

func (c *Canvas) Clear() {
	for y := range c.matrix {
		for x := range c.matrix[y] {
			c.matrix[y][x] = ' '
		}
	}
}

// String 每行去掉行尾空格
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.height * (c.width + 1))

	for y := 0; y < c.height; y++ {
		sb.WriteString(strings.TrimRight(string(c.matrix[y]), " "))
		if y < c.height-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

// Rect 各条边先裁剪到画布范围，绘制开销与图形大小无关
func (c *Canvas) Rect(x, y, width, height int) {
	x0, y0 := c.local(x, y)
	x1, y1 := c.local(addSat(x, width), addSat(y, height))
	x0, x1 = min(x0, x1), max(x0, x1)
	y0, y1 = min(y0, y1), max(y0, y1)

	for i := max(addSat(x0, 1), 0); i < min(x1, c.width); i++ {
		c.setLocal(i, y0, charHorizontal)
		c.setLocal(i, y1, charHorizontal)
	}
	for j := max(addSat(y0, 1), 0); j < min(y1, c.height); j++ {
		c.setLocal(x0, j, charVertical)
		c.setLocal(x1, j, charVertical)
	}
	c.setLocal(x0, y0, charCorner)
	c.setLocal(x1, y0, charCorner)
	c.setLocal(x0, y1, charCorner)
	c.setLocal(x1, y1, charCorner)
}

func (c *Canvas) Square(x, y, size int) {
	c.Rect(x, y, size, size)
}

// Circle 中点画圆法。包围盒与画布不相交时直接跳过；
// 半径远大于画布时只计算落在画布行列范围内的那些点
func (c *Canvas) Circle(cx, cy, radius int) {
	if radius < 0 {
		radius = -radius
	}
	if radius < 0 {
		return
	}

	x0, y0 := c.local(cx, cy)
	if subSat(x0, radius) >= c.width || addSat(x0, radius) < 0 ||
		subSat(y0, radius) >= c.height || addSat(y0, radius) < 0 {
		return
	}

	if radius <= c.width+c.height {
		x, y := radius, 0
		d := 1 - radius
		for x >= y {
			c.octants(x0, y0, x, y)

			y++
			if d < 0 {
				d += 2*y + 1
			} else {
				x--
				d += 2*(y-x) + 1
			}
		}
		return
	}

	// 每个对称点都有一个坐标是 center±y，只有 y 落在下面的区间内才可能可见
	r := float64(radius)
	limit := int(r / math.Sqrt2)
	for _, span := range [][2]int{
		{subSat(0, x0), subSat(c.width-1, x0)},
		{subSat(x0, c.width-1), x0},
		{subSat(0, y0), subSat(c.height-1, y0)},
		{subSat(y0, c.height-1), y0},
	} {
		for y := max(span[0], 0); y <= min(span[1], limit); y++ {
			x := int(math.Round(math.Sqrt(r*r - float64(y)*float64(y))))
			c.octants(x0, y0, x, y)
		}
	}
}

func (c *Canvas) octants(x0, y0, x, y int) {
	for _, p := range [][2]int{
		{x, y}, {y, x}, {-y, x}, {-x, y},
		{-x, -y}, {-y, -x}, {y, -x}, {x, -y},
	} {
		c.setLocal(addSat(x0, p[0]), addSat(y0, p[1]), charCircle)
	}
}

// Line 先用 Cohen-Sutherland 把线段裁剪到画布，再用 Bresenham 画线
func (c *Canvas) Line(x1, y1, x2, y2 int) {
	ax, ay, bx, by, ok := c.clipLine(x1, y1, x2, y2)
	if !ok {
		return
	}

	dx, dy := abs(bx-ax), abs(by-ay)

	xInc, yInc := 1, 1
	if ax > bx {
		xInc = -1
	}
	if ay > by {
		yInc = -1
	}

	x, y := ax, ay
	if dx > dy {
		err := dx / 2
		for x != bx {
			c.setLocal(x, y, charLine)
			err -= dy
			if err < 0 {
				y += yInc
				err += dx
			}
			x += xInc
		}
	} else {
		err := dy / 2
		for y != by {
			c.setLocal(x, y, charLine)
			err -= dx
			if err < 0 {
				x += xInc
				err += dy
			}
			y += yInc
		}
	}

	c.setLocal(bx, by, charLine)
}

const (
	outLeft = 1 << iota
	outRight
	outTop
	outBottom
)

func (c *Canvas) outcode(x, y float64) int {
	code := 0
	if x < 0 {
		code |= outLeft
	} else if x > float64(c.width-1) {
		code |= outRight
	}
	if y < 0 {
		code |= outTop
	} else if y > float64(c.height-1) {
		code |= outBottom
	}
	return code
}

// clipLine 返回裁剪后的画布坐标；完全在画布内的端点保持精确的整数值
func (c *Canvas) clipLine(x1, y1, x2, y2 int) (ax, ay, bx, by int, ok bool) {
	if c.width == 0 || c.height == 0 {
		return
	}

	ax, ay = c.local(x1, y1)
	bx, by = c.local(x2, y2)

	var (
		fx1, fy1 = float64(x1) - float64(c.Origin.X), float64(y1) - float64(c.Origin.Y)
		fx2, fy2 = float64(x2) - float64(c.Origin.X), float64(y2) - float64(c.Origin.Y)
		code1    = c.outcode(fx1, fy1)
		code2    = c.outcode(fx2, fy2)
		right    = float64(c.width - 1)
		bottom   = float64(c.height - 1)
	)
	if code1 == 0 && code2 == 0 {
		return ax, ay, bx, by, true
	}

	// 浮点误差可能让端点反复越界，最多裁剪 8 次
	for i := 0; code1|code2 != 0; i++ {
		if code1&code2 != 0 || i == 8 {
			return 0, 0, 0, 0, false
		}

		code := code1
		if code == 0 {
			code = code2
		}

		var x, y float64
		switch {
		case code&outTop != 0:
			x, y = fx1+(fx2-fx1)*(0-fy1)/(fy2-fy1), 0
		case code&outBottom != 0:
			x, y = fx1+(fx2-fx1)*(bottom-fy1)/(fy2-fy1), bottom
		case code&outLeft != 0:
			x, y = 0, fy1+(fy2-fy1)*(0-fx1)/(fx2-fx1)
		default:
			x, y = right, fy1+(fy2-fy1)*(right-fx1)/(fx2-fx1)
		}

		if code == code1 {
			fx1, fy1 = x, y
			code1 = c.outcode(fx1, fy1)
			ax, ay = clampRound(fx1, right), clampRound(fy1, bottom)
		} else {
			fx2, fy2 = x, y
			code2 = c.outcode(fx2, fy2)
			bx, by = clampRound(fx2, right), clampRound(fy2, bottom)
		}
	}

	return ax, ay, bx, by, true
}

func clampRound(v, upper float64) int {
	return int(min(max(math.Round(v), 0), upper))
}

// local 把图形坐标换算为画布坐标，溢出时取极值
func (c *Canvas) local(x, y int) (int, int) {
	return subSat(x, c.Origin.X), subSat(y, c.Origin.Y)
}

func (c *Canvas) setLocal(x, y int, char rune) {
	if x >= 0 && x < c.width && y >= 0 && y < c.height {
		c.matrix[y][x] = char
	}
}

func addSat(a, b int) int {
	s := a + b
	if b > 0 && s < a {
		return math.MaxInt
	}
	if b < 0 && s > a {
		return math.MinInt
	}
	return s
}

func subSat(a, b int) int {
	d := a - b
	if b > 0 && d > a {
		return math.MinInt
	}
	if b < 0 && d < a {
		return math.MaxInt
	}
	return d
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

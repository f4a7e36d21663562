package core

import (
	"errors"
	"strconv"
	"strings"
	"testing"
)

func TestScanner_Basic(t *testing.T) {
	// 记录可以跨行，空白数量不影响切分
	data := "ShapeGroup 2\n  Rectangle 0 0\t5 5\r\nSquare 1 1 3"
	scanner := NewScanner(strings.NewReader(data))

	expected := []string{"ShapeGroup", "2", "Rectangle", "0", "0", "5", "5", "Square", "1", "1", "3"}

	for i, exp := range expected {
		if !scanner.Next() {
			t.Fatalf("第 %d 步读取失败: %v", i, scanner.Err())
		}
		if scanner.LastToken.Value != exp || scanner.LastToken.Index != i+1 {
			t.Errorf("第 %d 步数据不符: 期望 %q, 得到 %+v", i, exp, scanner.LastToken)
		}
	}

	if scanner.Next() {
		t.Errorf("期望结束, 得到 %+v", scanner.LastToken)
	}
	if scanner.Err() != nil {
		t.Errorf("结尾不应报错: %v", scanner.Err())
	}
}

func TestScanner_Int(t *testing.T) {
	scanner := NewScanner(strings.NewReader("10 -20 abc"))

	if v, err := scanner.Int("x"); err != nil || v != 10 {
		t.Fatalf("x: 得到 %d, %v", v, err)
	}
	if v, err := scanner.Int("y"); err != nil || v != -20 {
		t.Fatalf("y: 得到 %d, %v", v, err)
	}
	if _, err := scanner.Int("width"); !errors.Is(err, ErrMalformedField) {
		t.Fatalf("width: 期望 ErrMalformedField, 得到 %v", err)
	}
	if _, err := scanner.Int("height"); !errors.Is(err, ErrMalformedField) {
		t.Fatalf("height: 期望 ErrMalformedField, 得到 %v", err)
	}
}

func TestScanner_NonCanonicalInt(t *testing.T) {
	for _, value := range []string{"+10", "007", "-0", "00", "1_000", " 1"} {
		token := Token{Value: value, Index: 3}
		if _, err := token.AsInt(); !errors.Is(err, ErrMalformedField) {
			t.Errorf("%q: 期望 ErrMalformedField, 得到 %v", value, err)
		}
	}

	for _, value := range []string{"0", "7", "-7", "9223372036854775807", "-9223372036854775808"} {
		token := Token{Value: value}
		v, err := token.AsInt()
		if err != nil {
			t.Errorf("%q: 不应报错: %v", value, err)
			continue
		}
		if got := strconv.Itoa(v); got != value {
			t.Errorf("%q: 写回得到 %q", value, got)
		}
	}
}

func TestScanner_Depth(t *testing.T) {
	scanner := NewScanner(strings.NewReader(""))

	for i := 0; i < MaxDepth; i++ {
		if err := scanner.Enter(); err != nil {
			t.Fatalf("第 %d 层不应报错: %v", i+1, err)
		}
	}
	if err := scanner.Enter(); !errors.Is(err, ErrMalformedField) {
		t.Fatalf("超过最大层数应返回 ErrMalformedField, 得到 %v", err)
	}
	if scanner.Depth() != MaxDepth {
		t.Fatalf("失败的 Enter 不应改变层数: %d", scanner.Depth())
	}

	scanner.Leave()
	if err := scanner.Enter(); err != nil {
		t.Fatalf("Leave 之后应能再次进入: %v", err)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestScanner_Unreadable(t *testing.T) {
	scanner := NewScanner(failingReader{})

	if scanner.Next() {
		t.Fatal("不应读到记号")
	}
	if !errors.Is(scanner.Err(), ErrUnreadableSource) {
		t.Fatalf("期望 ErrUnreadableSource, 得到 %v", scanner.Err())
	}
	if _, err := scanner.Ident(); !errors.Is(err, ErrUnreadableSource) {
		t.Fatalf("Ident 应返回读取错误, 得到 %v", err)
	}
}

func TestBBox_Union(t *testing.T) {
	box := EmptyBBox
	if !box.IsEmpty() || box.Width() != 0 {
		t.Fatalf("空盒子: %+v", box)
	}

	box = box.Union(BBox{Min: Point{X: 1, Y: 2}, Max: Point{X: 3, Y: 4}})
	box = box.Union(BBox{Min: Point{X: -1, Y: 5}, Max: Point{X: 0, Y: 9}})

	want := BBox{Min: Point{X: -1, Y: 2}, Max: Point{X: 3, Y: 9}}
	if box != want {
		t.Errorf("期望 %+v, 得到 %+v", want, box)
	}
	if box.Width() != 4 || box.Height() != 7 {
		t.Errorf("尺寸不符: %d x %d", box.Width(), box.Height())
	}
	if !box.Contains(Point{X: 0, Y: 2}) || box.Contains(Point{X: 4, Y: 2}) {
		t.Errorf("Contains 判定错误")
	}
}

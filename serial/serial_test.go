package serial

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/zooyer/drawing/core"
	"github.com/zooyer/drawing/registry"
	"github.com/zooyer/drawing/shapes"
)

func write(t *testing.T, shape shapes.Shape) string {
	t.Helper()

	var sb strings.Builder
	require.NoError(t, WriteShape(Factory(), shape, &sb))
	return sb.String()
}

func read(text string) (shapes.Shape, error) {
	return ReadShape(shapes.Factory(), Factory(), core.NewScanner(strings.NewReader(text)))
}

func TestWrite_Format(t *testing.T) {
	tests := []struct {
		name  string
		shape shapes.Shape
		want  string
	}{
		{"rectangle", shapes.NewRectangle(10, 20, 100, 50), "Rectangle 10 20 100 50\n"},
		{"square", shapes.NewSquare(1, 1, 3), "Square 1 1 3\n"},
		{"circle", shapes.NewCircle(-4, 7, 2), "Circle -4 7 2\n"},
		{"line", shapes.NewLine(0, 0, 9, 8), "Line 0 0 9 8\n"},
		{"polyline", shapes.NewPolyline(true, core.Point{X: 1, Y: 2}, core.Point{X: 3, Y: 4}), "Polyline 1 2 1 2 3 4\n"},
		{"empty polyline", shapes.NewPolyline(false), "Polyline 0 0\n"},
		{"empty group", shapes.NewGroup(), "ShapeGroup 0\n"},
		{
			"nested group",
			shapes.NewGroup(shapes.NewRectangle(0, 0, 5, 5), shapes.NewGroup(shapes.NewSquare(1, 1, 3))),
			"ShapeGroup 2\nRectangle 0 0 5 5\nShapeGroup 1\nSquare 1 1 3\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, write(t, tt.shape))

			got, err := read(tt.want)
			require.NoError(t, err)
			assert.Equal(t, tt.shape, got)
		})
	}
}

func TestRead_RectangleScenario(t *testing.T) {
	shape, err := read("Rectangle 10 20 100 50")
	require.NoError(t, err)

	rect, ok := shape.(*shapes.Rectangle)
	require.True(t, ok)
	assert.Equal(t, core.Point{X: 10, Y: 20}, rect.Pos)
	assert.Equal(t, 100, rect.Width)
	assert.Equal(t, 50, rect.Height)
	assert.Equal(t, "Rectangle 10 20 100 50\n", write(t, shape))
}

func TestRead_NestedEmptyGroup(t *testing.T) {
	shape, err := read("ShapeGroup 1 ShapeGroup 0")
	require.NoError(t, err)

	outer := shape.(*shapes.Group)
	require.Equal(t, 1, outer.Len())
	inner, ok := outer.At(0).(*shapes.Group)
	require.True(t, ok)
	assert.Equal(t, 0, inner.Len())
}

func TestRead_ConsumesOnlyOwnTokens(t *testing.T) {
	s := core.NewScanner(strings.NewReader("Square 1 1 3 Circle 0 0 1"))

	first, err := ReadShape(shapes.Factory(), Factory(), s)
	require.NoError(t, err)
	second, err := ReadShape(shapes.Factory(), Factory(), s)
	require.NoError(t, err)

	assert.Equal(t, shapes.NewSquare(1, 1, 3), first)
	assert.Equal(t, shapes.NewCircle(0, 0, 1), second)
	assert.False(t, s.Next())
}

func TestRead_Errors(t *testing.T) {
	tests := []struct {
		name string
		text string
		want error
	}{
		{"unknown identifier", "Triangle 0 0 1", core.ErrUnknownIdentifier},
		{"unknown child identifier", "ShapeGroup 1 Hexagon 1", core.ErrUnknownIdentifier},
		{"non numeric field", "Rectangle 10 x 100 50", core.ErrMalformedField},
		{"missing field", "Square 1 1", core.ErrMalformedField},
		{"too few children", "ShapeGroup 2 Square 1 1 3", core.ErrMalformedField},
		{"negative count", "ShapeGroup -1", core.ErrMalformedField},
		{"bad closed flag", "Polyline 2 0", core.ErrMalformedField},
		{"truncated vertices", "Polyline 0 2 1 1 2", core.ErrMalformedField},
		{"empty input", "", core.ErrMalformedField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shape, err := read(tt.text)
			require.ErrorIs(t, err, tt.want)
			assert.Nil(t, shape)
		})
	}
}

func TestRead_NestingLimit(t *testing.T) {
	deepest := strings.Repeat("ShapeGroup 1 ", core.MaxDepth-1) + "ShapeGroup 0"
	shape, err := read(deepest)
	require.NoError(t, err)
	assert.Equal(t, deepest+" ", strings.ReplaceAll(write(t, shape), "\n", " "))

	_, err = read("ShapeGroup 1 " + deepest)
	require.ErrorIs(t, err, core.ErrMalformedField)
	assert.Contains(t, err.Error(), "nesting deeper than")

	// 超深输入在达到上限时立即返回，不会耗尽栈
	_, err = read(strings.Repeat("ShapeGroup 1 ", 50*core.MaxDepth))
	require.ErrorIs(t, err, core.ErrMalformedField)
}

func TestRead_NonCanonicalInt(t *testing.T) {
	for _, text := range []string{"Square +1 1 3", "Square 1 007 3", "Circle 0 0 -0"} {
		_, err := read(text)
		require.ErrorIs(t, err, core.ErrMalformedField, text)
	}
}

func TestRead_ErrorMentionsPosition(t *testing.T) {
	_, err := read("ShapeGroup 2 Square 1 1 3 Rectangle 0 zero 5 5")
	require.ErrorIs(t, err, core.ErrMalformedField)
	assert.Contains(t, err.Error(), "child 2 of 2")
	assert.Contains(t, err.Error(), `"zero"`)
}

func TestReadWriter_KindMismatch(t *testing.T) {
	err := RectangleReaderWriter{}.Write(shapes.NewSquare(0, 0, 1), &strings.Builder{})
	require.ErrorIs(t, err, core.ErrUnknownTypeKey)

	err = SquareReaderWriter{}.Read(shapes.NewCircle(0, 0, 1), core.NewScanner(strings.NewReader("1 1 1")))
	require.ErrorIs(t, err, core.ErrUnknownTypeKey)
}

// triangle 是只注册了图形、没有注册读写器的扩展图形
type triangle struct{ shapes.Base }

const kindTriangle = shapes.KindUser + 1

func (t *triangle) Kind() shapes.Kind    { return kindTriangle }
func (t *triangle) Draw(shapes.Renderer) {}
func (t *triangle) Clone() shapes.Shape  { c := *t; return &c }
func (t *triangle) Bounds() core.BBox    { return core.BBox{Min: t.Pos, Max: t.Pos} }

type triangleReaderWriter struct{}

func (triangleReaderWriter) Read(shape shapes.Shape, s *core.Scanner) (err error) {
	tri := shape.(*triangle)
	tri.Pos, err = s.Point("coord")
	return
}

func (triangleReaderWriter) Write(shape shapes.Shape, w io.Writer) error {
	tri := shape.(*triangle)
	return writeRecord(w, "Triangle", tri.Pos.X, tri.Pos.Y)
}

func newRegistries() (*ShapeRegistry, *Registry) {
	sf := registry.New[string, shapes.Shape]("shapes")
	shapes.RegisterBuiltins(sf)
	rf := registry.New[shapes.Kind, ReaderWriter]("reader/writers")
	RegisterBuiltins(rf, sf)
	return sf, rf
}

func TestExtension_UnpairedKind(t *testing.T) {
	sf, rf := newRegistries()
	require.True(t, sf.Register("Triangle", func() shapes.Shape { return &triangle{} }))

	_, err := ReadShape(sf, rf, core.NewScanner(strings.NewReader("ShapeGroup 1 Triangle 1 2")))
	require.ErrorIs(t, err, core.ErrUnknownTypeKey)

	err = WriteShape(rf, shapes.NewGroup(&triangle{}), &strings.Builder{})
	require.ErrorIs(t, err, core.ErrUnknownTypeKey)
}

func TestExtension_RegisteredPair(t *testing.T) {
	sf, rf := newRegistries()
	require.True(t, sf.Register("Triangle", func() shapes.Shape { return &triangle{} }))
	require.True(t, rf.Register(kindTriangle, func() ReaderWriter { return triangleReaderWriter{} }))

	text := "ShapeGroup 2\nTriangle 1 2\nShapeGroup 1\nTriangle 3 4\n"
	shape, err := ReadShape(sf, rf, core.NewScanner(strings.NewReader(text)))
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, WriteShape(rf, shape, &sb))
	assert.Equal(t, text, sb.String())

	// 进程级注册表不受影响
	assert.False(t, shapes.Factory().Registered("Triangle"))
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("pipe closed") }

func TestWrite_UnwritableSink(t *testing.T) {
	err := WriteShape(Factory(), shapes.NewGroup(shapes.NewSquare(0, 0, 1)), brokenWriter{})
	require.ErrorIs(t, err, core.ErrUnwritableSink)
}

func genShape(depth int) *rapid.Generator[shapes.Shape] {
	return rapid.Custom(func(t *rapid.T) shapes.Shape {
		n := rapid.IntRange(-1<<20, 1<<20)
		variants := 5
		if depth > 0 {
			variants++
		}

		switch rapid.IntRange(0, variants-1).Draw(t, "variant") {
		case 0:
			return shapes.NewRectangle(n.Draw(t, "x"), n.Draw(t, "y"), n.Draw(t, "w"), n.Draw(t, "h"))
		case 1:
			return shapes.NewSquare(n.Draw(t, "x"), n.Draw(t, "y"), n.Draw(t, "size"))
		case 2:
			return shapes.NewCircle(n.Draw(t, "x"), n.Draw(t, "y"), n.Draw(t, "r"))
		case 3:
			return shapes.NewLine(n.Draw(t, "x1"), n.Draw(t, "y1"), n.Draw(t, "x2"), n.Draw(t, "y2"))
		case 4:
			vs := make([]core.Point, rapid.IntRange(0, 5).Draw(t, "vertices"))
			for i := range vs {
				vs[i] = core.Point{X: n.Draw(t, "vx"), Y: n.Draw(t, "vy")}
			}
			return shapes.NewPolyline(rapid.Bool().Draw(t, "closed"), vs...)
		default:
			return shapes.NewGroup(rapid.SliceOfN(genShape(depth-1), 0, 4).Draw(t, "children")...)
		}
	})
}

func TestRoundTrip_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		original := genShape(3).Draw(t, "shape")

		var sb strings.Builder
		if err := WriteShape(Factory(), original, &sb); err != nil {
			t.Fatalf("write: %v", err)
		}

		got, err := read(sb.String())
		if err != nil {
			t.Fatalf("read %q: %v", sb.String(), err)
		}
		if !assert.ObjectsAreEqual(original, got) {
			t.Fatalf("round trip mismatch for %q", sb.String())
		}
	})
}

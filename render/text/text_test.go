package text

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zooyer/drawing/shapes"
)

func TestRenderer_Group(t *testing.T) {
	var sb strings.Builder
	r := New(&sb)

	shapes.NewGroup(
		shapes.NewRectangle(10, 20, 100, 50),
		shapes.NewGroup(shapes.NewSquare(1, 1, 3), shapes.NewCircle(0, 0, 4)),
		shapes.NewLine(1, 2, 3, 4),
	).Draw(r)

	require.NoError(t, r.Err())
	assert.Equal(t, strings.Join([]string{
		"Drawing rectangle at (10, 20) with width: 100 and height: 50",
		"Drawing square at (1, 1) with size: 3",
		"Drawing circle at (0, 0) with radius: 4",
		"Drawing line from (1, 2) to (3, 4)",
		"",
	}, "\n"), sb.String())
}

type failAfter struct{ n int }

func (f *failAfter) Write(p []byte) (int, error) {
	if f.n == 0 {
		return 0, errors.New("closed")
	}
	f.n--
	return len(p), nil
}

func TestRenderer_StickyError(t *testing.T) {
	w := &failAfter{n: 1}
	r := New(w)

	r.Rect(0, 0, 1, 1)
	r.Square(0, 0, 1)
	r.Circle(0, 0, 1)

	require.EqualError(t, r.Err(), "closed")
	assert.Equal(t, 0, w.n)
}

package serial

import (
	"io"

	"github.com/zooyer/drawing/core"
	"github.com/zooyer/drawing/shapes"
)

// RectangleReaderWriter Rectangle <x> <y> <width> <height>
type RectangleReaderWriter struct{}

func (RectangleReaderWriter) Read(shape shapes.Shape, s *core.Scanner) (err error) {
	rect, ok := shape.(*shapes.Rectangle)
	if !ok {
		return mismatch(shape, shapes.KindRectangle)
	}

	var r shapes.Rectangle
	if r.Pos, err = s.Point("coord"); err != nil {
		return
	}
	if r.Width, err = s.Int("width"); err != nil {
		return
	}
	if r.Height, err = s.Int("height"); err != nil {
		return
	}

	*rect = r
	return nil
}

func (RectangleReaderWriter) Write(shape shapes.Shape, w io.Writer) error {
	rect, ok := shape.(*shapes.Rectangle)
	if !ok {
		return mismatch(shape, shapes.KindRectangle)
	}

	return writeRecord(w, shapes.RectangleID, rect.Pos.X, rect.Pos.Y, rect.Width, rect.Height)
}

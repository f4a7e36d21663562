package serial

import (
	"io"

	"github.com/zooyer/drawing/core"
	"github.com/zooyer/drawing/shapes"
)

// CircleReaderWriter Circle <x> <y> <radius>
type CircleReaderWriter struct{}

func (CircleReaderWriter) Read(shape shapes.Shape, s *core.Scanner) (err error) {
	c, ok := shape.(*shapes.Circle)
	if !ok {
		return mismatch(shape, shapes.KindCircle)
	}

	var v shapes.Circle
	if v.Pos, err = s.Point("center"); err != nil {
		return
	}
	if v.Radius, err = s.Int("radius"); err != nil {
		return
	}

	*c = v
	return nil
}

func (CircleReaderWriter) Write(shape shapes.Shape, w io.Writer) error {
	c, ok := shape.(*shapes.Circle)
	if !ok {
		return mismatch(shape, shapes.KindCircle)
	}

	return writeRecord(w, shapes.CircleID, c.Pos.X, c.Pos.Y, c.Radius)
}

package serial

import (
	"io"

	"github.com/zooyer/drawing/core"
	"github.com/zooyer/drawing/shapes"
)

// SquareReaderWriter Square <x> <y> <size>
type SquareReaderWriter struct{}

func (SquareReaderWriter) Read(shape shapes.Shape, s *core.Scanner) (err error) {
	sqr, ok := shape.(*shapes.Square)
	if !ok {
		return mismatch(shape, shapes.KindSquare)
	}

	var v shapes.Square
	if v.Pos, err = s.Point("coord"); err != nil {
		return
	}
	if v.Size, err = s.Int("size"); err != nil {
		return
	}

	*sqr = v
	return nil
}

func (SquareReaderWriter) Write(shape shapes.Shape, w io.Writer) error {
	sqr, ok := shape.(*shapes.Square)
	if !ok {
		return mismatch(shape, shapes.KindSquare)
	}

	return writeRecord(w, shapes.SquareID, sqr.Pos.X, sqr.Pos.Y, sqr.Size)
}

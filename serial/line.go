package serial

import (
	"io"

	"github.com/zooyer/drawing/core"
	"github.com/zooyer/drawing/shapes"
)

// LineReaderWriter Line <x1> <y1> <x2> <y2>
type LineReaderWriter struct{}

func (LineReaderWriter) Read(shape shapes.Shape, s *core.Scanner) (err error) {
	l, ok := shape.(*shapes.Line)
	if !ok {
		return mismatch(shape, shapes.KindLine)
	}

	var v shapes.Line
	if v.Start, err = s.Point("start"); err != nil {
		return
	}
	if v.End, err = s.Point("end"); err != nil {
		return
	}

	*l = v
	return nil
}

func (LineReaderWriter) Write(shape shapes.Shape, w io.Writer) error {
	l, ok := shape.(*shapes.Line)
	if !ok {
		return mismatch(shape, shapes.KindLine)
	}

	return writeRecord(w, shapes.LineID, l.Start.X, l.Start.Y, l.End.X, l.End.Y)
}

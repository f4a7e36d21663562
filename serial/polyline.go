package serial

import (
	"fmt"
	"io"

	"github.com/zooyer/drawing/core"
	"github.com/zooyer/drawing/shapes"
)

// PolylineReaderWriter Polyline <closed:0|1> <count> (<x> <y>)*
type PolylineReaderWriter struct{}

func (PolylineReaderWriter) Read(shape shapes.Shape, s *core.Scanner) error {
	p, ok := shape.(*shapes.Polyline)
	if !ok {
		return mismatch(shape, shapes.KindPolyline)
	}

	closed, err := s.Int("closed")
	if err != nil {
		return err
	}
	if closed != 0 && closed != 1 {
		return fmt.Errorf("closed: %w: token #%d must be 0 or 1, got %d", core.ErrMalformedField, s.LastToken.Index, closed)
	}

	count, err := s.Int("count")
	if err != nil {
		return err
	}
	if count < 0 {
		return fmt.Errorf("count: %w: token #%d is negative", core.ErrMalformedField, s.LastToken.Index)
	}

	var vertices []core.Point
	for i := 0; i < count; i++ {
		v, err := s.Point(fmt.Sprintf("vertex[%d]", i))
		if err != nil {
			return err
		}
		vertices = append(vertices, v)
	}

	p.Closed = closed == 1
	p.Vertices = vertices
	return nil
}

func (PolylineReaderWriter) Write(shape shapes.Shape, w io.Writer) error {
	p, ok := shape.(*shapes.Polyline)
	if !ok {
		return mismatch(shape, shapes.KindPolyline)
	}

	fields := make([]int, 0, 2+2*len(p.Vertices))
	closed := 0
	if p.Closed {
		closed = 1
	}
	fields = append(fields, closed, len(p.Vertices))
	for _, v := range p.Vertices {
		fields = append(fields, v.X, v.Y)
	}

	return writeRecord(w, shapes.PolylineID, fields...)
}

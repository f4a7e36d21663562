package serial

import (
	"fmt"
	"io"

	"github.com/zooyer/drawing/core"
	"github.com/zooyer/drawing/shapes"
)

// GroupReaderWriter ShapeGroup <count> 后跟 count 条子记录，子记录可以是嵌套的组
type GroupReaderWriter struct {
	Shapes  *ShapeRegistry
	Writers *Registry
}

func (rw *GroupReaderWriter) Read(shape shapes.Shape, s *core.Scanner) error {
	group, ok := shape.(*shapes.Group)
	if !ok {
		return mismatch(shape, shapes.KindGroup)
	}

	count, err := s.Int("count")
	if err != nil {
		return err
	}
	if count < 0 {
		return fmt.Errorf("count: %w: token #%d is negative", core.ErrMalformedField, s.LastToken.Index)
	}

	// 先读到临时组，失败时不修改 shape
	var tmp shapes.Group
	for i := 0; i < count; i++ {
		child, err := ReadShape(rw.Shapes, rw.Writers, s)
		if err != nil {
			return fmt.Errorf("child %d of %d: %w", i+1, count, err)
		}
		tmp.Add(child)
	}

	for _, child := range tmp.All() {
		group.Add(child)
	}
	return nil
}

func (rw *GroupReaderWriter) Write(shape shapes.Shape, w io.Writer) error {
	group, ok := shape.(*shapes.Group)
	if !ok {
		return mismatch(shape, shapes.KindGroup)
	}

	if err := writeRecord(w, shapes.GroupID, group.Len()); err != nil {
		return err
	}

	for i, child := range group.All() {
		if err := WriteShape(rw.Writers, child, w); err != nil {
			return fmt.Errorf("child %d of %d: %w", i+1, group.Len(), err)
		}
	}

	return nil
}

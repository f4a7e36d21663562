// Package serial 负责图形与文本格式之间的读写。
//
// 每种图形对应一个 ReaderWriter，按图形的 Kind 注册；记录格式为
//
//	<标识> <字段>*
//	ShapeGroup <子图形数量> (<标识> <字段>*)*
//
// 记号之间以任意空白分隔，写出时每条记录占一行。
package serial

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/zooyer/drawing/core"
	"github.com/zooyer/drawing/registry"
	"github.com/zooyer/drawing/shapes"
)

// ReaderWriter 读写一种具体图形
type ReaderWriter interface {
	// Read 从标识之后的位置读取字段填充 shape，只消耗属于该图形的记号
	Read(shape shapes.Shape, s *core.Scanner) error
	// Write 写出标识与字段，以换行结束
	Write(shape shapes.Shape, w io.Writer) error
}

type (
	ShapeRegistry = registry.Registry[string, shapes.Shape]
	Registry      = registry.Registry[shapes.Kind, ReaderWriter]
)

// Factory 返回进程内唯一的读写器注册表，首次调用时注册全部内置读写器
var Factory = sync.OnceValue(func() *Registry {
	r := registry.New[shapes.Kind, ReaderWriter]("reader/writers")
	RegisterBuiltins(r, shapes.Factory())
	return r
})

// RegisterBuiltins 把内置读写器注册到 r，组读写器通过 sf 和 r 解析子图形
func RegisterBuiltins(r *Registry, sf *ShapeRegistry) {
	r.Register(shapes.KindRectangle, func() ReaderWriter { return RectangleReaderWriter{} })
	r.Register(shapes.KindSquare, func() ReaderWriter { return SquareReaderWriter{} })
	r.Register(shapes.KindCircle, func() ReaderWriter { return CircleReaderWriter{} })
	r.Register(shapes.KindLine, func() ReaderWriter { return LineReaderWriter{} })
	r.Register(shapes.KindPolyline, func() ReaderWriter { return PolylineReaderWriter{} })
	r.Register(shapes.KindGroup, func() ReaderWriter {
		return &GroupReaderWriter{Shapes: sf, Writers: r}
	})
}

// ReadShape 读取一条完整记录：标识 -> 图形 -> 读写器 -> 字段。
// 嵌套层数由 s 记录，超过 core.MaxDepth 时返回 core.ErrMalformedField
func ReadShape(sf *ShapeRegistry, rf *Registry, s *core.Scanner) (shapes.Shape, error) {
	if err := s.Enter(); err != nil {
		return nil, err
	}
	defer s.Leave()

	id, err := s.Ident()
	if err != nil {
		return nil, err
	}
	index := s.LastToken.Index

	core.Logger().Debug("loading shape", "id", id, "token", index)

	shape, err := sf.Create(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q at token #%d: %w", core.ErrUnknownIdentifier, id, index, err)
	}

	rw, err := readerWriterFor(rf, shape)
	if err != nil {
		return nil, err
	}

	if err = rw.Read(shape, s); err != nil {
		return nil, fmt.Errorf("%s at token #%d: %w", id, index, err)
	}

	return shape, nil
}

// WriteShape 按图形的 Kind 找到读写器并写出完整记录
func WriteShape(rf *Registry, shape shapes.Shape, w io.Writer) error {
	rw, err := readerWriterFor(rf, shape)
	if err != nil {
		return err
	}

	return rw.Write(shape, w)
}

func readerWriterFor(rf *Registry, shape shapes.Shape) (ReaderWriter, error) {
	rw, err := rf.Create(shape.Kind())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", core.ErrUnknownTypeKey, shape.Kind(), err)
	}

	return rw, nil
}

// writeRecord 写出 "标识 字段..." 一行
func writeRecord(w io.Writer, id string, fields ...int) error {
	var sb strings.Builder
	sb.WriteString(id)
	for _, f := range fields {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(f))
	}
	sb.WriteByte('\n')

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("%w: %w", core.ErrUnwritableSink, err)
	}

	return nil
}

func mismatch(shape shapes.Shape, want shapes.Kind) error {
	return fmt.Errorf("%w: %s reader/writer got %s", core.ErrUnknownTypeKey, want, shape.Kind())
}

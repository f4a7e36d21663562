// Package drawing 读取、保存和绘制由图形组成的文档。
//
// 文档格式是以空白分隔的记号序列，顶层恰好一条记录：
//
//	ShapeGroup 2
//	Rectangle 0 0 5 5
//	Square 1 1 3
//
// 图形由 shapes.Factory 按标识创建，字段由 serial.Factory 中按图形类型
// 注册的读写器填充。
package drawing

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/zooyer/drawing/core"
	"github.com/zooyer/drawing/serial"
	"github.com/zooyer/drawing/shapes"
)

// Document 独占一棵图形树，新建的文档以空组为根
type Document struct {
	id      string
	root    shapes.Shape
	shapes  *serial.ShapeRegistry
	writers *serial.Registry
}

type Option func(*Document)

// WithShapeFactory 使用指定的图形注册表代替进程级注册表
func WithShapeFactory(r *serial.ShapeRegistry) Option {
	return func(d *Document) { d.shapes = r }
}

// WithReaderWriterFactory 使用指定的读写器注册表代替进程级注册表
func WithReaderWriterFactory(r *serial.Registry) Option {
	return func(d *Document) { d.writers = r }
}

func New(opts ...Option) *Document {
	d := &Document{
		id:   uuid.New().String(),
		root: shapes.NewGroup(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.shapes == nil {
		d.shapes = shapes.Factory()
	}
	if d.writers == nil {
		d.writers = serial.Factory()
	}

	return d
}

// ID 用于在日志中区分文档
func (d *Document) ID() string { return d.id }

// Root 返回根图形，仍归文档所有
func (d *Document) Root() shapes.Shape { return d.root }

// Add 把图形追加到根组；根是单个图形时先把它提升为组
func (d *Document) Add(shape shapes.Shape) {
	group, ok := d.root.(*shapes.Group)
	if !ok {
		group = shapes.NewGroup(d.root)
		d.root = group
	}
	group.Add(shape)
}

// Render 绘制整棵图形树
func (d *Document) Render(r shapes.Renderer) {
	d.root.Draw(r)
}

// Load 读取一条顶层记录并替换根；失败时保留原来的根
func (d *Document) Load(reader io.Reader) error {
	scanner := core.NewScanner(reader)

	root, err := serial.ReadShape(d.shapes, d.writers, scanner)
	if err != nil {
		core.Logger().Warn("load failed", "doc", d.id, "err", err)
		return fmt.Errorf("load: %w", err)
	}

	// 数量已满足但仍有剩余记号，说明声明的数量与内容不符
	if scanner.Next() {
		err = fmt.Errorf("load: %w: unexpected token #%d %q after %s record",
			core.ErrMalformedField, scanner.LastToken.Index, scanner.LastToken.Value, root.Kind())
		core.Logger().Warn("load failed", "doc", d.id, "err", err)
		return err
	}
	if err = scanner.Err(); err != nil {
		return fmt.Errorf("load: %w", err)
	}

	d.root = root
	core.Logger().Info("document loaded", "doc", d.id, "root", root.Kind())
	return nil
}

// LoadAll 读取没有外层组的多条顶层记录，全部放入新的根组
func (d *Document) LoadAll(reader io.Reader) error {
	var (
		scanner = core.NewScanner(reader)
		group   = shapes.NewGroup()
	)

	for scanner.Peek() {
		shape, err := serial.ReadShape(d.shapes, d.writers, scanner)
		if err != nil {
			core.Logger().Warn("load failed", "doc", d.id, "err", err)
			return fmt.Errorf("load: %w", err)
		}
		group.Add(shape)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("load: %w", err)
	}

	d.root = group
	core.Logger().Info("document loaded", "doc", d.id, "root", group.Kind(), "records", group.Len())
	return nil
}

// Save 先完整序列化到缓冲区，再一次写入；序列化失败时不写任何内容
func (d *Document) Save(w io.Writer) error {
	var buf bytes.Buffer
	if err := serial.WriteShape(d.writers, d.root, &buf); err != nil {
		return fmt.Errorf("save: %w", err)
	}

	n, err := buf.WriteTo(w)
	if err != nil {
		return fmt.Errorf("save: %w: %w", core.ErrUnwritableSink, err)
	}

	core.Logger().Info("document saved", "doc", d.id, "bytes", n)
	return nil
}

// Open 从文件加载文档，文件内容是一条顶层记录
func Open(filename string, opts ...Option) (*Document, error) {
	return open(filename, (*Document).Load, opts)
}

// OpenAll 从文件加载没有外层组的多条顶层记录，见 LoadAll
func OpenAll(filename string, opts ...Option) (*Document, error) {
	return open(filename, (*Document).LoadAll, opts)
}

func open(filename string, load func(*Document, io.Reader) error, opts []Option) (doc *Document, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrUnreadableSource, err)
	}

	defer func() {
		if e := file.Close(); e != nil && err == nil {
			doc, err = nil, fmt.Errorf("%w: %w", core.ErrUnreadableSource, e)
		}
	}()

	doc = New(opts...)
	if err = load(doc, file); err != nil {
		return nil, err
	}

	return doc, nil
}

// SaveFile 保存到文件，序列化失败时不会创建或截断文件
func (d *Document) SaveFile(filename string) (err error) {
	var buf bytes.Buffer
	if err = d.Save(&buf); err != nil {
		return err
	}

	if err = os.WriteFile(filename, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("save: %w: %w", core.ErrUnwritableSink, err)
	}

	return nil
}

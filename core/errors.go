package core

import "errors"

// 加载/保存过程中可能出现的错误，调用方使用 errors.Is 判断
var (
	// ErrUnknownIdentifier 文档中出现了未注册的图形标识
	ErrUnknownIdentifier = errors.New("unknown shape identifier")
	// ErrUnknownTypeKey 图形类型没有配对的读写器，属于编程错误
	ErrUnknownTypeKey = errors.New("no reader/writer for shape kind")
	// ErrMalformedField 字段缺失或无法解析
	ErrMalformedField = errors.New("malformed field")
	// ErrUnreadableSource 输入流不可读
	ErrUnreadableSource = errors.New("unreadable source")
	// ErrUnwritableSink 输出流不可写
	ErrUnwritableSink = errors.New("unwritable sink")
)

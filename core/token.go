package core

import (
	"fmt"
	"strconv"
)

// Token 代表文档中以空白分隔的一个记号
type Token struct {
	Value string
	Index int // 记号序号，从 1 开始，用于错误定位
}

// AsInt 将值转换为 int，只接受 Save 会写出的规范形式，"+1"、"007"、"-0" 都视为错误
func (t Token) AsInt() (int, error) {
	i, err := strconv.Atoi(t.Value)
	if err != nil {
		return 0, fmt.Errorf("%w: token #%d %q is not an integer", ErrMalformedField, t.Index, t.Value)
	}
	if strconv.Itoa(i) != t.Value {
		return 0, fmt.Errorf("%w: token #%d %q is not a canonical integer", ErrMalformedField, t.Index, t.Value)
	}

	return i, nil
}

// AsString 返回原始记号
func (t Token) AsString() string {
	return t.Value
}

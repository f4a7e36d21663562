package core

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// Scanner 按空白切分输入流，一个记录可以跨越多行
type Scanner struct {
	reader    *bufio.Reader
	LastToken Token
	count     int
	peeked    *Token
	depth     int
	err       error
}

// MaxDepth 记录允许的最大嵌套层数
const MaxDepth = 1000

func NewScanner(r io.Reader) *Scanner {
	return &Scanner{
		reader: bufio.NewReader(r),
	}
}

// Next 读取下一个记号，到达结尾或出错时返回 false
func (s *Scanner) Next() bool {
	if s.peeked != nil {
		s.LastToken, s.peeked = *s.peeked, nil
		return true
	}

	token, ok := s.read()
	if !ok {
		return false
	}

	s.LastToken = token
	return true
}

// Peek 判断是否还有记号，不消耗它
func (s *Scanner) Peek() bool {
	if s.peeked != nil {
		return true
	}

	token, ok := s.read()
	if !ok {
		return false
	}

	s.peeked = &token
	return true
}

func (s *Scanner) read() (Token, bool) {
	if s.err != nil {
		return Token{}, false
	}

	var sb strings.Builder
	for {
		r, _, err := s.reader.ReadRune()
		if err != nil {
			if err != io.EOF {
				s.err = fmt.Errorf("%w: %w", ErrUnreadableSource, err)
				return Token{}, false
			}
			break
		}

		if unicode.IsSpace(r) {
			// 跳过前导空白
			if sb.Len() == 0 {
				continue
			}
			break
		}

		sb.WriteRune(r)
	}

	if sb.Len() == 0 {
		return Token{}, false
	}

	s.count++
	return Token{Value: sb.String(), Index: s.count}, true
}

// Ident 读取下一个标识记号
func (s *Scanner) Ident() (string, error) {
	if !s.Next() {
		return "", s.missing("identifier")
	}

	return s.LastToken.AsString(), nil
}

// Int 读取下一个记号并解析为整数，field 用于错误信息
func (s *Scanner) Int(field string) (int, error) {
	if !s.Next() {
		return 0, s.missing(field)
	}

	i, err := s.LastToken.AsInt()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}

	return i, nil
}

// Point 按 "x y" 顺序读取一个坐标
func (s *Scanner) Point(field string) (p Point, err error) {
	if p.X, err = s.Int(field + ".x"); err != nil {
		return
	}
	if p.Y, err = s.Int(field + ".y"); err != nil {
		return
	}

	return
}

// Enter 进入一层嵌套记录，超过 MaxDepth 时返回错误，成功后必须调用 Leave
func (s *Scanner) Enter() error {
	if s.depth >= MaxDepth {
		return fmt.Errorf("%w: nesting deeper than %d levels at token #%d", ErrMalformedField, MaxDepth, s.count)
	}

	s.depth++
	return nil
}

func (s *Scanner) Leave() {
	s.depth--
}

// Depth 返回当前嵌套层数
func (s *Scanner) Depth() int {
	return s.depth
}

func (s *Scanner) missing(field string) error {
	if s.err != nil {
		return s.err
	}

	return fmt.Errorf("%w: missing %s after token #%d", ErrMalformedField, field, s.count)
}

func (s *Scanner) Err() error {
	return s.err
}

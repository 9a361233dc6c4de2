package message

import (
	"strconv"
	"strings"

	"github.com/aptpod/katcp-go/errors"
)

// Parseは、textの先頭から1つのメッセージをパースします。
//
// パースは最初の改行文字（CR または LF）で止まり、改行を1つ（CRLF, LF, CR のいずれか）消費して、
// 残りの入力をremainingとして返却します。ストリームから複数のメッセージを読む場合は、
// remainingを次の入力としてParseを繰り返します。
//
// 失敗した場合は errors.ParseError を返却します。不正な入力に対してpanicすることはありません。
func Parse(text string) (msg *Message, remaining string, err error) {
	s := scanner{src: text}
	kind, err := s.marker()
	if err != nil {
		return nil, "", err
	}
	name, err := s.name()
	if err != nil {
		return nil, "", err
	}
	id, err := s.identifier()
	if err != nil {
		return nil, "", err
	}
	arguments, err := s.arguments()
	if err != nil {
		return nil, "", err
	}
	s.terminator()
	return NewUnchecked(kind, name, id, arguments...), s.src[s.pos:], nil
}

// ParseAllは、複数行のテキストに含まれるすべてのメッセージをパースします。
//
// 空行は読み飛ばします。エラーの位置はtext全体でのバイト位置です。
func ParseAll(text string) ([]*Message, error) {
	var res []*Message
	offset := 0
	for offset < len(text) {
		if c := text[offset]; c == '\n' || c == '\r' {
			offset++
			continue
		}
		m, rest, err := Parse(text[offset:])
		if err != nil {
			if pe, ok := errors.AsParseError(err); ok {
				pe.Pos += offset
				return nil, *pe
			}
			return nil, err
		}
		res = append(res, m)
		offset = len(text) - len(rest)
	}
	return res, nil
}

// MustParseは、textの先頭から1つのメッセージをパースします。
//
// パースに失敗した場合はpanicします。
func MustParse(text string) *Message {
	m, _, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return m
}

type scanner struct {
	src string
	pos int
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.src)
}

func (s *scanner) peek() byte {
	return s.src[s.pos]
}

func (s *scanner) fail(kind errors.ParseErrorKind, pos int, expected string) error {
	return errors.ParseError{Kind: kind, Pos: pos, Expected: expected}
}

func (s *scanner) marker() (Kind, error) {
	if s.eof() {
		return 0, s.fail(errors.ParseErrorUnexpectedEnd, s.pos, "message marker")
	}
	kind, ok := KindFromMarker(s.peek())
	if !ok {
		return 0, s.fail(errors.ParseErrorInvalidMarker, s.pos, "one of '?', '!', '#'")
	}
	s.pos++
	return kind, nil
}

func (s *scanner) name() (string, error) {
	if s.eof() {
		return "", s.fail(errors.ParseErrorUnexpectedEnd, s.pos, "message name")
	}
	start := s.pos
	if !isAlpha(s.peek()) {
		return "", s.fail(errors.ParseErrorInvalidName, s.pos, "letter")
	}
	s.pos++
	for !s.eof() && isNameChar(s.peek()) {
		s.pos++
	}
	if !s.eof() {
		switch c := s.peek(); {
		case c == '[' || isSpace(c) || isEOL(c):
		default:
			return "", s.fail(errors.ParseErrorInvalidName, s.pos, "letter, digit or '-'")
		}
	}
	return s.src[start:s.pos], nil
}

func (s *scanner) identifier() (*uint32, error) {
	if s.eof() || s.peek() != '[' {
		return nil, nil
	}
	open := s.pos
	s.pos++
	start := s.pos
	for !s.eof() && isDigit(s.peek()) {
		s.pos++
	}
	if s.eof() {
		return nil, s.fail(errors.ParseErrorUnterminatedIdentifier, open, "']'")
	}
	if s.peek() != ']' {
		return nil, s.fail(errors.ParseErrorInvalidIdentifier, s.pos, "digit or ']'")
	}
	digits := s.src[start:s.pos]
	if digits == "" {
		return nil, s.fail(errors.ParseErrorInvalidIdentifier, s.pos, "digit")
	}
	if len(digits) > 1 && digits[0] == '0' {
		return nil, s.fail(errors.ParseErrorInvalidIdentifier, start, "identifier without leading zeros")
	}
	v, err := strconv.ParseUint(digits, 10, 32)
	if err != nil || uint32(v) > MaxID {
		return nil, s.fail(errors.ParseErrorInvalidIdentifier, start, "identifier no greater than "+strconv.FormatUint(uint64(MaxID), 10))
	}
	s.pos++
	if !s.eof() && !isSpace(s.peek()) && !isEOL(s.peek()) {
		return nil, s.fail(errors.ParseErrorInvalidIdentifier, s.pos, "whitespace or end of line")
	}
	id := uint32(v)
	return &id, nil
}

func (s *scanner) arguments() ([]string, error) {
	var res []string
	for {
		if !s.whitespace() {
			return res, nil
		}
		if s.eof() || isEOL(s.peek()) {
			return res, nil
		}
		arg, err := s.argument()
		if err != nil {
			return nil, err
		}
		res = append(res, arg)
	}
}

// argumentは、区切り文字または行末までの1つの引数をデコードします。
func (s *scanner) argument() (string, error) {
	var b strings.Builder
	for !s.eof() {
		c := s.peek()
		switch {
		case isSpace(c) || isEOL(c):
			return b.String(), nil
		case c == 0:
			return "", s.fail(errors.ParseErrorInvalidArgument, s.pos, `escaped NUL '\0'`)
		case c == '\\':
			if s.pos+1 >= len(s.src) {
				return "", s.fail(errors.ParseErrorInvalidEscape, s.pos, "escape code after '\\'")
			}
			decoded, ok := unescapeTable[s.src[s.pos+1]]
			if !ok {
				return "", s.fail(errors.ParseErrorInvalidEscape, s.pos, `one of '\\', '_', '0', 'n', 'r', 'e', 't', '@' after '\'`)
			}
			b.WriteString(decoded)
			s.pos += 2
		default:
			b.WriteByte(c)
			s.pos++
		}
	}
	return b.String(), nil
}

// argumentTokenは、入力全体を1つの引数としてデコードします。
func (s *scanner) argumentToken() (string, error) {
	if s.eof() {
		return "", s.fail(errors.ParseErrorUnexpectedEnd, s.pos, "argument")
	}
	arg, err := s.argument()
	if err != nil {
		return "", err
	}
	if !s.eof() {
		return "", s.fail(errors.ParseErrorInvalidArgument, s.pos, "end of argument")
	}
	return arg, nil
}

// whitespaceは、連続する空白を読み飛ばし、1つ以上読み飛ばした場合にtrueを返却します。
func (s *scanner) whitespace() bool {
	start := s.pos
	for !s.eof() && isSpace(s.peek()) {
		s.pos++
	}
	return s.pos > start
}

func (s *scanner) terminator() {
	if s.eof() {
		return
	}
	switch s.peek() {
	case '\r':
		s.pos++
		if !s.eof() && s.peek() == '\n' {
			s.pos++
		}
	case '\n':
		s.pos++
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

func isEOL(c byte) bool {
	return c == '\n' || c == '\r'
}

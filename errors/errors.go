package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrKATCPはkatcpライブラリで定義されている基底エラーです。
	ErrKATCP = errors.New("katcp")
	// ErrMalformedMessageは、メッセージのパースに失敗した時のエラーです。
	ErrMalformedMessage = fmt.Errorf("malformed message: %w", ErrKATCP)
	// ErrMessageTooLargeは、メッセージが大きすぎる場合のエラーです。
	ErrMessageTooLarge = fmt.Errorf("message is too large: %w", ErrMalformedMessage)
	// ErrInvalidMessageは、メッセージの生成時に検証に失敗した時のエラーです。
	ErrInvalidMessage = fmt.Errorf("invalid message: %w", ErrKATCP)
	// ErrTypeMismatchは、引数を型付きの値へ変換できなかった時のエラーです。
	ErrTypeMismatch = fmt.Errorf("type mismatch: %w", ErrKATCP)
	// ErrMissingArgumentは、読み出そうとした位置に引数が存在しない時のエラーです。
	ErrMissingArgument = fmt.Errorf("missing argument: %w", ErrKATCP)
	// ErrUnexpectedMessageは、メッセージの種別と名前が変換先の型に対応しない時のエラーです。
	ErrUnexpectedMessage = fmt.Errorf("unexpected message: %w", ErrKATCP)
)

// ParseErrorKindは、パースエラーの種類です。
type ParseErrorKind uint8

const (
	_ ParseErrorKind = iota

	ParseErrorUnexpectedEnd          // 入力が途中で終了したことを表します。
	ParseErrorInvalidMarker          // 先頭の種別文字が `?` `!` `#` のいずれでもないことを表します。
	ParseErrorInvalidName            // メッセージ名が不正であることを表します。
	ParseErrorInvalidIdentifier      // メッセージIDが不正であることを表します。
	ParseErrorInvalidEscape          // 不正なエスケープシーケンスを表します。
	ParseErrorUnterminatedIdentifier // メッセージIDの `]` が見つからないことを表します。
	ParseErrorInvalidArgument        // 引数にエスケープされていない制御文字が含まれることを表します。
)

func (k ParseErrorKind) String() string {
	switch k {
	case ParseErrorUnexpectedEnd:
		return "unexpected end"
	case ParseErrorInvalidMarker:
		return "invalid marker"
	case ParseErrorInvalidName:
		return "invalid name"
	case ParseErrorInvalidIdentifier:
		return "invalid identifier"
	case ParseErrorInvalidEscape:
		return "invalid escape"
	case ParseErrorUnterminatedIdentifier:
		return "unterminated identifier"
	case ParseErrorInvalidArgument:
		return "invalid argument"
	default:
		return fmt.Sprint(uint8(k))
	}
}

// ParseErrorは、テキストからメッセージへのパースに失敗した場合のエラーです。
type ParseError struct {
	Kind     ParseErrorKind // 種類
	Pos      int            // 入力中のバイト位置
	Expected string         // 期待していた入力の説明
}

func (e ParseError) Error() string {
	if e.Expected == "" {
		return fmt.Sprintf("katcp: %v at %d", e.Kind, e.Pos)
	}
	return fmt.Sprintf("katcp: %v at %d: expected %s", e.Kind, e.Pos, e.Expected)
}

// Isは、同じ種類のParseError、またはErrMalformedMessageとその基底エラーに一致します。
func (e ParseError) Is(err error) bool {
	if t, ok := err.(ParseError); ok {
		return t.Kind == e.Kind
	}
	return Is(ErrMalformedMessage, err)
}

// AsParseErrorは、errをParseErrorとして取り出します。
func AsParseError(err error) (*ParseError, bool) {
	var res ParseError
	ok := As(err, &res)
	return &res, ok
}

// ValidationErrorKindは、検証エラーの種類です。
type ValidationErrorKind uint8

const (
	_ ValidationErrorKind = iota

	ValidationErrorEmptyName            // メッセージ名が空であることを表します。
	ValidationErrorInvalidNameCharacter // メッセージ名に使用できない文字が含まれることを表します。
	ValidationErrorIdentifierOutOfRange // メッセージIDが範囲外であることを表します。
	ValidationErrorInvalidKind          // メッセージ種別が不正であることを表します。
)

func (k ValidationErrorKind) String() string {
	switch k {
	case ValidationErrorEmptyName:
		return "empty name"
	case ValidationErrorInvalidNameCharacter:
		return "invalid name character"
	case ValidationErrorIdentifierOutOfRange:
		return "identifier out of range"
	case ValidationErrorInvalidKind:
		return "invalid kind"
	default:
		return fmt.Sprint(uint8(k))
	}
}

// ValidationErrorは、メッセージの生成時に不変条件を満たさなかった場合のエラーです。
//
// 最初に違反した条件のみを表します。
type ValidationError struct {
	Kind  ValidationErrorKind // 種類
	Pos   int                 // 名前中の違反したバイト位置
	Value string              // 違反した値
}

func (e ValidationError) Error() string {
	switch e.Kind {
	case ValidationErrorInvalidNameCharacter:
		return fmt.Sprintf("katcp: %v at %d in %q", e.Kind, e.Pos, e.Value)
	case ValidationErrorEmptyName:
		return fmt.Sprintf("katcp: %v", e.Kind)
	default:
		return fmt.Sprintf("katcp: %v: %s", e.Kind, e.Value)
	}
}

// Isは、同じ種類のValidationError、またはErrInvalidMessageとその基底エラーに一致します。
func (e ValidationError) Is(err error) bool {
	if t, ok := err.(ValidationError); ok {
		return t.Kind == e.Kind
	}
	return Is(ErrInvalidMessage, err)
}

// AsValidationErrorは、errをValidationErrorとして取り出します。
func AsValidationError(err error) (*ValidationError, bool) {
	var res ValidationError
	ok := As(err, &res)
	return &res, ok
}

// TypeMismatchErrorは、引数のテキストが対象の型の表現に一致しなかった場合のエラーです。
type TypeMismatchError struct {
	Type  string // 対象の型名
	Token string // 変換しようとした引数
}

func (e TypeMismatchError) Error() string {
	return fmt.Sprintf("katcp: %q is not a valid %s", e.Token, e.Type)
}

func (e TypeMismatchError) Is(err error) bool {
	return Is(ErrTypeMismatch, err)
}

// AsTypeMismatchErrorは、errをTypeMismatchErrorとして取り出します。
func AsTypeMismatchError(err error) (*TypeMismatchError, bool) {
	var res TypeMismatchError
	ok := As(err, &res)
	return &res, ok
}

func New(text string) error {
	return errors.New(text)
}

func Errorf(format string, a ...any) error {
	return fmt.Errorf(format, a...)
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

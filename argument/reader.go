package argument

import (
	"time"

	"github.com/aptpod/katcp-go/errors"
)

// Readerは、メッセージの引数を先頭から順に型付きで読み出します。
//
// 変換に失敗した場合のエラーには、引数の位置が含まれます。
type Reader struct {
	args []string
	pos  int
}

// NewReaderは、argsを読み出すReaderを生成します。
func NewReader(args []string) *Reader {
	return &Reader{args: args}
}

// Nextは、次の引数をそのまま返却します。
//
// 引数が残っていない場合は errors.ErrMissingArgument を返却します。
func (r *Reader) Next() (string, error) {
	if r.pos >= len(r.args) {
		return "", errors.Errorf("argument %d: %w", r.pos, errors.ErrMissingArgument)
	}
	v := r.args[r.pos]
	r.pos++
	return v, nil
}

// Lenは、残っている引数の数を返却します。
func (r *Reader) Len() int {
	return len(r.args) - r.pos
}

// Restは、残っている引数をすべて返却します。
func (r *Reader) Rest() []string {
	if r.Len() == 0 {
		return nil
	}
	res := make([]string, r.Len())
	copy(res, r.args[r.pos:])
	r.pos = len(r.args)
	return res
}

// Textは、次の引数を文字列として読み出します。
func (r *Reader) Text() (string, error) {
	return Read(r, ParseString)
}

func (r *Reader) Int() (int64, error) {
	return Read(r, ParseInt)
}

func (r *Reader) Uint() (uint64, error) {
	return Read(r, ParseUint)
}

func (r *Reader) Float() (float64, error) {
	return Read(r, ParseFloat)
}

func (r *Reader) Bool() (bool, error) {
	return Read(r, ParseBool)
}

func (r *Reader) Timestamp() (time.Time, error) {
	return Read(r, ParseTimestamp)
}

func (r *Reader) Address() (Address, error) {
	return Read(r, ParseAddress)
}

// Discreteは、次の引数をsのラベルとして読み出します。
func (r *Reader) Discrete(s *DiscreteSet) (string, error) {
	return Read(r, s.Parse)
}

// Readは、次の引数をparseで変換して読み出します。
//
// parseのエラーには引数の位置が付与されます。
func Read[T any](r *Reader, parse func(string) (T, error)) (T, error) {
	pos := r.pos
	token, err := r.Next()
	if err != nil {
		var zero T
		return zero, err
	}
	v, err := parse(token)
	if err != nil {
		var zero T
		return zero, errors.Errorf("argument %d: %w", pos, err)
	}
	return v, nil
}

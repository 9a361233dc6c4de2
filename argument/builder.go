package argument

import (
	"time"

	"github.com/aptpod/katcp-go/errors"
)

// Builderは、型付きの値から引数の列を組み立てます。
//
//	args := new(argument.Builder).
//		Discrete(argument.RetCodes, argument.RetCodeOK.String()).
//		Int(3).
//		Arguments()
//
// 変換できない値を追加した場合、その値は追加されず、最初のエラーを Err で取得できます。
type Builder struct {
	args []string
	err  error
}

func (b *Builder) Text(v string) *Builder {
	b.args = append(b.args, FormatString(v))
	return b
}

func (b *Builder) Int(v int64) *Builder {
	b.args = append(b.args, FormatInt(v))
	return b
}

func (b *Builder) Uint(v uint64) *Builder {
	b.args = append(b.args, FormatUint(v))
	return b
}

func (b *Builder) Float(v float64) *Builder {
	b.args = append(b.args, FormatFloat(v))
	return b
}

func (b *Builder) Bool(v bool) *Builder {
	b.args = append(b.args, FormatBool(v))
	return b
}

func (b *Builder) Timestamp(v time.Time) *Builder {
	b.args = append(b.args, FormatTimestamp(v))
	return b
}

func (b *Builder) Address(v Address) *Builder {
	b.args = append(b.args, FormatAddress(v))
	return b
}

// Discreteは、sのラベルを追加します。sに含まれないラベルは追加せずにエラーとして記録します。
func (b *Builder) Discrete(s *DiscreteSet, label string) *Builder {
	v, err := s.Format(label)
	if err != nil {
		if b.err == nil {
			b.err = errors.Errorf("argument %d: %w", len(b.args), err)
		}
		return b
	}
	b.args = append(b.args, v)
	return b
}

// Errは、組み立て中に最初に発生したエラーを返却します。
func (b *Builder) Err() error {
	return b.err
}

// Argumentsは、組み立てた引数のコピーを返却します。
func (b *Builder) Arguments() []string {
	if len(b.args) == 0 {
		return nil
	}
	res := make([]string, len(b.args))
	copy(res, b.args)
	return res
}

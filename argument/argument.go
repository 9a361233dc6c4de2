/*
Package argument は、 KATCP の引数の型付き表現を提供するパッケージです。

引数は message.Message にエスケープ解除済みのテキストとして保持されます。
このパッケージの ParseXxx 関数はテキストを型付きの値へ変換し、 FormatXxx 関数は値を正規のテキストへ変換します。
変換に失敗した場合は errors.TypeMismatchError を返却します。
*/
package argument

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/aptpod/katcp-go/errors"
)

// 型名です。 errors.TypeMismatchError の Type に設定されます。
const (
	TypeInteger   = "integer"
	TypeUnsigned  = "unsigned"
	TypeFloat     = "float"
	TypeBoolean   = "boolean"
	TypeTimestamp = "timestamp"
	TypeDiscrete  = "discrete"
	TypeAddress   = "address"
	TypeString    = "string"
)

var (
	integerPattern   = regexp.MustCompile(`^[+-]?[0-9]+$`)
	unsignedPattern  = regexp.MustCompile(`^[0-9]+$`)
	floatPattern     = regexp.MustCompile(`^[+-]?([0-9]+(\.[0-9]*)?|\.[0-9]+)([eE][+-]?[0-9]+)?$`)
	timestampPattern = regexp.MustCompile(`^(-?)([0-9]+)(?:\.([0-9]+))?$`)
)

func mismatch(typ, token string) error {
	return errors.TypeMismatchError{Type: typ, Token: token}
}

// ParseIntは、符号付き整数の引数を変換します。
func ParseInt(token string) (int64, error) {
	if !integerPattern.MatchString(token) {
		return 0, mismatch(TypeInteger, token)
	}
	v, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return 0, mismatch(TypeInteger, token)
	}
	return v, nil
}

// FormatIntは、符号付き整数を引数へ変換します。
func FormatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

// ParseUintは、符号なし整数の引数を変換します。
func ParseUint(token string) (uint64, error) {
	if !unsignedPattern.MatchString(token) {
		return 0, mismatch(TypeUnsigned, token)
	}
	v, err := strconv.ParseUint(token, 10, 64)
	if err != nil {
		return 0, mismatch(TypeUnsigned, token)
	}
	return v, nil
}

// FormatUintは、符号なし整数を引数へ変換します。
func FormatUint(v uint64) string {
	return strconv.FormatUint(v, 10)
}

// ParseFloatは、浮動小数点数の引数を変換します。
//
// 10進表記に加えて、 FormatFloat が出力する `NaN` 、 `+Inf` および `-Inf` を大文字小文字を区別せずに受け付けます。
// 16進表記と範囲外の値は受け付けません。
func ParseFloat(token string) (float64, error) {
	switch strings.ToLower(token) {
	case "nan":
		return math.NaN(), nil
	case "inf", "+inf":
		return math.Inf(1), nil
	case "-inf":
		return math.Inf(-1), nil
	}
	if !floatPattern.MatchString(token) {
		return 0, mismatch(TypeFloat, token)
	}
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, mismatch(TypeFloat, token)
	}
	return v, nil
}

// FormatFloatは、浮動小数点数を値を復元できる最短の表記で引数へ変換します。
//
// 非数と無限大はそれぞれ `NaN` 、 `+Inf` 、 `-Inf` になります。
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// ParseBoolは、真偽値の引数を変換します。 `1` と `0` のみを受け付けます。
func ParseBool(token string) (bool, error) {
	switch token {
	case "1":
		return true, nil
	case "0":
		return false, nil
	default:
		return false, mismatch(TypeBoolean, token)
	}
}

// FormatBoolは、真偽値を引数へ変換します。
func FormatBool(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

// ParseStringは、文字列の引数を変換します。引数はエスケープ解除済みのため、常に成功します。
func ParseString(token string) (string, error) {
	return token, nil
}

// FormatStringは、文字列を引数へ変換します。
func FormatString(v string) string {
	return v
}

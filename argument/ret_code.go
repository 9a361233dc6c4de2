package argument

import "fmt"

/*
RetCode は、リプライの最初の引数となる処理結果のコードです。
*/
type RetCode uint8

/*
RetCode は、以下の値を取ります。
*/
const (
	RetCodeOK      RetCode = iota // 処理が正常に成功したことを表します。以降の引数はリクエストごとに定義されます。
	RetCodeInvalid                // リクエストの形式が不正であることを表します。2番目の引数は人が読むためのエラーの説明です。
	RetCodeFail                   // 正しいリクエストを処理できなかったことを表します。2番目の引数は人が読むためのエラーの説明です。
)

// RetCodesは、RetCodeのラベルの集合です。
var RetCodes = NewDiscreteSet("ok", "invalid", "fail")

func (c RetCode) String() string {
	return discreteString(RetCodes, uint8(c))
}

// ParseRetCodeは、引数からRetCodeを変換します。
func ParseRetCode(token string) (RetCode, error) {
	i, err := RetCodes.Index(token)
	return RetCode(i), err
}

// discreteStringは、位置に対応するラベルを返却します。範囲外の場合は数値表記です。
func discreteString(s *DiscreteSet, i uint8) string {
	if int(i) < len(s.labels) {
		return s.labels[i]
	}
	return fmt.Sprint(i)
}

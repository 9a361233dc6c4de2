package argument

import (
	"strconv"
	"strings"
	"time"
)

const (
	nanoDigits     = 9
	nanosPerSecond = 1000000000
)

// ParseTimestampは、UNIXエポックからの秒数で表されたタイムスタンプの引数を変換します。
//
// 小数部はナノ秒の精度まで読み取り、それより細かい桁は切り捨てます。浮動小数点数を経由しないため丸め誤差はありません。
// 先頭の `-` はエポック以前の時刻を表し、符号は小数部を含む値全体にかかります。
func ParseTimestamp(token string) (time.Time, error) {
	sub := timestampPattern.FindStringSubmatch(token)
	if sub == nil {
		return time.Time{}, mismatch(TypeTimestamp, token)
	}
	sec, err := strconv.ParseInt(sub[2], 10, 64)
	if err != nil {
		return time.Time{}, mismatch(TypeTimestamp, token)
	}
	var nsec int64
	if frac := sub[3]; frac != "" {
		if len(frac) > nanoDigits {
			frac = frac[:nanoDigits]
		}
		frac += strings.Repeat("0", nanoDigits-len(frac))
		nsec, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return time.Time{}, mismatch(TypeTimestamp, token)
		}
	}
	if sub[1] == "-" {
		sec, nsec = -sec, -nsec
	}
	return time.Unix(sec, nsec).UTC(), nil
}

// FormatTimestampは、タイムスタンプを秒数の引数へ変換します。
//
// 小数部の末尾の0は出力しません。小数部が0の場合は整数秒のみを出力します。
// エポック以前の時刻は `-1.25` のように絶対値に符号を付けて出力します。
func FormatTimestamp(v time.Time) string {
	sec, nsec := v.Unix(), int64(v.Nanosecond())
	var sign string
	if sec < 0 {
		sign = "-"
		if nsec > 0 {
			sec, nsec = sec+1, nanosPerSecond-nsec
		}
		sec = -sec
	}
	res := sign + strconv.FormatUint(uint64(sec), 10)
	if nsec == 0 {
		return res
	}
	frac := strconv.FormatInt(nsec, 10)
	frac = strings.Repeat("0", nanoDigits-len(frac)) + frac
	return res + "." + strings.TrimRight(frac, "0")
}

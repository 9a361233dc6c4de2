package message

import "strings"

// emptyArgumentは、空の引数を表すエスケープシーケンスです。
const emptyArgument = `\@`

// escaperは、予約バイトを2文字のエスケープシーケンスへ置換します。
var escaper = strings.NewReplacer(
	`\`, `\\`,
	" ", `\_`,
	"\x00", `\0`,
	"\n", `\n`,
	"\r", `\r`,
	"\x1b", `\e`,
	"\t", `\t`,
)

// unescapeTableは、エスケープコードからデコード後のバイト列への対応です。
var unescapeTable = map[byte]string{
	'\\': `\`,
	'_':  " ",
	'0':  "\x00",
	'n':  "\n",
	'r':  "\r",
	'e':  "\x1b",
	't':  "\t",
	'@':  "",
}

// Escapeは、引数のテキストをワイヤ上の表現へエスケープします。
//
// 空文字列は `\@` になります。
func Escape(s string) string {
	if s == "" {
		return emptyArgument
	}
	return escaper.Replace(s)
}

// Unescapeは、ワイヤ上の1つの引数トークンをデコードします。
//
// 不正なエスケープシーケンスや区切り文字を含む場合は errors.ParseError を返却します。
func Unescape(token string) (string, error) {
	s := scanner{src: token}
	return s.argumentToken()
}

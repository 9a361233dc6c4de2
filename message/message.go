/*
Package message は、 KATCP のメッセージモデルを提供するパッケージです。

1行のテキストと Message の相互変換（パースとシリアライズ）、および検証付きの生成を行います。
いずれの処理も状態を持たない純粋な関数です。
*/
package message

import (
	"fmt"
	"math"
)

// MaxIDは、メッセージIDとして使用できる最大値です。
const MaxID uint32 = math.MaxInt32

// Kindは、メッセージの種別です。
type Kind uint8

const (
	_ Kind = iota

	KindRequest // リクエスト。必ずリプライで応答されます。
	KindReply   // リプライ。リクエストに対する応答です。
	KindInform  // インフォーム。リプライの一部として同期的に、または非同期に送信されます。
)

// Markerは、種別を表す先頭文字を返却します。
//
// 不正な種別の場合は0を返却します。
func (k Kind) Marker() byte {
	switch k {
	case KindRequest:
		return '?'
	case KindReply:
		return '!'
	case KindInform:
		return '#'
	default:
		return 0
	}
}

func (k Kind) String() string {
	switch k {
	case KindRequest:
		return "request"
	case KindReply:
		return "reply"
	case KindInform:
		return "inform"
	default:
		return fmt.Sprint(uint8(k))
	}
}

func (k Kind) valid() bool {
	return k.Marker() != 0
}

// KindFromMarkerは、先頭文字から種別を返却します。
func KindFromMarker(b byte) (Kind, bool) {
	switch b {
	case '?':
		return KindRequest, true
	case '!':
		return KindReply, true
	case '#':
		return KindInform, true
	default:
		return 0, false
	}
}

/*
Message は、 KATCP のメッセージです。

生成後は変更できません。複数のゴルーチンから同期なしに参照できます。
引数はエスケープ解除済みのテキストとして保持し、型付きの解釈は argument パッケージで利用者が行います。
*/
type Message struct {
	kind      Kind
	name      string
	id        *uint32
	arguments []string
}

// NewUncheckedは、検証を行わずにMessageを生成します。
//
// 呼び出し側は、名前が識別子の文法を満たし、IDがMaxID以下であることを保証しなければいけません。
// 保証されない場合、シリアライズ結果はプロトコルに適合しないテキストになる可能性があります。
func NewUnchecked(kind Kind, name string, id *uint32, arguments ...string) *Message {
	m := &Message{
		kind: kind,
		name: name,
	}
	if id != nil {
		v := *id
		m.id = &v
	}
	if len(arguments) > 0 {
		m.arguments = make([]string, len(arguments))
		copy(m.arguments, arguments)
	}
	return m
}

// Kindは、種別を返却します。
func (m *Message) Kind() Kind {
	return m.kind
}

// Nameは、メッセージ名を返却します。
func (m *Message) Name() string {
	return m.name
}

// IDは、メッセージIDを返却します。
//
// IDを持たない場合、okはfalseを返します。
func (m *Message) ID() (id uint32, ok bool) {
	if m.id == nil {
		return 0, false
	}
	return *m.id, true
}

// Argumentsは、引数のコピーを返却します。
func (m *Message) Arguments() []string {
	if len(m.arguments) == 0 {
		return nil
	}
	res := make([]string, len(m.arguments))
	copy(res, m.arguments)
	return res
}

// Argumentは、i番目の引数を返却します。
func (m *Message) Argument(i int) (string, bool) {
	if i < 0 || i >= len(m.arguments) {
		return "", false
	}
	return m.arguments[i], true
}

// NumArgumentsは、引数の数を返却します。
func (m *Message) NumArguments() int {
	return len(m.arguments)
}

// Equalは、種別、名前、ID、引数がすべて一致する場合にtrueを返却します。
func (m *Message) Equal(o *Message) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.kind != o.kind || m.name != o.name {
		return false
	}
	if (m.id == nil) != (o.id == nil) {
		return false
	}
	if m.id != nil && *m.id != *o.id {
		return false
	}
	if len(m.arguments) != len(o.arguments) {
		return false
	}
	for i := range m.arguments {
		if m.arguments[i] != o.arguments[i] {
			return false
		}
	}
	return true
}

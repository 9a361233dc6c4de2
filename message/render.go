package message

import "strconv"

// Stringは、メッセージを正規のテキスト表現へシリアライズします。改行は含みません。
//
// 検証は行いません。NewUnchecked で不変条件を満たさないメッセージを生成した場合、
// 結果はプロトコルに適合しない可能性があります。
func (m *Message) String() string {
	return string(m.AppendText(make([]byte, 0, m.sizeHint())))
}

// AppendTextは、メッセージのテキスト表現をbに追記して返却します。
func (m *Message) AppendText(b []byte) []byte {
	b = append(b, m.kind.Marker())
	b = append(b, m.name...)
	if m.id != nil {
		b = append(b, '[')
		b = strconv.AppendUint(b, uint64(*m.id), 10)
		b = append(b, ']')
	}
	for _, arg := range m.arguments {
		b = append(b, ' ')
		b = append(b, Escape(arg)...)
	}
	return b
}

// MarshalTextは、 encoding.TextMarshaler を実装します。
func (m *Message) MarshalText() ([]byte, error) {
	return m.AppendText(nil), nil
}

func (m *Message) sizeHint() int {
	n := 1 + len(m.name)
	if m.id != nil {
		n += 12
	}
	for _, arg := range m.arguments {
		n += 1 + len(arg)
	}
	return n
}

package message_test

import (
	"math"
	"testing"

	"github.com/AlekSi/pointer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/aptpod/katcp-go/errors"
	. "github.com/aptpod/katcp-go/message"
)

func TestKind(t *testing.T) {
	tests := []struct {
		kind   Kind
		marker byte
		str    string
	}{
		{kind: KindRequest, marker: '?', str: "request"},
		{kind: KindReply, marker: '!', str: "reply"},
		{kind: KindInform, marker: '#', str: "inform"},
	}
	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			assert.Equal(t, tt.marker, tt.kind.Marker())
			assert.Equal(t, tt.str, tt.kind.String())
			got, ok := KindFromMarker(tt.marker)
			require.True(t, ok)
			assert.Equal(t, tt.kind, got)
		})
	}

	assert.Equal(t, byte(0), Kind(0).Marker())
	assert.Equal(t, "9", Kind(9).String())
	_, ok := KindFromMarker('*')
	assert.False(t, ok)
}

func TestNew(t *testing.T) {
	got, err := New(KindInform, "foo-bar", nil, "param-1", "param-2")
	require.NoError(t, err)
	assert.Equal(t, KindInform, got.Kind())
	assert.Equal(t, "foo-bar", got.Name())
	_, ok := got.ID()
	assert.False(t, ok)
	assert.Equal(t, []string{"param-1", "param-2"}, got.Arguments())
	assert.Equal(t, 2, got.NumArguments())
	assert.Equal(t, "#foo-bar param-1 param-2", got.String())

	got, err = New(KindRequest, "set-rate", pointer.ToUint32(123), "4.1")
	require.NoError(t, err)
	id, ok := got.ID()
	require.True(t, ok)
	assert.Equal(t, uint32(123), id)
	assert.Equal(t, "?set-rate[123] 4.1", got.String())

	got, err = New(KindReply, "F00-bar", pointer.ToUint32(MaxID))
	require.NoError(t, err)
	assert.Equal(t, "!F00-bar[2147483647]", got.String())
}

func TestNew_error(t *testing.T) {
	tests := []struct {
		name    string
		kind    Kind
		msgName string
		id      *uint32
		wantErr errors.ValidationErrorKind
		wantPos int
	}{
		{name: "empty name", kind: KindRequest, msgName: "", wantErr: errors.ValidationErrorEmptyName},
		{name: "empty name is checked before id", kind: KindRequest, msgName: "", id: pointer.ToUint32(math.MaxUint32), wantErr: errors.ValidationErrorEmptyName},
		{name: "leading digit", kind: KindRequest, msgName: "1foo", wantErr: errors.ValidationErrorInvalidNameCharacter, wantPos: 0},
		{name: "leading hyphen", kind: KindRequest, msgName: "-foo", wantErr: errors.ValidationErrorInvalidNameCharacter, wantPos: 0},
		{name: "whitespace", kind: KindRequest, msgName: "foo bar", wantErr: errors.ValidationErrorInvalidNameCharacter, wantPos: 3},
		{name: "tab", kind: KindRequest, msgName: "foo\t", wantErr: errors.ValidationErrorInvalidNameCharacter, wantPos: 3},
		{name: "control character", kind: KindRequest, msgName: "foo\n", wantErr: errors.ValidationErrorInvalidNameCharacter, wantPos: 3},
		{name: "bracket", kind: KindRequest, msgName: "foo[1]", wantErr: errors.ValidationErrorInvalidNameCharacter, wantPos: 3},
		{name: "name is checked before id", kind: KindRequest, msgName: "foo.bar", id: pointer.ToUint32(math.MaxUint32), wantErr: errors.ValidationErrorInvalidNameCharacter, wantPos: 3},
		{name: "id out of range", kind: KindRequest, msgName: "foo", id: pointer.ToUint32(MaxID + 1), wantErr: errors.ValidationErrorIdentifierOutOfRange},
		{name: "zero kind", kind: 0, msgName: "foo", wantErr: errors.ValidationErrorInvalidKind},
		{name: "unknown kind", kind: Kind(4), msgName: "foo", wantErr: errors.ValidationErrorInvalidKind},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.kind, tt.msgName, tt.id)
			assert.Nil(t, got)
			require.Error(t, err)
			assert.ErrorIs(t, err, errors.ErrInvalidMessage)
			assert.ErrorIs(t, err, errors.ValidationError{Kind: tt.wantErr})
			assert.NotErrorIs(t, err, errors.ErrMalformedMessage)
			ve, ok := errors.AsValidationError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantErr, ve.Kind)
			assert.Equal(t, tt.wantPos, ve.Pos)
		})
	}
}

func TestNewUnchecked(t *testing.T) {
	// 検証されないため、不正な名前もそのままシリアライズされます。
	got := NewUnchecked(KindRequest, "1foo", nil, "x")
	assert.Equal(t, "?1foo x", got.String())
	_, _, err := Parse(got.String())
	assert.Error(t, err)
}

func TestMessage_isolatedFromCaller(t *testing.T) {
	id := uint32(7)
	args := []string{"a", "b"}
	got, err := New(KindInform, "foo", &id, args...)
	require.NoError(t, err)

	id = 8
	args[0] = "changed"
	gotArgs := got.Arguments()
	gotArgs[1] = "changed"

	gotID, _ := got.ID()
	assert.Equal(t, uint32(7), gotID)
	assert.Equal(t, []string{"a", "b"}, got.Arguments())
}

func TestMessage_Argument(t *testing.T) {
	m := MustParse("!sensor-list ok 3")
	got, ok := m.Argument(0)
	assert.True(t, ok)
	assert.Equal(t, "ok", got)
	got, ok = m.Argument(1)
	assert.True(t, ok)
	assert.Equal(t, "3", got)
	_, ok = m.Argument(2)
	assert.False(t, ok)
	_, ok = m.Argument(-1)
	assert.False(t, ok)

	assert.Nil(t, MustParse("?watchdog").Arguments())
}

func TestMessage_Equal(t *testing.T) {
	base := NewUnchecked(KindRequest, "foo", pointer.ToUint32(1), "a")
	tests := []struct {
		name  string
		other *Message
		want  bool
	}{
		{name: "same", other: NewUnchecked(KindRequest, "foo", pointer.ToUint32(1), "a"), want: true},
		{name: "kind", other: NewUnchecked(KindReply, "foo", pointer.ToUint32(1), "a")},
		{name: "name", other: NewUnchecked(KindRequest, "bar", pointer.ToUint32(1), "a")},
		{name: "id", other: NewUnchecked(KindRequest, "foo", pointer.ToUint32(2), "a")},
		{name: "no id", other: NewUnchecked(KindRequest, "foo", nil, "a")},
		{name: "arguments", other: NewUnchecked(KindRequest, "foo", pointer.ToUint32(1), "b")},
		{name: "argument count", other: NewUnchecked(KindRequest, "foo", pointer.ToUint32(1))},
		{name: "nil", other: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Equal(tt.other))
		})
	}
	var nilMsg *Message
	assert.True(t, nilMsg.Equal(nil))
}

func TestMessage_String(t *testing.T) {
	tests := []struct {
		name string
		in   *Message
		want string
	}{
		{name: "inform", in: NewUnchecked(KindInform, "foo-bar", pointer.ToUint32(123), "foo", "bar"), want: "#foo-bar[123] foo bar"},
		{name: "no arguments", in: NewUnchecked(KindRequest, "watchdog", nil), want: "?watchdog"},
		{name: "space", in: NewUnchecked(KindReply, "foo", nil, " "), want: `!foo \_`},
		{name: "empty", in: NewUnchecked(KindReply, "foo", nil, "", "x"), want: `!foo \@ x`},
		{name: "reserved bytes", in: NewUnchecked(KindInform, "log", nil, "a b\\c\nd\re\x00f\x1bg\th"), want: `#log a\_b\\c\nd\re\0f\eg\th`},
		{name: "utf-8", in: NewUnchecked(KindInform, "log", nil, "温度 センサー"), want: `#log 温度\_センサー`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.String())
			b, err := tt.in.MarshalText()
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(b))
			assert.Equal(t, "prefix:"+tt.want, string(tt.in.AppendText([]byte("prefix:"))))
		})
	}
}

func TestRoundTrip_messageToText(t *testing.T) {
	tests := []struct {
		name string
		in   *Message
	}{
		{name: "plain", in: NewUnchecked(KindInform, "foo-bar", pointer.ToUint32(123), "foo", "bar")},
		{name: "no id", in: NewUnchecked(KindRequest, "set-rate", nil, "5.1")},
		{name: "no arguments", in: NewUnchecked(KindReply, "halt", pointer.ToUint32(9))},
		{name: "space", in: NewUnchecked(KindReply, "foo", nil, " ")},
		{name: "backslash", in: NewUnchecked(KindReply, "foo", nil, `\`, `\\`, `\_`)},
		{name: "newline", in: NewUnchecked(KindReply, "foo", nil, "line1\nline2\r\n")},
		{name: "empty", in: NewUnchecked(KindReply, "foo", nil, "", "", "x", "")},
		{name: "control", in: NewUnchecked(KindInform, "foo", nil, "\x00\x1b\t")},
		{name: "sentence", in: NewUnchecked(KindReply, "set-rate", nil, "fail", "Hardware did not respond.")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, remaining, err := Parse(tt.in.String())
			require.NoError(t, err)
			assert.Empty(t, remaining)
			assert.Equal(t, tt.in, got)
		})
	}
}

func TestRoundTrip_textToMessage(t *testing.T) {
	tests := []string{
		"?set-unknown-paramer[123] 6.1 true my-attribute",
		"#foo-bar[123] foo bar",
		`!set-unknown-parameter invalid Unknown\_request.`,
		`#sensor-list drive.dc-voltage-elev Drive\_bus\_voltage V float 0.0 900.0`,
		`#sensor-list drive.enable-elev Elevation\_drive\_enable\_signal\_status \@ boolean`,
		`#log \\\_\0\n\r\e\t`,
		"?watchdog",
		"!watchdog[0] ok",
	}
	for _, tt := range tests {
		t.Run(tt, func(t *testing.T) {
			got, _, err := Parse(tt)
			require.NoError(t, err)
			assert.Equal(t, tt, got.String())
		})
	}
}

func TestEscape(t *testing.T) {
	assert.Equal(t, `This\_is\_my\_foo\n`, Escape("This is my foo\n"))
	assert.Equal(t, `\@`, Escape(""))
	assert.Equal(t, `\\\_\0\n\r\e\t`, Escape("\\ \x00\n\r\x1b\t"))
	assert.Equal(t, "plain", Escape("plain"))
}

func TestMessage_concurrentRead(t *testing.T) {
	m := MustParse(`#sensor-status 1234.5 1 drive.enable-azim nominal 1`)
	want := m.String()

	var eg errgroup.Group
	for i := 0; i < 16; i++ {
		eg.Go(func() error {
			for j := 0; j < 1000; j++ {
				got, _, err := Parse(m.String())
				if err != nil {
					return err
				}
				if !got.Equal(m) || got.String() != want {
					return errors.New("mismatch")
				}
			}
			return nil
		})
	}
	require.NoError(t, eg.Wait())
}

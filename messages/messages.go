/*
Package messages は、 KATCP のコアメッセージを型付きの構造体として扱うパッケージです。

各構造体は Message を実装します。 ToMessage は構造体を message.Message へ変換し、
FromMessage は種別と名前から構造体を選択して引数を読み出します。

	raw, err := messages.ToMessage(&messages.WatchdogReply{}, pointer.ToUint32(1))
	// !watchdog[1] ok

	m, err := messages.Decode[*messages.LogInform](message.MustParse("#log warn 1700000000.5 drive Overheat"))
	// m.Level == argument.LogLevelWarn

省略可能な引数は、引数が存在しない場合と空の場合のどちらも nil として読み出します。
引数が余った場合は無視します。
*/
package messages

import (
	"math"

	"github.com/aptpod/katcp-go/argument"
	"github.com/aptpod/katcp-go/errors"
	"github.com/aptpod/katcp-go/message"
)

// Messageは、型付きのKATCPメッセージです。
type Message interface {
	// MessageKindは、メッセージの種別を返却します。
	MessageKind() message.Kind
	// MessageNameは、メッセージ名を返却します。
	MessageName() string
	appendArguments(b *argument.Builder)
}

// メッセージ名です。
const (
	NameHalt             = "halt"
	NameRestart          = "restart"
	NameWatchdog         = "watchdog"
	NameHelp             = "help"
	NameVersionList      = "version-list"
	NameVersionConnect   = "version-connect"
	NameDisconnect       = "disconnect"
	NameInterfaceChanged = "interface-changed"
	NameLog              = "log"
	NameLogLevel         = "log-level"
	NameClientList       = "client-list"
	NameClientConnected  = "client-connected"
	NameSensorList       = "sensor-list"
	NameSensorValue      = "sensor-value"
	NameSensorStatus     = "sensor-status"
	NameSensorSampling   = "sensor-sampling"
)

type key struct {
	kind message.Kind
	name string
}

type decodeFunc func(r *argument.Reader) (Message, error)

var decoders = map[key]decodeFunc{
	{message.KindRequest, NameHalt}:     decodeEmpty[HaltRequest](),
	{message.KindReply, NameHalt}:       decodeHaltReply,
	{message.KindRequest, NameRestart}:  decodeEmpty[RestartRequest](),
	{message.KindReply, NameRestart}:    decodeRestartReply,
	{message.KindRequest, NameWatchdog}: decodeEmpty[WatchdogRequest](),
	{message.KindReply, NameWatchdog}:   decodeWatchdogReply,

	{message.KindRequest, NameHelp}: decodeHelpRequest,
	{message.KindInform, NameHelp}:  decodeHelpInform,
	{message.KindReply, NameHelp}:   decodeHelpReply,

	{message.KindRequest, NameVersionList}: decodeEmpty[VersionListRequest](),
	{message.KindInform, NameVersionList}:  decodeVersionListInform,
	{message.KindReply, NameVersionList}:   decodeVersionListReply,

	{message.KindInform, NameVersionConnect}: decodeVersionConnect,

	{message.KindInform, NameDisconnect}:       decodeDisconnectInform,
	{message.KindInform, NameInterfaceChanged}: decodeInterfaceChangedInform,

	{message.KindInform, NameLog}:       decodeLogInform,
	{message.KindRequest, NameLogLevel}: decodeLogLevelRequest,
	{message.KindReply, NameLogLevel}:   decodeLogLevelReply,

	{message.KindRequest, NameClientList}:     decodeEmpty[ClientListRequest](),
	{message.KindInform, NameClientList}:      decodeClientListInform,
	{message.KindReply, NameClientList}:       decodeClientListReply,
	{message.KindInform, NameClientConnected}: decodeClientConnectedInform,

	{message.KindRequest, NameSensorList}:     decodeSensorListRequest,
	{message.KindInform, NameSensorList}:      decodeSensorListInform,
	{message.KindReply, NameSensorList}:       decodeSensorListReply,
	{message.KindRequest, NameSensorValue}:    decodeSensorValueRequest,
	{message.KindInform, NameSensorValue}:     decodeSensorValueInform,
	{message.KindReply, NameSensorValue}:      decodeSensorValueReply,
	{message.KindInform, NameSensorStatus}:    decodeSensorStatusInform,
	{message.KindRequest, NameSensorSampling}: decodeSensorSamplingRequest,
	{message.KindReply, NameSensorSampling}:   decodeSensorSamplingReply,
}

// ToMessageは、mをIDがidのメッセージへ変換します。
//
// 離散型のフィールドが範囲外の場合は errors.ErrTypeMismatch を返却します。
func ToMessage(m Message, id *uint32) (*message.Message, error) {
	b := new(argument.Builder)
	m.appendArguments(b)
	if err := b.Err(); err != nil {
		return nil, errors.Errorf("%v %s: %w", m.MessageKind(), m.MessageName(), err)
	}
	return message.New(m.MessageKind(), m.MessageName(), id, b.Arguments()...)
}

// FromMessageは、rawを種別と名前に対応する型へ変換します。
//
// 対応する型が無い場合は errors.ErrUnexpectedMessage を、
// 引数が不足している場合は errors.ErrMissingArgument を、
// 引数を変換できない場合は errors.ErrTypeMismatch を返却します。
func FromMessage(raw *message.Message) (Message, error) {
	dec, ok := decoders[key{kind: raw.Kind(), name: raw.Name()}]
	if !ok {
		return nil, errors.Errorf("%v %s: %w", raw.Kind(), raw.Name(), errors.ErrUnexpectedMessage)
	}
	m, err := dec(argument.NewReader(raw.Arguments()))
	if err != nil {
		return nil, errors.Errorf("%v %s: %w", raw.Kind(), raw.Name(), err)
	}
	return m, nil
}

// Decodeは、rawをTへ変換します。
//
// rawがT以外の型に対応する場合は errors.ErrUnexpectedMessage を返却します。
func Decode[T Message](raw *message.Message) (T, error) {
	var zero T
	m, err := FromMessage(raw)
	if err != nil {
		return zero, err
	}
	res, ok := m.(T)
	if !ok {
		return zero, errors.Errorf("%v %s is %T: %w", raw.Kind(), raw.Name(), m, errors.ErrUnexpectedMessage)
	}
	return res, nil
}

func decodeEmpty[T any, P interface {
	*T
	Message
}]() decodeFunc {
	return func(*argument.Reader) (Message, error) {
		return P(new(T)), nil
	}
}

func readDiscrete[T ~uint8](r *argument.Reader, s *argument.DiscreteSet) (T, error) {
	label, err := r.Discrete(s)
	if err != nil {
		return 0, err
	}
	i, err := s.Index(label)
	if err != nil {
		return 0, err
	}
	return T(i), nil
}

func readOptionalText(r *argument.Reader) (*string, error) {
	if r.Len() == 0 {
		return nil, nil
	}
	v, err := r.Text()
	if err != nil || v == "" {
		return nil, err
	}
	return &v, nil
}

func appendOptionalText(b *argument.Builder, v *string) {
	if v != nil {
		b.Text(*v)
	}
}

func parseUint32(token string) (uint32, error) {
	v, err := argument.ParseUint(token)
	if err != nil {
		return 0, err
	}
	if v > math.MaxUint32 {
		return 0, errors.TypeMismatchError{Type: argument.TypeUnsigned, Token: token}
	}
	return uint32(v), nil
}

package messages

import (
	"time"

	"github.com/aptpod/katcp-go/argument"
	"github.com/aptpod/katcp-go/message"
)

// LogInformは、デバイスのログを通知するインフォームです。すべてのクライアントへ送信されます。
type LogInform struct {
	Level     argument.LogLevel
	Timestamp time.Time
	Name      string // ログを出力した構成要素の名前
	Message   string
}

func (*LogInform) MessageKind() message.Kind { return message.KindInform }
func (*LogInform) MessageName() string { return NameLog }

func (m *LogInform) appendArguments(b *argument.Builder) {
	b.Discrete(argument.LogLevels, m.Level.String()).
		Timestamp(m.Timestamp).
		Text(m.Name).
		Text(m.Message)
}

func decodeLogInform(r *argument.Reader) (Message, error) {
	var (
		res LogInform
		err error
	)
	if res.Level, err = readDiscrete[argument.LogLevel](r, argument.LogLevels); err != nil {
		return nil, err
	}
	if res.Timestamp, err = r.Timestamp(); err != nil {
		return nil, err
	}
	if res.Name, err = r.Text(); err != nil {
		return nil, err
	}
	if res.Message, err = r.Text(); err != nil {
		return nil, err
	}
	return &res, nil
}

// LogLevelRequestは、ログレベルを設定するリクエストです。Levelがnilの場合は現在のログレベルを問い合わせます。
type LogLevelRequest struct {
	Level *argument.LogLevel
}

func (*LogLevelRequest) MessageKind() message.Kind { return message.KindRequest }
func (*LogLevelRequest) MessageName() string { return NameLogLevel }

func (m *LogLevelRequest) appendArguments(b *argument.Builder) {
	if m.Level != nil {
		b.Discrete(argument.LogLevels, m.Level.String())
	}
}

func decodeLogLevelRequest(r *argument.Reader) (Message, error) {
	if r.Len() == 0 {
		return &LogLevelRequest{}, nil
	}
	level, err := readDiscrete[argument.LogLevel](r, argument.LogLevels)
	if err != nil {
		return nil, err
	}
	return &LogLevelRequest{Level: &level}, nil
}

// LogLevelReplyは、LogLevelRequestへのリプライです。Levelは設定後のログレベルです。
type LogLevelReply struct {
	RetCode argument.RetCode
	Level   argument.LogLevel
}

func (*LogLevelReply) MessageKind() message.Kind { return message.KindReply }
func (*LogLevelReply) MessageName() string { return NameLogLevel }

func (m *LogLevelReply) appendArguments(b *argument.Builder) {
	b.Discrete(argument.RetCodes, m.RetCode.String()).
		Discrete(argument.LogLevels, m.Level.String())
}

func decodeLogLevelReply(r *argument.Reader) (Message, error) {
	var (
		res LogLevelReply
		err error
	)
	if res.RetCode, err = readDiscrete[argument.RetCode](r, argument.RetCodes); err != nil {
		return nil, err
	}
	if res.Level, err = readDiscrete[argument.LogLevel](r, argument.LogLevels); err != nil {
		return nil, err
	}
	return &res, nil
}

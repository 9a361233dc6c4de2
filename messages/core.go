package messages

import (
	"github.com/aptpod/katcp-go/argument"
	"github.com/aptpod/katcp-go/message"
)

// HaltRequestは、デバイスを安全に電源断できる状態へ停止させるリクエストです。
type HaltRequest struct{}

func (*HaltRequest) MessageKind() message.Kind { return message.KindRequest }
func (*HaltRequest) MessageName() string { return NameHalt }
func (*HaltRequest) appendArguments(*argument.Builder) {}

// HaltReplyは、HaltRequestへのリプライです。停止の直前に送信されます。
type HaltReply struct {
	GenericReply
}

func (*HaltReply) MessageKind() message.Kind { return message.KindReply }
func (*HaltReply) MessageName() string { return NameHalt }
func (m *HaltReply) appendArguments(b *argument.Builder) { m.appendTo(b) }

func decodeHaltReply(r *argument.Reader) (Message, error) {
	res, err := readGenericReply(r)
	if err != nil {
		return nil, err
	}
	return &HaltReply{res}, nil
}

// RestartRequestは、ソフトウェアの再起動を要求するリクエストです。
type RestartRequest struct{}

func (*RestartRequest) MessageKind() message.Kind { return message.KindRequest }
func (*RestartRequest) MessageName() string { return NameRestart }
func (*RestartRequest) appendArguments(*argument.Builder) {}

// RestartReplyは、RestartRequestへのリプライです。接続を閉じる前に送信されます。
type RestartReply struct {
	GenericReply
}

func (*RestartReply) MessageKind() message.Kind { return message.KindReply }
func (*RestartReply) MessageName() string { return NameRestart }
func (m *RestartReply) appendArguments(b *argument.Builder) { m.appendTo(b) }

func decodeRestartReply(r *argument.Reader) (Message, error) {
	res, err := readGenericReply(r)
	if err != nil {
		return nil, err
	}
	return &RestartReply{res}, nil
}

// WatchdogRequestは、接続が有効であることを確認するリクエストです。
type WatchdogRequest struct{}

func (*WatchdogRequest) MessageKind() message.Kind { return message.KindRequest }
func (*WatchdogRequest) MessageName() string { return NameWatchdog }
func (*WatchdogRequest) appendArguments(*argument.Builder) {}

// WatchdogReplyは、WatchdogRequestへのリプライです。
type WatchdogReply struct {
	GenericReply
}

func (*WatchdogReply) MessageKind() message.Kind { return message.KindReply }
func (*WatchdogReply) MessageName() string { return NameWatchdog }
func (m *WatchdogReply) appendArguments(b *argument.Builder) { m.appendTo(b) }

func decodeWatchdogReply(r *argument.Reader) (Message, error) {
	res, err := readGenericReply(r)
	if err != nil {
		return nil, err
	}
	return &WatchdogReply{res}, nil
}

// HelpRequestは、リクエストの説明を要求するリクエストです。
//
// Nameがnilの場合はすべてのリクエストの説明を要求します。
type HelpRequest struct {
	Name *string
}

func (*HelpRequest) MessageKind() message.Kind { return message.KindRequest }
func (*HelpRequest) MessageName() string { return NameHelp }
func (m *HelpRequest) appendArguments(b *argument.Builder) { appendOptionalText(b, m.Name) }

func decodeHelpRequest(r *argument.Reader) (Message, error) {
	name, err := readOptionalText(r)
	if err != nil {
		return nil, err
	}
	return &HelpRequest{Name: name}, nil
}

// HelpInformは、1つのリクエストの説明です。HelpReplyの前に送信されます。
type HelpInform struct {
	Name        string
	Description string
}

func (*HelpInform) MessageKind() message.Kind { return message.KindInform }
func (*HelpInform) MessageName() string { return NameHelp }

func (m *HelpInform) appendArguments(b *argument.Builder) {
	b.Text(m.Name).Text(m.Description)
}

func decodeHelpInform(r *argument.Reader) (Message, error) {
	var (
		res HelpInform
		err error
	)
	if res.Name, err = r.Text(); err != nil {
		return nil, err
	}
	if res.Description, err = r.Text(); err != nil {
		return nil, err
	}
	return &res, nil
}

// HelpReplyは、HelpRequestへのリプライです。成功時のNumは送信したHelpInformの数です。
type HelpReply struct {
	IntReply
}

func (*HelpReply) MessageKind() message.Kind { return message.KindReply }
func (*HelpReply) MessageName() string { return NameHelp }
func (m *HelpReply) appendArguments(b *argument.Builder) { m.appendTo(b) }

func decodeHelpReply(r *argument.Reader) (Message, error) {
	res, err := readIntReply(r)
	if err != nil {
		return nil, err
	}
	return &HelpReply{res}, nil
}

// VersionListRequestは、構成要素のバージョンの一覧を要求するリクエストです。
type VersionListRequest struct{}

func (*VersionListRequest) MessageKind() message.Kind { return message.KindRequest }
func (*VersionListRequest) MessageName() string { return NameVersionList }
func (*VersionListRequest) appendArguments(*argument.Builder) {}

// VersionListInformは、1つの構成要素のバージョンです。
type VersionListInform struct {
	Name    string // 役割または構成要素の名前
	Version string
	UUID    string // ビルド状態またはシリアル番号
}

func (*VersionListInform) MessageKind() message.Kind { return message.KindInform }
func (*VersionListInform) MessageName() string { return NameVersionList }

func (m *VersionListInform) appendArguments(b *argument.Builder) {
	b.Text(m.Name).Text(m.Version).Text(m.UUID)
}

func decodeVersionListInform(r *argument.Reader) (Message, error) {
	var (
		res VersionListInform
		err error
	)
	if res.Name, err = r.Text(); err != nil {
		return nil, err
	}
	if res.Version, err = r.Text(); err != nil {
		return nil, err
	}
	if res.UUID, err = r.Text(); err != nil {
		return nil, err
	}
	return &res, nil
}

// VersionListReplyは、VersionListRequestへのリプライです。成功時のNumは送信したVersionListInformの数です。
type VersionListReply struct {
	IntReply
}

func (*VersionListReply) MessageKind() message.Kind { return message.KindReply }
func (*VersionListReply) MessageName() string { return NameVersionList }
func (m *VersionListReply) appendArguments(b *argument.Builder) { m.appendTo(b) }

func decodeVersionListReply(r *argument.Reader) (Message, error) {
	res, err := readIntReply(r)
	if err != nil {
		return nil, err
	}
	return &VersionListReply{res}, nil
}

// DisconnectInformは、クライアントを切断する直前に送信されるインフォームです。
type DisconnectInform struct {
	Message string
}

func (*DisconnectInform) MessageKind() message.Kind { return message.KindInform }
func (*DisconnectInform) MessageName() string { return NameDisconnect }
func (m *DisconnectInform) appendArguments(b *argument.Builder) { b.Text(m.Message) }

func decodeDisconnectInform(r *argument.Reader) (Message, error) {
	msg, err := r.Text()
	if err != nil {
		return nil, err
	}
	return &DisconnectInform{Message: msg}, nil
}

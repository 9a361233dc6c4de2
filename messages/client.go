package messages

import (
	"github.com/aptpod/katcp-go/argument"
	"github.com/aptpod/katcp-go/message"
)

// ClientListRequestは、接続中のクライアントの一覧を要求するリクエストです。
type ClientListRequest struct{}

func (*ClientListRequest) MessageKind() message.Kind { return message.KindRequest }
func (*ClientListRequest) MessageName() string { return NameClientList }
func (*ClientListRequest) appendArguments(*argument.Builder) {}

// ClientListInformは、接続中の1つのクライアントのアドレスです。
type ClientListInform struct {
	Address argument.Address
}

func (*ClientListInform) MessageKind() message.Kind { return message.KindInform }
func (*ClientListInform) MessageName() string { return NameClientList }
func (m *ClientListInform) appendArguments(b *argument.Builder) { b.Address(m.Address) }

func decodeClientListInform(r *argument.Reader) (Message, error) {
	addr, err := r.Address()
	if err != nil {
		return nil, err
	}
	return &ClientListInform{Address: addr}, nil
}

// ClientListReplyは、ClientListRequestへのリプライです。成功時のNumは送信したClientListInformの数です。
type ClientListReply struct {
	IntReply
}

func (*ClientListReply) MessageKind() message.Kind { return message.KindReply }
func (*ClientListReply) MessageName() string { return NameClientList }
func (m *ClientListReply) appendArguments(b *argument.Builder) { m.appendTo(b) }

func decodeClientListReply(r *argument.Reader) (Message, error) {
	res, err := readIntReply(r)
	if err != nil {
		return nil, err
	}
	return &ClientListReply{res}, nil
}

// ClientConnectedInformは、新しいクライアントの接続を他のクライアントへ通知するインフォームです。
type ClientConnectedInform struct {
	Message string
}

func (*ClientConnectedInform) MessageKind() message.Kind { return message.KindInform }
func (*ClientConnectedInform) MessageName() string { return NameClientConnected }
func (m *ClientConnectedInform) appendArguments(b *argument.Builder) { b.Text(m.Message) }

func decodeClientConnectedInform(r *argument.Reader) (Message, error) {
	msg, err := r.Text()
	if err != nil {
		return nil, err
	}
	return &ClientConnectedInform{Message: msg}, nil
}

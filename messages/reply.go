package messages

import (
	"github.com/aptpod/katcp-go/argument"
)

// GenericReplyは、成功時に値を持たないリプライの引数です。
//
// RetCodeが argument.RetCodeOK の場合、Messageは出力しません。ゼロ値は成功を表します。
type GenericReply struct {
	RetCode argument.RetCode
	Message string // 失敗時の説明
}

func (r GenericReply) appendTo(b *argument.Builder) {
	b.Discrete(argument.RetCodes, r.RetCode.String())
	if r.RetCode != argument.RetCodeOK {
		b.Text(r.Message)
	}
}

func readGenericReply(r *argument.Reader) (GenericReply, error) {
	code, err := readDiscrete[argument.RetCode](r, argument.RetCodes)
	if err != nil {
		return GenericReply{}, err
	}
	if code == argument.RetCodeOK {
		return GenericReply{}, nil
	}
	msg, err := r.Text()
	if err != nil {
		return GenericReply{}, err
	}
	return GenericReply{RetCode: code, Message: msg}, nil
}

// IntReplyは、成功時に件数を持つリプライの引数です。
//
// RetCodeが argument.RetCodeOK の場合はNumを、それ以外の場合はMessageを出力します。
type IntReply struct {
	RetCode argument.RetCode
	Num     uint32 // 成功時の件数
	Message string // 失敗時の説明
}

func (r IntReply) appendTo(b *argument.Builder) {
	b.Discrete(argument.RetCodes, r.RetCode.String())
	if r.RetCode == argument.RetCodeOK {
		b.Uint(uint64(r.Num))
	} else {
		b.Text(r.Message)
	}
}

func readIntReply(r *argument.Reader) (IntReply, error) {
	code, err := readDiscrete[argument.RetCode](r, argument.RetCodes)
	if err != nil {
		return IntReply{}, err
	}
	if code == argument.RetCodeOK {
		num, err := argument.Read(r, parseUint32)
		if err != nil {
			return IntReply{}, err
		}
		return IntReply{Num: num}, nil
	}
	msg, err := r.Text()
	if err != nil {
		return IntReply{}, err
	}
	return IntReply{RetCode: code, Message: msg}, nil
}

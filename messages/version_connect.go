package messages

import (
	"strings"

	"github.com/aptpod/katcp-go/argument"
	"github.com/aptpod/katcp-go/errors"
	"github.com/aptpod/katcp-go/message"
)

// version-connectの最初の引数です。
const (
	VersionConnectRoleProtocol = "katcp-protocol"
	VersionConnectRoleLibrary  = "katcp-library"
	VersionConnectRoleDevice   = "katcp-device"
)

const typeProtocolVersion = "protocol version"

// ProtocolFlagsは、デバイスが対応するプロトコルの機能の集合です。
type ProtocolFlags uint8

const (
	ProtocolFlagMultiClient  ProtocolFlags = 1 << iota // 複数のクライアントに対応します。
	ProtocolFlagMessageIDs                             // メッセージIDに対応します。
	ProtocolFlagTimeoutHints                           // リクエストのタイムアウトのヒントを提供します。
	ProtocolFlagBulkSampling                           // センサーのサンプリングの一括設定に対応します。
)

var protocolFlagLetters = []struct {
	flag   ProtocolFlags
	letter byte
}{
	{ProtocolFlagMultiClient, 'M'},
	{ProtocolFlagMessageIDs, 'I'},
	{ProtocolFlagTimeoutHints, 'T'},
	{ProtocolFlagBulkSampling, 'B'},
}

// Stringは、フラグの文字を `MITB` の順に連結して返却します。
func (f ProtocolFlags) String() string {
	var b strings.Builder
	for _, l := range protocolFlagLetters {
		if f&l.flag != 0 {
			b.WriteByte(l.letter)
		}
	}
	return b.String()
}

func parseProtocolFlags(s string) (ProtocolFlags, bool) {
	var res ProtocolFlags
	for i := 0; i < len(s); i++ {
		found := false
		for _, l := range protocolFlagLetters {
			if s[i] == l.letter {
				res |= l.flag
				found = true
				break
			}
		}
		if !found {
			return 0, false
		}
	}
	return res, true
}

// VersionConnectProtocolは、デバイスが実装するKATCPのバージョンを通知するインフォームです。
//
// 引数は `katcp-protocol MAJOR.MINOR[-FLAGS]` です。
type VersionConnectProtocol struct {
	Major uint32
	Minor uint32
	Flags ProtocolFlags
}

func (*VersionConnectProtocol) MessageKind() message.Kind { return message.KindInform }
func (*VersionConnectProtocol) MessageName() string { return NameVersionConnect }

func (m *VersionConnectProtocol) appendArguments(b *argument.Builder) {
	v := argument.FormatUint(uint64(m.Major)) + "." + argument.FormatUint(uint64(m.Minor))
	if m.Flags != 0 {
		v += "-" + m.Flags.String()
	}
	b.Text(VersionConnectRoleProtocol).Text(v)
}

func parseProtocolVersion(token string) (*VersionConnectProtocol, error) {
	mismatch := errors.TypeMismatchError{Type: typeProtocolVersion, Token: token}
	major, rest, ok := strings.Cut(token, ".")
	if !ok {
		return nil, mismatch
	}
	minor, flags, hasFlags := strings.Cut(rest, "-")
	var (
		res VersionConnectProtocol
		err error
	)
	if res.Major, err = parseUint32(major); err != nil {
		return nil, mismatch
	}
	if res.Minor, err = parseUint32(minor); err != nil {
		return nil, mismatch
	}
	if hasFlags {
		if res.Flags, ok = parseProtocolFlags(flags); !ok {
			return nil, mismatch
		}
	}
	return &res, nil
}

// VersionConnectLibraryは、デバイスが使用するKATCPライブラリを通知するインフォームです。
type VersionConnectLibrary struct {
	Version    string
	BuildState string
}

func (*VersionConnectLibrary) MessageKind() message.Kind { return message.KindInform }
func (*VersionConnectLibrary) MessageName() string { return NameVersionConnect }

func (m *VersionConnectLibrary) appendArguments(b *argument.Builder) {
	b.Text(VersionConnectRoleLibrary).Text(m.Version).Text(m.BuildState)
}

// VersionConnectDeviceは、デバイスのAPIバージョンとビルド状態を通知するインフォームです。
type VersionConnectDevice struct {
	APIVersion string
	Device     argument.Address
	BuildState string
}

func (*VersionConnectDevice) MessageKind() message.Kind { return message.KindInform }
func (*VersionConnectDevice) MessageName() string { return NameVersionConnect }

func (m *VersionConnectDevice) appendArguments(b *argument.Builder) {
	b.Text(VersionConnectRoleDevice).Text(m.APIVersion).Address(m.Device).Text(m.BuildState)
}

// VersionConnectCustomは、その他の役割または構成要素を通知するインフォームです。
//
// Roleに予約済みの役割を指定した場合、読み戻すと対応する型になります。
type VersionConnectCustom struct {
	Role    string
	Version string
	Info    *string
}

func (*VersionConnectCustom) MessageKind() message.Kind { return message.KindInform }
func (*VersionConnectCustom) MessageName() string { return NameVersionConnect }

func (m *VersionConnectCustom) appendArguments(b *argument.Builder) {
	b.Text(m.Role).Text(m.Version)
	appendOptionalText(b, m.Info)
}

func decodeVersionConnect(r *argument.Reader) (Message, error) {
	role, err := r.Text()
	if err != nil {
		return nil, err
	}
	switch role {
	case VersionConnectRoleProtocol:
		res, err := argument.Read(r, parseProtocolVersion)
		if err != nil {
			return nil, err
		}
		return res, nil
	case VersionConnectRoleLibrary:
		var res VersionConnectLibrary
		if res.Version, err = r.Text(); err != nil {
			return nil, err
		}
		if res.BuildState, err = r.Text(); err != nil {
			return nil, err
		}
		return &res, nil
	case VersionConnectRoleDevice:
		var res VersionConnectDevice
		if res.APIVersion, err = r.Text(); err != nil {
			return nil, err
		}
		if res.Device, err = r.Address(); err != nil {
			return nil, err
		}
		if res.BuildState, err = r.Text(); err != nil {
			return nil, err
		}
		return &res, nil
	default:
		res := VersionConnectCustom{Role: role}
		if res.Version, err = r.Text(); err != nil {
			return nil, err
		}
		if res.Info, err = readOptionalText(r); err != nil {
			return nil, err
		}
		return &res, nil
	}
}

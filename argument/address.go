package argument

import (
	"net/netip"
	"strconv"
	"strings"
)

// Addressは、アドレス型の引数です。
//
// テキスト表現は `ipv4[:port]` または `[ipv6][:port]` です。
type Address struct {
	Addr    netip.Addr
	Port    uint16
	HasPort bool
}

// NewAddressは、ポート付きのAddressを生成します。
func NewAddress(addr netip.Addr, port uint16) Address {
	return Address{Addr: addr, Port: port, HasPort: true}
}

func (a Address) String() string {
	var b strings.Builder
	if a.Addr.Is6() {
		b.WriteByte('[')
		b.WriteString(a.Addr.String())
		b.WriteByte(']')
	} else {
		b.WriteString(a.Addr.String())
	}
	if a.HasPort {
		b.WriteByte(':')
		b.WriteString(strconv.FormatUint(uint64(a.Port), 10))
	}
	return b.String()
}

// ParseAddressは、アドレスの引数を変換します。
func ParseAddress(token string) (Address, error) {
	host, port, hasPort, ok := splitAddress(token)
	if !ok {
		return Address{}, mismatch(TypeAddress, token)
	}
	addr, err := netip.ParseAddr(host)
	if err != nil {
		return Address{}, mismatch(TypeAddress, token)
	}
	bracketed := strings.HasPrefix(token, "[")
	if addr.Is6() != bracketed {
		return Address{}, mismatch(TypeAddress, token)
	}
	res := Address{Addr: addr}
	if hasPort {
		p, err := strconv.ParseUint(port, 10, 16)
		if err != nil || !unsignedPattern.MatchString(port) {
			return Address{}, mismatch(TypeAddress, token)
		}
		res.Port = uint16(p)
		res.HasPort = true
	}
	return res, nil
}

// FormatAddressは、アドレスを引数へ変換します。
func FormatAddress(v Address) string {
	return v.String()
}

func splitAddress(token string) (host, port string, hasPort, ok bool) {
	if strings.HasPrefix(token, "[") {
		end := strings.IndexByte(token, ']')
		if end < 0 {
			return "", "", false, false
		}
		host = token[1:end]
		rest := token[end+1:]
		if rest == "" {
			return host, "", false, true
		}
		if rest[0] != ':' {
			return "", "", false, false
		}
		return host, rest[1:], true, true
	}
	if i := strings.LastIndexByte(token, ':'); i >= 0 {
		return token[:i], token[i+1:], true, true
	}
	return token, "", false, true
}

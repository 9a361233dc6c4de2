package argument_test

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/aptpod/katcp-go/argument"
)

func TestParseAddress(t *testing.T) {
	tests := []struct {
		token string
		want  Address
	}{
		{token: "192.168.4.10:8081", want: NewAddress(netip.MustParseAddr("192.168.4.10"), 8081)},
		{token: "192.168.4.10", want: Address{Addr: netip.MustParseAddr("192.168.4.10")}},
		{token: "[::1]", want: Address{Addr: netip.MustParseAddr("::1")}},
		{token: "[::1]:7147", want: NewAddress(netip.MustParseAddr("::1"), 7147)},
		{token: "[2001:db8::8a2e:370:7334]:4000", want: NewAddress(netip.MustParseAddr("2001:db8::8a2e:370:7334"), 4000)},
		{token: "10.0.0.1:0", want: NewAddress(netip.MustParseAddr("10.0.0.1"), 0)},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseAddress(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.token, FormatAddress(got))
		})
	}
}

func TestParseAddress_error(t *testing.T) {
	for _, token := range []string{"", "localhost:80", "::1", "2001:db8::1:80", "[192.168.0.1]:80", "[::1", "[::1]80", "1.2.3.4:", "1.2.3.4:65536", "1.2.3.4:+80", "1.2.3:80"} {
		t.Run(token, func(t *testing.T) {
			_, err := ParseAddress(token)
			requireMismatch(t, err, TypeAddress, token)
		})
	}
}

func TestFormatAddress_normalizes(t *testing.T) {
	got, err := ParseAddress("[2001:0db8:85a3:0000:0000:8a2e:0370:7334]:4000")
	require.NoError(t, err)
	assert.Equal(t, "[2001:db8:85a3::8a2e:370:7334]:4000", got.String())
}

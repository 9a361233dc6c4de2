package argument_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/aptpod/katcp-go/argument"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		token string
		want  time.Time
	}{
		{token: "0", want: time.Unix(0, 0).UTC()},
		{token: "1234.5", want: time.Unix(1234, 500000000).UTC()},
		{token: "42069.042069", want: time.Unix(42069, 42069000).UTC()},
		{token: "1700000000.000000001", want: time.Unix(1700000000, 1).UTC()},
		{token: "1700000000.1234567891", want: time.Unix(1700000000, 123456789).UTC()},
		{token: "1700000000.000", want: time.Unix(1700000000, 0).UTC()},
		{token: "-1", want: time.Unix(-1, 0).UTC()},
		{token: "-0.5", want: time.Unix(0, -500000000).UTC()},
		{token: "-1.25", want: time.Unix(-2, 750000000).UTC()},
		{token: "-0", want: time.Unix(0, 0).UTC()},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseTimestamp(tt.token)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got))
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestParseTimestamp_error(t *testing.T) {
	for _, token := range []string{"", "-", "+1", "--1", "-.5", "1.", ".5", "1e9", "now", "1.2.3", "99999999999999999999"} {
		t.Run(token, func(t *testing.T) {
			_, err := ParseTimestamp(token)
			requireMismatch(t, err, TypeTimestamp, token)
		})
	}
}

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		in   time.Time
		want string
	}{
		{in: time.Unix(0, 0), want: "0"},
		{in: time.Unix(1234, 500000000), want: "1234.5"},
		{in: time.Unix(42069, 42069000), want: "42069.042069"},
		{in: time.Unix(1700000000, 1), want: "1700000000.000000001"},
		{in: time.Date(2023, 11, 14, 22, 13, 20, 0, time.FixedZone("JST", 9*60*60)), want: "1699967600"},
		{in: time.Unix(-2, 0), want: "-2"},
		{in: time.Unix(0, -500000000), want: "-0.5"},
		{in: time.Unix(-2, 750000000), want: "-1.25"},
		{in: time.Unix(-1, 999999999), want: "-0.000000001"},
		{in: time.Date(1969, 12, 31, 0, 0, 0, 100, time.UTC), want: "-86399.9999999"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := FormatTimestamp(tt.in)
			assert.Equal(t, tt.want, got)
			back, err := ParseTimestamp(got)
			require.NoError(t, err)
			assert.True(t, tt.in.Equal(back))
		})
	}
}

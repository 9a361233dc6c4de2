package argument_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/aptpod/katcp-go/argument"
)

func TestDiscreteSet(t *testing.T) {
	set := NewDiscreteSet("auto", "manual", "auto", "off")
	assert.Equal(t, []string{"auto", "manual", "off"}, set.Labels())
	assert.True(t, set.Contains("manual"))
	assert.False(t, set.Contains("Manual"))

	got, err := set.Parse("off")
	require.NoError(t, err)
	assert.Equal(t, "off", got)
	formatted, err := set.Format(got)
	require.NoError(t, err)
	assert.Equal(t, "off", formatted)

	i, err := set.Index("manual")
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	_, err = set.Parse("standby")
	requireMismatch(t, err, TypeDiscrete, "standby")
	_, err = set.Index("")
	requireMismatch(t, err, TypeDiscrete, "")
	_, err = set.Format("Auto")
	requireMismatch(t, err, TypeDiscrete, "Auto")

	labels := set.Labels()
	labels[0] = "changed"
	assert.True(t, set.Contains("auto"))
}

func TestRetCode(t *testing.T) {
	tests := []struct {
		token string
		want  RetCode
	}{
		{token: "ok", want: RetCodeOK},
		{token: "invalid", want: RetCodeInvalid},
		{token: "fail", want: RetCodeFail},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseRetCode(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.token, got.String())
		})
	}
	_, err := ParseRetCode("OK")
	requireMismatch(t, err, TypeDiscrete, "OK")
	assert.Equal(t, "9", RetCode(9).String())
}

func TestLogLevel(t *testing.T) {
	for i, label := range []string{"off", "fatal", "error", "warn", "info", "debug", "trace", "all"} {
		t.Run(label, func(t *testing.T) {
			got, err := ParseLogLevel(label)
			require.NoError(t, err)
			assert.Equal(t, LogLevel(i), got)
			assert.Equal(t, label, got.String())
		})
	}
	assert.True(t, LogLevelFatal < LogLevelInfo)
	_, err := ParseLogLevel("warning")
	requireMismatch(t, err, TypeDiscrete, "warning")
}

func TestSensorStatus(t *testing.T) {
	tests := []struct {
		status SensorStatus
		label  string
		valid  bool
	}{
		{status: SensorStatusUnknown, label: "unknown"},
		{status: SensorStatusNominal, label: "nominal", valid: true},
		{status: SensorStatusWarn, label: "warn", valid: true},
		{status: SensorStatusError, label: "error", valid: true},
		{status: SensorStatusFailure, label: "failure"},
		{status: SensorStatusUnreachable, label: "unreachable"},
		{status: SensorStatusInactive, label: "inactive"},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.label, tt.status.String())
			assert.Equal(t, tt.valid, tt.status.IsValid())
			got, err := ParseSensorStatus(tt.label)
			require.NoError(t, err)
			assert.Equal(t, tt.status, got)
		})
	}
}

func TestSensorType(t *testing.T) {
	for _, typ := range []string{TypeInteger, TypeFloat, TypeBoolean, TypeTimestamp, TypeDiscrete, TypeAddress, TypeString} {
		t.Run(typ, func(t *testing.T) {
			got, err := ParseSensorType(typ)
			require.NoError(t, err)
			assert.Equal(t, typ, got.String())
		})
	}
	_, err := ParseSensorType(TypeUnsigned)
	requireMismatch(t, err, TypeDiscrete, TypeUnsigned)
}

package messages_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aptpod/katcp-go/argument"
	"github.com/aptpod/katcp-go/errors"
	"github.com/aptpod/katcp-go/message"
	. "github.com/aptpod/katcp-go/messages"
)

func TestSensor_UpdateFrom(t *testing.T) {
	pressure := NewSensor("pump.pressure", argument.ParseFloat, argument.SensorStatusUnknown, time.Time{}, 0.0)
	update, err := Decode[*SensorValueInform](message.MustParse("#sensor-value 1427043968.954988 2 pump.speed nominal 1200 pump.pressure nominal 68.9"))
	require.NoError(t, err)

	ok, err := pressure.UpdateFrom(&update.SensorUpdates)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "pump.pressure", pressure.Name())
	assert.Equal(t, 68.9, pressure.Value())
	assert.Equal(t, argument.SensorStatusNominal, pressure.Status())
	assert.True(t, time.Unix(1427043968, 954988000).Equal(pressure.LastUpdated()))
	assert.True(t, pressure.Status().IsValid())

	ok, err = pressure.UpdateFrom(&SensorUpdates{Readings: []SensorReading{{Name: "pump.speed", Value: "1"}}})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 68.9, pressure.Value())
}

func TestSensor_UpdateFromReading_error(t *testing.T) {
	ts := time.Unix(1700000000, 0)
	tests := []struct {
		name    string
		reading SensorReading
		want    error
	}{
		{name: "other sensor", reading: SensorReading{Name: "pump.speed", Status: argument.SensorStatusWarn, Value: "3"}, want: errors.ErrUnexpectedMessage},
		{name: "bad value", reading: SensorReading{Name: "pump.enabled", Status: argument.SensorStatusWarn, Value: "yes"}, want: errors.ErrTypeMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enabled := NewSensor("pump.enabled", argument.ParseBool, argument.SensorStatusNominal, ts, true)
			err := enabled.UpdateFromReading(ts.Add(time.Second), tt.reading)
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "pump.enabled")

			assert.True(t, enabled.Value())
			assert.Equal(t, argument.SensorStatusNominal, enabled.Status())
			assert.True(t, ts.Equal(enabled.LastUpdated()))
		})
	}
}

func TestSensor_Update(t *testing.T) {
	ts := time.Unix(1700000000, 0)
	mode := NewSensor("mode", argument.ParseString, argument.SensorStatusUnknown, time.Time{}, "")
	mode.Update(argument.SensorStatusInactive, ts, "idle")
	assert.Equal(t, "idle", mode.Value())
	assert.Equal(t, argument.SensorStatusInactive, mode.Status())
	assert.False(t, mode.Status().IsValid())
	assert.True(t, ts.Equal(mode.LastUpdated()))
}

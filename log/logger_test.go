package log_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/aptpod/katcp-go/log"
)

func Test_genTrackID(t *testing.T) {
	for i := 0; i < 1000; i++ {
		require.Regexp(t, "^[0-9]{4}-[0-9]{4}-[0-9]{4}$", GenTrackID())
	}
}

func TestTrackStreamID(t *testing.T) {
	ctx := context.Background()
	require.Empty(t, TrackStreamID(ctx))
	ctx = WithTrackStreamID(ctx)
	require.Regexp(t, "^[0-9]{4}-[0-9]{4}-[0-9]{4}$", TrackStreamID(ctx))
}

func TestLineNumber(t *testing.T) {
	ctx := context.Background()
	_, ok := LineNumber(ctx)
	require.False(t, ok)

	ctx = WithLineNumber(ctx, 12)
	got, ok := LineNumber(ctx)
	require.True(t, ok)
	assert.Equal(t, uint64(12), got)

	ctx = WithLineNumber(ctx, 13)
	got, _ = LineNumber(ctx)
	assert.Equal(t, uint64(13), got)
}

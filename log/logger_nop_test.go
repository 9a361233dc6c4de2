package log_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	. "github.com/aptpod/katcp-go/log"
)

func Test_nopLogger(t *testing.T) {
	testee := NewNop()
	ctx := WithTrackStreamID(context.Background())
	require.NotPanics(t, func() { testee.Infof(ctx, "message") })
	require.NotPanics(t, func() { testee.Warnf(ctx, "message %d", 1) })
	require.NotPanics(t, func() { testee.Errorf(ctx, "message") })
	require.NotPanics(t, func() { testee.Debugf(ctx, "message") })
}

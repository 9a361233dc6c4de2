package log

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
)

type stdLogger struct {
	l *log.Logger
}

func (l *stdLogger) Infof(ctx context.Context, format string, args ...any) {
	outputLogf(ctx, l.l, "INFO", format, args...)
}

func (l *stdLogger) Warnf(ctx context.Context, format string, args ...any) {
	outputLogf(ctx, l.l, "WARN", format, args...)
}

func (l *stdLogger) Errorf(ctx context.Context, format string, args ...any) {
	outputLogf(ctx, l.l, "ERROR", format, args...)
}

func (l *stdLogger) Debugf(ctx context.Context, format string, args ...any) {
	outputLogf(ctx, l.l, "DEBUG", format, args...)
}

func outputLogf(ctx context.Context, l *log.Logger, prefix, format string, args ...any) {
	b := strings.Builder{}
	if sID := TrackStreamID(ctx); sID != "" {
		b.WriteString("track-stream-id:" + sID + "\t")
	}
	if line, ok := LineNumber(ctx); ok {
		b.WriteString("line:" + strconv.FormatUint(line, 10) + "\t")
	}
	b.WriteString(fmt.Sprintf(format, args...))
	l.Output(3, prefix+": "+b.String())
}

// NewStdは、`log` パッケージの標準ロガーを出力先とするロガーを返却します。
func NewStd() Logger {
	return &stdLogger{
		l: log.Default(),
	}
}

// NewStdWithは、与えられた `log.Logger` を出力先とするロガーを返却します。
func NewStdWith(l *log.Logger) Logger {
	return &stdLogger{
		l: l,
	}
}

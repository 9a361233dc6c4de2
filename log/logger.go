package log

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

func init() {
	rand.Seed(time.Now().UnixNano())
}

//go:generate mockgen -destination ./${GOPACKAGE}mock/${GOFILE} -package ${GOPACKAGE}mock -source ./${GOFILE}

// Loggerは、katcp-go内で使用するロガーインターフェースです。
type Logger interface {
	Infof(context.Context, string, ...interface{})
	Warnf(context.Context, string, ...interface{})
	Errorf(context.Context, string, ...interface{})
	Debugf(context.Context, string, ...interface{})
}

var (
	trackStreamIDKey = "trackStreamIDKey"
	lineNumberKey    = "lineNumberKey"
)

// WithTrackStreamIDは、新たにストリームIDを採番しコンテキストにセットします。
//
// ストリームIDはデコーダーを生成したタイミングでセットします。
// ここで設定されたストリームIDは常にログ出力します。
func WithTrackStreamID(ctx context.Context) context.Context {
	return context.WithValue(ctx, &trackStreamIDKey, genTrackID())
}

// TrackStreamIDは、コンテキストにセットされたストリームIDを取得します。
func TrackStreamID(ctx context.Context) string {
	v, ok := ctx.Value(&trackStreamIDKey).(string)
	if !ok {
		return ""
	}
	return v
}

// WithLineNumberは、読み込み中の行番号をコンテキストにセットします。
//
// 行番号は1から始まります。
func WithLineNumber(ctx context.Context, line uint64) context.Context {
	return context.WithValue(ctx, &lineNumberKey, line)
}

// LineNumberは、コンテキストにセットされた行番号を取得します。
func LineNumber(ctx context.Context) (uint64, bool) {
	v, ok := ctx.Value(&lineNumberKey).(uint64)
	return v, ok
}

func genTrackID() string {
	return fmt.Sprintf("%04d-%04d-%04d", rand.Int31n(10000), rand.Int31n(10000), rand.Int31n(10000))
}

package argument

// LogLevelは、デバイスのログレベルです。
//
// 値が小さいほど重要度が高く、LogLevelOffは出力しないことを、LogLevelAllはすべてを出力することを表します。
type LogLevel uint8

const (
	LogLevelOff   LogLevel = iota // ログを出力しません。
	LogLevelFatal                 // デバイスが回復不能な障害を起こしたことを表します。
	LogLevelError                 // 処理が完了しなかったことを表します。デバイスは機能を縮退して動作を続けることがあります。
	LogLevelWarn                  // 機能の縮退につながる可能性のある状態を検出したことを表します。
	LogLevelInfo                  // 粗い粒度の処理の流れを表します。
	LogLevelDebug                 // 詳細な解析やデバッグのための出力です。
	LogLevelTrace                 // 関数呼び出しの流れを含む、非常に詳細な出力です。
	LogLevelAll                   // すべてのログを出力します。
)

// LogLevelsは、LogLevelのラベルの集合です。
var LogLevels = NewDiscreteSet("off", "fatal", "error", "warn", "info", "debug", "trace", "all")

func (l LogLevel) String() string {
	return discreteString(LogLevels, uint8(l))
}

// ParseLogLevelは、引数からLogLevelを変換します。
func ParseLogLevel(token string) (LogLevel, error) {
	i, err := LogLevels.Index(token)
	return LogLevel(i), err
}

package argument

// SensorStatusは、センサーの状態です。
type SensorStatus uint8

const (
	SensorStatusUnknown     SensorStatus = iota // 初期化中で、まだ値が得られていないことを表します。
	SensorStatusNominal                         // 値が想定された動作範囲内であることを表します。
	SensorStatusWarn                            // 値が想定された動作範囲外であることを表します。
	SensorStatusError                           // 値がデバイスの重大な状態を示していることを表します。
	SensorStatusFailure                         // 値の取得に失敗し、保守なしには回復しない見込みであることを表します。
	SensorStatusUnreachable                     // プロキシ先のKATCPデバイスのセンサーに到達できないことを表します。
	SensorStatusInactive                        // センサーが無効であることを表します。障害ではありません。
)

// SensorStatusesは、SensorStatusのラベルの集合です。
var SensorStatuses = NewDiscreteSet("unknown", "nominal", "warn", "error", "failure", "unreachable", "inactive")

func (s SensorStatus) String() string {
	return discreteString(SensorStatuses, uint8(s))
}

// IsValidは、センサーの値が有効な状態の場合にtrueを返却します。
func (s SensorStatus) IsValid() bool {
	switch s {
	case SensorStatusNominal, SensorStatusWarn, SensorStatusError:
		return true
	default:
		return false
	}
}

// ParseSensorStatusは、引数からSensorStatusを変換します。
func ParseSensorStatus(token string) (SensorStatus, error) {
	i, err := SensorStatuses.Index(token)
	return SensorStatus(i), err
}

// SensorTypeは、センサーの値の型です。引数の型に対応します。
type SensorType uint8

const (
	SensorTypeInteger SensorType = iota
	SensorTypeFloat
	SensorTypeBoolean
	SensorTypeTimestamp
	SensorTypeDiscrete
	SensorTypeAddress
	SensorTypeString
)

// SensorTypesは、SensorTypeのラベルの集合です。
var SensorTypes = NewDiscreteSet(TypeInteger, TypeFloat, TypeBoolean, TypeTimestamp, TypeDiscrete, TypeAddress, TypeString)

func (t SensorType) String() string {
	return discreteString(SensorTypes, uint8(t))
}

// ParseSensorTypeは、引数からSensorTypeを変換します。
func ParseSensorType(token string) (SensorType, error) {
	i, err := SensorTypes.Index(token)
	return SensorType(i), err
}

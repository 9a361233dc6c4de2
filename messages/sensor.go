package messages

import (
	"time"

	"github.com/aptpod/katcp-go/argument"
	"github.com/aptpod/katcp-go/errors"
	"github.com/aptpod/katcp-go/message"
)

// SensorReadingは、1つのセンサーの読み取り値です。
//
// 値の型はセンサーごとに異なるため、Valueは変換前のテキストです。 Sensor.UpdateFromReading で型付きの値へ変換します。
type SensorReading struct {
	Name   string
	Status argument.SensorStatus
	Value  string
}

// SensorUpdatesは、同時刻に読み取った複数のセンサーの値です。
//
// 引数は `TIMESTAMP COUNT (NAME STATUS VALUE)...` です。
type SensorUpdates struct {
	Timestamp time.Time
	Readings  []SensorReading
}

func (u *SensorUpdates) appendTo(b *argument.Builder) {
	b.Timestamp(u.Timestamp).Uint(uint64(len(u.Readings)))
	for _, r := range u.Readings {
		b.Text(r.Name).Discrete(argument.SensorStatuses, r.Status.String()).Text(r.Value)
	}
}

func readSensorUpdates(r *argument.Reader) (SensorUpdates, error) {
	var (
		res SensorUpdates
		err error
	)
	if res.Timestamp, err = r.Timestamp(); err != nil {
		return SensorUpdates{}, err
	}
	n, err := argument.Read(r, parseUint32)
	if err != nil {
		return SensorUpdates{}, err
	}
	for i := uint32(0); i < n; i++ {
		var reading SensorReading
		if reading.Name, err = r.Text(); err != nil {
			return SensorUpdates{}, err
		}
		if reading.Status, err = readDiscrete[argument.SensorStatus](r, argument.SensorStatuses); err != nil {
			return SensorUpdates{}, err
		}
		if reading.Value, err = r.Text(); err != nil {
			return SensorUpdates{}, err
		}
		res.Readings = append(res.Readings, reading)
	}
	return res, nil
}

// SensorListRequestは、センサーの定義を要求するリクエストです。Nameがnilの場合はすべてのセンサーを要求します。
type SensorListRequest struct {
	Name *string
}

func (*SensorListRequest) MessageKind() message.Kind { return message.KindRequest }
func (*SensorListRequest) MessageName() string { return NameSensorList }
func (m *SensorListRequest) appendArguments(b *argument.Builder) { appendOptionalText(b, m.Name) }

func decodeSensorListRequest(r *argument.Reader) (Message, error) {
	name, err := readOptionalText(r)
	if err != nil {
		return nil, err
	}
	return &SensorListRequest{Name: name}, nil
}

// SensorListInformは、1つのセンサーの定義です。
//
// Paramsは型ごとの追加の引数です。整数型と浮動小数点数型では最小値と最大値、離散型ではラベルの一覧です。
type SensorListInform struct {
	Name        string
	Description string
	Units       string
	Type        argument.SensorType
	Params      []string
}

func (*SensorListInform) MessageKind() message.Kind { return message.KindInform }
func (*SensorListInform) MessageName() string { return NameSensorList }

func (m *SensorListInform) appendArguments(b *argument.Builder) {
	b.Text(m.Name).Text(m.Description).Text(m.Units).Discrete(argument.SensorTypes, m.Type.String())
	for _, p := range m.Params {
		b.Text(p)
	}
}

func decodeSensorListInform(r *argument.Reader) (Message, error) {
	var (
		res SensorListInform
		err error
	)
	if res.Name, err = r.Text(); err != nil {
		return nil, err
	}
	if res.Description, err = r.Text(); err != nil {
		return nil, err
	}
	if res.Units, err = r.Text(); err != nil {
		return nil, err
	}
	if res.Type, err = readDiscrete[argument.SensorType](r, argument.SensorTypes); err != nil {
		return nil, err
	}
	param := argument.ParseString
	switch res.Type {
	case argument.SensorTypeInteger:
		param = validated(argument.ParseInt)
	case argument.SensorTypeFloat:
		param = validated(argument.ParseFloat)
	}
	for r.Len() > 0 {
		p, err := argument.Read(r, param)
		if err != nil {
			return nil, err
		}
		res.Params = append(res.Params, p)
	}
	return &res, nil
}

// validatedは、parseで検証した引数をテキストのまま返却する関数を返却します。
func validated[T any](parse func(string) (T, error)) func(string) (string, error) {
	return func(token string) (string, error) {
		if _, err := parse(token); err != nil {
			return "", err
		}
		return token, nil
	}
}

// SensorListReplyは、SensorListRequestへのリプライです。成功時のNumは送信したSensorListInformの数です。
type SensorListReply struct {
	IntReply
}

func (*SensorListReply) MessageKind() message.Kind { return message.KindReply }
func (*SensorListReply) MessageName() string { return NameSensorList }
func (m *SensorListReply) appendArguments(b *argument.Builder) { m.appendTo(b) }

func decodeSensorListReply(r *argument.Reader) (Message, error) {
	res, err := readIntReply(r)
	if err != nil {
		return nil, err
	}
	return &SensorListReply{res}, nil
}

// SensorValueRequestは、センサーの現在値を要求するリクエストです。Nameがnilの場合はすべてのセンサーを要求します。
type SensorValueRequest struct {
	Name *string
}

func (*SensorValueRequest) MessageKind() message.Kind { return message.KindRequest }
func (*SensorValueRequest) MessageName() string { return NameSensorValue }
func (m *SensorValueRequest) appendArguments(b *argument.Builder) { appendOptionalText(b, m.Name) }

func decodeSensorValueRequest(r *argument.Reader) (Message, error) {
	name, err := readOptionalText(r)
	if err != nil {
		return nil, err
	}
	return &SensorValueRequest{Name: name}, nil
}

// SensorValueInformは、SensorValueRequestに応じて送信されるセンサーの値です。
type SensorValueInform struct {
	SensorUpdates
}

func (*SensorValueInform) MessageKind() message.Kind { return message.KindInform }
func (*SensorValueInform) MessageName() string { return NameSensorValue }
func (m *SensorValueInform) appendArguments(b *argument.Builder) { m.appendTo(b) }

func decodeSensorValueInform(r *argument.Reader) (Message, error) {
	res, err := readSensorUpdates(r)
	if err != nil {
		return nil, err
	}
	return &SensorValueInform{res}, nil
}

// SensorValueReplyは、SensorValueRequestへのリプライです。成功時のNumは送信したSensorValueInformの数です。
type SensorValueReply struct {
	IntReply
}

func (*SensorValueReply) MessageKind() message.Kind { return message.KindReply }
func (*SensorValueReply) MessageName() string { return NameSensorValue }
func (m *SensorValueReply) appendArguments(b *argument.Builder) { m.appendTo(b) }

func decodeSensorValueReply(r *argument.Reader) (Message, error) {
	res, err := readIntReply(r)
	if err != nil {
		return nil, err
	}
	return &SensorValueReply{res}, nil
}

// SensorStatusInformは、サンプリングの設定に従って非同期に送信されるセンサーの値です。
type SensorStatusInform struct {
	SensorUpdates
}

func (*SensorStatusInform) MessageKind() message.Kind { return message.KindInform }
func (*SensorStatusInform) MessageName() string { return NameSensorStatus }
func (m *SensorStatusInform) appendArguments(b *argument.Builder) { m.appendTo(b) }

func decodeSensorStatusInform(r *argument.Reader) (Message, error) {
	res, err := readSensorUpdates(r)
	if err != nil {
		return nil, err
	}
	return &SensorStatusInform{res}, nil
}

// Sensorは、型Tの値を持つセンサーの最新の状態です。
type Sensor[T any] struct {
	name      string
	status    argument.SensorStatus
	timestamp time.Time
	value     T
	parse     func(string) (T, error)
}

// NewSensorは、初期状態がstatus、timestamp、valueのSensorを生成します。
//
// parseは読み取り値のテキストを型Tへ変換する関数です。 argument.ParseFloat などを指定します。
func NewSensor[T any](name string, parse func(string) (T, error), status argument.SensorStatus, timestamp time.Time, value T) *Sensor[T] {
	return &Sensor[T]{
		name:      name,
		status:    status,
		timestamp: timestamp,
		value:     value,
		parse:     parse,
	}
}

func (s *Sensor[T]) Name() string {
	return s.name
}

func (s *Sensor[T]) Status() argument.SensorStatus {
	return s.status
}

// LastUpdatedは、最後に値を更新した時刻を返却します。
func (s *Sensor[T]) LastUpdated() time.Time {
	return s.timestamp
}

func (s *Sensor[T]) Value() T {
	return s.value
}

// Updateは、センサーの状態を更新します。
func (s *Sensor[T]) Update(status argument.SensorStatus, timestamp time.Time, value T) {
	s.status = status
	s.timestamp = timestamp
	s.value = value
}

// UpdateFromReadingは、読み取り値でセンサーの状態を更新します。
//
// 名前が異なる読み取り値の場合は errors.ErrUnexpectedMessage を、値を変換できない場合は errors.ErrTypeMismatch を返却し、状態は変更しません。
func (s *Sensor[T]) UpdateFromReading(timestamp time.Time, reading SensorReading) error {
	if reading.Name != s.name {
		return errors.Errorf("sensor %s: reading of %s: %w", s.name, reading.Name, errors.ErrUnexpectedMessage)
	}
	v, err := s.parse(reading.Value)
	if err != nil {
		return errors.Errorf("sensor %s: %w", s.name, err)
	}
	s.Update(reading.Status, timestamp, v)
	return nil
}

// UpdateFromは、updatesに含まれる同じ名前の読み取り値でセンサーの状態を更新します。
//
// 該当する読み取り値が無い場合はfalseを返却します。
func (s *Sensor[T]) UpdateFrom(updates *SensorUpdates) (bool, error) {
	for _, r := range updates.Readings {
		if r.Name == s.name {
			return true, s.UpdateFromReading(updates.Timestamp, r)
		}
	}
	return false, nil
}

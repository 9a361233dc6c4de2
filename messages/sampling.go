package messages

import (
	"github.com/aptpod/katcp-go/argument"
	"github.com/aptpod/katcp-go/message"
)

// SamplingKindは、センサーのサンプリング方式です。
type SamplingKind uint8

const (
	SamplingAuto             SamplingKind = iota // デバイスが選択した方式で通知します。
	SamplingNone                                 // 通知しません。
	SamplingPeriod                               // 一定の周期で通知します。
	SamplingEvent                                // 値または状態が変化した時に通知します。
	SamplingDifferential                         // 値が閾値以上変化した時、または状態が変化した時に通知します。
	SamplingEventRate                            // SamplingEvent に最短と最長の間隔を加えた方式です。
	SamplingDifferentialRate                     // SamplingDifferential に最短と最長の間隔を加えた方式です。
)

// SamplingKindsは、SamplingKindのラベルの集合です。
var SamplingKinds = argument.NewDiscreteSet("auto", "none", "period", "event", "differential", "event-rate", "differential-rate")

func (k SamplingKind) String() string {
	if labels := SamplingKinds.Labels(); int(k) < len(labels) {
		return labels[k]
	}
	return argument.FormatUint(uint64(k))
}

// SamplingStrategyは、センサーのサンプリングの設定です。
//
// Kindが使用しないフィールドは出力せず、読み出し時はゼロ値になります。周期の単位は秒です。
type SamplingStrategy struct {
	Kind           SamplingKind
	Period         float64 // SamplingPeriod
	Difference     float64 // SamplingDifferential, SamplingDifferentialRate
	ShortestPeriod float64 // SamplingEventRate, SamplingDifferentialRate
	LongestPeriod  float64 // SamplingEventRate, SamplingDifferentialRate
}

func (s *SamplingStrategy) appendTo(b *argument.Builder) {
	b.Discrete(SamplingKinds, s.Kind.String())
	switch s.Kind {
	case SamplingPeriod:
		b.Float(s.Period)
	case SamplingDifferential:
		b.Float(s.Difference)
	case SamplingEventRate:
		b.Float(s.ShortestPeriod).Float(s.LongestPeriod)
	case SamplingDifferentialRate:
		b.Float(s.Difference).Float(s.ShortestPeriod).Float(s.LongestPeriod)
	}
}

func readSamplingStrategy(r *argument.Reader) (SamplingStrategy, error) {
	var (
		res SamplingStrategy
		err error
	)
	if res.Kind, err = readDiscrete[SamplingKind](r, SamplingKinds); err != nil {
		return SamplingStrategy{}, err
	}
	var fields []*float64
	switch res.Kind {
	case SamplingPeriod:
		fields = []*float64{&res.Period}
	case SamplingDifferential:
		fields = []*float64{&res.Difference}
	case SamplingEventRate:
		fields = []*float64{&res.ShortestPeriod, &res.LongestPeriod}
	case SamplingDifferentialRate:
		fields = []*float64{&res.Difference, &res.ShortestPeriod, &res.LongestPeriod}
	}
	for _, f := range fields {
		if *f, err = r.Float(); err != nil {
			return SamplingStrategy{}, err
		}
	}
	return res, nil
}

// SensorSamplingRequestは、センサーのサンプリングの設定を要求するリクエストです。
//
// Namesはカンマ区切りのセンサー名です。Strategyがnilの場合は現在の設定を問い合わせます。
type SensorSamplingRequest struct {
	Names    string
	Strategy *SamplingStrategy
}

func (*SensorSamplingRequest) MessageKind() message.Kind { return message.KindRequest }
func (*SensorSamplingRequest) MessageName() string { return NameSensorSampling }

func (m *SensorSamplingRequest) appendArguments(b *argument.Builder) {
	b.Text(m.Names)
	if m.Strategy != nil {
		m.Strategy.appendTo(b)
	}
}

func decodeSensorSamplingRequest(r *argument.Reader) (Message, error) {
	names, err := r.Text()
	if err != nil {
		return nil, err
	}
	res := &SensorSamplingRequest{Names: names}
	if r.Len() == 0 {
		return res, nil
	}
	strategy, err := readSamplingStrategy(r)
	if err != nil {
		return nil, err
	}
	res.Strategy = &strategy
	return res, nil
}

// SensorSamplingReplyは、SensorSamplingRequestへのリプライです。
//
// RetCodeが argument.RetCodeOK の場合はNamesとStrategyを、それ以外の場合はMessageを出力します。
type SensorSamplingReply struct {
	RetCode  argument.RetCode
	Message  string // 失敗時の説明
	Names    string
	Strategy SamplingStrategy
}

func (*SensorSamplingReply) MessageKind() message.Kind { return message.KindReply }
func (*SensorSamplingReply) MessageName() string { return NameSensorSampling }

func (m *SensorSamplingReply) appendArguments(b *argument.Builder) {
	b.Discrete(argument.RetCodes, m.RetCode.String())
	if m.RetCode != argument.RetCodeOK {
		b.Text(m.Message)
		return
	}
	b.Text(m.Names)
	m.Strategy.appendTo(b)
}

func decodeSensorSamplingReply(r *argument.Reader) (Message, error) {
	var (
		res SensorSamplingReply
		err error
	)
	if res.RetCode, err = readDiscrete[argument.RetCode](r, argument.RetCodes); err != nil {
		return nil, err
	}
	if res.RetCode != argument.RetCodeOK {
		if res.Message, err = r.Text(); err != nil {
			return nil, err
		}
		return &res, nil
	}
	if res.Names, err = r.Text(); err != nil {
		return nil, err
	}
	if res.Strategy, err = readSamplingStrategy(r); err != nil {
		return nil, err
	}
	return &res, nil
}

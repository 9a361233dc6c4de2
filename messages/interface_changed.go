package messages

import (
	"github.com/aptpod/katcp-go/argument"
	"github.com/aptpod/katcp-go/message"
)

// InterfaceChangeは、変更されたインタフェースの対象です。
type InterfaceChange uint8

const (
	InterfaceChangeSensorList  InterfaceChange = iota // センサーの一覧全体です。
	InterfaceChangeRequestList                        // リクエストの一覧全体です。
	InterfaceChangeSensor                             // 1つのセンサーです。
	InterfaceChangeRequest                            // 1つのリクエストです。
)

// InterfaceChangesは、InterfaceChangeのラベルの集合です。
var InterfaceChanges = argument.NewDiscreteSet("sensor-list", "request-list", "sensor", "request")

func (c InterfaceChange) String() string {
	if labels := InterfaceChanges.Labels(); int(c) < len(labels) {
		return labels[c]
	}
	return argument.FormatUint(uint64(c))
}

// ChangeActionは、個別のセンサーまたはリクエストに対する変更の内容です。
type ChangeAction uint8

const (
	ChangeActionAdded ChangeAction = iota
	ChangeActionRemoved
	ChangeActionModified
)

// ChangeActionsは、ChangeActionのラベルの集合です。
var ChangeActions = argument.NewDiscreteSet("added", "removed", "modified")

func (a ChangeAction) String() string {
	if labels := ChangeActions.Labels(); int(a) < len(labels) {
		return labels[a]
	}
	return argument.FormatUint(uint64(a))
}

// InterfaceChangedInformは、デバイスのインタフェースが変更されたことを通知するインフォームです。
//
// NameとActionは、Changeが InterfaceChangeSensor または InterfaceChangeRequest の場合のみ使用します。
type InterfaceChangedInform struct {
	Change InterfaceChange
	Name   string
	Action ChangeAction
}

func (*InterfaceChangedInform) MessageKind() message.Kind { return message.KindInform }
func (*InterfaceChangedInform) MessageName() string { return NameInterfaceChanged }

func (m *InterfaceChangedInform) hasTarget() bool {
	return m.Change == InterfaceChangeSensor || m.Change == InterfaceChangeRequest
}

func (m *InterfaceChangedInform) appendArguments(b *argument.Builder) {
	b.Discrete(InterfaceChanges, m.Change.String())
	if m.hasTarget() {
		b.Text(m.Name).Discrete(ChangeActions, m.Action.String())
	}
}

func decodeInterfaceChangedInform(r *argument.Reader) (Message, error) {
	var (
		res InterfaceChangedInform
		err error
	)
	if res.Change, err = readDiscrete[InterfaceChange](r, InterfaceChanges); err != nil {
		return nil, err
	}
	if !res.hasTarget() {
		return &res, nil
	}
	if res.Name, err = r.Text(); err != nil {
		return nil, err
	}
	if res.Action, err = readDiscrete[ChangeAction](r, ChangeActions); err != nil {
		return nil, err
	}
	return &res, nil
}

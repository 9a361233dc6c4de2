package message

import "sync/atomic"

// IDGeneratorは、リクエストに付与するメッセージIDのジェネレータです。
//
// 返却する値は1からMaxIDの範囲で、MaxIDの次は1に戻ります。
// 払い出したIDとリプライの対応付けは行いません。ゼロ値は1から払い出します。
type IDGenerator struct {
	current atomic.Uint32
}

// NewIDGeneratorは、ジェネレータを返却します。
//
// initialには、 `Next` で最初に返却する値を指定します。範囲外の値は1として扱います。
func NewIDGenerator(initial uint32) *IDGenerator {
	if initial == 0 || initial > MaxID {
		initial = 1
	}
	g := &IDGenerator{}
	g.current.Store(initial)
	return g
}

// Nextは、次の値を返却します。
func (g *IDGenerator) Next() uint32 {
	for {
		cur := g.current.Load()
		ret := cur
		if ret == 0 {
			ret = 1
		}
		next := ret + 1
		if next > MaxID {
			next = 1
		}
		if g.current.CompareAndSwap(cur, next) {
			return ret
		}
	}
}

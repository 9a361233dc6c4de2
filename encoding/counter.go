package encoding

import (
	"sync"

	"github.com/aptpod/katcp-go/message"
)

type counter struct {
	sync.RWMutex
	byteCount    map[message.Kind]uint64
	messageCount map[message.Kind]uint64
}

func newCounter() *counter {
	return &counter{
		byteCount:    map[message.Kind]uint64{},
		messageCount: map[message.Kind]uint64{},
	}
}

func (c *counter) Add(kind message.Kind, bytes int) {
	c.Lock()
	defer c.Unlock()
	c.messageCount[kind]++
	c.byteCount[kind] += uint64(bytes)
}

func (c *counter) Count() *Count {
	c.RLock()
	defer c.RUnlock()
	res := &Count{
		ByteCount:    make(map[message.Kind]uint64, len(c.byteCount)),
		MessageCount: make(map[message.Kind]uint64, len(c.messageCount)),
	}
	for k, v := range c.byteCount {
		res.ByteCount[k] = v
	}
	for k, v := range c.messageCount {
		res.MessageCount[k] = v
	}
	return res
}

// Countは、メッセージ種別ごとの送受信のバイト数とメッセージ数を表します。
type Count struct {
	ByteCount    map[message.Kind]uint64
	MessageCount map[message.Kind]uint64
}

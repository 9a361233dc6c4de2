package encoding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	. "github.com/aptpod/katcp-go/encoding"
	"github.com/aptpod/katcp-go/message"
)

func Test_counter_Add(t *testing.T) {
	c := NewCounter()
	c.Add(message.KindRequest, 10)
	assert.Equal(t, &Count{
		ByteCount: map[message.Kind]uint64{
			message.KindRequest: 10,
		},
		MessageCount: map[message.Kind]uint64{
			message.KindRequest: 1,
		},
	}, c.Count())
	c.Add(message.KindRequest, 10)
	assert.Equal(t, &Count{
		ByteCount: map[message.Kind]uint64{
			message.KindRequest: 20,
		},
		MessageCount: map[message.Kind]uint64{
			message.KindRequest: 2,
		},
	}, c.Count())
	c.Add(message.KindInform, 10)
	assert.Equal(t, &Count{
		ByteCount: map[message.Kind]uint64{
			message.KindRequest: 20,
			message.KindInform:  10,
		},
		MessageCount: map[message.Kind]uint64{
			message.KindRequest: 2,
			message.KindInform:  1,
		},
	}, c.Count())
}

func Test_counter_Count_isolation(t *testing.T) {
	c := NewCounter()
	c.Add(message.KindReply, 5)
	got := c.Count()
	got.MessageCount[message.KindReply] = 100
	assert.Equal(t, uint64(1), c.Count().MessageCount[message.KindReply])
}

func Test_counter_parallel(t *testing.T) {
	c := NewCounter()
	var eg errgroup.Group
	for i := 0; i < 10; i++ {
		eg.Go(func() error {
			for j := 0; j < 100; j++ {
				c.Add(message.KindInform, 2)
				c.Count()
			}
			return nil
		})
	}
	require.NoError(t, eg.Wait())
	assert.Equal(t, uint64(1000), c.Count().MessageCount[message.KindInform])
	assert.Equal(t, uint64(2000), c.Count().ByteCount[message.KindInform])
}

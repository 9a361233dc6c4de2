package message_test

import (
	"fmt"

	"github.com/AlekSi/pointer"

	"github.com/aptpod/katcp-go/message"
)

func ExampleParse() {
	msg, _, err := message.Parse("?set-unknown-paramer[123] 6.1 true my-attribute")
	if err != nil {
		panic(err)
	}
	id, _ := msg.ID()
	fmt.Println(msg.Kind(), msg.Name(), id, msg.Arguments())

	// Output:
	// request set-unknown-paramer 123 [6.1 true my-attribute]
}

func ExampleNew() {
	msg, err := message.New(message.KindReply, "set-rate", pointer.ToUint32(7), "fail", "Hardware did not respond.")
	if err != nil {
		panic(err)
	}
	fmt.Println(msg)

	// Output:
	// !set-rate[7] fail Hardware\_did\_not\_respond.
}

/*
Package katcpはKATCPプロトコルのメッセージモデル実装パッケージです。

ここではメッセージのパースから応答の送信までの一連の流れについて説明します。

# Parse

テキストの1行がKATCPの1メッセージです。 message.Parse は先頭の1メッセージをパースし、残りの入力を返却します。

	msg, rest, err := message.Parse("?sensor-value[7] drive.temp\n#log warn ...\n")
	if err != nil {
		if pe, ok := errors.AsParseError(err); ok {
			log.Printf("%v at %d", pe.Kind, pe.Pos)
		}
		return err
	}
	id, _ := msg.ID()
	log.Println(msg.Kind(), msg.Name(), id, msg.Arguments(), rest)

# Build And Render

message.New は名前とIDを検証してメッセージを生成します。引数の型変換は argument パッケージを使用します。

	args := new(argument.Builder).
		Discrete(argument.RetCodes, argument.RetCodeOK.String()).
		Float(21.5).
		Arguments()
	reply, err := message.New(message.KindReply, "sensor-value", pointer.ToUint32(7), args...)
	if err != nil {
		return err
	}
	fmt.Println(reply) // !sensor-value[7] ok 21.5

# Typed Messages

コアメッセージは messages パッケージの型で扱えます。 messages.FromMessage は種別と名前から型を選択します。

	m, err := messages.FromMessage(msg)
	if err != nil {
		return err
	}
	if _, ok := m.(*messages.WatchdogRequest); ok {
		reply, err := messages.ToMessage(&messages.WatchdogReply{}, pointer.ToUint32(id))
		...
	}

# Stream

ストリームからの読み書きは encoding パッケージの Decoder と Encoder を使用します。

	dec := encoding.NewDecoder(&encoding.DecoderConfig{
		Reader:        conn,
		Logger:        log.NewStd(),
		SkipMalformed: true,
	})
	enc := encoding.NewEncoder(&encoding.EncoderConfig{Writer: conn})
	ctx := log.WithTrackStreamID(context.Background())
	for {
		m, err := dec.Decode(ctx)
		if err != nil {
			return err
		}
		...
	}

サンプルは examples ディレクトリを参照してください。
*/
package katcp

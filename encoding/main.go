/*
Package encoding は、 KATCP メッセージを行単位でストリームへ読み書きするコーデックをまとめたパッケージです。

1行が1メッセージに対応します。書き込みでは各メッセージの末尾に LF を付与し、
読み込みでは CRLF, LF, CR のいずれも行の終端として受け付けます。
*/
package encoding

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"sync/atomic"

	"github.com/aptpod/katcp-go/errors"
	"github.com/aptpod/katcp-go/log"
	"github.com/aptpod/katcp-go/message"
)

// EncoderConfigは、エンコーダーについての設定です。
type EncoderConfig struct {
	// Writerは、メッセージの書き込み先です。
	Writer io.Writer

	// MaxMessageSizeは、1メッセージの最大サイズです。終端の改行は含みません。
	//
	// 0の場合は制限しません。
	MaxMessageSize Size
}

// NewEncoderは、メッセージを行単位でWriterへ書き出すエンコーダーを生成します。
func NewEncoder(c *EncoderConfig) *Encoder {
	return &Encoder{
		w:              c.Writer,
		maxMessageSize: c.MaxMessageSize,
		txCounter:      newCounter(),
	}
}

// Encoderは、メッセージを1行ずつ書き出すエンコーダーです。
//
// Encodeを複数のgoroutineから同時に呼び出すことはできません。
type Encoder struct {
	w              io.Writer
	maxMessageSize Size

	tx        uint64
	txCounter *counter
}

// Encodeは、メッセージをテキストへ変換し、改行を付けて書き出します。
//
// メッセージの内容は検証しません。
func (e *Encoder) Encode(m *message.Message) error {
	b := m.AppendText(nil)
	if err := validateMessageSize(e.maxMessageSize, Size(len(b))); err != nil {
		return err
	}
	b = append(b, '\n')
	wrote, err := e.w.Write(b)
	if err != nil {
		return err
	}
	atomic.AddUint64(&e.tx, 1)
	e.txCounter.Add(m.Kind(), wrote)
	return nil
}

// TxCountは、書き込んだメッセージのCountを返却します。
func (e *Encoder) TxCount() *Count {
	return e.txCounter.Count()
}

// TxMessageCounterValueは、書き込んだメッセージの数を返却します。
func (e *Encoder) TxMessageCounterValue() uint64 {
	return atomic.LoadUint64(&e.tx)
}

// DecoderConfigは、デコーダーについての設定です。
type DecoderConfig struct {
	// Readerは、メッセージの読み込み元です。
	Reader io.Reader

	// Loggerは、読み飛ばしたメッセージを出力するロガーです。
	//
	// nilの場合は何も出力しません。
	Logger log.Logger

	// MaxMessageSizeは、1行の最大サイズです。終端の改行は含みません。
	//
	// 0の場合は制限しません。
	MaxMessageSize Size

	// SkipMalformedがtrueの場合、パースできない行はエラーとせずにログ出力して読み飛ばします。
	SkipMalformed bool
}

// NewDecoderは、Readerから行単位でメッセージを読み込むデコーダーを生成します。
func NewDecoder(c *DecoderConfig) *Decoder {
	logger := c.Logger
	if logger == nil {
		logger = log.NewNop()
	}
	return &Decoder{
		r:              bufio.NewReader(c.Reader),
		logger:         logger,
		maxMessageSize: c.MaxMessageSize,
		skipMalformed:  c.SkipMalformed,
		rxCounter:      newCounter(),
	}
}

// Decoderは、メッセージを1行ずつ読み込むデコーダーです。
//
// Decodeを複数のgoroutineから同時に呼び出すことはできません。
type Decoder struct {
	r              *bufio.Reader
	logger         log.Logger
	maxMessageSize Size
	skipMalformed  bool

	pending string
	line    uint64

	rx        uint64
	rxCounter *counter
}

// Decodeは、次のメッセージを読み込みます。
//
// 空行は読み飛ばします。パースできない行は errors.ParseError を含むエラーを返却し、
// その行の残りは破棄します。MaxMessageSizeを超える行は次の LF まで破棄し、
// errors.ErrMessageTooLarge を含むエラーを返却します。
// どちらの場合も、続けてDecodeを呼び出すと次の行から読み込みます。
//
// ストリームの終端では io.EOF を返却します。
func (d *Decoder) Decode(ctx context.Context) (*message.Message, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if d.pending == "" {
			line, err := d.readLine()
			if err != nil {
				return nil, err
			}
			d.pending = line
		}

		text := strings.TrimLeft(d.pending, "\r\n")
		if text == "" {
			d.pending = ""
			continue
		}
		m, rest, err := message.Parse(text)
		if err != nil {
			d.pending = ""
			if !d.skipMalformed {
				return nil, errors.Errorf("line %d: %w", d.line, err)
			}
			d.logger.Warnf(log.WithLineNumber(ctx, d.line), "skip malformed message: %v", err)
			continue
		}
		d.pending = rest
		atomic.AddUint64(&d.rx, 1)
		d.rxCounter.Add(m.Kind(), len(text)-len(rest))
		return m, nil
	}
}

func (d *Decoder) readLine() (string, error) {
	var buf []byte
	for {
		frag, err := d.r.ReadSlice('\n')
		buf = append(buf, frag...)
		if err == nil || err == io.EOF {
			if len(buf) == 0 {
				return "", io.EOF
			}
			d.line++
			if err := validateMessageSize(d.maxMessageSize, Size(len(strings.TrimRight(string(buf), "\r\n")))); err != nil {
				return "", errors.Errorf("line %d: %w", d.line, err)
			}
			return string(buf), nil
		}
		if !errors.Is(err, bufio.ErrBufferFull) {
			return "", err
		}
		// 末尾のCRは行の終端として数えません。
		if err := validateMessageSize(d.maxMessageSize, Size(len(bytes.TrimRight(buf, "\r")))); err != nil {
			d.line++
			if derr := d.discardLine(); derr != nil && derr != io.EOF {
				return "", derr
			}
			return "", errors.Errorf("line %d: %w", d.line, err)
		}
	}
}

func (d *Decoder) discardLine() error {
	for {
		_, err := d.r.ReadSlice('\n')
		if !errors.Is(err, bufio.ErrBufferFull) {
			return err
		}
	}
}

// RxCountは、読み込んだメッセージのCountを返却します。
func (d *Decoder) RxCount() *Count {
	return d.rxCounter.Count()
}

// RxMessageCounterValueは、読み込んだメッセージの数を返却します。
func (d *Decoder) RxMessageCounterValue() uint64 {
	return atomic.LoadUint64(&d.rx)
}

package gpx

import (
	"encoding/xml"
	"io"
)

// TokenReader is the forward-only token stream the reader consumes. It
// wraps an encoding/xml Decoder with single-token lookahead: Peek returns
// the next token without advancing, Next consumes it. Tokens are copied on
// read, since the decoder reuses its internal buffers.
//
// There is exactly one owner of the stream position at any time; consumers
// receive the TokenReader through the parse context and must not retain it
// past their own return.
type TokenReader struct {
	dec     *xml.Decoder
	peeked  xml.Token
	peekErr error
	have    bool
}

// NewTokenReader returns a TokenReader over the XML document in r.
func NewTokenReader(r io.Reader) *TokenReader {
	return &TokenReader{dec: xml.NewDecoder(r)}
}

// Peek returns the next token without consuming it. At end of input the
// error is io.EOF. Repeated calls return the same token.
func (t *TokenReader) Peek() (xml.Token, error) {
	if !t.have {
		t.peeked, t.peekErr = t.read()
		t.have = true
	}
	return t.peeked, t.peekErr
}

// Next consumes and returns the next token. At end of input the error is
// io.EOF.
func (t *TokenReader) Next() (xml.Token, error) {
	if t.have {
		t.have = false
		return t.peeked, t.peekErr
	}
	return t.read()
}

func (t *TokenReader) read() (xml.Token, error) {
	tok, err := t.dec.Token()
	if err != nil {
		return nil, err
	}
	return xml.CopyToken(tok), nil
}

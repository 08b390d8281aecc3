// Package strbuf implements the growable, append-only byte buffer used by
// the lexer to assemble identifiers, string literals and diagnostic text.
//
// The growth policy (double from a floor of 8) mirrors the read-ahead buffer
// management in the teacher lexer's State.fill (github.com/db47h/lex,
// lex.go), generalized from a fixed-size array used purely for input
// look-ahead to an append-only output buffer that also supports formatted
// writes.
package strbuf

import "fmt"

const minCap = 8

// Buffer is a growable byte buffer. The zero value is an empty, ready to use
// buffer.
type Buffer struct {
	data []byte
}

// New returns an empty Buffer.
func New() *Buffer {
	return &Buffer{}
}

func grow(n int) int {
	c := minCap
	for c < n {
		c *= 2
	}
	return c
}

func (b *Buffer) growBy(n int) {
	need := len(b.data) + n
	if need <= cap(b.data) {
		return
	}
	nc := grow(need)
	nd := make([]byte, len(b.data), nc)
	copy(nd, b.data)
	b.data = nd
}

// Write appends a single byte.
func (b *Buffer) Write(c byte) {
	b.growBy(1)
	b.data = append(b.data, c)
}

// Append appends the first n bytes of p.
func (b *Buffer) Append(p []byte, n int) {
	b.growBy(n)
	b.data = append(b.data, p[:n]...)
}

// AppendString appends s in its entirety.
func (b *Buffer) AppendString(s string) {
	b.Append([]byte(s), len(s))
}

// Printf formats according to fmt and appends the result, growing the
// buffer as needed. Unlike the C original's vsnprintf-and-retry dance, Go's
// fmt.Sprintf already sizes its own result; Printf keeps the same "format
// then copy into the growable buffer" shape as the original, so Buffer
// itself grows by the same doubling policy as Write and Append.
func (b *Buffer) Printf(format string, args ...any) {
	s := fmt.Sprintf(format, args...)
	b.AppendString(s)
}

// Body returns the buffer's contents. The caller must not retain the slice
// across further mutation of b and must append a terminating NUL itself
// (via Write(0)) if a C-string is required.
func (b *Buffer) Body() []byte {
	return b.data
}

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int {
	return len(b.data)
}

var escapeByte = map[byte]byte{
	'"':  '"',
	'\\': '\\',
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
}

// QuoteChar appends the C-escaped representation of a single byte, without
// surrounding quotes.
func QuoteChar(buf *Buffer, c byte) {
	if e, ok := escapeByte[c]; ok {
		buf.Write('\\')
		buf.Write(e)
		return
	}
	if c >= 0x20 && c < 0x7f {
		buf.Write(c)
		return
	}
	buf.Printf("\\x%02x", c)
}

// QuoteCStringLen appends the double-quoted, C-escaped representation of
// s[:n].
func QuoteCStringLen(buf *Buffer, s []byte, n int) {
	buf.Write('"')
	for i := 0; i < n; i++ {
		QuoteChar(buf, s[i])
	}
	buf.Write('"')
}

// QuoteCString appends the double-quoted, C-escaped representation of s.
func QuoteCString(buf *Buffer, s []byte) {
	QuoteCStringLen(buf, s, len(s))
}

package pptoken

import (
	"fmt"

	"github.com/cc11-lang/cc11/internal/charstream"
	"github.com/cc11-lang/cc11/internal/container/strbuf"
)

// ReadHeaderFileName reads a header-name per spec.md §4.5: callable only
// right after an "include" pp-token, when the token buffer is empty, so
// that "<" and "/" are read verbatim instead of as punctuators. It skips
// leading whitespace, then reads to the matching '"' or '>' with no escape
// interpretation. *isSystem reports which delimiter was used.
func (l *Lexer) ReadHeaderFileName(isSystem *bool) (string, error) {
	if t, ok := l.Bufs.Pop(); ok {
		l.Bufs.Unget(t)
		return "", fmt.Errorf("pptoken: ReadHeaderFileName called with a pending buffered token")
	}
	var c int32
	for {
		c = l.Chars.Readc()
		if !isSpace(c) {
			break
		}
	}
	var close_ int32
	switch c {
	case '"':
		*isSystem = false
		close_ = '"'
	case '<':
		*isSystem = true
		close_ = '>'
	default:
		l.Chars.Unreadc(c)
		return "", fmt.Errorf("pptoken: expected a header name, found %q", rune(c))
	}
	buf := strbuf.New()
	for {
		c = l.Chars.Readc()
		switch c {
		case close_:
			if buf.Len() == 0 {
				return "", fmt.Errorf("pptoken: empty header name")
			}
			return string(buf.Body()), nil
		case charstream.EOF, '\n':
			l.Chars.Unreadc(c)
			return "", fmt.Errorf("pptoken: unterminated header name")
		default:
			buf.Write(byte(c))
		}
	}
}

package pptoken

import (
	"unicode/utf8"

	"github.com/cc11-lang/cc11/internal/charstream"
	"github.com/cc11-lang/cc11/internal/container/strbuf"
	"github.com/cc11-lang/cc11/token"
)

// readUCN reads exactly n hex digits (4 for \u, 8 for \U) and validates the
// resulting code point per spec.md §4.5: not a UTF-16 surrogate, and either
// >= U+00A0 or one of "$@`".
//
// Grounded on github.com/db47h/lex/state (state.go: readDigits), adapted
// from Go rune-literal \u/\U handling to C11's UCN validity rules.
func (l *Lexer) readUCN(pos token.Position, n int) (rune, bool) {
	var v int32
	for i := 0; i < n; i++ {
		c := l.Chars.Readc()
		d, ok := hexVal(c)
		if !ok {
			l.Diag.FatalAt(pos, "invalid universal character name")
			return 0, false
		}
		v = v<<4 | d
	}
	r := rune(v)
	if r >= 0xD800 && r <= 0xDFFF {
		l.Diag.FatalAt(pos, "universal character name refers to a surrogate")
		return 0, false
	}
	if r < 0x00A0 && r != '$' && r != '@' && r != '`' {
		l.Diag.FatalAt(pos, "universal character name is not a valid identifier character")
		return 0, false
	}
	return r, true
}

func writeUTF8(buf *strbuf.Buffer, r rune) {
	var tmp [utf8.UTFMax]byte
	n := utf8.EncodeRune(tmp[:], r)
	buf.Append(tmp[:], n)
}

// escResult classifies the outcome of readEscapedChar.
type escResult int

const (
	escChar   escResult = iota // the character of an unknown escape, passed through as a raw byte
	escByte                    // a raw byte value (octal/hex escapes are byte-oriented, not code points)
	escRune                    // a validated Unicode code point from \u/\U
	escUnterm                  // hit newline or EOF, or an invalid escape: caller decides
)

// readEscapedChar decodes one character or escape sequence following a
// backslash already consumed by the caller. \' and \" are literal escapes
// whichever delimiter the enclosing literal uses.
func (l *Lexer) readEscapedChar(pos token.Position) (r rune, kind escResult) {
	c := l.Chars.Readc()
	switch c {
	case '\'', '"', '?', '\\':
		return c, escByte
	case 'a':
		return '\a', escByte
	case 'b':
		return '\b', escByte
	case 'f':
		return '\f', escByte
	case 'n':
		return '\n', escByte
	case 'r':
		return '\r', escByte
	case 't':
		return '\t', escByte
	case 'v':
		return '\v', escByte
	case 'e':
		return 0x1B, escByte // GNU extension
	case 'x':
		return l.readHexEscape(pos)
	case 'u':
		v, ok := l.readUCN(pos, 4)
		if !ok {
			return utf8.RuneError, escUnterm
		}
		return v, escRune
	case 'U':
		v, ok := l.readUCN(pos, 8)
		if !ok {
			return utf8.RuneError, escUnterm
		}
		return v, escRune
	case '0', '1', '2', '3', '4', '5', '6', '7':
		return l.readOctalEscape(c), escByte
	case charstream.EOF, '\n':
		l.Chars.Unreadc(c)
		return 0, escUnterm
	default:
		l.Diag.Warnf(pos, "unknown escape sequence")
		return c, escChar
	}
}

func (l *Lexer) readHexEscape(pos token.Position) (rune, escResult) {
	c := l.Chars.Readc()
	d, ok := hexVal(c)
	if !ok {
		l.Diag.FatalAt(pos, "\\x used with no following hex digits")
		return 0, escUnterm
	}
	v := d
	for {
		c = l.Chars.Readc()
		d, ok = hexVal(c)
		if !ok {
			l.Chars.Unreadc(c)
			break
		}
		v = v<<4 | d
	}
	return rune(v & 0xFF), escByte
}

func (l *Lexer) readOctalEscape(first int32) rune {
	v := first - '0'
	for i := 0; i < 2; i++ {
		c := l.Chars.Readc()
		if c < '0' || c > '7' {
			l.Chars.Unreadc(c)
			break
		}
		v = v<<3 | (c - '0')
	}
	return rune(v & 0xFF)
}

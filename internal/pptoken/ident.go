package pptoken

import (
	"github.com/cc11-lang/cc11/internal/container/strbuf"
	"github.com/cc11-lang/cc11/token"
)

// scanIdentTail consumes identifier-continuation bytes (and any number of
// embedded \u/\U escapes, decoded and re-encoded as UTF-8) into buf, which
// must already hold the identifier's first character.
func (l *Lexer) scanIdentTail(buf *strbuf.Buffer) {
	for {
		pos := l.Chars.Pos()
		c := l.Chars.Readc()
		switch {
		case isIdentCont(c):
			buf.Write(byte(c))
		case c == '\\':
			n := l.Chars.Readc()
			if n != 'u' && n != 'U' {
				l.Chars.Unreadc(n)
				l.Chars.Unreadc('\\')
				return
			}
			width := 4
			if n == 'U' {
				width = 8
			}
			r, ok := l.readUCN(pos, width)
			if !ok {
				return
			}
			writeUTF8(buf, r)
		default:
			l.Chars.Unreadc(c)
			return
		}
	}
}

// scanPrefixedIdentOrLiteral handles the L/U/u/u8 encoding prefixes of
// spec.md §4.5: each is tried as the prefix of a string or character
// literal and, failing that, falls back to an ordinary identifier.
func (l *Lexer) scanPrefixedIdentOrLiteral(first int32, pos token.Position) token.Token {
	buf := strbuf.New()
	buf.Write(byte(first))

	switch first {
	case 'L':
		return l.tryLiteralOrIdent(buf, token.WCHAR, pos)
	case 'U':
		return l.tryLiteralOrIdent(buf, token.CHAR32, pos)
	case 'u':
		n := l.Chars.Readc()
		if n == '8' {
			n2 := l.Chars.Readc()
			if n2 == '"' || n2 == '\'' {
				return l.scanStringOrChar(byte(n2), token.UTF8, pos)
			}
			l.Chars.Unreadc(n2)
			buf.Write('8')
			l.scanIdentTail(buf)
			return l.mkIdent(buf, pos)
		}
		l.Chars.Unreadc(n)
		return l.tryLiteralOrIdent(buf, token.CHAR16, pos)
	}
	panic("unreachable")
}

func (l *Lexer) tryLiteralOrIdent(buf *strbuf.Buffer, enc token.Encoding, pos token.Position) token.Token {
	n := l.Chars.Readc()
	if n == '"' || n == '\'' {
		return l.scanStringOrChar(byte(n), enc, pos)
	}
	l.Chars.Unreadc(n)
	l.scanIdentTail(buf)
	return l.mkIdent(buf, pos)
}

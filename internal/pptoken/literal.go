package pptoken

import (
	"github.com/cc11-lang/cc11/internal/charstream"
	"github.com/cc11-lang/cc11/internal/container/strbuf"
	"github.com/cc11-lang/cc11/token"
)

// scanStringOrChar dispatches to the string or character literal scanner
// based on the already-consumed opening delimiter.
func (l *Lexer) scanStringOrChar(quote byte, enc token.Encoding, pos token.Position) token.Token {
	if quote == '"' {
		return l.scanString(enc, pos)
	}
	return l.scanChar(enc, pos)
}

// mkString builds a STRING token, per the Count bookkeeping in mk/mkPunct.
func (l *Lexer) mkString(str []byte, n int, enc token.Encoding, pos token.Position) token.Token {
	t := token.Token{Kind: token.STRING, Str: str, Len: n, Enc: enc,
		File: pos.File, Line: pos.Line, Col: pos.Column}
	if f := l.Chars.CurrentFile(); f != nil {
		t.Count = f.NextCount()
	}
	return t
}

// mkChar builds a CHAR token, per the Count bookkeeping in mk/mkPunct.
func (l *Lexer) mkChar(val rune, enc token.Encoding, pos token.Position) token.Token {
	t := token.Token{Kind: token.CHAR, Ch: val, Enc: enc,
		File: pos.File, Line: pos.Line, Col: pos.Column}
	if f := l.Chars.CurrentFile(); f != nil {
		t.Count = f.NextCount()
	}
	return t
}

func (l *Lexer) scanString(enc token.Encoding, pos token.Position) token.Token {
	buf := strbuf.New()
	for {
		c := l.Chars.Readc()
		switch c {
		case '"':
			n := buf.Len()
			buf.Write(0)
			return l.mkString(buf.Body(), n, enc, pos)
		case charstream.EOF, '\n':
			l.Chars.Unreadc(c)
			l.Diag.FatalAt(pos, "unterminated string literal")
			return token.Token{}
		case '\\':
			escPos := l.Chars.Pos()
			r, kind := l.readEscapedChar(escPos)
			switch kind {
			case escUnterm:
				l.Diag.FatalAt(pos, "unterminated string literal")
				return token.Token{}
			case escRune:
				writeUTF8(buf, r)
			default:
				buf.Write(byte(r))
			}
		default:
			buf.Write(byte(c))
		}
	}
}

func (l *Lexer) scanChar(enc token.Encoding, pos token.Position) token.Token {
	c := l.Chars.Readc()
	var val rune
	switch c {
	case '\'':
		l.Diag.FatalAt(pos, "empty character constant")
		return token.Token{}
	case charstream.EOF, '\n':
		l.Chars.Unreadc(c)
		l.Diag.FatalAt(pos, "unterminated character constant")
		return token.Token{}
	case '\\':
		escPos := l.Chars.Pos()
		r, kind := l.readEscapedChar(escPos)
		if kind == escUnterm {
			l.Diag.FatalAt(pos, "unterminated character constant")
			return token.Token{}
		}
		val = r
	default:
		val = rune(c)
	}
	n := l.Chars.Readc()
	if n != '\'' {
		l.Chars.Unreadc(n)
		l.Diag.FatalAt(pos, "unterminated character constant")
		return token.Token{}
	}
	if enc == token.NONE {
		val = rune(byte(val))
	}
	return l.mkChar(val, enc, pos)
}

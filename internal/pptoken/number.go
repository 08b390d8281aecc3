package pptoken

import (
	"github.com/cc11-lang/cc11/internal/container/strbuf"
	"github.com/cc11-lang/cc11/token"
)

// scanNumber scans a pp-number per spec.md §4.5's relaxed grammar: the
// lexer does not validate that the result is a legal C11 constant, it only
// recognizes the maximal munch of digits, letters, '.', and a '+'/'-'
// immediately following an 'e', 'E', 'p' or 'P'. first is the digit already
// consumed by the caller.
func (l *Lexer) scanNumber(first int32, pos token.Position) token.Token {
	buf := strbuf.New()
	buf.Write(byte(first))
	l.scanNumberTail(buf)
	return l.mkNumber(buf, pos)
}

// scanDotOrNumber is called right after a '.' is read. A following digit
// starts a pp-number ("." is a valid pp-number lead character); two more
// dots form the "..." ellipsis punctuator; anything else is the lone "."
// punctuator.
func (l *Lexer) scanDotOrNumber(pos token.Position) token.Token {
	c := l.Chars.Readc()
	if isDigit(c) {
		buf := strbuf.New()
		buf.Write('.')
		buf.Write(byte(c))
		l.scanNumberTail(buf)
		return l.mkNumber(buf, pos)
	}
	if c == '.' {
		n := l.Chars.Readc()
		if n == '.' {
			return l.mkPunct(token.ELLIPSIS, pos)
		}
		l.Chars.Unreadc(n)
		l.Chars.Unreadc('.')
		return l.mkPunct('.', pos)
	}
	l.Chars.Unreadc(c)
	return l.mkPunct('.', pos)
}

func (l *Lexer) scanNumberTail(buf *strbuf.Buffer) {
	for {
		c := l.Chars.Readc()
		switch {
		case c == '.' || isDigit(c) || isAlpha(c) || c == '_':
			buf.Write(byte(c))
			if c == 'e' || c == 'E' || c == 'p' || c == 'P' {
				n := l.Chars.Readc()
				if n == '+' || n == '-' {
					buf.Write(byte(n))
				} else {
					l.Chars.Unreadc(n)
				}
			}
		case c >= 0x80:
			buf.Write(byte(c))
		default:
			l.Chars.Unreadc(c)
			return
		}
	}
}

func (l *Lexer) mkNumber(buf *strbuf.Buffer, pos token.Position) token.Token {
	t := token.Token{Kind: token.NUMBER, Num: string(buf.Body()), File: pos.File, Line: pos.Line, Col: pos.Column}
	if f := l.Chars.CurrentFile(); f != nil {
		t.Count = f.NextCount()
	}
	return t
}

package pptoken

import (
	"github.com/cc11-lang/cc11/internal/charstream"
	"github.com/cc11-lang/cc11/token"
)

// scanSpace consumes a run of contiguous whitespace and comments (the first
// whitespace byte, or the first comment, has already been identified by the
// caller) and returns a single SPACE token for the whole run.
func (l *Lexer) scanSpace(pos token.Position) token.Token {
	for {
		cpos := l.Chars.Pos()
		c := l.Chars.Readc()
		switch {
		case isSpace(c):
			continue
		case c == '/':
			if l.tryStartComment(cpos) {
				continue
			}
			l.Chars.Unreadc(c)
			return l.mk(token.SPACE, pos)
		default:
			l.Chars.Unreadc(c)
			return l.mk(token.SPACE, pos)
		}
	}
}

// tryStartComment is called right after reading a '/'. If it is the start
// of a line or block comment, the whole comment is consumed and true is
// returned; otherwise the lookahead byte is pushed back and false is
// returned, leaving the '/' itself to be read again as a punctuator.
func (l *Lexer) tryStartComment(pos token.Position) bool {
	n := l.Chars.Readc()
	switch n {
	case '/':
		l.skipLineComment()
		return true
	case '*':
		l.skipBlockComment(pos)
		return true
	default:
		l.Chars.Unreadc(n)
		return false
	}
}

func (l *Lexer) skipLineComment() {
	for {
		c := l.Chars.Readc()
		if c == '\n' || c == charstream.EOF {
			if c == '\n' {
				l.Chars.Unreadc(c)
			}
			return
		}
	}
}

// skipBlockComment consumes up to and including the closing "*/". An EOF
// reached inside the comment is fatal, reported at the comment's opening
// position per spec.md §4.5.
func (l *Lexer) skipBlockComment(start token.Position) {
	for {
		c := l.Chars.Readc()
		switch c {
		case charstream.EOF:
			l.Diag.FatalAt(start, "unterminated comment")
			return
		case '*':
			n := l.Chars.Readc()
			if n == '/' {
				return
			}
			l.Chars.Unreadc(n)
		}
	}
}

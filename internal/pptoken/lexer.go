// Package pptoken implements the C11 preprocessing-token lexer: the middle
// layer of the pipeline, consuming canonicalized, spliced characters from
// internal/charstream and producing token.Token values consumed (through
// internal/tokenbuf) by the preprocessor.
//
// The state-as-function dispatch style is grounded on the teacher lexer's
// StateFn design (github.com/db47h/lex, doc.go) generalized into a single
// big switch (doReadToken) because, unlike the teacher's target-language-
// agnostic engine, the C11 pp-token grammar is fixed and small enough to
// not need a pluggable state machine; the escape-sequence decoding
// (read/validate hex, octal and UCN escapes) is grounded on
// github.com/db47h/lex/state (state.go: readChar/readDigits), adapted from
// Go-literal escapes to the C11 escape set in spec.md §4.5.
package pptoken

import (
	"github.com/cc11-lang/cc11/internal/charstream"
	"github.com/cc11-lang/cc11/internal/container/strbuf"
	"github.com/cc11-lang/cc11/internal/diag"
	"github.com/cc11-lang/cc11/internal/tokenbuf"
	"github.com/cc11-lang/cc11/token"
)

// Lexer ties a character stream stack, a token buffer stack and a
// diagnostics reporter together to produce pp-tokens.
type Lexer struct {
	Chars *charstream.Stack
	Bufs  *tokenbuf.Stack
	Diag  *diag.Reporter
}

// New returns a Lexer reading from chars, buffering through bufs and
// reporting diagnostics through d. d's Source is wired to chars' current
// line so fatal errors and warnings render a caret under the source. The
// wired Source ignores the position it is given and returns the text read
// so far of the active stream's current line.
func New(chars *charstream.Stack, bufs *tokenbuf.Stack, d *diag.Reporter) *Lexer {
	d.Source = func(token.Position) string { return chars.CurrentLineText() }
	return &Lexer{Chars: chars, Bufs: bufs, Diag: d}
}

// Lex returns the next token, implementing spec.md §4.5's main loop:
// pushback first, then EOF-isolation for stashed token-buffer levels, then
// a fresh scan with bol/space bookkeeping.
func (l *Lexer) Lex() token.Token {
	if t, ok := l.Bufs.Pop(); ok {
		return t
	}
	if l.Bufs.Depth() > 1 {
		return l.mk(token.EOF, l.Chars.Pos())
	}
	bol := l.Chars.Pos().Column == 1
	var space bool
	var tok token.Token
	for {
		tok = l.doReadToken()
		if tok.Kind != token.SPACE {
			break
		}
		space = true
	}
	tok.BOL = bol
	tok.Space = space
	return tok
}

// LexString lexes exactly one token from s, stashing the character stream
// so the main pipeline is undisturbed. Trailing non-whitespace after the
// token is an error.
func (l *Lexer) LexString(name, s string) token.Token {
	l.Chars.Stash(charstream.NewStringStream(name, []byte(s)))
	defer l.Chars.Unstash()
	t := l.doReadToken()
	for {
		sp := l.doReadToken()
		if sp.Kind == token.SPACE {
			continue
		}
		if sp.Kind != token.EOF && sp.Kind != token.NEWLINE {
			l.Diag.FatalAt(sp.Pos(), "unexpected trailing token after %q", t.String())
		}
		break
	}
	return t
}

// mk builds a marker token (SPACE, NEWLINE, EOF) at pos with its file/count
// set from the active stream.
func (l *Lexer) mk(kind token.Kind, pos token.Position) token.Token {
	t := token.Token{Kind: kind, File: pos.File, Line: pos.Line, Col: pos.Column}
	if f := l.Chars.CurrentFile(); f != nil {
		t.Count = f.NextCount()
	}
	return t
}

// doReadToken marks the current position, reads one character, and
// dispatches per the table in spec.md §4.5.
func (l *Lexer) doReadToken() token.Token {
	pos := l.Chars.Pos()
	c := l.Chars.Readc()

	switch {
	case c == charstream.EOF:
		return l.mk(token.EOF, pos)
	case c == '\n':
		return l.mk(token.NEWLINE, pos)
	case isSpace(c):
		return l.scanSpace(pos)
	case c == '/':
		if l.tryStartComment(pos) {
			return l.scanSpace(pos)
		}
		return l.scanPunctOrInvalid(c, pos)
	case c == '"' || c == '\'':
		return l.scanStringOrChar(byte(c), token.NONE, pos)
	case c == 'L' || c == 'U' || c == 'u':
		return l.scanPrefixedIdentOrLiteral(c, pos)
	case isIdentStart(c):
		buf := strbuf.New()
		buf.Write(byte(c))
		l.scanIdentTail(buf)
		return l.mkIdent(buf, pos)
	case isDigit(c):
		return l.scanNumber(c, pos)
	case c == '.':
		return l.scanDotOrNumber(pos)
	default:
		return l.scanPunctOrInvalid(c, pos)
	}
}

func (l *Lexer) mkIdent(buf *strbuf.Buffer, pos token.Position) token.Token {
	t := token.Token{Kind: token.IDENT, Ident: string(buf.Body()), File: pos.File, Line: pos.Line, Col: pos.Column}
	if f := l.Chars.CurrentFile(); f != nil {
		t.Count = f.NextCount()
	}
	return t
}

func isSpace(c int32) bool {
	return c == ' ' || c == '\t' || c == '\v' || c == '\f' || c == '\r'
}

func isDigit(c int32) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c int32) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentStart(c int32) bool {
	return isAlpha(c) || c == '_' || c == '$' || c >= 0x80
}

func isIdentCont(c int32) bool {
	return isIdentStart(c) || isDigit(c)
}

func hexVal(c int32) (int32, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

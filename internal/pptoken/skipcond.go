package pptoken

import (
	"github.com/cc11-lang/cc11/internal/charstream"
	"github.com/cc11-lang/cc11/internal/container/strbuf"
	"github.com/cc11-lang/cc11/token"
)

// SkipCondIncl fast-forwards past a conditionally-excluded #if/#ifdef/#ifndef
// region without tokenizing its contents, per spec.md §4.5's Non-goal that
// skipped material is never lexed into pp-tokens. It is called with the
// character stream positioned right after the opening directive's newline.
//
// Per spec.md §4.5, the matching #else, #elif or #endif line at the same
// nesting depth is not itself skipped material: its '#' and directive name
// are lexed as real tokens and pushed back onto the token buffer (bol
// marked on the '#'), so the preprocessor resumes exactly where a plain
// Lex() call would have left it, and can go on to read the rest of that
// line (e.g. #elif's controlling expression) normally. SkipCondIncl itself
// returns the directive's name ("else", "elif" or "endif"), or "" if EOF
// was reached first.
//
// Only enough of the directive grammar is recognized to track nesting:
// string and character literals are scanned (respecting backslash escapes)
// and comments are skipped, purely so that a '#', quote or comment marker
// appearing inside one of those does not confuse the scanner. Directives
// nested inside the skipped region itself (matched depth > 0) remain
// unlexed, consumed only to track nesting.
func (l *Lexer) SkipCondIncl() string {
	depth := 0
	bol := true
	for {
		pos := l.Chars.Pos()
		c := l.Chars.Readc()
		switch c {
		case charstream.EOF:
			return ""
		case '\n':
			bol = true
		case ' ', '\t', '\v', '\f', '\r':
			// bol unchanged
		case '/':
			n := l.Chars.Readc()
			switch n {
			case '/':
				l.skipLineComment()
			case '*':
				l.skipBlockComment(pos)
			default:
				l.Chars.Unreadc(n)
			}
			bol = false
		case '"', '\'':
			l.skipLiteralRaw(c)
			bol = false
		case '#':
			if !bol {
				continue
			}
			name, stop := l.skipDirectiveLine(&depth, pos)
			if stop {
				return name
			}
			bol = true
		default:
			bol = false
		}
	}
}

// skipLiteralRaw consumes a string or character literal without decoding
// its escapes, stopping after the matching closing delimiter (or at
// newline/EOF if unterminated).
func (l *Lexer) skipLiteralRaw(delim int32) {
	for {
		c := l.Chars.Readc()
		switch c {
		case delim, charstream.EOF, '\n':
			if c != delim {
				l.Chars.Unreadc(c)
			}
			return
		case '\\':
			if n := l.Chars.Readc(); n == charstream.EOF {
				return
			}
		}
	}
}

// skipDirectiveLine is called right after reading a '#' at the beginning of
// a line, with hashPos its position. It lexes the directive name as a real
// identifier token and updates depth for nested if-family directives. When
// the name closes the original region (an #else/#elif/#endif back at
// depth 0), it pushes back '#' and that identifier token for the
// preprocessor to resume from and reports stop=true; otherwise it consumes
// through the end of the line itself, since that directive is nested
// inside the skipped region and spec.md §4.5's Non-goal keeps it unlexed.
func (l *Lexer) skipDirectiveLine(depth *int, hashPos token.Position) (name string, stop bool) {
	for {
		c := l.Chars.Readc()
		if !isSpace(c) {
			l.Chars.Unreadc(c)
			break
		}
	}
	wordPos := l.Chars.Pos()
	buf := strbuf.New()
	for {
		c := l.Chars.Readc()
		if !isIdentCont(c) {
			l.Chars.Unreadc(c)
			break
		}
		buf.Write(byte(c))
	}
	word := string(buf.Body())
	switch word {
	case "if", "ifdef", "ifndef":
		*depth++
	case "else", "elif":
		if *depth == 0 {
			stop = true
		}
	case "endif":
		if *depth == 0 {
			stop = true
		} else {
			*depth--
		}
	}
	if stop {
		ident := l.mkIdent(buf, wordPos)
		hash := l.mkPunct('#', hashPos)
		hash.BOL = true
		l.Bufs.Unget(ident)
		l.Bufs.Unget(hash)
		return word, true
	}
	for {
		c := l.Chars.Readc()
		if c == '\n' || c == charstream.EOF {
			break
		}
	}
	return "", false
}

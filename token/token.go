// Copyright 2017-2020 Denis Bernard <db047h@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

// Package token defines the preprocessing-token representation shared by the
// character stream, the pp-token lexer and the token buffer stack.
package token

import (
	"fmt"
	"unicode/utf8"

	"github.com/cc11-lang/cc11/internal/container/strbuf"
)

// Kind identifies the variant held by a Token.
type Kind int

// Token kinds.
const (
	INVALID Kind = iota // single unrecognized byte
	IDENT               // identifier
	KEYWORD             // punctuator or multi-character operator
	NUMBER              // pp-number, unparsed
	CHAR                // character constant
	STRING              // string literal
	SPACE               // internal: whitespace/comment run
	NEWLINE             // internal: end of logical line
	EOF                 // end of input
)

func (k Kind) String() string {
	switch k {
	case INVALID:
		return "INVALID"
	case IDENT:
		return "IDENT"
	case KEYWORD:
		return "KEYWORD"
	case NUMBER:
		return "NUMBER"
	case CHAR:
		return "CHAR"
	case STRING:
		return "STRING"
	case SPACE:
		return "SPACE"
	case NEWLINE:
		return "NEWLINE"
	case EOF:
		return "EOF"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Encoding tags character and string literal prefixes.
type Encoding int

// Literal encodings.
const (
	NONE   Encoding = iota // no prefix, or narrow char
	CHAR16                 // u"..." / u'...'
	CHAR32                 // U"..." / U'...'
	UTF8                   // u8"..." / u8'...'
	WCHAR                  // L"..." / L'...'
)

func (e Encoding) String() string {
	switch e {
	case NONE:
		return "NONE"
	case CHAR16:
		return "CHAR16"
	case CHAR32:
		return "CHAR32"
	case UTF8:
		return "UTF8"
	case WCHAR:
		return "WCHAR"
	default:
		return fmt.Sprintf("Encoding(%d)", int(e))
	}
}

// Multi-character punctuator ids. Single-character punctuators use their own
// byte value (e.g. '+', '{'), so this enum starts well above the ASCII range
// to keep the two spaces disjoint.
const (
	HASHHASH = 0x80 + iota
	ELLIPSIS
	ARROW
	INC
	DEC
	LSHIFT
	RSHIFT
	LE
	GE
	EQ
	NE
	LOGAND
	LOGOR
	MUL_ASSIGN
	DIV_ASSIGN
	MOD_ASSIGN
	ADD_ASSIGN
	SUB_ASSIGN
	LSHIFT_ASSIGN
	RSHIFT_ASSIGN
	AND_ASSIGN
	XOR_ASSIGN
	OR_ASSIGN
)

// KeywordName returns a human-readable spelling for multi-character
// punctuator ids. For ids below 0x80 (single-byte punctuators) the caller
// should just print the byte itself.
func KeywordName(id int) string {
	switch id {
	case HASHHASH:
		return "##"
	case ELLIPSIS:
		return "..."
	case ARROW:
		return "->"
	case INC:
		return "++"
	case DEC:
		return "--"
	case LSHIFT:
		return "<<"
	case RSHIFT:
		return ">>"
	case LE:
		return "<="
	case GE:
		return ">="
	case EQ:
		return "=="
	case NE:
		return "!="
	case LOGAND:
		return "&&"
	case LOGOR:
		return "||"
	case MUL_ASSIGN:
		return "*="
	case DIV_ASSIGN:
		return "/="
	case MOD_ASSIGN:
		return "%="
	case ADD_ASSIGN:
		return "+="
	case SUB_ASSIGN:
		return "-="
	case LSHIFT_ASSIGN:
		return "<<="
	case RSHIFT_ASSIGN:
		return ">>="
	case AND_ASSIGN:
		return "&="
	case XOR_ASSIGN:
		return "^="
	case OR_ASSIGN:
		return "|="
	default:
		return fmt.Sprintf("<id %d>", id)
	}
}

// Token is a single preprocessing token as described by C11 §6.4.
//
// Only the fields relevant to Kind are meaningful; e.g. ID is only set for
// KEYWORD tokens, Str/Len only for STRING, Enc for STRING and CHAR, and so
// on. Hideset is owned by
// the (out of scope) macro-expansion layer: the lexer always initializes it
// to nil and never reads it.
type Token struct {
	Kind Kind

	Ident string // IDENT
	ID    int    // KEYWORD: byte value or one of the ids above
	Num   string // NUMBER: verbatim pp-number text
	Ch    rune   // CHAR: decoded code point
	Str   []byte // STRING: raw payload, NUL-terminated
	Len   int    // STRING: payload length excluding the terminating NUL
	Enc   Encoding
	Bad   byte // INVALID: the offending byte

	File  string // originating file name
	Line  int    // 1-based
	Col   int    // 1-based
	Count int    // monotonically increasing within File

	BOL   bool // beginning of line
	Space bool // preceded by whitespace or a comment

	Hideset any // preprocessor-owned, lexer never reads this
}

// IsKeyword reports whether t is a KEYWORD token with the given id.
func IsKeyword(t Token, id int) bool {
	return t.Kind == KEYWORD && t.ID == id
}

func (t Token) String() string {
	switch t.Kind {
	case IDENT:
		return t.Ident
	case KEYWORD:
		if t.ID < 0x80 {
			return string(rune(t.ID))
		}
		return KeywordName(t.ID)
	case NUMBER:
		return t.Num
	case CHAR:
		buf := strbuf.New()
		buf.Write('\'')
		var b [utf8.UTFMax]byte
		n := utf8.EncodeRune(b[:], t.Ch)
		for _, c := range b[:n] {
			strbuf.QuoteChar(buf, c)
		}
		buf.Write('\'')
		return string(buf.Body())
	case STRING:
		buf := strbuf.New()
		strbuf.QuoteCStringLen(buf, t.Str, t.Len)
		return string(buf.Body())
	case SPACE:
		return " "
	case NEWLINE:
		return "\n"
	case EOF:
		return "<EOF>"
	default:
		return fmt.Sprintf("<invalid 0x%02x>", t.Bad)
	}
}

// Pos returns the token's origin position as a (file, line, column) triple.
func (t Token) Pos() Position {
	return Position{File: t.File, Line: t.Line, Column: t.Col}
}

// Position is a (file, line, column) triple; Line and Column are 1-based.
type Position struct {
	File   string
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

// IsValid reports whether p identifies a real location.
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column > 0
}

package pptoken

import "github.com/cc11-lang/cc11/token"

// mkPunct builds a KEYWORD token for a punctuator, either a raw byte (id <
// 0x80) or one of the multi-character ids in package token.
func (l *Lexer) mkPunct(id int32, pos token.Position) token.Token {
	t := token.Token{Kind: token.KEYWORD, ID: int(id), File: pos.File, Line: pos.Line, Col: pos.Column}
	if f := l.Chars.CurrentFile(); f != nil {
		t.Count = f.NextCount()
	}
	return t
}

// scanPunctOrInvalid scans a punctuator or digraph starting with the
// already-consumed byte c, per the operator table in spec.md §4.5. Bytes
// that match no punctuator produce an INVALID token.
func (l *Lexer) scanPunctOrInvalid(c int32, pos token.Position) token.Token {
	switch c {
	case '[', ']', '(', ')', '{', '}', '~', ';', ',', '?':
		return l.mkPunct(c, pos)

	case ':':
		if n := l.Chars.Readc(); n == '>' {
			return l.mkPunct(']', pos) // digraph :>
		} else {
			l.Chars.Unreadc(n)
		}
		return l.mkPunct(c, pos)

	case '<':
		n := l.Chars.Readc()
		switch n {
		case '<':
			if n2 := l.Chars.Readc(); n2 == '=' {
				return l.mkPunct(token.LSHIFT_ASSIGN, pos)
			} else {
				l.Chars.Unreadc(n2)
			}
			return l.mkPunct(token.LSHIFT, pos)
		case '=':
			return l.mkPunct(token.LE, pos)
		case ':':
			return l.mkPunct('[', pos) // digraph <:
		case '%':
			return l.mkPunct('{', pos) // digraph <%
		default:
			l.Chars.Unreadc(n)
			return l.mkPunct(c, pos)
		}

	case '>':
		n := l.Chars.Readc()
		switch n {
		case '>':
			if n2 := l.Chars.Readc(); n2 == '=' {
				return l.mkPunct(token.RSHIFT_ASSIGN, pos)
			} else {
				l.Chars.Unreadc(n2)
			}
			return l.mkPunct(token.RSHIFT, pos)
		case '=':
			return l.mkPunct(token.GE, pos)
		default:
			l.Chars.Unreadc(n)
			return l.mkPunct(c, pos)
		}

	case '%':
		n := l.Chars.Readc()
		switch n {
		case '=':
			return l.mkPunct(token.MOD_ASSIGN, pos)
		case '>':
			return l.mkPunct('}', pos) // digraph %>
		case ':':
			if n2 := l.Chars.Readc(); n2 == '%' {
				if n3 := l.Chars.Readc(); n3 == ':' {
					return l.mkPunct(token.HASHHASH, pos) // digraph %:%:
				} else {
					l.Chars.Unreadc(n3)
					l.Chars.Unreadc('%')
				}
			} else {
				l.Chars.Unreadc(n2)
			}
			return l.mkPunct('#', pos) // digraph %:
		default:
			l.Chars.Unreadc(n)
			return l.mkPunct(c, pos)
		}

	case '#':
		if n := l.Chars.Readc(); n == '#' {
			return l.mkPunct(token.HASHHASH, pos)
		} else {
			l.Chars.Unreadc(n)
		}
		return l.mkPunct(c, pos)

	case '+':
		n := l.Chars.Readc()
		switch n {
		case '+':
			return l.mkPunct(token.INC, pos)
		case '=':
			return l.mkPunct(token.ADD_ASSIGN, pos)
		default:
			l.Chars.Unreadc(n)
			return l.mkPunct(c, pos)
		}

	case '-':
		n := l.Chars.Readc()
		switch n {
		case '-':
			return l.mkPunct(token.DEC, pos)
		case '=':
			return l.mkPunct(token.SUB_ASSIGN, pos)
		case '>':
			return l.mkPunct(token.ARROW, pos)
		default:
			l.Chars.Unreadc(n)
			return l.mkPunct(c, pos)
		}

	case '*':
		if n := l.Chars.Readc(); n == '=' {
			return l.mkPunct(token.MUL_ASSIGN, pos)
		} else {
			l.Chars.Unreadc(n)
		}
		return l.mkPunct(c, pos)

	case '/':
		if n := l.Chars.Readc(); n == '=' {
			return l.mkPunct(token.DIV_ASSIGN, pos)
		} else {
			l.Chars.Unreadc(n)
		}
		return l.mkPunct(c, pos)

	case '=':
		if n := l.Chars.Readc(); n == '=' {
			return l.mkPunct(token.EQ, pos)
		} else {
			l.Chars.Unreadc(n)
		}
		return l.mkPunct(c, pos)

	case '!':
		if n := l.Chars.Readc(); n == '=' {
			return l.mkPunct(token.NE, pos)
		} else {
			l.Chars.Unreadc(n)
		}
		return l.mkPunct(c, pos)

	case '&':
		n := l.Chars.Readc()
		switch n {
		case '&':
			return l.mkPunct(token.LOGAND, pos)
		case '=':
			return l.mkPunct(token.AND_ASSIGN, pos)
		default:
			l.Chars.Unreadc(n)
			return l.mkPunct(c, pos)
		}

	case '|':
		n := l.Chars.Readc()
		switch n {
		case '|':
			return l.mkPunct(token.LOGOR, pos)
		case '=':
			return l.mkPunct(token.OR_ASSIGN, pos)
		default:
			l.Chars.Unreadc(n)
			return l.mkPunct(c, pos)
		}

	case '^':
		if n := l.Chars.Readc(); n == '=' {
			return l.mkPunct(token.XOR_ASSIGN, pos)
		} else {
			l.Chars.Unreadc(n)
		}
		return l.mkPunct(c, pos)

	default:
		t := token.Token{Kind: token.INVALID, Bad: byte(c), File: pos.File, Line: pos.Line, Col: pos.Column}
		if f := l.Chars.CurrentFile(); f != nil {
			t.Count = f.NextCount()
		}
		return t
	}
}

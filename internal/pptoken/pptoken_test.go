package pptoken

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cc11-lang/cc11/internal/charstream"
	"github.com/cc11-lang/cc11/internal/diag"
	"github.com/cc11-lang/cc11/internal/tokenbuf"
	"github.com/cc11-lang/cc11/token"
)

func newTestLexer(src string) *Lexer {
	chars := charstream.NewStack()
	chars.Push(charstream.NewStringStream("t.c", []byte(src)))
	bufs := tokenbuf.New()
	d := diag.New(false)
	return New(chars, bufs, d)
}

// significant filters out NEWLINE bookkeeping tokens that aren't relevant
// to most of these tests (SPACE tokens never escape Lex itself); it stops
// at and excludes EOF.
func significant(l *Lexer) []token.Token {
	var out []token.Token
	for {
		tok := l.Lex()
		if tok.Kind == token.EOF {
			return out
		}
		if tok.Kind == token.NEWLINE {
			continue
		}
		out = append(out, tok)
	}
}

func TestIdentifiers(t *testing.T) {
	l := newTestLexer("foo _bar baz123")
	toks := significant(l)
	require.Len(t, toks, 3)
	for i, want := range []string{"foo", "_bar", "baz123"} {
		assert.Equal(t, token.IDENT, toks[i].Kind)
		assert.Equal(t, want, toks[i].Ident)
	}
	assert.False(t, toks[0].Space)
	assert.True(t, toks[1].Space)
	assert.True(t, toks[0].BOL)
	assert.False(t, toks[1].BOL)
}

func TestBOLAfterNewline(t *testing.T) {
	l := newTestLexer("a\nb")
	tok := l.Lex()
	require.Equal(t, "a", tok.Ident)
	assert.True(t, tok.BOL)

	nl := l.Lex()
	require.Equal(t, token.NEWLINE, nl.Kind)

	tok = l.Lex()
	require.Equal(t, "b", tok.Ident)
	assert.True(t, tok.BOL)
}

func TestLineCommentSkipped(t *testing.T) {
	l := newTestLexer("a // comment\nb")
	toks := significant(l)
	require.Len(t, toks, 2)
	assert.Equal(t, "a", toks[0].Ident)
	assert.Equal(t, "b", toks[1].Ident)
}

func TestBlockCommentSkipped(t *testing.T) {
	l := newTestLexer("a /* multi\nline */ b")
	toks := significant(l)
	require.Len(t, toks, 2)
	assert.Equal(t, "a", toks[0].Ident)
	assert.Equal(t, "b", toks[1].Ident)
}

func TestUnterminatedBlockCommentIsFatal(t *testing.T) {
	l := newTestLexer("a /* never closed")
	l.Diag.Out = new(discard)
	assert.Panics(t, func() { significant(l) })
}

type discard struct{}

func (*discard) Write(p []byte) (int, error) { return len(p), nil }

func TestPPNumbers(t *testing.T) {
	cases := []string{"123", "0x2134abcdef30", "012345", "1.543", ".01e+5", "304.0304e-10", "3.1234e+12"}
	for _, src := range cases {
		l := newTestLexer(src)
		toks := significant(l)
		require.Len(t, toks, 1, "src=%q", src)
		assert.Equal(t, token.NUMBER, toks[0].Kind, "src=%q", src)
		assert.Equal(t, src, toks[0].Num, "src=%q", src)
	}
}

func TestDotEllipsisAndPunctuator(t *testing.T) {
	l := newTestLexer(". ... .")
	toks := significant(l)
	require.Len(t, toks, 3)
	assert.True(t, token.IsKeyword(toks[0], '.'))
	assert.True(t, token.IsKeyword(toks[1], token.ELLIPSIS))
	assert.True(t, token.IsKeyword(toks[2], '.'))
}

func TestDotNumberVsDotPunctuator(t *testing.T) {
	l := newTestLexer(".5")
	toks := significant(l)
	require.Len(t, toks, 1)
	assert.Equal(t, token.NUMBER, toks[0].Kind)
	assert.Equal(t, ".5", toks[0].Num)
}

func TestMultiCharOperators(t *testing.T) {
	cases := []struct {
		src string
		id  int
	}{
		{"==", token.EQ}, {"!=", token.NE}, {"<=", token.LE}, {">=", token.GE},
		{"&&", token.LOGAND}, {"||", token.LOGOR}, {"++", token.INC}, {"--", token.DEC},
		{"->", token.ARROW}, {"<<", token.LSHIFT}, {">>", token.RSHIFT},
		{"<<=", token.LSHIFT_ASSIGN}, {">>=", token.RSHIFT_ASSIGN},
		{"+=", token.ADD_ASSIGN}, {"-=", token.SUB_ASSIGN}, {"*=", token.MUL_ASSIGN},
		{"/=", token.DIV_ASSIGN}, {"%=", token.MOD_ASSIGN}, {"&=", token.AND_ASSIGN},
		{"|=", token.OR_ASSIGN}, {"^=", token.XOR_ASSIGN}, {"##", token.HASHHASH},
	}
	for _, c := range cases {
		l := newTestLexer(c.src)
		toks := significant(l)
		require.Len(t, toks, 1, "src=%q", c.src)
		assert.True(t, token.IsKeyword(toks[0], c.id), "src=%q", c.src)
	}
}

func TestDigraphs(t *testing.T) {
	cases := []struct {
		src  string
		want int32
	}{
		{"<:", '['}, {":>", ']'}, {"<%", '{'}, {"%>", '}'}, {"%:", '#'},
	}
	for _, c := range cases {
		l := newTestLexer(c.src)
		toks := significant(l)
		require.Len(t, toks, 1, "src=%q", c.src)
		assert.True(t, token.IsKeyword(toks[0], int(c.want)), "src=%q", c.src)
	}

	l := newTestLexer("%:%:")
	toks := significant(l)
	require.Len(t, toks, 1)
	assert.True(t, token.IsKeyword(toks[0], token.HASHHASH))
}

func TestSingleByteFallbacksOnPartialOperators(t *testing.T) {
	l := newTestLexer("< 1")
	toks := significant(l)
	require.Len(t, toks, 2)
	assert.True(t, token.IsKeyword(toks[0], '<'))
}

func TestStringLiteral(t *testing.T) {
	l := newTestLexer(`"hello\nworld"`)
	toks := significant(l)
	require.Len(t, toks, 1)
	tok := toks[0]
	require.Equal(t, token.STRING, tok.Kind)
	assert.Equal(t, token.NONE, tok.Enc)
	assert.Equal(t, "hello\nworld", string(tok.Str[:tok.Len]))
	assert.Equal(t, byte(0), tok.Str[tok.Len])
}

func TestStringLiteralWithRawUTF8(t *testing.T) {
	l := newTestLexer(`"aéb"`)
	toks := significant(l)
	require.Len(t, toks, 1)
	tok := toks[0]
	assert.Equal(t, "aéb", string(tok.Str[:tok.Len]))
}

func TestStringLiteralWithUCNEscape(t *testing.T) {
	l := newTestLexer(`"a\u00e9b"`)
	toks := significant(l)
	require.Len(t, toks, 1)
	tok := toks[0]
	assert.Equal(t, "aéb", string(tok.Str[:tok.Len]))
}

func TestEncodedStringPrefixes(t *testing.T) {
	cases := []struct {
		src string
		enc token.Encoding
	}{
		{`L"x"`, token.WCHAR},
		{`U"x"`, token.CHAR32},
		{`u"x"`, token.CHAR16},
		{`u8"x"`, token.UTF8},
	}
	for _, c := range cases {
		l := newTestLexer(c.src)
		toks := significant(l)
		require.Len(t, toks, 1, "src=%q", c.src)
		require.Equal(t, token.STRING, toks[0].Kind, "src=%q", c.src)
		assert.Equal(t, c.enc, toks[0].Enc, "src=%q", c.src)
	}
}

func TestPrefixFallsBackToIdentifier(t *testing.T) {
	l := newTestLexer("Lvalue u8bit Ustruct")
	toks := significant(l)
	require.Len(t, toks, 3)
	for i, want := range []string{"Lvalue", "u8bit", "Ustruct"} {
		assert.Equal(t, token.IDENT, toks[i].Kind)
		assert.Equal(t, want, toks[i].Ident)
	}
}

func TestCharLiteral(t *testing.T) {
	l := newTestLexer(`'a'`)
	toks := significant(l)
	require.Len(t, toks, 1)
	assert.Equal(t, token.CHAR, toks[0].Kind)
	assert.Equal(t, 'a', toks[0].Ch)
}

func TestCharLiteralEscape(t *testing.T) {
	l := newTestLexer(`'\n'`)
	toks := significant(l)
	require.Len(t, toks, 1)
	assert.Equal(t, rune('\n'), toks[0].Ch)
}

func TestUnterminatedStringIsFatal(t *testing.T) {
	l := newTestLexer(`"abc`)
	l.Diag.Out = new(discard)
	assert.Panics(t, func() { significant(l) })
}

func TestUnterminatedCharIsFatal(t *testing.T) {
	l := newTestLexer(`'a`)
	l.Diag.Out = new(discard)
	assert.Panics(t, func() { significant(l) })
}

func TestLexStringSingleToken(t *testing.T) {
	l := newTestLexer("")
	tok := l.LexString("def", "identifier_name")
	assert.Equal(t, token.IDENT, tok.Kind)
	assert.Equal(t, "identifier_name", tok.Ident)
}

func TestLexStringTrailingGarbageIsFatal(t *testing.T) {
	l := newTestLexer("")
	l.Diag.Out = new(discard)
	assert.Panics(t, func() { l.LexString("def", "foo bar") })
}

func TestInvalidByteProducesInvalidToken(t *testing.T) {
	l := newTestLexer("`")
	toks := significant(l)
	require.Len(t, toks, 1)
	assert.Equal(t, token.INVALID, toks[0].Kind)
	assert.Equal(t, byte('`'), toks[0].Bad)
}

func TestReadHeaderFileName(t *testing.T) {
	l := newTestLexer(`"foo/bar.h"`)
	var isSystem bool
	name, err := l.ReadHeaderFileName(&isSystem)
	require.NoError(t, err)
	assert.Equal(t, "foo/bar.h", name)
	assert.False(t, isSystem)
}

func TestReadHeaderFileNameSystem(t *testing.T) {
	l := newTestLexer(`<stdio.h>`)
	var isSystem bool
	name, err := l.ReadHeaderFileName(&isSystem)
	require.NoError(t, err)
	assert.Equal(t, "stdio.h", name)
	assert.True(t, isSystem)
}

func TestReadHeaderFileNameErrors(t *testing.T) {
	l := newTestLexer(`foo.h`)
	var isSystem bool
	_, err := l.ReadHeaderFileName(&isSystem)
	assert.Error(t, err)
}

// assertPushedDirective checks that the closing directive's '#' and name
// were pushed back as real tokens (per spec.md §4.5's Testable Scenario 6),
// followed by the given trailing identifier.
func assertPushedDirective(t *testing.T, l *Lexer, name, trailing string) {
	toks := significant(l)
	require.Len(t, toks, 3)
	assert.True(t, token.IsKeyword(toks[0], '#'))
	assert.True(t, toks[0].BOL)
	assert.Equal(t, token.IDENT, toks[1].Kind)
	assert.Equal(t, name, toks[1].Ident)
	assert.Equal(t, trailing, toks[2].Ident)
}

func TestSkipCondInclStopsAtMatchingEndif(t *testing.T) {
	l := newTestLexer("garbage ) ( unparseable\n#endif\nrest")
	name := l.SkipCondIncl()
	assert.Equal(t, "endif", name)
	assertPushedDirective(t, l, "endif", "rest")
}

func TestSkipCondInclTracksNesting(t *testing.T) {
	l := newTestLexer("#if 1\ninner\n#endif\n#endif\nrest")
	name := l.SkipCondIncl()
	assert.Equal(t, "endif", name)
	assertPushedDirective(t, l, "endif", "rest")
}

func TestSkipCondInclStopsAtElse(t *testing.T) {
	l := newTestLexer("whatever\n#else\nrest")
	name := l.SkipCondIncl()
	assert.Equal(t, "else", name)
	assertPushedDirective(t, l, "else", "rest")
}

func TestSkipCondInclIgnoresHashInsideString(t *testing.T) {
	l := newTestLexer("\"looks like # endif\"\n#endif\nrest")
	name := l.SkipCondIncl()
	assert.Equal(t, "endif", name)
	assertPushedDirective(t, l, "endif", "rest")
}

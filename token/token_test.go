package token

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "IDENT", IDENT.String())
	assert.Equal(t, "EOF", EOF.String())
	assert.Contains(t, Kind(999).String(), "Kind(999)")
}

func TestEncodingString(t *testing.T) {
	assert.Equal(t, "UTF8", UTF8.String())
	assert.Contains(t, Encoding(999).String(), "Encoding(999)")
}

func TestKeywordName(t *testing.T) {
	assert.Equal(t, "...", KeywordName(ELLIPSIS))
	assert.Equal(t, "->", KeywordName(ARROW))
	assert.Contains(t, KeywordName(0xFFFF), "<id")
}

func TestIsKeyword(t *testing.T) {
	tok := Token{Kind: KEYWORD, ID: ARROW}
	assert.True(t, IsKeyword(tok, ARROW))
	assert.False(t, IsKeyword(tok, INC))
	ident := Token{Kind: IDENT, Ident: "x"}
	assert.False(t, IsKeyword(ident, ARROW))
}

func TestTokenStringByKind(t *testing.T) {
	assert.Equal(t, "foo", Token{Kind: IDENT, Ident: "foo"}.String())
	assert.Equal(t, "123", Token{Kind: NUMBER, Num: "123"}.String())
	assert.Equal(t, "+", Token{Kind: KEYWORD, ID: '+'}.String())
	assert.Equal(t, "->", Token{Kind: KEYWORD, ID: ARROW}.String())
	assert.Equal(t, "<EOF>", Token{Kind: EOF}.String())
}

func TestTokenPos(t *testing.T) {
	tok := Token{File: "a.c", Line: 3, Col: 7}
	pos := tok.Pos()
	assert.Equal(t, Position{File: "a.c", Line: 3, Column: 7}, pos)
}

func TestPositionIsValid(t *testing.T) {
	assert.True(t, Position{File: "a.c", Line: 1, Column: 1}.IsValid())
	assert.False(t, Position{}.IsValid())
}

func TestPositionString(t *testing.T) {
	assert.Equal(t, "a.c:3:7", Position{File: "a.c", Line: 3, Column: 7}.String())
}

func TestTokenPosRoundTripsThroughStructuralDiff(t *testing.T) {
	tok := Token{File: "a.c", Line: 3, Col: 7, Kind: IDENT, Ident: "x"}
	want := Position{File: "a.c", Line: 3, Column: 7}
	if diff := cmp.Diff(want, tok.Pos()); diff != "" {
		t.Errorf("Pos() mismatch (-want +got):\n%s", diff)
	}
}

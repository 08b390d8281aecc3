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

// Package cc11 is the slim producer-facing front for the lexical core: a
// Lexer wraps a character-stream stack, a token-buffer stack and a
// diagnostics reporter, and exposes exactly the operations a preprocessor
// built on top of it needs. The mechanics live in the internal packages;
// this file only wires them together and forwards calls.
package cc11

import (
	"github.com/kylelemons/godebug/pretty"

	"github.com/cc11-lang/cc11/internal/charstream"
	"github.com/cc11-lang/cc11/internal/diag"
	"github.com/cc11-lang/cc11/internal/pptoken"
	"github.com/cc11-lang/cc11/internal/tokenbuf"
	"github.com/cc11-lang/cc11/token"
)

// Lexer is the top-level handle a driver holds for the lifetime of a
// translation unit.
type Lexer struct {
	streams *charstream.Stack
	bufs    *tokenbuf.Stack
	diag    *diag.Reporter
	pp      *pptoken.Lexer
}

// Init creates a Lexer with path pushed as the base (first) input file,
// per spec.md §6's lex_init. werror promotes warnings to fatal errors.
func Init(path string, werror bool) (*Lexer, error) {
	s, err := charstream.NewFileStream(path)
	if err != nil {
		return nil, err
	}
	return newLexer(s, werror), nil
}

// InitString creates a Lexer reading from an in-memory buffer named name,
// per spec.md §6's lex_init string form.
func InitString(name string, data []byte, werror bool) *Lexer {
	return newLexer(charstream.NewStringStream(name, data), werror)
}

func newLexer(s *charstream.Stream, werror bool) *Lexer {
	streams := charstream.NewStack()
	streams.Push(s)
	bufs := tokenbuf.New()
	d := diag.New(werror)
	return &Lexer{streams: streams, bufs: bufs, diag: d, pp: pptoken.New(streams, bufs, d)}
}

// Diag returns the lexer's diagnostics reporter, so a driver can check
// WarnCount or swap Out.
func (l *Lexer) Diag() *diag.Reporter { return l.diag }

// Lex returns the next pp-token, per spec.md §6.
func (l *Lexer) Lex() token.Token { return l.pp.Lex() }

// LexString lexes exactly one token out of s without disturbing the main
// character stream, per spec.md §6.
func (l *Lexer) LexString(name, s string) token.Token { return l.pp.LexString(name, s) }

// UngetToken pushes back a single token so the next Lex call returns it,
// per spec.md §6.
func (l *Lexer) UngetToken(t token.Token) { l.bufs.Unget(t) }

// TokenBufferStash injects list as a temporary token source ahead of the
// live character stream, per spec.md §6.
func (l *Lexer) TokenBufferStash(list []token.Token) { l.bufs.Stash(list) }

// TokenBufferUnstash restores the token buffer state saved by the most
// recent TokenBufferStash, per spec.md §6.
func (l *Lexer) TokenBufferUnstash() { l.bufs.Unstash() }

// ReadHeaderFileName reads a header-name token in the contextual grammar
// used right after #include, per spec.md §6.
func (l *Lexer) ReadHeaderFileName(isSystem *bool) (string, error) {
	return l.pp.ReadHeaderFileName(isSystem)
}

// SkipCondIncl fast-forwards past a conditionally-excluded region, per
// spec.md §4.5 and §6.
func (l *Lexer) SkipCondIncl() string { return l.pp.SkipCondIncl() }

// IsKeyword reports whether t is a KEYWORD token with the given id, per
// spec.md §6.
func IsKeyword(t token.Token, id int) bool { return token.IsKeyword(t, id) }

// StreamPush makes a new file the active input stream (an #include), per
// spec.md §6.
func (l *Lexer) StreamPush(path string) error {
	s, err := charstream.NewFileStream(path)
	if err != nil {
		return err
	}
	l.streams.Push(s)
	return nil
}

// StreamStash saves the entire stream stack aside and replaces it with a
// single string stream, per spec.md §6.
func (l *Lexer) StreamStash(name string, data []byte) {
	l.streams.Stash(charstream.NewStringStream(name, data))
}

// StreamUnstash restores the stream stack saved by the most recent
// StreamStash, per spec.md §6.
func (l *Lexer) StreamUnstash() { l.streams.Unstash() }

// CurrentFile returns the token.File of the active input stream, per
// spec.md §6.
func (l *Lexer) CurrentFile() *token.File { return l.streams.CurrentFile() }

// StreamDepth returns the number of streams on the input stack, per
// spec.md §6.
func (l *Lexer) StreamDepth() int { return l.streams.Depth() }

// InputPosition formats the active stream's current position, per
// spec.md §6.
func (l *Lexer) InputPosition() string { return l.streams.InputPosition() }

// GetBaseFile returns the name of the first file ever pushed onto the
// stream stack, per spec.md §6.
func (l *Lexer) GetBaseFile() string { return l.streams.GetBaseFile() }

// MakeFile wraps name in a fresh token.File with its own line/count
// bookkeeping, independent of any stream, per spec.md §6's make_file.
func MakeFile(name string) *token.File { return token.NewFile(name) }

// MakeFileString is the string-source counterpart of MakeFile, per
// spec.md §6's make_file_string.
func MakeFileString(name string) *token.File { return token.NewFile(name) }

// stackSnapshot is the data behind -fdump-stack: just enough of the
// character-stream and token-buffer stacks' shape to be useful in a debug
// dump, without exposing their internals outside this package.
type stackSnapshot struct {
	StreamDepth int
	CurrentFile string
	Position    string
	BufferDepth int
}

// DumpStack renders the lexer's internal stack state for -fdump-stack.
func (l *Lexer) DumpStack() string {
	snap := stackSnapshot{
		StreamDepth: l.streams.Depth(),
		Position:    l.streams.InputPosition(),
		BufferDepth: l.bufs.Depth(),
	}
	if f := l.streams.CurrentFile(); f != nil {
		snap.CurrentFile = f.Name()
	}
	return pretty.Sprint(snap)
}

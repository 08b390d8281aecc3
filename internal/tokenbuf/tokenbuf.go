// Package tokenbuf implements the token buffer stack: pushback for ordinary
// lookahead, plus temporary token-list injection (stash/unstash) used by the
// preprocessor to hand the lexer an isolated token stream during macro
// expansion or argument re-scanning.
//
// The buffer itself reuses the growable sequence from internal/container/seq
// (itself grounded on the teacher lexer's ring-buffer item queue,
// github.com/db47h/lex, lex.go: type queue struct{...}), generalized from a
// single FIFO queue of scanned tokens to a stack of independently drainable
// token lists.
package tokenbuf

import (
	"github.com/cc11-lang/cc11/internal/container/seq"
	"github.com/cc11-lang/cc11/token"
)

// Stack is the token buffer stack. The bottom level is the ordinary
// pushback buffer for the live character stream; levels above it are
// stashed token lists injected by the preprocessor.
type Stack struct {
	levels *seq.Sequence[*seq.Sequence[token.Token]]
}

// New returns a Stack with a single, empty pushback level.
func New() *Stack {
	s := &Stack{levels: seq.New[*seq.Sequence[token.Token]]()}
	s.levels.Push(seq.New[token.Token]())
	return s
}

// Depth returns the number of levels on the stack (always >= 1).
func (s *Stack) Depth() int {
	return s.levels.Len()
}

func (s *Stack) top() *seq.Sequence[token.Token] {
	return s.levels.Tail()
}

// Unget pushes t onto the top level so the next Pop returns it first. It is
// a no-op for EOF tokens.
func (s *Stack) Unget(t token.Token) {
	if t.Kind == token.EOF {
		return
	}
	s.top().Push(t)
}

// Pop removes and returns the top level's most recently pushed token, if
// any.
func (s *Stack) Pop() (token.Token, bool) {
	top := s.top()
	if top.Len() == 0 {
		return token.Token{}, false
	}
	return top.Pop(), true
}

// Stash pushes list as a new top level. Tokens drain in list order: the
// first call to Pop after Stash returns list[0]. Once the level is drained,
// Pop reports empty (the main lex loop must then synthesize EOF instead of
// falling through to the character stream) until Unstash is called.
func (s *Stack) Stash(list []token.Token) {
	lvl := seq.New[token.Token]()
	for i := len(list) - 1; i >= 0; i-- {
		lvl.Push(list[i])
	}
	s.levels.Push(lvl)
}

// Unstash pops the top level, which must have been pushed by Stash. It
// panics if called with only the base pushback level remaining.
func (s *Stack) Unstash() {
	if s.levels.Len() <= 1 {
		panic("tokenbuf: Unstash with no stashed level")
	}
	s.levels.Pop()
}

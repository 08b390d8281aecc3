package charstream

import (
	"github.com/cc11-lang/cc11/internal/container/seq"
	"github.com/cc11-lang/cc11/token"
)

// Stack is the stream stack: #include pushes a new Stream, EOF pops it. The
// splicing of backslash-newline continuations happens here, one layer above
// Stream.get, so that it is invisible to every consumer of Readc.
type Stack struct {
	streams *seq.Sequence[*Stream]
	stashed *seq.Sequence[*seq.Sequence[*Stream]]
	base    string
}

// NewStack returns an empty stream stack.
func NewStack() *Stack {
	return &Stack{streams: seq.New[*Stream](), stashed: seq.New[*seq.Sequence[*Stream]]()}
}

// Push makes s the active stream. The first stream ever pushed is recorded
// as the base file (see GetBaseFile).
func (k *Stack) Push(s *Stream) {
	if k.streams.Len() == 0 && k.base == "" {
		k.base = s.File.Name()
	}
	k.streams.Push(s)
}

// Depth returns the number of streams currently on the stack.
func (k *Stack) Depth() int {
	return k.streams.Len()
}

// CurrentFile returns the File of the active stream, or nil if the stack is
// empty.
func (k *Stack) CurrentFile() *token.File {
	if k.streams.Len() == 0 {
		return nil
	}
	return k.top().File
}

func (k *Stack) top() *Stream {
	return k.streams.Tail()
}

// GetBaseFile returns the name of the first file ever pushed onto this
// stack, regardless of current #include depth.
func (k *Stack) GetBaseFile() string {
	return k.base
}

// Pos returns the active stream's current position, or the zero Position if
// the stack is empty.
func (k *Stack) Pos() token.Position {
	if k.streams.Len() == 0 {
		return token.Position{}
	}
	return k.top().Pos()
}

// CurrentLineText returns the text read so far of the active stream's
// current line, or "" if the stack is empty.
func (k *Stack) CurrentLineText() string {
	if k.streams.Len() == 0 {
		return ""
	}
	return k.top().CurrentLineText()
}

// InputPosition formats the active stream's position as "name:line:column".
func (k *Stack) InputPosition() string {
	if k.streams.Len() == 0 {
		return "<no input>"
	}
	return k.top().Pos().String()
}

// Stash saves the entire current stack aside and replaces it with a single
// stream s. Used to lex a short standalone string (e.g. a -D command-line
// definition) without disturbing the main pipeline.
func (k *Stack) Stash(s *Stream) {
	k.stashed.Push(k.streams)
	ns := seq.New[*Stream]()
	ns.Push(s)
	k.streams = ns
}

// Unstash restores the stack saved by the most recent Stash.
func (k *Stack) Unstash() {
	k.streams = k.stashed.Pop()
}

// Readc reads the next spliced, canonicalized character from the active
// stream, transparently popping exhausted streams and splicing
// backslash-newline continuations.
func (k *Stack) Readc() int32 {
	for {
		if k.streams.Len() == 0 {
			return EOF
		}
		s := k.top()
		c := s.get()
		if c == EOF {
			if k.streams.Len() == 1 {
				return EOF
			}
			k.streams.Pop()
			s.close()
			continue
		}
		if c == '\\' {
			n := s.get()
			if n == '\n' {
				continue
			}
			s.unget(n)
			return '\\'
		}
		return c
	}
}

// Unreadc restores c so the next Readc call returns it. At most
// pushbackCap characters may be ungotten without an intervening Readc.
func (k *Stack) Unreadc(c int32) {
	if c == EOF || k.streams.Len() == 0 {
		return
	}
	k.top().unget(c)
}

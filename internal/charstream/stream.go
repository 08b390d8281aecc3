package charstream

import "github.com/cc11-lang/cc11/token"

const pushbackCap = 3

const notStarted int32 = -2

// Stream is one entry in the stream stack: a file or string reader plus its
// position, CRLF/EOF-newline canonicalization state and pushback buffer.
type Stream struct {
	File *token.File

	src rawSource

	hasPendingRaw bool
	pendingRaw    byte

	lastDelivered int32 // last canonicalized char, or EOF; notStarted before the first read

	line, col int

	pushback [pushbackCap]int32
	pbLen    int

	curLine, prevLine []byte // text of the line currently (or just) being read, for caret diagnostics
}

func newStream(name string, src rawSource) *Stream {
	return &Stream{
		File:          token.NewFile(name),
		src:           src,
		lastDelivered: notStarted,
		line:          1,
		col:           1,
	}
}

// NewFileStream opens name ("-" for standard input) for reading.
func NewFileStream(name string) (*Stream, error) {
	fs, _, err := openFile(name)
	if err != nil {
		return nil, err
	}
	return newStream(name, fs), nil
}

// NewStringStream creates a Stream that reads from an in-memory buffer,
// named name for diagnostics.
func NewStringStream(name string, data []byte) *Stream {
	return newStream(name, &stringSource{data: data})
}

func (s *Stream) close() {
	s.src.close()
}

// rawGetc returns the next canonicalized character (CRLF folded to a single
// '\n', with exactly one trailing '\n' synthesized before EOF if the file
// does not already end in one), or EOF.
func (s *Stream) rawGetc() int32 {
	var b byte
	if s.hasPendingRaw {
		b = s.pendingRaw
		s.hasPendingRaw = false
	} else {
		nb, ok := s.src.next()
		if !ok {
			if s.lastDelivered != '\n' && s.lastDelivered != EOF {
				s.lastDelivered = '\n'
				return '\n'
			}
			s.lastDelivered = EOF
			return EOF
		}
		b = nb
	}
	if b == '\r' {
		nb, ok := s.src.next()
		if ok && nb != '\n' {
			s.hasPendingRaw = true
			s.pendingRaw = nb
		}
		b = '\n'
	}
	s.lastDelivered = int32(b)
	return int32(b)
}

// get pops the pushback buffer if non-empty, else reads and canonicalizes a
// fresh character, then advances line/column.
func (s *Stream) get() int32 {
	var c int32
	if s.pbLen > 0 {
		s.pbLen--
		c = s.pushback[s.pbLen]
	} else {
		c = s.rawGetc()
	}
	if c == '\n' {
		s.line++
		s.col = 1
		s.prevLine = s.curLine
		s.curLine = nil
	} else if c != EOF {
		s.col++
		s.curLine = append(s.curLine, byte(c))
	}
	return c
}

// unget restores c so that the next call to get returns it, adjusting
// line/column as the mirror image of get. At most pushbackCap characters
// may be ungotten in a row; it is a caller bug to exceed that, since the
// lexer never needs more than two characters of look-ahead.
func (s *Stream) unget(c int32) {
	if c == EOF {
		return
	}
	if s.pbLen >= pushbackCap {
		panic("charstream: pushback buffer exhausted")
	}
	if c == '\n' {
		s.col = 1
		s.line--
		s.curLine = s.prevLine
	} else {
		s.col--
		if n := len(s.curLine); n > 0 {
			s.curLine = s.curLine[:n-1]
		}
	}
	s.pushback[s.pbLen] = c
	s.pbLen++
}

// Pos returns s's current position.
func (s *Stream) Pos() token.Position {
	return token.Position{File: s.File.Name(), Line: s.line, Column: s.col}
}

// CurrentLineText returns the text read so far of the line the stream is
// positioned on, for rendering a caret under a diagnostic's column.
func (s *Stream) CurrentLineText() string {
	return string(s.curLine)
}

// Package charstream implements the lowest layer of the input pipeline: a
// stack of file- or string-backed byte sources that canonicalizes line
// endings, splices backslash-newline continuations and synthesizes a
// trailing newline at end of file.
//
// The undo/look-ahead discipline (a small fixed pushback buffer, a "last
// character seen" sentinel driving EOF-newline synthesis) is grounded on the
// teacher lexer's rune-level undo buffer (github.com/db47h/lex, lex.go:
// State.Next/Backup/pushUndo), generalized here from runes to raw bytes (the
// C pp-token grammar operates byte-wise; only identifiers and literals
// decode UTF-8/UCN, at the lexer layer above this one) and from a ring
// buffer sized for look-ahead to the spec's splice-aware two-stage
// get/readc split.
package charstream

import (
	"bufio"
	"os"
	"time"
)

// EOF is the sentinel value returned in place of a character at end of
// input.
const EOF int32 = -1

// rawSource yields raw, uncanonicalized bytes one at a time.
type rawSource interface {
	next() (byte, bool) // ok=false at physical end of input
	close()
}

type fileSource struct {
	f *os.File
	r *bufio.Reader
}

func (s *fileSource) next() (byte, bool) {
	b, err := s.r.ReadByte()
	if err != nil {
		return 0, false
	}
	return b, true
}

func (s *fileSource) close() {
	_ = s.f.Close()
}

type stringSource struct {
	data []byte
	pos  int
}

func (s *stringSource) next() (byte, bool) {
	if s.pos >= len(s.data) {
		return 0, false
	}
	b := s.data[s.pos]
	s.pos++
	return b, true
}

func (s *stringSource) close() {}

// openFile opens name for reading ("-" means standard input) and returns a
// fileSource plus the file's last-modified time (zero for standard input).
func openFile(name string) (*fileSource, time.Time, error) {
	if name == "-" {
		return &fileSource{f: nil, r: bufio.NewReader(os.Stdin)}, time.Time{}, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, time.Time{}, err
	}
	fi, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, time.Time{}, err
	}
	return &fileSource{f: f, r: bufio.NewReader(f)}, fi.ModTime(), nil
}

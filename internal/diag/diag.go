// Package diag implements the position-aware error/warning reporter
// consumed by the lexer core (spec §6: "error(fmt, …)", "errorf(loc,
// posstr, fmt, …)", "warnf(…)").
//
// The position-tagged Errorf pattern mirrors the teacher lexer's
// State.Errorf (github.com/db47h/lex, lex.go), generalized from an
// in-band error token to an out-of-band reporter so that genuinely fatal
// conditions (unterminated literal, I/O failure) can unwind the whole
// lexer instead of only producing an Error-kind token.
package diag

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rivo/uniseg"
	"golang.org/x/text/width"

	"github.com/cc11-lang/cc11/token"
)

// FatalError is panicked by Reporter.Fatalf/FatalAt after the Reporter has
// printed the message. The lexer never recovers from it itself; a driver
// (cmd/cc11) recovers at the top level to exit with a non-zero status
// instead of crashing with a raw panic trace.
type FatalError struct {
	Pos token.Position
	Msg string
}

func (e *FatalError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
	}
	return e.Msg
}

// Reporter prints diagnostics to Out and counts the non-fatal warnings it
// has reported. Werror promotes warnings to fatal errors.
type Reporter struct {
	Out    io.Writer
	Werror bool

	// Source, when set, returns the source line text that fatal/Warnf print
	// with a caret under pos's column. Left nil, diagnostics print the
	// message line only.
	Source func(pos token.Position) string

	warnCount int
}

// New returns a Reporter writing to os.Stderr.
func New(werror bool) *Reporter {
	return &Reporter{Out: os.Stderr, Werror: werror}
}

// Fatalf reports a location-less fatal error (used for I/O failures that
// occur before any position is known) and panics with *FatalError.
func (r *Reporter) Fatalf(format string, args ...any) {
	r.fatal(token.Position{}, fmt.Sprintf(format, args...))
}

// FatalAt reports a fatal error at pos and panics with *FatalError.
func (r *Reporter) FatalAt(pos token.Position, format string, args ...any) {
	r.fatal(pos, fmt.Sprintf(format, args...))
}

func (r *Reporter) fatal(pos token.Position, msg string) {
	e := &FatalError{Pos: pos, Msg: msg}
	fmt.Fprintf(r.Out, "%s\n", e.Error())
	r.printCaret(pos)
	panic(e)
}

// Warnf reports a warning at pos. If Werror is set, it is promoted to a
// fatal error instead.
func (r *Reporter) Warnf(pos token.Position, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if r.Werror {
		r.fatal(pos, msg)
		return
	}
	r.warnCount++
	fmt.Fprintf(r.Out, "%s: warning: %s\n", pos, msg)
	r.printCaret(pos)
}

// printCaret renders the offending source line followed by a caret line
// under pos's column, using CaretColumn so wide and combining runes don't
// throw the caret off. A no-op when Source is unset or pos is invalid.
func (r *Reporter) printCaret(pos token.Position) {
	if r.Source == nil || !pos.IsValid() {
		return
	}
	line := r.Source(pos)
	if line == "" {
		return
	}
	col := CaretColumn(line, pos.Column)
	fmt.Fprintf(r.Out, "%s\n%s^\n", line, strings.Repeat(" ", col-1))
}

// WarnCount returns the number of non-fatal warnings reported so far.
func (r *Reporter) WarnCount() int {
	return r.warnCount
}

// CaretColumn computes the on-screen column (1-based, counting East-Asian
// wide runes as two cells and combining runes as zero) at which a caret
// should be drawn under a token in line that begins at the given 1-based
// byte column. This lets diagnostics point
// accurately at identifiers that decoded a UCN escape into a multibyte
// UTF-8 rune.
func CaretColumn(line string, byteColumn int) int {
	if byteColumn < 1 || byteColumn > len(line)+1 {
		byteColumn = 1
	}
	prefix := line[:min(byteColumn-1, len(line))]
	col := 1
	g := uniseg.NewGraphemes(prefix)
	for g.Next() {
		rs := g.Runes()
		w := 1
		if len(rs) > 0 && width.LookupRune(rs[0]).Kind() == width.EastAsianWide {
			w = 2
		}
		col += w
	}
	return col
}

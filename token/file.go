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

package token

import "github.com/tidwall/btree"

// File identifies one source file (or string buffer) that has contributed
// tokens to the compilation. It tracks the per-file token counter required
// by the Count invariant and an ordered index of line boundaries
// used to translate an arbitrary counter value back to a line number for
// diagnostics that outlive the character stream (e.g. a macro body cached
// after its originating stream was popped).
type File struct {
	name  string
	lines *btree.Map[int, int] // token count at line start -> line number
	next  int                  // next Count value to hand out
}

// NewFile creates a File named name.
func NewFile(name string) *File {
	f := &File{name: name, lines: &btree.Map[int, int]{}}
	f.lines.Set(0, 1)
	return f
}

// Name returns the file's name, "-" for standard input.
func (f *File) Name() string { return f.name }

// NextCount returns the next strictly increasing Count value for this file.
func (f *File) NextCount() int {
	c := f.next
	f.next++
	return c
}

// MarkLine records that a new line starts at the given token count.
func (f *File) MarkLine(count, line int) {
	f.lines.Set(count, line)
}

// LineAt returns the line number active at the given token count, using the
// most recent MarkLine at or before count.
func (f *File) LineAt(count int) int {
	line := 1
	f.lines.Descend(count, func(_ int, l int) bool {
		line = l
		return false
	})
	return line
}

// Package seq implements the dynamic sequence used throughout the lexer core
// for file/token stacks and pushback buffers: a growable ordered container of
// opaque element handles with stack and queue operations.
//
// The growth policy (double from a floor of 8, always to a power of two)
// mirrors the ring-buffer queue in the teacher lexer's item queue
// (github.com/db47h/lex, lex.go: type queue struct{ items []item; ... }),
// generalized here from a fixed item type to any T and from FIFO-only to a
// sequence that also supports indexed access, since the preprocessor layer
// needs both (a pushback stack and an injectable token list).
package seq

const minCap = 8

// Sequence is a growable ordered container of T. The zero value is an empty,
// ready to use sequence.
type Sequence[T any] struct {
	data []T
}

// New returns an empty Sequence.
func New[T any]() *Sequence[T] {
	return &Sequence[T]{}
}

// NewWith returns a Sequence containing a single element x.
func NewWith[T any](x T) *Sequence[T] {
	s := &Sequence[T]{data: make([]T, 1, minCap)}
	s.data[0] = x
	return s
}

func grow(n int) int {
	c := minCap
	for c < n {
		c *= 2
	}
	return c
}

func (s *Sequence[T]) growBy(n int) {
	need := len(s.data) + n
	if need <= cap(s.data) {
		return
	}
	nc := grow(need)
	nd := make([]T, len(s.data), nc)
	copy(nd, s.data)
	s.data = nd
}

// Push appends x to the end of the sequence.
func (s *Sequence[T]) Push(x T) {
	s.growBy(1)
	s.data = append(s.data, x)
}

// Pop removes and returns the last element. It panics if the sequence is
// empty; callers must check Len() first.
func (s *Sequence[T]) Pop() T {
	n := len(s.data)
	if n == 0 {
		panic("seq: Pop on empty sequence")
	}
	x := s.data[n-1]
	s.data = s.data[:n-1]
	return x
}

// Get returns the element at index i. It panics if i is out of range.
func (s *Sequence[T]) Get(i int) T {
	return s.data[i]
}

// Set replaces the element at index i. It panics if i is out of range.
func (s *Sequence[T]) Set(i int, x T) {
	s.data[i] = x
}

// Head returns the first element. It panics if the sequence is empty.
func (s *Sequence[T]) Head() T {
	return s.data[0]
}

// Tail returns the last element. It panics if the sequence is empty.
func (s *Sequence[T]) Tail() T {
	return s.data[len(s.data)-1]
}

// Len returns the number of elements in the sequence.
func (s *Sequence[T]) Len() int {
	return len(s.data)
}

// Append appends the contents of other to s, in order.
func (s *Sequence[T]) Append(other *Sequence[T]) {
	s.growBy(len(other.data))
	s.data = append(s.data, other.data...)
}

// Copy returns a new Sequence with the same elements as s.
func (s *Sequence[T]) Copy() *Sequence[T] {
	c := &Sequence[T]{data: make([]T, len(s.data), cap(s.data))}
	copy(c.data, s.data)
	return c
}

// Reverse reverses the sequence in place.
func (s *Sequence[T]) Reverse() {
	for i, j := 0, len(s.data)-1; i < j; i, j = i+1, j-1 {
		s.data[i], s.data[j] = s.data[j], s.data[i]
	}
}

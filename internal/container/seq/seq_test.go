package seq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushPop(t *testing.T) {
	s := New[int]()
	require.Equal(t, 0, s.Len())
	for i := 0; i < 20; i++ {
		s.Push(i)
	}
	require.Equal(t, 20, s.Len())
	for i := 19; i >= 0; i-- {
		assert.Equal(t, i, s.Pop())
	}
	assert.Equal(t, 0, s.Len())
}

func TestPopEmptyPanics(t *testing.T) {
	s := New[string]()
	assert.Panics(t, func() { s.Pop() })
}

func TestHeadTail(t *testing.T) {
	s := New[int]()
	s.Push(1)
	s.Push(2)
	s.Push(3)
	assert.Equal(t, 1, s.Head())
	assert.Equal(t, 3, s.Tail())
}

func TestGetSet(t *testing.T) {
	s := New[int]()
	s.Push(10)
	s.Push(20)
	s.Set(0, 99)
	assert.Equal(t, 99, s.Get(0))
	assert.Equal(t, 20, s.Get(1))
}

func TestNewWith(t *testing.T) {
	s := NewWith(42)
	require.Equal(t, 1, s.Len())
	assert.Equal(t, 42, s.Head())
}

func TestAppend(t *testing.T) {
	a := New[int]()
	a.Push(1)
	a.Push(2)
	b := New[int]()
	b.Push(3)
	b.Push(4)
	a.Append(b)
	assert.Equal(t, 4, a.Len())
	assert.Equal(t, 1, a.Get(0))
	assert.Equal(t, 4, a.Get(3))
}

func TestCopyIsIndependent(t *testing.T) {
	a := New[int]()
	a.Push(1)
	a.Push(2)
	b := a.Copy()
	b.Push(3)
	assert.Equal(t, 2, a.Len())
	assert.Equal(t, 3, b.Len())
}

func TestReverse(t *testing.T) {
	s := New[int]()
	for i := 0; i < 5; i++ {
		s.Push(i)
	}
	s.Reverse()
	for i := 0; i < 5; i++ {
		assert.Equal(t, 4-i, s.Get(i))
	}
}

func TestGrowthPastInitialCapacity(t *testing.T) {
	s := New[int]()
	for i := 0; i < 100; i++ {
		s.Push(i)
	}
	require.Equal(t, 100, s.Len())
	for i := 0; i < 100; i++ {
		assert.Equal(t, i, s.Get(i))
	}
}

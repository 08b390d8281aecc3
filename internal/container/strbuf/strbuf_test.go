package strbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAndAppend(t *testing.T) {
	b := New()
	b.Write('a')
	b.AppendString("bc")
	require.Equal(t, 3, b.Len())
	assert.Equal(t, []byte("abc"), b.Body())
}

func TestPrintf(t *testing.T) {
	b := New()
	b.Printf("%d-%s", 42, "x")
	assert.Equal(t, "42-x", string(b.Body()))
}

func TestGrowthPastInitialCapacity(t *testing.T) {
	b := New()
	for i := 0; i < 100; i++ {
		b.Write(byte('a' + i%26))
	}
	assert.Equal(t, 100, b.Len())
}

func TestQuoteChar(t *testing.T) {
	cases := []struct {
		in   byte
		want string
	}{
		{'"', `\"`},
		{'\\', `\\`},
		{'\n', `\n`},
		{'\t', `\t`},
		{'a', "a"},
		{0x01, `\x01`},
	}
	for _, c := range cases {
		b := New()
		QuoteChar(b, c.in)
		assert.Equal(t, c.want, string(b.Body()))
	}
}

func TestQuoteCString(t *testing.T) {
	b := New()
	QuoteCString(b, []byte("a\"b\n"))
	assert.Equal(t, `"a\"b\n"`, string(b.Body()))
}

func TestQuoteCStringLen(t *testing.T) {
	b := New()
	QuoteCStringLen(b, []byte("abcdef"), 3)
	assert.Equal(t, `"abc"`, string(b.Body()))
}

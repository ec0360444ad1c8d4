package hashing

import (
	"crypto/sha256"
	"errors"
	"hash"
	"math"
	"testing"

	commonerrors "github.com/arcticronin/SortedArray/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSha256(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    Hashable
		expected string
	}{
		{
			name:     "empty string",
			input:    HashableString(""),
			expected: "af5570f5a1810b7af78caf4bc70a660f0df51e42baf91d4de5b2328de0e83dfc",
		},
		{
			name:     "simple string",
			input:    HashableString("hello"),
			expected: "c6402d15196824a049ad87c371a5047a673535c2ac8607e2bfa483f7591cc27a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := Sha256(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestFastHashes(t *testing.T) {
	t.Parallel()

	funcs := map[string]HashFunc{
		"xxh3":     Xxh3,
		"xxhash64": XxHash64,
	}

	for name, fn := range funcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			a, err := fn(HashableString("hello"))
			require.NoError(t, err)

			b, err := fn(HashableString("hello"))
			require.NoError(t, err)

			c, err := fn(HashableString("world"))
			require.NoError(t, err)

			assert.Len(t, a, 16)
			assert.Equal(t, a, b)
			assert.NotEqual(t, a, c)
		})
	}
}

type failingHashable struct{}

var errFailing = errors.New("cannot hash")

func (failingHashable) UpdateHash(hash.Hash) error {
	return errFailing
}

func TestHashFunctions_Error(t *testing.T) {
	t.Parallel()

	for _, fn := range []HashFunc{Sha256, Xxh3, XxHash64} {
		out, err := fn(failingHashable{})
		require.ErrorIs(t, err, errFailing)
		assert.Empty(t, out)
	}
}

func TestWriteValue(t *testing.T) {
	t.Parallel()

	sum := func(values ...any) []byte {
		h := sha256.New()
		for _, v := range values {
			require.NoError(t, WriteValue(h, v))
		}

		return h.Sum(nil)
	}

	t.Run("same values hash the same", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, sum(1, "a", 2.5, true), sum(1, "a", 2.5, true))
	})

	t.Run("strings are length prefixed", func(t *testing.T) {
		t.Parallel()

		assert.NotEqual(t, sum("ab", "c"), sum("a", "bc"))
	})

	t.Run("int widths agree on value", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, sum(int8(7)), sum(int64(7)))
	})

	t.Run("hashable values hash themselves", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, sum("x"), sum(HashableString("x")))
		assert.NotEqual(t, sum(HashableString("ab"), HashableString("c")),
			sum(HashableString("a"), HashableString("bc")))
	})

	t.Run("floats hash like they compare", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, sum(0.0), sum(math.Copysign(0, -1)))
		assert.Equal(t, sum(float32(0)), sum(float32(math.Copysign(0, -1))))
		assert.Equal(t, sum(math.NaN()), sum(math.Float64frombits(0x7ff8000000000001)))
		assert.NotEqual(t, sum(0.0), sum(1.0))
	})

	t.Run("unsupported types are rejected", func(t *testing.T) {
		t.Parallel()

		err := WriteValue(sha256.New(), struct{ A int }{A: 1})
		require.ErrorIs(t, err, commonerrors.ErrUnsupportedType)
		assert.Contains(t, err.Error(), "struct")
	})
}

func TestHashableString(t *testing.T) {
	t.Parallel()

	s := HashableString("abc")

	assert.Equal(t, "abc", s.String())
	assert.True(t, s.Equals("abc"))
	assert.False(t, s.Equals("abd"))
}

package sequence

import (
	"bytes"
	"fmt"
	"math"
	"testing"

	"github.com/arcticronin/SortedArray/compare"
	"github.com/arcticronin/SortedArray/errors"
	"github.com/arcticronin/SortedArray/hashing"
	"github.com/arcticronin/SortedArray/sortable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct{ x, y int }

func (p point) String() string {
	return fmt.Sprintf("(%d,%d)", p.x, p.y)
}

func TestString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []int
		want  string
	}{
		{name: "empty", input: nil, want: "size: 0 |"},
		{name: "single", input: []int{7}, want: "size: 1 | 7"},
		{name: "sorted on insert", input: []int{3, -1, 2}, want: "size: 3 | -1 2 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			seq, err := FromSlice(tt.input, compare.Ascending[int](), quiet())
			require.NoError(t, err)

			assert.Equal(t, tt.want, seq.String())
			assert.Equal(t, tt.want, fmt.Sprint(seq))
		})
	}
}

func TestStringUsesStringer(t *testing.T) {
	t.Parallel()

	seq := New(compare.FromLess(func(a, b point) bool { return a.x < b.x }), quiet())
	require.NoError(t, seq.InsertAll(point{2, 0}, point{1, 5}))

	assert.Equal(t, "size: 2 | (1,5) (2,0)", seq.String())
}

func TestWriteTo(t *testing.T) {
	t.Parallel()

	seq, err := FromSlice([]string{"b", "a"}, compare.Ascending[string](), quiet())
	require.NoError(t, err)

	var buf bytes.Buffer

	n, err := seq.WriteTo(&buf)
	require.NoError(t, err)

	assert.Equal(t, "size: 2 | a b\n", buf.String())
	assert.Equal(t, int64(buf.Len()), n)
}

func TestFingerprint(t *testing.T) {
	t.Parallel()

	build := func(values ...int) *Sequence[int] {
		seq, err := FromSlice(values, compare.Ascending[int](), quiet())
		require.NoError(t, err)

		return seq
	}

	for name, fn := range map[string]hashing.HashFunc{
		"sha256":   hashing.Sha256,
		"xxh3":     hashing.Xxh3,
		"xxhash64": hashing.XxHash64,
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			a, err := build(3, 1, 2).Fingerprint(fn)
			require.NoError(t, err)

			b, err := build(1, 2, 3).Fingerprint(fn)
			require.NoError(t, err)

			c, err := build(1, 2).Fingerprint(fn)
			require.NoError(t, err)

			empty, err := build().Fingerprint(fn)
			require.NoError(t, err)

			assert.Equal(t, a, b)
			assert.NotEqual(t, a, c)
			assert.NotEqual(t, c, empty)
		})
	}
}

func TestFingerprintUnsupportedElement(t *testing.T) {
	t.Parallel()

	seq := New(compare.FromLess(func(a, b point) bool { return a.x < b.x }), quiet())
	require.NoError(t, seq.Insert(point{1, 1}))

	_, err := seq.Fingerprint(hashing.Xxh3)
	require.ErrorIs(t, err, errors.ErrUnsupportedType)
}

func TestFingerprintElementBoundaries(t *testing.T) {
	t.Parallel()

	build := func(values ...hashing.HashableString) *Sequence[hashing.HashableString] {
		seq := New(compare.FromLess(func(a, b hashing.HashableString) bool { return a < b }), quiet())
		require.NoError(t, seq.InsertAll(values...))

		return seq
	}

	a, b := build("ab", "c"), build("a", "bc")
	require.False(t, a.Equals(b))

	fa, err := a.Fingerprint(hashing.Xxh3)
	require.NoError(t, err)

	fb, err := b.Fingerprint(hashing.Xxh3)
	require.NoError(t, err)

	assert.NotEqual(t, fa, fb)
}

func TestFingerprintFollowsEquals(t *testing.T) {
	t.Parallel()

	build := func(values ...sortable.Float64) *Sequence[sortable.Float64] {
		seq := NewSortable[sortable.Float64](quiet())
		require.NoError(t, seq.InsertAll(values...))

		return seq
	}

	tests := []struct {
		name string
		a, b *Sequence[sortable.Float64]
	}{
		{
			name: "signed zeros",
			a:    build(0, 1.5),
			b:    build(sortable.Float64(math.Copysign(0, -1)), 1.5),
		},
		{
			name: "nan payloads",
			a:    build(sortable.Float64(math.NaN())),
			b:    build(sortable.Float64(math.Float64frombits(0x7ff8000000000001))),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.True(t, tt.a.Equals(tt.b))

			fa, err := tt.a.Fingerprint(hashing.Xxh3)
			require.NoError(t, err)

			fb, err := tt.b.Fingerprint(hashing.Xxh3)
			require.NoError(t, err)

			assert.Equal(t, fa, fb)
		})
	}
}

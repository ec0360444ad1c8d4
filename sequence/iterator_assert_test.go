//go:build !assertions_disabled

package sequence

import (
	"testing"

	"github.com/arcticronin/SortedArray/compare"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIteratorPreconditions(t *testing.T) {
	t.Parallel()

	t.Run("stale after insert", func(t *testing.T) {
		t.Parallel()

		seq := tens(t)
		it := seq.Begin()

		require.NoError(t, seq.Insert(5))

		assert.Panics(t, func() { it.Value() })
		assert.Equal(t, 5, seq.Begin().Value())
	})

	t.Run("stale after remove", func(t *testing.T) {
		t.Parallel()

		seq := tens(t)
		it := seq.Begin()

		require.NoError(t, seq.Remove(30))

		assert.Panics(t, func() { it.Value() })
	})

	t.Run("failed remove keeps iterators", func(t *testing.T) {
		t.Parallel()

		seq := tens(t)
		it := seq.Begin()

		require.Error(t, seq.Remove(31))

		assert.NotPanics(t, func() { it.Value() })
	})

	t.Run("stale after swap", func(t *testing.T) {
		t.Parallel()

		a, b := tens(t), tens(t)
		ia, ib := a.Begin(), b.Begin()

		a.Swap(b)

		assert.Panics(t, func() { ia.Value() })
		assert.Panics(t, func() { ib.Value() })
	})

	t.Run("stale after make empty", func(t *testing.T) {
		t.Parallel()

		seq := tens(t)
		it := seq.Begin()

		seq.MakeEmpty()

		assert.Panics(t, func() { it.Value() })
	})

	t.Run("end and out of range", func(t *testing.T) {
		t.Parallel()

		seq := tens(t)

		assert.Panics(t, func() { seq.End().Value() })
		assert.Panics(t, func() { seq.Begin().Prev().Value() })
		assert.Panics(t, func() { seq.Begin().At(5) })
		assert.Panics(t, func() { seq.At(-1) })
		assert.Panics(t, func() { seq.At(5) })
	})

	t.Run("zero iterator", func(t *testing.T) {
		t.Parallel()

		var it Iterator[int]

		assert.Panics(t, func() { it.Value() })
	})

	t.Run("distance between sequences", func(t *testing.T) {
		t.Parallel()

		a, b := tens(t), tens(t)

		assert.Panics(t, func() { a.End().Distance(b.Begin()) })
		assert.Panics(t, func() { a.Begin().Less(b.End()) })
	})

	t.Run("distance across modifications", func(t *testing.T) {
		t.Parallel()

		seq := tens(t)
		before := seq.Begin()

		require.NoError(t, seq.Insert(1))

		assert.Panics(t, func() { seq.End().Distance(before) })
	})

	t.Run("reversed range", func(t *testing.T) {
		t.Parallel()

		seq := tens(t)

		assert.Panics(t, func() {
			_, _ = FromRange(seq.End(), seq.Begin(), compare.Ascending[int](), quiet())
		})
	})
}

func TestNewRequiresCompletePolicy(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		New(compare.Policy[int]{Less: compare.Ascending[int]().Less})
	})
}

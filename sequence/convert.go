package sequence

import (
	"fmt"
	"iter"
	"slices"

	"github.com/arcticronin/SortedArray/assert"
	"github.com/arcticronin/SortedArray/compare"
	"github.com/arcticronin/SortedArray/errors"
	"github.com/arcticronin/SortedArray/logger"
)

// FromSeq builds a sequence from every value produced by seq.
func FromSeq[T any](seq iter.Seq[T], policy compare.Policy[T], opts ...Option) (*Sequence[T], error) {
	return build(seq, identity[T], policy, opts)
}

// FromSlice builds a sequence from items. The slice itself is not retained.
func FromSlice[T any](items []T, policy compare.Policy[T], opts ...Option) (*Sequence[T], error) {
	return FromSeq(slices.Values(items), policy, opts...)
}

// FromRange builds a sequence from the elements in [first, last). Both
// iterators must come from the same sequence, and first must not be past last.
func FromRange[T any](first, last Iterator[T], policy compare.Policy[T], opts ...Option) (*Sequence[T], error) {
	return FromRangeConverted(first, last, identity[T], policy, opts...)
}

// FromRangeConverted converts every element in [first, last) and builds a
// sequence of the results ordered by policy. The first failure discards
// everything built so far; conversion errors wrap errors.ErrConversion.
func FromRangeConverted[S, T any](
	first, last Iterator[S],
	convert func(S) (T, error),
	policy compare.Policy[T],
	opts ...Option,
) (*Sequence[T], error) {
	if first.owner != last.owner {
		return nil, errors.ErrForeignIterator
	}

	assert.True(first.LessOrEqual(last), "sequence: range starts at %d, after its end at %d", first.pos, last.pos)

	return build(first.upTo(last), convert, policy, opts)
}

// Convert builds a sequence with a different element type and order from
// src. Every element is converted and inserted again, so the order of the
// result follows policy, not src. The first failure discards everything
// built so far; conversion errors wrap errors.ErrConversion.
func Convert[S, T any](
	src *Sequence[S],
	convert func(S) (T, error),
	policy compare.Policy[T],
	opts ...Option,
) (*Sequence[T], error) {
	return build(src.Values(), convert, policy, opts)
}

func identity[T any](v T) (T, error) {
	return v, nil
}

func build[S, T any](
	items iter.Seq[S],
	convert func(S) (T, error),
	policy compare.Policy[T],
	opts []Option,
) (*Sequence[T], error) {
	out := New(policy, opts...)
	index := 0

	for item := range items {
		converted, err := convert(item)
		if err != nil {
			err = logger.AnnotateError(fmt.Errorf("%w: %w", errors.ErrConversion, err), "index", index)

			return nil, out.abandon(err)
		}

		if err := out.Insert(converted); err != nil {
			return nil, out.abandon(logger.AnnotateError(err, "index", index))
		}

		index++
	}

	return out, nil
}

// abandon empties a sequence under construction and passes err through.
func (s *Sequence[T]) abandon(err error) error {
	s.log.Debug("construction abandoned", "elements", len(s.items), "error", err)
	s.MakeEmpty()

	return err
}

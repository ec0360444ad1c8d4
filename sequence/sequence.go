package sequence

import (
	"cmp"
	"fmt"
	"iter"
	"log/slog"
	"slices"

	"github.com/arcticronin/SortedArray/assert"
	"github.com/arcticronin/SortedArray/compare"
	"github.com/arcticronin/SortedArray/errors"
	"github.com/arcticronin/SortedArray/logger"
	"github.com/arcticronin/SortedArray/sortable"
)

// Sequence is a sorted multiset stored in a contiguous slice.
// Use New (or NewOrdered, NewSortable) to create one; the zero value has no
// policy and is not usable.
type Sequence[T any] struct {
	items      []T
	policy     compare.Policy[T]
	copier     func(T) (T, error)
	generation uint64

	name         string
	log          *slog.Logger
	metrics      *instruments
	traceLookups bool
}

var (
	_ compare.Comparable[*Sequence[int]] = (*Sequence[int])(nil)
	_ fmt.Stringer                       = (*Sequence[int])(nil)
)

// New returns an empty sequence ordered by policy.
// It panics if either predicate of the policy is nil, or if WithCopier was
// given a function for a different element type. The copier check holds in
// every build, including assertions_disabled.
func New[T any](policy compare.Policy[T], opts ...Option) *Sequence[T] {
	assert.True(policy.Valid(), "sequence: policy needs both Less and Equal")

	var cfg settings

	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Sequence[T]{
		policy:       policy,
		name:         cfg.name,
		log:          cfg.logger,
		traceLookups: cfg.traceLookups,
	}

	if cfg.copier != nil {
		copier, ok := cfg.copier.(func(T) (T, error))
		if !ok {
			var zero T

			panic(fmt.Sprintf("sequence: copier has type %T, want func(%T) (%T, error)", cfg.copier, zero, zero))
		}

		s.copier = copier
	}

	if s.log == nil {
		s.log = logger.Get()
	}

	if s.name != "" {
		s.log = s.log.With("sequence", s.name)
	}

	if cfg.metrics {
		s.metrics = newInstruments(s.name)
	}

	return s
}

// NewOrdered returns an empty sequence of a cmp.Ordered type in ascending order.
func NewOrdered[T cmp.Ordered](opts ...Option) *Sequence[T] {
	return New(compare.Ascending[T](), opts...)
}

// NewSortable returns an empty sequence ordered by the element type's own
// Equals and LessThan methods.
func NewSortable[T sortable.Sortable[T]](opts ...Option) *Sequence[T] {
	return New(sortable.Policy[T](), opts...)
}

// emptyLike returns an empty sequence sharing s's policy, copier, name and
// logger. It records no metrics, so building it never counts against s.
func (s *Sequence[T]) emptyLike() *Sequence[T] {
	return &Sequence[T]{
		policy:       s.policy,
		copier:       s.copier,
		name:         s.name,
		log:          s.log,
		traceLookups: s.traceLookups,
	}
}

// Len returns the number of elements.
func (s *Sequence[T]) Len() int {
	return len(s.items)
}

// Empty reports whether the sequence holds no elements.
func (s *Sequence[T]) Empty() bool {
	return len(s.items) == 0
}

// At returns the element at index. The index must be in [0, Len()).
func (s *Sequence[T]) At(index int) T {
	assert.InBounds(index, len(s.items), "sequence: index %d out of range [0, %d)", index, len(s.items))

	return s.items[index]
}

// Policy returns the ordering policy of the sequence.
func (s *Sequence[T]) Policy() compare.Policy[T] {
	return s.policy
}

// Name returns the name given with WithName or WithConfig.
func (s *Sequence[T]) Name() string {
	return s.name
}

// Slice returns a copy of the elements in order.
func (s *Sequence[T]) Slice() []T {
	return slices.Clone(s.items)
}

// All iterates over index/element pairs from front to back.
func (s *Sequence[T]) All() iter.Seq2[int, T] {
	return slices.All(s.items)
}

// Values iterates over the elements from front to back.
func (s *Sequence[T]) Values() iter.Seq[T] {
	return slices.Values(s.items)
}

// Backward iterates over index/element pairs from back to front.
func (s *Sequence[T]) Backward() iter.Seq2[int, T] {
	return slices.Backward(s.items)
}

// Equals reports whether both sequences have the same length and pairwise
// equal elements under the receiver's policy.
func (s *Sequence[T]) Equals(other *Sequence[T]) bool {
	if s == other {
		return true
	}

	if s == nil || other == nil || len(s.items) != len(other.items) {
		return false
	}

	for i := range s.items {
		if !s.policy.Equal(s.items[i], other.items[i]) {
			return false
		}
	}

	return true
}

// Clone returns an independent deep copy. Elements pass through the copier in
// their current order, so no re-sorting takes place. If any copy fails,
// nothing is built and the error is returned. The copy does not record
// metrics.
func (s *Sequence[T]) Clone() (*Sequence[T], error) {
	out := s.emptyLike()

	if len(s.items) == 0 {
		return out, nil
	}

	items := make([]T, len(s.items))

	for i, item := range s.items {
		copied, err := s.copyElement(item)
		if err != nil {
			s.log.Debug("clone abandoned", "error", logger.AnnotateError(err, "index", i))

			return nil, err
		}

		items[i] = copied
	}

	out.commit(items)

	return out, nil
}

// copyElement duplicates item through the copier, if one is configured.
func (s *Sequence[T]) copyElement(item T) (T, error) {
	if s.copier == nil {
		return item, nil
	}

	copied, err := s.copier(item)
	if err != nil {
		s.metrics.copyFailed()

		var zero T

		return zero, fmt.Errorf("%w: %w", errors.ErrElementCopy, err)
	}

	return copied, nil
}

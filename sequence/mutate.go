package sequence

import (
	"fmt"

	"github.com/arcticronin/SortedArray/errors"
	"github.com/arcticronin/SortedArray/logger"
)

// Insert adds a copy of item after every element that does not sort after
// it. If the copier fails the sequence is left unchanged and an error
// wrapping errors.ErrElementCopy is returned.
func (s *Sequence[T]) Insert(item T) error {
	copied, err := s.copyElement(item)
	if err != nil {
		s.log.Debug("insert abandoned", "error", err)

		return err
	}

	s.commit(s.insertInto(s.items, copied))
	s.metrics.inserted(1)

	return nil
}

// InsertAll inserts every item, or none of them. All copies are made before
// anything is placed; every copier failure is reported in the returned error.
func (s *Sequence[T]) InsertAll(items ...T) error {
	if len(items) == 0 {
		return nil
	}

	var (
		staged = make([]T, 0, len(items))
		errs   errors.Collection
	)

	for i, item := range items {
		copied, err := s.copyElement(item)
		if err != nil {
			errs.Add(logger.AnnotateError(err, "index", i))

			continue
		}

		staged = append(staged, copied)
	}

	if errs.HasError() {
		err := errs.GetError()
		s.log.Debug("batch insert abandoned", "failures", errs.Len(), "error", err)

		return err
	}

	next := s.items
	for _, item := range staged {
		next = s.insertInto(next, item)
	}

	s.commit(next)
	s.metrics.inserted(len(staged))

	return nil
}

// insertInto returns a new buffer holding items plus item at its sorted
// position. items is never modified.
func (s *Sequence[T]) insertInto(items []T, item T) []T {
	index := s.searchSorted(items, item)

	next := make([]T, len(items)+1)
	copy(next, items[:index])
	next[index] = item
	copy(next[index+1:], items[index:])

	return next
}

// Remove deletes the first element equal to item. If there is none, the
// sequence is left unchanged and an error wrapping errors.ErrNotFound is
// returned.
func (s *Sequence[T]) Remove(item T) error {
	index, found := s.IndexOf(item)
	if !found {
		s.metrics.removeMissed()

		err := logger.AnnotateError(fmt.Errorf("%w: %v", errors.ErrNotFound, item), "length", len(s.items))
		s.log.Debug("remove found nothing", "error", err)

		return err
	}

	var next []T

	if len(s.items) > 1 {
		next = make([]T, len(s.items)-1)
		copy(next, s.items[:index])
		copy(next[index:], s.items[index+1:])
	}

	s.commit(next)
	s.metrics.removed()

	return nil
}

// MakeEmpty releases every element. Calling it on an empty sequence does nothing.
func (s *Sequence[T]) MakeEmpty() {
	if s.items == nil {
		return
	}

	s.commit(nil)
}

// Assign replaces the contents, policy and copier of s with a deep copy of
// other's. If copying fails s is left unchanged.
func (s *Sequence[T]) Assign(other *Sequence[T]) error {
	if s == other {
		return nil
	}

	clone, err := other.Clone()
	if err != nil {
		return err
	}

	s.Swap(clone)

	return nil
}

// Swap exchanges the elements, policy and copier of s and other. Names,
// loggers and metrics stay with their sequence. Iterators into either
// sequence are invalidated.
func (s *Sequence[T]) Swap(other *Sequence[T]) {
	if s == other {
		return
	}

	s.items, other.items = other.items, s.items
	s.policy, other.policy = other.policy, s.policy
	s.copier, other.copier = other.copier, s.copier

	s.generation++
	other.generation++
}

// commit installs next as the element buffer. It is the only place where the
// buffer of a live sequence changes.
func (s *Sequence[T]) commit(next []T) {
	if len(next) == 0 {
		next = nil
	}

	s.items = next
	s.generation++
	s.metrics.reallocated(len(next))
}

package sequence

import (
	"cmp"
	"iter"

	"github.com/arcticronin/SortedArray/assert"
)

// Iterator is a random-access position in a Sequence. It is a small value
// type; copy it freely.
//
// An iterator stays valid until the next structural change of its sequence
// (Insert, InsertAll, successful Remove, MakeEmpty, Assign, Swap). Reading
// through a stale iterator, through End, or outside [0, Len()) panics.
// Positions may be moved anywhere; only reading is checked.
//
// Elements are read-only through an iterator. Changing an element in a way
// that affects its order breaks the sequence.
type Iterator[T any] struct {
	owner      *Sequence[T]
	items      []T
	generation uint64
	pos        int
}

// Begin returns an iterator at the first element.
func (s *Sequence[T]) Begin() Iterator[T] {
	return s.iteratorAt(0)
}

// End returns an iterator one past the last element.
func (s *Sequence[T]) End() Iterator[T] {
	return s.iteratorAt(len(s.items))
}

func (s *Sequence[T]) iteratorAt(pos int) Iterator[T] {
	return Iterator[T]{
		owner:      s,
		items:      s.items,
		generation: s.generation,
		pos:        pos,
	}
}

func (it Iterator[T]) checkLive() {
	assert.True(it.owner != nil, "sequence: iterator is not attached to a sequence")
	assert.True(it.generation == it.owner.generation,
		"sequence: iterator used after its sequence was modified")
}

func (it Iterator[T]) checkComparable(other Iterator[T]) {
	assert.True(it.owner == other.owner && it.generation == other.generation,
		"sequence: iterators do not point into the same sequence state")
}

// Value returns the element at the iterator's position.
func (it Iterator[T]) Value() T {
	return *it.Pointer()
}

// Pointer returns the address of the element at the iterator's position,
// for reading fields of large elements without a copy.
func (it Iterator[T]) Pointer() *T {
	it.checkLive()
	assert.InBounds(it.pos, len(it.items),
		"sequence: cannot read at position %d of a sequence of length %d", it.pos, len(it.items))

	return &it.items[it.pos]
}

// At returns the element n positions away.
func (it Iterator[T]) At(n int) T {
	return it.Advance(n).Value()
}

// Next returns an iterator one position further.
func (it Iterator[T]) Next() Iterator[T] {
	return it.Advance(1)
}

// Prev returns an iterator one position back.
func (it Iterator[T]) Prev() Iterator[T] {
	return it.Advance(-1)
}

// Advance returns an iterator n positions away; n may be negative.
func (it Iterator[T]) Advance(n int) Iterator[T] {
	it.pos += n

	return it
}

// Increment moves the iterator forward in place and returns it.
func (it *Iterator[T]) Increment() *Iterator[T] {
	return it.Step(1)
}

// Decrement moves the iterator back in place and returns it.
func (it *Iterator[T]) Decrement() *Iterator[T] {
	return it.Step(-1)
}

// PostIncrement moves the iterator forward in place and returns its previous state.
func (it *Iterator[T]) PostIncrement() Iterator[T] {
	old := *it
	it.pos++

	return old
}

// PostDecrement moves the iterator back in place and returns its previous state.
func (it *Iterator[T]) PostDecrement() Iterator[T] {
	old := *it
	it.pos--

	return old
}

// Step moves the iterator n positions in place and returns it.
func (it *Iterator[T]) Step(n int) *Iterator[T] {
	it.pos += n

	return it
}

// Distance returns the number of steps from other to it.
func (it Iterator[T]) Distance(other Iterator[T]) int {
	it.checkComparable(other)

	return it.pos - other.pos
}

// Compare returns -1, 0 or +1 as it is before, at or after other.
func (it Iterator[T]) Compare(other Iterator[T]) int {
	it.checkComparable(other)

	return cmp.Compare(it.pos, other.pos)
}

// Equal reports whether both iterators point at the same position of the
// same sequence state. Unlike Compare and Distance it never panics: an
// iterator from another sequence, or one made stale by a modification, is
// simply not equal.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.owner == other.owner && it.generation == other.generation && it.pos == other.pos
}

// NotEqual is the negation of Equal and never panics.
func (it Iterator[T]) NotEqual(other Iterator[T]) bool {
	return !it.Equal(other)
}

func (it Iterator[T]) Less(other Iterator[T]) bool {
	return it.Compare(other) < 0
}

func (it Iterator[T]) LessOrEqual(other Iterator[T]) bool {
	return it.Compare(other) <= 0
}

func (it Iterator[T]) Greater(other Iterator[T]) bool {
	return it.Compare(other) > 0
}

func (it Iterator[T]) GreaterOrEqual(other Iterator[T]) bool {
	return it.Compare(other) >= 0
}

// IsEnd reports whether the iterator is one past the last element.
func (it Iterator[T]) IsEnd() bool {
	return it.pos == len(it.items)
}

// Index returns the iterator's position.
func (it Iterator[T]) Index() int {
	return it.pos
}

// upTo yields the elements from it up to, but not including, last.
func (it Iterator[T]) upTo(last Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := it; cur.Less(last); cur.Increment() {
			if !yield(cur.Value()) {
				return
			}
		}
	}
}

package compare

import "cmp"

// Less is a strict ordering predicate: it reports whether a sorts before b.
// It must be irreflexive, asymmetric and transitive.
type Less[T any] func(a, b T) bool

// Equal is an equivalence predicate used for lookups and removal.
type Equal[T any] func(a, b T) bool

// Policy bundles the two predicates a sorted container is parameterized over.
//
// The predicates must agree with each other: whenever Equal(a, b) holds,
// neither Less(a, b) nor Less(b, a) may hold. Policies carry no state of
// their own beyond what the closures capture, so a Policy value may be
// copied freely and shared between containers.
type Policy[T any] struct {
	Less  Less[T]
	Equal Equal[T]
}

// Ascending orders any cmp.Ordered type from smallest to largest.
// NaN sorts before every other float, following cmp.Less.
func Ascending[T cmp.Ordered]() Policy[T] {
	return Policy[T]{
		Less:  cmp.Less[T],
		Equal: func(a, b T) bool { return cmp.Compare(a, b) == 0 },
	}
}

// Descending orders any cmp.Ordered type from largest to smallest.
func Descending[T cmp.Ordered]() Policy[T] {
	return Ascending[T]().Reverse()
}

// FromLess builds a Policy whose Equal is order-equivalence under less,
// i.e. neither element sorts before the other.
func FromLess[T any](less Less[T]) Policy[T] {
	return Policy[T]{
		Less: less,
		Equal: func(a, b T) bool {
			return !less(a, b) && !less(b, a)
		},
	}
}

// Reverse returns a policy with the opposite order and the same equality.
func (p Policy[T]) Reverse() Policy[T] {
	less := p.Less

	return Policy[T]{
		Less: func(a, b T) bool {
			return less(b, a)
		},
		Equal: p.Equal,
	}
}

// Compare returns -1, 0 or +1 depending on whether a sorts before, is
// equivalent to, or sorts after b.
func (p Policy[T]) Compare(a, b T) int {
	switch {
	case p.Less(a, b):
		return -1
	case p.Less(b, a):
		return 1
	default:
		return 0
	}
}

// Consistent reports whether the policy honours its contract for the pair
// (a, b): Less is irreflexive on both values and asymmetric on the pair, and
// Equal never holds for a pair that Less can tell apart.
func (p Policy[T]) Consistent(a, b T) bool {
	if p.Less(a, a) || p.Less(b, b) {
		return false
	}

	ab, ba := p.Less(a, b), p.Less(b, a)
	if ab && ba {
		return false
	}

	if p.Equal(a, b) && (ab || ba) {
		return false
	}

	return p.Equal(a, b) == p.Equal(b, a)
}

// Valid reports whether both predicates are set.
func (p Policy[T]) Valid() bool {
	return p.Less != nil && p.Equal != nil
}

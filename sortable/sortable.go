package sortable

import (
	"github.com/arcticronin/SortedArray/compare"
)

type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Policy returns the ordering policy defined by T's own methods.
func Policy[T Sortable[T]]() compare.Policy[T] {
	return compare.Policy[T]{
		Less: func(a, b T) bool {
			return a.LessThan(b)
		},
		Equal: func(a, b T) bool {
			return a.Equals(b)
		},
	}
}

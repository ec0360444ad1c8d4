package sortable

import (
	"hash"

	"github.com/arcticronin/SortedArray/hashing"
)

// Int is a sortable wrapper type for the built-in int type.
//
// To convert back to a regular int, use a type conversion:
//
//	var s sortable.Int = 42
//	regularInt := int(s)
type Int int

// Compile-time check that Int implements Sortable[Int].
var _ Sortable[Int] = (*Int)(nil)

// Equals returns true if this Int has the same value as the other Int.
func (i Int) Equals(other Int) bool {
	return int(i) == int(other)
}

// LessThan returns true if this Int is numerically less than the other Int.
func (i Int) LessThan(other Int) bool {
	return int(i) < int(other)
}

func (i Int) UpdateHash(h hash.Hash) error {
	return hashing.WriteValue(h, int64(i))
}

// Int64 is a sortable wrapper type for the built-in int64 type.
type Int64 int64

var _ Sortable[Int64] = (*Int64)(nil)

func (i Int64) Equals(other Int64) bool {
	return i == other
}

func (i Int64) LessThan(other Int64) bool {
	return i < other
}

func (i Int64) UpdateHash(h hash.Hash) error {
	return hashing.WriteValue(h, int64(i))
}

package sortable

import (
	"cmp"
	"hash"

	"github.com/arcticronin/SortedArray/hashing"
)

// Float64 is a sortable wrapper type for the built-in float64 type.
// NaN is ordered before every other value and is equal to itself, so that
// sequences holding NaN stay consistently ordered.
type Float64 float64

var _ Sortable[Float64] = (*Float64)(nil)

// Equals returns true if both values compare equal, treating NaN as equal to NaN.
func (f Float64) Equals(other Float64) bool {
	return cmp.Compare(float64(f), float64(other)) == 0
}

// LessThan returns true if this Float64 sorts before the other.
func (f Float64) LessThan(other Float64) bool {
	return cmp.Less(float64(f), float64(other))
}

func (f Float64) UpdateHash(h hash.Hash) error {
	return hashing.WriteValue(h, float64(f))
}

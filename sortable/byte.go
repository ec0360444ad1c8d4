package sortable

import (
	"hash"

	"github.com/arcticronin/SortedArray/hashing"
)

// Byte is a sortable wrapper type for the built-in byte type.
//
// To convert back to a regular byte, use a type conversion:
//
//	var s sortable.Byte = 'x'
//	regularByte := byte(s)
type Byte byte

// Compile-time check that Byte implements Sortable[Byte].
var _ Sortable[Byte] = (*Byte)(nil)

// Equals returns true if this Byte has the same value as the other Byte.
func (b Byte) Equals(other Byte) bool {
	return byte(b) == byte(other)
}

// LessThan returns true if this Byte is numerically less than the other Byte.
func (b Byte) LessThan(other Byte) bool {
	return byte(b) < byte(other)
}

func (b Byte) UpdateHash(h hash.Hash) error {
	return hashing.WriteValue(h, byte(b))
}

// Package hashing lets values feed themselves into a hash.Hash so that whole
// containers can be fingerprinted with an interchangeable hash function.
package hashing

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"hash"
	"math"

	"github.com/OneOfOne/xxhash"
	"github.com/arcticronin/SortedArray/errors"
	"github.com/zeebo/xxh3"
)

// HashFunc is a function that takes a Hashable object
// and returns a string representation of its hashing.
// As an example, the Sha256 function is a HashFunc.
// This lets us talk about hashing functions in a generic way.
type HashFunc func(hashable Hashable) (string, error)

// Hashable is an interface that allows an object to update
// a hash.Hash with its contents. This is useful for hashing
// objects so that they can be easily compared.
type Hashable interface {
	UpdateHash(h hash.Hash) error
}

// Sha256 returns the SHA256 hashing of the given Hashable
// as a hex-encoded string. If the Hashable fails to
// update the hashing, an error is returned.
func Sha256(hashable Hashable) (string, error) {
	return digest(sha256.New(), hashable)
}

// Xxh3 returns the 64-bit XXH3 hash of the given Hashable as a hex-encoded
// string. It is much faster than Sha256 and is meant for in-process
// comparisons, not for anything security related.
func Xxh3(hashable Hashable) (string, error) {
	return digest(xxh3.New(), hashable)
}

// XxHash64 returns the xxHash64 hash of the given Hashable as a hex-encoded string.
func XxHash64(hashable Hashable) (string, error) {
	return digest(xxhash.New64(), hashable)
}

func digest(h hash.Hash, hashable Hashable) (string, error) {
	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// HashableString is a string that can be hashed.
type HashableString string

func (s HashableString) String() string {
	return string(s)
}

func (s HashableString) UpdateHash(h hash.Hash) error {
	return writeBytes(h, []byte(s))
}

func (s HashableString) Equals(other HashableString) bool {
	return s == other
}

// WriteUint64 writes v to h as 8 big-endian bytes.
func WriteUint64(h hash.Hash, v uint64) error {
	var buf [8]byte

	binary.BigEndian.PutUint64(buf[:], v)

	_, err := h.Write(buf[:])

	return err
}

// WriteValue feeds a single value into h. Values implementing Hashable hash
// themselves; the built-in numeric kinds, bools, strings and byte slices are
// written in a fixed-width or length-prefixed encoding so that adjacent
// values can't run together. Anything else is rejected with ErrUnsupportedType.
func WriteValue(h hash.Hash, value any) error { //nolint:cyclop
	switch typed := value.(type) {
	case Hashable:
		return typed.UpdateHash(h)
	case int:
		return WriteUint64(h, uint64(typed)) //nolint:gosec
	case int8:
		return WriteUint64(h, uint64(typed)) //nolint:gosec
	case int16:
		return WriteUint64(h, uint64(typed)) //nolint:gosec
	case int32:
		return WriteUint64(h, uint64(typed)) //nolint:gosec
	case int64:
		return WriteUint64(h, uint64(typed)) //nolint:gosec
	case uint:
		return WriteUint64(h, uint64(typed))
	case uint8:
		return WriteUint64(h, uint64(typed))
	case uint16:
		return WriteUint64(h, uint64(typed))
	case uint32:
		return WriteUint64(h, uint64(typed))
	case uint64:
		return WriteUint64(h, typed)
	case float32:
		return WriteUint64(h, floatBits(float64(typed)))
	case float64:
		return WriteUint64(h, floatBits(typed))
	case bool:
		if typed {
			return WriteUint64(h, 1)
		}

		return WriteUint64(h, 0)
	case string:
		return writeBytes(h, []byte(typed))
	case []byte:
		return writeBytes(h, typed)
	default:
		return fmt.Errorf("%w: %T", errors.ErrUnsupportedType, value)
	}
}

// floatBits maps every value that cmp.Compare treats as equal to the same
// bits: -0 hashes as +0 and every NaN as one canonical NaN.
func floatBits(f float64) uint64 {
	switch {
	case f == 0:
		return 0
	case math.IsNaN(f):
		return math.Float64bits(math.NaN())
	default:
		return math.Float64bits(f)
	}
}

func writeBytes(h hash.Hash, b []byte) error {
	if err := WriteUint64(h, uint64(len(b))); err != nil {
		return err
	}

	_, err := h.Write(b)

	return err
}

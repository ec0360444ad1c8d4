package sequence

import (
	"hash"

	"github.com/arcticronin/SortedArray/hashing"
	"github.com/arcticronin/SortedArray/logger"
)

var _ hashing.Hashable = (*Sequence[int])(nil)

// UpdateHash writes the length and then every element, in order, into h.
// Elements must implement hashing.Hashable or be a type supported by
// hashing.WriteValue.
func (s *Sequence[T]) UpdateHash(h hash.Hash) error {
	if err := hashing.WriteUint64(h, uint64(len(s.items))); err != nil {
		return err
	}

	for i, item := range s.items {
		if err := hashing.WriteValue(h, item); err != nil {
			return logger.AnnotateError(err, "index", i)
		}
	}

	return nil
}

// Fingerprint returns the digest of the sequence under fn, for example
// hashing.Xxh3. Sequences with equal elements in the same order have equal
// fingerprints, provided elements the policy treats as equal also hash
// equally (true for the sortable wrappers and for cmp.Ordered values under
// compare.Ascending).
func (s *Sequence[T]) Fingerprint(fn hashing.HashFunc) (string, error) {
	return fn(s)
}

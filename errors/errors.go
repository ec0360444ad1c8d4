// Package errors holds the sentinel errors shared by the sequence library,
// plus a small helper for accumulating several failures into one error.
package errors

import "errors"

var (
	// ErrNotFound is returned when no element equivalent to the target exists.
	ErrNotFound = errors.New("element not found")

	// ErrElementCopy is returned when the configured element copier fails.
	ErrElementCopy = errors.New("element copy failed")

	// ErrConversion is returned when a converting constructor cannot convert an element.
	ErrConversion = errors.New("element conversion failed")

	// ErrForeignIterator is returned when two iterators that bound a range
	// were not obtained from the same sequence.
	ErrForeignIterator = errors.New("iterators belong to different sequences")

	// ErrUnsupportedType is returned when hashing a value of an unsupported type.
	ErrUnsupportedType = errors.New("unsupported type for hashing")
)

// Collection is a thread-unsafe utility for accumulating multiple errors.
// It provides methods to add errors, check for errors, and retrieve them as a single combined error.
// Use this when you need to collect errors from multiple operations and return them together.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are automatically ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear removes all errors from the collection, resetting it to an empty state.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns the number of errors collected so far.
func (c *Collection) Len() int {
	return len(c.errors)
}

// GetError returns the collected errors as a single error.
// Returns nil if the collection is empty, the single error if there's only one,
// or a joined error (using errors.Join) if there are multiple errors.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}

package compare

import "go.uber.org/atomic"

// Counts records how many times each predicate of a Counting policy ran.
type Counts struct {
	Less  atomic.Int64
	Equal atomic.Int64
}

// Total returns the number of predicate calls of either kind.
func (c *Counts) Total() int64 {
	return c.Less.Load() + c.Equal.Load()
}

// Reset zeroes both counters.
func (c *Counts) Reset() {
	c.Less.Store(0)
	c.Equal.Store(0)
}

// Counting wraps a policy so that every predicate call is counted. It is
// meant for tests and benchmarks that need to observe how much work a
// lookup did.
func Counting[T any](policy Policy[T]) (Policy[T], *Counts) {
	counts := &Counts{}
	less, equal := policy.Less, policy.Equal

	return Policy[T]{
		Less: func(a, b T) bool {
			counts.Less.Inc()

			return less(a, b)
		},
		Equal: func(a, b T) bool {
			counts.Equal.Inc()

			return equal(a, b)
		},
	}, counts
}

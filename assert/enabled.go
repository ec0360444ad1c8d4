//go:build !assertions_disabled

package assert

// Enabled reports whether assertions are compiled in.
const Enabled = true

// True asserts that the given value is true.
// If the assertion fails, it panics with a message.
// The optional args can be used to provide a formatted panic message:
// - If the first arg is a string, it's used as a format string with remaining args.
// - Otherwise, all args are included in the panic message.
func True(value bool, args ...any) {
	if value {
		return
	}

	fail(args...)
}

// False asserts that the given value is false.
// The optional args are passed to True and follow the same formatting rules.
func False(value bool, args ...any) {
	True(!value, args...)
}

// InBounds asserts that 0 <= index < length.
// If no args are given, the panic message names the index and the length.
func InBounds(index, length int, args ...any) {
	if index >= 0 && index < length {
		return
	}

	if len(args) == 0 {
		fail("index %d out of bounds [0, %d)", index, length)
	}

	fail(args...)
}

//go:build assertions_disabled

package assert

// Enabled reports whether assertions are compiled in.
const Enabled = false

// True is a no-op when assertions are disabled.
func True(value bool, args ...any) {
	// Intentionally left blank
}

// False is a no-op when assertions are disabled.
func False(value bool, args ...any) {
	// Intentionally left blank
}

// InBounds is a no-op when assertions are disabled.
func InBounds(index, length int, args ...any) {
	// Intentionally left blank
}

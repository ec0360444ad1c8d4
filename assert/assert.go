// Package assert provides precondition checks that panic on violation.
//
// The checks are compiled in by default. Building with the
// assertions_disabled tag turns every check into a no-op, which trades the
// diagnostics for speed in optimized builds.
package assert

import "fmt"

// fail panics with a message built from args.
// - If the first arg is a string, it's used as a format string with remaining args.
// - Otherwise, all args are included in the panic message.
func fail(args ...any) {
	if len(args) == 0 {
		panic("assertion failed")
	}

	first := args[0]
	remaining := args[1:]

	if firstStr, ok := first.(string); ok {
		panic(fmt.Sprintf(firstStr, remaining...))
	}

	panic(fmt.Sprintf("assertion failed: %v", args))
}

//nolint:ireturn
package envutil

import (
	"errors"
	"fmt"
	"log/slog"
)

var (
	ErrBadEnvVar     = errors.New("error parsing environment variable")
	ErrEnvVarMissing = errors.New("missing environment variable")
)

// Reader is the result of looking up one key in a Source: the parsed value,
// whether the key was set, and any parse error.
type Reader[A any] struct {
	key     string
	present bool
	err     error

	value A
}

// Value returns the parsed value. It fails with ErrBadEnvVar if parsing
// failed and with ErrEnvVarMissing if the key was not set and no Default
// applies.
func (e Reader[A]) Value() (A, error) {
	switch {
	case e.err != nil:
		return e.value, fmt.Errorf("%w %s: %w", ErrBadEnvVar, e.key, e.err)
	case !e.present:
		return e.value, fmt.Errorf("%w %s", ErrEnvVarMissing, e.key)
	default:
		return e.value, nil
	}
}

// ValueOrElse returns the parsed value, or fallback when the key is unset or
// unparsable. Parse errors are logged as warnings.
func (e Reader[A]) ValueOrElse(fallback A) A {
	if e.HasValue() {
		return e.value
	}

	if e.err != nil {
		slog.Warn("error reading environment variable, using fallback value",
			"key", e.key, "error", e.err, "fallback", fallback)
	}

	return fallback
}

// HasValue reports whether the key was set and parsed cleanly.
func (e Reader[A]) HasValue() bool {
	return e.present && e.err == nil
}

// HasError reports whether parsing failed.
func (e Reader[A]) HasError() bool {
	return e.err != nil
}

// Map parses or converts the value of env with f. Unset keys and earlier
// errors pass through without calling f.
func Map[A any, B any](env Reader[A], f func(A) (B, error)) Reader[B] {
	out := Reader[B]{
		key:     env.key,
		present: env.present,
		err:     env.err,
	}

	if env.HasValue() {
		out.value, out.err = f(env.value)
	}

	return out
}

// Package envutil reads typed configuration values from the process
// environment or from any other key/value source, such as an env file.
package envutil

import (
	"log/slog"
	"maps"
	"os"
	"strconv"
	"strings"
)

// Source looks up a raw configuration value by key.
type Source func(key string) (string, bool)

// Environment reads from the process environment.
var Environment Source = os.LookupEnv //nolint:gochecknoglobals

// FromMap returns a Source backed by a copy of vars.
func FromMap(vars map[string]string) Source {
	snapshot := maps.Clone(vars)

	return func(key string) (string, bool) {
		val, ok := snapshot[key]

		return val, ok
	}
}

// Overlay returns a Source that consults each source in order and returns the
// first value found. It lets an env file provide defaults underneath the real
// environment.
func Overlay(sources ...Source) Source {
	return func(key string) (string, bool) {
		for _, src := range sources {
			if src == nil {
				continue
			}

			if val, ok := src(key); ok {
				return val, true
			}
		}

		return "", false
	}
}

func (s Source) get(key string) Reader[string] {
	if s == nil {
		return Reader[string]{key: key}
	}

	val, ok := s(key)

	return Reader[string]{
		key:     key,
		present: ok,
		value:   val,
	}
}

// String returns a Reader for the given key.
func (s Source) String(key string, opts ...Option[string]) Reader[string] {
	return apply(s.get(key), opts)
}

// Bool returns a Reader that parses the value with strconv.ParseBool.
func (s Source) Bool(key string, opts ...Option[bool]) Reader[bool] {
	return apply(Map(s.get(key), func(val string) (bool, error) {
		return strconv.ParseBool(strings.TrimSpace(val))
	}), opts)
}

// Int returns a Reader that parses the value as a base 10 integer.
func (s Source) Int(key string, opts ...Option[int]) Reader[int] {
	return apply(Map(s.get(key), func(val string) (int, error) {
		return strconv.Atoi(strings.TrimSpace(val))
	}), opts)
}

// SlogLevel returns a Reader that parses the value as a slog level name
// ("debug", "info", "warn", "error", optionally with an offset like "info+2").
func (s Source) SlogLevel(key string, opts ...Option[slog.Level]) Reader[slog.Level] {
	return apply(Map(s.get(key), func(val string) (slog.Level, error) {
		var level slog.Level

		err := level.UnmarshalText([]byte(strings.TrimSpace(val)))

		return level, err
	}), opts)
}

// String returns a Reader for the given environment variable key.
func String(key string, opts ...Option[string]) Reader[string] {
	return Environment.String(key, opts...)
}

// Bool returns a Reader for the given environment variable key.
func Bool(key string, opts ...Option[bool]) Reader[bool] {
	return Environment.Bool(key, opts...)
}

// Int returns a Reader for the given environment variable key.
func Int(key string, opts ...Option[int]) Reader[int] {
	return Environment.Int(key, opts...)
}

// SlogLevel returns a Reader for the given environment variable key.
func SlogLevel(key string, opts ...Option[slog.Level]) Reader[slog.Level] {
	return Environment.SlogLevel(key, opts...)
}

package sequence

import (
	"log/slog"

	"github.com/arcticronin/SortedArray/envutil"
)

// Option configures a Sequence at construction time.
type Option func(*settings)

type settings struct {
	name         string
	logger       *slog.Logger
	metrics      bool
	traceLookups bool
	copier       any
}

// WithName names the sequence. The name labels its log lines and metrics.
func WithName(name string) Option {
	return func(s *settings) {
		s.name = name
	}
}

// WithLogger sets the logger used for debug output. The default is
// logger.Get() at construction time.
func WithLogger(log *slog.Logger) Option {
	return func(s *settings) {
		s.logger = log
	}
}

// WithMetrics turns the Prometheus counters on or off for the sequence.
func WithMetrics(enabled bool) Option {
	return func(s *settings) {
		s.metrics = enabled
	}
}

// WithLookupTracing logs a debug line every time a lookup gives up early
// because the order proved the target can't be further along.
func WithLookupTracing(enabled bool) Option {
	return func(s *settings) {
		s.traceLookups = enabled
	}
}

// WithCopier sets how elements are duplicated when they enter the sequence
// and when the sequence is deep copied. Use it for element types that hold
// references (slices, maps, pointers) so that the sequence owns independent
// copies. A copier error aborts the operation and leaves the sequence as it
// was before the call.
//
// The copier's element type must match the sequence's; New panics otherwise.
func WithCopier[T any](copier func(T) (T, error)) Option {
	return func(s *settings) {
		s.copier = copier
	}
}

// WithConfig applies a Config loaded from the environment or a file.
func WithConfig(cfg Config) Option {
	return func(s *settings) {
		if cfg.Name != "" {
			s.name = cfg.Name
		}

		s.metrics = cfg.Metrics
		s.traceLookups = cfg.TraceLookups
	}
}

// Config holds the settings that can be supplied from outside the program.
type Config struct {
	Name         string
	Metrics      bool
	TraceLookups bool
}

// LoadConfig reads a Config from src:
//   - SEQUENCE_NAME (string, default empty)
//   - SEQUENCE_METRICS (bool, default false)
//   - SEQUENCE_TRACE_LOOKUPS (bool, default false)
func LoadConfig(src envutil.Source) (Config, error) {
	name, err := src.String("SEQUENCE_NAME", envutil.Default("")).Value()
	if err != nil {
		return Config{}, err
	}

	metrics, err := src.Bool("SEQUENCE_METRICS", envutil.Default(false)).Value()
	if err != nil {
		return Config{}, err
	}

	trace, err := src.Bool("SEQUENCE_TRACE_LOOKUPS", envutil.Default(false)).Value()
	if err != nil {
		return Config{}, err
	}

	return Config{
		Name:         name,
		Metrics:      metrics,
		TraceLookups: trace,
	}, nil
}

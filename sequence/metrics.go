package sequence

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	insertsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sequence_inserts_total",
		Help: "The total number of elements inserted",
	}, []string{"sequence"})

	removesTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sequence_removes_total",
		Help: "The total number of elements removed",
	}, []string{"sequence"})

	removeMissesTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sequence_remove_misses_total",
		Help: "The total number of removals that found no equivalent element",
	}, []string{"sequence"})

	earlyExitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sequence_lookup_early_exits_total",
		Help: "The total number of lookups that stopped before the end of the sequence",
	}, []string{"sequence"})

	reallocationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sequence_reallocations_total",
		Help: "The total number of buffer replacements",
	}, []string{"sequence"})

	elementsCopiedTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sequence_elements_copied_total",
		Help: "The total number of elements written into replacement buffers",
	}, []string{"sequence"})

	copyFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sequence_copy_failures_total",
		Help: "The total number of element copies that failed",
	}, []string{"sequence"})
)

// instruments holds the counters of one sequence, resolved once. A nil
// *instruments records nothing.
type instruments struct {
	inserts       prometheus.Counter
	removes       prometheus.Counter
	removeMisses  prometheus.Counter
	earlyExits    prometheus.Counter
	reallocations prometheus.Counter
	copied        prometheus.Counter
	copyFailures  prometheus.Counter
}

func newInstruments(name string) *instruments {
	return &instruments{
		inserts:       insertsTotal.WithLabelValues(name),
		removes:       removesTotal.WithLabelValues(name),
		removeMisses:  removeMissesTotal.WithLabelValues(name),
		earlyExits:    earlyExitsTotal.WithLabelValues(name),
		reallocations: reallocationsTotal.WithLabelValues(name),
		copied:        elementsCopiedTotal.WithLabelValues(name),
		copyFailures:  copyFailuresTotal.WithLabelValues(name),
	}
}

func (m *instruments) inserted(n int) {
	if m != nil {
		m.inserts.Add(float64(n))
	}
}

func (m *instruments) removed() {
	if m != nil {
		m.removes.Inc()
	}
}

func (m *instruments) removeMissed() {
	if m != nil {
		m.removeMisses.Inc()
	}
}

func (m *instruments) exitedEarly() {
	if m != nil {
		m.earlyExits.Inc()
	}
}

func (m *instruments) reallocated(elements int) {
	if m != nil {
		m.reallocations.Inc()
		m.copied.Add(float64(elements))
	}
}

func (m *instruments) copyFailed() {
	if m != nil {
		m.copyFailures.Inc()
	}
}

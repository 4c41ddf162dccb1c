package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type Observer interface {
	Observe(val float64, labels ...string)

	// for now we will tightly couple to the prometheus collector type
	prometheus.Collector
}

// Metrics holds observers for command validation.
type Metrics struct {
	// Validations counts validated messages, labeled by command and
	// whether the message was accepted.
	Validations Observer
	// Failures counts validation errors, labeled by command and error kind.
	Failures Observer
	// ValidateLatency observes validation time in seconds, labeled by
	// command.
	ValidateLatency Observer
}

func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.Validations,
		m.Failures,
		m.ValidateLatency,
	}
}

// Record observes one validation of a message against the named command.
// kinds holds the kind of each error the validation produced.
func (m *Metrics) Record(command string, kinds []string, d time.Duration) {
	result := "accepted"
	if len(kinds) != 0 {
		result = "rejected"
	}
	m.Validations.Observe(1, command, result)
	for _, k := range kinds {
		m.Failures.Observe(1, command, k)
	}
	m.ValidateLatency.Observe(d.Seconds(), command)
}

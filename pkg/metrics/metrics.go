package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "memo"

// Result label values.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Metrics holds the client's Prometheus collectors. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	RemoteRequests *prometheus.CounterVec
	FallbackWrites *prometheus.CounterVec
	FallbackReads  prometheus.Counter
}

// New creates the collectors and registers them on reg. A nil reg leaves
// them unregistered.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RemoteRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "remote",
				Name:      "requests_total",
				Help:      "Remote memo API calls by operation and result",
			},
			[]string{"op", "result"},
		),
		FallbackWrites: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "fallback",
				Name:      "writes_total",
				Help:      "Writes to the local fallback store by operation",
			},
			[]string{"op"},
		),
		FallbackReads: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "fallback",
				Name:      "reads_total",
				Help:      "Reads of the local fallback store",
			},
		),
	}
	if reg != nil {
		reg.MustRegister(m.RemoteRequests, m.FallbackWrites, m.FallbackReads)
	}
	return m
}

// ObserveRemote counts one remote call.
func (m *Metrics) ObserveRemote(op string, err error) {
	if m == nil {
		return
	}
	result := ResultOK
	if err != nil {
		result = ResultError
	}
	m.RemoteRequests.WithLabelValues(op, result).Inc()
}

func (m *Metrics) ObserveFallbackWrite(op string) {
	if m == nil {
		return
	}
	m.FallbackWrites.WithLabelValues(op).Inc()
}

func (m *Metrics) ObserveFallbackRead() {
	if m == nil {
		return
	}
	m.FallbackReads.Inc()
}

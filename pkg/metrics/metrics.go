// Package metrics pkg/metrics/metrics.go
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// probeLabels is the ordered label tuple every per-endpoint series
// carries. A write with mismatched arity panics in the client library.
var probeLabels = []string{"name", "address"}

// Metrics holds every collector the monitor writes into. All collectors
// share one private registry; a single scrape renders the full set.
type Metrics struct {
	registry *prometheus.Registry

	PingSuccess *prometheus.CounterVec
	PingFail    *prometheus.CounterVec
	PingLatency *prometheus.HistogramVec

	CPUCores    prometheus.Gauge
	LoadAverage prometheus.Gauge
	MemoryTotal prometheus.Gauge
}

// New creates the metric set and registers every collector. A name
// collision is a startup error, not a runtime condition.
func New() (*Metrics, error) {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		PingSuccess: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ping_success",
				Help: "Count of successful pings",
			},
			probeLabels,
		),
		PingFail: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ping_fail",
				Help: "Count of failed pings",
			},
			probeLabels,
		),
		PingLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ping_latency",
				Help:    "Ping latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			probeLabels,
		),
		CPUCores: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "system_cpu_cores",
			Help: "Number of CPU cores",
		}),
		LoadAverage: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "system_load_average",
			Help: "System load average",
		}),
		MemoryTotal: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "system_memory_total",
			Help: "Total system memory",
		}),
	}

	collectors := []prometheus.Collector{
		m.PingSuccess,
		m.PingFail,
		m.PingLatency,
		m.CPUCores,
		m.LoadAverage,
		m.MemoryTotal,
	}

	for _, c := range collectors {
		if err := m.registry.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register collector: %w", err)
		}
	}

	return m, nil
}

// Registry returns the underlying registry for exposition.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordSuccess counts one successful probe and its latency for the
// given endpoint. The latency sample and the success count always move
// together; failed probes never reach this path.
func (m *Metrics) RecordSuccess(name, address string, latency time.Duration) {
	m.PingSuccess.WithLabelValues(name, address).Inc()
	m.PingLatency.WithLabelValues(name, address).Observe(latency.Seconds())
}

// RecordFailure counts one failed probe for the given endpoint. No
// latency is recorded for failures.
func (m *Metrics) RecordFailure(name, address string) {
	m.PingFail.WithLabelValues(name, address).Inc()
}

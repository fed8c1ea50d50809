// Package monitor pkg/monitor/monitor.go
package monitor

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/bwoff11/net-stab/pkg/config"
	"github.com/bwoff11/net-stab/pkg/history"
	"github.com/bwoff11/net-stab/pkg/metrics"
	"github.com/bwoff11/net-stab/pkg/models"
	"github.com/bwoff11/net-stab/pkg/probe"
	"github.com/bwoff11/net-stab/pkg/sysinfo"
)

// Monitor drives an independent probe loop per configured endpoint plus
// a host sampler, all on the configured interval. Probe outcomes feed
// the Prometheus collectors, the history recorder, and any state sinks.
type Monitor struct {
	interval time.Duration
	timeout  time.Duration

	endpoints []models.Endpoint
	registry  probe.Registry
	metrics   *metrics.Metrics
	host      sysinfo.HostReader
	recorder  history.Recorder
	sinks     []StateSink

	probers map[models.EndpointKey]probe.Prober

	wg       sync.WaitGroup
	done     chan struct{}
	stopOnce sync.Once
}

// New builds a prober for every configured endpoint. Endpoints that
// cannot get a prober, such as ICMP without raw-socket privileges, fail
// construction rather than failing silently probe after probe.
func New(
	cfg *config.Config,
	registry probe.Registry,
	m *metrics.Metrics,
	host sysinfo.HostReader,
	recorder history.Recorder,
	sinks ...StateSink,
) (*Monitor, error) {
	probers := make(map[models.EndpointKey]probe.Prober, len(cfg.Endpoints))

	for _, endpoint := range cfg.Endpoints {
		prober, err := registry.Build(endpoint, time.Duration(cfg.ProbeTimeout))
		if err != nil {
			for _, built := range probers {
				_ = built.Close()
			}

			return nil, fmt.Errorf("failed to build prober for %s: %w", endpoint.Name, err)
		}

		probers[endpoint.Key()] = prober
	}

	return &Monitor{
		interval:  time.Duration(cfg.ProbeInterval),
		timeout:   time.Duration(cfg.ProbeTimeout),
		endpoints: cfg.Endpoints,
		registry:  registry,
		metrics:   m,
		host:      host,
		recorder:  recorder,
		sinks:     sinks,
		probers:   probers,
		done:      make(chan struct{}),
	}, nil
}

// Start launches the probe loops and blocks until the context is
// canceled or Stop is called.
func (m *Monitor) Start(ctx context.Context) error {
	log.Printf("Starting monitor with %d endpoints (interval %s)", len(m.endpoints), m.interval)

	for _, endpoint := range m.endpoints {
		prober := m.probers[endpoint.Key()]

		m.wg.Add(1)

		go m.runProber(ctx, endpoint, prober)
	}

	m.wg.Add(1)

	go m.runHostSampler(ctx)

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-m.done:
		return nil
	}
}

// Stop halts the loops, waits for in-flight probes, and releases the
// probers and their shared transport.
func (m *Monitor) Stop(ctx context.Context) error {
	m.stopOnce.Do(func() {
		close(m.done)
	})

	stopped := make(chan struct{})

	go func() {
		m.wg.Wait()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-ctx.Done():
		return ctx.Err()
	}

	for key, prober := range m.probers {
		if err := prober.Close(); err != nil {
			log.Printf("Error closing prober for %s: %v", key.Name, err)
		}
	}

	if err := m.registry.Close(); err != nil {
		return fmt.Errorf("failed to close prober registry: %w", err)
	}

	log.Printf("Monitor stopped (%d endpoints tracked)", m.recorder.ActiveEndpoints())

	return nil
}

func (m *Monitor) runProber(ctx context.Context, endpoint models.Endpoint, prober probe.Prober) {
	defer m.wg.Done()

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	// Probe immediately rather than waiting out the first interval.
	m.probeOnce(ctx, endpoint, prober)

	for {
		select {
		case <-ctx.Done():
			return
		case <-m.done:
			return
		case <-ticker.C:
			m.probeOnce(ctx, endpoint, prober)
		}
	}
}

func (m *Monitor) probeOnce(ctx context.Context, endpoint models.Endpoint, prober probe.Prober) {
	probeCtx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	result := prober.Probe(probeCtx)

	// A probe cut short by shutdown is not an observation.
	if ctx.Err() != nil {
		return
	}

	// Failures are routine for a monitor; they surface as metrics and
	// API state, not log lines.
	if result.Available {
		m.metrics.RecordSuccess(endpoint.Name, endpoint.Address, result.RespTime)
	} else {
		m.metrics.RecordFailure(endpoint.Name, endpoint.Address)
	}

	m.recorder.Record(result)

	state := models.EndpointState{
		Name:        endpoint.Name,
		Address:     endpoint.Address,
		Location:    endpoint.Location,
		Available:   result.Available,
		RespTime:    result.RespTime,
		LastChecked: result.Timestamp,
	}

	if result.Error != nil {
		state.LastError = result.Error.Error()
	}

	for _, sink := range m.sinks {
		sink.UpdateEndpointState(state)
	}
}

func (m *Monitor) runHostSampler(ctx context.Context) {
	defer m.wg.Done()

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.sampleHost(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-m.done:
			return
		case <-ticker.C:
			m.sampleHost(ctx)
		}
	}
}

// sampleHost refreshes the host gauges. Each reading stands alone; a
// restricted /proc entry costs that gauge, not the whole sample.
func (m *Monitor) sampleHost(ctx context.Context) {
	if cores, err := m.host.CPUCores(ctx); err != nil {
		log.Printf("Failed to read CPU cores: %v", err)
	} else {
		m.metrics.CPUCores.Set(cores)
	}

	if load, err := m.host.LoadAverage(ctx); err != nil {
		log.Printf("Failed to read load average: %v", err)
	} else {
		m.metrics.LoadAverage.Set(load)
	}

	if mem, err := m.host.MemoryTotal(ctx); err != nil {
		log.Printf("Failed to read total memory: %v", err)
	} else {
		m.metrics.MemoryTotal.Set(mem)
	}
}

package probe

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gosnmp/gosnmp"

	"github.com/bwoff11/net-stab/pkg/models"
)

const (
	// sysUpTime, answered by effectively every SNMP agent.
	oidSysUpTime = ".1.3.6.1.2.1.1.3.0"

	defaultSNMPPort      = 161
	defaultSNMPCommunity = "public"
	defaultSNMPRetries   = 1
)

// SNMPProber checks reachability by polling sysUpTime. The UDP session
// is kept across probes and reopened after a failure.
type SNMPProber struct {
	endpoint models.Endpoint
	client   *gosnmp.GoSNMP

	mu        sync.Mutex
	connected bool
}

func newSNMPProber(endpoint models.Endpoint, timeout time.Duration) (Prober, error) {
	port := endpoint.Port
	if port == 0 {
		port = defaultSNMPPort
	}

	community := endpoint.Community
	if community == "" {
		community = defaultSNMPCommunity
	}

	return &SNMPProber{
		endpoint: endpoint,
		client: &gosnmp.GoSNMP{
			Target:    endpoint.Address,
			Port:      port,
			Community: community,
			Version:   gosnmp.Version2c,
			Timeout:   timeout,
			Retries:   defaultSNMPRetries,
		},
	}, nil
}

// Probe implements Prober.
func (p *SNMPProber) Probe(ctx context.Context) models.ProbeResult {
	result := models.ProbeResult{Endpoint: p.endpoint, Timestamp: time.Now()}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.client.Context = ctx

	if !p.connected {
		if err := p.client.Connect(); err != nil {
			result.Error = &ProbeError{Op: "connect", Target: p.endpoint.Address, Wrapped: err}
			return result
		}

		p.connected = true
	}

	start := time.Now()

	if _, err := p.client.Get([]string{oidSysUpTime}); err != nil {
		p.disconnectLocked()

		result.Error = &ProbeError{Op: "get", Target: p.endpoint.Address, Wrapped: err}

		return result
	}

	result.Available = true
	result.RespTime = time.Since(start)

	return result
}

// disconnectLocked drops the session so the next probe reconnects.
// Callers hold p.mu.
func (p *SNMPProber) disconnectLocked() {
	if p.client.Conn != nil {
		_ = p.client.Conn.Close()
	}

	p.connected = false
}

// Close implements Prober.
func (p *SNMPProber) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.connected {
		return nil
	}

	p.connected = false

	if p.client.Conn != nil {
		if err := p.client.Conn.Close(); err != nil {
			return fmt.Errorf("failed to close SNMP session: %w", err)
		}
	}

	return nil
}

package probe

import (
	"fmt"
	"sync"
	"time"

	"github.com/bwoff11/net-stab/pkg/models"
)

type proberRegistry struct {
	mu        sync.RWMutex
	factories map[models.ProbeKind]Factory

	transportOnce sync.Once
	transport     *icmpTransport
	transportErr  error
}

// NewRegistry returns a Registry with the built-in probe kinds
// registered. The shared ICMP transport is opened lazily, on the first
// ICMP endpoint built, so configurations without ICMP endpoints never
// need raw-socket privileges.
func NewRegistry() Registry {
	r := &proberRegistry{
		factories: make(map[models.ProbeKind]Factory),
	}

	r.Register(models.KindICMP, r.newICMPProber)
	r.Register(models.KindTCP, newTCPProber)
	r.Register(models.KindHTTP, newHTTPProber)
	r.Register(models.KindSNMP, newSNMPProber)

	return r
}

func (r *proberRegistry) Register(kind models.ProbeKind, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.factories[kind] = factory
}

func (r *proberRegistry) Build(endpoint models.Endpoint, timeout time.Duration) (Prober, error) {
	kind := endpoint.Probe
	if kind == "" {
		kind = models.KindICMP
	}

	r.mu.RLock()
	factory, ok := r.factories[kind]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", errNoFactory, kind)
	}

	return factory(endpoint, timeout)
}

func (r *proberRegistry) newICMPProber(endpoint models.Endpoint, timeout time.Duration) (Prober, error) {
	r.transportOnce.Do(func() {
		r.transport, r.transportErr = newICMPTransport(defaultSendRate)
	})

	if r.transportErr != nil {
		return nil, fmt.Errorf("failed to open ICMP transport: %w", r.transportErr)
	}

	return &ICMPProber{
		endpoint:  endpoint,
		timeout:   timeout,
		transport: r.transport,
	}, nil
}

func (r *proberRegistry) Close() error {
	if r.transport == nil {
		return nil
	}

	return r.transport.Close()
}

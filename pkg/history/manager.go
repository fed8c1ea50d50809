package history

import (
	"sync"
	"sync/atomic"

	"github.com/bwoff11/net-stab/pkg/models"
)

// Probes retained per endpoint.
const defaultRetention = 256

// endpointHistory pairs one endpoint's ring with its lock.
type endpointHistory struct {
	mu     sync.RWMutex
	buffer Store
}

// Manager tracks probe history per endpoint.
type Manager struct {
	endpoints       sync.Map // models.EndpointKey -> *endpointHistory
	retention       int
	activeEndpoints int64 // atomic
}

// NewManager creates a Manager retaining the given number of probes
// per endpoint, or defaultRetention when zero.
func NewManager(retention int) *Manager {
	if retention <= 0 {
		retention = defaultRetention
	}

	return &Manager{retention: retention}
}

// Record implements Recorder.
func (m *Manager) Record(result models.ProbeResult) {
	entry, loaded := m.endpoints.LoadOrStore(result.Endpoint.Key(), &endpointHistory{
		buffer: NewRingBuffer(m.retention),
	})

	if !loaded {
		atomic.AddInt64(&m.activeEndpoints, 1)
	}

	eh := entry.(*endpointHistory)

	eh.mu.Lock()
	defer eh.mu.Unlock()

	eh.buffer.Add(result)
}

// Points implements Recorder. Unknown endpoints return nil.
func (m *Manager) Points(key models.EndpointKey) []models.HistoryPoint {
	entry, ok := m.endpoints.Load(key)
	if !ok {
		return nil
	}

	eh := entry.(*endpointHistory)

	eh.mu.RLock()
	defer eh.mu.RUnlock()

	return eh.buffer.Points()
}

// ActiveEndpoints implements Recorder.
func (m *Manager) ActiveEndpoints() int64 {
	return atomic.LoadInt64(&m.activeEndpoints)
}

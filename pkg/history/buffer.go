package history

import (
	"sync/atomic"
	"time"

	"github.com/bwoff11/net-stab/pkg/models"
)

// historyPoint is the compact in-buffer representation of one probe.
type historyPoint struct {
	timestamp int64
	respTime  int64
	available bool
}

// RingBuffer is a fixed-size ring of probe outcomes. The newest point
// overwrites the oldest once the ring is full. Writers coordinate
// through an atomic position counter; concurrent use is serialized by
// the Manager's per-endpoint locks.
type RingBuffer struct {
	points []historyPoint
	pos    int64 // atomic write counter
	size   int64
}

// NewRingBuffer creates a RingBuffer holding size points.
func NewRingBuffer(size int) *RingBuffer {
	return &RingBuffer{
		points: make([]historyPoint, size),
		size:   int64(size),
	}
}

// Add records one probe outcome.
func (b *RingBuffer) Add(result models.ProbeResult) {
	pos := atomic.AddInt64(&b.pos, 1) - 1
	idx := pos % b.size

	b.points[idx] = historyPoint{
		timestamp: result.Timestamp.UnixNano(),
		respTime:  int64(result.RespTime),
		available: result.Available,
	}
}

// Points returns the recorded outcomes, newest first. Before the ring
// wraps, only the slots written so far are returned.
func (b *RingBuffer) Points() []models.HistoryPoint {
	pos := atomic.LoadInt64(&b.pos)

	n := pos
	if n > b.size {
		n = b.size
	}

	points := make([]models.HistoryPoint, n)

	for i := int64(0); i < n; i++ {
		idx := (pos - i - 1 + b.size) % b.size
		p := b.points[idx]

		points[i] = models.HistoryPoint{
			Timestamp: time.Unix(0, p.timestamp),
			Available: p.available,
			RespTime:  time.Duration(p.respTime),
		}
	}

	return points
}

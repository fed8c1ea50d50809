package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bwoff11/net-stab/pkg/models"
)

func resultAt(ts time.Time, available bool, respTime time.Duration) models.ProbeResult {
	return models.ProbeResult{
		Endpoint:  models.Endpoint{Name: "gw", Address: "192.0.2.1"},
		Available: available,
		RespTime:  respTime,
		Timestamp: ts,
	}
}

func TestRingBufferPartialFill(t *testing.T) {
	buffer := NewRingBuffer(8)

	base := time.Unix(1700000000, 0)

	for i := 0; i < 3; i++ {
		buffer.Add(resultAt(base.Add(time.Duration(i)*time.Second), true, 10*time.Millisecond))
	}

	points := buffer.Points()

	require.Len(t, points, 3)
	assert.Equal(t, base.Add(2*time.Second).UnixNano(), points[0].Timestamp.UnixNano(), "newest point first")
	assert.Equal(t, base.UnixNano(), points[2].Timestamp.UnixNano())
}

func TestRingBufferWrapOverwritesOldest(t *testing.T) {
	buffer := NewRingBuffer(4)

	base := time.Unix(1700000000, 0)

	for i := 0; i < 6; i++ {
		buffer.Add(resultAt(base.Add(time.Duration(i)*time.Second), i%2 == 0, time.Duration(i)*time.Millisecond))
	}

	points := buffer.Points()

	require.Len(t, points, 4)

	// Adds 5 down to 2 survive; 0 and 1 were overwritten.
	for i, point := range points {
		want := base.Add(time.Duration(5-i) * time.Second)
		assert.Equal(t, want.UnixNano(), point.Timestamp.UnixNano())
	}
}

func TestRingBufferEmpty(t *testing.T) {
	buffer := NewRingBuffer(4)
	assert.Empty(t, buffer.Points())
}

func TestRingBufferKeepsOutcome(t *testing.T) {
	buffer := NewRingBuffer(4)

	base := time.Unix(1700000000, 0)

	buffer.Add(resultAt(base, true, 15*time.Millisecond))
	buffer.Add(resultAt(base.Add(time.Second), false, 0))

	points := buffer.Points()

	require.Len(t, points, 2)

	assert.False(t, points[0].Available)
	assert.Zero(t, points[0].RespTime)
	assert.True(t, points[1].Available)
	assert.Equal(t, 15*time.Millisecond, points[1].RespTime)
}

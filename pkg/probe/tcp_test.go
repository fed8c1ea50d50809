package probe

import (
	"context"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bwoff11/net-stab/pkg/models"
)

func listenerPort(t *testing.T, ln net.Listener) uint16 {
	t.Helper()

	_, portStr, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)

	port, err := strconv.ParseUint(portStr, 10, 16)
	require.NoError(t, err)

	return uint16(port)
}

func TestTCPProberOpenPort(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	defer func() { _ = ln.Close() }()

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}

			_ = conn.Close()
		}
	}()

	endpoint := models.Endpoint{
		Name:    "local",
		Address: "127.0.0.1",
		Probe:   models.KindTCP,
		Port:    listenerPort(t, ln),
	}

	prober, err := newTCPProber(endpoint, time.Second)
	require.NoError(t, err)

	result := prober.Probe(context.Background())

	assert.True(t, result.Available)
	assert.NoError(t, result.Error)
	assert.NotZero(t, result.RespTime)
	assert.Equal(t, endpoint, result.Endpoint)
}

func TestTCPProberClosedPort(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	port := listenerPort(t, ln)
	require.NoError(t, ln.Close())

	endpoint := models.Endpoint{
		Name:    "closed",
		Address: "127.0.0.1",
		Probe:   models.KindTCP,
		Port:    port,
	}

	prober, err := newTCPProber(endpoint, time.Second)
	require.NoError(t, err)

	result := prober.Probe(context.Background())

	assert.False(t, result.Available)
	require.Error(t, result.Error)
	assert.Zero(t, result.RespTime)
}

func TestTCPProberCanceledContext(t *testing.T) {
	endpoint := models.Endpoint{
		Name:    "canceled",
		Address: "127.0.0.1",
		Probe:   models.KindTCP,
		Port:    9,
	}

	prober, err := newTCPProber(endpoint, time.Second)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := prober.Probe(ctx)

	assert.False(t, result.Available)
	require.Error(t, result.Error)
}

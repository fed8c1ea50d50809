package probe

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/gosnmp/gosnmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bwoff11/net-stab/pkg/models"
)

func TestSNMPProberDefaults(t *testing.T) {
	prober, err := newSNMPProber(models.Endpoint{Name: "switch", Address: "192.0.2.20", Probe: models.KindSNMP}, 2*time.Second)
	require.NoError(t, err)

	snmpProber, ok := prober.(*SNMPProber)
	require.True(t, ok)

	assert.Equal(t, uint16(defaultSNMPPort), snmpProber.client.Port)
	assert.Equal(t, defaultSNMPCommunity, snmpProber.client.Community)
	assert.Equal(t, gosnmp.Version2c, snmpProber.client.Version)
	assert.Equal(t, 2*time.Second, snmpProber.client.Timeout)
	assert.Equal(t, defaultSNMPRetries, snmpProber.client.Retries)
}

func TestSNMPProberOverrides(t *testing.T) {
	endpoint := models.Endpoint{
		Name:      "router",
		Address:   "192.0.2.30",
		Probe:     models.KindSNMP,
		Port:      1161,
		Community: "ops",
	}

	prober, err := newSNMPProber(endpoint, time.Second)
	require.NoError(t, err)

	snmpProber, ok := prober.(*SNMPProber)
	require.True(t, ok)

	assert.Equal(t, uint16(1161), snmpProber.client.Port)
	assert.Equal(t, "ops", snmpProber.client.Community)
}

func TestSNMPProberUnansweredAgent(t *testing.T) {
	pc, err := net.ListenPacket("udp4", "127.0.0.1:0")
	require.NoError(t, err)

	defer func() { _ = pc.Close() }()

	udpAddr, ok := pc.LocalAddr().(*net.UDPAddr)
	require.True(t, ok)

	endpoint := models.Endpoint{
		Name:    "mute",
		Address: "127.0.0.1",
		Probe:   models.KindSNMP,
		Port:    uint16(udpAddr.Port),
	}

	prober, err := newSNMPProber(endpoint, 200*time.Millisecond)
	require.NoError(t, err)

	result := prober.Probe(context.Background())

	assert.False(t, result.Available)
	require.Error(t, result.Error)

	var probeErr *ProbeError
	require.ErrorAs(t, result.Error, &probeErr)
	assert.Equal(t, "get", probeErr.Op)
	assert.Equal(t, "127.0.0.1", probeErr.Target)

	require.NoError(t, prober.Close())
}

func TestSNMPProberCloseBeforeConnect(t *testing.T) {
	prober, err := newSNMPProber(models.Endpoint{Name: "idle", Address: "192.0.2.40", Probe: models.KindSNMP}, time.Second)
	require.NoError(t, err)

	require.NoError(t, prober.Close())
	require.NoError(t, prober.Close())
}

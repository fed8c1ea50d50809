package probe

import (
	"context"
	"encoding/binary"
	"net"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/icmp"
	"golang.org/x/net/ipv4"

	"github.com/bwoff11/net-stab/pkg/models"
)

func TestChecksumVerifiesToZero(t *testing.T) {
	tests := []struct {
		name   string
		packet []byte
	}{
		{name: "echo request header", packet: []byte{8, 0, 0, 0, 0x12, 0x34, 0x00, 0x01}},
		{name: "odd length", packet: []byte{8, 0, 0, 0, 0x12, 0x34, 0x00, 0x01, 0xff}},
		{name: "all zero", packet: make([]byte, 8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			packet := make([]byte, len(tt.packet))
			copy(packet, tt.packet)

			binary.BigEndian.PutUint16(packet[2:], checksum(packet))

			assert.Zero(t, checksum(packet), "checksummed packet must verify to zero")
		})
	}
}

func TestTemplateLayout(t *testing.T) {
	tr := &icmpTransport{ident: 0xbeef}
	tr.buildTemplate()

	require.Len(t, tr.template, 8)
	assert.Equal(t, byte(8), tr.template[0], "type must be echo request")
	assert.Equal(t, byte(0), tr.template[1], "code must be zero")
	assert.Equal(t, uint16(0xbeef), binary.BigEndian.Uint16(tr.template[4:]))
}

func echoReply(t *testing.T, id, seq uint16) []byte {
	t.Helper()

	msg := icmp.Message{
		Type: ipv4.ICMPTypeEchoReply,
		Body: &icmp.Echo{ID: int(id), Seq: int(seq)},
	}

	wire, err := msg.Marshal(nil)
	require.NoError(t, err)

	return wire
}

func TestHandleReplyMatchesWaiter(t *testing.T) {
	tr := &icmpTransport{
		ident:   0x1234,
		waiters: map[uint16]chan time.Time{},
	}

	reply := make(chan time.Time, 1)
	tr.waiters[7] = reply

	at := time.Now()
	tr.handleReply(echoReply(t, 0x1234, 7), at)

	select {
	case got := <-reply:
		assert.Equal(t, at, got)
	default:
		t.Fatal("expected reply to be delivered")
	}
}

func TestHandleReplyIgnoresForeignTraffic(t *testing.T) {
	tr := &icmpTransport{
		ident:   0x1234,
		waiters: map[uint16]chan time.Time{},
	}

	reply := make(chan time.Time, 1)
	tr.waiters[7] = reply

	// Another process's echo identifier.
	tr.handleReply(echoReply(t, 0x4321, 7), time.Now())

	// A sequence nothing is waiting on.
	tr.handleReply(echoReply(t, 0x1234, 9), time.Now())

	// An outbound echo request looped back.
	request := icmp.Message{Type: ipv4.ICMPTypeEcho, Body: &icmp.Echo{ID: 0x1234, Seq: 7}}
	wire, err := request.Marshal(nil)
	require.NoError(t, err)
	tr.handleReply(wire, time.Now())

	// Garbage.
	tr.handleReply([]byte{0xff}, time.Now())

	assert.Empty(t, reply)
}

func TestResolveIPv4(t *testing.T) {
	tests := []struct {
		name    string
		host    string
		want    string
		wantErr error
	}{
		{name: "ipv4 literal", host: "192.0.2.1", want: "192.0.2.1"},
		{name: "loopback", host: "127.0.0.1", want: "127.0.0.1"},
		{name: "ipv6 literal", host: "::1", wantErr: errNotIPv4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ip, err := resolveIPv4(context.Background(), tt.host)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, ip.String())
		})
	}
}

func TestResolveIPv4Unresolvable(t *testing.T) {
	_, err := resolveIPv4(context.Background(), "netstab.invalid")
	require.Error(t, err)
}

func TestICMPTransportLoopback(t *testing.T) {
	if os.Geteuid() != 0 {
		t.Skip("requires raw socket privileges")
	}

	transport, err := newICMPTransport(defaultSendRate)
	require.NoError(t, err)

	defer func() { require.NoError(t, transport.Close()) }()

	prober := &ICMPProber{
		endpoint:  models.Endpoint{Name: "lo", Address: "127.0.0.1"},
		timeout:   time.Second,
		transport: transport,
	}

	result := prober.Probe(context.Background())

	require.NoError(t, result.Error)
	assert.True(t, result.Available)
	assert.NotZero(t, result.RespTime)
}

func TestICMPTransportClosedFailsPings(t *testing.T) {
	if os.Geteuid() != 0 {
		t.Skip("requires raw socket privileges")
	}

	transport, err := newICMPTransport(defaultSendRate)
	require.NoError(t, err)
	require.NoError(t, transport.Close())
	require.NoError(t, transport.Close(), "second close is a no-op")

	_, err = transport.ping(context.Background(), net.ParseIP("127.0.0.1").To4(), time.Second)
	require.ErrorIs(t, err, errTransportClosed)
}

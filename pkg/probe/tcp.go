package probe

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/bwoff11/net-stab/pkg/models"
)

// TCPProber checks reachability by completing a TCP handshake against
// the endpoint's configured port.
type TCPProber struct {
	endpoint models.Endpoint
	dialer   *net.Dialer
	target   string
}

func newTCPProber(endpoint models.Endpoint, timeout time.Duration) (Prober, error) {
	return &TCPProber{
		endpoint: endpoint,
		dialer:   &net.Dialer{Timeout: timeout},
		target:   net.JoinHostPort(endpoint.Address, strconv.Itoa(int(endpoint.Port))),
	}, nil
}

// Probe implements Prober. Connection refused and timeout both count
// as unavailable; only a completed handshake is success.
func (p *TCPProber) Probe(ctx context.Context) models.ProbeResult {
	result := models.ProbeResult{Endpoint: p.endpoint, Timestamp: time.Now()}

	start := time.Now()

	conn, err := p.dialer.DialContext(ctx, "tcp", p.target)
	if err != nil {
		result.Error = fmt.Errorf("failed to connect to %s: %w", p.target, err)
		return result
	}

	result.Available = true
	result.RespTime = time.Since(start)

	if err := conn.Close(); err != nil {
		result.Error = fmt.Errorf("failed to close connection to %s: %w", p.target, err)
	}

	return result
}

// Close implements Prober.
func (*TCPProber) Close() error {
	return nil
}

// Package probe pkg/probe/icmp.go
package probe

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"golang.org/x/net/icmp"
	"golang.org/x/net/ipv4"
	"golang.org/x/time/rate"

	"github.com/bwoff11/net-stab/pkg/models"
)

const (
	// ICMP protocol number for parsing replies.
	protocolICMP = 1

	// Echoes per second across the shared transport.
	defaultSendRate = 100

	// Buffer size for the reply listener.
	packetBufferSize = 1500

	// Read deadline per listener iteration, so shutdown is noticed.
	listenReadTimeout = 100 * time.Millisecond
)

// icmpTransport owns the raw send socket and the reply listener shared
// by every ICMP prober in the process. Replies are matched to waiting
// probes by echo identifier and sequence number.
type icmpTransport struct {
	rawFD     int
	conn      *icmp.PacketConn
	limiter   *rate.Limiter
	ident     uint16
	template  []byte
	seq       uint32 // atomic
	mu        sync.Mutex
	waiters   map[uint16]chan time.Time
	done      chan struct{}
	closeOnce sync.Once
}

// newICMPTransport opens the raw socket and starts the reply listener.
// Raw sockets need privilege; failure here is a startup error for every
// ICMP endpoint, not a per-probe condition.
func newICMPTransport(sendRate int) (*icmpTransport, error) {
	if sendRate <= 0 {
		sendRate = defaultSendRate
	}

	fd, err := syscall.Socket(syscall.AF_INET, syscall.SOCK_RAW, syscall.IPPROTO_ICMP)
	if err != nil {
		return nil, fmt.Errorf("failed to create raw socket: %w", err)
	}

	conn, err := icmp.ListenPacket("ip4:icmp", "0.0.0.0")
	if err != nil {
		_ = syscall.Close(fd)
		return nil, fmt.Errorf("failed to listen for ICMP replies: %w", err)
	}

	t := &icmpTransport{
		rawFD:   fd,
		conn:    conn,
		limiter: rate.NewLimiter(rate.Limit(sendRate), sendRate),
		ident:   uint16(os.Getpid() & 0xffff),
		waiters: make(map[uint16]chan time.Time),
		done:    make(chan struct{}),
	}

	t.buildTemplate()

	go t.listen()

	return t, nil
}

func (t *icmpTransport) buildTemplate() {
	t.template = make([]byte, 8)
	t.template[0] = 8 // Echo Request
	t.template[1] = 0 // Code 0

	binary.BigEndian.PutUint16(t.template[4:], t.ident)
}

// checksum is the RFC 1071 internet checksum. Sequence and checksum
// fields are stamped per packet, so it runs once per send.
func checksum(data []byte) uint16 {
	var sum uint32

	for i := 0; i < len(data); i += 2 {
		if i+1 < len(data) {
			sum += uint32(data[i])<<8 | uint32(data[i+1])
		} else {
			sum += uint32(data[i]) << 8
		}
	}

	sum = (sum >> 16) + (sum & 0xffff)
	sum += sum >> 16

	return ^uint16(sum)
}

// ping sends one echo request and waits for its reply. The returned
// duration is measured send-to-receive.
func (t *icmpTransport) ping(ctx context.Context, ip net.IP, timeout time.Duration) (time.Duration, error) {
	select {
	case <-t.done:
		return 0, errTransportClosed
	default:
	}

	if err := t.limiter.Wait(ctx); err != nil {
		return 0, fmt.Errorf("send limiter: %w", err)
	}

	seq := uint16(atomic.AddUint32(&t.seq, 1))
	reply := make(chan time.Time, 1)

	t.mu.Lock()
	t.waiters[seq] = reply
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		delete(t.waiters, seq)
		t.mu.Unlock()
	}()

	packet := make([]byte, len(t.template))
	copy(packet, t.template)
	binary.BigEndian.PutUint16(packet[6:], seq)
	binary.BigEndian.PutUint16(packet[2:], checksum(packet))

	var addr [4]byte

	copy(addr[:], ip.To4())

	sent := time.Now()

	if err := syscall.Sendto(t.rawFD, packet, 0, &syscall.SockaddrInet4{Addr: addr}); err != nil {
		return 0, fmt.Errorf("failed to send echo request: %w", err)
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case at := <-reply:
		return at.Sub(sent), nil
	case <-timer.C:
		return 0, errEchoTimeout
	case <-ctx.Done():
		return 0, ctx.Err()
	case <-t.done:
		return 0, errTransportClosed
	}
}

func (t *icmpTransport) listen() {
	packet := make([]byte, packetBufferSize)

	for {
		select {
		case <-t.done:
			return
		default:
		}

		if err := t.conn.SetReadDeadline(time.Now().Add(listenReadTimeout)); err != nil {
			continue
		}

		n, _, err := t.conn.ReadFrom(packet)
		if err != nil {
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				continue
			}

			select {
			case <-t.done:
				return
			default:
			}

			log.Printf("Error reading ICMP packet: %v", err)

			continue
		}

		t.handleReply(packet[:n], time.Now())
	}
}

// handleReply delivers an echo reply to the probe waiting on its
// sequence number. Replies for other processes, and replies arriving
// after their probe timed out, are dropped.
func (t *icmpTransport) handleReply(packet []byte, at time.Time) {
	msg, err := icmp.ParseMessage(protocolICMP, packet)
	if err != nil {
		return
	}

	if msg.Type != ipv4.ICMPTypeEchoReply {
		return
	}

	echo, ok := msg.Body.(*icmp.Echo)
	if !ok {
		return
	}

	if uint16(echo.ID) != t.ident {
		return
	}

	t.mu.Lock()
	reply, ok := t.waiters[uint16(echo.Seq)]
	t.mu.Unlock()

	if !ok {
		return
	}

	select {
	case reply <- at:
	default:
	}
}

// Close stops the listener and releases both sockets. In-flight pings
// fail with errTransportClosed.
func (t *icmpTransport) Close() error {
	var err error

	t.closeOnce.Do(func() {
		close(t.done)

		if cerr := t.conn.Close(); cerr != nil {
			err = fmt.Errorf("failed to close ICMP listener: %w", cerr)
		}

		if cerr := syscall.Close(t.rawFD); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close raw socket: %w", cerr)
		}
	})

	return err
}

// resolveIPv4 resolves host to an IPv4 address, accepting literals
// without a lookup.
func resolveIPv4(ctx context.Context, host string) (net.IP, error) {
	if ip := net.ParseIP(host); ip != nil {
		if ip4 := ip.To4(); ip4 != nil {
			return ip4, nil
		}

		return nil, fmt.Errorf("%w: %s", errNotIPv4, host)
	}

	addrs, err := net.DefaultResolver.LookupIPAddr(ctx, host)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", host, err)
	}

	for _, addr := range addrs {
		if ip4 := addr.IP.To4(); ip4 != nil {
			return ip4, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", errNotIPv4, host)
}

// ICMPProber checks reachability with one ICMP echo per probe cycle.
type ICMPProber struct {
	endpoint  models.Endpoint
	timeout   time.Duration
	transport *icmpTransport
}

// Probe implements Prober.
func (p *ICMPProber) Probe(ctx context.Context) models.ProbeResult {
	result := models.ProbeResult{Endpoint: p.endpoint, Timestamp: time.Now()}

	ip, err := resolveIPv4(ctx, p.endpoint.Address)
	if err != nil {
		result.Error = err
		return result
	}

	rtt, err := p.transport.ping(ctx, ip, p.timeout)
	if err != nil {
		result.Error = err
		return result
	}

	result.Available = true
	result.RespTime = rtt

	return result
}

// Close implements Prober. The shared transport is owned by the
// registry that built this prober.
func (*ICMPProber) Close() error {
	return nil
}

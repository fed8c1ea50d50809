package probe

import (
	"errors"
	"fmt"
)

var (
	errNoFactory       = errors.New("no prober factory registered")
	errNotIPv4         = errors.New("no IPv4 address for host")
	errEchoTimeout     = errors.New("echo reply timed out")
	errTransportClosed = errors.New("icmp transport closed")
	errHTTPStatus      = errors.New("http probe got server error")
)

// ProbeError wraps probe-mechanism errors with operation context.
type ProbeError struct {
	Op      string
	Target  string
	Wrapped error
}

func (e *ProbeError) Error() string {
	return fmt.Sprintf("probe %s failed for target %s: %v", e.Op, e.Target, e.Wrapped)
}

func (e *ProbeError) Unwrap() error {
	return e.Wrapped
}

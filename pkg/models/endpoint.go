package models

// ProbeKind selects the mechanism used to check an endpoint's reachability.
type ProbeKind string

const (
	KindICMP ProbeKind = "icmp"
	KindTCP  ProbeKind = "tcp"
	KindHTTP ProbeKind = "http"
	KindSNMP ProbeKind = "snmp"
)

// Endpoint represents one monitored target. Identity for metrics purposes
// is the (Name, Address) pair; Location is informational only.
type Endpoint struct {
	Name      string    `json:"name" yaml:"name"`
	Address   string    `json:"address" yaml:"address"`
	Location  string    `json:"location,omitempty" yaml:"location,omitempty"`
	Probe     ProbeKind `json:"probe,omitempty" yaml:"probe,omitempty"`
	Port      uint16    `json:"port,omitempty" yaml:"port,omitempty"`
	Community string    `json:"community,omitempty" yaml:"community,omitempty"` // SNMP only
}

// EndpointKey is the value-comparable identity of an endpoint.
type EndpointKey struct {
	Name    string
	Address string
}

// Key returns the endpoint's metrics identity.
func (e Endpoint) Key() EndpointKey {
	return EndpointKey{Name: e.Name, Address: e.Address}
}

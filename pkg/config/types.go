package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/bwoff11/net-stab/pkg/models"
)

const (
	defaultListenAddr    = "127.0.0.1:9898"
	defaultAPIAddr       = "127.0.0.1:8090"
	defaultProbeInterval = 5 * time.Second
	defaultProbeTimeout  = 3 * time.Second
)

// Duration unmarshals either a duration string ("5s") or a bare number
// of seconds.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var v interface{}
	if err := node.Decode(&v); err != nil {
		return err
	}

	switch value := v.(type) {
	case int:
		*d = Duration(time.Duration(value) * time.Second)
		return nil
	case float64:
		*d = Duration(time.Duration(value * float64(time.Second)))
		return nil
	case string:
		dur, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration: %w", err)
		}

		*d = Duration(dur)

		return nil
	default:
		return errInvalidDuration
	}
}

// Config represents the configuration for a monitor instance.
type Config struct {
	ListenAddr    string            `yaml:"listen_addr"`    // metrics exposition, e.g. 127.0.0.1:9898
	APIAddr       string            `yaml:"api_addr"`       // status API, e.g. 127.0.0.1:8090
	ProbeInterval Duration          `yaml:"probe_interval"` // how often each endpoint is probed
	ProbeTimeout  Duration          `yaml:"probe_timeout"`  // per-probe deadline
	Endpoints     []models.Endpoint `yaml:"endpoints"`
}

// Validate applies defaults and rejects configurations the monitor
// cannot run with. An explicit empty endpoint list is valid; an absent
// endpoints key is not.
func (c *Config) Validate() error {
	if c.ListenAddr == "" {
		c.ListenAddr = defaultListenAddr
	}

	if c.APIAddr == "" {
		c.APIAddr = defaultAPIAddr
	}

	if c.ProbeInterval == 0 {
		c.ProbeInterval = Duration(defaultProbeInterval)
	}

	if c.ProbeTimeout == 0 {
		c.ProbeTimeout = Duration(defaultProbeTimeout)
	}

	if c.Endpoints == nil {
		return errEndpointsRequired
	}

	// Names route the status API, so they must be unique.
	seen := make(map[string]struct{}, len(c.Endpoints))

	for i := range c.Endpoints {
		ep := &c.Endpoints[i]

		if ep.Name == "" {
			return fmt.Errorf("%w (endpoint %d)", errEndpointName, i)
		}

		if ep.Address == "" {
			return fmt.Errorf("%w (endpoint %q)", errEndpointAddress, ep.Name)
		}

		if ep.Probe == "" {
			ep.Probe = models.KindICMP
		}

		switch ep.Probe {
		case models.KindICMP, models.KindTCP, models.KindHTTP, models.KindSNMP:
		default:
			return fmt.Errorf("%w: %q (endpoint %q)", errUnknownProbeKind, ep.Probe, ep.Name)
		}

		if ep.Probe == models.KindTCP && ep.Port == 0 {
			return fmt.Errorf("%w (endpoint %q)", errPortRequired, ep.Name)
		}

		if _, ok := seen[ep.Name]; ok {
			return fmt.Errorf("%w: %q", errDuplicateEndpoint, ep.Name)
		}

		seen[ep.Name] = struct{}{}
	}

	return nil
}

package probe

import (
	"context"
	"time"

	"github.com/bwoff11/net-stab/pkg/models"
)

//go:generate mockgen -destination=mock_prober.go -package=probe github.com/bwoff11/net-stab/pkg/probe Prober

// Prober performs single reachability checks against one endpoint.
type Prober interface {
	// Probe runs one check. Mechanism errors are reported inside the
	// result, not returned; callers treat them as probe failures.
	Probe(ctx context.Context) models.ProbeResult
	// Close releases any resources held by the prober.
	Close() error
}

// Factory is a function type returning a Prober for one endpoint.
type Factory func(endpoint models.Endpoint, timeout time.Duration) (Prober, error)

// Registry defines how to store and retrieve prober factories.
type Registry interface {
	Register(kind models.ProbeKind, factory Factory)
	Build(endpoint models.Endpoint, timeout time.Duration) (Prober, error)
	// Close releases resources shared by the probers this registry built.
	Close() error
}

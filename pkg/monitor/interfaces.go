package monitor

import (
	"github.com/bwoff11/net-stab/pkg/models"
)

//go:generate mockgen -destination=mock_monitor.go -package=monitor github.com/bwoff11/net-stab/pkg/monitor StateSink

// StateSink receives endpoint state updates as probes complete.
type StateSink interface {
	UpdateEndpointState(state models.EndpointState)
}

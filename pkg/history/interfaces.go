package history

import (
	"github.com/bwoff11/net-stab/pkg/models"
)

//go:generate mockgen -destination=mock_history.go -package=history github.com/bwoff11/net-stab/pkg/history Store,Recorder

// Store holds the probe history for a single endpoint.
type Store interface {
	Add(result models.ProbeResult)
	Points() []models.HistoryPoint
}

// Recorder tracks probe history across endpoints.
type Recorder interface {
	Record(result models.ProbeResult)
	Points(key models.EndpointKey) []models.HistoryPoint
	ActiveEndpoints() int64
}

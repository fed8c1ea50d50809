package models

import "time"

// ProbeResult represents the outcome of a single reachability check.
type ProbeResult struct {
	Endpoint  Endpoint      `json:"endpoint"`
	Available bool          `json:"available"`
	RespTime  time.Duration `json:"response_time"`
	Timestamp time.Time     `json:"timestamp"`
	Error     error         `json:"-"`
}

// EndpointState is the latest known state of one endpoint, as served by
// the status API and the live feed.
type EndpointState struct {
	Name        string        `json:"name"`
	Address     string        `json:"address"`
	Location    string        `json:"location,omitempty"`
	Available   bool          `json:"available"`
	RespTime    time.Duration `json:"response_time"`
	LastChecked time.Time     `json:"last_checked"`
	LastError   string        `json:"last_error,omitempty"`
}

// StatusSummary aggregates the state of all endpoints.
type StatusSummary struct {
	TotalEndpoints     int       `json:"total_endpoints"`
	AvailableEndpoints int       `json:"available_endpoints"`
	LastUpdate         time.Time `json:"last_update"`
	Uptime             string    `json:"uptime"`
}

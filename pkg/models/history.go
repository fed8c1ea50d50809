package models

import "time"

// HistoryPoint is one retained probe outcome for an endpoint.
type HistoryPoint struct {
	Timestamp time.Time     `json:"timestamp"`
	Available bool          `json:"available"`
	RespTime  time.Duration `json:"response_time"`
}

package sysinfo

import "context"

//go:generate mockgen -destination=mock_sysinfo.go -package=sysinfo github.com/bwoff11/net-stab/pkg/sysinfo HostReader

// HostReader reads coarse host-level resource facts. Each method fails
// independently; callers must tolerate one read failing while the
// others succeed.
type HostReader interface {
	// CPUCores returns the number of logical CPU cores.
	CPUCores(ctx context.Context) (float64, error)
	// LoadAverage returns the 1-minute load average.
	LoadAverage(ctx context.Context) (float64, error)
	// MemoryTotal returns total system memory, in the unit the host
	// facility reports (kB on Linux).
	MemoryTotal(ctx context.Context) (float64, error)
}

// Package sysinfo pkg/sysinfo/procfs.go
package sysinfo

import (
	"context"
	"fmt"

	"github.com/prometheus/procfs"
)

// ProcReader reads host facts from procfs. The mount is opened per read,
// not cached, so a restricted or late-mounted /proc only fails the reads
// it actually affects.
type ProcReader struct {
	mountPoint string
}

// NewProcReader creates a reader against the default /proc mount.
func NewProcReader() *ProcReader {
	return NewProcReaderAt(procfs.DefaultMountPoint)
}

// NewProcReaderAt creates a reader against an alternate procfs mount.
func NewProcReaderAt(mountPoint string) *ProcReader {
	return &ProcReader{mountPoint: mountPoint}
}

func (r *ProcReader) fs() (procfs.FS, error) {
	fs, err := procfs.NewFS(r.mountPoint)
	if err != nil {
		return procfs.FS{}, fmt.Errorf("failed to open procfs at %s: %w", r.mountPoint, err)
	}

	return fs, nil
}

// CPUCores implements HostReader by counting processor entries in cpuinfo.
func (r *ProcReader) CPUCores(_ context.Context) (float64, error) {
	fs, err := r.fs()
	if err != nil {
		return 0, err
	}

	infos, err := fs.CPUInfo()
	if err != nil {
		return 0, fmt.Errorf("failed to read cpuinfo: %w", err)
	}

	if len(infos) == 0 {
		return 0, errNoCPUInfo
	}

	return float64(len(infos)), nil
}

// LoadAverage implements HostReader with the 1-minute loadavg figure.
func (r *ProcReader) LoadAverage(_ context.Context) (float64, error) {
	fs, err := r.fs()
	if err != nil {
		return 0, err
	}

	avg, err := fs.LoadAvg()
	if err != nil {
		return 0, fmt.Errorf("failed to read loadavg: %w", err)
	}

	return avg.Load1, nil
}

// MemoryTotal implements HostReader with MemTotal from meminfo, in kB.
func (r *ProcReader) MemoryTotal(_ context.Context) (float64, error) {
	fs, err := r.fs()
	if err != nil {
		return 0, err
	}

	info, err := fs.Meminfo()
	if err != nil {
		return 0, fmt.Errorf("failed to read meminfo: %w", err)
	}

	if info.MemTotal == nil {
		return 0, errNoMemTotal
	}

	return float64(*info.MemTotal), nil
}

package monitor

import (
	"context"
	"math"
	"os"
	"time"

	"github.com/shirou/gopsutil/v4/process"
)

// Usage is the resource usage of the running process
type Usage struct {
	CPUPercent float64 `json:"cpuPercent"`
	MemoryMB   float64 `json:"memoryMB"`
	Threads    int32   `json:"threads"`
	Uptime     string  `json:"uptime"`
}

// Monitor reports the resource usage of the current process
type Monitor interface {
	Usage(ctx context.Context) (Usage, error)
}

type monitor struct {
	pid     int
	started time.Time
	now     func() time.Time
}

// NewMonitor creates a Monitor for the current process
func NewMonitor() Monitor {
	return &monitor{
		pid:     os.Getpid(),
		started: time.Now(),
		now:     time.Now,
	}
}

// Usage samples cpu, memory and thread count; metrics the platform cannot report stay zero
func (m *monitor) Usage(ctx context.Context) (Usage, error) {
	if m.pid <= 0 || m.pid > math.MaxInt32 {
		return Usage{}, nil
	}

	proc, err := process.NewProcessWithContext(ctx, int32(m.pid)) // #nosec G115 -- PID range checked above
	if err != nil {
		return Usage{}, err
	}

	usage := Usage{
		Uptime: m.now().Sub(m.started).Round(time.Second).String(),
	}

	if cpu, err := proc.CPUPercentWithContext(ctx); err == nil {
		usage.CPUPercent = cpu
	}

	if mem, err := proc.MemoryInfoWithContext(ctx); err == nil {
		usage.MemoryMB = float64(mem.RSS) / 1024 / 1024
	}

	if threads, err := proc.NumThreadsWithContext(ctx); err == nil {
		usage.Threads = threads
	}

	return usage, nil
}

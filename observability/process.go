package observability

import (
	"fmt"
	"os"

	"github.com/shirou/gopsutil/process"
)

// ProcessStats is a point-in-time view of the running server process.
type ProcessStats struct {
	Pid        int32   `json:"pid"`
	RamBytes   uint64  `json:"ramBytes"`
	CpuPercent float64 `json:"cpuPercent"`
}

// SelfStats retrieves memory and CPU usage of the current process.
func SelfStats() (ProcessStats, error) {
	pid := int32(os.Getpid())
	p, err := process.NewProcess(pid)
	if err != nil {
		return ProcessStats{}, fmt.Errorf("open process %d: %w", pid, err)
	}

	memInfo, err := p.MemoryInfo()
	if err != nil {
		return ProcessStats{}, err
	}

	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return ProcessStats{}, err
	}
	return ProcessStats{Pid: pid, RamBytes: memInfo.RSS, CpuPercent: cpuPercent}, nil
}

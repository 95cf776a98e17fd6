// Package hostinfo gathers the host context ioregctl prints next to registry
// dumps.
package hostinfo

import (
	"context"
	"fmt"
	"runtime"

	"github.com/osx-registryio/registryio/internal/iokit"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
)

// Info describes the machine a snapshot was taken on.
type Info struct {
	Hostname        string `json:"hostname"`
	OS              string `json:"os"`
	Arch            string `json:"arch"`
	Platform        string `json:"platform"`
	PlatformVersion string `json:"platform_version"`
	KernelVersion   string `json:"kernel_version"`
	Model           string `json:"model,omitempty"`
	CPUBrand        string `json:"cpu_brand,omitempty"`
	LogicalCPUs     int    `json:"logical_cpus"`
	NativeIOKit     bool   `json:"native_iokit"`
}

var (
	hostInfoWithContext = host.InfoWithContext
	cpuInfoWithContext  = cpu.InfoWithContext
	countsWithContext   = cpu.CountsWithContext
	hardwareModel       = readHardwareModel
)

// Collect queries the host. Only the host query is required; CPU and model
// details are left blank when they cannot be read.
func Collect(ctx context.Context) (*Info, error) {
	hi, err := hostInfoWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read host info: %w", err)
	}

	info := &Info{
		Hostname:        hi.Hostname,
		OS:              hi.OS,
		Arch:            runtime.GOARCH,
		Platform:        hi.Platform,
		PlatformVersion: hi.PlatformVersion,
		KernelVersion:   hi.KernelVersion,
		NativeIOKit:     iokit.Supported,
	}

	if stats, err := cpuInfoWithContext(ctx); err == nil && len(stats) > 0 {
		info.CPUBrand = stats[0].ModelName
	}
	if n, err := countsWithContext(ctx, true); err == nil {
		info.LogicalCPUs = n
	}
	if model, err := hardwareModel(); err == nil {
		info.Model = model
	}

	return info, nil
}

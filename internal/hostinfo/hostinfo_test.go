package hostinfo

import (
	"context"
	"errors"
	"testing"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubCollectors(t *testing.T) {
	t.Helper()
	origHost, origCPU, origCounts, origModel := hostInfoWithContext, cpuInfoWithContext, countsWithContext, hardwareModel
	t.Cleanup(func() {
		hostInfoWithContext, cpuInfoWithContext, countsWithContext, hardwareModel = origHost, origCPU, origCounts, origModel
	})

	hostInfoWithContext = func(context.Context) (*host.InfoStat, error) {
		return &host.InfoStat{
			Hostname:        "studio",
			OS:              "darwin",
			Platform:        "darwin",
			PlatformVersion: "14.5",
			KernelVersion:   "23.5.0",
		}, nil
	}
	cpuInfoWithContext = func(context.Context) ([]cpu.InfoStat, error) {
		return []cpu.InfoStat{{ModelName: "Apple M1"}}, nil
	}
	countsWithContext = func(context.Context, bool) (int, error) { return 8, nil }
	hardwareModel = func() (string, error) { return "MacBookAir10,1", nil }
}

func TestCollect(t *testing.T) {
	stubCollectors(t)

	info, err := Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "studio", info.Hostname)
	assert.Equal(t, "14.5", info.PlatformVersion)
	assert.Equal(t, "Apple M1", info.CPUBrand)
	assert.Equal(t, "MacBookAir10,1", info.Model)
	assert.Equal(t, 8, info.LogicalCPUs)
}

func TestCollect_OptionalFieldsBlank(t *testing.T) {
	stubCollectors(t)
	cpuInfoWithContext = func(context.Context) ([]cpu.InfoStat, error) { return nil, errors.New("no cpuinfo") }
	countsWithContext = func(context.Context, bool) (int, error) { return 0, errors.New("no counts") }
	hardwareModel = func() (string, error) { return "", errors.New("no sysctl") }

	info, err := Collect(context.Background())
	require.NoError(t, err)
	assert.Empty(t, info.CPUBrand)
	assert.Empty(t, info.Model)
	assert.Zero(t, info.LogicalCPUs)
	assert.Equal(t, "darwin", info.OS)
}

func TestCollect_HostError(t *testing.T) {
	stubCollectors(t)
	hostInfoWithContext = func(context.Context) (*host.InfoStat, error) {
		return nil, errors.New("boom")
	}

	_, err := Collect(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read host info")
}

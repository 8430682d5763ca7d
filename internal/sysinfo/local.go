package sysinfo

import (
	"context"
	"fmt"
	"os"
	"os/user"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// cpuSampleInterval 是本地 CPU 负载采样时长。
const cpuSampleInterval = 500 * time.Millisecond

// LocalCollector 通过 gopsutil 采集本机指标。
type LocalCollector struct{}

// Collect 采集本机系统信息快照。
// 任何一项指标失败都视为采集失败，不产出部分快照。
func (c *LocalCollector) Collect(ctx context.Context) (*Snapshot, error) {
	now := time.Now()

	hi, err := host.InfoWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: host info: %v", ErrCollection, err)
	}

	cpus, err := cpu.InfoWithContext(ctx)
	if err != nil || len(cpus) == 0 {
		return nil, fmt.Errorf("%w: cpu info: %v", ErrCollection, err)
	}

	cores, err := cpu.CountsWithContext(ctx, true)
	if err != nil || cores <= 0 {
		cores = runtime.NumCPU()
	}

	// 短采样窗口内的整体 CPU 使用率，跨平台可用（load average 在 Windows 上不可用）。
	loads, err := cpu.PercentWithContext(ctx, cpuSampleInterval, false)
	if err != nil || len(loads) == 0 {
		return nil, fmt.Errorf("%w: cpu load: %v", ErrCollection, err)
	}

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: memory: %v", ErrCollection, err)
	}

	du, err := disk.UsageWithContext(ctx, systemVolume())
	if err != nil {
		return nil, fmt.Errorf("%w: disk usage: %v", ErrCollection, err)
	}

	snap := &Snapshot{
		Hostname:    hi.Hostname,
		Shell:       currentShell(),
		OS:          fmt.Sprintf("%s %s", hi.Platform, hi.PlatformVersion),
		Arch:        hi.KernelArch,
		Kernel:      hi.KernelVersion,
		BootTime:    time.Unix(int64(hi.BootTime), 0),
		Now:         now,
		Uptime:      time.Duration(hi.Uptime) * time.Second,
		CPUName:     CleanCPUName(cpus[0].ModelName),
		CPUCores:    cores,
		CPULoad:     clampPercent(int(loads[0])),
		MemTotalMB:  vm.Total / 1024 / 1024,
		MemFreeMB:   vm.Available / 1024 / 1024,
		DiskTotalGB: float64(du.Total) / 1024 / 1024 / 1024,
		DiskFreeGB:  float64(du.Free) / 1024 / 1024 / 1024,
		Procs:       int(hi.Procs),
	}

	if u, err := user.Current(); err == nil {
		snap.User = u.Username
	}

	return snap, nil
}

// systemVolume 返回系统卷挂载点。
func systemVolume() string {
	if runtime.GOOS == "windows" {
		if drive := os.Getenv("SystemDrive"); drive != "" {
			return drive + `\`
		}
		return `C:\`
	}
	return "/"
}

// currentShell 返回当前 shell，取不到时返回空串由渲染层兜底。
func currentShell() string {
	if runtime.GOOS == "windows" {
		return os.Getenv("ComSpec")
	}
	return os.Getenv("SHELL")
}

func clampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

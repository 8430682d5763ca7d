// Package sysinfo 提供系统指标采集：本地通过 gopsutil，远程通过 SSH。
// 两种采集器产出同一种 Snapshot，供上层统一渲染。
package sysinfo

import (
	"context"
	"errors"
	"time"
)

// 采集错误分类。
// 指标采集失败（权限、平台不支持等）归为 ErrCollection；
// 远程通道建立失败归为 ErrConnection。两者都对整次报告致命，不做重试。
var (
	ErrCollection = errors.New("collection failed")
	ErrConnection = errors.New("connection failed")
)

// Snapshot 是一次采集得到的系统信息快照。
type Snapshot struct {
	Hostname string
	User     string
	Shell    string

	OS     string // 操作系统名称及版本
	Arch   string
	Kernel string

	BootTime time.Time
	Now      time.Time
	Uptime   time.Duration

	CPUName  string
	CPUCores int
	CPULoad  int // 百分比 [0,100]

	MemTotalMB uint64
	MemFreeMB  uint64

	DiskTotalGB float64
	DiskFreeGB  float64

	Procs int

	// loadAvg 是远程采集的 1 分钟负载原始值，换算 CPULoad 时使用。
	loadAvg float64
}

// MemUsedMB 返回已用物理内存（MB）。
func (s *Snapshot) MemUsedMB() uint64 {
	if s.MemFreeMB > s.MemTotalMB {
		return 0
	}
	return s.MemTotalMB - s.MemFreeMB
}

// DiskUsedGB 返回系统卷已用空间（GB）。
func (s *Snapshot) DiskUsedGB() float64 {
	used := s.DiskTotalGB - s.DiskFreeGB
	if used < 0 {
		return 0
	}
	return used
}

// Collector 抽象指标来源，本地与远程采集器都实现它。
type Collector interface {
	Collect(ctx context.Context) (*Snapshot, error)
}

package sysinfo

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// cpuNoise 匹配 CPU 型号中的厂商装饰后缀和主频标注。
var (
	cpuNoise     = regexp.MustCompile(`(?i)\((R|TM|C)\)`)
	cpuFrequency = regexp.MustCompile(`\s*@\s*[\d.]+\s*[GM]Hz\s*$`)
	multiSpace   = regexp.MustCompile(`\s{2,}`)
)

// CleanCPUName 清理 CPU 型号字符串：去掉 (R)/(TM) 装饰、
// 尾部的主频标注和 "CPU"/"Processor" 填充词，合并多余空格。
func CleanCPUName(name string) string {
	name = cpuNoise.ReplaceAllString(name, "")
	name = cpuFrequency.ReplaceAllString(name, "")
	name = strings.ReplaceAll(name, " CPU", "")
	name = strings.ReplaceAll(name, " Processor", "")
	name = multiSpace.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}

// FormatUptime 把时长格式化为 "X days Y hours Z minutes"，为零的头部单位省略。
func FormatUptime(d time.Duration) string {
	if d < time.Minute {
		return "less than a minute"
	}

	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60

	parts := make([]string, 0, 3)
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", days, plural("day", days)))
	}
	if hours > 0 || days > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", hours, plural("hour", hours)))
	}
	parts = append(parts, fmt.Sprintf("%d %s", minutes, plural("minute", minutes)))

	return strings.Join(parts, " ")
}

func plural(unit string, n int) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}

// FormatMB 格式化内存量：小于 10 GB 时用 MB 展示，否则换算为 GB。
func FormatMB(mb uint64) string {
	const mbPerGB = 1024
	if mb < 10*mbPerGB {
		return fmt.Sprintf("%d MB", mb)
	}
	return fmt.Sprintf("%.1f GB", float64(mb)/mbPerGB)
}

// FormatGB 格式化磁盘容量（GB，一位小数）。
func FormatGB(gb float64) string {
	return fmt.Sprintf("%.1f GB", gb)
}

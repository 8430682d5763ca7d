// Package splash 负责系统信息报告的终端排版：
// 左侧 ASCII 图案，右侧逐行字段，图形模式下用百分比条替换数值字段。
package splash

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"

	"sysplash/internal/bar"
	"sysplash/internal/sysinfo"
)

// ANSI 颜色代码常量。
const (
	colorReset = "\033[0m"

	colorTitle = "\033[38;5;45m" // 青色 - user@host 标题
	colorLabel = "\033[38;5;39m" // 蓝色 - 字段标签
	colorLogo  = "\033[38;5;75m" // 浅蓝 - ASCII 图案
)

// gapWidth 是图案与信息列之间的空格数。
const gapWidth = 4

var ansiRegexp = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// logo 是固定的终端图案，逐行与信息列并排输出。
var logo = []string{
	`   .-------------------.   `,
	`   |.-----------------.|   `,
	`   ||       >_        ||   `,
	`   ||                 ||   `,
	`   ||                 ||   `,
	`   ||                 ||   `,
	`   |'-----------------'|   `,
	`   '-------------------'   `,
	`        .---------.        `,
	`   .---'---------'---.    `,
	`   '-----------------'    `,
}

// Options 控制报告排版。
type Options struct {
	// Graphical 为真时，CPU 负载、内存、磁盘三个字段以彩色百分比条绘制。
	Graphical bool
	// Bar 是百分比条的模板参数，Percent 按字段逐项换算覆盖。
	Bar bar.Options
}

// row 是信息列中的一行：纯文本，或需要直接向终端绘制的回调。
type row struct {
	text string
	draw func(io.Writer) error
}

// Report 把快照渲染为完整的 splash 报告写入 w。
// 任何一步失败立即返回错误，不输出残缺报告之外的补救内容。
func Report(w io.Writer, snap *sysinfo.Snapshot, o Options) error {
	rows, err := buildRows(snap, o)
	if err != nil {
		return err
	}

	logoWidth := 0
	for _, line := range logo {
		if lw := visibleWidth(line); lw > logoWidth {
			logoWidth = lw
		}
	}

	total := len(logo)
	if len(rows) > total {
		total = len(rows)
	}

	gap := strings.Repeat(" ", gapWidth)
	for i := 0; i < total; i++ {
		left := strings.Repeat(" ", logoWidth)
		if i < len(logo) {
			line := logo[i]
			left = colorLogo + line + colorReset + strings.Repeat(" ", logoWidth-visibleWidth(line))
		}

		if _, err := io.WriteString(w, left+gap); err != nil {
			return err
		}

		if i < len(rows) {
			r := rows[i]
			if r.draw != nil {
				if err := r.draw(w); err != nil {
					return err
				}
			} else if _, err := io.WriteString(w, r.text); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}

	return nil
}

// buildRows 组装信息列。图形字段的百分比换算失败会使整个报告失败。
func buildRows(snap *sysinfo.Snapshot, o Options) ([]row, error) {
	title := colorTitle + snap.User + colorReset + "@" + colorTitle + snap.Hostname + colorReset

	rows := []row{
		{},
		{text: title},
		{text: strings.Repeat("-", len(snap.User)+len(snap.Hostname)+1)},
		textRow("OS", snap.OS),
		textRow("Arch", snap.Arch),
		textRow("Kernel", snap.Kernel),
		textRow("Boot Time", snap.BootTime.Format("2006-01-02 15:04")),
		textRow("Uptime", sysinfo.FormatUptime(snap.Uptime)),
		textRow("Shell", orUnknown(snap.Shell)),
		textRow("CPU", fmt.Sprintf("%s (%d cores)", snap.CPUName, snap.CPUCores)),
		textRow("Processes", fmt.Sprintf("%d", snap.Procs)),
	}

	metric := func(label string, value, max float64, numeric string) (row, error) {
		if !o.Graphical {
			return textRow(label, numeric), nil
		}
		percent, err := bar.PercentOf(value, max)
		if err != nil {
			return row{}, err
		}
		barOpts := o.Bar
		barOpts.Percent = percent
		prefix := labelPrefix(label)
		return row{draw: func(w io.Writer) error {
			if _, err := io.WriteString(w, prefix); err != nil {
				return err
			}
			return bar.Draw(w, barOpts)
		}}, nil
	}

	cpuRow, err := metric("CPU Load", float64(snap.CPULoad), 100,
		fmt.Sprintf("%d%%", snap.CPULoad))
	if err != nil {
		return nil, err
	}
	memRow, err := metric("Memory", float64(snap.MemUsedMB()), float64(snap.MemTotalMB),
		fmt.Sprintf("%s / %s", sysinfo.FormatMB(snap.MemUsedMB()), sysinfo.FormatMB(snap.MemTotalMB)))
	if err != nil {
		return nil, err
	}
	diskRow, err := metric("Disk", snap.DiskUsedGB(), snap.DiskTotalGB,
		fmt.Sprintf("%s / %s", sysinfo.FormatGB(snap.DiskUsedGB()), sysinfo.FormatGB(snap.DiskTotalGB)))
	if err != nil {
		return nil, err
	}

	rows = append(rows, cpuRow, memRow, diskRow, row{})
	return rows, nil
}

func textRow(label, value string) row {
	return row{text: labelPrefix(label) + value}
}

func labelPrefix(label string) string {
	return colorLabel + label + colorReset + ": "
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Unknown"
	}
	return s
}

// visibleWidth 计算去掉 ANSI 转义后的可见显示宽度。
func visibleWidth(s string) int {
	return runewidth.StringWidth(ansiRegexp.ReplaceAllString(s, ""))
}

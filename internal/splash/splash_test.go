package splash

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sysplash/internal/bar"
	"sysplash/internal/sysinfo"
)

func testSnapshot() *sysinfo.Snapshot {
	return &sysinfo.Snapshot{
		Hostname:    "web-01",
		User:        "deploy",
		Shell:       "/bin/bash",
		OS:          "Debian GNU/Linux 12 (bookworm)",
		Arch:        "x86_64",
		Kernel:      "6.1.0-18-amd64",
		BootTime:    time.Date(2026, 8, 25, 9, 14, 0, 0, time.Local),
		Now:         time.Date(2026, 8, 28, 13, 26, 0, 0, time.Local),
		Uptime:      76*time.Hour + 12*time.Minute,
		CPUName:     "Intel Xeon Gold 6326",
		CPUCores:    8,
		CPULoad:     37,
		MemTotalMB:  7894,
		MemFreeMB:   4653,
		DiskTotalGB: 100.0,
		DiskFreeGB:  76.6,
		Procs:       312,
	}
}

func TestReport_NumericMode_ContainsAllFields(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Report(&buf, testSnapshot(), Options{Bar: bar.NewOptions(0)}))
	out := stripANSI(buf.String())

	for _, want := range []string{
		"deploy@web-01",
		"OS: Debian GNU/Linux 12 (bookworm)",
		"Arch: x86_64",
		"Kernel: 6.1.0-18-amd64",
		"Uptime: 3 days 4 hours 12 minutes",
		"Shell: /bin/bash",
		"CPU: Intel Xeon Gold 6326 (8 cores)",
		"Processes: 312",
		"CPU Load: 37%",
		"Memory: 3241 MB / 7894 MB",
		"Disk: 23.4 GB / 100.0 GB",
	} {
		assert.Contains(t, out, want)
	}
}

func TestReport_NumericMode_NoBars(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Report(&buf, testSnapshot(), Options{Bar: bar.NewOptions(0)}))

	assert.NotContains(t, stripANSI(buf.String()), "[ ")
}

func TestReport_GraphicalMode_DrawsThreeBars(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Report(&buf, testSnapshot(), Options{
		Graphical: true,
		Bar:       bar.NewOptions(0),
	}))
	out := stripANSI(buf.String())

	// CPU 负载、内存、磁盘各一条。
	assert.Equal(t, 3, strings.Count(out, "[ "))
	assert.Equal(t, 3, strings.Count(out, " ]"))

	// 标题百分比：内存 3241/7894 截断为 41%，磁盘 23.4/100 截断为 23%。
	assert.Contains(t, out, " 37% [ ")
	assert.Contains(t, out, " 41% [ ")
	assert.Contains(t, out, " 23% [ ")
}

func TestReport_GraphicalMode_RespectsBarTemplate(t *testing.T) {
	var buf bytes.Buffer
	opts := bar.NewOptions(0)
	opts.BarLength = 20
	style, err := bar.StyleByName("SimpleThick1")
	require.NoError(t, err)
	opts.Style = style

	require.NoError(t, Report(&buf, testSnapshot(), Options{Graphical: true, Bar: opts}))

	assert.Contains(t, stripANSI(buf.String()), "█")
}

func TestReport_GraphicalMode_InvalidBarTemplate_Fails(t *testing.T) {
	var buf bytes.Buffer
	opts := bar.NewOptions(0)
	opts.YellowBorder = 80
	opts.GreenBorder = 80

	err := Report(&buf, testSnapshot(), Options{Graphical: true, Bar: opts})
	require.Error(t, err)
	assert.ErrorIs(t, err, bar.ErrInvalidArgument)
}

func TestReport_LinesShareLogoColumnWidth(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Report(&buf, testSnapshot(), Options{Bar: bar.NewOptions(0)}))

	lines := strings.Split(strings.TrimSuffix(stripANSI(buf.String()), "\n"), "\n")
	require.NotEmpty(t, lines)

	// 信息列起始列对齐：每行去掉图案部分后的前缀宽度一致。
	logoWidth := visibleWidth(logo[0])
	for i, line := range lines {
		require.GreaterOrEqual(t, len([]rune(line)), logoWidth, "line %d shorter than logo column", i)
	}
}

func stripANSI(s string) string {
	return ansiRegexp.ReplaceAllString(s, "")
}

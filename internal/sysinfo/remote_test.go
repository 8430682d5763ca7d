package sysinfo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- parseUname ---

func TestParseUname(t *testing.T) {
	var s Snapshot
	require.NoError(t, parseUname(&s, "Linux 6.1.0-18-amd64 x86_64"))

	assert.Equal(t, "Linux", s.OS)
	assert.Equal(t, "6.1.0-18-amd64", s.Kernel)
	assert.Equal(t, "x86_64", s.Arch)
}

func TestParseUname_UnexpectedFieldCount_ReturnsError(t *testing.T) {
	var s Snapshot
	assert.Error(t, parseUname(&s, "Linux"))
	assert.Error(t, parseUname(&s, ""))
}

// --- parseOSRelease ---

func TestParseOSRelease_ExtractsPrettyName(t *testing.T) {
	out := `NAME="Debian GNU/Linux"
VERSION_ID="12"
PRETTY_NAME="Debian GNU/Linux 12 (bookworm)"
ID=debian`

	assert.Equal(t, "Debian GNU/Linux 12 (bookworm)", parseOSRelease(out))
}

func TestParseOSRelease_MissingPrettyName_ReturnsEmpty(t *testing.T) {
	assert.Empty(t, parseOSRelease(`NAME="Alpine Linux"`))
	assert.Empty(t, parseOSRelease(""))
}

// --- parseUptimeSeconds ---

func TestParseUptimeSeconds(t *testing.T) {
	d, err := parseUptimeSeconds("350735.47 234388.90")
	require.NoError(t, err)
	assert.Equal(t, time.Duration(350735.47*float64(time.Second)), d)
}

func TestParseUptimeSeconds_BadInput_ReturnsError(t *testing.T) {
	_, err := parseUptimeSeconds("")
	assert.Error(t, err)
	_, err = parseUptimeSeconds("not-a-number")
	assert.Error(t, err)
}

// --- parseCPUModel ---

func TestParseCPUModel(t *testing.T) {
	model, err := parseCPUModel("model name\t: Intel(R) Xeon(R) CPU E5-2680 v4 @ 2.40GHz")
	require.NoError(t, err)
	assert.Equal(t, "Intel(R) Xeon(R) CPU E5-2680 v4 @ 2.40GHz", model)
}

func TestParseCPUModel_NoSeparator_ReturnsError(t *testing.T) {
	_, err := parseCPUModel("model name Intel")
	assert.Error(t, err)
}

// --- parseLoadAvg ---

func TestParseLoadAvg(t *testing.T) {
	load, err := parseLoadAvg("1.53 0.89 0.64 2/1540 23712")
	require.NoError(t, err)
	assert.InDelta(t, 1.53, load, 0.001)
}

func TestLoadPercent_NormalizesByCoresAndClamps(t *testing.T) {
	assert.Equal(t, 38, loadPercent(1.53, 4))  // 38.25 截断
	assert.Equal(t, 100, loadPercent(9.0, 4))  // 超载钳制到 100
	assert.Equal(t, 0, loadPercent(0, 8))
	assert.Equal(t, 50, loadPercent(0.5, 1))
}

// --- parseMeminfo ---

func TestParseMeminfo(t *testing.T) {
	out := "MemTotal:       16284428 kB\nMemAvailable:    9177864 kB"

	totalMB, freeMB, err := parseMeminfo(out)
	require.NoError(t, err)
	assert.Equal(t, uint64(15902), totalMB)
	assert.Equal(t, uint64(8962), freeMB)
}

func TestParseMeminfo_MissingTotal_ReturnsError(t *testing.T) {
	_, _, err := parseMeminfo("MemAvailable: 1024 kB")
	assert.Error(t, err)
}

// --- parseDF ---

func TestParseDF(t *testing.T) {
	out := `Filesystem     1024-blocks      Used Available Capacity Mounted on
/dev/sda1        103179564  24299088  73610452      25% /`

	totalGB, freeGB, err := parseDF(out)
	require.NoError(t, err)
	assert.InDelta(t, 98.4, totalGB, 0.1)
	assert.InDelta(t, 70.2, freeGB, 0.1)
}

func TestParseDF_HeaderOnly_ReturnsError(t *testing.T) {
	_, _, err := parseDF("Filesystem 1024-blocks Used Available Capacity Mounted on")
	assert.Error(t, err)
}

// --- 快照派生值 ---

func TestSnapshotDerivedUsage(t *testing.T) {
	s := Snapshot{
		MemTotalMB:  7894,
		MemFreeMB:   4653,
		DiskTotalGB: 100.0,
		DiskFreeGB:  76.6,
	}

	assert.Equal(t, uint64(3241), s.MemUsedMB())
	assert.InDelta(t, 23.4, s.DiskUsedGB(), 0.001)
}

func TestRemoteProbes_CoverEveryRequiredField(t *testing.T) {
	names := make(map[string]bool)
	for _, p := range remoteProbes() {
		names[p.name] = true
	}
	for _, want := range []string{
		"hostname", "uname", "uptime", "cpu-model", "cpu-cores",
		"loadavg", "memory", "disk", "processes", "user",
	} {
		assert.True(t, names[want], "missing probe %q", want)
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withTempHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	return home
}

func TestLoad_NoConfigFile_ReturnsDefaults(t *testing.T) {
	withTempHome(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultStyle, cfg.Style)
	assert.Equal(t, DefaultBarLength, cfg.BarLength)
	assert.Equal(t, DefaultGreenBorder, cfg.GreenBorder)
	assert.Equal(t, DefaultYellowBorder, cfg.YellowBorder)
	assert.False(t, cfg.Graph)
	assert.Empty(t, cfg.Host)
}

func TestSaveThenLoad_RoundTrips(t *testing.T) {
	withTempHome(t)

	want := Config{
		Style:        "SimpleThick1",
		BarLength:    25,
		GreenBorder:  55,
		YellowBorder: 85,
		Graph:        true,
		Host:         "web-01.internal",
		User:         "deploy",
		KeyFile:      "/home/deploy/.ssh/id_ed25519",
		Port:         2222,
	}
	require.NoError(t, Save(want))

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSave_CreatesConfigDir(t *testing.T) {
	home := withTempHome(t)

	require.NoError(t, Save(Config{Style: DefaultStyle, BarLength: DefaultBarLength,
		GreenBorder: DefaultGreenBorder, YellowBorder: DefaultYellowBorder}))

	_, err := os.Stat(filepath.Join(home, ".config", "sysplash", "config.yaml"))
	assert.NoError(t, err)
}

func TestLoad_PartialConfig_FillsDefaults(t *testing.T) {
	home := withTempHome(t)
	dir := filepath.Join(home, ".config", "sysplash")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("graph: true\nlength: 30\n"), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Graph)
	assert.Equal(t, 30, cfg.BarLength)
	assert.Equal(t, DefaultStyle, cfg.Style)
	assert.Equal(t, DefaultGreenBorder, cfg.GreenBorder)
}

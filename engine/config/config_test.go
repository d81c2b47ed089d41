package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/sprig/engine/colors"
	"github.com/hubastard/sprig/engine/core"
	"github.com/hubastard/sprig/engine/gui"
)

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
}

func TestMissingFilesUseDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadEngine(filepath.Join(dir, "engine.toml"))
	require.NoError(t, err)
	assert.Equal(t, core.DefaultConfig(), cfg)

	th, err := LoadTheme("")
	require.NoError(t, err)
	assert.Equal(t, gui.DefaultTheme(), th)
}

func TestLoadEngine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.toml")
	writeFile(t, path, `
title = "demo"
width = 640
height = -1
clear_color = "#ff0000"
log_level = "debug"
`)
	cfg, err := LoadEngine(path)
	require.NoError(t, err)
	assert.Equal(t, "demo", cfg.Title)
	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, core.DefaultConfig().Height, cfg.Height)
	assert.Equal(t, colors.Color{1, 0, 0, 1}, cfg.ClearColor)
	assert.Equal(t, slog.LevelDebug, LogLevel(cfg.LogLevel))
}

func TestParseTheme(t *testing.T) {
	th, err := ParseTheme([]byte(`
text_color = "#336699"
font = "mono"
icon_font = ""
scrollbar_thickness = 14
scrollbar_min_thumb = 0
scroll_speed = -3

[padding]
left = 1
top = 2
right = 3
bottom = 4
`))
	require.NoError(t, err)
	assert.Equal(t, colors.MustHex("#336699"), th.TextColor)
	assert.Equal(t, "mono", th.Font)
	assert.Equal(t, "mono", th.IconFont)
	assert.Equal(t, float32(14), th.ScrollbarThickness)
	assert.Equal(t, float32(14), th.ScrollbarMinThumb)
	assert.Equal(t, gui.DefaultTheme().ScrollSpeed, th.ScrollSpeed)
	assert.Equal(t, gui.Pad4(1, 2, 3, 4), th.Padding)
	assert.Equal(t, gui.DefaultTheme().Accent, th.Accent)
}

func TestParseThemeErrors(t *testing.T) {
	_, err := ParseTheme([]byte(`text_color = "not a color"`))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "theme.toml")
	writeFile(t, path, `text_size = [`)
	th, err := LoadTheme(path)
	assert.ErrorContains(t, err, "theme.toml")
	assert.Equal(t, gui.DefaultTheme(), th)
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	th := gui.DefaultTheme()
	th.Accent = colors.MustHex("#123456")
	require.NoError(t, SaveTheme(filepath.Join(dir, "theme.toml"), th))
	got, err := LoadTheme(filepath.Join(dir, "theme.toml"))
	require.NoError(t, err)
	assert.Equal(t, th.Accent.Hex(), got.Accent.Hex())

	cfg := core.DefaultConfig()
	cfg.Title = "saved"
	require.NoError(t, SaveEngine(filepath.Join(dir, "engine.toml"), cfg))
	gotCfg, err := LoadEngine(filepath.Join(dir, "engine.toml"))
	require.NoError(t, err)
	assert.Equal(t, "saved", gotCfg.Title)
}

func TestLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelWarn, LogLevel("warn"))
	assert.Equal(t, slog.LevelError, LogLevel(" ERROR "))
	assert.Equal(t, slog.LevelInfo, LogLevel("loud"))
}

func TestWatcherDeliversReloadedTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	writeFile(t, path, `text_size = 12`)

	w, err := WatchTheme(path, nil)
	require.NoError(t, err)
	defer w.Close()

	_, ok := w.Poll()
	assert.False(t, ok)

	writeFile(t, path, `text_size = 31`)
	var got gui.Theme
	require.Eventually(t, func() bool {
		th, ok := w.Poll()
		if ok {
			got = th
		}
		return ok && got.TextSize == 31
	}, 5*time.Second, 10*time.Millisecond)
}

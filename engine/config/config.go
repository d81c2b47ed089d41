// Package config loads engine.toml and theme.toml. Missing files yield the
// defaults; present files are decoded over them.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/hubastard/sprig/engine/core"
	"github.com/hubastard/sprig/engine/gui"
)

// LoadEngine reads the window and renderer settings at path.
func LoadEngine(path string) (core.Config, error) {
	cfg := core.DefaultConfig()
	data, err := readOptional(path)
	if err != nil || data == nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	def := core.DefaultConfig()
	if cfg.Width <= 0 {
		cfg.Width = def.Width
	}
	if cfg.Height <= 0 {
		cfg.Height = def.Height
	}
	if cfg.FontSize <= 0 {
		cfg.FontSize = def.FontSize
	}
	if cfg.MaxQuads <= 0 {
		cfg.MaxQuads = def.MaxQuads
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = def.LogLevel
	}
	return cfg, nil
}

// LoadTheme reads the theme at path.
func LoadTheme(path string) (gui.Theme, error) {
	data, err := readOptional(path)
	if err != nil || data == nil {
		return gui.DefaultTheme(), err
	}
	t, err := ParseTheme(data)
	if err != nil {
		return t, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return t, nil
}

// ParseTheme decodes a theme document over DefaultTheme.
func ParseTheme(data []byte) (gui.Theme, error) {
	t := gui.DefaultTheme()
	if err := toml.Unmarshal(data, &t); err != nil {
		return gui.DefaultTheme(), err
	}

	def := gui.DefaultTheme()
	if t.TextSize <= 0 {
		t.TextSize = def.TextSize
	}
	if t.Font == "" {
		t.Font = def.Font
	}
	if t.IconFont == "" {
		t.IconFont = t.Font
	}
	if t.ScrollbarThickness <= 0 {
		t.ScrollbarThickness = def.ScrollbarThickness
	}
	if t.ScrollbarMinThumb <= 0 {
		t.ScrollbarMinThumb = t.ScrollbarThickness
	}
	if t.ScrollSpeed <= 0 {
		t.ScrollSpeed = def.ScrollSpeed
	}
	return t, nil
}

// SaveEngine writes cfg to path.
func SaveEngine(path string, cfg core.Config) error { return save(path, cfg) }

// SaveTheme writes t to path.
func SaveTheme(path string, t gui.Theme) error { return save(path, t) }

func save(path string, v any) error {
	data, err := toml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// LogLevel maps a log_level value to a slog level; unknown values are Info.
func LogLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return l
}

func readOptional(path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

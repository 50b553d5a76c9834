package hipedit

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Settings is the persisted part of the gizmo configuration.
type Settings struct {
	Grid      GridSpacing `toml:"grid" yaml:"grid"`
	Mode      string      `toml:"mode" yaml:"mode"`
	Debug     bool        `toml:"debug" yaml:"debug"`
	LogPrefix string      `toml:"log_prefix" yaml:"log_prefix"`
}

func DefaultSettings() Settings {
	return Settings{
		Grid:      DefaultGrid(),
		Mode:      ModePosition.String(),
		LogPrefix: "hipedit",
	}
}

type settingsFormat int

const (
	formatTOML settingsFormat = iota
	formatYAML
)

func formatOf(path string) (settingsFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return formatTOML, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	}
	return 0, fmt.Errorf("settings %s: unsupported extension %q", path, filepath.Ext(path))
}

// LoadSettings reads a .toml or .yaml settings file. Fields missing from the
// file keep their defaults and the grid is clamped.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	format, err := formatOf(path)
	if err != nil {
		return s, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read settings: %w", err)
	}
	if err := decodeSettings(format, data, &s); err != nil {
		return DefaultSettings(), fmt.Errorf("decode settings %s: %w", path, err)
	}
	if _, err := ParseGizmoMode(s.Mode); err != nil {
		return DefaultSettings(), fmt.Errorf("settings %s: %w", path, err)
	}
	s.Grid = s.Grid.Clamped()
	return s, nil
}

func decodeSettings(format settingsFormat, data []byte, s *Settings) error {
	if format == formatYAML {
		return yaml.Unmarshal(data, s)
	}
	return toml.Unmarshal(data, s)
}

// SaveSettings writes s in the format chosen by the file extension.
func SaveSettings(path string, s Settings) error {
	format, err := formatOf(path)
	if err != nil {
		return err
	}
	s.Grid = s.Grid.Clamped()

	var data []byte
	if format == formatYAML {
		data, err = yaml.Marshal(s)
	} else {
		data, err = toml.Marshal(s)
	}
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

// NewManagerFromSettings builds a manager with the configured grid, mode and logger.
func NewManagerFromSettings(s Settings, logger Logger) *GizmoManager {
	m := NewGizmoManager(s.Grid, logger)
	if mode, err := ParseGizmoMode(s.Mode); err == nil {
		m.SetMode(mode)
	}
	return m
}

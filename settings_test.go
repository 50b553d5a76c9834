package hipedit

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadSettingsTOML(t *testing.T) {
	path := writeFile(t, "gizmos.toml", `
mode = "scale"
debug = true

[grid]
x = 2.0
y = 0.25
z = 8.0
`)
	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "scale", s.Mode)
	assert.True(t, s.Debug)
	assert.Equal(t, GridSpacing{X: 2, Y: 1, Z: 8}, s.Grid, "y is clamped to 1")
	assert.Equal(t, "hipedit", s.LogPrefix, "missing keys keep defaults")
}

func TestLoadSettingsYAML(t *testing.T) {
	path := writeFile(t, "gizmos.yml", "mode: rotation\nlog_prefix: editor\ngrid:\n  x: 4\n  y: 4\n  z: 4\n")
	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "rotation", s.Mode)
	assert.Equal(t, "editor", s.LogPrefix)
	assert.Equal(t, GridSpacing{X: 4, Y: 4, Z: 4}, s.Grid)
}

func TestLoadSettingsErrors(t *testing.T) {
	_, err := LoadSettings(writeFile(t, "gizmos.json", "{}"))
	assert.ErrorContains(t, err, "unsupported extension")

	_, err = LoadSettings(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadSettings(writeFile(t, "bad.toml", "mode = "))
	assert.ErrorContains(t, err, "decode settings")

	s, err := LoadSettings(writeFile(t, "mode.yaml", "mode: sideways\n"))
	assert.ErrorContains(t, err, "unknown gizmo mode")
	assert.Equal(t, DefaultSettings(), s)
}

func TestSaveSettingsRoundTrip(t *testing.T) {
	want := Settings{
		Grid:      GridSpacing{X: 2, Y: 3, Z: 16},
		Mode:      "position-local",
		Debug:     true,
		LogPrefix: "level",
	}
	for _, name := range []string{"out.toml", "out.yaml"} {
		path := filepath.Join(t.TempDir(), name)
		require.NoError(t, SaveSettings(path, want))

		got, err := LoadSettings(path)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	assert.Error(t, SaveSettings(filepath.Join(t.TempDir(), "out.ini"), want))
}

func TestNewManagerFromSettings(t *testing.T) {
	s := DefaultSettings()
	s.Mode = "rotation"
	s.Grid = GridSpacing{X: 0, Y: 2, Z: 2}

	m := NewManagerFromSettings(s, nil)
	assert.Equal(t, ModeRotation, m.Mode())
	assert.Equal(t, GridSpacing{X: 1, Y: 2, Z: 2}, m.Grid)
}

func TestDefaultLogger(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewLoggerTo(&out, &errOut, "gizmo", false)

	l.Debugf("hidden %d", 1)
	assert.Empty(t, out.String())

	l.Infof("mode %s", ModeScale)
	assert.Contains(t, out.String(), "[gizmo] INFO: mode scale")

	l.SetDebug(true)
	assert.True(t, l.DebugEnabled())
	l.Debugf("shown")
	assert.Contains(t, out.String(), "[gizmo] DEBUG: shown")

	l.Warnf("careful")
	l.Errorf("broken")
	lines := strings.Split(strings.TrimSpace(errOut.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "WARN: careful")
	assert.Contains(t, lines[1], "ERROR: broken")
}

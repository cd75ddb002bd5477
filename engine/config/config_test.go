package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 30, cfg.Scene.PickRadius)
	assert.Equal(t, [3]float64{0, 0, 1}, cfg.Scene.Up)
}

func TestParseOverridesOnlyGivenKeys(t *testing.T) {
	cfg, err := Parse([]byte(`
[scene]
pick_radius = 12
background = "#101010"

[viewport]
width = 320
`))
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Scene.PickRadius)
	assert.Equal(t, "#101010", cfg.Scene.Background)
	assert.Equal(t, 320, cfg.Viewport.Width)
	assert.Equal(t, 600, cfg.Viewport.Height, "unset keys keep defaults")
	assert.Equal(t, 0.1, cfg.Scene.Near)
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"negative radius", "[scene]\npick_radius = -1"},
		{"far before near", "[scene]\nnear = 10.0\nfar = 1.0"},
		{"empty viewport", "[viewport]\nwidth = 0"},
		{"no workers", "[render]\nworkers = 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}

	_, err := Parse([]byte("[scene\n"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "oxyplot.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = \"debug\"\n"), 0o644))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

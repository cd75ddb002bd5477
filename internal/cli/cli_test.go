package cli

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-plot/engine/layout"
)

const pointFigure = `{
  "layout": {"scene": {"bgcolor": "white"}},
  "data": [
    {"type": "scatter3d", "uid": "p", "mode": "markers", "x": [0.5], "y": [0.5], "z": [0.5]}
  ]
}`

const mixedFigure = `
layout:
  scene:
    zaxis:
      rangemode: tozero
data:
  - type: mesh3d
    uid: m
  - type: surface
    uid: s
    z: [[1, 2], [3, 4]]
  - type: scatter3d
    uid: other
    scene: scene2
    x: [1]
    y: [2]
    z: [3]
`

func writeFigure(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

// execute runs the root command and returns stdout and the log output.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var logs, out bytes.Buffer
	c := New(&logs, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&out)
	err := root.Execute()
	return out.String(), logs.String(), err
}

func TestParseMouse(t *testing.T) {
	tests := []struct {
		in      string
		want    [2]int
		wantErr bool
	}{
		{in: "", want: [2]int{-1, -1}},
		{in: "10,20", want: [2]int{10, 20}},
		{in: " 3 , 4 ", want: [2]int{3, 4}},
		{in: "10", wantErr: true},
		{in: "a,b", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseMouse(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"", log.InfoLevel},
		{"DEBUG", log.DebugLevel},
		{"warning", log.WarnLevel},
		{"error", log.ErrorLevel},
	}
	for _, tt := range tests {
		got, err := parseLevel(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := parseLevel("loud")
	assert.Error(t, err)
}

func TestLoggerFromContext(t *testing.T) {
	assert.Same(t, log.Default(), loggerFromContext(context.Background()))

	l := newLogger(&bytes.Buffer{}, log.InfoLevel)
	assert.Same(t, l, loggerFromContext(withLogger(context.Background(), l)))
}

func TestSceneIDs(t *testing.T) {
	fig, err := layout.Decode(bytes.NewReader([]byte(mixedFigure)), layout.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, []string{"scene", "scene2"}, sceneIDs(fig))
	assert.Equal(t, []string{"scene"}, sceneIDs(&layout.Figure{}))
}

func TestRenderWritesPNG(t *testing.T) {
	fig := writeFigure(t, "points.json", pointFigure)
	out := t.TempDir()

	_, logs, err := execute(t, "render", fig, "--out", out, "--width", "64", "--height", "48")
	require.NoError(t, err)
	assert.Contains(t, logs, "Rendered 1 figure(s)")

	f, err := os.Open(filepath.Join(out, "points.png"))
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 48, img.Bounds().Dy())
}

func TestRenderSkipsUnknownTraces(t *testing.T) {
	fig := writeFigure(t, "mixed.yaml", mixedFigure)
	out := t.TempDir()

	_, logs, err := execute(t, "render", fig, "--out", out, "--width", "32", "--height", "32")
	require.NoError(t, err)
	assert.Contains(t, logs, "skipping trace")
	assert.FileExists(t, filepath.Join(out, "mixed.png"))
}

func TestRenderJoinsFailures(t *testing.T) {
	good := writeFigure(t, "good.json", pointFigure)
	missing := filepath.Join(t.TempDir(), "missing.json")
	out := t.TempDir()

	_, _, err := execute(t, "render", good, missing, "--out", out, "--width", "32", "--height", "32")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.json")
	assert.FileExists(t, filepath.Join(out, "good.png"))
}

func TestRenderRejectsBadMouse(t *testing.T) {
	fig := writeFigure(t, "points.json", pointFigure)
	_, _, err := execute(t, "render", fig, "--mouse", "nope")
	assert.ErrorContains(t, err, "--mouse")
}

func TestPickFindsPointAtCenter(t *testing.T) {
	fig := writeFigure(t, "points.json", pointFigure)

	stdout, _, err := execute(t, "pick", fig, "--x", "100", "--y", "100", "--width", "200", "--height", "200")
	require.NoError(t, err)
	assert.Contains(t, stdout, "trace:  p (scatter3d)")
	assert.Contains(t, stdout, "index:  [0]")
	assert.Contains(t, stdout, "data:   (0.5, 0.5, 0.5)")
}

func TestPickMiss(t *testing.T) {
	fig := writeFigure(t, "points.json", pointFigure)

	stdout, _, err := execute(t, "pick", fig, "--x", "0", "--y", "0", "--width", "200", "--height", "200")
	require.NoError(t, err)
	assert.Equal(t, "no point within pick radius\n", stdout)
}

func TestConfigFlag(t *testing.T) {
	cfg := writeFigure(t, "oxyplot.toml", "[viewport]\nwidth = 40\nheight = 30\n\n[log]\nlevel = \"debug\"\n")
	fig := writeFigure(t, "points.json", pointFigure)
	out := t.TempDir()

	_, logs, err := execute(t, "--config", cfg, "render", fig, "--out", out)
	require.NoError(t, err)
	assert.Contains(t, logs, "configuration loaded")

	f, err := os.Open(filepath.Join(out, "points.png"))
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())
}

func TestConfigFlagInvalid(t *testing.T) {
	cfg := writeFigure(t, "oxyplot.toml", "[render]\nworkers = 0\n")
	fig := writeFigure(t, "points.json", pointFigure)

	_, _, err := execute(t, "--config", cfg, "render", fig)
	assert.ErrorContains(t, err, "render.workers")
}

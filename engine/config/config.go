// Package config loads oxyplot settings from TOML.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/BurntSushi/toml"
)

// ErrInvalid is returned when a loaded configuration fails validation.
var ErrInvalid = errors.New("invalid config")

// Config is the full configuration file.
type Config struct {
	Scene    SceneConfig    `toml:"scene"`
	Viewport ViewportConfig `toml:"viewport"`
	Log      LogConfig      `toml:"log"`
	Render   RenderConfig   `toml:"render"`
}

// SceneConfig tunes every scene the host creates.
type SceneConfig struct {
	PickRadius int        `toml:"pick_radius"`
	Fov        float64    `toml:"fov"`
	Near       float64    `toml:"near"`
	Far        float64    `toml:"far"`
	Eye        [3]float64 `toml:"eye"`
	Center     [3]float64 `toml:"center"`
	Up         [3]float64 `toml:"up"`
	// Background is a CSS color used when a layout sets no bgcolor.
	Background string `toml:"background"`
}

// ViewportConfig is the framebuffer size for headless renders and the initial window size.
type ViewportConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// LogConfig selects the log level: "debug", "info", "warn" or "error".
type LogConfig struct {
	Level string `toml:"level"`
}

// RenderConfig controls the host loop and batch rendering.
type RenderConfig struct {
	// FrameLimit caps frames per second in the interactive viewer, 0 for uncapped.
	FrameLimit int  `toml:"frame_limit"`
	Profile    bool `toml:"profile"`
	// Workers is the number of figures rendered concurrently by the CLI.
	Workers  int    `toml:"workers"`
	FontFile string `toml:"font_file"`
}

// Default returns the built-in configuration.
//
// Returns:
//   - *Config: defaults matching a plotly gl3d scene
func Default() *Config {
	return &Config{
		Scene: SceneConfig{
			PickRadius: 30,
			Fov:        math.Pi / 4,
			Near:       0.1,
			Far:        10000,
			Eye:        [3]float64{1.25, 1.25, 1.25},
			Center:     [3]float64{0, 0, 0},
			Up:         [3]float64{0, 0, 1},
			Background: "white",
		},
		Viewport: ViewportConfig{Width: 800, Height: 600},
		Log:      LogConfig{Level: "info"},
		Render:   RenderConfig{FrameLimit: 60, Workers: 4},
	}
}

// Load reads a TOML file over the defaults. Keys absent from the file keep their default.
//
// Parameters:
//   - path: the file to read
//
// Returns:
//   - *Config: the merged configuration
//   - error: if the file cannot be read, decoded or validated
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes TOML over the defaults.
//
// Parameters:
//   - data: TOML document
//
// Returns:
//   - *Config: the merged configuration
//   - error: if decoding or validation fails
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges that would make a scene unusable.
func (c *Config) Validate() error {
	s := c.Scene
	switch {
	case s.PickRadius < 0:
		return fmt.Errorf("%w: scene.pick_radius %d is negative", ErrInvalid, s.PickRadius)
	case s.Fov <= 0 || s.Fov >= math.Pi:
		return fmt.Errorf("%w: scene.fov %g outside (0, pi)", ErrInvalid, s.Fov)
	case s.Near <= 0 || s.Far <= s.Near:
		return fmt.Errorf("%w: scene.near %g and scene.far %g", ErrInvalid, s.Near, s.Far)
	case c.Viewport.Width <= 0 || c.Viewport.Height <= 0:
		return fmt.Errorf("%w: viewport %dx%d", ErrInvalid, c.Viewport.Width, c.Viewport.Height)
	case c.Render.Workers < 1:
		return fmt.Errorf("%w: render.workers %d", ErrInvalid, c.Render.Workers)
	}
	return nil
}

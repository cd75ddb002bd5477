package scene

import (
	"github.com/Carmen-Shannon/oxy-plot/common"
	"github.com/Carmen-Shannon/oxy-plot/engine/axes"
	"github.com/Carmen-Shannon/oxy-plot/engine/camera"
	"github.com/Carmen-Shannon/oxy-plot/engine/config"
	"github.com/charmbracelet/log"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithPickRadius sets how many pixels around the mouse a pick query searches. Default is 30.
//
// Parameters:
//   - radius: search radius in pixels, negative values are clamped to 0
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithPickRadius(radius int) SceneBuilderOption {
	return func(s *scene) {
		s.pickRadius = max(radius, 0)
	}
}

// WithLogger sets the logger the scene reports through.
//
// Parameters:
//   - logger: the logger, ignored when nil
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithLogger(logger *log.Logger) SceneBuilderOption {
	return func(s *scene) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithTickCalculator replaces the axis tick computation. Default is axes.LinearTicks.
//
// Parameters:
//   - ticks: the calculator
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithTickCalculator(ticks axes.TickCalculator) SceneBuilderOption {
	return func(s *scene) {
		if ticks != nil {
			s.ticks = ticks
		}
	}
}

// WithCamera uses an existing camera instead of creating one.
//
// Parameters:
//   - cam: the camera
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithCamera(cam camera.Camera) SceneBuilderOption {
	return func(s *scene) {
		s.cam = cam
	}
}

// WithDefaultView sets the initial camera eye, center and up vector.
// Default is eye (1.25, 1.25, 1.25), center at the origin and +Z up.
//
// Parameters:
//   - eye, center, up: view vectors
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithDefaultView(eye, center, up common.Vec3) SceneBuilderOption {
	return func(s *scene) {
		s.defaultView = [3]common.Vec3{eye, center, up}
	}
}

// WithProjection sets the perspective used every frame. Default is fov pi/4, near 0.1, far 10000.
//
// Parameters:
//   - fov: vertical field of view in radians
//   - near, far: clip plane distances
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithProjection(fov, near, far float64) SceneBuilderOption {
	return func(s *scene) {
		s.fov, s.near, s.far = fov, near, far
	}
}

// WithBackground sets the clear color used until a layout sets bgcolor.
//
// Parameters:
//   - c: clear color
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithBackground(c common.RGBA) SceneBuilderOption {
	return func(s *scene) {
		s.bgColor = c
	}
}

// WithConfig applies the [scene] section of a configuration file.
//
// Parameters:
//   - cfg: the scene section
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithConfig(cfg config.SceneConfig) SceneBuilderOption {
	return func(s *scene) {
		WithPickRadius(cfg.PickRadius)(s)
		WithProjection(cfg.Fov, cfg.Near, cfg.Far)(s)
		WithDefaultView(cfg.Eye, cfg.Center, cfg.Up)(s)
		if cfg.Background != "" {
			s.bgColor = common.ColorOr(cfg.Background, s.bgColor)
		}
	}
}

package engine

import (
	"time"

	"github.com/Carmen-Shannon/oxy-plot/engine/canvas"
	"github.com/Carmen-Shannon/oxy-plot/engine/config"
	"github.com/Carmen-Shannon/oxy-plot/engine/profiler"
	"github.com/Carmen-Shannon/oxy-plot/engine/renderer"
	"github.com/Carmen-Shannon/oxy-plot/engine/scene"
	"github.com/Carmen-Shannon/oxy-plot/engine/window"
	"github.com/charmbracelet/log"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithWindow sets the window the engine reads input from and presents into.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithRenderer sets the presenter that puts the canvas on screen.
//
// Parameters:
//   - r: a Renderer created for the engine's window
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderer(r renderer.Renderer) EngineBuilderOption {
	return func(e *engine) {
		e.renderer = r
	}
}

// WithCanvas sets the canvas scenes draw into.
//
// Parameters:
//   - c: the shared canvas
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithCanvas(c canvas.Canvas) EngineBuilderOption {
	return func(e *engine) {
		e.canvas = c
	}
}

// WithLogger sets the logger used by the engine and its profiler.
//
// Parameters:
//   - logger: the logger, typically a child of the CLI logger
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithLogger(logger *log.Logger) EngineBuilderOption {
	return func(e *engine) {
		e.logger = logger.WithPrefix("engine")
		e.profiler = profiler.NewProfiler(logger)
	}
}

// WithScene registers a scene at the given z-index key during engine construction.
// Scenes are rendered in ascending key order.
//
// Parameters:
//   - key: the z-index determining render order (lower renders first)
//   - s: the Scene to register
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithScene(key int, s scene.Scene) EngineBuilderOption {
	return func(e *engine) {
		e.scenes[key] = s
	}
}

// WithRenderFrameLimit sets an optional frame rate cap in frames per second.
// Pass 0 to uncap the loop (default).
//
// Parameters:
//   - fps: maximum frames per second (0 = uncapped)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			e.renderFrameLimit = 0
			return
		}
		e.renderFrameLimit = time.Duration(float64(time.Second) / fps)
	}
}

// WithSnapshotDir sets where the P key saves PNG snapshots.
//
// Parameters:
//   - dir: an existing directory
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithSnapshotDir(dir string) EngineBuilderOption {
	return func(e *engine) {
		e.snapshotDir = dir
	}
}

// WithConfig applies the [render] table of a loaded configuration.
//
// Parameters:
//   - cfg: the render configuration
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithConfig(cfg config.RenderConfig) EngineBuilderOption {
	return func(e *engine) {
		WithRenderFrameLimit(float64(cfg.FrameLimit))(e)
		e.profilingEnabled = cfg.Profile
	}
}

// Package soft provides software renderers for every scene collaborator: scatter and surface
// drawables, the axes box, spikes and the pick buffer. They draw into a canvas.Canvas and are
// what the headless CLI and the interactive viewer use.
package soft

import (
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/oxy-plot/engine/axes"
	"github.com/Carmen-Shannon/oxy-plot/engine/canvas"
	"github.com/Carmen-Shannon/oxy-plot/engine/drawable"
	"github.com/Carmen-Shannon/oxy-plot/engine/pick"
	"github.com/charmbracelet/log"
)

// ErrParamsKind is returned when a drawable is updated with params of another kind.
var ErrParamsKind = errors.New("params kind does not match drawable")

// Backend constructs software renderers bound to one canvas.
type Backend struct {
	canvas canvas.Canvas
	logger *log.Logger
}

// BackendOption configures a Backend.
type BackendOption func(*Backend)

// WithLogger sets the logger renderers report through.
func WithLogger(logger *log.Logger) BackendOption {
	return func(b *Backend) {
		b.logger = logger
	}
}

// NewBackend creates a backend drawing into c.
//
// Parameters:
//   - c: the canvas every renderer draws into
//   - options: functional options
//
// Returns:
//   - *Backend: the backend
func NewBackend(c canvas.Canvas, options ...BackendOption) *Backend {
	if c == nil {
		panic("soft: nil canvas")
	}
	b := &Backend{canvas: c, logger: log.Default().WithPrefix("soft")}
	for _, option := range options {
		option(b)
	}
	return b
}

// NewSurface creates a surface drawable.
func (b *Backend) NewSurface(params *drawable.SurfaceParams) (drawable.Drawable, error) {
	s := &surface{canvas: b.canvas}
	s.SetClipBounds(unbounded())
	if err := s.Update(params); err != nil {
		return nil, fmt.Errorf("failed to create surface: %w", err)
	}
	b.logger.Debug("surface created", "nx", len(params.Field), "pickID", params.PickID)
	return s, nil
}

// NewScatter creates a scatter drawable.
func (b *Backend) NewScatter(params *drawable.ScatterParams) (drawable.Drawable, error) {
	s := &scatter{canvas: b.canvas}
	s.SetClipBounds(unbounded())
	if err := s.Update(params); err != nil {
		return nil, fmt.Errorf("failed to create scatter: %w", err)
	}
	b.logger.Debug("scatter created", "points", len(params.Position), "mode", params.Mode)
	return s, nil
}

// NewAxes creates the axes renderer.
func (b *Backend) NewAxes(opts *axes.Options) (axes.Renderer, error) {
	a := &axesRenderer{canvas: b.canvas}
	a.Update(opts)
	return a, nil
}

// NewSpikes creates the spike renderer.
func (b *Backend) NewSpikes() (axes.Spikes, error) {
	return &spikes{canvas: b.canvas}, nil
}

// NewPickBuffer creates a CPU pick buffer.
func (b *Backend) NewPickBuffer(width, height int) (pick.Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid pick buffer size %dx%d", width, height)
	}
	return pick.NewSoftwareBuffer(width, height), nil
}

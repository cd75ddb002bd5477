// Package scene coordinates one 3D subplot: a camera, the drawables built from trace data,
// the shared auto-range box and model transform, the axes configuration, and the
// per-frame render and pick cycle.
//
// A scene is not safe for concurrent use. Draw and Render must run on one goroutine;
// the engine host loop serializes them.
package scene

import (
	"errors"
	"io"
	"math"

	"github.com/Carmen-Shannon/oxy-plot/common"
	"github.com/Carmen-Shannon/oxy-plot/engine/axes"
	"github.com/Carmen-Shannon/oxy-plot/engine/camera"
	"github.com/Carmen-Shannon/oxy-plot/engine/canvas"
	"github.com/Carmen-Shannon/oxy-plot/engine/drawable"
	"github.com/Carmen-Shannon/oxy-plot/engine/layout"
	"github.com/Carmen-Shannon/oxy-plot/engine/pick"
	"github.com/charmbracelet/log"
)

var (
	// ErrDisposed is returned by Draw after Dispose.
	ErrDisposed = errors.New("scene disposed")
	// ErrNoCanvas is returned by export when the shell has no canvas.
	ErrNoCanvas = errors.New("shell has no canvas")
	// ErrNoSceneLayout is returned when Draw gets a nil layout or trace.
	ErrNoSceneLayout = errors.New("no layout for scene")
)

// Shell is the host surface a scene renders into.
type Shell interface {
	// Width returns the viewport width in pixels.
	Width() int

	// Height returns the viewport height in pixels.
	Height() int

	// Mouse returns the cursor position in pixels, origin top-left.
	Mouse() (x, y int)

	// Canvas returns the drawing target, or nil when the shell cannot draw.
	Canvas() canvas.Canvas
}

// Backend constructs the renderers a scene owns.
type Backend interface {
	// NewSurface creates a surface drawable.
	//
	// Parameters:
	//   - params: grid, ticks, colormap and pick id
	//
	// Returns:
	//   - drawable.Drawable: the drawable
	//   - error: if the params are rejected
	NewSurface(params *drawable.SurfaceParams) (drawable.Drawable, error)

	// NewScatter creates a scatter drawable.
	//
	// Parameters:
	//   - params: points, styling and pick ids
	//
	// Returns:
	//   - drawable.Drawable: the drawable
	//   - error: if the params are rejected
	NewScatter(params *drawable.ScatterParams) (drawable.Drawable, error)

	// NewAxes creates the axes renderer.
	NewAxes(opts *axes.Options) (axes.Renderer, error)

	// NewSpikes creates the spike renderer.
	NewSpikes() (axes.Spikes, error)

	// NewPickBuffer creates a pick buffer of the viewport size.
	NewPickBuffer(width, height int) (pick.Buffer, error)
}

// Selection is the result of a pick query.
type Selection struct {
	Drawable drawable.Drawable
	// Index is the picked element inside Drawable.
	Index    []int
	Position common.Vec3
	// ZDistance is the normalized device depth of Position.
	ZDistance        float64
	DataCoordinate   common.Vec3
	ScreenCoordinate [2]float64
	MouseCoordinate  [2]int
}

// Scene is one 3D subplot.
type Scene interface {
	// ID returns the layout key of the scene, e.g. "scene" or "scene2".
	ID() string

	// Active reports whether the host should render this scene.
	Active() bool

	// SetActive marks the scene for rendering or skipping by the host.
	SetActive(active bool)

	// Draw synchronizes the scene with one trace against the current layout: it builds or
	// updates the trace's drawable, updates the render queue, recomputes the range and the
	// model transform, and reconciles the axes configuration.
	// Malformed surface grids and empty point lists are skipped without error.
	//
	// Parameters:
	//   - l: the figure layout; l[ID()] is created if missing and receives the live camera pose
	//   - trace: the trace to synchronize
	//
	// Returns:
	//   - error: ErrUnknownTraceType for unsupported traces, ErrDisposed after Dispose
	Draw(l layout.Layout, trace *layout.Trace) error

	// Render runs one frame: pick query, axes ticks, opaque pass, spikes and the blended pass.
	// It is a no-op after Dispose or when the shell has no canvas.
	Render()

	// Camera returns the scene camera.
	Camera() camera.Camera

	// Range returns the shared data box every queued drawable is clipped to.
	Range() common.Box

	// Model returns the transform mapping Range onto the centered unit cube.
	Model() [16]float32

	// AxesOptions returns a copy of the flattened axes configuration.
	AxesOptions() *axes.Options

	// SpikeProperties returns the spike configuration reconciled from the layout.
	SpikeProperties() axes.SpikeProperties

	// RenderQueue returns the visible drawables in draw order.
	RenderQueue() []drawable.Drawable

	// Drawable returns the drawable owned for a trace uid, visible or not.
	//
	// Parameters:
	//   - uid: trace id
	//
	// Returns:
	//   - drawable.Drawable: the drawable or nil
	Drawable(uid string) drawable.Drawable

	// Selection returns the pick result of the last Render, or nil.
	Selection() *Selection

	// ObjectCount returns the number of pick ids allocated so far.
	ObjectCount() int

	// PickPasses returns how many pick passes the last Render ran.
	PickPasses() int

	// Center returns the center of Range.
	Center() common.Vec3

	// DefaultPosition returns an eye on the ray from the center to the top front corner of
	// Range, scaled by mult (0 means 1), and the center as target.
	//
	// Parameters:
	//   - mult: distance multiplier
	//
	// Returns:
	//   - eye, target: data-space points
	DefaultPosition(mult float64) (eye, target common.Vec3)

	// ResetCamera puts the camera back at the default view and marks the scene dirty.
	ResetCamera()

	// ToPNG encodes the framebuffer as a base64 PNG data URL.
	//
	// Returns:
	//   - string: "data:image/png;base64,..."
	//   - error: ErrNoCanvas or an encoding error
	ToPNG() (string, error)

	// WritePNG encodes the framebuffer as PNG.
	//
	// Parameters:
	//   - w: destination
	//
	// Returns:
	//   - error: ErrNoCanvas or an encoding error
	WritePNG(w io.Writer) error

	// SetDirty requests a redraw on the next host tick.
	SetDirty()

	// Dirty reports whether a redraw was requested since the last Render.
	Dirty() bool

	// Dispose releases every drawable and renderer the scene owns.
	Dispose()
}

// entry is the glDataMap slot of one trace: the owned drawable and its pick ids.
type entry struct {
	drawable drawable.Drawable
	ids      pick.Block
}

type scene struct {
	id     string
	active bool

	shell   Shell
	backend Backend
	logger  *log.Logger
	cam     camera.Camera

	layout      layout.Layout
	sceneLayout *layout.SceneLayout

	renderQueue []drawable.Drawable
	glDataMap   map[string]*entry
	ids         pick.Allocator

	axis            axes.Renderer
	axesOpts        *axes.Options
	ticks           axes.TickCalculator
	spikes          axes.Spikes
	spikeEnable     bool
	spikeProperties axes.SpikeProperties
	selectBuffer    pick.Buffer
	pickRadius      int
	pickPasses      int
	selection       *Selection

	baseRange common.Box
	rng       common.Box
	model     [16]float32

	fov, near, far float64
	defaultView    [3]common.Vec3
	bgColor        common.RGBA

	dirty    bool
	disposed bool
}

var _ Scene = &scene{}

// NewScene creates a scene. The shell and backend are required and NewScene panics if
// either is nil. The camera starts at the default view looking at the origin with +Z up.
//
// Parameters:
//   - id: the layout key of the scene
//   - shell: the host surface
//   - backend: renderer factory
//   - options: functional options
//
// Returns:
//   - Scene: the new scene
func NewScene(id string, shell Shell, backend Backend, options ...SceneBuilderOption) Scene {
	if shell == nil {
		panic("scene: NewScene requires a non-nil Shell")
	}
	if backend == nil {
		panic("scene: NewScene requires a non-nil Backend")
	}

	s := &scene{
		id:              id,
		active:          true,
		shell:           shell,
		backend:         backend,
		logger:          log.Default().WithPrefix("scene"),
		glDataMap:       make(map[string]*entry),
		axesOpts:        axes.DefaultOptions(),
		ticks:           axes.LinearTicks{},
		spikeEnable:     true,
		spikeProperties: axes.DefaultSpikeProperties(),
		pickRadius:      30,
		baseRange:       common.EmptyBox(),
		rng:             common.Box{{0, 0, 0}, {6, 6, 6}},
		fov:             math.Pi / 4,
		near:            0.1,
		far:             10000,
		defaultView: [3]common.Vec3{
			{1.25, 1.25, 1.25},
			{0, 0, 0},
			{0, 0, 1},
		},
		bgColor: common.RGBA{1, 1, 1, 1},
	}
	common.Identity(s.model[:])

	for _, option := range options {
		option(s)
	}

	if s.cam == nil {
		s.cam = camera.NewCamera(
			camera.WithFov(float32(s.fov)),
			camera.WithNear(float32(s.near)),
			camera.WithFar(float32(s.far)),
		)
	}
	s.ResetCamera()
	s.dirty = false
	return s
}

func (s *scene) ResetCamera() {
	v := s.defaultView
	s.cam.LookAt(v[0], v[1], v[2])
	s.dirty = true
}

func (s *scene) ID() string                 { return s.id }
func (s *scene) Active() bool               { return s.active }
func (s *scene) SetActive(active bool)      { s.active = active }
func (s *scene) Camera() camera.Camera      { return s.cam }
func (s *scene) Range() common.Box          { return s.rng }
func (s *scene) Model() [16]float32         { return s.model }
func (s *scene) Selection() *Selection      { return s.selection }
func (s *scene) ObjectCount() int           { return s.ids.Count() }
func (s *scene) PickPasses() int            { return s.pickPasses }
func (s *scene) SetDirty()                  { s.dirty = true }
func (s *scene) Dirty() bool                { return s.dirty }
func (s *scene) AxesOptions() *axes.Options { return s.axesOpts.Clone() }

func (s *scene) SpikeProperties() axes.SpikeProperties {
	return s.spikeProperties
}

func (s *scene) RenderQueue() []drawable.Drawable {
	return append([]drawable.Drawable(nil), s.renderQueue...)
}

func (s *scene) Drawable(uid string) drawable.Drawable {
	if e, ok := s.glDataMap[uid]; ok {
		return e.drawable
	}
	return nil
}

func (s *scene) Dispose() {
	if s.disposed {
		return
	}
	for uid, e := range s.glDataMap {
		e.drawable.Dispose()
		delete(s.glDataMap, uid)
	}
	s.renderQueue = nil
	if s.axis != nil {
		s.axis.Dispose()
		s.axis = nil
	}
	if s.selectBuffer != nil {
		s.selectBuffer.Dispose()
		s.selectBuffer = nil
	}
	if s.spikes != nil {
		s.spikes.Dispose()
		s.spikes = nil
	}
	s.selection = nil
	s.disposed = true
	s.logger.Debug("scene disposed", "id", s.id)
}

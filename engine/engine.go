// Package engine hosts scenes in an interactive window. Everything a scene does, from applying
// queued Draw calls to rendering and presenting, happens on the window's message loop goroutine.
package engine

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-plot/common"
	"github.com/Carmen-Shannon/oxy-plot/engine/canvas"
	"github.com/Carmen-Shannon/oxy-plot/engine/layout"
	"github.com/Carmen-Shannon/oxy-plot/engine/profiler"
	"github.com/Carmen-Shannon/oxy-plot/engine/renderer"
	"github.com/Carmen-Shannon/oxy-plot/engine/scene"
	"github.com/Carmen-Shannon/oxy-plot/engine/window"
	"github.com/charmbracelet/log"
)

// submission is a Draw call waiting for the next frame.
type submission struct {
	key    int
	layout layout.Layout
	trace  *layout.Trace
}

// engine implements the Engine interface.
type engine struct {
	// mu guards pending, the only state touched off the loop goroutine.
	mu      sync.Mutex
	pending []submission

	running  bool
	quitOnce sync.Once
	quit     bool
	closed   bool

	window   window.Window
	renderer renderer.Renderer
	canvas   canvas.Canvas
	logger   *log.Logger

	profiler         *profiler.Profiler
	profilingEnabled bool

	tickCallback func(deltaTime float32)

	scenes map[int]scene.Scene

	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped
	lastFrame        time.Time

	dragging     bool
	dragButton   window.MouseButton
	dragX, dragY int32
	mouseMoved   bool

	snapshotDir string
}

// Engine is the interactive host for plot scenes.
// It owns the window, the shared canvas every scene draws into and the presenter.
type Engine interface {
	scene.Shell

	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance, nil for a headless engine
	Window() window.Window

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickCallback registers the function called at the start of each frame, after queued
	// draws are applied and before scenes render.
	//
	// Parameters:
	//   - callback: function receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// SetRenderFrameLimit sets an optional frame rate cap in frames per second.
	// Pass 0 to uncap the loop (default).
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// AddScene registers a scene at the given z-index key.
	// Scenes are rendered in ascending key order.
	//
	// Parameters:
	//   - key: the z-index determining render order (lower renders first)
	//   - s: the Scene to register
	AddScene(key int, s scene.Scene)

	// RemoveScene disposes and removes the scene at the given z-index key.
	//
	// Parameters:
	//   - key: the z-index of the scene to remove
	RemoveScene(key int)

	// Scene retrieves the scene registered at the given z-index key.
	//
	// Parameters:
	//   - key: the z-index of the scene to retrieve
	//
	// Returns:
	//   - scene.Scene: the scene at the key, or nil if not found
	Scene(key int) scene.Scene

	// Scenes returns a copy of all registered scenes keyed by z-index.
	//
	// Returns:
	//   - map[int]scene.Scene: a copy of the scenes map
	Scenes() map[int]scene.Scene

	// Submit queues a Draw for the scene at key. It is safe to call from any goroutine;
	// the draw is applied at the start of the next frame.
	//
	// Parameters:
	//   - key: the z-index of the target scene
	//   - l: the figure layout
	//   - trace: the trace to draw
	Submit(key int, l layout.Layout, trace *layout.Trace)

	// Tick runs one frame: queued draws, the tick callback, scene rendering, present and profiling.
	Tick()

	// Run drives Tick from the window's message loop and blocks until the window closes.
	Run()

	// Quit asks the loop to stop after the current frame. Safe to call multiple times.
	Quit()
}

var _ Engine = &engine{}

// NewEngine creates a new Engine instance with the provided options.
// When no canvas is given one is created at the window size, or 800x600 without a window.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		scenes:      make(map[int]scene.Scene),
		logger:      log.Default().WithPrefix("engine"),
		snapshotDir: ".",
	}

	for _, opt := range options {
		opt(e)
	}

	if e.profiler == nil {
		e.profiler = profiler.NewProfiler(e.logger)
	}
	if e.canvas == nil {
		w, h := 800, 600
		if e.window != nil {
			w, h = e.window.Width(), e.window.Height()
		}
		c, err := canvas.NewCanvas(w, h)
		if err != nil {
			panic(fmt.Sprintf("engine: failed to create canvas: %v", err))
		}
		e.canvas = c
	}
	if e.window != nil {
		e.bindInput()
	}
	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Width() int            { return e.canvas.Width() }
func (e *engine) Height() int           { return e.canvas.Height() }
func (e *engine) Canvas() canvas.Canvas { return e.canvas }

func (e *engine) Mouse() (int, int) {
	if e.window == nil {
		return -1, -1
	}
	return e.window.Mouse()
}

// bindInput maps window input onto the cameras of the active scenes.
func (e *engine) bindInput() {
	e.window.SetResizeCallback(func(width, height int) {
		if width <= 0 || height <= 0 {
			return
		}
		if err := e.canvas.Resize(width, height); err != nil {
			e.logger.Warn("failed to resize canvas", "err", err)
			return
		}
		if e.renderer != nil {
			e.renderer.Resize(width, height)
		}
		for _, s := range e.scenes {
			s.SetDirty()
		}
	})

	e.window.SetMouseDownCallback(func(button window.MouseButton, x, y int32) {
		e.dragging, e.dragButton = true, button
		e.dragX, e.dragY = x, y
	})
	e.window.SetMouseUpCallback(func(button window.MouseButton, x, y int32) {
		if button == e.dragButton {
			e.dragging = false
		}
	})
	e.window.SetMouseMoveCallback(func(x, y int32) {
		e.mouseMoved = true
		if !e.dragging {
			return
		}
		dx, dy := float64(x-e.dragX), float64(y-e.dragY)
		e.dragX, e.dragY = x, y
		e.eachActive(func(s scene.Scene) {
			ctrl := s.Camera().Controller()
			if e.dragButton == window.MouseLeft {
				ctrl.Orbit(dx, dy)
			} else {
				ctrl.Pan(dx, dy)
			}
			s.SetDirty()
		})
	})
	e.window.SetScrollCallback(func(delta float32) {
		e.eachActive(func(s scene.Scene) {
			s.Camera().Controller().Zoom(float64(delta))
			s.SetDirty()
		})
	})
	e.window.SetKeyDownCallback(e.handleKey)
}

func (e *engine) handleKey(keyCode uint32) {
	switch keyCode {
	case common.KeyR:
		e.eachActive(scene.Scene.ResetCamera)
	case common.KeyP:
		if err := e.snapshot(); err != nil {
			e.logger.Error("snapshot failed", "err", err)
		}
	case common.KeyLeft, common.KeyRight, common.KeyUp, common.KeyDown:
		e.eachActive(func(s scene.Scene) {
			ctrl := s.Camera().Controller()
			switch keyCode {
			case common.KeyLeft:
				ctrl.OrbitLeft()
			case common.KeyRight:
				ctrl.OrbitRight()
			case common.KeyUp:
				ctrl.OrbitUp()
			case common.KeyDown:
				ctrl.OrbitDown()
			}
			s.SetDirty()
		})
	case common.KeyEsc:
		e.Quit()
	}
}

// snapshot writes the canvas of the top active scene to a timestamped PNG.
func (e *engine) snapshot() error {
	active := e.activeScenes()
	if len(active) == 0 {
		return nil
	}
	path := filepath.Join(e.snapshotDir, fmt.Sprintf("oxyplot-%d.png", time.Now().UnixMilli()))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot: %w", err)
	}
	defer f.Close()
	if err := active[len(active)-1].WritePNG(f); err != nil {
		return fmt.Errorf("failed to write snapshot %s: %w", path, err)
	}
	e.logger.Info("snapshot saved", "path", path)
	return nil
}

func (e *engine) Submit(key int, l layout.Layout, trace *layout.Trace) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pending = append(e.pending, submission{key: key, layout: l, trace: trace})
}

// applyPending runs every queued Draw on the loop goroutine.
func (e *engine) applyPending() {
	e.mu.Lock()
	pending := e.pending
	e.pending = nil
	e.mu.Unlock()

	for _, p := range pending {
		s := e.scenes[p.key]
		if s == nil {
			e.logger.Warn("draw submitted for unknown scene", "key", p.key)
			continue
		}
		if err := s.Draw(p.layout, p.trace); err != nil {
			e.logger.Warn("draw failed", "scene", s.ID(), "err", err)
		}
	}
}

func (e *engine) Tick() {
	now := time.Now()
	if e.lastFrame.IsZero() {
		e.lastFrame = now
	}
	dt := float32(now.Sub(e.lastFrame).Seconds())
	e.lastFrame = now

	e.applyPending()
	if e.tickCallback != nil {
		e.tickCallback(dt)
	}

	// A moving mouse changes the pick result, so every scene redraws.
	redraw := e.mouseMoved
	e.mouseMoved = false
	active := e.activeScenes()
	for _, s := range active {
		redraw = redraw || s.Dirty()
	}

	passes := 0
	if redraw {
		for _, s := range active {
			s.Render()
			passes += s.PickPasses()
		}
		if e.renderer != nil {
			if err := e.renderer.Present(e.canvas.Image()); err != nil {
				e.logger.Warn("present failed", "err", err)
				if errors.Is(err, renderer.ErrSurfaceLost) {
					e.renderer.Resize(e.canvas.Width(), e.canvas.Height())
				}
			}
		}
	}

	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick(passes)
	}

	if e.renderFrameLimit > 0 {
		if remaining := e.renderFrameLimit - time.Since(now); remaining > 0 {
			time.Sleep(remaining)
		}
	}
}

func (e *engine) Run() {
	if e.window == nil {
		panic("engine: Run requires a window")
	}
	e.running = true
	e.window.SetUpdateCallback(func() {
		if e.quit {
			e.close()
			return
		}
		e.Tick()
	})
	e.window.ProcessMessages()
	e.running = false
	e.close()
	e.shutdown()
}

func (e *engine) close() {
	if e.closed {
		return
	}
	e.closed = true
	if err := e.window.Close(); err != nil {
		e.logger.Warn("failed to close window", "err", err)
	}
}

// shutdown releases every scene and the presenter once the loop has stopped.
func (e *engine) shutdown() {
	for _, s := range e.scenes {
		s.Dispose()
	}
	if e.renderer != nil {
		e.renderer.Release()
	}
	if err := e.canvas.Close(); err != nil {
		e.logger.Warn("failed to close canvas", "err", err)
	}
}

func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		e.quit = true
	})
}

// activeScenes returns the active scenes in ascending z-index order.
func (e *engine) activeScenes() []scene.Scene {
	keys := make([]int, 0, len(e.scenes))
	for k := range e.scenes {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	var out []scene.Scene
	for _, k := range keys {
		if s := e.scenes[k]; s.Active() {
			out = append(out, s)
		}
	}
	return out
}

func (e *engine) eachActive(fn func(s scene.Scene)) {
	for _, s := range e.activeScenes() {
		fn(s)
	}
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

func (e *engine) SetRenderFrameLimit(fps float64) {
	if fps <= 0 {
		e.renderFrameLimit = 0
		return
	}
	e.renderFrameLimit = time.Duration(float64(time.Second) / fps)
}

func (e *engine) AddScene(key int, s scene.Scene) {
	e.scenes[key] = s
}

func (e *engine) RemoveScene(key int) {
	if s, ok := e.scenes[key]; ok {
		s.Dispose()
		delete(e.scenes, key)
	}
}

func (e *engine) Scene(key int) scene.Scene {
	return e.scenes[key]
}

func (e *engine) Scenes() map[int]scene.Scene {
	cp := make(map[int]scene.Scene, len(e.scenes))
	for k, v := range e.scenes {
		cp[k] = v
	}
	return cp
}

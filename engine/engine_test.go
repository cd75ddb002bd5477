package engine

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/Carmen-Shannon/oxy-plot/common"
	"github.com/Carmen-Shannon/oxy-plot/engine/canvas"
	"github.com/Carmen-Shannon/oxy-plot/engine/layout"
	"github.com/Carmen-Shannon/oxy-plot/engine/renderer"
	"github.com/Carmen-Shannon/oxy-plot/engine/scene"
	"github.com/Carmen-Shannon/oxy-plot/engine/soft"
	"github.com/Carmen-Shannon/oxy-plot/engine/window"
	"github.com/charmbracelet/log"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWindow records callbacks and runs a fixed number of loop iterations.
type fakeWindow struct {
	width, height  int
	mouseX, mouseY int
	iterations     int
	closed         bool

	onUpdate    func()
	onResize    func(int, int)
	onScroll    func(float32)
	onKeyDown   func(uint32)
	onMouseDown func(window.MouseButton, int32, int32)
	onMouseUp   func(window.MouseButton, int32, int32)
	onMouseMove func(int32, int32)
}

var _ window.Window = &fakeWindow{}

func (w *fakeWindow) SetUpdateCallback(cb func())                { w.onUpdate = cb }
func (w *fakeWindow) SetResizeCallback(cb func(int, int))        { w.onResize = cb }
func (w *fakeWindow) SetScrollCallback(cb func(float32))         { w.onScroll = cb }
func (w *fakeWindow) SetKeyDownCallback(cb func(uint32))         { w.onKeyDown = cb }
func (w *fakeWindow) SetKeyUpCallback(func(uint32))              {}
func (w *fakeWindow) SetMouseMoveCallback(cb func(int32, int32)) { w.onMouseMove = cb }
func (w *fakeWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor { return nil }
func (w *fakeWindow) IsRunning() bool                            { return !w.closed && w.iterations > 0 }
func (w *fakeWindow) Width() int                                 { return w.width }
func (w *fakeWindow) Height() int                                { return w.height }
func (w *fakeWindow) Mouse() (int, int)                          { return w.mouseX, w.mouseY }
func (w *fakeWindow) SetTitle(string)                            {}
func (w *fakeWindow) Close() error                               { w.closed = true; return nil }
func (w *fakeWindow) SetMouseDownCallback(cb func(window.MouseButton, int32, int32)) {
	w.onMouseDown = cb
}
func (w *fakeWindow) SetMouseUpCallback(cb func(window.MouseButton, int32, int32)) {
	w.onMouseUp = cb
}

func (w *fakeWindow) ProcessMessages() {
	for w.IsRunning() {
		w.iterations--
		if w.onUpdate != nil {
			w.onUpdate()
		}
	}
}

type fakePresenter struct {
	frames   int
	resized  [2]int
	released bool
}

func (p *fakePresenter) Resize(w, h int)                     { p.resized = [2]int{w, h} }
func (p *fakePresenter) Present(*image.RGBA) error           { p.frames++; return nil }
func (p *fakePresenter) SetPresentMode(renderer.PresentMode) {}
func (p *fakePresenter) Size() (int, int)                    { return p.resized[0], p.resized[1] }
func (p *fakePresenter) Release()                            { p.released = true }

func quiet() *log.Logger {
	l := log.New(nil)
	l.SetLevel(log.FatalLevel)
	return l
}

func newTestEngine(t *testing.T) (Engine, *fakeWindow, *fakePresenter) {
	t.Helper()
	w := &fakeWindow{width: 64, height: 48, iterations: 1}
	p := &fakePresenter{}
	c, err := canvas.NewCanvas(64, 48)
	require.NoError(t, err)
	e := NewEngine(WithWindow(w), WithRenderer(p), WithCanvas(c), WithLogger(quiet()), WithSnapshotDir(t.TempDir()))
	return e, w, p
}

func addScene(e Engine, key int) scene.Scene {
	s := scene.NewScene("scene", e, soft.NewBackend(e.Canvas()), scene.WithLogger(quiet()))
	e.AddScene(key, s)
	return s
}

func points() *layout.Trace {
	return &layout.Trace{
		Type: layout.TraceScatter3D,
		UID:  "pts",
		Mode: "markers",
		X:    []float64{0, 1, 2},
		Y:    []float64{0, 1, 2},
		Z:    []float64{0, 1, 2},
	}
}

func TestSubmitIsAppliedOnTick(t *testing.T) {
	e, _, p := newTestEngine(t)
	s := addScene(e, 0)

	e.Submit(0, layout.Layout{}, points())
	assert.Nil(t, s.Drawable("pts"), "nothing happens before the frame")

	e.Tick()
	assert.NotNil(t, s.Drawable("pts"))
	assert.Equal(t, 1, p.frames)
	assert.False(t, s.Dirty())

	e.Tick()
	assert.Equal(t, 1, p.frames, "clean scenes are not redrawn")
}

func TestSubmitToUnknownSceneIsDropped(t *testing.T) {
	e, _, p := newTestEngine(t)
	e.Submit(3, layout.Layout{}, points())
	assert.NotPanics(t, e.Tick)
	assert.Zero(t, p.frames)
}

func TestActiveScenesAreOrderedByKey(t *testing.T) {
	e, _, _ := newTestEngine(t)
	for _, key := range []int{5, 1, 3} {
		addScene(e, key)
	}
	e.Scene(3).SetActive(false)

	active := e.(*engine).activeScenes()
	require.Len(t, active, 2)
	assert.Same(t, e.Scene(1), active[0])
	assert.Same(t, e.Scene(5), active[1])
	assert.Len(t, e.Scenes(), 3)
}

func TestDragOrbitsAndScrollZooms(t *testing.T) {
	e, w, _ := newTestEngine(t)
	s := addScene(e, 0)
	e.Tick()
	before := s.Camera().Pose()

	w.onMouseDown(window.MouseLeft, 10, 10)
	w.onMouseMove(30, 12)
	w.onMouseUp(window.MouseLeft, 30, 12)
	assert.NotEqual(t, before.Rotation, s.Camera().Pose().Rotation)
	assert.True(t, s.Dirty())

	d := s.Camera().Pose().Distance
	w.onScroll(1)
	assert.Less(t, s.Camera().Pose().Distance, d)

	w.onKeyDown(common.KeyR)
	assert.InDelta(t, before.Distance, s.Camera().Pose().Distance, 1e-9)
}

func TestMouseMoveTriggersRedraw(t *testing.T) {
	e, w, p := newTestEngine(t)
	addScene(e, 0)
	e.Tick()
	frames := p.frames

	w.mouseX, w.mouseY = 20, 20
	w.onMouseMove(20, 20)
	e.Tick()
	assert.Equal(t, frames+1, p.frames)
}

func TestResizeResizesCanvasAndPresenter(t *testing.T) {
	e, w, p := newTestEngine(t)
	s := addScene(e, 0)
	e.Tick()

	w.onResize(100, 80)
	assert.Equal(t, 100, e.Width())
	assert.Equal(t, 80, e.Height())
	assert.Equal(t, [2]int{100, 80}, p.resized)
	assert.True(t, s.Dirty())
}

func TestSnapshotKeyWritesPNG(t *testing.T) {
	e, w, _ := newTestEngine(t)
	addScene(e, 0)
	e.Tick()

	w.onKeyDown(common.KeyP)
	files, err := filepath.Glob(filepath.Join(e.(*engine).snapshotDir, "oxyplot-*.png"))
	require.NoError(t, err)
	require.Len(t, files, 1)
	info, err := os.Stat(files[0])
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestRunStopsOnQuitAndReleases(t *testing.T) {
	e, w, p := newTestEngine(t)
	s := addScene(e, 0)
	w.iterations = 10

	ticks := 0
	e.SetTickCallback(func(float32) {
		ticks++
		if ticks == 2 {
			e.Quit()
		}
	})
	e.Submit(0, layout.Layout{}, points())
	e.Run()

	assert.Equal(t, 2, ticks)
	assert.True(t, w.closed)
	assert.True(t, p.released)
	assert.ErrorIs(t, s.Draw(layout.Layout{}, points()), scene.ErrDisposed)
}

func TestEngineIsASceneShell(t *testing.T) {
	e, w, _ := newTestEngine(t)
	w.mouseX, w.mouseY = 7, 9
	x, y := e.Mouse()
	assert.Equal(t, [2]int{7, 9}, [2]int{x, y})
	assert.Equal(t, 64, e.Width())
}

func TestRemoveSceneDisposes(t *testing.T) {
	e, _, _ := newTestEngine(t)
	s := addScene(e, 2)
	e.RemoveScene(2)
	assert.Nil(t, e.Scene(2))
	assert.ErrorIs(t, s.Draw(layout.Layout{}, points()), scene.ErrDisposed)
}

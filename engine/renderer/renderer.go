// Package renderer puts finished plot frames on screen. Scenes draw into a software canvas;
// the renderer uploads that canvas into the window's swapchain texture and presents it.
package renderer

import (
	"errors"
	"image"
	"sync"

	"github.com/Carmen-Shannon/oxy-plot/engine/window"
)

// ErrSurfaceLost is returned by Present when the swapchain texture could not be acquired.
// The caller should Resize and try again on the next frame.
var ErrSurfaceLost = errors.New("surface texture unavailable")

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backendType RendererBackendType
	backend     RendererBackend

	width, height int

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	pendingPresentMode   *PresentMode
}

// Renderer presents canvas frames on a window surface.
type Renderer interface {
	// Resize reconfigures the surface for a new window size.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// Present uploads a frame and shows it. Frames larger than the surface are cropped.
	//
	// Parameters:
	//   - frame: the rendered canvas, origin top-left
	//
	// Returns:
	//   - error: ErrSurfaceLost when no swapchain texture could be acquired, or an upload error
	Present(frame *image.RGBA) error

	// SetPresentMode changes how frames are delivered to the display. Takes effect on the next Resize.
	//
	// Parameters:
	//   - mode: the PresentMode to use
	SetPresentMode(mode PresentMode)

	// Size returns the configured surface size in pixels.
	Size() (width, height int)

	// Release frees the GPU device, surface and instance.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a Renderer for the given window and configures its surface.
//
// Parameters:
//   - backendType: the GPU backend to use
//   - window: the window to present into
//   - options: functional options applied before the GPU adapter is requested
//
// Returns:
//   - Renderer: the configured renderer
func NewRenderer(backendType RendererBackendType, window window.Window, options ...RendererBuilderOption) Renderer {
	r := &renderer{
		mu:          &sync.Mutex{},
		backendType: backendType,
	}

	// Apply options first so config flags (e.g. forceFallbackAdapter) are
	// available before the backend requests a GPU adapter.
	for _, opt := range options {
		opt(r)
	}

	switch backendType {
	case BackendTypeWGPU:
		fallthrough
	default:
		r.backend = newWGPURendererBackend(window.SurfaceDescriptor(), r.forceFallbackAdapter)
	}

	if r.pendingPresentMode != nil {
		r.backend.SetPresentMode(*r.pendingPresentMode)
	}

	r.Resize(window.Width(), window.Height())
	return r
}

func (r *renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.mu.Lock()
	r.width, r.height = width, height
	r.mu.Unlock()
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) Present(frame *image.RGBA) error {
	r.mu.Lock()
	w, h := r.width, r.height
	r.mu.Unlock()
	if w == 0 || h == 0 || frame == nil {
		return nil
	}
	return r.backend.Upload(frame, w, h)
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.backend.SetPresentMode(mode)
}

func (r *renderer) Size() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.width, r.height
}

func (r *renderer) Release() {
	r.backend.Release()
}

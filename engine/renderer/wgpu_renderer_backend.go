package renderer

import (
	"fmt"
	"image"
	"runtime"
	"sync"

	"github.com/cogentcore/webgpu/wgpu"
)

type wgpuRendererBackendImpl struct {
	mu     *sync.Mutex
	device *wgpu.Device
	queue  *wgpu.Queue

	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	surface  *wgpu.Surface

	surfaceFormat wgpu.TextureFormat
	presentMode   wgpu.PresentMode // defaults to PresentModeFifo (VSync)

	// staging holds the converted frame between uploads
	staging []byte
}

type wgpuRendererBackend interface {
	// ConfigureSurface (re)configures the swapchain as a copy destination of the given size.
	//
	// Parameters:
	//   - width: surface width in pixels
	//   - height: surface height in pixels
	ConfigureSurface(width, height int)

	// SetPresentMode maps a PresentMode to the wgpu present mode used by the next ConfigureSurface.
	//
	// Parameters:
	//   - mode: the PresentMode to use
	SetPresentMode(mode PresentMode)

	// Upload copies frame into the current swapchain texture and presents it.
	//
	// Parameters:
	//   - frame: RGBA pixels, origin top-left
	//   - width, height: the configured surface size
	//
	// Returns:
	//   - error: ErrSurfaceLost if the swapchain texture could not be acquired
	Upload(frame *image.RGBA, width, height int) error

	// Release frees every GPU object held by the backend.
	Release()
}

var _ RendererBackend = &wgpuRendererBackendImpl{}

func newWGPURendererBackend(surfaceDescriptor *wgpu.SurfaceDescriptor, forceFallbackAdapter bool) wgpuRendererBackend {
	runtime.LockOSThread()
	w := &wgpuRendererBackendImpl{
		mu:          &sync.Mutex{},
		instance:    wgpu.CreateInstance(nil),
		presentMode: wgpu.PresentModeFifo,
	}
	w.surface = w.instance.CreateSurface(surfaceDescriptor)

	a, err := w.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: forceFallbackAdapter,
		CompatibleSurface:    w.surface,
	})
	if err != nil {
		panic(err)
	}
	w.adapter = a

	d, err := a.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Plot Device",
	})
	if err != nil {
		panic(err)
	}
	w.device = d
	w.queue = d.GetQueue()

	return w
}

func (b *wgpuRendererBackendImpl) ConfigureSurface(width, height int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	capabilities := b.surface.GetCapabilities(b.adapter)
	b.surfaceFormat = capabilities.Formats[0]

	b.surface.Configure(b.adapter, b.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment | wgpu.TextureUsageCopyDst,
		Format:      b.surfaceFormat,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: b.presentMode,
		AlphaMode:   capabilities.AlphaModes[0],
	})
}

func (b *wgpuRendererBackendImpl) SetPresentMode(mode PresentMode) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch mode {
	case PresentModeUncapped:
		b.presentMode = wgpu.PresentModeImmediate
	case PresentModeVSync:
		fallthrough
	default:
		b.presentMode = wgpu.PresentModeFifo
	}
}

func (b *wgpuRendererBackendImpl) Upload(frame *image.RGBA, width, height int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	surfaceTexture, err := b.surface.GetCurrentTexture()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSurfaceLost, err)
	}
	defer surfaceTexture.Release()

	w := min(width, frame.Rect.Dx())
	h := min(height, frame.Rect.Dy())
	b.staging = packFrame(b.staging, frame, w, h, isBGRA(b.surfaceFormat))

	b.queue.WriteTexture(
		&wgpu.ImageCopyTexture{
			Texture:  surfaceTexture,
			MipLevel: 0,
			Origin:   wgpu.Origin3D{},
			Aspect:   wgpu.TextureAspectAll,
		},
		b.staging,
		&wgpu.TextureDataLayout{
			Offset:       0,
			BytesPerRow:  uint32(w * 4),
			RowsPerImage: uint32(h),
		},
		&wgpu.Extent3D{
			Width:              uint32(w),
			Height:             uint32(h),
			DepthOrArrayLayers: 1,
		},
	)
	b.surface.Present()
	return nil
}

func (b *wgpuRendererBackendImpl) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.queue != nil {
		b.queue.Release()
		b.queue = nil
	}
	if b.device != nil {
		b.device.Release()
		b.device = nil
	}
	if b.adapter != nil {
		b.adapter.Release()
		b.adapter = nil
	}
	if b.surface != nil {
		b.surface.Release()
		b.surface = nil
	}
	if b.instance != nil {
		b.instance.Release()
		b.instance = nil
	}
}

func isBGRA(format wgpu.TextureFormat) bool {
	return format == wgpu.TextureFormatBGRA8Unorm || format == wgpu.TextureFormatBGRA8UnormSrgb
}

// packFrame copies the top-left w x h pixels of frame into a tightly packed buffer,
// swapping red and blue when the surface wants BGRA.
func packFrame(dst []byte, frame *image.RGBA, w, h int, bgra bool) []byte {
	n := w * h * 4
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	for y := 0; y < h; y++ {
		src := frame.Pix[y*frame.Stride : y*frame.Stride+w*4]
		row := dst[y*w*4 : (y+1)*w*4]
		copy(row, src)
		if bgra {
			for i := 0; i < len(row); i += 4 {
				row[i], row[i+2] = row[i+2], row[i]
			}
		}
	}
	return dst
}

// Package canvas is the drawing surface a scene renders into: a software framebuffer with
// the blend state and readback a GL context would provide.
package canvas

import (
	"fmt"
	"image"
	"sync"

	"github.com/Carmen-Shannon/oxy-plot/common"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Canvas is the render target shared by a scene and its renderers.
type Canvas interface {
	// Width returns the framebuffer width in pixels.
	Width() int

	// Height returns the framebuffer height in pixels.
	Height() int

	// Resize reallocates the framebuffer. Contents are discarded.
	//
	// Parameters:
	//   - width, height: new size in pixels
	//
	// Returns:
	//   - error: if either dimension is not positive
	Resize(width, height int) error

	// Clear fills the framebuffer with a color.
	//
	// Parameters:
	//   - c: clear color
	Clear(c common.RGBA)

	// SetBlend enables or disables alpha blending for subsequent draws.
	//
	// Parameters:
	//   - enabled: true to blend
	SetBlend(enabled bool)

	// Blending reports whether blending is enabled.
	Blending() bool

	// SetColor sets the paint color. With blending off the alpha channel is forced to 1.
	//
	// Parameters:
	//   - c: paint color
	SetColor(c common.RGBA)

	// Context returns the 2D context renderers draw paths with.
	Context() *gg.Context

	// Face returns a font face of the given size, or nil when no font is loaded.
	//
	// Parameters:
	//   - size: font size in pixels
	Face(size float64) text.Face

	// ReadPixels returns the framebuffer as tightly packed RGBA rows, bottom row first.
	ReadPixels() []byte

	// Image returns a snapshot of the framebuffer, top row first.
	Image() *image.RGBA

	// Close releases the framebuffer and the font.
	Close() error
}

type canvas struct {
	mu *sync.Mutex

	ctx      *gg.Context
	blending bool
	font     *text.FontSource
	faces    map[float64]text.Face
}

var _ Canvas = &canvas{}

// NewCanvas creates a software canvas.
//
// Parameters:
//   - width, height: framebuffer size in pixels
//   - options: functional options
//
// Returns:
//   - Canvas: the new canvas
//   - error: if a font option fails to load
func NewCanvas(width, height int, options ...CanvasBuilderOption) (Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", width, height)
	}
	c := &canvas{
		mu:    &sync.Mutex{},
		ctx:   gg.NewContext(width, height),
		faces: make(map[float64]text.Face),
	}
	for _, option := range options {
		if err := option(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *canvas) Width() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ctx.Width()
}

func (c *canvas) Height() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ctx.Height()
}

func (c *canvas) Resize(width, height int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ctx.Resize(width, height); err != nil {
		return fmt.Errorf("failed to resize canvas: %w", err)
	}
	return nil
}

func (c *canvas) Clear(col common.RGBA) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ctx.ClearWithColor(gg.RGBA{R: float64(col[0]), G: float64(col[1]), B: float64(col[2]), A: float64(col[3])})
}

func (c *canvas) SetBlend(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.blending = enabled
}

func (c *canvas) Blending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.blending
}

func (c *canvas) SetColor(col common.RGBA) {
	c.mu.Lock()
	defer c.mu.Unlock()
	a := float64(col[3])
	if !c.blending {
		a = 1
	}
	c.ctx.SetRGBA(float64(col[0]), float64(col[1]), float64(col[2]), a)
}

func (c *canvas) Context() *gg.Context {
	return c.ctx
}

func (c *canvas) Face(size float64) text.Face {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.font == nil {
		return nil
	}
	if f, ok := c.faces[size]; ok {
		return f
	}
	f := c.font.Face(size)
	c.faces[size] = f
	return f
}

func (c *canvas) Image() *image.RGBA {
	c.mu.Lock()
	defer c.mu.Unlock()
	return toRGBA(c.ctx.Image())
}

func (c *canvas) ReadPixels() []byte {
	img := c.Image()
	w, h := img.Rect.Dx(), img.Rect.Dy()
	stride := 4 * w
	out := make([]byte, stride*h)
	for y := 0; y < h; y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+stride]
		copy(out[(h-1-y)*stride:], src)
	}
	return out
}

func (c *canvas) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.font != nil {
		if err := c.font.Close(); err != nil {
			return fmt.Errorf("failed to close font: %w", err)
		}
		c.font = nil
	}
	clear(c.faces)
	return c.ctx.Close()
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			out.Set(x, y, img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return out
}

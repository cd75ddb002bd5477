package canvas

import (
	"fmt"

	"github.com/gogpu/gg/text"
)

// CanvasBuilderOption configures a canvas. Options that load resources may fail.
type CanvasBuilderOption func(*canvas) error

// WithFontFile loads a TrueType/OpenType font used for tick and axis labels.
// Without a font, text drawing is skipped.
//
// Parameters:
//   - path: font file path
//
// Returns:
//   - CanvasBuilderOption: option that loads the font
func WithFontFile(path string) CanvasBuilderOption {
	return func(c *canvas) error {
		src, err := text.NewFontSourceFromFile(path)
		if err != nil {
			return fmt.Errorf("failed to load font %s: %w", path, err)
		}
		c.font = src
		return nil
	}
}

// WithBlend sets the initial blend state.
//
// Parameters:
//   - enabled: true to start with blending on
//
// Returns:
//   - CanvasBuilderOption: option that sets the blend state
func WithBlend(enabled bool) CanvasBuilderOption {
	return func(c *canvas) error {
		c.blending = enabled
		return nil
	}
}

package scene

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"io"
)

// readImage reads the framebuffer back, bottom row first, and flips it into a top-down image.
func (s *scene) readImage() (*image.RGBA, error) {
	c := s.shell.Canvas()
	if c == nil {
		return nil, ErrNoCanvas
	}
	w, h := c.Width(), c.Height()
	pixels := c.ReadPixels()
	stride := 4 * w
	if len(pixels) < stride*h {
		return nil, fmt.Errorf("short readback: %d bytes for %dx%d", len(pixels), w, h)
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		src := pixels[(h-1-y)*stride : (h-y)*stride]
		copy(img.Pix[y*img.Stride:y*img.Stride+stride], src)
	}
	return img, nil
}

func (s *scene) WritePNG(w io.Writer) error {
	img, err := s.readImage()
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

func (s *scene) ToPNG() (string, error) {
	var buf bytes.Buffer
	if err := s.WritePNG(&buf); err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

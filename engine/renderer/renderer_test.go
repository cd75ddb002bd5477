package renderer

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackFrameCropsAndSwizzles(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 3, 2))
	frame.SetRGBA(0, 0, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	frame.SetRGBA(1, 1, color.RGBA{R: 1, G: 2, B: 3, A: 4})

	out := packFrame(nil, frame, 2, 2, false)
	assert.Len(t, out, 16)
	assert.Equal(t, []byte{10, 20, 30, 255}, out[0:4])
	assert.Equal(t, []byte{1, 2, 3, 4}, out[12:16])

	out = packFrame(out, frame, 2, 2, true)
	assert.Equal(t, []byte{30, 20, 10, 255}, out[0:4])
	assert.Equal(t, []byte{3, 2, 1, 4}, out[12:16])
}

func TestPackFrameReusesBuffer(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 4, 4))
	buf := make([]byte, 0, 64)
	out := packFrame(buf, frame, 4, 4, false)
	assert.Equal(t, cap(buf), cap(out))
}

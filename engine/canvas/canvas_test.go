package canvas

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-plot/common"
	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPixelsIsBottomUp(t *testing.T) {
	c, err := NewCanvas(4, 2)
	require.NoError(t, err)
	defer c.Close()

	c.Clear(common.RGBA{0, 0, 1, 1})
	c.Context().SetPixel(0, 0, gg.RGBA{R: 1, A: 1})

	img := c.Image()
	assert.Equal(t, uint8(255), img.Pix[0], "top-left of the image is red")

	px := c.ReadPixels()
	require.Len(t, px, 4*4*2)
	assert.Equal(t, uint8(0), px[0], "first row of the readback is the bottom row")
	assert.Equal(t, uint8(255), px[2])
	row := 4 * 4
	assert.Equal(t, uint8(255), px[row], "top row comes last")
}

func TestBlendForcesOpaqueWhenOff(t *testing.T) {
	c, err := NewCanvas(2, 2)
	require.NoError(t, err)
	assert.False(t, c.Blending())
	c.SetBlend(true)
	assert.True(t, c.Blending())

	c2, err := NewCanvas(2, 2, WithBlend(true))
	require.NoError(t, err)
	assert.True(t, c2.Blending())
}

func TestResizeAndInvalidSize(t *testing.T) {
	_, err := NewCanvas(0, 10)
	assert.Error(t, err)

	c, err := NewCanvas(2, 2)
	require.NoError(t, err)
	require.NoError(t, c.Resize(8, 6))
	assert.Equal(t, 8, c.Width())
	assert.Equal(t, 6, c.Height())
	assert.Error(t, c.Resize(-1, 2))
}

func TestFaceWithoutFont(t *testing.T) {
	c, err := NewCanvas(2, 2)
	require.NoError(t, err)
	assert.Nil(t, c.Face(12))
}

func TestWithFontFileMissing(t *testing.T) {
	_, err := NewCanvas(2, 2, WithFontFile("/nonexistent/font.ttf"))
	assert.Error(t, err)
}

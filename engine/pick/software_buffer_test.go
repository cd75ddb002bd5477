package pick

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSoftwareBufferNearestHit(t *testing.T) {
	b := NewSoftwareBuffer(100, 100)
	b.Begin(50, 50, 10)
	b.Write(55, 50, 0.5, 1, EncodeIndex(7))
	b.Write(52, 51, 0.5, 2, EncodeIndex(9))
	res := b.End()

	require.NotNil(t, res)
	assert.Equal(t, uint8(2), res.ID)
	assert.Equal(t, 9, DecodeIndex(res.Value))
	assert.Equal(t, [2]int{52, 51}, res.Coord)
	assert.Equal(t, 5.0, res.Distance)
}

func TestSoftwareBufferIgnoresOutsideRadius(t *testing.T) {
	b := NewSoftwareBuffer(100, 100)
	b.Begin(50, 50, 5)
	b.Write(70, 70, 0, 1, [3]uint8{})
	b.Write(55, 55, 0, 1, [3]uint8{}) // corner of the window, outside the circle
	assert.Nil(t, b.End())
}

func TestSoftwareBufferDepthTest(t *testing.T) {
	b := NewSoftwareBuffer(10, 10)
	b.Begin(5, 5, 2)
	b.Write(5, 5, 0.8, 1, [3]uint8{})
	b.Write(5, 5, 0.2, 2, [3]uint8{})
	b.Write(5, 5, 0.5, 3, [3]uint8{})
	res := b.End()
	require.NotNil(t, res)
	assert.Equal(t, uint8(2), res.ID)
}

func TestSoftwareBufferRequiresBegin(t *testing.T) {
	b := NewSoftwareBuffer(10, 10)
	b.Write(5, 5, 0, 1, [3]uint8{})
	assert.Nil(t, b.End())

	b.Begin(5, 5, 3)
	b.Write(5, 5, 0, 1, [3]uint8{})
	require.NotNil(t, b.End())

	b.Begin(5, 5, 3)
	assert.Nil(t, b.End(), "a new query starts empty")
}

func TestSoftwareBufferClipsToShape(t *testing.T) {
	b := NewSoftwareBuffer(10, 10)
	b.Begin(9, 9, 3)
	b.Write(10, 9, 0, 1, [3]uint8{})
	assert.Nil(t, b.End())

	b.SetShape(20, 20)
	b.Begin(9, 9, 3)
	b.Write(10, 9, 0, 1, [3]uint8{})
	assert.NotNil(t, b.End())
}

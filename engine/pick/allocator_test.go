package pick

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocatorWrapsEvery256(t *testing.T) {
	var a Allocator
	ids := make([]ID, 300)
	for i := range ids {
		ids[i] = a.Next()
	}
	for i := 0; i < 256; i++ {
		require.Equal(t, ID{Group: 0, Local: uint8(i)}, ids[i])
	}
	for i := 256; i < 300; i++ {
		require.Equal(t, ID{Group: 1, Local: uint8(i - 256)}, ids[i])
	}
	assert.Equal(t, 300, a.Count())
	assert.Equal(t, 2, a.Passes())
}

func TestAllocatorPassesBoundary(t *testing.T) {
	var a Allocator
	assert.Equal(t, 0, a.Passes())
	for i := 0; i < 256; i++ {
		a.Next()
	}
	assert.Equal(t, 1, a.Passes())
	a.Next()
	assert.Equal(t, 2, a.Passes())
}

func TestReserveNeverStraddlesGroups(t *testing.T) {
	var a Allocator
	for i := 0; i < 254; i++ {
		a.Next()
	}
	b := a.Reserve(4)
	assert.Equal(t, 1, b.Group)
	assert.Equal(t, []uint8{0, 1, 2, 3}, b.IDs)
	assert.Equal(t, 260, a.Count())
}

func TestReserveWholeGroup(t *testing.T) {
	var a Allocator
	first := a.Reserve(GroupSize)
	assert.Equal(t, 0, first.Group)
	assert.Equal(t, uint8(0), first.IDs[0])
	assert.Equal(t, uint8(GroupSize-1), first.IDs[GroupSize-1])

	a.Next()
	second := a.Reserve(GroupSize)
	assert.Equal(t, 2, second.Group, "a full block skips the partly used group")
	assert.Equal(t, uint8(0), second.IDs[0])
	assert.Equal(t, uint8(GroupSize-1), second.IDs[GroupSize-1])
	assert.Equal(t, 3*GroupSize, a.Count())
	assert.Equal(t, 3, a.Passes())
}

func TestReserveRejectsBadSizes(t *testing.T) {
	var a Allocator
	assert.Panics(t, func() { a.Reserve(0) })
	assert.Panics(t, func() { a.Reserve(GroupSize + 1) })
}

func TestIndexEncoding(t *testing.T) {
	for _, idx := range []int{0, 1, 255, 256, 70000, 1<<24 - 1} {
		assert.Equal(t, idx, DecodeIndex(EncodeIndex(idx)))
	}
}

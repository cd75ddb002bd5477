// Package pick defines the pick buffer used for mouse selection and the id allocator that
// assigns drawables to picking groups.
//
// A pick buffer stores one 8-bit id per pixel, so at most 256 drawables can be
// distinguished per pass. Drawables are grouped by groupId = id >> 8 and the scene runs
// one pass per group.
package pick

// Result is the hit returned by a pick query.
type Result struct {
	// ID is the 8-bit local pick id of the drawable that wrote the pixel.
	ID uint8
	// Value carries drawable-specific data, usually an encoded sub-object index.
	Value [3]uint8
	// Coord is the pixel that was hit, origin at the top-left of the viewport.
	Coord [2]int
	// Distance is the squared pixel distance from the query point to Coord.
	Distance float64
}

// Target is the write side of a pick buffer. Drawables splat their ids into it from DrawPick.
type Target interface {
	// Width returns the target width in pixels.
	Width() int

	// Height returns the target height in pixels.
	Height() int

	// Write records a pick sample at pixel (x, y). Samples outside the active query
	// window are ignored; when two samples land on one pixel the smaller depth wins.
	//
	// Parameters:
	//   - x, y: pixel coordinates, origin top-left
	//   - depth: normalized device depth, smaller is closer
	//   - id: local pick id of the writing drawable
	//   - value: drawable-specific payload
	Write(x, y int, depth float64, id uint8, value [3]uint8)
}

// Buffer is an offscreen selection buffer queried with a begin/end scope.
type Buffer interface {
	Target

	// SetShape resizes the buffer to match the viewport.
	//
	// Parameters:
	//   - width, height: viewport size in pixels
	SetShape(width, height int)

	// Begin opens a query around (x, y). Only pixels within radius of the point are kept.
	//
	// Parameters:
	//   - x, y: query point in pixels, origin top-left
	//   - radius: search radius in pixels
	Begin(x, y, radius int)

	// End closes the query and returns the written pixel closest to the query point.
	//
	// Returns:
	//   - *Result: the nearest hit, or nil if nothing was written within the radius
	End() *Result

	// Dispose releases the buffer's storage.
	Dispose()
}

// EncodeIndex packs the low 24 bits of index into a pick value.
func EncodeIndex(index int) [3]uint8 {
	return [3]uint8{uint8(index), uint8(index >> 8), uint8(index >> 16)}
}

// DecodeIndex unpacks a value written with EncodeIndex.
func DecodeIndex(v [3]uint8) int {
	return int(v[0]) | int(v[1])<<8 | int(v[2])<<16
}

package axes

import (
	"math"

	"github.com/Carmen-Shannon/oxy-plot/common"
	"github.com/Carmen-Shannon/oxy-plot/engine/drawable"
)

// PixelRange is an axis's visible data range and its on-screen scale.
type PixelRange struct {
	Lo, Hi            float64
	PixelsPerDataUnit float64
}

// PixelRanges measures how many screen pixels one data unit spans along each axis.
// Each axis is measured along the box edge through the center, so the value tracks the
// camera distance and the model scale. An axis whose edge is degenerate or behind the eye
// reports +Inf so callers can skip its ticks.
//
// Parameters:
//   - bounds: the axes box in data space
//   - params: camera matrices and viewport
//
// Returns:
//   - [3]PixelRange: per-axis range and scale
func PixelRanges(bounds common.Box, params drawable.CameraParams) [3]PixelRange {
	var out [3]PixelRange
	center := bounds.Center()
	for i := 0; i < 3; i++ {
		out[i].Lo, out[i].Hi = bounds[0][i], bounds[1][i]
		extent := bounds.Extent(i)

		a, b := center, center
		a[i], b[i] = bounds[0][i], bounds[1][i]
		sa, okA := params.ToScreen(params.Project(a))
		sb, okB := params.ToScreen(params.Project(b))
		if !okA || !okB || extent <= 0 {
			out[i].PixelsPerDataUnit = math.Inf(1)
			continue
		}
		px := math.Hypot(sb[0]-sa[0], sb[1]-sa[1])
		out[i].PixelsPerDataUnit = px / extent
	}
	return out
}

// PixelLength solves for the model-space length along an axis that spans pixels on screen
// at center. Divide by the model scale of that axis to get data units.
//
// Parameters:
//   - params: camera matrices and viewport
//   - center: data-space anchor point
//   - axis: 0, 1 or 2
//   - pixels: desired on-screen length
//
// Returns:
//   - float64: length in model space, or 0 when the axis is seen end-on
func PixelLength(params drawable.CameraParams, center common.Vec3, axis int, pixels float64) float64 {
	var identity [16]float32
	common.Identity(identity[:])

	world := common.Transform4(params.Model[:], [4]float32{float32(center[0]), float32(center[1]), float32(center[2]), 1})
	p0 := common.Vec3{float64(world[0]), float64(world[1]), float64(world[2])}
	p1 := p0
	p1[axis]++

	c0 := common.Project(identity[:], params.View[:], params.Projection[:], p0)
	c1 := common.Project(identity[:], params.View[:], params.Projection[:], p1)
	s0, ok0 := params.ToScreen(c0)
	s1, ok1 := params.ToScreen(c1)
	if !ok0 || !ok1 {
		return 0
	}
	perUnit := math.Hypot(s1[0]-s0[0], s1[1]-s0[1])
	if perUnit < 1e-9 {
		return 0
	}
	return pixels / perUnit
}

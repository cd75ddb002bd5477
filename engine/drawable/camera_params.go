package drawable

import "github.com/Carmen-Shannon/oxy-plot/common"

// CameraParams is the per-frame snapshot handed to every renderer.
type CameraParams struct {
	View       [16]float32
	Projection [16]float32
	Model      [16]float32
	Width      int
	Height     int
}

// Project maps a data-space point to clip coordinates through Model, View and Projection.
func (p *CameraParams) Project(point common.Vec3) [4]float32 {
	return common.Project(p.Model[:], p.View[:], p.Projection[:], point)
}

// ToScreen converts clip coordinates to pixels with the origin at the top-left.
//
// Parameters:
//   - clip: homogeneous clip coordinates from Project
//
// Returns:
//   - [2]float64: pixel position
//   - bool: false when the point is behind the eye
func (p *CameraParams) ToScreen(clip [4]float32) ([2]float64, bool) {
	if clip[3] <= 0 {
		return [2]float64{}, false
	}
	w := float64(clip[3])
	return [2]float64{
		0.5 * float64(p.Width) * (1 + float64(clip[0])/w),
		0.5 * float64(p.Height) * (1 - float64(clip[1])/w),
	}, true
}

// Depth returns the normalized device depth of clip coordinates.
func Depth(clip [4]float32) float64 {
	return float64(clip[2]) / float64(clip[3])
}

// Frustum returns the view volume in data space.
func (p *CameraParams) Frustum() common.Frustum {
	var vm, pvm [16]float32
	common.Mul4(vm[:], p.View[:], p.Model[:])
	common.Mul4(pvm[:], p.Projection[:], vm[:])
	return common.ExtractFrustumFromMatrix(pvm[:])
}

package scene

import (
	"math"

	"github.com/Carmen-Shannon/oxy-plot/common"
)

// setAxesRange folds the bounds of every queued drawable into the shared range box and
// clips every queued drawable to it. With an empty queue the previous range is kept.
func (s *scene) setAxesRange() {
	rng := s.rng
	if len(s.renderQueue) > 0 {
		rng = s.baseRange
	}

	for j := 0; j < 3; j++ {
		axis := s.sceneLayout.Axis(j)
		manual := !axis.IsAutoRange() && len(axis.Range) == 2
		for _, d := range s.renderQueue {
			bounds := d.Bounds()
			if manual {
				bounds[0][j], bounds[1][j] = axis.Range[0], axis.Range[1]
			}
			rng[0][j] = math.Min(rng[0][j], bounds[0][j])
			rng[1][j] = math.Max(rng[1][j], bounds[1][j])

			if axis.RangeMode == "tozero" {
				if rng[0][j] > 0 && rng[1][j] > 0 {
					rng[0][j] = 0
				}
				if rng[0][j] < 0 && rng[1][j] < 0 {
					rng[1][j] = 0
				}
			}
		}
	}

	for i := 0; i < 3; i++ {
		switch {
		case rng[0][i] == rng[1][i]:
			rng[0][i]--
			rng[1][i]++
		case !(rng[0][i] <= rng[1][i]):
			// inverted, or NaN from a bad manual range
			rng[0][i], rng[1][i] = -1, 1
		}
	}

	for _, d := range s.renderQueue {
		d.SetClipBounds(rng)
	}
	s.rng = rng
	s.logger.Debug("range recomputed", "min", rng[0], "max", rng[1])
}

// setModelScale maps the range box onto the unit cube centered at the origin.
func (s *scene) setModelScale() {
	lo, hi := s.rng[0], s.rng[1]
	var scale, offset [3]float32
	for i := 0; i < 3; i++ {
		r := hi[i] - lo[i]
		scale[i] = float32(1 / r)
		offset[i] = float32(-0.5 * (hi[i] + lo[i]) / r)
	}
	common.BuildModelMatrix(s.model[:],
		offset[0], offset[1], offset[2],
		0, 0, 0,
		scale[0], scale[1], scale[2],
	)
}

func (s *scene) Center() common.Vec3 {
	return s.rng.Center()
}

func (s *scene) DefaultPosition(mult float64) (eye, target common.Vec3) {
	if mult == 0 {
		mult = 1
	}
	target = s.Center()
	b := s.rng
	corner := common.Vec3{b[0][0], b[0][1], b[1][2]}
	if b[0][0] < 0 {
		corner[0] = b[1][0]
	}
	if b[0][1] < 0 {
		corner[1] = b[1][1]
	}
	for i := range eye {
		eye[i] = mult*(corner[i]-target[i]) + target[i]
	}
	return eye, target
}

package soft

import (
	"github.com/Carmen-Shannon/oxy-plot/engine/axes"
	"github.com/Carmen-Shannon/oxy-plot/engine/canvas"
	"github.com/Carmen-Shannon/oxy-plot/engine/drawable"
)

type spikes struct {
	canvas canvas.Canvas
	params axes.SpikeParams
	set    bool
}

var _ axes.Spikes = &spikes{}

func (s *spikes) Update(params axes.SpikeParams) {
	s.params = params
	s.set = true
}

// Draw runs a line from the position to the low face of each enabled axis, and on to the high face
// when that axis draws both sides.
func (s *spikes) Draw(params drawable.CameraParams) {
	if !s.set || !validPoint(s.params.Position) {
		return
	}
	p := s.params
	for i := 0; i < 3; i++ {
		if !p.Enabled[i] {
			continue
		}
		lo, hi := p.Position, p.Position
		lo[i], hi[i] = p.Bounds[0][i], p.Bounds[1][i]
		segment(s.canvas, &params, p.Position, lo, p.Colors[i], p.LineWidth[i])
		if p.DrawSides[i] {
			segment(s.canvas, &params, p.Position, hi, p.Colors[i], p.LineWidth[i])
		}
	}
}

func (s *spikes) Dispose() {
	s.set = false
	s.params = axes.SpikeParams{}
}

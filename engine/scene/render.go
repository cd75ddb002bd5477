package scene

import (
	"math"

	"github.com/Carmen-Shannon/oxy-plot/engine/axes"
	"github.com/Carmen-Shannon/oxy-plot/engine/drawable"
	"github.com/Carmen-Shannon/oxy-plot/engine/layout"
)

func (s *scene) Render() {
	if s.disposed {
		return
	}
	c := s.shell.Canvas()
	if c == nil {
		return
	}

	params := s.cameraParams()
	c.Clear(s.bgColor)

	s.selection = s.handlePick(params)

	if s.axis != nil {
		s.updateTicks(params)
		s.solvePixelLengths(params)
		s.axis.Draw(params)
	}

	for _, d := range s.renderQueue {
		d.Draw(params, false)
	}

	c.SetBlend(true)
	if sel := s.selection; sel != nil && s.spikes != nil && s.spikeEnable && s.axis != nil {
		p := s.spikeProperties
		s.spikes.Update(axes.SpikeParams{
			Position:  sel.DataCoordinate,
			Bounds:    s.axis.Bounds(),
			Colors:    p.Colors,
			DrawSides: p.Sides,
			Enabled:   p.Enable,
			LineWidth: p.Width,
		})
		s.spikes.Draw(params)
	}
	for _, d := range s.renderQueue {
		if d.SupportsTransparency() {
			d.Draw(params, true)
		}
	}
	c.SetBlend(false)
	s.dirty = false
}

// cameraParams snapshots the camera for this frame.
func (s *scene) cameraParams() drawable.CameraParams {
	w, h := s.shell.Width(), s.shell.Height()
	aspect := 1.0
	if w > 0 && h > 0 {
		aspect = float64(w) / float64(h)
	}
	s.cam.SetFov(float32(s.fov))
	s.cam.SetNear(float32(s.near))
	s.cam.SetFar(float32(s.far))
	s.cam.SetAspect(float32(aspect))
	s.cam.Update()

	return drawable.CameraParams{
		View:       s.cam.ViewMatrix(),
		Projection: s.cam.ProjectionMatrix(),
		Model:      s.model,
		Width:      w,
		Height:     h,
	}
}

// updateTicks recomputes every axis's ticks for the current pixel scale and pushes them to
// the axes renderer when any tick moved or changed label.
func (s *scene) updateTicks(params drawable.CameraParams) {
	ranges := axes.PixelRanges(s.axis.Bounds(), params)
	var ticks [3][]axes.Tick
	for i := 0; i < 3; i++ {
		r := ranges[i]
		length := (r.Hi - r.Lo) * r.PixelsPerDataUnit
		if math.IsInf(length, 0) || math.IsNaN(length) {
			continue
		}
		ticks[i] = s.ticks.CalcTicks(s.tickRequest(s.sceneLayout.Axis(i), r, length))
	}

	if axes.TicksChanged(s.axesOpts.Ticks, ticks) {
		s.axesOpts.Ticks = ticks
		s.axis.Update(s.axesOpts)
		s.logger.Debug("axes ticks updated", "x", len(ticks[0]), "y", len(ticks[1]), "z", len(ticks[2]))
	}
}

// tickRequest always asks for manual ticks. Auto-tick axes get their origin and spacing
// from AutoTicks first, targeting one tick per 40 pixels clamped to [4, 9] unless nticks is set.
func (s *scene) tickRequest(a *layout.Axis, r axes.PixelRange, length float64) axes.TickRequest {
	axisType := a.Type
	if axisType == "" {
		axisType = layout.AxisLinear
	}
	req := axes.TickRequest{
		Range:    [2]float64{r.Lo, r.Hi},
		AxisType: axisType,
		Mode:     axes.TickModeManual,
		NTicks:   a.NTicks,
	}
	if !a.IsAutoTick() && a.DTick != nil && *a.DTick > 0 {
		req.DTick = *a.DTick
		if a.Tick0 != nil {
			req.Tick0 = *a.Tick0
		}
		return req
	}
	nticks := float64(a.NTicks)
	if nticks <= 0 {
		nticks = math.Max(4, math.Min(9, length/40))
	}
	req.Tick0, req.DTick = s.ticks.AutoTicks(axisType, math.Abs(r.Hi-r.Lo)/nticks)
	return req
}

// solvePixelLengths converts the pixel defaults for tick length and paddings into data
// units at the center of the axes box.
func (s *scene) solvePixelLengths(params drawable.CameraParams) {
	center := s.axis.Bounds().Center()
	solve := func(pixels [3]float64) [3]float64 {
		var out [3]float64
		for i := 0; i < 3; i++ {
			scale := float64(params.Model[5*i])
			if scale == 0 {
				continue
			}
			out[i] = axes.PixelLength(params, center, i, pixels[i]) / scale
		}
		return out
	}
	o := s.axesOpts
	s.axis.SetPixelLengths(
		solve(o.DefaultLineTickLength),
		solve(o.DefaultTickPad),
		solve(o.DefaultLabelPad),
	)
}

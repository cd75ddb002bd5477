package scene

import (
	"github.com/Carmen-Shannon/oxy-plot/common"
	"github.com/Carmen-Shannon/oxy-plot/engine/layout"
)

// configureAxes copies every property the layout sets into the axes options and spike
// properties. Properties the layout leaves unset keep their previous value.
func (s *scene) configureAxes() {
	opts := s.axesOpts
	spikes := &s.spikeProperties

	for i := 0; i < 3; i++ {
		a := s.sceneLayout.Axis(i)

		if a.Title != nil {
			opts.Labels[i] = *a.Title
		}
		setIf(&opts.LabelEnable[i], a.ShowAxesLabels)
		applyFont(a.TitleFont, &opts.LabelColor[i], &opts.LabelFont[i], &opts.LabelSize[i])

		setIf(&opts.LineEnable[i], a.ShowLine)
		setColorIf(&opts.LineColor[i], a.LineColor)
		setIf(&opts.LineWidth[i], a.LineWidth)

		setIf(&opts.GridEnable[i], a.ShowGrid)
		setColorIf(&opts.GridColor[i], a.GridColor)
		setIf(&opts.GridWidth[i], a.GridWidth)

		setIf(&opts.ZeroEnable[i], a.ZeroLine)
		setColorIf(&opts.ZeroLineColor[i], a.ZeroLineColor)
		setIf(&opts.ZeroLineWidth[i], a.ZeroLineWidth)

		if a.Ticks != nil {
			opts.LineTickEnable[i] = *a.Ticks != ""
		}
		if a.TickLen != nil {
			opts.LineTickLength[i] = *a.TickLen
			opts.DefaultLineTickLength[i] = *a.TickLen
		}
		setColorIf(&opts.LineTickColor[i], a.TickColor)
		setIf(&opts.LineTickWidth[i], a.TickWidth)
		if a.TickAngle != nil {
			opts.TickAngle[i] = a.TickAngle.Value()
		}
		setIf(&opts.TickEnable[i], a.ShowTickLabels)
		applyFont(a.TickFont, &opts.TickColor[i], &opts.TickFont[i], &opts.TickSize[i])

		if a.Mirror != nil {
			opts.LineTickMirror[i] = a.Mirror.Ticks()
			opts.LineMirror[i] = a.Mirror.Lines()
		}

		setIf(&opts.BackgroundEnable[i], a.ShowBackground)
		setColorIf(&opts.BackgroundColor[i], a.BackgroundColor)

		setIf(&spikes.Enable[i], a.ShowSpikes)
		setIf(&spikes.Sides[i], a.SpikeSides)
		setIf(&spikes.Width[i], a.SpikeThickness)
		setColorIf(&spikes.Colors[i], a.SpikeColor)
	}

	opts.Bounds = s.rng

	if s.axis != nil {
		s.axis.Update(opts)
		return
	}
	axis, err := s.backend.NewAxes(opts)
	if err != nil {
		s.logger.Warn("failed to create axes", "err", err)
		return
	}
	s.axis = axis
	s.logger.Debug("axes created", "bounds", opts.Bounds)
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func setColorIf(dst *common.RGBA, v *string) {
	if v != nil {
		*dst = common.ColorOr(*v, *dst)
	}
}

func applyFont(f *layout.Font, color *common.RGBA, family *string, size *float64) {
	if f == nil {
		return
	}
	setColorIf(color, f.Color)
	if f.Family != nil && *f.Family != "" {
		*family = *f.Family
	}
	if f.Size != nil && *f.Size > 0 {
		*size = *f.Size
	}
}

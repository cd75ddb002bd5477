// Package axes holds the per-axis visual configuration a scene reconciles from its layout,
// the tick machinery, and the contracts for the external axes and spike renderers.
package axes

import "github.com/Carmen-Shannon/oxy-plot/common"

// Options is the flattened axes configuration. Every field is indexed by axis (x, y, z).
type Options struct {
	Bounds common.Box

	Ticks      [3][]Tick
	TickEnable [3]bool
	TickFont   [3]string
	TickSize   [3]float64
	// TickAngle and LabelAngle are in degrees.
	TickAngle [3]float64
	TickColor [3]common.RGBA
	TickPad   [3]float64

	Labels      [3]string
	LabelEnable [3]bool
	LabelFont   [3]string
	LabelSize   [3]float64
	LabelAngle  [3]float64
	LabelColor  [3]common.RGBA
	LabelPad    [3]float64

	LineEnable [3]bool
	LineMirror [3]bool
	LineWidth  [3]float64
	LineColor  [3]common.RGBA

	LineTickEnable [3]bool
	LineTickMirror [3]bool
	LineTickLength [3]float64
	LineTickWidth  [3]float64
	LineTickColor  [3]common.RGBA

	GridEnable [3]bool
	GridWidth  [3]float64
	GridColor  [3]common.RGBA

	ZeroEnable    [3]bool
	ZeroLineColor [3]common.RGBA
	ZeroLineWidth [3]float64

	BackgroundEnable [3]bool
	BackgroundColor  [3]common.RGBA

	// Pixel sizes the scene converts to data units every frame.
	DefaultTickPad        [3]float64
	DefaultLabelPad       [3]float64
	DefaultLineTickLength [3]float64
}

func fill3[T any](v T) [3]T { return [3]T{v, v, v} }

// DefaultOptions returns the configuration a scene starts from.
//
// Returns:
//   - *Options: defaults for all three axes
func DefaultOptions() *Options {
	black := common.Black
	o := &Options{
		Bounds: common.Box{{-10, -10, -10}, {10, 10, 10}},

		TickEnable: fill3(true),
		TickFont:   fill3("sans-serif"),
		TickSize:   fill3(12.0),
		TickAngle:  fill3(0.0),
		TickColor:  fill3(black),
		TickPad:    fill3(18.0),

		Labels:      [3]string{"x", "y", "z"},
		LabelEnable: fill3(true),
		LabelFont:   fill3("Open Sans"),
		LabelSize:   fill3(20.0),
		LabelAngle:  fill3(0.0),
		LabelColor:  fill3(black),
		LabelPad:    fill3(30.0),

		LineEnable: fill3(true),
		LineMirror: fill3(false),
		LineWidth:  fill3(1.0),
		LineColor:  fill3(black),

		LineTickEnable: fill3(true),
		LineTickMirror: fill3(false),
		LineTickLength: fill3(10.0),
		LineTickWidth:  fill3(1.0),
		LineTickColor:  fill3(black),

		GridEnable: fill3(true),
		GridWidth:  fill3(1.0),
		GridColor:  fill3(black),

		ZeroEnable:    fill3(true),
		ZeroLineColor: fill3(black),
		ZeroLineWidth: fill3(2.0),

		BackgroundEnable: fill3(false),
		BackgroundColor:  fill3(common.RGBA{0.8, 0.8, 0.8, 0.5}),
	}
	o.DefaultTickPad = o.TickPad
	o.DefaultLabelPad = o.LabelPad
	o.DefaultLineTickLength = o.LineTickLength
	return o
}

// Clone returns a deep copy of o.
func (o *Options) Clone() *Options {
	c := *o
	for i := range o.Ticks {
		if o.Ticks[i] != nil {
			c.Ticks[i] = append([]Tick(nil), o.Ticks[i]...)
		}
	}
	return &c
}

package soft

import (
	"math"

	"github.com/Carmen-Shannon/oxy-plot/common"
	"github.com/Carmen-Shannon/oxy-plot/engine/axes"
	"github.com/Carmen-Shannon/oxy-plot/engine/canvas"
	"github.com/Carmen-Shannon/oxy-plot/engine/drawable"
)

type axesRenderer struct {
	canvas canvas.Canvas
	opts   *axes.Options

	lineTick [3]float64
	tickPad  [3]float64
	labelPad [3]float64
	disposed bool
}

var _ axes.Renderer = &axesRenderer{}

func (a *axesRenderer) Update(opts *axes.Options) {
	if opts == nil {
		return
	}
	a.opts = opts.Clone()
}

func (a *axesRenderer) Bounds() common.Box {
	if a.opts == nil {
		return common.EmptyBox()
	}
	return a.opts.Bounds
}

func (a *axesRenderer) SetPixelLengths(lineTick, tickPad, labelPad [3]float64) {
	a.lineTick, a.tickPad, a.labelPad = lineTick, tickPad, labelPad
}

func (a *axesRenderer) Dispose() {
	a.disposed = true
	a.opts = nil
}

// edge is an axis-parallel box edge: the axis it runs along and the side (0 lo, 1 hi) of the other two.
type edge struct {
	axis  int
	sides [3]int
}

func (e edge) point(b common.Box, t float64) common.Vec3 {
	var p common.Vec3
	for k := 0; k < 3; k++ {
		p[k] = b[e.sides[k]][k]
	}
	p[e.axis] = t
	return p
}

func (a *axesRenderer) Draw(params drawable.CameraParams) {
	if a.disposed || a.opts == nil || !a.opts.Bounds.IsFinite() {
		return
	}
	o := a.opts
	b := o.Bounds
	back := a.backSides(&params, b)

	for i := 0; i < 3; i++ {
		if o.BackgroundEnable[i] {
			a.drawPane(&params, b, i, back[i], o.BackgroundColor[i])
		}
	}
	for i := 0; i < 3; i++ {
		if o.GridEnable[i] {
			for _, t := range o.Ticks[i] {
				a.drawGridLines(&params, b, back, i, t.X, o.GridColor[i], o.GridWidth[i])
			}
		}
		if o.ZeroEnable[i] && b[0][i] < 0 && b[1][i] > 0 {
			a.drawGridLines(&params, b, back, i, 0, o.ZeroLineColor[i], o.ZeroLineWidth[i])
		}
	}
	for i := 0; i < 3; i++ {
		primary := a.primaryEdge(&params, b, back, i)
		mirror := primary
		for k := 0; k < 3; k++ {
			if k != i {
				mirror.sides[k] = 1 - primary.sides[k]
			}
		}

		if o.LineEnable[i] {
			segment(a.canvas, &params, primary.point(b, b[0][i]), primary.point(b, b[1][i]), o.LineColor[i], o.LineWidth[i])
			if o.LineMirror[i] {
				segment(a.canvas, &params, mirror.point(b, b[0][i]), mirror.point(b, b[1][i]), o.LineColor[i], o.LineWidth[i])
			}
		}
		if o.LineTickEnable[i] {
			a.drawTickMarks(&params, b, primary, o)
			if o.LineTickMirror[i] {
				a.drawTickMarks(&params, b, mirror, o)
			}
		}
		a.drawLabels(&params, b, primary, o)
	}
}

// backSides picks, per axis, the box face farther from the eye.
func (a *axesRenderer) backSides(params *drawable.CameraParams, b common.Box) [3]int {
	var back [3]int
	center := b.Center()
	for i := 0; i < 3; i++ {
		lo, hi := center, center
		lo[i], hi[i] = b[0][i], b[1][i]
		if project(params, hi).Depth > project(params, lo).Depth {
			back[i] = 1
		}
	}
	return back
}

func (a *axesRenderer) drawPane(params *drawable.CameraParams, b common.Box, axis, side int, col common.RGBA) {
	j, k := (axis+1)%3, (axis+2)%3
	var corners [4]common.Vec3
	for n, s := range [4][2]int{{0, 0}, {1, 0}, {1, 1}, {0, 1}} {
		corners[n][axis] = b[side][axis]
		corners[n][j] = b[s[0]][j]
		corners[n][k] = b[s[1]][k]
	}
	ctx := a.canvas.Context()
	for n, c := range corners {
		sp := project(params, c)
		if !sp.OK {
			ctx.ClearPath()
			return
		}
		if n == 0 {
			ctx.MoveTo(sp.X, sp.Y)
		} else {
			ctx.LineTo(sp.X, sp.Y)
		}
	}
	ctx.ClosePath()
	a.canvas.SetColor(col)
	_ = ctx.Fill()
}

// drawGridLines draws the lines where coordinate axis equals t across the two back panes that contain that axis.
func (a *axesRenderer) drawGridLines(params *drawable.CameraParams, b common.Box, back [3]int, axis int, t float64, col common.RGBA, width float64) {
	if t < b[0][axis] || t > b[1][axis] {
		return
	}
	for _, pane := range [2]int{(axis + 1) % 3, (axis + 2) % 3} {
		run := 3 - axis - pane
		var p, q common.Vec3
		p[axis], q[axis] = t, t
		p[pane], q[pane] = b[back[pane]][pane], b[back[pane]][pane]
		p[run], q[run] = b[0][run], b[1][run]
		segment(a.canvas, params, p, q, col, width)
	}
}

// primaryEdge picks the edge an axis line, its ticks and labels sit on: one of the three edges
// not hidden behind both back panes, lowest on screen for x and y, leftmost for z.
func (a *axesRenderer) primaryEdge(params *drawable.CameraParams, b common.Box, back [3]int, axis int) edge {
	j, k := (axis+1)%3, (axis+2)%3
	best := edge{axis: axis}
	bestScore := math.Inf(-1)
	for _, s := range [4][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		if s[0] == back[j] && s[1] == back[k] {
			continue
		}
		e := edge{axis: axis}
		e.sides[j], e.sides[k] = s[0], s[1]
		mid := project(params, e.point(b, 0.5*(b[0][axis]+b[1][axis])))
		if !mid.OK {
			continue
		}
		score := mid.Y
		if axis == 2 {
			score = -mid.X
		}
		if score > bestScore {
			best, bestScore = e, score
		}
	}
	return best
}

// outward returns the unit data direction pointing away from the box along the edge's first other axis,
// and that axis.
func outward(b common.Box, e edge) (common.Vec3, int) {
	j := (e.axis + 1) % 3
	var d common.Vec3
	if e.sides[j] == 1 {
		d[j] = 1
	} else {
		d[j] = -1
	}
	return d, j
}

// along converts a data length measured on axis from into the same screen length on axis to.
func along(params *drawable.CameraParams, length float64, from, to int) float64 {
	sf, st := float64(params.Model[5*from]), float64(params.Model[5*to])
	if st == 0 {
		return 0
	}
	return length * sf / st
}

func (a *axesRenderer) drawTickMarks(params *drawable.CameraParams, b common.Box, e edge, o *axes.Options) {
	i := e.axis
	dir, j := outward(b, e)
	length := along(params, a.lineTick[i], i, j)
	if length <= 0 {
		return
	}
	for _, t := range o.Ticks[i] {
		if t.X < b[0][i] || t.X > b[1][i] {
			continue
		}
		p := e.point(b, t.X)
		q := p
		q[j] += dir[j] * length
		segment(a.canvas, params, p, q, o.LineTickColor[i], o.LineTickWidth[i])
	}
}

func (a *axesRenderer) drawLabels(params *drawable.CameraParams, b common.Box, e edge, o *axes.Options) {
	i := e.axis
	dir, j := outward(b, e)
	ctx := a.canvas.Context()

	if o.TickEnable[i] {
		if face := a.canvas.Face(o.TickSize[i]); face != nil {
			ctx.SetFont(face)
			a.canvas.SetColor(o.TickColor[i])
			pad := along(params, a.tickPad[i], i, j)
			for _, t := range o.Ticks[i] {
				if t.X < b[0][i] || t.X > b[1][i] || t.Text == "" {
					continue
				}
				p := e.point(b, t.X)
				p[j] += dir[j] * pad
				if sp := project(params, p); sp.OK {
					drawRotated(a.canvas, t.Text, sp.X, sp.Y, o.TickAngle[i]*math.Pi/180)
				}
			}
		}
	}
	if o.LabelEnable[i] && o.Labels[i] != "" {
		if face := a.canvas.Face(o.LabelSize[i]); face != nil {
			ctx.SetFont(face)
			a.canvas.SetColor(o.LabelColor[i])
			p := e.point(b, 0.5*(b[0][i]+b[1][i]))
			p[j] += dir[j] * along(params, a.labelPad[i], i, j)
			if sp := project(params, p); sp.OK {
				drawRotated(a.canvas, o.Labels[i], sp.X, sp.Y, o.LabelAngle[i]*math.Pi/180)
			}
		}
	}
}

// drawRotated draws centered text rotated by angle radians about its anchor.
func drawRotated(c canvas.Canvas, s string, x, y, angle float64) {
	ctx := c.Context()
	if angle == 0 {
		ctx.DrawStringAnchored(s, x, y, 0.5, 0.5)
		return
	}
	ctx.Push()
	ctx.RotateAbout(angle, x, y)
	ctx.DrawStringAnchored(s, x, y, 0.5, 0.5)
	ctx.Pop()
}

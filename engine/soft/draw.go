package soft

import (
	"math"

	"github.com/Carmen-Shannon/oxy-plot/common"
	"github.com/Carmen-Shannon/oxy-plot/engine/canvas"
	"github.com/Carmen-Shannon/oxy-plot/engine/drawable"
	"github.com/Carmen-Shannon/oxy-plot/engine/pick"
)

type screenPoint struct {
	X, Y  float64
	Depth float64
	OK    bool
}

func project(params *drawable.CameraParams, p common.Vec3) screenPoint {
	clip := params.Project(p)
	s, ok := params.ToScreen(clip)
	if !ok {
		return screenPoint{}
	}
	return screenPoint{X: s[0], Y: s[1], Depth: drawable.Depth(clip), OK: true}
}

// unbounded is the clip box drawables start with, until a scene sets its own.
func unbounded() common.Box {
	b := common.EmptyBox()
	b[0], b[1] = b[1], b[0]
	return b
}

func validPoint(p common.Vec3) bool {
	for _, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// segment strokes a data-space line.
func segment(c canvas.Canvas, params *drawable.CameraParams, a, b common.Vec3, col common.RGBA, width float64) {
	sa, sb := project(params, a), project(params, b)
	if !sa.OK || !sb.OK || width <= 0 {
		return
	}
	ctx := c.Context()
	c.SetColor(col)
	ctx.SetLineWidth(width)
	ctx.MoveTo(sa.X, sa.Y)
	ctx.LineTo(sb.X, sb.Y)
	_ = ctx.Stroke()
}

// splatDisk writes a filled disk of pick samples.
func splatDisk(target pick.Target, x, y float64, radius int, depth float64, id uint8, value [3]uint8) {
	cx, cy := int(math.Round(x)), int(math.Round(y))
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= r2 {
				target.Write(cx+dx, cy+dy, depth, id, value)
			}
		}
	}
}

// splatLine writes pick samples along a screen segment, one per pixel step.
// value returns the payload for a parameter t in [0, 1] along the segment.
func splatLine(target pick.Target, a, b screenPoint, id uint8, value func(t float64) [3]uint8) {
	steps := int(math.Ceil(math.Max(math.Abs(b.X-a.X), math.Abs(b.Y-a.Y))))
	if steps < 1 {
		steps = 1
	}
	for k := 0; k <= steps; k++ {
		t := float64(k) / float64(steps)
		x := a.X + (b.X-a.X)*t
		y := a.Y + (b.Y-a.Y)*t
		d := a.Depth + (b.Depth-a.Depth)*t
		target.Write(int(math.Round(x)), int(math.Round(y)), d, id, value(t))
	}
}

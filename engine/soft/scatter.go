package soft

import (
	"fmt"
	"math"
	"strings"

	"github.com/Carmen-Shannon/oxy-plot/common"
	"github.com/Carmen-Shannon/oxy-plot/engine/canvas"
	"github.com/Carmen-Shannon/oxy-plot/engine/drawable"
	"github.com/Carmen-Shannon/oxy-plot/engine/pick"
)

// Pick id slots of a scatter trace.
const (
	slotMarkers = iota
	slotLines
	slotErrors
	slotText
)

type scatter struct {
	drawable.Base
	canvas canvas.Canvas

	params   drawable.ScatterParams
	bounds   common.Box
	disposed bool
}

var _ drawable.Drawable = &scatter{}

func (s *scatter) Kind() drawable.Kind { return drawable.KindScatter3D }

func (s *scatter) Update(params drawable.Params) error {
	p, ok := params.(*drawable.ScatterParams)
	if !ok || p == nil {
		return fmt.Errorf("%w: want scatter3d, got %T", ErrParamsKind, params)
	}
	s.params = *p
	s.bounds = common.EmptyBox()
	for i, pt := range p.Position {
		if !validPoint(pt) {
			continue
		}
		lo, hi := pt, pt
		if i < len(p.ErrorBounds) {
			for k := 0; k < 3; k++ {
				lo[k] += p.ErrorBounds[i][0][k]
				hi[k] += p.ErrorBounds[i][1][k]
			}
		}
		for k := 0; k < 3; k++ {
			s.bounds[0][k] = math.Min(s.bounds[0][k], lo[k])
			s.bounds[1][k] = math.Max(s.bounds[1][k], hi[k])
		}
	}
	return nil
}

func (s *scatter) Bounds() common.Box { return s.bounds }

func (s *scatter) SupportsTransparency() bool {
	p := &s.params
	if p.Opacity > 0 && p.Opacity < 1 {
		return true
	}
	if p.ScatterColor[3] < 1 || (p.HasLines() && p.LineColor[3] < 1) {
		return true
	}
	for _, c := range p.ScatterColors {
		if c[3] < 1 {
			return true
		}
	}
	return false
}

func (s *scatter) Dispose() {
	s.disposed = true
	s.params = drawable.ScatterParams{}
}

func (s *scatter) DataCoordinate(index []int) (common.Vec3, bool) {
	if len(index) == 0 || index[0] < 0 || index[0] >= len(s.params.Position) {
		return common.Vec3{}, false
	}
	return s.params.Position[index[0]], true
}

func (s *scatter) Pick(hit *pick.Result) *drawable.PointData {
	if hit == nil || !s.ownsID(hit.ID) {
		return nil
	}
	idx := pick.DecodeIndex(hit.Value)
	pos, ok := s.DataCoordinate([]int{idx})
	if !ok {
		return nil
	}
	return &drawable.PointData{Index: []int{idx}, Position: pos}
}

func (s *scatter) ownsID(id uint8) bool {
	p := &s.params
	return (p.HasMarkers() && id == p.PickIDs[slotMarkers]) ||
		(p.HasLines() && id == p.PickIDs[slotLines]) ||
		(len(p.ErrorBounds) > 0 && id == p.PickIDs[slotErrors]) ||
		(p.HasText() && id == p.PickIDs[slotText])
}

// visible projects every point that lies inside the clip box and the view volume.
func (s *scatter) visible(params *drawable.CameraParams) []screenPoint {
	frustum := params.Frustum()
	clip := s.ClipBounds()
	out := make([]screenPoint, len(s.params.Position))
	for i, pt := range s.params.Position {
		if !validPoint(pt) || !clip.Contains(pt) || !frustum.ContainsPoint(pt) {
			continue
		}
		out[i] = project(params, pt)
	}
	return out
}

func (s *scatter) markerRadius() float64 {
	return math.Max(1, s.params.ScatterSize/4)
}

func (s *scatter) Draw(params drawable.CameraParams, transparent bool) {
	if s.disposed || s.params.Opacity <= 0 || transparent != s.SupportsTransparency() {
		return
	}
	pts := s.visible(&params)
	p := &s.params

	if p.DelaunayAxis >= 0 {
		s.drawSurfaceFill(pts)
	}
	if p.HasLines() {
		s.drawLines(pts)
	}
	if len(p.ErrorBounds) > 0 {
		s.drawErrors(&params)
	}
	if p.HasMarkers() {
		s.drawMarkers(pts)
	}
	if p.HasText() {
		s.drawText(pts)
	}
}

func (s *scatter) withOpacity(c common.RGBA) common.RGBA {
	if s.params.Opacity < 1 {
		c[3] *= float32(s.params.Opacity)
	}
	return c
}

func (s *scatter) drawSurfaceFill(pts []screenPoint) {
	ctx := s.canvas.Context()
	started := false
	for _, sp := range pts {
		if !sp.OK {
			continue
		}
		if !started {
			ctx.MoveTo(sp.X, sp.Y)
			started = true
			continue
		}
		ctx.LineTo(sp.X, sp.Y)
	}
	if !started {
		return
	}
	ctx.ClosePath()
	s.canvas.SetColor(s.withOpacity(s.params.DelaunayColor))
	_ = ctx.Fill()
}

func (s *scatter) drawLines(pts []screenPoint) {
	p := &s.params
	ctx := s.canvas.Context()
	s.canvas.SetColor(s.withOpacity(p.LineColor))
	ctx.SetLineWidth(math.Max(p.LineWidth, 1))
	if len(p.LineDashes) > 0 {
		ctx.SetDash(p.LineDashes...)
	}
	pen := false
	for _, sp := range pts {
		if !sp.OK {
			pen = false
			continue
		}
		if pen {
			ctx.LineTo(sp.X, sp.Y)
		} else {
			ctx.MoveTo(sp.X, sp.Y)
			pen = true
		}
	}
	_ = ctx.Stroke()
	ctx.ClearDash()
}

func (s *scatter) drawErrors(params *drawable.CameraParams) {
	p := &s.params
	clip := s.ClipBounds()
	for i, pt := range p.Position {
		if i >= len(p.ErrorBounds) || !validPoint(pt) || !clip.Contains(pt) {
			continue
		}
		for axis := 0; axis < 3; axis++ {
			lo, hi := pt, pt
			lo[axis] += p.ErrorBounds[i][0][axis]
			hi[axis] += p.ErrorBounds[i][1][axis]
			if lo == hi {
				continue
			}
			col := s.withOpacity(p.ErrorColor[axis])
			width := math.Max(p.ErrorLineWidth[axis], 1)
			segment(s.canvas, params, lo, hi, col, width)
			s.drawCap(params, lo, col, width, p.ErrorCapSize[axis])
			s.drawCap(params, hi, col, width, p.ErrorCapSize[axis])
		}
	}
}

// drawCap draws a horizontal screen-space cap; capSize is a fraction of 100 pixels.
func (s *scatter) drawCap(params *drawable.CameraParams, at common.Vec3, col common.RGBA, width, capSize float64) {
	half := capSize * 50
	sp := project(params, at)
	if !sp.OK || half <= 0 {
		return
	}
	ctx := s.canvas.Context()
	s.canvas.SetColor(col)
	ctx.SetLineWidth(width)
	ctx.DrawLine(sp.X-half, sp.Y, sp.X+half, sp.Y)
	_ = ctx.Stroke()
}

func (s *scatter) drawMarkers(pts []screenPoint) {
	p := &s.params
	ctx := s.canvas.Context()
	r := s.markerRadius()
	rot := p.ScatterAngle * math.Pi / 180
	for i, sp := range pts {
		if !sp.OK {
			continue
		}
		col := p.ScatterColor
		if i < len(p.ScatterColors) {
			col = p.ScatterColors[i]
		}
		s.markerPath(sp, r, rot)
		s.canvas.SetColor(s.withOpacity(col))
		if strokedMarker(p.ScatterMarker) {
			ctx.SetLineWidth(math.Max(1, p.ScatterLineWidth))
			_ = ctx.Stroke()
			continue
		}
		if p.ScatterLineWidth > 0 {
			_ = ctx.FillPreserve()
			s.canvas.SetColor(s.withOpacity(p.ScatterLineColor))
			ctx.SetLineWidth(p.ScatterLineWidth)
			_ = ctx.Stroke()
			continue
		}
		_ = ctx.Fill()
	}
}

// strokedMarker reports whether a symbol is drawn as an outline rather than filled.
func strokedMarker(symbol string) bool {
	glyph := drawable.MarkerSymbols[symbol]
	return strings.HasSuffix(symbol, "-open") || glyph == "+" || glyph == "✕"
}

// markerPath adds the outline of the marker glyph to the current path.
func (s *scatter) markerPath(sp screenPoint, r, rot float64) {
	ctx := s.canvas.Context()
	switch glyph := drawable.MarkerSymbols[s.params.ScatterMarker]; glyph {
	case "■", "□":
		ctx.DrawRegularPolygon(4, sp.X, sp.Y, r*math.Sqrt2, rot+math.Pi/4)
	case "◆", "◇":
		ctx.DrawRegularPolygon(4, sp.X, sp.Y, r*1.3, rot)
	case "▲":
		ctx.DrawRegularPolygon(3, sp.X, sp.Y, r*1.3, rot-math.Pi/2)
	case "▼":
		ctx.DrawRegularPolygon(3, sp.X, sp.Y, r*1.3, rot+math.Pi/2)
	case "★":
		ctx.DrawRegularPolygon(5, sp.X, sp.Y, r*1.3, rot-math.Pi/2)
	case "+", "✕":
		a := rot
		if glyph == "✕" {
			a += math.Pi / 4
		}
		for k := 0; k < 2; k++ {
			dx, dy := r*math.Cos(a), r*math.Sin(a)
			ctx.MoveTo(sp.X-dx, sp.Y-dy)
			ctx.LineTo(sp.X+dx, sp.Y+dy)
			a += math.Pi / 2
		}
	default:
		ctx.DrawCircle(sp.X, sp.Y, r)
	}
}

func (s *scatter) drawText(pts []screenPoint) {
	p := &s.params
	face := s.canvas.Face(math.Max(p.TextSize, 1))
	if face == nil {
		return
	}
	ctx := s.canvas.Context()
	ctx.SetFont(face)
	s.canvas.SetColor(s.withOpacity(p.TextColor))
	for i, sp := range pts {
		if !sp.OK || i >= len(p.Text) || p.Text[i] == "" {
			continue
		}
		ox := p.TextOffset[0] * p.TextSize
		oy := p.TextOffset[1] * p.TextSize
		ctx.DrawStringAnchored(p.Text[i], sp.X+ox, sp.Y+oy, 0.5, 0.5)
	}
}

func (s *scatter) DrawPick(params drawable.CameraParams, target pick.Target) {
	if s.disposed || s.params.Opacity <= 0 {
		return
	}
	p := &s.params
	pts := s.visible(&params)

	if p.HasLines() {
		var prev screenPoint
		prevIdx := -1
		for i, sp := range pts {
			if !sp.OK {
				prevIdx = -1
				continue
			}
			if prevIdx >= 0 {
				a, b := prevIdx, i
				splatLine(target, prev, sp, p.PickIDs[slotLines], func(t float64) [3]uint8 {
					if t < 0.5 {
						return pick.EncodeIndex(a)
					}
					return pick.EncodeIndex(b)
				})
			}
			prev, prevIdx = sp, i
		}
	}

	r := int(math.Ceil(s.markerRadius()))
	for i, sp := range pts {
		if !sp.OK {
			continue
		}
		if p.HasMarkers() {
			splatDisk(target, sp.X, sp.Y, r, sp.Depth, p.PickIDs[slotMarkers], pick.EncodeIndex(i))
		}
		if p.HasText() && i < len(p.Text) {
			splatDisk(target, sp.X, sp.Y, 1, sp.Depth, p.PickIDs[slotText], pick.EncodeIndex(i))
		}
	}
}

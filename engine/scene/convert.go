package scene

import (
	"math"
	"strings"

	"github.com/Carmen-Shannon/oxy-plot/common"
	"github.com/Carmen-Shannon/oxy-plot/engine/drawable"
	"github.com/Carmen-Shannon/oxy-plot/engine/layout"
)

// Pick ids a scatter trace reserves: markers, lines, error bars and text.
const objectsPerScatter3D = 4

var defaultTraceColor = common.RGBA{0x1f / 255.0, 0x77 / 255.0, 0xb4 / 255.0, 1}

// lineDashes maps plotly dash names to on/off lengths in pixels.
var lineDashes = map[string][]float64{
	"dot":         {2, 3},
	"dash":        {6, 3},
	"longdash":    {10, 4},
	"dashdot":     {6, 3, 2, 3},
	"longdashdot": {10, 4, 2, 4},
}

func pickSlots(params drawable.Params) int {
	if params.Kind() == drawable.KindScatter3D {
		return objectsPerScatter3D
	}
	return 1
}

func assignPickIDs(params drawable.Params, ids []uint8) {
	switch p := params.(type) {
	case *drawable.SurfaceParams:
		p.PickID = ids[0]
	case *drawable.ScatterParams:
		copy(p.PickIDs[:], ids)
	}
}

// surfaceParams converts a surface trace. The z grid is row-major by y; the drawable wants
// field[i][j] with i along x, so the grid is transposed. Returns nil for an absent, empty
// or ragged grid.
func (s *scene) surfaceParams(trace *layout.Trace) *drawable.SurfaceParams {
	rows, ok := layout.Grid(trace.Z)
	if !ok || len(rows) == 0 || len(rows[0]) == 0 {
		return nil
	}
	nx, ny := len(rows[0]), len(rows)
	for _, row := range rows {
		if len(row) != nx {
			return nil
		}
	}

	xaxis, yaxis, zaxis := s.sceneLayout.Axis(0), s.sceneLayout.Axis(1), s.sceneLayout.Axis(2)
	field := make([][]float64, nx)
	for i := range field {
		field[i] = make([]float64, ny)
		for j := range field[i] {
			field[i][j] = zaxis.C2L(zaxis.D2C(rows[j][i]))
		}
	}

	return &drawable.SurfaceParams{
		Field:    field,
		Ticks:    [2][]float64{gridTicks(xaxis, trace.X, nx), gridTicks(yaxis, trace.Y, ny)},
		Colormap: common.Coalesce(trace.Colorscale, "jet"),
		Opacity:  opacity(trace),
	}
}

// gridTicks uses the trace coordinates when given, else the grid index.
func gridTicks(axis *layout.Axis, coords any, n int) []float64 {
	ticks := make([]float64, n)
	if vals, ok := layout.Values(coords); ok && len(vals) > 0 {
		for i := range ticks {
			if i < len(vals) {
				ticks[i] = axis.D2C(vals[i])
			} else {
				ticks[i] = math.NaN()
			}
		}
		return ticks
	}
	for i := range ticks {
		ticks[i] = axis.C2L(float64(i))
	}
	return ticks
}

func opacity(trace *layout.Trace) float64 {
	if trace.Opacity == nil {
		return 1
	}
	return math.Max(0, math.Min(1, *trace.Opacity))
}

// scatterParams converts a scatter3d trace. Returns nil when there are no points.
func (s *scene) scatterParams(trace *layout.Trace) *drawable.ScatterParams {
	xs, _ := layout.Values(trace.X)
	ys, _ := layout.Values(trace.Y)
	zs, _ := layout.Values(trace.Z)
	if len(xs) == 0 {
		return nil
	}

	var axis [3]*layout.Axis
	for k := range axis {
		axis[k] = s.sceneLayout.Axis(k)
	}
	points := make([][3]float64, len(xs))
	for i := range points {
		for k, vals := range [3][]any{xs, ys, zs} {
			var v any
			if i < len(vals) {
				v = vals[i]
			}
			points[i][k] = axis[k].C2L(axis[k].D2C(v))
		}
	}

	p := &drawable.ScatterParams{
		Position:      points,
		Mode:          common.Coalesce(trace.Mode, "lines+markers"),
		LineColor:     defaultTraceColor,
		LineWidth:     2,
		ScatterColor:  defaultTraceColor,
		ScatterSize:   16,
		ScatterMarker: drawable.MarkerSymbols["circle"],
		TextColor:     common.Black,
		TextSize:      12,
		TextFont:      "Open Sans",
		DelaunayAxis:  -1,
		Opacity:       opacity(trace),
	}

	if l := trace.Line; l != nil {
		p.LineColor = common.ColorOr(l.Color, p.LineColor)
		if l.Width > 0 {
			p.LineWidth = l.Width
		}
		p.LineDashes = lineDashes[l.Dash]
	}

	if m := trace.Marker; m != nil {
		applyMarker(p, m, len(points))
	}

	bars := [3]*layout.ErrorBar{trace.ErrorX, trace.ErrorY, trace.ErrorZ}
	if trace.ErrorZ != nil {
		p.ErrorBounds = layout.ErrorBounds(bars, points)
		for i := range bars {
			style := errorStyle(bars, i)
			if style == nil {
				continue
			}
			p.ErrorColor[i] = common.ColorOr(style.Color, common.Black)
			p.ErrorLineWidth[i] = 2
			if style.Thickness != nil {
				p.ErrorLineWidth[i] = *style.Thickness
			}
			if style.Width != nil {
				p.ErrorCapSize[i] = *style.Width / 100
			}
		}
	}

	if trace.TextPosition != "" || len(trace.Text) > 0 {
		p.Text = trace.Text
		p.TextOffset = textOffset(trace.TextPosition)
		if f := trace.TextFont; f != nil {
			if f.Color != nil {
				p.TextColor = common.ColorOr(*f.Color, p.TextColor)
			}
			if f.Size != nil {
				p.TextSize = *f.Size
			}
			if f.Family != nil {
				p.TextFont = *f.Family
			}
		}
	}

	if trace.SurfaceAxis != nil && *trace.SurfaceAxis >= 0 && *trace.SurfaceAxis < 3 {
		p.DelaunayAxis = *trace.SurfaceAxis
	}
	p.DelaunayColor = common.ColorOr(trace.SurfaceColor, common.Black)
	return p
}

func applyMarker(p *drawable.ScatterParams, m *layout.Marker, n int) {
	switch c := m.Color.(type) {
	case string:
		p.ScatterColor = common.ColorOr(c, p.ScatterColor)
	case nil:
	default:
		if vals, ok := layout.Values(c); ok {
			p.ScatterColors = make([]common.RGBA, n)
			for i := range p.ScatterColors {
				p.ScatterColors[i] = p.ScatterColor
				if i < len(vals) {
					if str, ok := vals[i].(string); ok {
						p.ScatterColors[i] = common.ColorOr(str, p.ScatterColor)
					}
				}
			}
		}
	}
	if m.Size > 0 {
		// rough parity with 2D marker sizes
		p.ScatterSize = 2 * m.Size
	}
	if glyph, ok := drawable.MarkerSymbols[m.Symbol]; ok {
		p.ScatterMarker = glyph
	}
	if ml := m.Line; ml != nil {
		p.ScatterLineWidth = ml.Width
		p.ScatterLineColor = common.ColorOr(ml.Color, common.Black)
	}
}

// errorStyle returns the bar whose color, thickness and width axis i uses: error_z unless
// the axis opts out with copy_zstyle false. A missing bar has no style.
func errorStyle(bars [3]*layout.ErrorBar, i int) *layout.ErrorBar {
	e := bars[i]
	if e == nil {
		return nil
	}
	if e.CopyZStyle == nil || *e.CopyZStyle {
		return bars[2]
	}
	return e
}

// textOffset turns a textposition such as "top left" into a unit label offset.
func textOffset(position string) [2]float64 {
	var off [2]float64
	if strings.Contains(position, "bottom") {
		off[1]++
	}
	if strings.Contains(position, "top") {
		off[1]--
	}
	if strings.Contains(position, "left") {
		off[0]--
	}
	if strings.Contains(position, "right") {
		off[0]++
	}
	return off
}

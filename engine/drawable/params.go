package drawable

import (
	"strings"

	"github.com/Carmen-Shannon/oxy-plot/common"
)

// Params is implemented by the parameter sets a drawable can be built or updated from.
type Params interface {
	Kind() Kind
}

// SurfaceParams describes a surface over a rectilinear grid.
type SurfaceParams struct {
	// Field holds the heights indexed [i][j] where i runs along x and j along y.
	Field [][]float64
	// Ticks are the x and y grid coordinates: len(Ticks[0]) == len(Field), len(Ticks[1]) == len(Field[i]).
	Ticks [2][]float64
	// Colormap names the color scale, "jet" when unset.
	Colormap string
	// Opacity in [0, 1]; below 1 the surface draws in the blended pass, at 0 it is neither
	// drawn nor pickable.
	Opacity float64
	// PickID is the local pick id.
	PickID uint8
}

func (*SurfaceParams) Kind() Kind { return KindSurface }

// ScatterParams describes markers, lines, error bars and labels over a point list.
type ScatterParams struct {
	Position [][3]float64
	// Mode is the plotly mode string, e.g. "markers", "lines+markers", "text".
	Mode string

	LineColor  common.RGBA
	LineWidth  float64
	LineDashes []float64

	ScatterColor     common.RGBA
	ScatterColors    []common.RGBA
	ScatterSize      float64
	ScatterMarker    string
	ScatterLineWidth float64
	ScatterLineColor common.RGBA
	ScatterAngle     float64

	// ErrorBounds holds per-point [negative, positive] offsets for each axis.
	ErrorBounds    [][2][3]float64
	ErrorColor     [3]common.RGBA
	ErrorLineWidth [3]float64
	ErrorCapSize   [3]float64

	Text       []string
	TextOffset [2]float64
	TextColor  common.RGBA
	TextSize   float64
	TextFont   string
	TextAngle  float64

	// DelaunayAxis is the axis the point cloud is triangulated across, -1 when disabled.
	DelaunayAxis  int
	DelaunayColor common.RGBA

	// Opacity scales every color's alpha. At 0 the trace is neither drawn nor pickable.
	Opacity float64

	// PickIDs are the local ids for markers, lines, error bars and text, in that order.
	PickIDs [4]uint8
}

func (*ScatterParams) Kind() Kind { return KindScatter3D }

// HasLines reports whether the mode draws connecting lines.
func (p *ScatterParams) HasLines() bool { return hasMode(p.Mode, "lines") }

// HasMarkers reports whether the mode draws markers.
func (p *ScatterParams) HasMarkers() bool { return hasMode(p.Mode, "markers") }

// HasText reports whether the mode draws text labels.
func (p *ScatterParams) HasText() bool { return hasMode(p.Mode, "text") }

func hasMode(mode, part string) bool {
	for _, m := range strings.Split(mode, "+") {
		if m == part {
			return true
		}
	}
	return false
}

// MarkerSymbols maps plotly marker symbol names to the glyph drawn for them.
var MarkerSymbols = map[string]string{
	"circle":        "●",
	"circle-open":   "○",
	"square":        "■",
	"square-open":   "□",
	"diamond":       "◆",
	"diamond-open":  "◇",
	"cross":         "+",
	"x":             "✕",
	"triangle-up":   "▲",
	"triangle-down": "▼",
	"star":          "★",
}

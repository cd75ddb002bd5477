package soft

import (
	"math"
	"strings"

	"github.com/Carmen-Shannon/oxy-plot/common"
	"github.com/lucasb-eyer/go-colorful"
)

type colorStop struct {
	at  float64
	hex string
}

var colormaps = map[string][]colorStop{
	"jet": {
		{0, "#000083"}, {0.125, "#003caa"}, {0.375, "#05ffff"},
		{0.625, "#ffff00"}, {0.875, "#fa0000"}, {1, "#800000"},
	},
	"greys":   {{0, "#000000"}, {1, "#ffffff"}},
	"hot":     {{0, "#000000"}, {0.3, "#e60000"}, {0.6, "#ffd200"}, {1, "#ffffff"}},
	"bluered": {{0, "#0000ff"}, {1, "#ff0000"}},
	"viridis": {
		{0, "#440154"}, {0.13, "#482878"}, {0.25, "#3e4989"}, {0.38, "#31688e"},
		{0.5, "#26828e"}, {0.63, "#1f9e89"}, {0.75, "#35b779"}, {0.88, "#6ece58"}, {1, "#fde725"},
	},
}

// colormapStops resolves a colormap name, falling back to jet.
func colormapStops(name string) []colorStop {
	if stops, ok := colormaps[strings.ToLower(name)]; ok {
		return stops
	}
	return colormaps["jet"]
}

// sampleColormap returns the color at t in [0, 1], blending stops in CIE L*a*b*.
func sampleColormap(stops []colorStop, t float64, alpha float32) common.RGBA {
	if math.IsNaN(t) {
		t = 0
	}
	t = math.Max(0, math.Min(1, t))
	for k := 1; k < len(stops); k++ {
		if t > stops[k].at {
			continue
		}
		a, _ := colorful.Hex(stops[k-1].hex)
		b, _ := colorful.Hex(stops[k].hex)
		span := stops[k].at - stops[k-1].at
		f := 0.0
		if span > 0 {
			f = (t - stops[k-1].at) / span
		}
		c := a.BlendLab(b, f).Clamped()
		return common.RGBA{float32(c.R), float32(c.G), float32(c.B), alpha}
	}
	last, _ := colorful.Hex(stops[len(stops)-1].hex)
	return common.RGBA{float32(last.R), float32(last.G), float32(last.B), alpha}
}

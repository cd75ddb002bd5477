// Package selection reconciles a screen-space polygon against the cached points of a 2D
// trace: every point is tagged selected or dimmed, the selection is stored on the trace and
// the owning scene is asked to redraw.
package selection

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-plot/engine/layout"
)

// Dim flags carried by every cached point.
const (
	Normal = 0
	Dimmed = 1
)

// Point is one cached point of a trace.
type Point struct {
	X, Y float64
	Dim  int
}

// Axis maps canonical values to pixels.
type Axis interface {
	C2P(v float64) float64
}

// Updater pushes a trace and its re-tagged points back to the renderer drawing them.
type Updater interface {
	Update(trace *layout.Trace, points []Point) error
}

// Dirtier is signalled when the selection changes what is drawn. Scenes implement it.
type Dirtier interface {
	SetDirty()
}

// SearchInfo is what SelectPoints needs about a trace.
type SearchInfo struct {
	Trace   *layout.Trace
	Points  []Point
	XAxis   Axis
	YAxis   Axis
	Updater Updater
	Scene   Dirtier
}

// SelectPoints tags every point of info inside polygon as Normal and the rest as Dimmed.
// A nil polygon clears the selection and un-dims every point.
//
// Parameters:
//   - info: the trace, its cached points and its axes
//   - polygon: screen-space region, or nil to clear
//
// Returns:
//   - []layout.SelectedPoint: the selected points, nil for hidden or lines-only traces
//   - error: if the updater fails
func SelectPoints(info *SearchInfo, polygon Polygon) ([]layout.SelectedPoint, error) {
	trace := info.Trace
	if trace == nil || !trace.IsVisible() || (!trace.HasMarkers() && !trace.HasText()) {
		return nil, nil
	}

	selection := []layout.SelectedPoint{}
	for i := range info.Points {
		pt := &info.Points[i]
		if polygon == nil {
			pt.Dim = Normal
			continue
		}
		if polygon.Contains([2]float64{info.XAxis.C2P(pt.X), info.YAxis.C2P(pt.Y)}) {
			selection = append(selection, layout.SelectedPoint{X: pt.X, Y: pt.Y})
			pt.Dim = Normal
		} else {
			pt.Dim = Dimmed
		}
	}
	trace.Selection = selection

	if info.Updater != nil {
		if err := info.Updater.Update(trace, info.Points); err != nil {
			return selection, fmt.Errorf("failed to update trace %q after selection: %w", trace.UID, err)
		}
	}
	if info.Scene != nil {
		info.Scene.SetDirty()
	}
	return selection, nil
}

// LinearAxis maps the value range [Lo, Hi] onto Length pixels starting at Offset.
type LinearAxis struct {
	Lo, Hi float64
	Length float64
	Offset float64
	// Reversed puts Lo at the far end, as screen y axes do.
	Reversed bool
}

func (a LinearAxis) C2P(v float64) float64 {
	if a.Hi == a.Lo {
		return a.Offset
	}
	t := (v - a.Lo) / (a.Hi - a.Lo)
	if a.Reversed {
		t = 1 - t
	}
	return a.Offset + t*a.Length
}

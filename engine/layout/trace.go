package layout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Carmen-Shannon/oxy-plot/common"
)

// TraceType is the tag that selects how a trace is converted into a drawable.
type TraceType string

const (
	TraceSurface   TraceType = "surface"
	TraceScatter3D TraceType = "scatter3d"
)

// ErrUnknownTraceType is returned for traces whose type has no drawable.
var ErrUnknownTraceType = errors.New("unknown trace type")

// Validate returns ErrUnknownTraceType for tags other than surface and scatter3d.
func (t TraceType) Validate() error {
	switch t {
	case TraceSurface, TraceScatter3D:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownTraceType, string(t))
}

// Trace is one data object of a figure.
type Trace struct {
	Type    TraceType `json:"type" yaml:"type"`
	UID     string    `json:"uid" yaml:"uid"`
	Visible *bool     `json:"visible,omitempty" yaml:"visible,omitempty"`
	Opacity *float64  `json:"opacity,omitempty" yaml:"opacity,omitempty"`
	// Scene names the scene the trace belongs to, "scene" when empty.
	Scene string `json:"scene,omitempty" yaml:"scene,omitempty"`

	// X, Y are 1D value lists. Z is 1D for scatter3d and a row-major 2D grid for surface.
	X any `json:"x,omitempty" yaml:"x,omitempty"`
	Y any `json:"y,omitempty" yaml:"y,omitempty"`
	Z any `json:"z,omitempty" yaml:"z,omitempty"`

	Colorscale string `json:"colorscale,omitempty" yaml:"colorscale,omitempty"`

	Mode   string  `json:"mode,omitempty" yaml:"mode,omitempty"`
	Marker *Marker `json:"marker,omitempty" yaml:"marker,omitempty"`
	Line   *Line   `json:"line,omitempty" yaml:"line,omitempty"`

	ErrorX *ErrorBar `json:"error_x,omitempty" yaml:"error_x,omitempty"`
	ErrorY *ErrorBar `json:"error_y,omitempty" yaml:"error_y,omitempty"`
	ErrorZ *ErrorBar `json:"error_z,omitempty" yaml:"error_z,omitempty"`

	Text         []string `json:"text,omitempty" yaml:"text,omitempty"`
	TextPosition string   `json:"textposition,omitempty" yaml:"textposition,omitempty"`
	TextFont     *Font    `json:"textfont,omitempty" yaml:"textfont,omitempty"`

	// SurfaceAxis is the axis (0, 1, 2) a Delaunay surface is spanned across, -1 or unset for none.
	SurfaceAxis  *int   `json:"surfaceaxis,omitempty" yaml:"surfaceaxis,omitempty"`
	SurfaceColor string `json:"surfacecolor,omitempty" yaml:"surfacecolor,omitempty"`

	// Selection is the result of the last polygon selection. It is never serialized.
	Selection []SelectedPoint `json:"-" yaml:"-"`
}

// SelectedPoint is a point picked up by a polygon selection, in data coordinates.
type SelectedPoint struct {
	X, Y float64
}

// HasMarkers reports whether the mode draws markers. An empty mode means "lines+markers".
func (t *Trace) HasMarkers() bool { return t.hasMode("markers") }

// HasText reports whether the mode draws text labels.
func (t *Trace) HasText() bool { return t.hasMode("text") }

func (t *Trace) hasMode(part string) bool {
	for _, m := range strings.Split(common.Coalesce(t.Mode, "lines+markers"), "+") {
		if m == part {
			return true
		}
	}
	return false
}

// IsVisible reports the visible flag. Unset means visible.
func (t *Trace) IsVisible() bool {
	return t.Visible == nil || *t.Visible
}

// SceneID returns the scene the trace belongs to.
func (t *Trace) SceneID() string {
	if t.Scene == "" {
		return "scene"
	}
	return t.Scene
}

// Marker styles scatter markers.
type Marker struct {
	Size   float64     `json:"size,omitempty" yaml:"size,omitempty"`
	Color  any         `json:"color,omitempty" yaml:"color,omitempty"`
	Symbol string      `json:"symbol,omitempty" yaml:"symbol,omitempty"`
	Line   *MarkerLine `json:"line,omitempty" yaml:"line,omitempty"`
}

// MarkerLine styles marker outlines.
type MarkerLine struct {
	Width float64 `json:"width,omitempty" yaml:"width,omitempty"`
	Color string  `json:"color,omitempty" yaml:"color,omitempty"`
}

// Line styles the line connecting scatter points.
type Line struct {
	Color string  `json:"color,omitempty" yaml:"color,omitempty"`
	Width float64 `json:"width,omitempty" yaml:"width,omitempty"`
	// Dash is "solid", "dot", "dash", "longdash", "dashdot" or "longdashdot".
	Dash string `json:"dash,omitempty" yaml:"dash,omitempty"`
}

// Values flattens a 1D list decoded from JSON, YAML or built in Go.
//
// Parameters:
//   - v: []any, []float64, []int or []string
//
// Returns:
//   - []any: the elements
//   - bool: false if v is not a supported list
func Values(v any) ([]any, bool) {
	switch t := v.(type) {
	case []any:
		return t, true
	case []float64:
		return toAny(t), true
	case []int:
		return toAny(t), true
	case []string:
		return toAny(t), true
	}
	return nil, false
}

// Grid flattens a 2D list of rows.
//
// Parameters:
//   - v: [][]float64, [][]any or []any of lists
//
// Returns:
//   - [][]any: the rows
//   - bool: false if v or any row is not a supported list
func Grid(v any) ([][]any, bool) {
	switch t := v.(type) {
	case [][]any:
		return t, true
	case [][]float64:
		out := make([][]any, len(t))
		for i, row := range t {
			out[i] = toAny(row)
		}
		return out, true
	case []any:
		out := make([][]any, len(t))
		for i, row := range t {
			r, ok := Values(row)
			if !ok {
				return nil, false
			}
			out[i] = r
		}
		return out, true
	}
	return nil, false
}

func toAny[T any](in []T) []any {
	out := make([]any, len(in))
	for i, v := range in {
		out[i] = v
	}
	return out
}

package layout

import "math"

// Error bar types.
const (
	ErrorData     = "data"
	ErrorPercent  = "percent"
	ErrorConstant = "constant"
	ErrorSqrt     = "sqrt"
)

// ErrorBar describes the error_x, error_y or error_z bars of a trace.
type ErrorBar struct {
	Visible    *bool     `json:"visible,omitempty" yaml:"visible,omitempty"`
	Type       string    `json:"type,omitempty" yaml:"type,omitempty"`
	Symmetric  *bool     `json:"symmetric,omitempty" yaml:"symmetric,omitempty"`
	Array      []float64 `json:"array,omitempty" yaml:"array,omitempty"`
	ArrayMinus []float64 `json:"arrayminus,omitempty" yaml:"arrayminus,omitempty"`
	Value      float64   `json:"value,omitempty" yaml:"value,omitempty"`
	ValueMinus *float64  `json:"valueminus,omitempty" yaml:"valueminus,omitempty"`

	// CopyZStyle makes x and y bars take their style from error_z. Unset means true.
	CopyZStyle *bool    `json:"copy_zstyle,omitempty" yaml:"copy_zstyle,omitempty"`
	Color      string   `json:"color,omitempty" yaml:"color,omitempty"`
	Thickness  *float64 `json:"thickness,omitempty" yaml:"thickness,omitempty"`
	Width      *float64 `json:"width,omitempty" yaml:"width,omitempty"`
}

// IsVisible reports whether bars are drawn. A nil bar is invisible; unset Visible means true.
func (e *ErrorBar) IsVisible() bool {
	return e != nil && (e.Visible == nil || *e.Visible)
}

func (e *ErrorBar) symmetric() bool {
	if e.Symmetric != nil {
		return *e.Symmetric
	}
	return e.ArrayMinus == nil && e.ValueMinus == nil
}

// Extent returns the lower and upper error magnitudes of the point at index i with value v.
// Both results are non-negative; missing data yields 0.
func (e *ErrorBar) Extent(i int, v float64) (minus, plus float64) {
	if !e.IsVisible() {
		return 0, 0
	}
	valueMinus := e.Value
	if !e.symmetric() && e.ValueMinus != nil {
		valueMinus = *e.ValueMinus
	}
	switch e.Type {
	case ErrorData, "":
		plus = at(e.Array, i)
		minus = plus
		if !e.symmetric() {
			minus = at(e.ArrayMinus, i)
		}
	case ErrorPercent:
		plus = math.Abs(v) * e.Value / 100
		minus = math.Abs(v) * valueMinus / 100
	case ErrorConstant:
		plus, minus = e.Value, valueMinus
	case ErrorSqrt:
		plus = math.Sqrt(math.Abs(v))
		minus = plus
	}
	if math.IsNaN(plus) {
		plus = 0
	}
	if math.IsNaN(minus) {
		minus = 0
	}
	return minus, plus
}

func at(s []float64, i int) float64 {
	if i < 0 || i >= len(s) {
		return 0
	}
	return s[i]
}

// ErrorBounds computes per-point error offsets for a point list:
// [[-minus_x, -minus_y, -minus_z], [plus_x, plus_y, plus_z]].
//
// Parameters:
//   - bars: error_x, error_y, error_z; nil entries contribute nothing
//   - points: data-space positions
//
// Returns:
//   - [][2][3]float64: offsets per point, nil when no bar is visible
func ErrorBounds(bars [3]*ErrorBar, points [][3]float64) [][2][3]float64 {
	if !bars[0].IsVisible() && !bars[1].IsVisible() && !bars[2].IsVisible() {
		return nil
	}
	out := make([][2][3]float64, len(points))
	for i, p := range points {
		for axis, bar := range bars {
			minus, plus := bar.Extent(i, p[axis])
			out[i][0][axis] = -minus
			out[i][1][axis] = plus
		}
	}
	return out
}

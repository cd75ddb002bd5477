package layout

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Axis types.
const (
	AxisLinear = "linear"
	AxisLog    = "log"
	AxisDate   = "date"
)

// Font is a text style.
type Font struct {
	Color  *string  `json:"color,omitempty" yaml:"color,omitempty"`
	Family *string  `json:"family,omitempty" yaml:"family,omitempty"`
	Size   *float64 `json:"size,omitempty" yaml:"size,omitempty"`
}

// Axis is one scene axis. Nil pointers mean "not set in this layout".
type Axis struct {
	Type      string    `json:"type,omitempty" yaml:"type,omitempty"`
	Range     []float64 `json:"range,omitempty" yaml:"range,omitempty"`
	AutoRange *bool     `json:"autorange,omitempty" yaml:"autorange,omitempty"`
	// RangeMode is "normal" or "tozero".
	RangeMode string `json:"rangemode,omitempty" yaml:"rangemode,omitempty"`

	NTicks   int      `json:"nticks,omitempty" yaml:"nticks,omitempty"`
	AutoTick *bool    `json:"autotick,omitempty" yaml:"autotick,omitempty"`
	Tick0    *float64 `json:"tick0,omitempty" yaml:"tick0,omitempty"`
	DTick    *float64 `json:"dtick,omitempty" yaml:"dtick,omitempty"`

	Title          *string `json:"title,omitempty" yaml:"title,omitempty"`
	ShowAxesLabels *bool   `json:"showaxeslabels,omitempty" yaml:"showaxeslabels,omitempty"`
	TitleFont      *Font   `json:"titlefont,omitempty" yaml:"titlefont,omitempty"`

	ShowLine  *bool    `json:"showline,omitempty" yaml:"showline,omitempty"`
	LineColor *string  `json:"linecolor,omitempty" yaml:"linecolor,omitempty"`
	LineWidth *float64 `json:"linewidth,omitempty" yaml:"linewidth,omitempty"`

	ShowGrid  *bool    `json:"showgrid,omitempty" yaml:"showgrid,omitempty"`
	GridColor *string  `json:"gridcolor,omitempty" yaml:"gridcolor,omitempty"`
	GridWidth *float64 `json:"gridwidth,omitempty" yaml:"gridwidth,omitempty"`

	ZeroLine      *bool    `json:"zeroline,omitempty" yaml:"zeroline,omitempty"`
	ZeroLineColor *string  `json:"zerolinecolor,omitempty" yaml:"zerolinecolor,omitempty"`
	ZeroLineWidth *float64 `json:"zerolinewidth,omitempty" yaml:"zerolinewidth,omitempty"`

	// Ticks is "outside", "inside" or "" (no tick marks).
	Ticks          *string    `json:"ticks,omitempty" yaml:"ticks,omitempty"`
	TickLen        *float64   `json:"ticklen,omitempty" yaml:"ticklen,omitempty"`
	TickColor      *string    `json:"tickcolor,omitempty" yaml:"tickcolor,omitempty"`
	TickWidth      *float64   `json:"tickwidth,omitempty" yaml:"tickwidth,omitempty"`
	TickAngle      *TickAngle `json:"tickangle,omitempty" yaml:"tickangle,omitempty"`
	ShowTickLabels *bool      `json:"showticklabels,omitempty" yaml:"showticklabels,omitempty"`
	TickFont       *Font      `json:"tickfont,omitempty" yaml:"tickfont,omitempty"`

	Mirror *Mirror `json:"mirror,omitempty" yaml:"mirror,omitempty"`

	ShowBackground  *bool   `json:"showbackground,omitempty" yaml:"showbackground,omitempty"`
	BackgroundColor *string `json:"backgroundcolor,omitempty" yaml:"backgroundcolor,omitempty"`

	ShowSpikes     *bool    `json:"showspikes,omitempty" yaml:"showspikes,omitempty"`
	SpikeSides     *bool    `json:"spikesides,omitempty" yaml:"spikesides,omitempty"`
	SpikeThickness *float64 `json:"spikethickness,omitempty" yaml:"spikethickness,omitempty"`
	SpikeColor     *string  `json:"spikecolor,omitempty" yaml:"spikecolor,omitempty"`
}

// IsLog reports whether values on this axis are linearized with log10.
func (a *Axis) IsLog() bool {
	return a != nil && a.Type == AxisLog
}

// IsAutoRange reports whether the axis range follows the data. Unset means true.
func (a *Axis) IsAutoRange() bool {
	return a == nil || a.AutoRange == nil || *a.AutoRange
}

// IsAutoTick reports whether tick spacing is chosen automatically. Unset means true.
func (a *Axis) IsAutoTick() bool {
	return a == nil || a.AutoTick == nil || *a.AutoTick
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006-01",
	"2006",
}

// D2C converts a data value to its canonical number. Numbers pass through, numeric strings
// are parsed, and date strings become milliseconds since the epoch on date axes.
// Anything else is NaN.
//
// Parameters:
//   - v: raw data value from a trace
//
// Returns:
//   - float64: canonical value or NaN
func (a *Axis) D2C(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return math.NaN()
		}
		return f
	case time.Time:
		return float64(t.UnixMilli())
	case string:
		s := strings.TrimSpace(t)
		if a != nil && a.Type == AxisDate {
			for _, l := range dateLayouts {
				if tm, err := time.Parse(l, s); err == nil {
					return float64(tm.UnixMilli())
				}
			}
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	}
	return math.NaN()
}

// C2L converts a canonical value to the linearized space the scene plots in.
func (a *Axis) C2L(v float64) float64 {
	if a.IsLog() {
		return math.Log10(v)
	}
	return v
}

// Mirror is the axis mirror setting: a boolean or one of "ticks", "all", "allticks".
// The boolean and string forms stay distinct, so the string "true" mirrors nothing.
type Mirror struct {
	value   string
	boolean bool
	on      bool
}

// NewMirror builds a Mirror from one of its string values ("ticks", "all", "allticks").
func NewMirror(v string) *Mirror {
	return &Mirror{value: v}
}

// NewMirrorBool builds a Mirror from the boolean form.
func NewMirrorBool(on bool) *Mirror {
	return &Mirror{boolean: true, on: on}
}

// Lines reports whether the axis line is drawn on the opposite side too.
func (m *Mirror) Lines() bool {
	return m.on || m.Ticks()
}

// Ticks reports whether tick marks are mirrored as well.
func (m *Mirror) Ticks() bool {
	if m.boolean {
		return false
	}
	switch m.value {
	case "ticks", "all", "allticks":
		return true
	}
	return false
}

func (m Mirror) String() string {
	if m.boolean {
		return strconv.FormatBool(m.on)
	}
	return m.value
}

func (m Mirror) MarshalJSON() ([]byte, error) {
	if m.boolean || m.value == "" {
		return json.Marshal(m.on)
	}
	return json.Marshal(m.value)
}

func (m *Mirror) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*m = Mirror{boolean: true, on: b}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("mirror: want bool or string: %w", err)
	}
	*m = Mirror{value: s}
	return nil
}

func (m Mirror) MarshalYAML() (any, error) {
	if m.boolean || m.value == "" {
		return m.on, nil
	}
	// keep a string that reads as a bool quoted
	if _, err := strconv.ParseBool(m.value); err == nil {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: m.value, Style: yaml.DoubleQuotedStyle}, nil
	}
	return m.value, nil
}

func (m *Mirror) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("mirror: line %d: want a scalar", value.Line)
	}
	if value.Tag == "!!bool" {
		var b bool
		if err := value.Decode(&b); err != nil {
			return fmt.Errorf("mirror: %w", err)
		}
		*m = Mirror{boolean: true, on: b}
		return nil
	}
	*m = Mirror{value: value.Value}
	return nil
}

// TickAngle is a tick label rotation in degrees, or "auto".
type TickAngle struct {
	Auto    bool
	Degrees float64
}

// Value returns the rotation, treating "auto" as 0.
func (t *TickAngle) Value() float64 {
	if t.Auto {
		return 0
	}
	return t.Degrees
}

func (t TickAngle) MarshalJSON() ([]byte, error) {
	if t.Auto {
		return []byte(`"auto"`), nil
	}
	return json.Marshal(t.Degrees)
}

func (t *TickAngle) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != "auto" {
			return fmt.Errorf("tickangle: unknown value %q", s)
		}
		*t = TickAngle{Auto: true}
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("tickangle: %w", err)
	}
	*t = TickAngle{Degrees: f}
	return nil
}

func (t TickAngle) MarshalYAML() (any, error) {
	if t.Auto {
		return "auto", nil
	}
	return t.Degrees, nil
}

func (t *TickAngle) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode && value.Value == "auto" {
		*t = TickAngle{Auto: true}
		return nil
	}
	var f float64
	if err := value.Decode(&f); err != nil {
		return fmt.Errorf("tickangle: %w", err)
	}
	*t = TickAngle{Degrees: f}
	return nil
}

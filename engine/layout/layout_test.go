package layout

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const figureJSON = `{
  "layout": {
    "scene": {
      "bgcolor": "#eeeeee",
      "cameraposition": [[0, 0, 0, 1], [0.5, 0.5, 0.5], 2],
      "xaxis": {"type": "log", "mirror": "ticks", "tickangle": "auto", "ticklen": 4},
      "yaxis": {"mirror": true, "autorange": false, "range": [0, 10]},
      "zaxis": {"rangemode": "tozero", "tickangle": 45}
    }
  },
  "data": [
    {"type": "scatter3d", "x": [0, 1], "y": ["2", 3], "z": [4, 5], "mode": "markers"},
    {"type": "surface", "uid": "s", "z": [[1, 2, 3], [4, 5, 6]], "visible": false}
  ]
}`

const figureYAML = `
layout:
  scene:
    cameraposition: [[0, 0, 0, 1], [1, 2, 3], 4]
    xaxis:
      mirror: false
      tickangle: 30
    yaxis:
      mirror: allticks
data:
  - type: surface
    uid: grid
    z:
      - [1, 2]
      - [3, 4]
`

func TestDecodeJSON(t *testing.T) {
	fig, err := Decode(strings.NewReader(figureJSON), FormatJSON)
	require.NoError(t, err)

	sl := fig.Layout["scene"]
	require.NotNil(t, sl)
	assert.Equal(t, "#eeeeee", sl.BgColor)
	require.NotNil(t, sl.CameraPosition)
	assert.Equal(t, CameraPosition{Rotation: [4]float64{0, 0, 0, 1}, Center: [3]float64{0.5, 0.5, 0.5}, Distance: 2}, *sl.CameraPosition)

	assert.True(t, sl.XAxis.IsLog())
	assert.True(t, sl.XAxis.Mirror.Lines())
	assert.True(t, sl.XAxis.Mirror.Ticks())
	assert.Equal(t, 0.0, sl.XAxis.TickAngle.Value())
	assert.Equal(t, 4.0, *sl.XAxis.TickLen)
	assert.Nil(t, sl.XAxis.TickColor, "absent properties stay nil")

	assert.True(t, sl.YAxis.Mirror.Lines())
	assert.False(t, sl.YAxis.Mirror.Ticks())
	assert.False(t, sl.YAxis.IsAutoRange())
	assert.Equal(t, []float64{0, 10}, sl.YAxis.Range)
	assert.Equal(t, 45.0, sl.ZAxis.TickAngle.Value())

	require.Len(t, fig.Data, 2)
	assert.Equal(t, "trace-0", fig.Data[0].UID, "missing uids are filled by position")
	assert.Equal(t, TraceScatter3D, fig.Data[0].Type)
	assert.True(t, fig.Data[0].IsVisible())
	assert.False(t, fig.Data[1].IsVisible())

	z, ok := Grid(fig.Data[1].Z)
	require.True(t, ok)
	assert.Len(t, z, 2)
	assert.Len(t, z[0], 3)
}

func TestDecodeYAML(t *testing.T) {
	fig, err := Decode(strings.NewReader(figureYAML), FormatYAML)
	require.NoError(t, err)
	sl := fig.Layout["scene"]
	require.NotNil(t, sl)
	assert.Equal(t, [3]float64{1, 2, 3}, sl.CameraPosition.Center)
	assert.Equal(t, 4.0, sl.CameraPosition.Distance)
	assert.False(t, sl.XAxis.Mirror.Lines())
	assert.Equal(t, 30.0, sl.XAxis.TickAngle.Value())
	assert.True(t, sl.YAxis.Mirror.Ticks())

	z, ok := Grid(fig.Data[0].Z)
	require.True(t, ok)
	assert.Equal(t, 4.0, (&Axis{}).D2C(z[1][1]))
}

func TestMirrorKeepsBooleanAndStringApart(t *testing.T) {
	tests := []struct {
		name        string
		json, yaml  string
		lines, tick bool
	}{
		{"bool true", `true`, `true`, true, false},
		{"bool false", `false`, `false`, false, false},
		{"string true", `"true"`, `"true"`, false, false},
		{"ticks", `"ticks"`, `ticks`, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fromJSON, fromYAML Mirror
			require.NoError(t, json.Unmarshal([]byte(tt.json), &fromJSON))
			require.NoError(t, yaml.Unmarshal([]byte(tt.yaml), &fromYAML))
			for _, m := range []*Mirror{&fromJSON, &fromYAML} {
				assert.Equal(t, tt.lines, m.Lines())
				assert.Equal(t, tt.tick, m.Ticks())
			}

			data, err := json.Marshal(fromJSON)
			require.NoError(t, err)
			assert.JSONEq(t, tt.json, string(data))

			out, err := yaml.Marshal(fromYAML)
			require.NoError(t, err)
			var back Mirror
			require.NoError(t, yaml.Unmarshal(out, &back))
			assert.Equal(t, fromYAML, back)
		})
	}
}

func TestCameraPositionRoundTrip(t *testing.T) {
	c := CameraPosition{Rotation: [4]float64{0.1, 0.2, 0.3, 0.9}, Center: [3]float64{1, 2, 3}, Distance: 7}
	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `[[0.1,0.2,0.3,0.9],[1,2,3],7]`, string(data))

	var back CameraPosition
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, c, back)

	assert.Error(t, json.Unmarshal([]byte(`[[0,0,1],[0,0,0],1]`), &back))
	assert.Error(t, json.Unmarshal([]byte(`[[0,0,0,1],[0,0,0]]`), &back))
}

func TestEncodeRoundTrip(t *testing.T) {
	fig, err := Decode(strings.NewReader(figureJSON), FormatJSON)
	require.NoError(t, err)
	for _, format := range []Format{FormatJSON, FormatYAML} {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, fig, format))
		back, err := Decode(&buf, format)
		require.NoError(t, err, format)
		assert.Equal(t, fig.Layout["scene"].CameraPosition, back.Layout["scene"].CameraPosition, format)
		assert.Equal(t, fig.Layout["scene"].XAxis.Mirror.String(), back.Layout["scene"].XAxis.Mirror.String(), format)
	}
}

func TestLoadByExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fig.yml")
	require.NoError(t, os.WriteFile(path, []byte(figureYAML), 0o644))
	fig, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "grid", fig.Data[0].UID)

	_, err = Load(filepath.Join(dir, "fig.txt"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestAxisConversions(t *testing.T) {
	lin := &Axis{}
	assert.Equal(t, 2.5, lin.D2C("2.5"))
	assert.Equal(t, 3.0, lin.D2C(3))
	assert.True(t, math.IsNaN(lin.D2C("abc")))
	assert.True(t, math.IsNaN(lin.D2C(nil)))
	assert.Equal(t, 100.0, lin.C2L(100))

	logAx := &Axis{Type: AxisLog}
	assert.InDelta(t, 2, logAx.C2L(100), 1e-12)

	date := &Axis{Type: AxisDate}
	assert.Equal(t, 86400000.0, date.D2C("1970-01-02"))

	var nilAxis *Axis
	assert.True(t, nilAxis.IsAutoRange())
	assert.False(t, nilAxis.IsLog())
}

func TestSceneLayoutAxisAllocates(t *testing.T) {
	sl := &SceneLayout{}
	a := sl.Axis(1)
	require.NotNil(t, a)
	assert.Same(t, a, sl.YAxis)
	assert.Same(t, a, sl.Axis(1))
}

func TestTraceTypeValidate(t *testing.T) {
	assert.NoError(t, TraceSurface.Validate())
	assert.NoError(t, TraceScatter3D.Validate())
	assert.ErrorIs(t, TraceType("mesh3d").Validate(), ErrUnknownTraceType)
}

func TestValues(t *testing.T) {
	v, ok := Values([]float64{1, 2})
	require.True(t, ok)
	assert.Equal(t, []any{1.0, 2.0}, v)
	_, ok = Values("nope")
	assert.False(t, ok)

	_, ok = Grid([]any{[]any{1}, "bad"})
	assert.False(t, ok)
}

func TestErrorBarExtent(t *testing.T) {
	tru := true
	tests := []struct {
		name      string
		bar       *ErrorBar
		v         float64
		wantMinus float64
		wantPlus  float64
	}{
		{"nil", nil, 5, 0, 0},
		{"data symmetric", &ErrorBar{Type: ErrorData, Array: []float64{1, 2}}, 0, 2, 2},
		{"data asymmetric", &ErrorBar{Type: ErrorData, Array: []float64{1, 2}, ArrayMinus: []float64{0.5, 0.25}}, 0, 0.25, 2},
		{"percent", &ErrorBar{Type: ErrorPercent, Value: 10}, -20, 2, 2},
		{"constant", &ErrorBar{Type: ErrorConstant, Value: 3}, 100, 3, 3},
		{"sqrt", &ErrorBar{Type: ErrorSqrt}, 16, 4, 4},
		{"forced symmetric", &ErrorBar{Type: ErrorData, Symmetric: &tru, Array: []float64{1, 2}, ArrayMinus: []float64{9, 9}}, 0, 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			minus, plus := tt.bar.Extent(1, tt.v)
			assert.InDelta(t, tt.wantMinus, minus, 1e-12)
			assert.InDelta(t, tt.wantPlus, plus, 1e-12)
		})
	}
}

func TestErrorBounds(t *testing.T) {
	assert.Nil(t, ErrorBounds([3]*ErrorBar{}, [][3]float64{{0, 0, 0}}))

	bounds := ErrorBounds([3]*ErrorBar{nil, nil, {Type: ErrorConstant, Value: 1}}, [][3]float64{{0, 0, 5}})
	require.Len(t, bounds, 1)
	assert.Equal(t, [2][3]float64{{0, 0, -1}, {0, 0, 1}}, bounds[0])
}

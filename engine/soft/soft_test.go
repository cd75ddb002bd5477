package soft

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-plot/common"
	"github.com/Carmen-Shannon/oxy-plot/engine/axes"
	"github.com/Carmen-Shannon/oxy-plot/engine/canvas"
	"github.com/Carmen-Shannon/oxy-plot/engine/drawable"
	"github.com/Carmen-Shannon/oxy-plot/engine/pick"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const size = 64

func newBackend(t *testing.T) (*Backend, canvas.Canvas) {
	t.Helper()
	c, err := canvas.NewCanvas(size, size)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return NewBackend(c), c
}

// frontParams looks down -Z at the origin from z = 5, so data x maps to screen x.
func frontParams() drawable.CameraParams {
	var p drawable.CameraParams
	common.Identity(p.Model[:])
	common.LookAt(p.View[:], 0, 0, 5, 0, 0, 0, 0, 1, 0)
	common.Perspective(p.Projection[:], float32(math.Pi/4), 1, 0.1, 100)
	p.Width, p.Height = size, size
	return p
}

func pickAt(t *testing.T, d drawable.Drawable, params drawable.CameraParams, x, y float64) *pick.Result {
	t.Helper()
	buf := pick.NewSoftwareBuffer(size, size)
	buf.Begin(int(math.Round(x)), int(math.Round(y)), 4)
	d.DrawPick(params, buf)
	return buf.End()
}

func TestScatterPickDecodesPointIndex(t *testing.T) {
	b, _ := newBackend(t)
	params := frontParams()
	d, err := b.NewScatter(&drawable.ScatterParams{
		Position:     [][3]float64{{-1, 0, 0}, {0, 0, 0}, {1, 0, 0}},
		Mode:         "markers",
		ScatterColor: common.RGBA{1, 0, 0, 1},
		ScatterSize:  12,
		DelaunayAxis: -1,
		Opacity:      1,
		PickIDs:      [4]uint8{7, 8, 9, 10},
	})
	require.NoError(t, err)

	target := project(&params, common.Vec3{1, 0, 0})
	require.True(t, target.OK)
	hit := pickAt(t, d, params, target.X, target.Y)
	require.NotNil(t, hit)
	assert.Equal(t, uint8(7), hit.ID)

	pd := d.Pick(hit)
	require.NotNil(t, pd)
	assert.Equal(t, []int{2}, pd.Index)
	assert.Equal(t, common.Vec3{1, 0, 0}, pd.Position)

	assert.Nil(t, d.Pick(&pick.Result{ID: 99}), "ids of other drawables are ignored")
}

func TestScatterBoundsIncludeErrorBars(t *testing.T) {
	b, _ := newBackend(t)
	d, err := b.NewScatter(&drawable.ScatterParams{
		Position:     [][3]float64{{0, 0, 0}, {1, 2, 3}, {math.NaN(), 0, 0}},
		Mode:         "markers",
		ErrorBounds:  [][2][3]float64{{{-1, 0, 0}, {0, 0, 0}}, {{0, 0, 0}, {0, 0, 0.5}}},
		DelaunayAxis: -1,
	})
	require.NoError(t, err)
	assert.Equal(t, common.Box{{-1, 0, 0}, {1, 2, 3.5}}, d.Bounds())
}

func TestUpdateRejectsOtherKind(t *testing.T) {
	b, _ := newBackend(t)
	d, err := b.NewScatter(&drawable.ScatterParams{Mode: "markers", DelaunayAxis: -1})
	require.NoError(t, err)
	assert.ErrorIs(t, d.Update(&drawable.SurfaceParams{}), ErrParamsKind)

	_, err = b.NewSurface(&drawable.SurfaceParams{
		Field: [][]float64{{1, 2}},
		Ticks: [2][]float64{{0, 1}, {0, 1}},
	})
	assert.Error(t, err, "x ticks must match the field")
}

func TestSurfacePickAndCoordinates(t *testing.T) {
	b, _ := newBackend(t)
	params := frontParams()
	d, err := b.NewSurface(&drawable.SurfaceParams{
		Field:   [][]float64{{0, 0, 0}, {0, 1, 0}, {0, 0, 0}},
		Ticks:   [2][]float64{{-1, 0, 1}, {-1, 0, 1}},
		Opacity: 1,
		PickID:  3,
	})
	require.NoError(t, err)
	assert.Equal(t, common.Box{{-1, -1, 0}, {1, 1, 1}}, d.Bounds())
	assert.False(t, d.SupportsTransparency())

	pos, ok := d.DataCoordinate([]int{2, 0})
	require.True(t, ok)
	assert.Equal(t, common.Vec3{1, -1, 0}, pos)
	_, ok = d.DataCoordinate([]int{3, 0})
	assert.False(t, ok)

	target := project(&params, common.Vec3{1, -1, 0})
	hit := pickAt(t, d, params, target.X, target.Y)
	require.NotNil(t, hit)
	pd := d.Pick(hit)
	require.NotNil(t, pd)
	assert.Equal(t, []int{2, 0}, pd.Index)
}

func TestSurfaceDrawsOnlyInItsPass(t *testing.T) {
	b, c := newBackend(t)
	params := frontParams()
	d, err := b.NewSurface(&drawable.SurfaceParams{
		Field:   [][]float64{{0, 0}, {0, 0}},
		Ticks:   [2][]float64{{-1, 1}, {-1, 1}},
		Opacity: 0.5,
	})
	require.NoError(t, err)
	require.True(t, d.SupportsTransparency())

	c.Clear(common.RGBA{1, 1, 1, 1})
	d.Draw(params, false)
	center := c.Image().RGBAAt(size/2, size/2)
	assert.Equal(t, uint8(255), center.R, "opaque pass skips a translucent surface")
	assert.Equal(t, uint8(255), center.B)

	c.SetBlend(true)
	d.Draw(params, true)
	center = c.Image().RGBAAt(size/2, size/2)
	assert.NotEqual(t, [3]uint8{255, 255, 255}, [3]uint8{center.R, center.G, center.B})
}

func TestZeroOpacityHidesTraces(t *testing.T) {
	b, c := newBackend(t)
	params := frontParams()
	surf, err := b.NewSurface(&drawable.SurfaceParams{
		Field:   [][]float64{{0, 0}, {0, 0}},
		Ticks:   [2][]float64{{-1, 1}, {-1, 1}},
		Opacity: 0,
		PickID:  3,
	})
	require.NoError(t, err)
	pts, err := b.NewScatter(&drawable.ScatterParams{
		Position:     [][3]float64{{0, 0, 0}},
		Mode:         "markers",
		ScatterColor: common.RGBA{1, 0, 0, 1},
		ScatterSize:  12,
		DelaunayAxis: -1,
		Opacity:      0,
		PickIDs:      [4]uint8{7, 8, 9, 10},
	})
	require.NoError(t, err)

	c.Clear(common.RGBA{1, 1, 1, 1})
	c.SetBlend(true)
	for _, transparent := range []bool{false, true} {
		surf.Draw(params, transparent)
		pts.Draw(params, transparent)
	}
	center := c.Image().RGBAAt(size/2, size/2)
	assert.Equal(t, [3]uint8{255, 255, 255}, [3]uint8{center.R, center.G, center.B})

	assert.Nil(t, pickAt(t, surf, params, size/2, size/2))
	assert.Nil(t, pickAt(t, pts, params, size/2, size/2))
}

func TestClipBoundsHidePoints(t *testing.T) {
	b, _ := newBackend(t)
	params := frontParams()
	d, err := b.NewScatter(&drawable.ScatterParams{
		Position:     [][3]float64{{0, 0, 0}},
		Mode:         "markers",
		ScatterSize:  12,
		DelaunayAxis: -1,
		Opacity:      1,
	})
	require.NoError(t, err)
	require.NotNil(t, pickAt(t, d, params, size/2, size/2))
	d.SetClipBounds(common.Box{{1, 1, 1}, {2, 2, 2}})
	assert.Nil(t, pickAt(t, d, params, size/2, size/2))
}

func TestAxesRendererDrawsBox(t *testing.T) {
	b, c := newBackend(t)
	opts := axes.DefaultOptions()
	opts.Bounds = common.Box{{-1, -1, -1}, {1, 1, 1}}
	opts.LineWidth = [3]float64{3, 3, 3}
	r, err := b.NewAxes(opts)
	require.NoError(t, err)
	assert.Equal(t, opts.Bounds, r.Bounds())

	opts.Bounds = common.Box{{0, 0, 0}, {1, 1, 1}}
	assert.NotEqual(t, opts.Bounds, r.Bounds(), "the renderer keeps its own copy")

	var params drawable.CameraParams
	common.Identity(params.Model[:])
	common.LookAt(params.View[:], 3, 3, 3, 0, 0, 0, 0, 0, 1)
	common.Perspective(params.Projection[:], float32(math.Pi/4), 1, 0.1, 100)
	params.Width, params.Height = size, size

	c.Clear(common.RGBA{1, 1, 1, 1})
	r.SetPixelLengths([3]float64{0.1, 0.1, 0.1}, [3]float64{0.2, 0.2, 0.2}, [3]float64{0.3, 0.3, 0.3})
	r.Draw(params)
	assert.True(t, hasDarkPixel(c), "axis lines are drawn")

	r.Dispose()
	c.Clear(common.RGBA{1, 1, 1, 1})
	r.Draw(params)
	assert.False(t, hasDarkPixel(c))
}

func TestSpikesDrawToFaces(t *testing.T) {
	b, c := newBackend(t)
	s, err := b.NewSpikes()
	require.NoError(t, err)

	c.Clear(common.RGBA{1, 1, 1, 1})
	s.Draw(frontParams())
	assert.False(t, hasDarkPixel(c), "nothing before the first update")

	s.Update(axes.SpikeParams{
		Position:  common.Vec3{0, 0, 0},
		Bounds:    common.Box{{-1, -1, -1}, {1, 1, 1}},
		Colors:    [3]common.RGBA{common.Black, common.Black, common.Black},
		DrawSides: [3]bool{true, true, true},
		Enabled:   [3]bool{true, false, false},
		LineWidth: [3]float64{2, 2, 2},
	})
	s.Draw(frontParams())
	px := c.Image().RGBAAt(size/2-8, size/2)
	assert.Less(t, px.R, uint8(128), "x spike crosses the left half")
}

func TestSampleColormapEndpoints(t *testing.T) {
	stops := colormapStops("greys")
	assert.Equal(t, common.RGBA{0, 0, 0, 1}, sampleColormap(stops, 0, 1))
	assert.Equal(t, common.RGBA{1, 1, 1, 0.5}, sampleColormap(stops, 2, 0.5))
	assert.Equal(t, colormaps["jet"], colormapStops("no-such-map"))
}

func hasDarkPixel(c canvas.Canvas) bool {
	img := c.Image()
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] < 128 && img.Pix[i+1] < 128 && img.Pix[i+2] < 128 {
			return true
		}
	}
	return false
}

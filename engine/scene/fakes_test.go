package scene

import (
	"math"

	"github.com/Carmen-Shannon/oxy-plot/common"
	"github.com/Carmen-Shannon/oxy-plot/engine/axes"
	"github.com/Carmen-Shannon/oxy-plot/engine/canvas"
	"github.com/Carmen-Shannon/oxy-plot/engine/drawable"
	"github.com/Carmen-Shannon/oxy-plot/engine/pick"
)

type fakeShell struct {
	width, height  int
	mouseX, mouseY int
	canvas         canvas.Canvas
}

func (f *fakeShell) Width() int            { return f.width }
func (f *fakeShell) Height() int           { return f.height }
func (f *fakeShell) Mouse() (int, int)     { return f.mouseX, f.mouseY }
func (f *fakeShell) Canvas() canvas.Canvas { return f.canvas }

type drawCall struct {
	transparent bool
	blending    bool
}

// fakeDrawable derives its bounds from its params and answers picks with a fixed point.
type fakeDrawable struct {
	drawable.Base
	kind        drawable.Kind
	params      drawable.Params
	updates     int
	disposed    bool
	transparent bool
	draws       []drawCall
	canvas      canvas.Canvas

	// pickPoint, when set, is written at the query center and returned by Pick.
	pickPoint *drawable.PointData
	pickDepth float64
}

func (d *fakeDrawable) Kind() drawable.Kind { return d.kind }

func (d *fakeDrawable) Update(p drawable.Params) error {
	d.params = p
	d.updates++
	return nil
}

func (d *fakeDrawable) Draw(_ drawable.CameraParams, transparent bool) {
	call := drawCall{transparent: transparent}
	if d.canvas != nil {
		call.blending = d.canvas.Blending()
	}
	d.draws = append(d.draws, call)
}

func (d *fakeDrawable) DrawPick(_ drawable.CameraParams, target pick.Target) {
	if d.pickPoint == nil {
		return
	}
	buf := target.(*countingBuffer)
	target.Write(buf.qx, buf.qy, d.pickDepth, d.pickID(), [3]uint8{})
}

func (d *fakeDrawable) pickID() uint8 {
	switch p := d.params.(type) {
	case *drawable.SurfaceParams:
		return p.PickID
	case *drawable.ScatterParams:
		return p.PickIDs[0]
	}
	return 0
}

func (d *fakeDrawable) Pick(hit *pick.Result) *drawable.PointData {
	if d.pickPoint == nil || hit.ID != d.pickID() {
		return nil
	}
	return d.pickPoint
}

func (d *fakeDrawable) Dispose()                   { d.disposed = true }
func (d *fakeDrawable) SupportsTransparency() bool { return d.transparent }

func (d *fakeDrawable) DataCoordinate(index []int) (common.Vec3, bool) {
	if d.pickPoint == nil {
		return common.Vec3{}, false
	}
	return d.pickPoint.Position, true
}

func (d *fakeDrawable) Bounds() common.Box {
	b := common.EmptyBox()
	grow := func(p common.Vec3) {
		for k := 0; k < 3; k++ {
			if math.IsNaN(p[k]) || math.IsInf(p[k], 0) {
				return
			}
		}
		for k := 0; k < 3; k++ {
			b[0][k] = math.Min(b[0][k], p[k])
			b[1][k] = math.Max(b[1][k], p[k])
		}
	}
	switch p := d.params.(type) {
	case *drawable.ScatterParams:
		for _, pt := range p.Position {
			grow(pt)
		}
	case *drawable.SurfaceParams:
		for i, col := range p.Field {
			for j, z := range col {
				grow(common.Vec3{p.Ticks[0][i], p.Ticks[1][j], z})
			}
		}
	}
	return b
}

type fakeAxes struct {
	opts     *axes.Options
	updates  int
	draws    int
	lengths  [3][3]float64
	disposed bool
}

func (a *fakeAxes) Update(opts *axes.Options) {
	a.opts = opts.Clone()
	a.updates++
}
func (a *fakeAxes) Draw(drawable.CameraParams) { a.draws++ }
func (a *fakeAxes) Bounds() common.Box         { return a.opts.Bounds }
func (a *fakeAxes) SetPixelLengths(lineTick, tickPad, labelPad [3]float64) {
	a.lengths = [3][3]float64{lineTick, tickPad, labelPad}
}
func (a *fakeAxes) Dispose() { a.disposed = true }

type fakeSpikes struct {
	params   []axes.SpikeParams
	disposed bool
}

func (s *fakeSpikes) Update(p axes.SpikeParams)  { s.params = append(s.params, p) }
func (s *fakeSpikes) Draw(drawable.CameraParams) {}
func (s *fakeSpikes) Dispose()                   { s.disposed = true }

// countingBuffer is a software pick buffer that remembers its queries.
type countingBuffer struct {
	pick.Buffer
	begins   int
	qx, qy   int
	disposed bool
}

func (b *countingBuffer) Begin(x, y, radius int) {
	b.begins++
	b.qx, b.qy = x, y
	b.Buffer.Begin(x, y, radius)
}

func (b *countingBuffer) Dispose() {
	b.disposed = true
	b.Buffer.Dispose()
}

type fakeBackend struct {
	canvas    canvas.Canvas
	created   []*fakeDrawable
	axes      *fakeAxes
	spikes    *fakeSpikes
	buffer    *countingBuffer
	configure func(d *fakeDrawable)
}

func (b *fakeBackend) newDrawable(kind drawable.Kind, p drawable.Params) *fakeDrawable {
	d := &fakeDrawable{kind: kind, params: p, canvas: b.canvas}
	if b.configure != nil {
		b.configure(d)
	}
	b.created = append(b.created, d)
	return d
}

func (b *fakeBackend) NewSurface(p *drawable.SurfaceParams) (drawable.Drawable, error) {
	return b.newDrawable(drawable.KindSurface, p), nil
}

func (b *fakeBackend) NewScatter(p *drawable.ScatterParams) (drawable.Drawable, error) {
	return b.newDrawable(drawable.KindScatter3D, p), nil
}

func (b *fakeBackend) NewAxes(opts *axes.Options) (axes.Renderer, error) {
	b.axes = &fakeAxes{}
	b.axes.Update(opts)
	return b.axes, nil
}

func (b *fakeBackend) NewSpikes() (axes.Spikes, error) {
	b.spikes = &fakeSpikes{}
	return b.spikes, nil
}

func (b *fakeBackend) NewPickBuffer(w, h int) (pick.Buffer, error) {
	b.buffer = &countingBuffer{Buffer: pick.NewSoftwareBuffer(w, h)}
	return b.buffer, nil
}

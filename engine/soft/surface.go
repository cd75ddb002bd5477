package soft

import (
	"fmt"
	"math"
	"sort"

	"github.com/Carmen-Shannon/oxy-plot/common"
	"github.com/Carmen-Shannon/oxy-plot/engine/canvas"
	"github.com/Carmen-Shannon/oxy-plot/engine/drawable"
	"github.com/Carmen-Shannon/oxy-plot/engine/pick"
)

// surfaceIndexBits is how many bits of the 24-bit pick value each grid index gets.
const surfaceIndexBits = 12

type surface struct {
	drawable.Base
	canvas canvas.Canvas

	params   drawable.SurfaceParams
	stops    []colorStop
	bounds   common.Box
	disposed bool
}

var _ drawable.Drawable = &surface{}

func (s *surface) Kind() drawable.Kind { return drawable.KindSurface }

func (s *surface) Update(params drawable.Params) error {
	p, ok := params.(*drawable.SurfaceParams)
	if !ok || p == nil {
		return fmt.Errorf("%w: want surface, got %T", ErrParamsKind, params)
	}
	nx := len(p.Field)
	if nx == 0 || len(p.Ticks[0]) != nx {
		return fmt.Errorf("surface field has %d columns for %d x ticks", nx, len(p.Ticks[0]))
	}
	for i := range p.Field {
		if len(p.Field[i]) != len(p.Ticks[1]) {
			return fmt.Errorf("surface column %d has %d values for %d y ticks", i, len(p.Field[i]), len(p.Ticks[1]))
		}
	}
	if nx > 1<<surfaceIndexBits || len(p.Ticks[1]) > 1<<surfaceIndexBits {
		return fmt.Errorf("surface grid %dx%d exceeds the pickable size", nx, len(p.Ticks[1]))
	}

	s.params = *p
	s.stops = colormapStops(p.Colormap)
	s.bounds = common.EmptyBox()
	for i, col := range p.Field {
		for j, z := range col {
			pt := common.Vec3{p.Ticks[0][i], p.Ticks[1][j], z}
			if !validPoint(pt) {
				continue
			}
			for k := 0; k < 3; k++ {
				s.bounds[0][k] = math.Min(s.bounds[0][k], pt[k])
				s.bounds[1][k] = math.Max(s.bounds[1][k], pt[k])
			}
		}
	}
	return nil
}

func (s *surface) Bounds() common.Box { return s.bounds }

func (s *surface) SupportsTransparency() bool {
	return s.params.Opacity > 0 && s.params.Opacity < 1
}

func (s *surface) Dispose() {
	s.disposed = true
	s.params = drawable.SurfaceParams{}
}

func (s *surface) vertex(i, j int) common.Vec3 {
	return common.Vec3{s.params.Ticks[0][i], s.params.Ticks[1][j], s.params.Field[i][j]}
}

func (s *surface) DataCoordinate(index []int) (common.Vec3, bool) {
	if len(index) != 2 {
		return common.Vec3{}, false
	}
	i, j := index[0], index[1]
	if i < 0 || j < 0 || i >= len(s.params.Field) || j >= len(s.params.Ticks[1]) {
		return common.Vec3{}, false
	}
	return s.vertex(i, j), true
}

func (s *surface) Pick(hit *pick.Result) *drawable.PointData {
	if hit == nil || hit.ID != s.params.PickID {
		return nil
	}
	v := pick.DecodeIndex(hit.Value)
	index := []int{v >> surfaceIndexBits, v & (1<<surfaceIndexBits - 1)}
	pos, ok := s.DataCoordinate(index)
	if !ok {
		return nil
	}
	return &drawable.PointData{Index: index, Position: pos}
}

type quad struct {
	corners [4]screenPoint
	depth   float64
	z       float64
}

func (s *surface) Draw(params drawable.CameraParams, transparent bool) {
	if s.disposed || s.params.Opacity <= 0 || transparent != s.SupportsTransparency() {
		return
	}
	nx := len(s.params.Field)
	ny := len(s.params.Ticks[1])
	if nx < 2 || ny < 2 {
		return
	}

	clip := s.ClipBounds()
	screen := make([][]screenPoint, nx)
	for i := range screen {
		screen[i] = make([]screenPoint, ny)
		for j := range screen[i] {
			v := s.vertex(i, j)
			if validPoint(v) && clip.Contains(v) {
				screen[i][j] = project(&params, v)
			}
		}
	}

	quads := make([]quad, 0, (nx-1)*(ny-1))
	for i := 0; i+1 < nx; i++ {
		for j := 0; j+1 < ny; j++ {
			q := quad{corners: [4]screenPoint{screen[i][j], screen[i+1][j], screen[i+1][j+1], screen[i][j+1]}}
			ok := true
			for _, c := range q.corners {
				if !c.OK {
					ok = false
					break
				}
				q.depth += c.Depth / 4
			}
			if !ok {
				continue
			}
			q.z = (s.params.Field[i][j] + s.params.Field[i+1][j] + s.params.Field[i+1][j+1] + s.params.Field[i][j+1]) / 4
			quads = append(quads, q)
		}
	}
	// painter's order: far quads first
	sort.Slice(quads, func(a, b int) bool { return quads[a].depth > quads[b].depth })

	zlo, zhi := s.bounds[0][2], s.bounds[1][2]
	alpha := float32(1)
	if s.SupportsTransparency() {
		alpha = float32(s.params.Opacity)
	}
	ctx := s.canvas.Context()
	for _, q := range quads {
		t := 0.5
		if zhi > zlo {
			t = (q.z - zlo) / (zhi - zlo)
		}
		ctx.MoveTo(q.corners[0].X, q.corners[0].Y)
		for _, c := range q.corners[1:] {
			ctx.LineTo(c.X, c.Y)
		}
		ctx.ClosePath()
		s.canvas.SetColor(sampleColormap(s.stops, t, alpha))
		_ = ctx.Fill()
	}
}

func (s *surface) DrawPick(params drawable.CameraParams, target pick.Target) {
	if s.disposed || s.params.Opacity <= 0 {
		return
	}
	clip := s.ClipBounds()
	for i := range s.params.Field {
		for j := range s.params.Ticks[1] {
			v := s.vertex(i, j)
			if !validPoint(v) || !clip.Contains(v) {
				continue
			}
			sp := project(&params, v)
			if !sp.OK {
				continue
			}
			splatDisk(target, sp.X, sp.Y, 2, sp.Depth, s.params.PickID, pick.EncodeIndex(i<<surfaceIndexBits|j))
		}
	}
}

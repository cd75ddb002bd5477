package pick

import "math"

type sample struct {
	set   bool
	id    uint8
	value [3]uint8
	depth float64
}

// softwareBuffer is a CPU pick buffer. It only stores the square window around the
// active query, so memory does not grow with the viewport.
type softwareBuffer struct {
	width, height int

	active  bool
	qx, qy  int
	radius  int
	x0, y0  int
	span    int
	samples []sample
}

var _ Buffer = &softwareBuffer{}

// NewSoftwareBuffer creates a pick buffer that resolves queries on the CPU.
//
// Parameters:
//   - width, height: initial viewport size in pixels
//
// Returns:
//   - Buffer: the new pick buffer
func NewSoftwareBuffer(width, height int) Buffer {
	return &softwareBuffer{width: width, height: height}
}

func (b *softwareBuffer) Width() int  { return b.width }
func (b *softwareBuffer) Height() int { return b.height }

func (b *softwareBuffer) SetShape(width, height int) {
	b.width, b.height = width, height
}

func (b *softwareBuffer) Begin(x, y, radius int) {
	if radius < 0 {
		radius = 0
	}
	b.active = true
	b.qx, b.qy, b.radius = x, y, radius
	b.x0, b.y0 = x-radius, y-radius
	b.span = 2*radius + 1
	n := b.span * b.span
	if cap(b.samples) < n {
		b.samples = make([]sample, n)
	} else {
		b.samples = b.samples[:n]
		clear(b.samples)
	}
}

func (b *softwareBuffer) Write(x, y int, depth float64, id uint8, value [3]uint8) {
	if !b.active || x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	lx, ly := x-b.x0, y-b.y0
	if lx < 0 || ly < 0 || lx >= b.span || ly >= b.span {
		return
	}
	s := &b.samples[ly*b.span+lx]
	if s.set && s.depth <= depth {
		return
	}
	*s = sample{set: true, id: id, value: value, depth: depth}
}

func (b *softwareBuffer) End() *Result {
	if !b.active {
		return nil
	}
	b.active = false

	var best *Result
	bestDist := math.Inf(1)
	r2 := float64(b.radius * b.radius)
	for ly := 0; ly < b.span; ly++ {
		for lx := 0; lx < b.span; lx++ {
			s := b.samples[ly*b.span+lx]
			if !s.set {
				continue
			}
			dx, dy := float64(lx+b.x0-b.qx), float64(ly+b.y0-b.qy)
			d := dx*dx + dy*dy
			if d > r2 || d >= bestDist {
				continue
			}
			bestDist = d
			best = &Result{ID: s.id, Value: s.value, Coord: [2]int{lx + b.x0, ly + b.y0}, Distance: d}
		}
	}
	return best
}

func (b *softwareBuffer) Dispose() {
	b.samples = nil
	b.active = false
}

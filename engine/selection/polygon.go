package selection

// Polygon is a closed screen-space region.
type Polygon interface {
	// Contains reports whether the pixel position p lies inside the region.
	Contains(p [2]float64) bool
}

type polygon struct {
	vertices [][2]float64
	// bounding box, tested before the edge walk
	min, max [2]float64
}

var _ Polygon = &polygon{}

// NewPolygon creates a polygon from its vertices in pixels. The last vertex connects back to
// the first; points are inside by the even-odd rule.
//
// Parameters:
//   - vertices: at least three pixel positions
//
// Returns:
//   - Polygon: the region, or nil for fewer than three vertices
func NewPolygon(vertices [][2]float64) Polygon {
	if len(vertices) < 3 {
		return nil
	}
	p := &polygon{vertices: append([][2]float64(nil), vertices...)}
	p.min, p.max = vertices[0], vertices[0]
	for _, v := range vertices[1:] {
		for k := 0; k < 2; k++ {
			p.min[k] = min(p.min[k], v[k])
			p.max[k] = max(p.max[k], v[k])
		}
	}
	return p
}

// Rect creates the axis-aligned rectangle spanned by two corners.
func Rect(x0, y0, x1, y1 float64) Polygon {
	return NewPolygon([][2]float64{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}})
}

func (p *polygon) Contains(pt [2]float64) bool {
	if pt[0] < p.min[0] || pt[0] > p.max[0] || pt[1] < p.min[1] || pt[1] > p.max[1] {
		return false
	}
	inside := false
	n := len(p.vertices)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := p.vertices[i], p.vertices[j]
		if (a[1] > pt[1]) == (b[1] > pt[1]) {
			continue
		}
		x := a[0] + (pt[1]-a[1])*(b[0]-a[0])/(b[1]-a[1])
		if pt[0] < x {
			inside = !inside
		}
	}
	return inside
}

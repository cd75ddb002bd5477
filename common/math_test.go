package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMul4Identity(t *testing.T) {
	var id, m, out [16]float32
	Identity(id[:])
	for i := range m {
		m[i] = float32(i + 1)
	}
	Mul4(out[:], id[:], m[:])
	assert.Equal(t, m, out)
}

func TestBuildModelMatrixMapsBoxToUnitCube(t *testing.T) {
	box := Box{{0, 10, -4}, {2, 30, 4}}
	var s, d [3]float32
	for i := 0; i < 3; i++ {
		r := box.Extent(i)
		s[i] = float32(1 / r)
		d[i] = float32(-0.5 * (box[0][i] + box[1][i]) / r)
	}
	var m [16]float32
	BuildModelMatrix(m[:], d[0], d[1], d[2], 0, 0, 0, s[0], s[1], s[2])

	lo := Transform4(m[:], [4]float32{0, 10, -4, 1})
	hi := Transform4(m[:], [4]float32{2, 30, 4, 1})
	for i := 0; i < 3; i++ {
		assert.InDelta(t, -0.5, lo[i], 1e-6)
		assert.InDelta(t, 0.5, hi[i], 1e-6)
	}
}

func TestLookAtMovesEyeToOrigin(t *testing.T) {
	var v [16]float32
	LookAt(v[:], 1.25, 1.25, 1.25, 0, 0, 0, 0, 0, 1)
	eye := Transform4(v[:], [4]float32{1.25, 1.25, 1.25, 1})
	for i := 0; i < 3; i++ {
		assert.InDelta(t, 0, eye[i], 1e-5)
	}
	center := Transform4(v[:], [4]float32{0, 0, 0, 1})
	assert.InDelta(t, -1.25*math.Sqrt(3), center[2], 1e-5)
}

func TestProjectCenterLandsOnAxis(t *testing.T) {
	var model, view, proj [16]float32
	Identity(model[:])
	LookAt(view[:], 0, 0, 5, 0, 0, 0, 0, 1, 0)
	Perspective(proj[:], math.Pi/4, 1, 0.1, 100)

	p := Project(model[:], view[:], proj[:], Vec3{0, 0, 0})
	assert.InDelta(t, 0, p[0]/p[3], 1e-6)
	assert.InDelta(t, 0, p[1]/p[3], 1e-6)
	assert.Greater(t, p[3], float32(0))
}

func TestFrustumContainsPoint(t *testing.T) {
	var view, proj, vp [16]float32
	LookAt(view[:], 0, 0, 5, 0, 0, 0, 0, 1, 0)
	Perspective(proj[:], math.Pi/4, 1, 0.1, 100)
	Mul4(vp[:], proj[:], view[:])
	f := ExtractFrustumFromMatrix(vp[:])

	assert.True(t, f.ContainsPoint(Vec3{0, 0, 0}))
	assert.False(t, f.ContainsPoint(Vec3{0, 0, 10}), "behind the eye")
	assert.False(t, f.ContainsPoint(Vec3{100, 0, 0}), "far outside the left/right planes")
}

func TestQuatRoundTrip(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{1, 2, 3}, 0.7)
	var m [16]float32
	QuatToMat4(m[:], q)
	back := QuatFromMat4(m[:])
	sign := 1.0
	if back[3]*q[3] < 0 {
		sign = -1
	}
	for i := range q {
		assert.InDelta(t, q[i], sign*back[i], 1e-5)
	}
}

func TestQuatMulComposes(t *testing.T) {
	a := QuatFromAxisAngle(Vec3{0, 0, 1}, math.Pi/4)
	ab := QuatMul(a, a)
	want := QuatFromAxisAngle(Vec3{0, 0, 1}, math.Pi/2)
	for i := range want {
		assert.InDelta(t, want[i], ab[i], 1e-9)
	}
}

func TestBoxHelpers(t *testing.T) {
	b := Box{{0, 0, 0}, {2, 4, 6}}
	assert.Equal(t, Vec3{1, 2, 3}, b.Center())
	assert.Equal(t, 4.0, b.Extent(1))
	assert.True(t, b.Contains(Vec3{2, 0, 3}))
	assert.False(t, b.Contains(Vec3{2.1, 0, 3}))
	assert.True(t, b.IsFinite())
	assert.False(t, EmptyBox().IsFinite())

	c := b
	c[0][0] = 9
	assert.Equal(t, 0.0, b[0][0], "boxes copy by value")
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, 30, Coalesce(0, 30, 12))
	assert.Equal(t, "", Coalesce("", ""))
}

package camera

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-plot/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func transform(m [16]float32, p [3]float64) [4]float32 {
	return common.Transform4(m[:], [4]float32{float32(p[0]), float32(p[1]), float32(p[2]), 1})
}

func TestLookAtMatchesClassicViewMatrix(t *testing.T) {
	cam := NewCamera()
	eye := [3]float64{1.25, 1.25, 1.25}
	cam.LookAt(eye, [3]float64{}, [3]float64{0, 0, 1})

	var want [16]float32
	common.LookAt(want[:], 1.25, 1.25, 1.25, 0, 0, 0, 0, 0, 1)
	got := cam.ViewMatrix()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-5, "element %d", i)
	}

	p := cam.Pose()
	assert.InDelta(t, 1.25*math.Sqrt(3), p.Distance, 1e-9)
	assert.Equal(t, [3]float64{}, p.Center)
}

func TestViewMapsCenterOntoViewAxis(t *testing.T) {
	cam := NewCamera()
	cam.SetPose(Pose{Rotation: common.QuatFromAxisAngle([3]float64{1, 0, 0}, 0.3), Center: [3]float64{2, 3, 4}, Distance: 5})

	v := transform(cam.ViewMatrix(), [3]float64{2, 3, 4})
	assert.InDelta(t, 0, v[0], 1e-5)
	assert.InDelta(t, 0, v[1], 1e-5)
	assert.InDelta(t, -5, v[2], 1e-5)
}

func TestPoseRoundTrip(t *testing.T) {
	ctrl := NewCameraController()
	want := Pose{Rotation: common.QuatNormalize([4]float64{0.1, 0.2, 0.3, 0.9}), Center: [3]float64{1, -1, 0.5}, Distance: 3}
	ctrl.SetPose(want)
	got := ctrl.Pose()
	for i := range want.Rotation {
		assert.InDelta(t, want.Rotation[i], got.Rotation[i], 1e-12)
	}
	assert.Equal(t, want.Center, got.Center)
	assert.Equal(t, want.Distance, got.Distance)
}

func TestEyeFollowsPose(t *testing.T) {
	ctrl := NewCameraController(WithLookAt([3]float64{0, -4, 0}, [3]float64{0, 0, 0}, [3]float64{0, 0, 1}))
	eye := ctrl.Eye()
	assert.InDelta(t, 0, eye[0], 1e-5)
	assert.InDelta(t, -4, eye[1], 1e-5)
	assert.InDelta(t, 0, eye[2], 1e-5)
}

func TestZoomClampsDistance(t *testing.T) {
	ctrl := NewCameraController(WithDistanceBounds(1, 10), WithZoomSpeed(1))
	ctrl.SetDistance(5)
	ctrl.Zoom(100)
	assert.Equal(t, 1.0, ctrl.Distance())
	ctrl.Zoom(-100)
	assert.Equal(t, 10.0, ctrl.Distance())
}

func TestOrbitKeepsDistanceAndCenter(t *testing.T) {
	ctrl := NewCameraController()
	before := ctrl.Pose()
	ctrl.Orbit(40, -25)
	ctrl.OrbitLeft()
	ctrl.OrbitUp()
	after := ctrl.Pose()
	assert.Equal(t, before.Center, after.Center)
	assert.InDelta(t, before.Distance, after.Distance, 1e-12)
	assert.NotEqual(t, before.Rotation, after.Rotation)
}

func TestOrbitAroundWorldUpPreservesHeight(t *testing.T) {
	ctrl := NewCameraController()
	z := ctrl.Eye()[2]
	ctrl.OrbitRight()
	assert.InDelta(t, z, ctrl.Eye()[2], 1e-5)
}

func TestPanMovesCenterOnly(t *testing.T) {
	ctrl := NewCameraController()
	before := ctrl.Pose()
	ctrl.Pan(10, 0)
	after := ctrl.Pose()
	assert.NotEqual(t, before.Center, after.Center)
	assert.Equal(t, before.Rotation, after.Rotation)
	assert.Equal(t, before.Distance, after.Distance)
}

func TestProjectionDefaults(t *testing.T) {
	cam := NewCamera(WithAspect(2))
	require.NotNil(t, cam.Controller())
	assert.InDelta(t, math.Pi/4, cam.Fov(), 1e-6)
	assert.Equal(t, float32(0.1), cam.Near())
	assert.Equal(t, float32(10000), cam.Far())

	var want [16]float32
	common.Perspective(want[:], math.Pi/4, 2, 0.1, 10000)
	assert.Equal(t, want, cam.ProjectionMatrix())
}

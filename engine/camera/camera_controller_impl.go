package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-plot/common"
)

// cameraControllerImpl is the single implementation of CameraController.
// Supports both orbit and planar controls simultaneously. Orbit methods rotate the
// pose around the center; planar methods translate the center in the view plane.
type cameraControllerImpl struct {
	mu *sync.Mutex

	pose    Pose
	worldUp [3]float64

	// Zoom constraints
	minDistance float64
	maxDistance float64

	// Orbit speed settings
	orbitSpeed       float64
	mouseSensitivity float64
	zoomSpeed        float64

	// Planar speed
	panSpeed float64
}

// Compile-time interface compliance check
var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a new camera controller with plotting defaults:
// eye at (1.25, 1.25, 1.25) looking at the origin with +Z up.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		mu:      &sync.Mutex{},
		worldUp: [3]float64{0, 0, 1},
		pose:    lookAtPose([3]float64{1.25, 1.25, 1.25}, [3]float64{}, [3]float64{0, 0, 1}),

		minDistance: 0.01,
		maxDistance: 1000.0,

		orbitSpeed:       0.03,
		mouseSensitivity: 0.005,
		zoomSpeed:        0.1,

		panSpeed: 1.0,
	}

	for _, option := range options {
		option(cc)
	}

	cc.pose.Rotation = common.QuatNormalize(cc.pose.Rotation)
	cc.pose.Distance = cc.clampDistance(cc.pose.Distance)
	return cc
}

// NewOrbitController creates a new camera controller configured for orbit-style control.
// This is a convenience wrapper around NewCameraController.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewOrbitController(options ...CameraControllerOption) CameraController {
	return NewCameraController(options...)
}

// --- internal helpers ---

// lookAtPose converts an eye/center/up triple into a pose.
func lookAtPose(eye, center, up [3]float64) Pose {
	var m [16]float32
	common.LookAt(m[:],
		float32(eye[0]), float32(eye[1]), float32(eye[2]),
		float32(center[0]), float32(center[1]), float32(center[2]),
		float32(up[0]), float32(up[1]), float32(up[2]),
	)
	d := math.Sqrt(
		(eye[0]-center[0])*(eye[0]-center[0]) +
			(eye[1]-center[1])*(eye[1]-center[1]) +
			(eye[2]-center[2])*(eye[2]-center[2]),
	)
	return Pose{Rotation: common.QuatFromMat4(m[:]), Center: center, Distance: d}
}

// localAxes returns the camera's right, up and backward axes in world space.
// They are the rows of the rotation matrix.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) localAxes() (right, up, back [3]float64) {
	var m [16]float32
	common.QuatToMat4(m[:], cc.pose.Rotation)
	right = [3]float64{float64(m[0]), float64(m[4]), float64(m[8])}
	up = [3]float64{float64(m[1]), float64(m[5]), float64(m[9])}
	back = [3]float64{float64(m[2]), float64(m[6]), float64(m[10])}
	return
}

// rotate applies a yaw around the world up axis followed by a pitch around the camera right axis.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) rotate(yaw, pitch float64) {
	right, _, _ := cc.localAxes()
	q := cc.pose.Rotation
	if yaw != 0 {
		q = common.QuatMul(q, common.QuatFromAxisAngle(cc.worldUp, yaw))
	}
	if pitch != 0 {
		q = common.QuatMul(q, common.QuatFromAxisAngle(right, pitch))
	}
	cc.pose.Rotation = common.QuatNormalize(q)
}

func (cc *cameraControllerImpl) clampDistance(d float64) float64 {
	if d < cc.minDistance {
		return cc.minDistance
	}
	if d > cc.maxDistance {
		return cc.maxDistance
	}
	return d
}

// --- CameraController shared methods ---

func (cc *cameraControllerImpl) Pose() Pose {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.pose
}

func (cc *cameraControllerImpl) SetPose(p Pose) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	p.Rotation = common.QuatNormalize(p.Rotation)
	p.Distance = cc.clampDistance(p.Distance)
	cc.pose = p
}

func (cc *cameraControllerImpl) LookAt(eye, center, up [3]float64) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	p := lookAtPose(eye, center, up)
	p.Distance = cc.clampDistance(p.Distance)
	cc.pose = p
}

func (cc *cameraControllerImpl) Eye() [3]float64 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	_, _, back := cc.localAxes()
	c, d := cc.pose.Center, cc.pose.Distance
	return [3]float64{c[0] + d*back[0], c[1] + d*back[1], c[2] + d*back[2]}
}

func (cc *cameraControllerImpl) Zoom(delta float64) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.pose.Distance = cc.clampDistance(cc.pose.Distance * math.Exp(-delta*cc.zoomSpeed))
}

// --- orbitCameraController implementation ---

func (cc *cameraControllerImpl) Orbit(dx, dy float64) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.rotate(dx*cc.mouseSensitivity, dy*cc.mouseSensitivity)
}

func (cc *cameraControllerImpl) OrbitLeft() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.rotate(-cc.orbitSpeed, 0)
}

func (cc *cameraControllerImpl) OrbitRight() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.rotate(cc.orbitSpeed, 0)
}

func (cc *cameraControllerImpl) OrbitUp() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.rotate(0, -cc.orbitSpeed)
}

func (cc *cameraControllerImpl) OrbitDown() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.rotate(0, cc.orbitSpeed)
}

func (cc *cameraControllerImpl) Distance() float64 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.pose.Distance
}

func (cc *cameraControllerImpl) SetDistance(distance float64) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.pose.Distance = cc.clampDistance(distance)
}

func (cc *cameraControllerImpl) MinDistance() float64 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.minDistance
}

func (cc *cameraControllerImpl) MaxDistance() float64 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.maxDistance
}

func (cc *cameraControllerImpl) OrbitSpeed() float64 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.orbitSpeed
}

func (cc *cameraControllerImpl) MouseSensitivity() float64 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.mouseSensitivity
}

func (cc *cameraControllerImpl) ZoomSpeed() float64 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.zoomSpeed
}

// --- planarCameraController implementation ---

func (cc *cameraControllerImpl) Pan(dx, dy float64) {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	right, up, _ := cc.localAxes()
	scale := cc.panSpeed * cc.pose.Distance * 0.002
	for i := 0; i < 3; i++ {
		cc.pose.Center[i] -= (right[i]*dx - up[i]*dy) * scale
	}
}

func (cc *cameraControllerImpl) PanSpeed() float64 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.panSpeed
}

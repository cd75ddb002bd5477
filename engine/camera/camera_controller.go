package camera

// Pose is the persisted camera state: the world-to-view rotation, the orbit center and the
// distance from the center to the eye. The view matrix is T(0, 0, -Distance) * R(Rotation) * T(-Center).
type Pose struct {
	// Rotation is a unit quaternion stored as [x, y, z, w].
	Rotation [4]float64
	// Center is the point the camera orbits around.
	Center [3]float64
	// Distance is the eye-to-center distance.
	Distance float64
}

// CameraController defines the union interface for camera control systems.
// Controllers own the pose (rotation, center, distance). Camera reads the pose
// and computes view/projection matrices. Embeds both orbitCameraController and
// planarCameraController, enabling orbit and planar controls to work simultaneously
// from a single controller instance.
type CameraController interface {
	orbitCameraController
	planarCameraController

	// Pose returns a copy of the current pose.
	//
	// Returns:
	//   - Pose: rotation, center and distance
	Pose() Pose

	// SetPose replaces the pose. The rotation is normalized and the distance clamped to bounds.
	//
	// Parameters:
	//   - p: the new pose
	SetPose(p Pose)

	// LookAt derives the pose that places the eye at eye looking toward center with the given up vector.
	//
	// Parameters:
	//   - eye: world-space eye position
	//   - center: world-space look-at point
	//   - up: world-space up direction
	LookAt(eye, center, up [3]float64)

	// Eye returns the world-space eye position implied by the pose.
	//
	// Returns:
	//   - [3]float64: eye position
	Eye() [3]float64

	// Zoom adjusts the camera's distance multiplicatively.
	// Positive delta zooms in (closer to center).
	//
	// Parameters:
	//   - delta: zoom amount scaled by ZoomSpeed
	Zoom(delta float64)
}

// orbitCameraController defines orbit-specific control methods.
// Orbiting is turntable style: horizontal motion spins around the world up axis,
// vertical motion tilts around the camera's right axis.
type orbitCameraController interface {
	// Orbit rotates the camera around the center from a mouse drag.
	//
	// Parameters:
	//   - dx, dy: drag distance in pixels, scaled by MouseSensitivity
	Orbit(dx, dy float64)

	// OrbitLeft rotates the camera left around the center by one orbit speed step.
	OrbitLeft()

	// OrbitRight rotates the camera right around the center by one orbit speed step.
	OrbitRight()

	// OrbitUp tilts the camera upward by one orbit speed step.
	OrbitUp()

	// OrbitDown tilts the camera downward by one orbit speed step.
	OrbitDown()

	// Distance returns the current eye-to-center distance.
	//
	// Returns:
	//   - float64: current distance
	Distance() float64

	// SetDistance sets the distance directly, clamped to min/max bounds.
	//
	// Parameters:
	//   - distance: new eye-to-center distance
	SetDistance(distance float64)

	// MinDistance returns the minimum allowed distance.
	//
	// Returns:
	//   - float64: minimum zoom distance
	MinDistance() float64

	// MaxDistance returns the maximum allowed distance.
	//
	// Returns:
	//   - float64: maximum zoom distance
	MaxDistance() float64

	// OrbitSpeed returns the keyboard orbit speed in radians per step.
	//
	// Returns:
	//   - float64: radians per orbit call
	OrbitSpeed() float64

	// MouseSensitivity returns the mouse drag sensitivity in radians per pixel.
	//
	// Returns:
	//   - float64: multiplier for mouse movement
	MouseSensitivity() float64

	// ZoomSpeed returns the zoom speed multiplier.
	//
	// Returns:
	//   - float64: multiplier for zoom input
	ZoomSpeed() float64
}

// planarCameraController defines planar translation control methods.
// Panning shifts the center in the view plane, preserving rotation and distance.
type planarCameraController interface {
	// Pan translates the center along the camera's right and up axes.
	// Offsets scale with distance so a drag feels the same at every zoom level.
	//
	// Parameters:
	//   - dx, dy: drag distance in pixels, scaled by PanSpeed
	Pan(dx, dy float64)

	// PanSpeed returns the pan speed multiplier.
	//
	// Returns:
	//   - float64: multiplier for pan input
	PanSpeed() float64
}

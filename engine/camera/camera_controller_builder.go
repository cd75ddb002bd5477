package camera

// CameraControllerOption is a functional option for configuring a CameraController.
type CameraControllerOption func(*cameraControllerImpl)

// WithPose sets the initial pose.
//
// Parameters:
//   - p: rotation, center and distance
//
// Returns:
//   - CameraControllerOption: functional option to set the pose
func WithPose(p Pose) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.pose = p
	}
}

// WithLookAt sets the initial pose from an eye, center and up vector.
//
// Parameters:
//   - eye: world-space eye position
//   - center: world-space look-at point
//   - up: world-space up direction
//
// Returns:
//   - CameraControllerOption: functional option to set the pose
func WithLookAt(eye, center, up [3]float64) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.pose = lookAtPose(eye, center, up)
	}
}

// WithDistanceBounds sets the minimum and maximum eye-to-center distance.
//
// Parameters:
//   - min: minimum zoom distance
//   - max: maximum zoom distance
//
// Returns:
//   - CameraControllerOption: functional option to set distance bounds
func WithDistanceBounds(min, max float64) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.minDistance = min
		cc.maxDistance = max
	}
}

// WithWorldUp sets the axis the turntable orbit spins around.
//
// Parameters:
//   - up: world-space up direction
//
// Returns:
//   - CameraControllerOption: functional option to set the world up axis
func WithWorldUp(up [3]float64) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.worldUp = up
	}
}

// WithOrbitSpeed sets the keyboard orbit speed.
//
// Parameters:
//   - speed: radians per orbit call
//
// Returns:
//   - CameraControllerOption: functional option to set orbit speed
func WithOrbitSpeed(speed float64) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.orbitSpeed = speed
	}
}

// WithMouseSensitivity sets the mouse drag sensitivity.
//
// Parameters:
//   - sensitivity: radians per dragged pixel
//
// Returns:
//   - CameraControllerOption: functional option to set mouse sensitivity
func WithMouseSensitivity(sensitivity float64) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.mouseSensitivity = sensitivity
	}
}

// WithZoomSpeed sets the zoom speed multiplier.
//
// Parameters:
//   - speed: multiplier for zoom input
//
// Returns:
//   - CameraControllerOption: functional option to set zoom speed
func WithZoomSpeed(speed float64) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.zoomSpeed = speed
	}
}

// WithPanSpeed sets the planar pan speed multiplier.
//
// Parameters:
//   - speed: multiplier for pan input
//
// Returns:
//   - CameraControllerOption: functional option to set pan speed
func WithPanSpeed(speed float64) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.panSpeed = speed
	}
}

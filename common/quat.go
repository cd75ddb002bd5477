package common

import "math"

// Quaternions are stored as [x, y, z, w].

// QuatIdentity returns the identity rotation.
func QuatIdentity() [4]float64 {
	return [4]float64{0, 0, 0, 1}
}

// QuatNormalize scales q to unit length. A zero quaternion becomes the identity.
func QuatNormalize(q [4]float64) [4]float64 {
	l := math.Sqrt(q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3])
	if l == 0 {
		return QuatIdentity()
	}
	return [4]float64{q[0] / l, q[1] / l, q[2] / l, q[3] / l}
}

// QuatMul returns the Hamilton product a * b (apply b first, then a).
func QuatMul(a, b [4]float64) [4]float64 {
	return [4]float64{
		a[3]*b[0] + a[0]*b[3] + a[1]*b[2] - a[2]*b[1],
		a[3]*b[1] - a[0]*b[2] + a[1]*b[3] + a[2]*b[0],
		a[3]*b[2] + a[0]*b[1] - a[1]*b[0] + a[2]*b[3],
		a[3]*b[3] - a[0]*b[0] - a[1]*b[1] - a[2]*b[2],
	}
}

// QuatFromAxisAngle builds a rotation of angle radians around axis. The axis need not be normalized.
func QuatFromAxisAngle(axis Vec3, angle float64) [4]float64 {
	l := math.Sqrt(axis[0]*axis[0] + axis[1]*axis[1] + axis[2]*axis[2])
	if l == 0 {
		return QuatIdentity()
	}
	s := math.Sin(angle/2) / l
	return [4]float64{axis[0] * s, axis[1] * s, axis[2] * s, math.Cos(angle / 2)}
}

// QuatToMat4 writes the rotation of q into out as a column-major 4x4 matrix.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - q: unit quaternion
func QuatToMat4(out []float32, q [4]float64) {
	x, y, z, w := q[0], q[1], q[2], q[3]
	Identity(out)
	out[0] = float32(1 - 2*(y*y+z*z))
	out[1] = float32(2 * (x*y + z*w))
	out[2] = float32(2 * (x*z - y*w))
	out[4] = float32(2 * (x*y - z*w))
	out[5] = float32(1 - 2*(x*x+z*z))
	out[6] = float32(2 * (y*z + x*w))
	out[8] = float32(2 * (x*z + y*w))
	out[9] = float32(2 * (y*z - x*w))
	out[10] = float32(1 - 2*(x*x+y*y))
}

// QuatFromMat4 extracts the rotation from the upper 3x3 block of a column-major matrix.
// The block must be orthonormal.
//
// Parameters:
//   - m: source matrix (16 elements, column-major)
//
// Returns:
//   - [4]float64: unit quaternion
func QuatFromMat4(m []float32) [4]float64 {
	m00, m01, m02 := float64(m[0]), float64(m[4]), float64(m[8])
	m10, m11, m12 := float64(m[1]), float64(m[5]), float64(m[9])
	m20, m21, m22 := float64(m[2]), float64(m[6]), float64(m[10])

	var q [4]float64
	trace := m00 + m11 + m22
	switch {
	case trace > 0:
		s := 0.5 / math.Sqrt(trace+1)
		q = [4]float64{(m21 - m12) * s, (m02 - m20) * s, (m10 - m01) * s, 0.25 / s}
	case m00 > m11 && m00 > m22:
		s := 2 * math.Sqrt(1+m00-m11-m22)
		q = [4]float64{0.25 * s, (m01 + m10) / s, (m02 + m20) / s, (m21 - m12) / s}
	case m11 > m22:
		s := 2 * math.Sqrt(1+m11-m00-m22)
		q = [4]float64{(m01 + m10) / s, 0.25 * s, (m12 + m21) / s, (m02 - m20) / s}
	default:
		s := 2 * math.Sqrt(1+m22-m00-m11)
		q = [4]float64{(m02 + m20) / s, (m12 + m21) / s, 0.25 * s, (m10 - m01) / s}
	}
	return QuatNormalize(q)
}

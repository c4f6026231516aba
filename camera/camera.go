// Package camera builds the view-projection matrices used by the stock
// pipelines in package shaders.
//
// Matrices follow trirast conventions: row-major storage, column vectors,
// right-handed world space with the camera looking down -Z and +Y up. The
// projection targets Vulkan-style clip space (y flipped, depth in [0, 1)),
// and [ScreenFromNDC] maps the [-1, 1] clip square onto the [0, 1] screen
// square that trirast rasterizes.
package camera

import (
	"math"

	"github.com/gogpu/trirast"
)

// Default camera parameters.
const (
	DefaultFOV  = 70  // degrees
	DefaultNear = 0.2 // world units
)

// PerspectiveInfiniteZ returns a perspective projection with an infinitely
// distant far plane.
//
// fovY is the vertical field of view in radians, aspect is width/height and
// near is the distance of the near plane. After the perspective divide, x
// and y lie in [-1, 1] for points inside the frustum, y points down, and
// depth is 0 at the near plane, approaching 1 at infinity.
func PerspectiveInfiniteZ(fovY, aspect, near float32) trirast.Mat4 {
	t := float32(math.Tan(float64(fovY) / 2))
	sy := 1 / t
	sx := sy / aspect

	return trirast.Mat4{
		sx, 0, 0, 0,
		0, -sy, 0, 0,
		0, 0, -1, -near,
		0, 0, -1, 0,
	}
}

// ScreenFromNDC maps clip space x, y in [-1, 1] to [0, 1]. It scales and
// offsets by w, so the mapping holds after the perspective divide.
func ScreenFromNDC() trirast.Mat4 {
	return trirast.Mat4{
		0.5, 0, 0, 0.5,
		0, 0.5, 0, 0.5,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// LookAt returns the view matrix of a camera at eye looking at target.
// up must not be parallel to target-eye.
func LookAt(eye, target, up trirast.Vec3) trirast.Mat4 {
	f := target.Sub(eye).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)

	// The columns of basis are the camera axes in world space.
	basis := trirast.Mat4{
		s[0], u[0], -f[0], 0,
		s[1], u[1], -f[1], 0,
		s[2], u[2], -f[2], 0,
		0, 0, 0, 1,
	}
	return basis.Transpose().Mul(trirast.Translate(-eye[0], -eye[1], -eye[2]))
}

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return deg * math.Pi / 180
}

package camera

import (
	"math"

	"github.com/gogpu/trirast"
)

// Up is the world up direction.
var Up = trirast.V3(0, 1, 0)

// Camera is a pinhole camera.
//
// Without a target the camera keeps its default orientation, looking down
// -Z, and the view is a pure translation by -Position. With a target it
// looks at Target.
type Camera struct {
	Position trirast.Vec3
	Target   trirast.Vec3

	// HasTarget enables LookAt orientation.
	HasTarget bool

	// FOV is the vertical field of view in degrees.
	FOV float32

	// Near is the distance of the near plane.
	Near float32
}

// Default returns the camera of the 3D demo scene: one unit up, two units
// back, looking down -Z.
func Default() Camera {
	return Camera{
		Position: trirast.V3(0, 1, 2),
		FOV:      DefaultFOV,
		Near:     DefaultNear,
	}
}

// View returns the world-to-camera matrix.
func (c Camera) View() trirast.Mat4 {
	if c.HasTarget {
		return LookAt(c.Position, c.Target, Up)
	}
	p := c.Position
	return trirast.Translate(-p[0], -p[1], -p[2])
}

// Projection returns the projection for a width x height output.
func (c Camera) Projection(width, height int) trirast.Mat4 {
	aspect := float32(width) / float32(height)
	return PerspectiveInfiniteZ(Radians(c.FOV), aspect, c.Near)
}

// ViewProjection returns the full world-to-screen transform for a
// width x height output: screen remap, projection, then view.
func (c Camera) ViewProjection(width, height int) trirast.Mat4 {
	return ScreenFromNDC().Mul(c.Projection(width, height)).Mul(c.View())
}

// Move translates the camera, and its target if it has one, by d.
func (c Camera) Move(d trirast.Vec3) Camera {
	c.Position = c.Position.Add(d)
	if c.HasTarget {
		c.Target = c.Target.Add(d)
	}
	return c
}

// Orbit returns a camera circling target at the given radius and height
// above it, at angle radians around the Y axis. Angle 0 puts the camera on
// the +Z side of the target.
func (c Camera) Orbit(target trirast.Vec3, radius, height, angle float32) Camera {
	sin, cos := math.Sincos(float64(angle))
	c.Position = target.Add(trirast.V3(
		radius*float32(sin),
		height,
		radius*float32(cos),
	))
	c.Target = target
	c.HasTarget = true
	return c
}

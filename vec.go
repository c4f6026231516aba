package trirast

import (
	"math"

	"golang.org/x/image/math/f32"
)

// Vec2 is a 2D vector. It shares its layout with [f32.Vec2], so values
// convert freely between the two.
type Vec2 f32.Vec2

// Vec3 is a 3D vector, typically a position, normal or RGB triple.
type Vec3 f32.Vec3

// Vec4 is a 4D vector. Vertex stages return clip-space positions as Vec4
// in (x, y, z, w) order.
type Vec4 f32.Vec4

// V2 is a convenience function to create a Vec2.
func V2(x, y float32) Vec2 {
	return Vec2{x, y}
}

// V3 is a convenience function to create a Vec3.
func V3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// V4 is a convenience function to create a Vec4.
func V4(x, y, z, w float32) Vec4 {
	return Vec4{x, y, z, w}
}

// Add returns the sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{v[0] + w[0], v[1] + w[1]}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{v[0] - w[0], v[1] - w[1]}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{v[0] * s, v[1] * s}
}

// Cross returns the 2D cross product (scalar).
// This is the z-component of the 3D cross product with z=0.
func (v Vec2) Cross(w Vec2) float32 {
	return v[0]*w[1] - w[0]*v[1]
}

// Extend appends a z component.
func (v Vec2) Extend(z float32) Vec3 {
	return Vec3{v[0], v[1], z}
}

// Add returns the sum of two vectors.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v[0] + w[0], v[1] + w[1], v[2] + w[2]}
}

// Sub returns the difference of two vectors.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v[0] - w[0], v[1] - w[1], v[2] - w[2]}
}

// Mul returns the vector scaled by a scalar.
func (v Vec3) Mul(s float32) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Div returns the vector divided by a scalar.
// Division by zero follows IEEE 754 and yields infinities or NaN.
func (v Vec3) Div(s float32) Vec3 {
	return Vec3{v[0] / s, v[1] / s, v[2] / s}
}

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(w Vec3) float32 {
	return v[0]*w[0] + v[1]*w[1] + v[2]*w[2]
}

// Cross returns the cross product of two vectors.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v[1]*w[2] - v[2]*w[1],
		v[2]*w[0] - v[0]*w[2],
		v[0]*w[1] - v[1]*w[0],
	}
}

// Length returns the length (magnitude) of the vector.
func (v Vec3) Length() float32 {
	return float32(math.Sqrt(float64(v.Dot(v))))
}

// Normalize returns a unit vector in the same direction.
// Returns zero vector if the original vector has zero length.
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		return Vec3{}
	}
	return v.Div(length)
}

// XY drops the z component.
func (v Vec3) XY() Vec2 {
	return Vec2{v[0], v[1]}
}

// Extend appends a w component, e.g. Extend(1) for a point and Extend(0)
// for a direction.
func (v Vec3) Extend(w float32) Vec4 {
	return Vec4{v[0], v[1], v[2], w}
}

// XYZ drops the w component.
func (v Vec4) XYZ() Vec3 {
	return Vec3{v[0], v[1], v[2]}
}

// Project performs the perspective divide, returning xyz/w.
// No guard against w == 0: the result then holds infinities or NaN.
func (v Vec4) Project() Vec3 {
	return v.XYZ().Div(v[3])
}

// Add returns the sum of two vectors.
func (v Vec4) Add(w Vec4) Vec4 {
	return Vec4{v[0] + w[0], v[1] + w[1], v[2] + w[2], v[3] + w[3]}
}

// Mul returns the vector scaled by a scalar.
func (v Vec4) Mul(s float32) Vec4 {
	return Vec4{v[0] * s, v[1] * s, v[2] * s, v[3] * s}
}

// Package shaders provides stock trirast pipelines.
//
// Flat draws screen-space triangles in one color. Gouraud, Normals and
// Barycentric transform world-space vertices by a view-projection matrix
// (see package camera) and differ in the attributes they carry to the
// fragment stage.
//
// All pipelines are plain values with pure Fragment methods, so they are
// safe to use with trirast.WithWorkerPool.
package shaders

import "github.com/gogpu/trirast"

// Flat draws triangles given directly in screen coordinates, where (0, 0)
// is the top-left and (1, 1) the bottom-right corner of the viewport.
type Flat struct {
	Color trirast.Color
}

// Vertex places p at depth 0 with w = 1.
func (f Flat) Vertex(p trirast.Vec2) (trirast.Vec4, trirast.Unit) {
	return p.Extend(0).Extend(1), trirast.Unit{}
}

// Fragment returns the flat color.
func (f Flat) Fragment(trirast.Unit) trirast.Color {
	return f.Color
}

// ColorVertex is a world-space position with an RGB color.
type ColorVertex struct {
	Position trirast.Vec3
	Color    trirast.Vec3
}

// Gouraud transforms positions and interpolates per-vertex colors.
type Gouraud struct {
	ViewProjection trirast.Mat4
}

// Vertex implements trirast.Pipeline.
func (g Gouraud) Vertex(v ColorVertex) (trirast.Vec4, trirast.Vec3) {
	return g.ViewProjection.TransformPoint(v.Position), v.Color
}

// Fragment returns the interpolated color, opaque.
func (g Gouraud) Fragment(c trirast.Vec3) trirast.Color {
	return trirast.ColorFromVec(c.Extend(1))
}

// NormalVertex is a world-space position with a surface normal.
type NormalVertex struct {
	Position trirast.Vec3
	Normal   trirast.Vec3
}

// Normals visualises surface normals: each axis maps from [-1, 1] to a
// color channel in [0, 1].
type Normals struct {
	ViewProjection trirast.Mat4
}

// Vertex implements trirast.Pipeline.
func (n Normals) Vertex(v NormalVertex) (trirast.Vec4, trirast.Vec3) {
	return n.ViewProjection.TransformPoint(v.Position), v.Normal
}

// Fragment renormalizes the interpolated normal and maps it to RGB.
func (n Normals) Fragment(normal trirast.Vec3) trirast.Color {
	c := normal.Normalize().Mul(0.5).Add(trirast.V3(0.5, 0.5, 0.5))
	return trirast.RGB(c[0], c[1], c[2])
}

// FaceNormal returns the unit normal of the triangle (a, b, c) with
// counter-clockwise winding.
func FaceNormal(a, b, c trirast.Vec3) trirast.Vec3 {
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}

// CornerVertex is a world-space position tagged with its corner index
// (0, 1 or 2) within the triangle.
type CornerVertex struct {
	Position trirast.Vec3
	Corner   int
}

// Corners tags the three positions of a triangle with their indices.
func Corners(a, b, c trirast.Vec3) [3]CornerVertex {
	return [3]CornerVertex{{a, 0}, {b, 1}, {c, 2}}
}

// Barycentric paints each pixel with its barycentric weights as RGB and
// fades distant fragments into a fog color. The attribute bundle pairs the one-hot corner
// vector with the clip-space w of the vertex.
type Barycentric struct {
	ViewProjection trirast.Mat4

	// Fog blends the color toward FogColor by 1 - 1/(1 + Fog*w).
	// Zero disables it.
	Fog float32

	// FogColor is the color distant fragments fade to. Its alpha is
	// ignored; the zero value fades to black.
	FogColor trirast.Color
}

// Vertex implements trirast.Pipeline.
func (b Barycentric) Vertex(v CornerVertex) (trirast.Vec4, trirast.Pair[trirast.Vec3, trirast.Scalar]) {
	clip := b.ViewProjection.TransformPoint(v.Position)

	var weight trirast.Vec3
	if v.Corner >= 0 && v.Corner < 3 {
		weight[v.Corner] = 1
	}
	return clip, trirast.MakePair(weight, trirast.Scalar(clip[3]))
}

// Fragment implements trirast.Pipeline.
func (b Barycentric) Fragment(a trirast.Pair[trirast.Vec3, trirast.Scalar]) trirast.Color {
	c := trirast.RGB(a.First[0], a.First[1], a.First[2])
	if b.Fog > 0 {
		fog := b.FogColor
		fog.A = 1
		c = c.Lerp(fog, 1-1/(1+b.Fog*float32(a.Second)))
	}
	return c
}

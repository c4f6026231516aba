// Package trirast provides a minimal software triangle rasterizer for Go.
//
// # Overview
//
// trirast turns triangles into pixels with a user-supplied shading
// pipeline. A vertex stage maps each vertex input to a clip-space position
// and an attribute bundle; the rasterizer projects the triangle, finds the
// covered pixels with barycentric coordinates, blends the attributes and
// asks the fragment stage for the color of every covered pixel.
//
// # Quick Start
//
//	import "github.com/gogpu/trirast"
//
//	type red struct{}
//
//	func (red) Vertex(p trirast.Vec2) (trirast.Vec4, trirast.Unit) {
//	    return trirast.V4(p[0], p[1], 0, 1), trirast.Unit{}
//	}
//
//	func (red) Fragment(trirast.Unit) trirast.Color { return trirast.Red }
//
//	fb := trirast.NewFramebuffer(600, 600)
//	quad := [][3]trirast.Vec2{
//	    {{0, 0}, {1, 0}, {1, 1}},
//	    {{0, 0}, {1, 1}, {0, 1}},
//	}
//	trirast.Rasterize(red{}, quad, fb.Data(), 600, 600, 600, 600)
//	fb.SavePNG("output.png")
//
// # Attributes
//
// Anything implementing [Interpolable] can travel from the vertex stage to
// the fragment stage: [Unit] for nothing, [Scalar], [Vec2], [Vec3], [Vec4],
// [Mat3], [Mat4], [Color], [Varyings] for run-time sized data, and [Pair]
// or [Triple] to combine them.
//
// # Coordinate System
//
// After the perspective divide, x and y in [0, 1] span the viewport:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Coordinates outside the unit square are clamped when computing the
// bounding box, not clipped.
//
// # Rendering Rules
//
// Triangles are drawn in slice order and later triangles overwrite earlier
// ones (painter's algorithm). There is no depth buffer, no anti-aliasing,
// no blending and no perspective-correct interpolation. The inside test is
// selected with [WithCoverage].
//
// # Architecture
//
// The library is organized into:
//   - Public API: Rasterize, Pipeline, Interpolable, Color, Vec/Mat, Framebuffer
//   - Internal: parallel (worker pool for row bands), viewer (camera state for triview)
//   - Peripheral: shaders, camera, scene, integration/gpuview, cmd/
package trirast

// Version is the current version of the library.
const Version = "0.1.0"

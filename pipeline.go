package trirast

// Pipeline is the user-supplied shading program run by [Rasterize].
//
// In is the per-vertex input record (position, normal, UV, ...). A is the
// attribute bundle carried from the vertex stage to the fragment stage and
// blended across the triangle with barycentric weights.
//
// Rasterize takes the pipeline as a type parameter, so both stages are
// statically bound in the per-pixel loop.
//
// Example:
//
//	type flat struct{}
//
//	func (flat) Vertex(p trirast.Vec2) (trirast.Vec4, trirast.Unit) {
//	    return trirast.V4(p[0], p[1], 0, 1), trirast.Unit{}
//	}
//
//	func (flat) Fragment(trirast.Unit) trirast.Color { return trirast.Red }
type Pipeline[In any, A Interpolable[A]] interface {
	// Vertex maps one vertex input to a clip-space position (x, y, z, w)
	// and its attribute bundle. It is called exactly once per vertex per
	// Rasterize call and must be deterministic.
	Vertex(in In) (Vec4, A)

	// Fragment returns the color of one covered pixel given the
	// interpolated attributes. With WithWorkerPool it is called from
	// several goroutines at once and must not mutate shared state.
	Fragment(attrs A) Color
}

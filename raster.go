package trirast

import (
	"fmt"

	"github.com/gogpu/trirast/internal/parallel"
)

// BytesPerPixel is the size of one pixel in the output buffer: R, G, B and
// one byte the rasterizer never writes.
const BytesPerPixel = 4

// Rasterize draws triangles into output.
//
// For each triangle, in order, the vertex stage runs on its three inputs,
// the clip positions are divided by w, and every pixel (i, j) inside the
// triangle's bounding box is sampled at (i/outputWidth, j/outputHeight).
// Covered pixels get the fragment color of the interpolated attributes.
// Later triangles overwrite earlier ones; there is no depth test.
//
// Screen coordinates in [0, 1] x [0, 1] map onto the viewport. The bounding
// box is clamped to that square and scaled by the viewport size, while
// samples use the output size, so a viewport smaller than the output renders
// into its top-left corner. Nothing is clipped: off-screen parts of a
// triangle are skipped by the clamp alone.
//
// output is row-major with [BytesPerPixel] bytes per pixel and a stride of
// outputWidth*4. Only the first three bytes of a covered pixel are written;
// the fourth is left untouched. Rasterize panics before writing anything
// if outputWidth or outputHeight is not positive, if the viewport is larger
// than the output, or if output is shorter than outputWidth*outputHeight*4
// bytes.
//
// Degenerate triangles and triangles with w == 0 vertices never cause an
// error; they produce whatever pixels the arithmetic yields, usually none.
func Rasterize[P Pipeline[In, A], In any, A Interpolable[A]](
	p P,
	triangles [][3]In,
	output []byte,
	viewportWidth, viewportHeight int,
	outputWidth, outputHeight int,
	opts ...Option,
) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if outputWidth <= 0 || outputHeight <= 0 {
		panic(fmt.Sprintf("trirast: invalid output size %dx%d", outputWidth, outputHeight))
	}
	if viewportWidth > outputWidth || viewportHeight > outputHeight {
		panic(fmt.Sprintf("trirast: viewport %dx%d exceeds output %dx%d",
			viewportWidth, viewportHeight, outputWidth, outputHeight))
	}
	if need := outputWidth * outputHeight * BytesPerPixel; len(output) < need {
		panic(fmt.Sprintf("trirast: output buffer is %d bytes, need %d for %dx%d",
			len(output), need, outputWidth, outputHeight))
	}

	r := rasterizer[P, In, A]{
		pipeline: p,
		output:   output,
		stride:   outputWidth,
		outW:     float32(outputWidth),
		outH:     float32(outputHeight),
		rule:     o.coverage,
	}
	vw := float32(viewportWidth)
	vh := float32(viewportHeight)

	var st Stats
	for t := range triangles {
		tri := &triangles[t]
		st.Triangles++

		ca, fi0 := p.Vertex(tri[0])
		cb, fi1 := p.Vertex(tri[1])
		cc, fi2 := p.Vertex(tri[2])

		a := ca.Project()
		b := cb.Project()
		c := cc.Project()

		// Bounding box in pixels, clamped to the unit square first
		minX := int(clamp01(min3(a[0], b[0], c[0])) * vw)
		maxX := int(clamp01(max3(a[0], b[0], c[0])) * vw)
		minY := int(clamp01(min3(a[1], b[1], c[1])) * vh)
		maxY := int(clamp01(max3(a[1], b[1], c[1])) * vh)
		if minX >= maxX || minY >= maxY {
			st.Culled++
			continue
		}

		setup := newTriangleSetup(a.XY(), b.XY(), c.XY())
		if setup.degenerate() {
			st.Degenerate++
			continue
		}

		span := triangleSpan[A]{
			setup: setup,
			fi:    [3]A{fi0, fi1, fi2},
			minX:  minX,
			maxX:  maxX,
		}
		if o.pool == nil {
			st.Fragments += r.shadeRows(&span, minY, maxY)
			continue
		}
		st.Fragments += r.shadeBands(o.pool.pool, &span, minY, maxY)
	}

	if o.stats != nil {
		*o.stats = st
	}
	logStats(&st, o.coverage, o.pool != nil)
}

// rasterizer carries the per-call state of Rasterize into the pixel loops.
type rasterizer[P Pipeline[In, A], In any, A Interpolable[A]] struct {
	pipeline P
	output   []byte
	stride   int // in pixels
	outW     float32
	outH     float32
	rule     CoverageRule
}

// triangleSpan is one projected triangle ready for shading.
type triangleSpan[A any] struct {
	setup      triangleSetup
	fi         [3]A
	minX, maxX int
}

// shadeRows shades rows [y0, y1) of a triangle's bounding box and returns
// the number of pixels written.
func (r *rasterizer[P, In, A]) shadeRows(s *triangleSpan[A], y0, y1 int) int {
	written := 0
	for j := y0; j < y1; j++ {
		y := float32(j) / r.outH
		row := j * r.stride
		for i := s.minX; i < s.maxX; i++ {
			x := float32(i) / r.outW

			u, v, w := s.setup.weights(x, y)
			if !r.rule.Covers(u, v, w) {
				continue
			}

			attrs := s.fi[0].Interpolate(s.fi[1], s.fi[2], u, v, w)
			col := r.pipeline.Fragment(attrs)

			off := (row + i) * BytesPerPixel
			px := r.output[off : off+3]
			px[0] = ChannelByte(col.R)
			px[1] = ChannelByte(col.G)
			px[2] = ChannelByte(col.B)
			written++
		}
	}
	return written
}

// shadeBands splits [y0, y1) into row bands and shades them on pool.
// It returns after every band is done.
func (r *rasterizer[P, In, A]) shadeBands(pool *parallel.WorkerPool, s *triangleSpan[A], y0, y1 int) int {
	bands := parallel.SplitRows(y0, y1, pool.Workers(), minBandRows)
	if len(bands) <= 1 {
		return r.shadeRows(s, y0, y1)
	}
	return pool.Shade(bands, func(b parallel.Band) int {
		return r.shadeRows(s, b.Y0, b.Y1)
	})
}

// clamp01 restricts x to [0, 1]. NaN maps to 0.
func clamp01(x float32) float32 {
	if x > 1 {
		return 1
	}
	if x >= 0 {
		return x
	}
	return 0
}

// min3 returns the smallest of three values, ignoring NaN operands
// unless all three are NaN.
func min3(a, b, c float32) float32 {
	return minNum(a, minNum(b, c))
}

// max3 returns the largest of three values, ignoring NaN operands
// unless all three are NaN.
func max3(a, b, c float32) float32 {
	return maxNum(a, maxNum(b, c))
}

func minNum(a, b float32) float32 {
	if a != a || b < a {
		return b
	}
	return a
}

func maxNum(a, b float32) float32 {
	if a != a || b > a {
		return b
	}
	return a
}

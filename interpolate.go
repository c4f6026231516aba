package trirast

// Interpolable is implemented by attribute types that can be blended across
// a triangle. For a receiver a,
//
//	a.Interpolate(b, c, x, y, z)
//
// returns a*x + b*y + c*z, applied component-wise. The result must be
// affine in the weights: when x+y+z == 1 and a, b and c are equal, the
// result equals a.
//
// Types that carry no data, like [Unit], return their zero value.
type Interpolable[T any] interface {
	Interpolate(b, c T, x, y, z float32) T
}

// Interpolate combines three attribute values with three weights.
// It is the function form of [Interpolable.Interpolate].
func Interpolate[T Interpolable[T]](a, b, c T, x, y, z float32) T {
	return a.Interpolate(b, c, x, y, z)
}

// lerp3 is the scalar rule every numeric implementation is built from.
func lerp3(a, b, c, x, y, z float32) float32 {
	return a*x + b*y + c*z
}

// Unit is the attribute bundle of pipelines that pass nothing from the
// vertex stage to the fragment stage.
type Unit struct{}

// Interpolate returns Unit{}.
func (Unit) Interpolate(_, _ Unit, _, _, _ float32) Unit {
	return Unit{}
}

// Scalar is a single interpolable float.
type Scalar float32

// Interpolate implements [Interpolable].
func (a Scalar) Interpolate(b, c Scalar, x, y, z float32) Scalar {
	return Scalar(lerp3(float32(a), float32(b), float32(c), x, y, z))
}

// Interpolate implements [Interpolable].
func (a Vec2) Interpolate(b, c Vec2, x, y, z float32) Vec2 {
	var out Vec2
	for i := range a {
		out[i] = lerp3(a[i], b[i], c[i], x, y, z)
	}
	return out
}

// Interpolate implements [Interpolable].
func (a Vec3) Interpolate(b, c Vec3, x, y, z float32) Vec3 {
	var out Vec3
	for i := range a {
		out[i] = lerp3(a[i], b[i], c[i], x, y, z)
	}
	return out
}

// Interpolate implements [Interpolable].
func (a Vec4) Interpolate(b, c Vec4, x, y, z float32) Vec4 {
	var out Vec4
	for i := range a {
		out[i] = lerp3(a[i], b[i], c[i], x, y, z)
	}
	return out
}

// Interpolate implements [Interpolable].
func (a Mat3) Interpolate(b, c Mat3, x, y, z float32) Mat3 {
	var out Mat3
	for i := range a {
		out[i] = lerp3(a[i], b[i], c[i], x, y, z)
	}
	return out
}

// Interpolate implements [Interpolable].
func (a Mat4) Interpolate(b, c Mat4, x, y, z float32) Mat4 {
	var out Mat4
	for i := range a {
		out[i] = lerp3(a[i], b[i], c[i], x, y, z)
	}
	return out
}

// Interpolate implements [Interpolable] over the R, G, B and A channels.
func (a Color) Interpolate(b, c Color, x, y, z float32) Color {
	return Color{
		R: lerp3(a.R, b.R, c.R, x, y, z),
		G: lerp3(a.G, b.G, c.G, x, y, z),
		B: lerp3(a.B, b.B, c.B, x, y, z),
		A: lerp3(a.A, b.A, c.A, x, y, z),
	}
}

// Varyings is an interpolable vector of any length, for attribute layouts
// only known at run time. All three values must have the same length.
//
// Unlike the fixed-size types, every call allocates the result slice; prefer
// [Vec4], [Mat4] or [Pair] in pipelines that care about throughput.
type Varyings []float32

// Interpolate implements [Interpolable]. It panics if the lengths differ.
func (a Varyings) Interpolate(b, c Varyings, x, y, z float32) Varyings {
	if len(b) != len(a) || len(c) != len(a) {
		panic("trirast: Varyings length mismatch")
	}
	out := make(Varyings, len(a))
	for i := range a {
		out[i] = lerp3(a[i], b[i], c[i], x, y, z)
	}
	return out
}

// Pair bundles two interpolable attributes. Pairs nest, so any product of
// interpolable components is itself interpolable.
type Pair[A Interpolable[A], B Interpolable[B]] struct {
	First  A
	Second B
}

// MakePair is a convenience function to create a Pair.
func MakePair[A Interpolable[A], B Interpolable[B]](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// Interpolate implements [Interpolable] field by field.
func (p Pair[A, B]) Interpolate(b, c Pair[A, B], x, y, z float32) Pair[A, B] {
	return Pair[A, B]{
		First:  p.First.Interpolate(b.First, c.First, x, y, z),
		Second: p.Second.Interpolate(b.Second, c.Second, x, y, z),
	}
}

// Triple bundles three interpolable attributes.
type Triple[A Interpolable[A], B Interpolable[B], C Interpolable[C]] struct {
	First  A
	Second B
	Third  C
}

// Interpolate implements [Interpolable] field by field.
func (t Triple[A, B, C]) Interpolate(b, c Triple[A, B, C], x, y, z float32) Triple[A, B, C] {
	return Triple[A, B, C]{
		First:  t.First.Interpolate(b.First, c.First, x, y, z),
		Second: t.Second.Interpolate(b.Second, c.Second, x, y, z),
		Third:  t.Third.Interpolate(b.Third, c.Third, x, y, z),
	}
}

package trirast

import (
	"math"
	"testing"

	"golang.org/x/image/math/f32"
)

func approx(a, b, eps float32) bool {
	return float32(math.Abs(float64(a-b))) <= eps
}

func TestVec_InteropWithF32(t *testing.T) {
	v := f32.Vec3{1, 2, 3}
	if got := Vec3(v); got != V3(1, 2, 3) {
		t.Errorf("Vec3(f32.Vec3) = %v, want (1, 2, 3)", got)
	}
	if got := f32.Vec4(V4(1, 2, 3, 4)); got != (f32.Vec4{1, 2, 3, 4}) {
		t.Errorf("f32.Vec4(V4) = %v", got)
	}
}

func TestVec2_Arithmetic(t *testing.T) {
	tests := []struct {
		name   string
		got    Vec2
		expect Vec2
	}{
		{"add", V2(1, 2).Add(V2(3, 4)), V2(4, 6)},
		{"add negative", V2(-1, -2).Add(V2(-3, -4)), V2(-4, -6)},
		{"sub", V2(5, 7).Sub(V2(2, 3)), V2(3, 4)},
		{"mul", V2(1.5, -2).Mul(2), V2(3, -4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expect {
				t.Errorf("got %v, want %v", tt.got, tt.expect)
			}
		})
	}
}

func TestVec2_Cross(t *testing.T) {
	tests := []struct {
		name   string
		v, w   Vec2
		expect float32
	}{
		{"unit x cross unit y", V2(1, 0), V2(0, 1), 1},
		{"unit y cross unit x", V2(0, 1), V2(1, 0), -1},
		{"parallel", V2(2, 2), V2(3, 3), 0},
		{"general", V2(3, 4), V2(1, 2), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Cross(tt.w); got != tt.expect {
				t.Errorf("%v.Cross(%v) = %v, want %v", tt.v, tt.w, got, tt.expect)
			}
		})
	}
}

func TestVec3_Arithmetic(t *testing.T) {
	tests := []struct {
		name   string
		got    Vec3
		expect Vec3
	}{
		{"add", V3(1, 2, 3).Add(V3(4, 5, 6)), V3(5, 7, 9)},
		{"sub", V3(4, 5, 6).Sub(V3(1, 2, 3)), V3(3, 3, 3)},
		{"mul", V3(1, -2, 0.5).Mul(4), V3(4, -8, 2)},
		{"div", V3(4, -8, 2).Div(4), V3(1, -2, 0.5)},
		{"cross x y", V3(1, 0, 0).Cross(V3(0, 1, 0)), V3(0, 0, 1)},
		{"cross y z", V3(0, 1, 0).Cross(V3(0, 0, 1)), V3(1, 0, 0)},
		{"normalize", V3(0, 3, 4).Normalize(), V3(0, 0.6, 0.8)},
		{"normalize zero", V3(0, 0, 0).Normalize(), V3(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := range 3 {
				if !approx(tt.got[i], tt.expect[i], 1e-6) {
					t.Errorf("got %v, want %v", tt.got, tt.expect)
					break
				}
			}
		})
	}
}

func TestVec3_DotLength(t *testing.T) {
	if got := V3(1, 2, 3).Dot(V3(4, -5, 6)); got != 12 {
		t.Errorf("Dot = %v, want 12", got)
	}
	if got := V3(2, 3, 6).Length(); got != 7 {
		t.Errorf("Length = %v, want 7", got)
	}
}

func TestVec_Swizzles(t *testing.T) {
	v := V4(1, 2, 3, 4)
	if got := v.XYZ(); got != V3(1, 2, 3) {
		t.Errorf("XYZ() = %v", got)
	}
	if got := v.XYZ().XY(); got != V2(1, 2) {
		t.Errorf("XY() = %v", got)
	}
	if got := V2(1, 2).Extend(3).Extend(4); got != v {
		t.Errorf("Extend chain = %v, want %v", got, v)
	}
}

func TestVec4_Project(t *testing.T) {
	tests := []struct {
		name   string
		v      Vec4
		expect Vec3
	}{
		{"w one", V4(0.25, 0.5, 0.75, 1), V3(0.25, 0.5, 0.75)},
		{"w two", V4(1, 2, 4, 2), V3(0.5, 1, 2)},
		{"negative w", V4(1, -1, 2, -2), V3(-0.5, 0.5, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Project(); got != tt.expect {
				t.Errorf("%v.Project() = %v, want %v", tt.v, got, tt.expect)
			}
		})
	}
}

func TestVec4_ProjectZeroW(t *testing.T) {
	got := V4(1, -1, 0, 0).Project()

	if !math.IsInf(float64(got[0]), 1) {
		t.Errorf("x = %v, want +Inf", got[0])
	}
	if !math.IsInf(float64(got[1]), -1) {
		t.Errorf("y = %v, want -Inf", got[1])
	}
	if !math.IsNaN(float64(got[2])) {
		t.Errorf("z = %v, want NaN", got[2])
	}
}

func TestVec4_AddMul(t *testing.T) {
	got := V4(1, 2, 3, 4).Add(V4(1, 1, 1, 1)).Mul(0.5)
	if want := V4(1, 1.5, 2, 2.5); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

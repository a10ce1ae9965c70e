package core

import (
	"math"
	"testing"
)

func TestVec3_Operations(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	tests := []struct {
		name     string
		result   Vec3
		expected Vec3
	}{
		{"add", a.Add(b), NewVec3(5, 7, 9)},
		{"subtract", b.Subtract(a), NewVec3(3, 3, 3)},
		{"multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"divide", b.Divide(2), NewVec3(2, 2.5, 3)},
		{"multiply vec", a.MultiplyVec(b), NewVec3(4, 10, 18)},
		{"negate", a.Negate(), NewVec3(-1, -2, -3)},
		{"cross", NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)), NewVec3(0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.result.Subtract(tt.expected).Length() > 1e-12 {
				t.Errorf("Expected %v, got %v", tt.expected, tt.result)
			}
		})
	}

	if a.Dot(b) != 32 {
		t.Errorf("Expected dot 32, got %f", a.Dot(b))
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 4, 0).Normalize()
	if math.Abs(v.Length()-1) > 1e-12 {
		t.Errorf("Expected unit length, got %f", v.Length())
	}

	zero := NewVec3(0, 0, 0).Normalize()
	if zero != (Vec3{}) {
		t.Errorf("Expected zero vector to stay zero, got %v", zero)
	}
}

func TestVec3_Axis(t *testing.T) {
	v := NewVec3(7, 8, 9)
	for axis, expected := range []float64{7, 8, 9} {
		if v.Axis(axis) != expected {
			t.Errorf("Axis %d: expected %f, got %f", axis, expected, v.Axis(axis))
		}
	}
}

func TestReflectAndRefract(t *testing.T) {
	normal := NewVec3(0, 1, 0)
	in := NewVec3(1, -1, 0).Normalize()

	reflected := Reflect(in, normal)
	expected := NewVec3(1, 1, 0).Normalize()
	if reflected.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected reflection %v, got %v", expected, reflected)
	}

	// Matching indices: refraction leaves the direction unchanged
	refracted := Refract(in, normal, 1.0)
	if refracted.Subtract(in).Length() > 1e-9 {
		t.Errorf("Expected unchanged direction %v, got %v", in, refracted)
	}
}

func TestVec3_IsFinite(t *testing.T) {
	if !NewVec3(1, 2, 3).IsFinite() {
		t.Error("Expected finite vector")
	}
	if NewVec3(math.NaN(), 0, 0).IsFinite() {
		t.Error("Expected NaN vector to be non-finite")
	}
	if NewVec3(0, math.Inf(1), 0).IsFinite() {
		t.Error("Expected Inf vector to be non-finite")
	}
}

func TestONB_Orthonormal(t *testing.T) {
	normals := []Vec3{
		NewVec3(0, 0, 1),
		NewVec3(1, 0, 0),
		NewVec3(0.3, -0.8, 0.2),
		NewVec3(-5, 2, 7),
	}

	for _, n := range normals {
		b := NewONB(n)
		if math.Abs(b.U.Dot(b.V)) > 1e-9 || math.Abs(b.U.Dot(b.W)) > 1e-9 || math.Abs(b.V.Dot(b.W)) > 1e-9 {
			t.Errorf("Basis for %v is not orthogonal: %+v", n, b)
		}
		if b.W.Subtract(n.Normalize()).Length() > 1e-9 {
			t.Errorf("Expected W axis %v, got %v", n.Normalize(), b.W)
		}
		local := b.Local(NewVec3(0, 0, 1))
		if local.Subtract(b.W).Length() > 1e-9 {
			t.Errorf("Local(0,0,1) should map to W, got %v", local)
		}
	}
}

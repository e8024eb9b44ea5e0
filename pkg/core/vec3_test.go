package core

import (
	"math"
	"math/rand"
	"testing"
)

const tolerance = 1e-9

func vecNear(a, b Vec3, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol && math.Abs(a.Z-b.Z) <= tol
}

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	tests := []struct {
		name     string
		got      Vec3
		expected Vec3
	}{
		{"Add", a.Add(b), NewVec3(5, -3, 9)},
		{"Subtract", a.Subtract(b), NewVec3(-3, 7, -3)},
		{"Negate", a.Negate(), NewVec3(-1, -2, -3)},
		{"MultiplyVec", a.MultiplyVec(b), NewVec3(4, -10, 18)},
		{"Multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"Divide", a.Divide(2), NewVec3(0.5, 1, 1.5)},
		{"Divide by integer", b.Divide(float64(2)), NewVec3(2, -2.5, 3)},
		{"Cross", NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)), NewVec3(0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}

	if d := a.Dot(b); d != 12 {
		t.Errorf("Expected dot 12, got %f", d)
	}
	if l := NewVec3(3, 4, 0).Length(); l != 5 {
		t.Errorf("Expected length 5, got %f", l)
	}
	if l := NewVec3(3, 4, 0).LengthSquared(); l != 25 {
		t.Errorf("Expected length squared 25, got %f", l)
	}
}

func TestVec3_NormalizeHasUnitLength(t *testing.T) {
	random := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		v := NewVec3(random.NormFloat64()*100, random.NormFloat64(), random.NormFloat64()*1e-3)
		if v.LengthSquared() == 0 {
			continue
		}
		if l := v.Normalize().Length(); math.Abs(l-1) > tolerance {
			t.Fatalf("Normalize(%v) has length %f", v, l)
		}
	}
}

func TestVec3_NearZero(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec3
		expected bool
	}{
		{"zero", NewVec3(0, 0, 0), true},
		{"tiny", NewVec3(1e-9, -1e-9, 5e-9), true},
		{"one component large", NewVec3(1e-9, 1e-7, 0), false},
		{"unit", NewVec3(1, 0, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.NearZero(); got != tt.expected {
				t.Errorf("NearZero(%v) = %t, expected %t", tt.v, got, tt.expected)
			}
		})
	}
}

func TestVec3_Reflect(t *testing.T) {
	random := rand.New(rand.NewSource(11))
	for i := 0; i < 200; i++ {
		v := NewVec3(random.NormFloat64(), random.NormFloat64(), random.NormFloat64())
		n := NewVec3(random.NormFloat64(), random.NormFloat64(), random.NormFloat64()).Normalize()
		r := v.Reflect(n)

		if math.Abs(r.Length()-v.Length()) > tolerance {
			t.Fatalf("Reflect changed length: %f -> %f", v.Length(), r.Length())
		}
		if math.Abs(r.Dot(n)+v.Dot(n)) > tolerance {
			t.Fatalf("Expected dot(r,n) = -dot(v,n), got %f and %f", r.Dot(n), v.Dot(n))
		}
	}

	// 45 degree mirror
	got := NewVec3(1, -1, 0).Reflect(NewVec3(0, 1, 0))
	if !vecNear(got, NewVec3(1, 1, 0), tolerance) {
		t.Errorf("Expected (1,1,0), got %v", got)
	}
}

func TestVec3_Refract(t *testing.T) {
	normal := NewVec3(0, 1, 0)

	t.Run("unit ratio passes straight through", func(t *testing.T) {
		in := NewVec3(1, -2, 0.5).Normalize()
		got := in.Refract(normal, 1.0)
		if !vecNear(got, in, 1e-12) {
			t.Errorf("Expected %v, got %v", in, got)
		}
	})

	t.Run("normal incidence is unbent", func(t *testing.T) {
		in := NewVec3(0, -1, 0)
		got := in.Refract(normal, 1.0/1.5)
		if !vecNear(got, in, 1e-12) {
			t.Errorf("Expected %v, got %v", in, got)
		}
	})

	t.Run("obeys Snell's law", func(t *testing.T) {
		eta := 1.0 / 1.5
		in := NewVec3(1, -1, 0).Normalize()
		got := in.Refract(normal, eta)

		sinIn := math.Sqrt(1 - math.Pow(in.Dot(normal), 2))
		sinOut := math.Sqrt(1 - math.Pow(got.Normalize().Dot(normal), 2))
		if math.Abs(sinOut-eta*sinIn) > 1e-9 {
			t.Errorf("Expected sin(out)=%f, got %f", eta*sinIn, sinOut)
		}
		if math.Abs(got.Length()-1) > 1e-9 {
			t.Errorf("Expected unit refracted vector, got length %f", got.Length())
		}
		if got.Y >= 0 {
			t.Errorf("Refracted ray should continue below the surface, got %v", got)
		}
	})
}

func TestRay_NormalizesDirection(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, -10))
	if !ray.Direction.Equals(NewVec3(0, 0, -1)) {
		t.Errorf("Expected unit direction, got %v", ray.Direction)
	}

	at := ray.At(4)
	if !vecNear(at, NewVec3(1, 2, -1), tolerance) {
		t.Errorf("Expected (1,2,-1), got %v", at)
	}
}

func TestVec3_ClampAndFinite(t *testing.T) {
	got := NewVec3(-0.5, 0.5, 1.5).Clamp(0, 1)
	if !got.Equals(NewVec3(0, 0.5, 1)) {
		t.Errorf("Expected (0,0.5,1), got %v", got)
	}
	if NewVec3(math.NaN(), 0, 0).IsFinite() {
		t.Error("NaN vector should not be finite")
	}
	if !NewVec3(1, 2, 3).IsFinite() {
		t.Error("Expected finite vector")
	}
}

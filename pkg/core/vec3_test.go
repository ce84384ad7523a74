package core

import (
	"math"
	"testing"
)

func vecNear(a, b Vec3, tolerance float64) bool {
	return a.Subtract(b).Length() <= tolerance
}

func TestVec3_Reflect(t *testing.T) {
	tests := []struct {
		name      string
		direction Vec3
		normal    Vec3
		expected  Vec3
	}{
		{
			name:      "Normal incidence reverses direction",
			direction: NewVec3(0, 0, -1),
			normal:    NewVec3(0, 0, 1),
			expected:  NewVec3(0, 0, 1),
		},
		{
			name:      "45 degree bounce off floor",
			direction: NewVec3(1, -1, 0),
			normal:    NewVec3(0, 1, 0),
			expected:  NewVec3(1, 1, 0),
		},
		{
			name:      "Grazing direction is unchanged",
			direction: NewVec3(1, 0, 0),
			normal:    NewVec3(0, 1, 0),
			expected:  NewVec3(1, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.direction.Reflect(tt.normal)
			if result != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestVec3_CrossAndDot(t *testing.T) {
	x := NewVec3(1, 0, 0)
	y := NewVec3(0, 1, 0)

	if z := x.Cross(y); z != NewVec3(0, 0, 1) {
		t.Errorf("Expected x × y = z, got %v", z)
	}
	if d := x.Dot(y); d != 0 {
		t.Errorf("Expected orthogonal dot product 0, got %f", d)
	}
	if d := NewVec3(1, 2, 3).Dot(NewVec3(4, 5, 6)); d != 32 {
		t.Errorf("Expected dot product 32, got %f", d)
	}
}

func TestVec3_NormalizeAndToLength(t *testing.T) {
	v := NewVec3(3, 4, 0)

	if n := v.Normalize(); math.Abs(n.Length()-1) > 1e-12 {
		t.Errorf("Expected unit length, got %f", n.Length())
	}
	if v.LengthSquared() != 25 {
		t.Errorf("Expected squared length 25, got %f", v.LengthSquared())
	}

	scaled := v.ToLength(10)
	if !vecNear(scaled, NewVec3(6, 8, 0), 1e-12) {
		t.Errorf("Expected (6,8,0), got %v", scaled)
	}

	if zero := NewVec3(0, 0, 0).Normalize(); !zero.IsZero() {
		t.Errorf("Expected zero vector to stay zero, got %v", zero)
	}
}

func TestVec3_ProjectOntoPlane(t *testing.T) {
	plane := NewPlaneEq(NewVec3(0, 0, 2), 5)
	projected := NewVec3(1, 2, 3).ProjectOntoPlane(plane)

	if !vecNear(projected, NewVec3(1, 2, 0), 1e-12) {
		t.Errorf("Expected (1,2,0), got %v", projected)
	}
	if d := projected.Dot(plane.Normal); math.Abs(d) > 1e-12 {
		t.Errorf("Projection should be perpendicular to the normal, dot=%f", d)
	}
}

func TestVec3_CosAngle(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec3
		expected float64
	}{
		{"Same direction", NewVec3(2, 0, 0), NewVec3(5, 0, 0), 1},
		{"Opposite direction", NewVec3(0, 1, 0), NewVec3(0, -3, 0), -1},
		{"Right angle", NewVec3(1, 0, 0), NewVec3(0, 0, 7), 0},
		{"Zero operand", NewVec3(0, 0, 0), NewVec3(1, 0, 0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.CosAngle(tt.b); math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("Expected %f, got %f", tt.expected, got)
			}
		})
	}
}

func TestVec3_Perpendicular(t *testing.T) {
	inputs := []Vec3{
		NewVec3(1, 0, 0),
		NewVec3(0, 1, 0),
		NewVec3(0, 0, -1),
		NewVec3(0.05, 1, 0),
		NewVec3(3, -2, 7),
	}

	for _, v := range inputs {
		p := v.Perpendicular()
		if math.Abs(p.Length()-1) > 1e-12 {
			t.Errorf("Perpendicular of %v is not unit length: %v", v, p)
		}
		if math.Abs(p.Dot(v)) > 1e-9 {
			t.Errorf("Perpendicular of %v is not orthogonal: %v", v, p)
		}
	}
}

func TestRay_AtAndAdvance(t *testing.T) {
	ray := NewRay(NewVec3(1, 1, 1), NewVec3(0, 0, -4))

	if p := ray.At(0.5); p != NewVec3(1, 1, -1) {
		t.Errorf("Expected (1,1,-1), got %v", p)
	}

	advanced := ray.Advance(0.005)
	if !vecNear(advanced.Origin, NewVec3(1, 1, 0.995), 1e-12) {
		t.Errorf("Expected origin moved by epsilon, got %v", advanced.Origin)
	}
	if advanced.Direction != ray.Direction {
		t.Errorf("Advance must keep the direction, got %v", advanced.Direction)
	}
	if ray.Origin != NewVec3(1, 1, 1) {
		t.Errorf("Advance must not modify the original ray")
	}

	to := NewRayTo(NewVec3(0, 0, 0), NewVec3(2, 0, 0))
	if to.At(1) != NewVec3(2, 0, 0) {
		t.Errorf("NewRayTo should reach the target at t=1, got %v", to.At(1))
	}
}

package geometry

import (
	"math"
	"testing"

	"github.com/eternalStudent/RayTracer/pkg/core"
)

func TestPlane_Intersect_BasicIntersection(t *testing.T) {
	// Horizontal plane at y=0
	plane := NewPlane(core.NewVec3(0, 1, 0), 0, testMaterial)
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	dist, isHit := plane.Intersect(ray)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(dist-1.0) > 1e-9 {
		t.Errorf("Expected t=1, got t=%f", dist)
	}
	if p := ray.At(dist); p.Subtract(core.NewVec3(0, 0, 0)).Length() > 1e-9 {
		t.Errorf("Expected hit point at origin, got %v", p)
	}
}

func TestPlane_Intersect_Offset(t *testing.T) {
	// Plane y = -2 given with an unnormalized normal
	plane := NewPlane(core.NewVec3(0, 3, 0), -6, testMaterial)
	ray := core.NewRay(core.NewVec3(4, 1, 4), core.NewVec3(0, -1, 0))

	dist, isHit := plane.Intersect(ray)
	if !isHit || math.Abs(dist-3) > 1e-9 {
		t.Errorf("Expected hit at t=3, got hit=%t t=%f", isHit, dist)
	}
}

func TestPlane_Intersect_Misses(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 1, 0), 0, testMaterial)

	tests := []struct {
		name string
		ray  core.Ray
	}{
		{"parallel ray", core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(1, 0, 0))},
		{"nearly parallel ray", core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(1, 1e-12, 0))},
		{"plane behind ray", core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, 1, 0))},
		{"origin on plane", core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, -1, 0))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if dist, isHit := plane.Intersect(tt.ray); isHit {
				t.Errorf("Expected miss, got hit at t=%f", dist)
			}
		})
	}
}

func TestPlane_FromPoints(t *testing.T) {
	plane := NewPlaneFromPoints(
		core.NewVec3(0, 2, 0),
		core.NewVec3(0, 2, 1),
		core.NewVec3(1, 2, 0),
		testMaterial,
	)

	if plane.NormalAt(core.NewVec3(9, 2, 9)) != core.NewVec3(0, 1, 0) {
		t.Errorf("Expected normal (0,1,0), got %v", plane.Normal)
	}
	if err := plane.Validate(); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}

	collinear := NewPlaneFromPoints(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(2, 0, 0), testMaterial)
	if err := collinear.Validate(); err == nil {
		t.Error("Expected collinear points to be rejected")
	}
	if _, isHit := collinear.Intersect(core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))); isHit {
		t.Error("Degenerate plane must not report hits")
	}
}

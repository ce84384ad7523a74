package geometry

import (
	"fmt"
	"math"

	"github.com/eternalStudent/RayTracer/pkg/core"
	"github.com/eternalStudent/RayTracer/pkg/material"
)

// parallelEpsilon is the smallest |N·D| treated as a crossing
const parallelEpsilon = 1e-8

// Plane represents an infinite plane N·P = Offset
type Plane struct {
	core.PlaneEq
	Material *material.Material
}

// NewPlane creates a plane from a normal and an offset along it
func NewPlane(normal core.Vec3, offset float64, material *material.Material) *Plane {
	return &Plane{
		PlaneEq:  core.NewPlaneEq(normal, offset),
		Material: material,
	}
}

// NewPlaneFromPoints creates the plane through three points
func NewPlaneFromPoints(a, b, c core.Vec3, material *material.Material) *Plane {
	return &Plane{
		PlaneEq:  core.PlaneThroughPoints(a, b, c),
		Material: material,
	}
}

// Intersect solves N·(O + tD) = Offset for t
func (p *Plane) Intersect(ray core.Ray) (float64, bool) {
	denominator := p.Normal.Dot(ray.Direction)

	// Ray is parallel to the plane, or the plane itself is degenerate
	if math.Abs(denominator) < parallelEpsilon {
		return 0, false
	}

	t := (p.Offset - p.Normal.Dot(ray.Origin)) / denominator
	if t <= 0 {
		return 0, false
	}
	return t, true
}

// NormalAt returns the plane's defining normal everywhere
func (p *Plane) NormalAt(point core.Vec3) core.Vec3 {
	return p.Normal
}

// GetMaterial returns the plane's material
func (p *Plane) GetMaterial() *material.Material {
	return p.Material
}

// Validate rejects planes built from a zero normal or collinear points
func (p *Plane) Validate() error {
	if p.IsDegenerate() {
		return fmt.Errorf("plane has no valid normal")
	}
	return nil
}

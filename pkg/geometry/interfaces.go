package geometry

import (
	"github.com/eternalStudent/RayTracer/pkg/core"
	"github.com/eternalStudent/RayTracer/pkg/material"
)

// Primitive is a surface that can be hit by rays
type Primitive interface {
	// Intersect returns the distance along the ray to the nearest forward
	// hit. Only strictly positive distances count.
	Intersect(ray core.Ray) (float64, bool)
	// NormalAt returns the unit surface normal at a point on the surface
	NormalAt(point core.Vec3) core.Vec3
	// GetMaterial returns the shared material of the primitive
	GetMaterial() *material.Material
}

// Validator is implemented by primitives that can detect degenerate parameters
type Validator interface {
	Validate() error
}

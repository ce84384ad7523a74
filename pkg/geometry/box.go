package geometry

import (
	"fmt"
	"math"

	"github.com/eternalStudent/RayTracer/pkg/core"
	"github.com/eternalStudent/RayTracer/pkg/material"
)

// Box represents an axis-aligned box spanning Min to Max
type Box struct {
	Min      core.Vec3 // Minimum corner
	Max      core.Vec3 // Maximum corner
	Material *material.Material
}

// NewBox creates a box from two opposite corners in any order
func NewBox(a, b core.Vec3, material *material.Material) *Box {
	return &Box{
		Min:      core.NewVec3(math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z)),
		Max:      core.NewVec3(math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z)),
		Material: material,
	}
}

// NewBoxFromCenter creates a box from its center and half-extents
func NewBoxFromCenter(center, halfSize core.Vec3, material *material.Material) *Box {
	return NewBox(center.Subtract(halfSize), center.Add(halfSize), material)
}

// axis returns component i of v
func axis(v core.Vec3, i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Intersect runs the slab test over the three axis pairs, keeping a running
// [tNear, tFar] interval
func (b *Box) Intersect(ray core.Ray) (float64, bool) {
	tNear := math.Inf(-1)
	tFar := math.Inf(1)

	for i := 0; i < 3; i++ {
		lo, hi := axis(b.Min, i), axis(b.Max, i)
		origin, direction := axis(ray.Origin, i), axis(ray.Direction, i)

		// Handle parallel rays (direction near zero)
		if math.Abs(direction) < parallelEpsilon {
			if origin < lo || origin > hi {
				return 0, false
			}
			continue
		}

		invDirection := 1.0 / direction
		t1 := (lo - origin) * invDirection
		t2 := (hi - origin) * invDirection
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tNear = math.Max(tNear, t1)
		tFar = math.Min(tFar, t2)
		if tNear > tFar {
			return 0, false
		}
	}

	if tNear > 0 {
		return tNear, true
	}
	if tFar > 0 {
		return tFar, true
	}
	return 0, false
}

// NormalAt returns the outward normal of the face the point lies on
func (b *Box) NormalAt(point core.Vec3) core.Vec3 {
	bestAxis := 0
	bestSign := -1.0
	bestDist := math.Inf(1)

	for i := 0; i < 3; i++ {
		p := axis(point, i)
		if d := math.Abs(p - axis(b.Min, i)); d < bestDist {
			bestAxis, bestSign, bestDist = i, -1, d
		}
		if d := math.Abs(p - axis(b.Max, i)); d < bestDist {
			bestAxis, bestSign, bestDist = i, 1, d
		}
	}

	switch bestAxis {
	case 0:
		return core.NewVec3(bestSign, 0, 0)
	case 1:
		return core.NewVec3(0, bestSign, 0)
	default:
		return core.NewVec3(0, 0, bestSign)
	}
}

// GetMaterial returns the box's material
func (b *Box) GetMaterial() *material.Material {
	return b.Material
}

// Validate rejects boxes without volume
func (b *Box) Validate() error {
	size := b.Max.Subtract(b.Min)
	if size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
		return fmt.Errorf("box must have positive extent on every axis, got %v", size)
	}
	return nil
}

package geometry

import (
	"github.com/eternalStudent/RayTracer/pkg/core"
	"github.com/eternalStudent/RayTracer/pkg/material"
)

// Hit describes where a ray struck a primitive. It belongs to a single ray
// and is never reused.
type Hit struct {
	T         float64   // Distance parameter along the ray
	Primitive Primitive // Primitive that was struck
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Surface normal at the intersection
}

// NewHit evaluates the intersection point and normal for a hit at t
func NewHit(ray core.Ray, t float64, primitive Primitive) Hit {
	point := ray.At(t)
	return Hit{
		T:         t,
		Primitive: primitive,
		Point:     point,
		Normal:    primitive.NormalAt(point),
	}
}

// Material returns the material of the struck primitive
func (h Hit) Material() *material.Material {
	return h.Primitive.GetMaterial()
}

// ClosestHit scans every primitive and returns the nearest forward hit.
// On an exact distance tie the primitive listed first wins.
func ClosestHit(primitives []Primitive, ray core.Ray) (Hit, bool) {
	var closest Primitive
	closestT := 0.0

	for _, primitive := range primitives {
		t, ok := primitive.Intersect(ray)
		if !ok {
			continue
		}
		if closest == nil || t < closestT {
			closest = primitive
			closestT = t
		}
	}

	if closest == nil {
		return Hit{}, false
	}
	return NewHit(ray, closestT, closest), true
}

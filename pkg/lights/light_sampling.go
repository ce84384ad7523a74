package lights

import (
	"github.com/eternalStudent/RayTracer/pkg/core"
	"github.com/eternalStudent/RayTracer/pkg/geometry"
)

// Epsilon is the distance before the target within which occluders are
// ignored, so the target's own surface never shadows itself
const Epsilon = 0.005

// SampleGrid returns n*n jittered points on the square of side Width centered
// on the light, lying in the plane perpendicular to the direction from the
// light toward target. Each grid cell holds one uniformly placed sample.
func (l *Light) SampleGrid(target core.Vec3, n int, sampler core.Sampler) []core.Vec3 {
	// Orthonormal basis of the plane facing the target
	facing := target.Subtract(l.Position)
	edge1 := facing.Perpendicular()
	edge2 := edge1.Cross(facing).Normalize()

	half := l.Width / 2
	corner := l.Position.Subtract(edge1.Multiply(half)).Subtract(edge2.Multiply(half))

	cells := core.StratifiedGrid(n, sampler)
	grid := make([]core.Vec3, len(cells))
	for i, cell := range cells {
		grid[i] = corner.
			Add(edge1.Multiply(l.Width * cell[0])).
			Add(edge2.Multiply(l.Width * cell[1]))
	}
	return grid
}

// Exposure returns how much light travelling along ray reaches target: the
// product of the transparencies of every primitive struck strictly before
// target. 1 means unobstructed, 0 means blocked by an opaque surface.
func Exposure(primitives []geometry.Primitive, ray core.Ray, target core.Vec3) float64 {
	length := ray.Direction.Length()
	if length == 0 {
		return 1
	}
	limit := target.Subtract(ray.Origin).Length() - Epsilon

	exposure := 1.0
	for _, primitive := range primitives {
		t, ok := primitive.Intersect(ray)
		if !ok || t*length >= limit {
			continue
		}
		exposure *= primitive.GetMaterial().Transparency
		if exposure == 0 {
			return 0
		}
	}
	return exposure
}

// IlluminationFraction averages the exposure of target over an n*n soft
// shadow grid on the light. The result lies in [0,1].
func (l *Light) IlluminationFraction(primitives []geometry.Primitive, target core.Vec3, n int, sampler core.Sampler) float64 {
	grid := l.SampleGrid(target, n, sampler)
	if len(grid) == 0 {
		return 1
	}

	sum := 0.0
	for _, point := range grid {
		sum += Exposure(primitives, core.NewRayTo(point, target), target)
	}
	return sum / float64(len(grid))
}

package core

// PlaneEq describes the plane of points P with Normal·P = Offset
type PlaneEq struct {
	Normal Vec3
	Offset float64
}

// NewPlaneEq creates a plane from a normal and offset. The normal is
// normalized and the offset rescaled so the plane itself is unchanged.
func NewPlaneEq(normal Vec3, offset float64) PlaneEq {
	length := normal.Length()
	if length == 0 {
		return PlaneEq{}
	}
	return PlaneEq{Normal: normal.Multiply(1 / length), Offset: offset / length}
}

// PlaneThroughPoint creates the plane with the given normal containing point
func PlaneThroughPoint(normal, point Vec3) PlaneEq {
	n := normal.Normalize()
	return PlaneEq{Normal: n, Offset: n.Dot(point)}
}

// PlaneThroughPoints creates the plane containing three points. The normal
// follows the right-hand rule for a -> b -> c. Collinear points give a
// plane with a zero normal, which IsDegenerate reports.
func PlaneThroughPoints(a, b, c Vec3) PlaneEq {
	normal := b.Subtract(a).Cross(c.Subtract(a))
	if normal.IsZero() {
		return PlaneEq{}
	}
	return PlaneThroughPoint(normal, a)
}

// IsDegenerate reports whether the plane has no usable normal
func (p PlaneEq) IsDegenerate() bool {
	return p.Normal.LengthSquared() < 1e-12
}

// SignedDistance returns how far point lies from the plane along its normal
func (p PlaneEq) SignedDistance(point Vec3) float64 {
	return p.Normal.Dot(point) - p.Offset
}

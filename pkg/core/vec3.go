package core

import "math"

// Vec3 represents a 3D point or direction
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// DistanceSquared returns the squared distance between two points
func (v Vec3) DistanceSquared(other Vec3) float64 {
	return v.Subtract(other).LengthSquared()
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Normalize returns a unit vector in the same direction.
// The zero vector has no direction and is returned unchanged.
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		return Vec3{0, 0, 0}
	}
	return Vec3{v.X / length, v.Y / length, v.Z / length}
}

// ToLength returns the vector rescaled to the given magnitude
func (v Vec3) ToLength(length float64) Vec3 {
	return v.Normalize().Multiply(length)
}

// IsZero reports whether all components are exactly zero
func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Reflect mirrors the vector around a unit normal: R = D - 2(D·N)N
func (v Vec3) Reflect(normal Vec3) Vec3 {
	return v.Subtract(normal.Multiply(2 * v.Dot(normal)))
}

// ProjectOntoPlane removes the component of v along the plane's normal.
// Only the plane's orientation matters; its offset is ignored.
func (v Vec3) ProjectOntoPlane(plane PlaneEq) Vec3 {
	n := plane.Normal.Normalize()
	return v.Subtract(n.Multiply(v.Dot(n)))
}

// CosAngle returns the cosine of the angle between two vectors.
// Negative results mean the vectors point away from each other; callers
// treat that as back-facing. A zero-length operand yields 0.
func (v Vec3) CosAngle(other Vec3) float64 {
	a, b := v.Length(), other.Length()
	if a == 0 || b == 0 {
		return 0
	}
	return v.Dot(other) / (a * b)
}

// Perpendicular returns a unit vector orthogonal to v
func (v Vec3) Perpendicular() Vec3 {
	// Cross with whichever axis is least aligned with v
	var axis Vec3
	if math.Abs(v.X) > 0.1*v.Length() {
		axis = NewVec3(0, 1, 0)
	} else {
		axis = NewVec3(1, 0, 0)
	}
	return axis.Cross(v).Normalize()
}

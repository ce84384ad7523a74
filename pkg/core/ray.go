package core

// Ray represents a ray with an origin and direction.
// The direction is not required to be unit length.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// NewRayTo creates a ray starting at from and pointing at to
func NewRayTo(from, to Vec3) Ray {
	return Ray{Origin: from, Direction: to.Subtract(from)}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Advance returns a ray whose origin has moved distance along the direction
func (r Ray) Advance(distance float64) Ray {
	return Ray{
		Origin:    r.Origin.Add(r.Direction.ToLength(distance)),
		Direction: r.Direction,
	}
}

package geometry

import (
	"fmt"

	"github.com/eternalStudent/RayTracer/pkg/core"
)

// CameraConfig describes a pinhole camera independently of image size
type CameraConfig struct {
	Position       core.Vec3 // Eye position
	LookAt         core.Vec3 // Point the camera faces
	Up             core.Vec3 // Approximate up direction, need not be orthogonal
	ScreenDistance float64   // Distance from eye to screen
	ScreenWidth    float64   // Screen width in world units
}

// Camera maps pixel coordinates to world-space rays
type Camera struct {
	position core.Vec3
	forward  core.Vec3 // Unit view direction
	right    core.Vec3 // Half screen width, pointing toward increasing x
	down     core.Vec3 // Half screen height, pointing toward increasing y
	width    int
	height   int
}

// NewCamera builds the camera basis for an image of the given size
func NewCamera(config CameraConfig, imageWidth, imageHeight int) (*Camera, error) {
	if imageWidth <= 0 || imageHeight <= 0 {
		return nil, fmt.Errorf("image size must be positive, got %dx%d", imageWidth, imageHeight)
	}
	if config.ScreenWidth <= 0 || config.ScreenDistance <= 0 {
		return nil, fmt.Errorf("screen width and distance must be positive, got %v and %v",
			config.ScreenWidth, config.ScreenDistance)
	}

	view := config.LookAt.Subtract(config.Position)
	if view.LengthSquared() == 0 {
		return nil, fmt.Errorf("camera look-at point equals its position")
	}
	forward := view.Normalize()

	// Gram-Schmidt: keep only the part of the up hint perpendicular to forward
	up := config.Up.ProjectOntoPlane(core.PlaneThroughPoint(forward, config.Position))
	if up.LengthSquared() < 1e-12 {
		return nil, fmt.Errorf("camera up vector %v is parallel to the view direction", config.Up)
	}
	up = up.Normalize()

	screenHeight := config.ScreenWidth * float64(imageHeight) / float64(imageWidth)
	halfWidth := config.ScreenWidth / 2
	halfHeight := screenHeight / 2

	// Image rows grow downward, so the vertical axis opposes up
	return &Camera{
		position: config.Position,
		forward:  forward,
		right:    forward.Cross(up).ToLength(halfWidth),
		down:     up.Negate().ToLength(halfHeight),
		width:    imageWidth,
		height:   imageHeight,
	}, nil
}

// GetRay returns the ray through pixel coordinate (x, y). Coordinates may be
// fractional for sub-pixel sampling and range over [0,W]x[0,H]; bounds are
// not checked.
func (c *Camera) GetRay(x, y float64) core.Ray {
	w, h := float64(c.width), float64(c.height)
	alpha := (2*x - w) / w
	beta := (2*y - h) / h

	direction := c.forward.
		Add(c.right.Multiply(alpha)).
		Add(c.down.Multiply(beta))

	return core.NewRay(c.position, direction)
}

// GetCameraForward returns the unit view direction
func (c *Camera) GetCameraForward() core.Vec3 {
	return c.forward
}

// GetPosition returns the eye position
func (c *Camera) GetPosition() core.Vec3 {
	return c.position
}

// ImageSize returns the image dimensions the camera was built for
func (c *Camera) ImageSize() (int, int) {
	return c.width, c.height
}

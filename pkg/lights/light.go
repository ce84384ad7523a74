package lights

import (
	"fmt"

	"github.com/eternalStudent/RayTracer/pkg/core"
)

// Light is a square area light. Shadow rays are cast from a jittered grid
// spanning Width around Position, facing the shaded point.
type Light struct {
	Position core.Vec3
	Color    core.Color
	Specular float64 // Multiplier for specular highlights
	Shadow   float64 // 0 = ignores occluders, 1 = fully subject to occlusion
	Width    float64 // Edge length of the sampling square; 0 is a point light
}

// NewLight creates a new light
func NewLight(position core.Vec3, color core.Color, specular, shadow, width float64) *Light {
	return &Light{
		Position: position,
		Color:    color,
		Specular: specular,
		Shadow:   shadow,
		Width:    width,
	}
}

// NewPointLight creates a light with a hard, fully occluded shadow
func NewPointLight(position core.Vec3, color core.Color) *Light {
	return NewLight(position, color, 1, 1, 0)
}

// Validate reports parameters the tracer cannot handle
func (l *Light) Validate() error {
	if l.Shadow < 0 || l.Shadow > 1 {
		return fmt.Errorf("light shadow weight %v outside [0,1]", l.Shadow)
	}
	if l.Width < 0 {
		return fmt.Errorf("light width %v must not be negative", l.Width)
	}
	return nil
}

// BlendIllumination mixes an illumination fraction with the light's shadow
// weight: f + (1-f)(1-shadow)
func (l *Light) BlendIllumination(fraction float64) float64 {
	return fraction + (1-fraction)*(1-l.Shadow)
}

package material

import (
	"fmt"
	"math"

	"github.com/eternalStudent/RayTracer/pkg/core"
)

// Material describes how a surface responds to light. A single Material is
// shared by pointer between every primitive that uses it.
type Material struct {
	Diffuse      core.Color // Lambertian reflectance
	Specular     core.Color // Phong highlight color
	Reflection   core.Color // Mirror reflection tint; black disables reflection
	Transparency float64    // 0 = opaque, 1 = fully transmissive
	Phong        float64    // Phong shininess exponent
}

// NewMaterial creates a new material
func NewMaterial(diffuse, specular, reflection core.Color, phong, transparency float64) *Material {
	return &Material{
		Diffuse:      diffuse,
		Specular:     specular,
		Reflection:   reflection,
		Transparency: transparency,
		Phong:        phong,
	}
}

// NewDiffuse creates an opaque matte material
func NewDiffuse(diffuse core.Color) *Material {
	return NewMaterial(diffuse, core.Black, core.Black, 1, 0)
}

// Validate reports parameters the tracer cannot handle
func (m *Material) Validate() error {
	if m.Transparency < 0 || m.Transparency > 1 {
		return fmt.Errorf("transparency %v outside [0,1]", m.Transparency)
	}
	if m.Phong < 0 {
		return fmt.Errorf("phong exponent %v must not be negative", m.Phong)
	}
	return nil
}

// IsReflective reports whether reflection rays should be spawned
func (m *Material) IsReflective() bool {
	return !m.Reflection.IsBlack()
}

// IsTransparent reports whether transmission rays should be spawned
func (m *Material) IsTransparent() bool {
	return m.Transparency != 0
}

// EvaluateDiffuse returns the Lambertian term Kd * max(0, N·L), where
// toLight points from the surface toward the light.
func (m *Material) EvaluateDiffuse(normal, toLight core.Vec3) core.Color {
	cosTheta := normal.CosAngle(toLight)
	if cosTheta < 0 {
		return core.Black
	}
	return m.Diffuse.Multiply(cosTheta)
}

// EvaluateSpecular returns the Phong term Ks * intensity * max(0, R·V)^phong.
// lightDir travels from the light to the surface and toViewer points from the
// surface back along the incoming ray.
func (m *Material) EvaluateSpecular(normal, lightDir, toViewer core.Vec3, intensity float64) core.Color {
	if m.Specular.IsBlack() {
		return core.Black
	}
	reflected := lightDir.Normalize().Reflect(normal.Normalize())
	cosAlpha := toViewer.CosAngle(reflected)
	if cosAlpha <= 0 {
		return core.Black
	}
	return m.Specular.Multiply(intensity * math.Pow(cosAlpha, m.Phong))
}

package renderer

import (
	"github.com/eternalStudent/RayTracer/pkg/core"
	"github.com/eternalStudent/RayTracer/pkg/geometry"
	"github.com/eternalStudent/RayTracer/pkg/lights"
	"github.com/eternalStudent/RayTracer/pkg/scene"
)

// Raytracer evaluates colors along rays for a read-only scene. It holds no
// mutable state; randomness comes from the sampler passed to each call.
type Raytracer struct {
	scene  *scene.Scene
	camera *geometry.Camera
}

// NewRaytracer creates a raytracer for the scene viewed through camera
func NewRaytracer(s *scene.Scene, camera *geometry.Camera) *Raytracer {
	return &Raytracer{
		scene:  s,
		camera: camera,
	}
}

// SamplesPerPixel returns how many camera rays PixelColor traces
func (rt *Raytracer) SamplesPerPixel() int {
	settings := rt.scene.Settings
	if !settings.AntiAliasing || settings.Samples <= 1 {
		return 1
	}
	return settings.Samples
}

// PixelRay returns the camera ray through the center of pixel (x, y)
func (rt *Raytracer) PixelRay(x, y int) core.Ray {
	return rt.camera.GetRay(float64(x)+0.5, float64(y)+0.5)
}

// PixelColor returns the color of pixel (x, y): one centered sample, or the
// average of jittered samples over the pixel area when anti-aliasing is enabled
func (rt *Raytracer) PixelColor(x, y int, sampler core.Sampler) core.Color {
	samples := rt.SamplesPerPixel()
	if samples == 1 {
		return rt.Trace(rt.PixelRay(x, y), 0, sampler)
	}

	colorAccum := core.Black
	for i := 0; i < samples; i++ {
		u, v := sampler.Get2D()
		ray := rt.camera.GetRay(float64(x)+u, float64(y)+v)
		colorAccum = colorAccum.Add(rt.Trace(ray, 0, sampler))
	}
	return colorAccum.Multiply(1.0 / float64(samples))
}

// Trace returns the color seen along ray at the given recursion depth
func (rt *Raytracer) Trace(ray core.Ray, depth int, sampler core.Sampler) core.Color {
	settings := rt.scene.Settings

	// Step off the surface the ray was spawned from
	ray = ray.Advance(lights.Epsilon)
	hit, isHit := geometry.ClosestHit(rt.scene.Primitives, ray)
	if !isHit || depth >= settings.MaxDepth {
		return settings.Background
	}

	baseColor := rt.shade(hit, ray, sampler)
	mat := hit.Material()

	reflectionColor := core.Black
	if mat.IsReflective() {
		reflected := ray.Direction.Normalize().Reflect(hit.Normal)
		reflectionColor = mat.Reflection.MultiplyColor(
			rt.Trace(core.NewRay(hit.Point, reflected), depth+1, sampler))
	}

	transparencyColor := core.Black
	if mat.IsTransparent() {
		transparencyColor = rt.Trace(core.NewRay(hit.Point, ray.Direction), depth+1, sampler)
	}

	return Compose(transparencyColor, baseColor, reflectionColor, mat.Transparency)
}

// shade sums the direct contribution of every light at the hit point
func (rt *Raytracer) shade(hit geometry.Hit, ray core.Ray, sampler core.Sampler) core.Color {
	mat := hit.Material()
	toViewer := ray.Direction.Negate()
	shadowRays := rt.scene.Settings.ShadowRays

	baseColor := core.Black
	for _, light := range rt.scene.Lights {
		shadowRay := core.NewRayTo(light.Position, hit.Point)

		fraction := light.IlluminationFraction(rt.scene.Primitives, hit.Point, shadowRays, sampler)
		blend := light.BlendIllumination(fraction)

		diffuse := mat.EvaluateDiffuse(hit.Normal, shadowRay.Direction.Negate())
		specular := rt.specular(hit, shadowRay, toViewer, light)

		baseColor = baseColor.Add(diffuse.Add(specular).MultiplyColor(light.Color).Multiply(blend))
	}
	return baseColor
}

// specular returns the Phong highlight, which only appears when the light's
// center is fully exposed to the hit point
func (rt *Raytracer) specular(hit geometry.Hit, shadowRay core.Ray, toViewer core.Vec3, light *lights.Light) core.Color {
	mat := hit.Material()
	highlight := mat.EvaluateSpecular(hit.Normal, shadowRay.Direction, toViewer, light.Specular)
	if highlight.IsBlack() {
		return core.Black
	}
	if lights.Exposure(rt.scene.Primitives, shadowRay, hit.Point) < 1 {
		return core.Black
	}
	return highlight
}

// Compose blends the recursive and local results:
// transparency*t + base*(1-t) + reflection
func Compose(transparencyColor, baseColor, reflectionColor core.Color, transparency float64) core.Color {
	return transparencyColor.Multiply(transparency).
		Add(baseColor.Multiply(1 - transparency)).
		Add(reflectionColor)
}

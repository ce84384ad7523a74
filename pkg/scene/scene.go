package scene

import (
	"fmt"

	"github.com/eternalStudent/RayTracer/pkg/core"
	"github.com/eternalStudent/RayTracer/pkg/geometry"
	"github.com/eternalStudent/RayTracer/pkg/lights"
	"github.com/eternalStudent/RayTracer/pkg/material"
)

// Scene contains all the elements needed for rendering. It is built once
// and must not be modified while a render is running.
type Scene struct {
	Camera     geometry.CameraConfig
	Materials  []*material.Material // Shared material table
	Primitives []geometry.Primitive // Objects in the scene, in scan order
	Lights     []*lights.Light      // Lights in the scene
	Settings   Settings
}

// Settings contains global rendering configuration
type Settings struct {
	Background   core.Color // Color of rays that hit nothing
	MaxDepth     int        // Maximum recursion level for reflection and transparency
	ShadowRays   int        // Soft shadow grid resolution per axis
	AntiAliasing bool       // Average several jittered rays per pixel
	Samples      int        // Rays per pixel when anti-aliasing is enabled
}

// DefaultSettings returns sensible default values
func DefaultSettings() Settings {
	return Settings{
		Background: core.Black,
		MaxDepth:   5,
		ShadowRays: 4,
		Samples:    1,
	}
}

// NewScene creates an empty scene
func NewScene(camera geometry.CameraConfig, settings Settings) *Scene {
	return &Scene{
		Camera:     camera,
		Materials:  make([]*material.Material, 0),
		Primitives: make([]geometry.Primitive, 0),
		Lights:     make([]*lights.Light, 0),
		Settings:   settings,
	}
}

// AddMaterial registers a material and returns it for sharing
func (s *Scene) AddMaterial(m *material.Material) *material.Material {
	s.Materials = append(s.Materials, m)
	return m
}

// AddPrimitive appends primitives to the scan order
func (s *Scene) AddPrimitive(primitives ...geometry.Primitive) {
	s.Primitives = append(s.Primitives, primitives...)
}

// AddLight appends lights to the scene
func (s *Scene) AddLight(l ...*lights.Light) {
	s.Lights = append(s.Lights, l...)
}

// Validate checks the settings
func (s Settings) Validate() error {
	if s.MaxDepth < 0 {
		return fmt.Errorf("max recursion depth must not be negative, got %d", s.MaxDepth)
	}
	if s.ShadowRays <= 0 {
		return fmt.Errorf("shadow ray grid resolution must be positive, got %d", s.ShadowRays)
	}
	if s.AntiAliasing && s.Samples <= 0 {
		return fmt.Errorf("anti-aliasing sample count must be positive, got %d", s.Samples)
	}
	return nil
}

// Validate reports the first structural problem that would make a render
// produce wrong pixels
func (s *Scene) Validate() error {
	if err := s.Settings.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	for i, m := range s.Materials {
		if m == nil {
			return fmt.Errorf("material %d is nil", i+1)
		}
		if err := m.Validate(); err != nil {
			return fmt.Errorf("material %d: %w", i+1, err)
		}
	}

	for i, p := range s.Primitives {
		if p == nil {
			return fmt.Errorf("primitive %d is nil", i)
		}
		m := p.GetMaterial()
		if m == nil {
			return fmt.Errorf("primitive %d (%T) has no material", i, p)
		}
		if err := m.Validate(); err != nil {
			return fmt.Errorf("primitive %d (%T): %w", i, p, err)
		}
		if v, ok := p.(geometry.Validator); ok {
			if err := v.Validate(); err != nil {
				return fmt.Errorf("primitive %d (%T): %w", i, p, err)
			}
		}
	}

	for i, l := range s.Lights {
		if l == nil {
			return fmt.Errorf("light %d is nil", i)
		}
		if err := l.Validate(); err != nil {
			return fmt.Errorf("light %d: %w", i, err)
		}
	}

	// Image size is unknown here; any positive size exercises the camera checks
	if _, err := geometry.NewCamera(s.Camera, 1, 1); err != nil {
		return fmt.Errorf("invalid camera: %w", err)
	}

	return nil
}

// GetPrimitiveCount returns the number of primitives in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Primitives)
}

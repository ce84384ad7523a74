package scene

import (
	"fmt"
	"sort"

	"github.com/eternalStudent/RayTracer/pkg/core"
	"github.com/eternalStudent/RayTracer/pkg/geometry"
	"github.com/eternalStudent/RayTracer/pkg/lights"
	"github.com/eternalStudent/RayTracer/pkg/material"
)

// builtinScenes maps scene IDs to their constructors
var builtinScenes = map[string]func() *Scene{
	"default":  NewDefaultScene,
	"showcase": NewShowcaseScene,
}

// NewDefaultScene creates a single white sphere lit from above
func NewDefaultScene() *Scene {
	cameraConfig := geometry.CameraConfig{
		Position:       core.NewVec3(0, 0, 0),
		LookAt:         core.NewVec3(0, 0, -1),
		Up:             core.NewVec3(0, 1, 0),
		ScreenDistance: 1,
		ScreenWidth:    1,
	}

	settings := DefaultSettings()
	settings.MaxDepth = 1

	s := NewScene(cameraConfig, settings)
	white := s.AddMaterial(material.NewDiffuse(core.NewColor(1, 1, 1)))
	s.AddPrimitive(geometry.NewSphere(core.NewVec3(0, 0, -5), 1, white))
	s.AddLight(lights.NewPointLight(core.NewVec3(0, 5, -5), core.NewColor(1, 1, 1)))

	return s
}

// NewShowcaseScene creates a scene exercising every primitive and material
// feature: a mirror, a glass sphere, a box on a floor and two soft lights
func NewShowcaseScene() *Scene {
	cameraConfig := geometry.CameraConfig{
		Position:       core.NewVec3(0, 1.5, 4),
		LookAt:         core.NewVec3(0, 0.5, -1),
		Up:             core.NewVec3(0, 1, 0), // Hint only, corrected against the view direction
		ScreenDistance: 1.4,
		ScreenWidth:    1.2,
	}

	settings := Settings{
		Background:   core.NewColor(0.05, 0.07, 0.12),
		MaxDepth:     6,
		ShadowRays:   5,
		AntiAliasing: true,
		Samples:      4,
	}

	s := NewScene(cameraConfig, settings)

	floor := s.AddMaterial(material.NewMaterial(
		core.NewColor(0.7, 0.7, 0.65), core.NewColor(0.1, 0.1, 0.1), core.NewColor(0.15, 0.15, 0.15), 8, 0))
	mirror := s.AddMaterial(material.NewMaterial(
		core.NewColor(0.05, 0.05, 0.05), core.NewColor(1, 1, 1), core.NewColor(0.85, 0.85, 0.85), 64, 0))
	glass := s.AddMaterial(material.NewMaterial(
		core.NewColor(0.2, 0.3, 0.35), core.NewColor(1, 1, 1), core.NewColor(0.1, 0.1, 0.1), 96, 0.75))
	red := s.AddMaterial(material.NewMaterial(
		core.NewColor(0.8, 0.15, 0.1), core.NewColor(0.6, 0.6, 0.6), core.Black, 24, 0))
	blue := s.AddMaterial(material.NewDiffuse(core.NewColor(0.15, 0.25, 0.8)))

	s.AddPrimitive(
		geometry.NewPlane(core.NewVec3(0, 1, 0), 0, floor),
		geometry.NewSphere(core.NewVec3(-1.1, 0.7, -1.2), 0.7, mirror),
		geometry.NewSphere(core.NewVec3(0.5, 0.5, 0.2), 0.5, glass),
		geometry.NewSphere(core.NewVec3(1.6, 0.4, -1.6), 0.4, red),
		geometry.NewBox(core.NewVec3(-0.2, 0, -2.4), core.NewVec3(0.6, 0.8, -1.6), blue),
	)

	s.AddLight(
		lights.NewLight(core.NewVec3(2, 5, 2), core.NewColor(0.9, 0.85, 0.8), 1, 0.9, 1),
		lights.NewLight(core.NewVec3(-3, 4, 1), core.NewColor(0.3, 0.35, 0.45), 0.5, 0.6, 2),
	)

	return s
}

// NewBuiltinScene returns a fresh copy of the named built-in scene
func NewBuiltinScene(id string) (*Scene, error) {
	constructor, ok := builtinScenes[id]
	if !ok {
		return nil, fmt.Errorf("unknown built-in scene %q", id)
	}
	return constructor(), nil
}

// BuiltinSceneIDs returns the IDs of every built-in scene in sorted order
func BuiltinSceneIDs() []string {
	ids := make([]string, 0, len(builtinScenes))
	for id := range builtinScenes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

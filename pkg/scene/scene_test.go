package scene

import (
	"strings"
	"testing"

	"github.com/eternalStudent/RayTracer/pkg/core"
	"github.com/eternalStudent/RayTracer/pkg/geometry"
	"github.com/eternalStudent/RayTracer/pkg/lights"
	"github.com/eternalStudent/RayTracer/pkg/material"
)

func TestBuiltinScenes_Validate(t *testing.T) {
	for _, id := range BuiltinSceneIDs() {
		t.Run(id, func(t *testing.T) {
			s, err := NewBuiltinScene(id)
			if err != nil {
				t.Fatalf("NewBuiltinScene(%q) error: %v", id, err)
			}
			if err := s.Validate(); err != nil {
				t.Errorf("Expected valid scene, got %v", err)
			}
			if s.GetPrimitiveCount() == 0 || len(s.Lights) == 0 {
				t.Errorf("Expected primitives and lights, got %d and %d", s.GetPrimitiveCount(), len(s.Lights))
			}
		})
	}
}

func TestNewBuiltinScene_Unknown(t *testing.T) {
	if _, err := NewBuiltinScene("cornell"); err == nil {
		t.Error("Expected an error for an unknown scene")
	}
}

func TestNewBuiltinScene_FreshCopy(t *testing.T) {
	a, _ := NewBuiltinScene("default")
	b, _ := NewBuiltinScene("default")
	a.Settings.MaxDepth = 9
	if b.Settings.MaxDepth == 9 {
		t.Error("Expected built-in scenes not to share state")
	}
}

func TestDefaultScene(t *testing.T) {
	s := NewDefaultScene()
	if s.Settings.MaxDepth != 1 {
		t.Errorf("Expected max depth 1, got %d", s.Settings.MaxDepth)
	}
	if s.Settings.Background != core.Black {
		t.Errorf("Expected black background, got %v", s.Settings.Background)
	}
	sphere, ok := s.Primitives[0].(*geometry.Sphere)
	if !ok || sphere.Center != core.NewVec3(0, 0, -5) || sphere.Radius != 1 {
		t.Errorf("Expected unit sphere at (0,0,-5), got %+v", s.Primitives[0])
	}
}

// validScene returns a minimal scene that passes validation
func validScene() *Scene {
	s := NewScene(geometry.CameraConfig{
		Position:       core.NewVec3(0, 0, 0),
		LookAt:         core.NewVec3(0, 0, -1),
		Up:             core.NewVec3(0, 1, 0),
		ScreenDistance: 1,
		ScreenWidth:    1,
	}, DefaultSettings())
	m := s.AddMaterial(material.NewDiffuse(core.NewColor(1, 1, 1)))
	s.AddPrimitive(geometry.NewSphere(core.NewVec3(0, 0, -3), 1, m))
	s.AddLight(lights.NewPointLight(core.NewVec3(0, 3, 0), core.NewColor(1, 1, 1)))
	return s
}

func TestScene_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *Scene)
		wantErr string
	}{
		{"valid", func(s *Scene) {}, ""},
		{"negative depth", func(s *Scene) { s.Settings.MaxDepth = -1 }, "invalid settings"},
		{"zero shadow rays", func(s *Scene) { s.Settings.ShadowRays = 0 }, "invalid settings"},
		{"anti-aliasing without samples", func(s *Scene) {
			s.Settings.AntiAliasing = true
			s.Settings.Samples = 0
		}, "invalid settings"},
		{"zero depth is allowed", func(s *Scene) { s.Settings.MaxDepth = 0 }, ""},
		{"nil material", func(s *Scene) { s.Materials = append(s.Materials, nil) }, "material 2 is nil"},
		{"bad transparency", func(s *Scene) { s.Materials[0].Transparency = 1.5 }, "material 1"},
		{"primitive without material", func(s *Scene) {
			s.AddPrimitive(geometry.NewSphere(core.NewVec3(0, 0, 0), 1, nil))
		}, "has no material"},
		{"degenerate sphere", func(s *Scene) {
			s.AddPrimitive(geometry.NewSphere(core.NewVec3(0, 0, 0), 0, s.Materials[0]))
		}, "primitive 1"},
		{"degenerate plane", func(s *Scene) {
			s.AddPrimitive(geometry.NewPlane(core.NewVec3(0, 0, 0), 1, s.Materials[0]))
		}, "primitive 1"},
		{"nil light", func(s *Scene) { s.AddLight(nil) }, "light 1 is nil"},
		{"bad shadow weight", func(s *Scene) { s.Lights[0].Shadow = 2 }, "light 0"},
		{"camera looks at itself", func(s *Scene) { s.Camera.LookAt = s.Camera.Position }, "invalid camera"},
		{"camera up along view", func(s *Scene) { s.Camera.Up = core.NewVec3(0, 0, -2) }, "invalid camera"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validScene()
			tt.mutate(s)
			err := s.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

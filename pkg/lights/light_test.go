package lights

import (
	"math"
	"testing"

	"github.com/eternalStudent/RayTracer/pkg/core"
)

func TestLight_BlendIllumination(t *testing.T) {
	tests := []struct {
		name     string
		shadow   float64
		fraction float64
		expected float64
	}{
		{"Shadow weight 0 ignores occlusion", 0, 0, 1},
		{"Shadow weight 1 keeps occlusion", 1, 0, 0},
		{"Shadow weight 1 partially lit", 1, 0.25, 0.25},
		{"Half shadow weight", 0.5, 0, 0.5},
		{"Fully lit stays lit", 0.7, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			light := NewLight(core.NewVec3(0, 0, 0), core.NewColor(1, 1, 1), 1, tt.shadow, 1)
			if got := light.BlendIllumination(tt.fraction); math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("Expected %f, got %f", tt.expected, got)
			}
		})
	}
}

func TestLight_Validate(t *testing.T) {
	tests := []struct {
		name    string
		light   *Light
		wantErr bool
	}{
		{"Point light", NewPointLight(core.NewVec3(0, 1, 0), core.NewColor(1, 1, 1)), false},
		{"Area light", NewLight(core.NewVec3(0, 1, 0), core.NewColor(1, 1, 1), 0.5, 0.9, 2), false},
		{"Shadow above one", NewLight(core.NewVec3(0, 1, 0), core.NewColor(1, 1, 1), 1, 1.1, 1), true},
		{"Negative width", NewLight(core.NewVec3(0, 1, 0), core.NewColor(1, 1, 1), 1, 1, -1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.light.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

package core

import (
	"math/rand"
	"testing"
)

func TestRandomSampler_Range(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))

	for i := 0; i < 1000; i++ {
		v := sampler.Get1D()
		u, w := sampler.Get2D()
		for _, x := range []float64{v, u, w} {
			if x < 0 || x >= 1 {
				t.Fatalf("Sample %f outside [0,1)", x)
			}
		}
	}
}

func TestRandomSampler_Deterministic(t *testing.T) {
	a := NewSeededSampler(7)
	b := NewSeededSampler(7)

	for i := 0; i < 10; i++ {
		if a.Get1D() != b.Get1D() {
			t.Fatal("Samplers with the same seed diverged")
		}
	}
}

func TestStratifiedGrid(t *testing.T) {
	tests := []struct {
		name string
		n    int
	}{
		{"single cell", 1},
		{"3x3", 3},
		{"8x8", 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := StratifiedGrid(tt.n, NewSeededSampler(1))
			if len(points) != tt.n*tt.n {
				t.Fatalf("Expected %d points, got %d", tt.n*tt.n, len(points))
			}

			cell := 1.0 / float64(tt.n)
			const tolerance = 1e-12
			for idx, p := range points {
				i, j := float64(idx/tt.n), float64(idx%tt.n)
				if p[0] < cell*i-tolerance || p[0] > cell*(i+1)+tolerance {
					t.Errorf("Point %d u=%f escaped cell %v", idx, p[0], i)
				}
				if p[1] < cell*j-tolerance || p[1] > cell*(j+1)+tolerance {
					t.Errorf("Point %d v=%f escaped cell %v", idx, p[1], j)
				}
			}
		})
	}

	if StratifiedGrid(0, NewSeededSampler(1)) != nil {
		t.Error("Expected nil grid for non-positive resolution")
	}
}

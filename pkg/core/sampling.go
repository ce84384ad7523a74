package core

import "math/rand"

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler backed by its own generator
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() (float64, float64) {
	return r.random.Float64(), r.random.Float64()
}

// StratifiedGrid returns n*n points in the unit square, one uniformly
// jittered point per cell, in row-major cell order.
func StratifiedGrid(n int, sampler Sampler) [][2]float64 {
	if n <= 0 {
		return nil
	}
	cell := 1.0 / float64(n)
	points := make([][2]float64, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			u, v := sampler.Get2D()
			points = append(points, [2]float64{
				cell * (float64(i) + u),
				cell * (float64(j) + v),
			})
		}
	}
	return points
}

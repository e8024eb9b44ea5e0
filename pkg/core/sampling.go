package core

import (
	"math"
	"math/rand"
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler backed by a new generator with the given seed
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// RandomVec3 returns a vector uniformly distributed in [0,1)^3
func RandomVec3(sampler Sampler) Vec3 {
	return sampler.Get3D()
}

// RandomVec3Range returns a vector uniformly distributed in [minVal,maxVal)^3
func RandomVec3Range(sampler Sampler, minVal, maxVal float64) Vec3 {
	u := sampler.Get3D()
	span := maxVal - minVal
	return NewVec3(minVal+u.X*span, minVal+u.Y*span, minVal+u.Z*span)
}

// RandomUnitVector returns a direction uniformly distributed on the unit sphere.
// Candidates are drawn in [-1,1]^3 and rejected unless they lie inside the unit ball,
// then projected onto its surface.
func RandomUnitVector(sampler Sampler) Vec3 {
	for {
		p := RandomVec3Range(sampler, -1, 1)
		if !p.IsFinite() {
			continue
		}
		// Near-zero candidates cannot be normalized
		if lenSq := p.LengthSquared(); lenSq > 1e-160 && lenSq <= 1 {
			return p.Divide(math.Sqrt(lenSq))
		}
	}
}

// RandomOnHemisphere returns a unit vector in the hemisphere around normal
func RandomOnHemisphere(sampler Sampler, normal Vec3) Vec3 {
	unit := RandomUnitVector(sampler)
	if unit.Dot(normal) >= 0 {
		return unit
	}
	return unit.Negate()
}

// SampleSquare returns a jitter offset in [-0.5,0.5) x [-0.5,0.5) x {0}
func SampleSquare(sampler Sampler) Vec3 {
	u := sampler.Get2D()
	return NewVec3(u.X-0.5, u.Y-0.5, 0)
}

package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestLambertian_AttenuationIsAlbedo(t *testing.T) {
	albedo := core.NewVec3(0.5, 0.7, 0.9)
	lambertian := NewLambertian(albedo)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	hit := HitRecord{
		Point:     core.NewVec3(1, 2, 3),
		Normal:    core.NewVec3(0, 0, 1),
		FrontFace: true,
	}
	ray := core.NewRay(core.NewVec3(1, 2, 4), core.NewVec3(0, 0, -1))

	for i := 0; i < 100; i++ {
		scatter, didScatter := lambertian.Scatter(ray, hit, sampler)
		if !didScatter {
			t.Fatal("Lambertian should always scatter")
		}
		if !scatter.Attenuation.Equals(albedo) {
			t.Errorf("Attenuation should equal albedo: expected %v, got %v", albedo, scatter.Attenuation)
		}
		if !scatter.Scattered.Origin.Equals(hit.Point) {
			t.Errorf("Scattered origin should be the hit point: expected %v, got %v", hit.Point, scatter.Scattered.Origin)
		}
		if scatter.Scattered.Direction.Dot(hit.Normal) < 0 {
			t.Errorf("Scattered direction %v points into the surface", scatter.Scattered.Direction)
		}
		if math.Abs(scatter.Scattered.Direction.Length()-1) > 1e-9 {
			t.Errorf("Scattered direction should be normalized, got length %f", scatter.Scattered.Direction.Length())
		}
	}
}

func TestLambertian_DegenerateDirectionFallsBackToNormal(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.8, 0.8, 0.8))

	// Draws (0.5, 0.5, 0) produce the unit vector (0,0,-1), exactly opposite the normal
	sampler := core.NewSequenceSampler(0.5, 0.5, 0)
	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 0, 1),
		FrontFace: true,
	}
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	scatter, didScatter := lambertian.Scatter(ray, hit, sampler)
	if !didScatter {
		t.Fatal("Lambertian should always scatter")
	}
	if scatter.Scattered.Direction.NearZero() {
		t.Fatal("Scattered direction must never be zero")
	}
	if !scatter.Scattered.Direction.Equals(hit.Normal) {
		t.Errorf("Expected fallback to normal %v, got %v", hit.Normal, scatter.Scattered.Direction)
	}
}

func TestLambertian_CosineDistribution(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(1, 1, 1))
	sampler := core.NewSeededSampler(99)
	normal := core.NewVec3(0, 1, 0)
	hit := HitRecord{Normal: normal, FrontFace: true}
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	// E[cos] for a cosine-weighted hemisphere is 2/3
	const n = 20000
	sum := 0.0
	for i := 0; i < n; i++ {
		scatter, _ := lambertian.Scatter(ray, hit, sampler)
		sum += scatter.Scattered.Direction.Dot(normal)
	}
	mean := sum / n
	if math.Abs(mean-2.0/3.0) > 0.01 {
		t.Errorf("Expected mean cosine ~0.667, got %f", mean)
	}
}

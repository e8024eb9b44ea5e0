package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// ShadowEpsilon is the minimum hit distance, keeping scattered rays from re-hitting their origin
const ShadowEpsilon = 0.01

// BackgroundConfig holds the sky gradient seen by rays that escape the scene
type BackgroundConfig struct {
	TopColor    core.Color // Color for rays pointing straight up
	BottomColor core.Color // Color for rays pointing straight down
}

// DefaultBackgroundConfig returns a white-to-sky-blue gradient
func DefaultBackgroundConfig() BackgroundConfig {
	return BackgroundConfig{
		TopColor:    core.NewVec3(0.5, 0.7, 1.0),
		BottomColor: core.NewVec3(1.0, 1.0, 1.0),
	}
}

// PathTracingIntegrator implements unidirectional path tracing
type PathTracingIntegrator struct {
	background BackgroundConfig
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(background BackgroundConfig) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		background: background,
	}
}

// RayColor computes the color for a single ray using unidirectional path tracing
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Shape, depth int, sampler core.Sampler) core.Color {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	hit, isHit := world.Hit(ray, ShadowEpsilon, math.Inf(1))
	if !isHit {
		return pt.backgroundGradient(ray)
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		return core.Vec3{X: 0, Y: 0, Z: 0} // Material absorbed the ray
	}

	return scatter.Attenuation.MultiplyVec(
		pt.RayColor(scatter.Scattered, world, depth-1, sampler))
}

// backgroundGradient returns a gradient color based on ray direction
func (pt *PathTracingIntegrator) backgroundGradient(r core.Ray) core.Color {
	// Ray directions are unit length, so Y maps from [-1,1] to [0,1]
	t := 0.5 * (r.Direction.Y + 1.0)

	// Linear interpolation: (1-t)*bottom + t*top
	return pt.background.BottomColor.Multiply(1.0 - t).Add(pt.background.TopColor.Multiply(t))
}

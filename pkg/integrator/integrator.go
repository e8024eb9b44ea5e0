package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the radiance arriving along ray, following at most depth bounces
	RayColor(ray core.Ray, world geometry.Shape, depth int, sampler core.Sampler) core.Color
}

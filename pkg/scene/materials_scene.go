package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewMaterialsScene shows each material side by side: a hollow glass ball,
// a diffuse ball and a brushed metal ball on a yellow-green ground
func NewMaterialsScene() *Scene {
	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	glass := material.NewDielectric(1.5)
	gold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)

	var world geometry.ShapeList
	world.Add(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		geometry.NewSphere(core.NewVec3(0, 0, -1.2), 0.5, center),
		// Outer and inner surface of a glass bubble share one material
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), -0.4, glass),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, gold),
	)

	return &Scene{
		Name:  "materials",
		World: world,
		CameraConfig: renderer.CameraConfig{
			Width:    400,
			Height:   225,
			VFov:     20,
			LookFrom: core.NewVec3(-2, 2, 1),
			LookAt:   core.NewVec3(0, 0, -1),
			Up:       core.NewVec3(0, 1, 0),
		},
		SamplingConfig: renderer.SamplingConfig{SamplesPerPixel: 100, MaxDepth: 50},
	}
}

package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewDefaultScene creates a diffuse sphere resting on a huge ground sphere
func NewDefaultScene() *Scene {
	gray := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

	// Negative radius: rays from above hit the ground's back face
	world := geometry.NewShapeList(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, gray),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), -100, gray),
	)

	return &Scene{
		Name:           "default",
		World:          world,
		CameraConfig:   renderer.DefaultCameraConfig(),
		SamplingConfig: renderer.DefaultSamplingConfig(),
	}
}

// NewSingleSphereScene creates one diffuse sphere under the sky, used for quick renders
func NewSingleSphereScene(width, height int) *Scene {
	cameraConfig := renderer.DefaultCameraConfig()
	cameraConfig.Width = width
	cameraConfig.Height = height

	return &Scene{
		Name: "sphere",
		World: geometry.NewShapeList(
			geometry.NewSphere(core.NewVec3(0, 0, -2), 1, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
		),
		CameraConfig:   cameraConfig,
		SamplingConfig: renderer.SamplingConfig{SamplesPerPixel: 4, MaxDepth: 10},
	}
}

package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// ErrUnknownScene is returned by New for a name with no registered scene
var ErrUnknownScene = errors.New("unknown scene")

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	World          geometry.ShapeList // Objects in the scene
	CameraConfig   renderer.CameraConfig
	SamplingConfig renderer.SamplingConfig
}

// builtin maps scene names to their constructors
var builtin = map[string]func() *Scene{
	"default":   NewDefaultScene,
	"materials": NewMaterialsScene,
	"sphere":    func() *Scene { return NewSingleSphereScene(400, 300) },
}

// Names returns the built-in scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds the named scene
func New(name string) (*Scene, error) {
	build, ok := builtin[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return build(), nil
}

// NewRaytracer creates a raytracer for the scene with its own camera
func (s *Scene) NewRaytracer(sampler core.Sampler, logger core.Logger) *renderer.Raytracer {
	camera := renderer.NewCamera(s.CameraConfig)
	return renderer.NewRaytracer(s.World, camera, s.SamplingConfig, sampler, logger)
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return countPrimitives(s.World)
}

func countPrimitives(shape geometry.Shape) int {
	switch obj := shape.(type) {
	case geometry.ShapeList:
		count := 0
		for _, child := range obj {
			count += countPrimitives(child)
		}
		return count
	case *geometry.ShapeList:
		return countPrimitives(*obj)
	default:
		return 1
	}
}

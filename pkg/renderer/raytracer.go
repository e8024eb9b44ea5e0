package renderer

import (
	"fmt"
	"image"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/output"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 10,
		MaxDepth:        10,
	}
}

// Validate reports sampling values that cannot produce an image
func (c SamplingConfig) Validate() error {
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("%w: samples per pixel %d", ErrInvalidConfig, c.SamplesPerPixel)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: max depth %d", ErrInvalidConfig, c.MaxDepth)
	}
	return nil
}

// PixelSampleScale returns the weight of a single sample in a pixel's average
func (c SamplingConfig) PixelSampleScale() float64 {
	return 1.0 / float64(c.SamplesPerPixel)
}

// PixelWriter receives averaged pixel colors in row-major order, row 0 first
type PixelWriter = output.Writer

// Raytracer handles the rendering process
type Raytracer struct {
	world      geometry.Shape
	camera     *Camera
	config     SamplingConfig
	sampler    core.Sampler
	integrator integrator.Integrator
	logger     core.Logger
}

// NewRaytracer creates a new raytracer using a path tracing integrator with the default sky
func NewRaytracer(world geometry.Shape, camera *Camera, config SamplingConfig, sampler core.Sampler, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = NewNopLogger()
	}
	return &Raytracer{
		world:      world,
		camera:     camera,
		config:     config,
		sampler:    sampler,
		integrator: integrator.NewPathTracingIntegrator(integrator.DefaultBackgroundConfig()),
		logger:     logger,
	}
}

// SetSamplingConfig updates the sampling configuration
func (rt *Raytracer) SetSamplingConfig(config SamplingConfig) {
	rt.config = config
}

// SetIntegrator replaces the light transport algorithm
func (rt *Raytracer) SetIntegrator(integrator integrator.Integrator) {
	rt.integrator = integrator
}

// RenderPixel averages SamplesPerPixel jittered samples through pixel (i, j)
func (rt *Raytracer) RenderPixel(i, j int) PixelStats {
	var stats PixelStats
	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		ray := rt.camera.GetRay(i, j, rt.sampler)
		stats.AddSample(rt.integrator.RayColor(ray, rt.world, rt.config.MaxDepth, rt.sampler))
	}
	return stats
}

// Render traces every pixel in row-major order and hands each averaged color to w
func (rt *Raytracer) Render(w PixelWriter) (RenderStats, error) {
	if err := rt.camera.Config().Validate(); err != nil {
		return RenderStats{}, err
	}
	if err := rt.config.Validate(); err != nil {
		return RenderStats{}, err
	}

	rt.camera.Initialize()
	cfg := rt.camera.Config()
	stats := NewRenderStats(cfg.Width, cfg.Height)
	start := time.Now()

	if err := w.Begin(cfg.Width, cfg.Height); err != nil {
		return stats, fmt.Errorf("failed to begin image: %w", err)
	}

	for j := 0; j < cfg.Height; j++ {
		rt.logger.Printf("\rScanlines remaining: %d ", cfg.Height-j)
		for i := 0; i < cfg.Width; i++ {
			pixel := rt.RenderPixel(i, j)
			stats.AddPixel(pixel)
			if err := w.WritePixel(i, j, pixel.GetColor()); err != nil {
				return stats, fmt.Errorf("failed to write pixel (%d, %d): %w", i, j, err)
			}
		}
	}

	if err := w.End(); err != nil {
		return stats, fmt.Errorf("failed to finish image: %w", err)
	}

	stats.Finish(time.Since(start))
	rt.logger.Printf("\rDone.                         \n")
	return stats, nil
}

// RenderImage renders into an in-memory gamma-corrected image
func (rt *Raytracer) RenderImage() (*image.RGBA, RenderStats, error) {
	writer := output.NewImageWriter()
	stats, err := rt.Render(writer)
	if err != nil {
		return nil, stats, err
	}
	return writer.Image(), stats, nil
}

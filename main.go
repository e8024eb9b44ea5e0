package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/output"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// Config holds the command line options
type Config struct {
	SceneType string
	Format    string
	Output    string
	Samples   int
	MaxDepth  int
	Seed      int64
	Width     int
	Height    int
	Quiet     bool
}

func main() {
	config := parseFlags()

	if _, err := run(config); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() Config {
	config := Config{}
	flag.StringVar(&config.SceneType, "scene", "default", "Scene type: "+strings.Join(scene.Names(), ", "))
	flag.StringVar(&config.Format, "format", "ppm", "Output format: 'ppm' or 'png'")
	flag.StringVar(&config.Output, "output", "", "Output file (default output/<scene>/render_<timestamp>.<ext>)")
	flag.IntVar(&config.Samples, "spp", 0, "Samples per pixel (0 = scene default)")
	flag.IntVar(&config.MaxDepth, "depth", 0, "Maximum bounce depth (0 = scene default)")
	flag.Int64Var(&config.Seed, "seed", 0, "Random seed (0 = time based)")
	flag.IntVar(&config.Width, "width", 0, "Image width (0 = scene default)")
	flag.IntVar(&config.Height, "height", 0, "Image height (0 = scene default)")
	flag.BoolVar(&config.Quiet, "quiet", false, "Suppress progress output")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		showHelp()
		os.Exit(0)
	}
	return config
}

func showHelp() {
	fmt.Println("Path Tracer")
	fmt.Println("Usage: pathtracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	fmt.Println("  default   - Diffuse sphere on a large ground sphere")
	fmt.Println("  materials - Glass, diffuse and metal spheres side by side")
	fmt.Println("  sphere    - A single diffuse sphere")
	fmt.Println()
	fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.<format>")
}

func run(config Config) (renderer.RenderStats, error) {
	s, err := createScene(config.SceneType)
	if err != nil {
		return renderer.RenderStats{}, err
	}
	applyCameraOverrides(s, config)
	sampling := samplingOverrides(s.SamplingConfig, config)
	if _, err := output.Extension(config.Format); err != nil {
		return renderer.RenderStats{}, err
	}

	filename, err := outputPath(config, time.Now())
	if err != nil {
		return renderer.RenderStats{}, err
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return renderer.RenderStats{}, fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(filename)
	if err != nil {
		return renderer.RenderStats{}, fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	writer, err := output.NewWriter(config.Format, file)
	if err != nil {
		return renderer.RenderStats{}, err
	}

	var logger core.Logger = renderer.NewDefaultLogger()
	if config.Quiet {
		logger = renderer.NewNopLogger()
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	raytracer := s.NewRaytracer(core.NewSeededSampler(seed), logger)
	raytracer.SetSamplingConfig(sampling)

	logger.Printf("Rendering %s scene (%d primitives, %dx%d, %d spp, depth %d, seed %d)...\n",
		s.Name, s.GetPrimitiveCount(), s.CameraConfig.Width, s.CameraConfig.Height,
		sampling.SamplesPerPixel, sampling.MaxDepth, seed)

	stats, err := raytracer.Render(writer)
	if err != nil {
		return stats, err
	}

	logger.Printf("Render completed in %v\n", stats.Duration)
	logger.Printf("Samples: %d total, %.1f per pixel\n", stats.TotalSamples, stats.AverageSamples)
	logger.Printf("Mean luminance variance: %.6f\n", stats.MeanVariance)
	logger.Printf("Render saved as %s\n", filename)
	return stats, nil
}

// createScene builds the named built-in scene
func createScene(sceneType string) (*scene.Scene, error) {
	return scene.New(sceneType)
}

// applyCameraOverrides replaces the scene's image size with any non-zero command line values
func applyCameraOverrides(s *scene.Scene, config Config) {
	if config.Width > 0 {
		s.CameraConfig.Width = config.Width
	}
	if config.Height > 0 {
		s.CameraConfig.Height = config.Height
	}
}

// samplingOverrides returns base with any non-zero command line sampling values applied
func samplingOverrides(base renderer.SamplingConfig, config Config) renderer.SamplingConfig {
	if config.Samples > 0 {
		base.SamplesPerPixel = config.Samples
	}
	if config.MaxDepth > 0 {
		base.MaxDepth = config.MaxDepth
	}
	return base
}

// outputPath returns the explicit output file or a timestamped one under output/<scene>
func outputPath(config Config, now time.Time) (string, error) {
	if config.Output != "" {
		return config.Output, nil
	}
	ext, err := output.Extension(config.Format)
	if err != nil {
		return "", err
	}
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", config.SceneType, "render_"+timestamp+ext), nil
}

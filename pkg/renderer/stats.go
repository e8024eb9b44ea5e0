package renderer

import (
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width          int           // Image width
	Height         int           // Image height
	TotalPixels    int           // Total number of pixels rendered
	TotalSamples   int           // Total number of samples taken
	AverageSamples float64       // Average samples per pixel
	MeanVariance   float64       // Mean per-pixel luminance variance, a noise estimate
	Duration       time.Duration // Wall time spent rendering

	varianceSum float64
}

// NewRenderStats creates empty statistics for an image of the given size
func NewRenderStats(width, height int) RenderStats {
	return RenderStats{Width: width, Height: height}
}

// AddPixel records a finished pixel
func (rs *RenderStats) AddPixel(ps PixelStats) {
	rs.TotalPixels++
	rs.TotalSamples += ps.SampleCount
	rs.varianceSum += ps.Variance()
}

// Finish computes averages once all pixels are recorded
func (rs *RenderStats) Finish(duration time.Duration) {
	rs.Duration = duration
	if rs.TotalPixels > 0 {
		rs.AverageSamples = float64(rs.TotalSamples) / float64(rs.TotalPixels)
		rs.MeanVariance = rs.varianceSum / float64(rs.TotalPixels)
	}
}

// PixelStats tracks sampling statistics for a single pixel
type PixelStats struct {
	ColorAccum       core.Vec3 // RGB accumulator for final result
	LuminanceAccum   float64   // Luminance accumulator
	LuminanceSqAccum float64   // Luminance squared for variance
	SampleCount      int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	luminance := color.Luminance()
	ps.LuminanceAccum += luminance
	ps.LuminanceSqAccum += luminance * luminance
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// Variance returns the sample variance of the pixel's luminance
func (ps *PixelStats) Variance() float64 {
	if ps.SampleCount < 2 {
		return 0
	}
	n := float64(ps.SampleCount)
	mean := ps.LuminanceAccum / n
	return max(0, (ps.LuminanceSqAccum-n*mean*mean)/(n-1))
}

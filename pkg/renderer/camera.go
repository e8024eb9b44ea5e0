package renderer

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ErrInvalidConfig is returned when a camera or sampling configuration cannot be rendered
var ErrInvalidConfig = errors.New("invalid render configuration")

// CameraConfig contains all parameters needed to create a camera
type CameraConfig struct {
	Width    int         // Image width in pixels
	Height   int         // Image height in pixels
	VFov     float64     // Vertical field of view in degrees
	LookFrom core.Point3 // Camera position
	LookAt   core.Point3 // Point the camera is looking at
	Up       core.Vec3   // Up direction
}

// DefaultCameraConfig returns the camera used when a scene doesn't specify one
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Width:    800,
		Height:   600,
		VFov:     90.0,
		LookFrom: core.NewVec3(0, 0, 0),
		LookAt:   core.NewVec3(0, 0, -1),
		Up:       core.NewVec3(0, 1, 0),
	}
}

// Validate reports configuration values that would produce a degenerate viewport
func (c CameraConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: image size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.VFov <= 0 || c.VFov >= 180 {
		return fmt.Errorf("%w: vertical field of view %g", ErrInvalidConfig, c.VFov)
	}
	view := c.LookFrom.Subtract(c.LookAt)
	if view.NearZero() {
		return fmt.Errorf("%w: look-from and look-at coincide", ErrInvalidConfig)
	}
	if c.Up.Cross(view).NearZero() {
		return fmt.Errorf("%w: up vector is parallel to the view direction", ErrInvalidConfig)
	}
	return nil
}

// Camera generates rays for rendering.
// Derived viewport state is only valid after Initialize and is discarded by SetConfig.
type Camera struct {
	config      CameraConfig
	initialized bool

	center       core.Point3
	aspectRatio  float64
	pixel00Loc   core.Point3 // World-space center of pixel (0,0)
	pixelDeltaU  core.Vec3   // Offset to pixel to the right
	pixelDeltaV  core.Vec3   // Offset to pixel below
	u, v, w      core.Vec3   // Camera frame basis vectors
	focalLength  float64
}

// NewCamera creates an uninitialized camera with the given configuration
func NewCamera(config CameraConfig) *Camera {
	return &Camera{config: config}
}

// Config returns the camera's configuration
func (c *Camera) Config() CameraConfig {
	return c.config
}

// SetConfig replaces the configuration; the camera must be initialized again before use
func (c *Camera) SetConfig(config CameraConfig) {
	c.config = config
	c.initialized = false
}

// Initialized reports whether the derived viewport state is current
func (c *Camera) Initialized() bool {
	return c.initialized
}

// Initialize derives the viewport basis and pixel grid from the configuration
func (c *Camera) Initialize() {
	cfg := c.config
	c.aspectRatio = float64(cfg.Width) / float64(cfg.Height)
	c.center = cfg.LookFrom

	// Viewport dimensions at the focal plane
	c.focalLength = cfg.LookFrom.Subtract(cfg.LookAt).Length()
	theta := cfg.VFov * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * c.focalLength
	viewportWidth := viewportHeight * c.aspectRatio

	// Orthonormal camera basis
	c.w = cfg.LookFrom.Subtract(cfg.LookAt).Normalize()
	c.u = cfg.Up.Cross(c.w).Normalize()
	c.v = c.w.Cross(c.u)

	// Vectors across the horizontal and down the vertical viewport edges
	viewportU := c.u.Multiply(viewportWidth)
	viewportV := c.v.Negate().Multiply(viewportHeight)

	c.pixelDeltaU = viewportU.Divide(float64(cfg.Width))
	c.pixelDeltaV = viewportV.Divide(float64(cfg.Height))

	viewportUpperLeft := c.center.
		Subtract(c.w.Multiply(c.focalLength)).
		Subtract(viewportU.Divide(2)).
		Subtract(viewportV.Divide(2))
	c.pixel00Loc = viewportUpperLeft.Add(c.pixelDeltaU.Add(c.pixelDeltaV).Divide(2))

	c.initialized = true
}

// GetRay returns a ray through a random point within pixel (i, j); row 0 is the top of the image
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	if !c.initialized {
		c.Initialize()
	}

	offset := core.SampleSquare(sampler)
	pixelSample := c.pixel00Loc.
		Add(c.pixelDeltaU.Multiply(float64(i) + offset.X)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offset.Y))

	return core.NewRay(c.center, pixelSample.Subtract(c.center))
}

// Basis returns the camera frame: u points right, v up, w backwards from the view direction
func (c *Camera) Basis() (u, v, w core.Vec3) {
	return c.u, c.v, c.w
}

// PixelDeltas returns the world-space offsets between neighboring pixels
func (c *Camera) PixelDeltas() (du, dv core.Vec3) {
	return c.pixelDeltaU, c.pixelDeltaV
}

// Pixel00 returns the world-space center of the top-left pixel
func (c *Camera) Pixel00() core.Point3 {
	return c.pixel00Loc
}

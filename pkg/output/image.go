package output

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/df07/go-pathtracer/pkg/core"
)

var (
	// ErrUnknownFormat is returned for an unsupported output format name
	ErrUnknownFormat = errors.New("unknown output format")
	// ErrNotStarted is returned when pixels are written or encoded before Begin
	ErrNotStarted = errors.New("image writer used before Begin")
)

// Writer receives a rendered image one pixel at a time
type Writer interface {
	Begin(width, height int) error
	WritePixel(x, y int, color core.Color) error
	End() error
}

// ImageWriter collects pixels into an in-memory RGBA image
type ImageWriter struct {
	img *image.RGBA
}

// NewImageWriter creates an empty image writer; Begin allocates the image
func NewImageWriter() *ImageWriter {
	return &ImageWriter{}
}

// Begin allocates the image
func (iw *ImageWriter) Begin(width, height int) error {
	iw.img = image.NewRGBA(image.Rect(0, 0, width, height))
	return nil
}

// WritePixel stores a gamma-corrected pixel
func (iw *ImageWriter) WritePixel(x, y int, c core.Color) error {
	if iw.img == nil {
		return ErrNotStarted
	}
	iw.img.SetRGBA(x, y, ToRGBA(c))
	return nil
}

// End is a no-op; the image is available through Image
func (iw *ImageWriter) End() error {
	return nil
}

// Image returns the collected image, or nil before Begin
func (iw *ImageWriter) Image() *image.RGBA {
	return iw.img
}

// PNGWriter collects pixels and encodes them as PNG when the image ends
type PNGWriter struct {
	ImageWriter
	w io.Writer
}

// NewPNGWriter creates a PNG writer on top of w
func NewPNGWriter(w io.Writer) *PNGWriter {
	return &PNGWriter{w: w}
}

// End encodes the collected image
func (pw *PNGWriter) End() error {
	if pw.Image() == nil {
		return ErrNotStarted
	}
	return EncodePNG(pw.w, pw.Image())
}

// EncodePNG writes img to w in PNG format
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// Extension returns the file extension for a format name
func Extension(format string) (string, error) {
	switch format {
	case "ppm":
		return ".ppm", nil
	case "png":
		return ".png", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// NewWriter returns a writer that encodes the named format to w
func NewWriter(format string, w io.Writer) (Writer, error) {
	switch format {
	case "ppm":
		return NewPPMWriter(w), nil
	case "png":
		return NewPNGWriter(w), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

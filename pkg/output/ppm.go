package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/df07/go-pathtracer/pkg/core"
)

// PPMWriter streams pixels as a plain-text (P3) PPM image
type PPMWriter struct {
	w *bufio.Writer
}

// NewPPMWriter creates a PPM writer on top of w
func NewPPMWriter(w io.Writer) *PPMWriter {
	return &PPMWriter{w: bufio.NewWriter(w)}
}

// Begin writes the image header. No blank line follows the maxval;
// readers treat any whitespace run as the separator.
func (p *PPMWriter) Begin(width, height int) error {
	_, err := fmt.Fprintf(p.w, "P3\n%d %d\n255\n", width, height)
	return err
}

// WritePixel writes one pixel line; pixels must arrive in row-major order
func (p *PPMWriter) WritePixel(x, y int, c core.Color) error {
	r, g, b := QuantizeColor(c)
	_, err := fmt.Fprintf(p.w, "%d %d %d\n", r, g, b)
	return err
}

// End flushes buffered output
func (p *PPMWriter) End() error {
	return p.w.Flush()
}

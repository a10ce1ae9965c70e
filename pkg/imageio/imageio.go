// Package imageio turns linear radiance frames into 8-bit images.
package imageio

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"strings"

	"github.com/df07/go-pathtracer/pkg/core"
)

var (
	// ErrSizeMismatch is returned when the pixel slice does not hold width*height entries
	ErrSizeMismatch = errors.New("imageio: pixel count does not match image dimensions")

	// ErrUnknownFormat is returned for an output format other than ppm or png
	ErrUnknownFormat = errors.New("imageio: unknown output format")
)

// Supported output formats
const (
	FormatPPM = "ppm"
	FormatPNG = "png"
)

var intensity = core.NewInterval(0, 0.999)

// encodeChannel maps a linear channel to [0, 255]: NaN becomes 0, then gamma 2, then clamp
func encodeChannel(x float64) uint8 {
	if math.IsNaN(x) {
		x = 0
	}
	if x > 0 {
		x = math.Sqrt(x)
	}
	return uint8(255.999 * intensity.Clamp(x))
}

// Quantize converts a linear color to 8-bit gamma-encoded channels
func Quantize(c core.Vec3) (r, g, b uint8) {
	return encodeChannel(c.X), encodeChannel(c.Y), encodeChannel(c.Z)
}

// WriteColor writes one pixel as a line of three space-separated integers
func WriteColor(w io.Writer, c core.Vec3) error {
	r, g, b := Quantize(c)
	_, err := fmt.Fprintf(w, "%d %d %d\n", r, g, b)
	return err
}

func checkSize(width, height int, pixels []core.Vec3) error {
	if width <= 0 || height <= 0 || len(pixels) != width*height {
		return fmt.Errorf("%w: %dx%d with %d pixels", ErrSizeMismatch, width, height, len(pixels))
	}
	return nil
}

// WritePPM writes a plain-text P3 image, pixels in row-major order
func WritePPM(w io.Writer, width, height int, pixels []core.Vec3) error {
	if err := checkSize(width, height, pixels); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", width, height); err != nil {
		return err
	}
	for _, p := range pixels {
		if err := WriteColor(bw, p); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ToRGBA converts a frame to an opaque RGBA image using the same encoding as WritePPM
func ToRGBA(width, height int, pixels []core.Vec3) (*image.RGBA, error) {
	if err := checkSize(width, height, pixels); err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			r, g, b := Quantize(pixels[j*width+i])
			img.SetRGBA(i, j, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img, nil
}

// WritePNG writes the frame as a PNG image
func WritePNG(w io.Writer, width, height int, pixels []core.Vec3) error {
	img, err := ToRGBA(width, height, pixels)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// Encode writes the frame in the named format
func Encode(w io.Writer, format string, width, height int, pixels []core.Vec3) error {
	switch strings.ToLower(format) {
	case FormatPPM:
		return WritePPM(w, width, height, pixels)
	case FormatPNG:
		return WritePNG(w, width, height, pixels)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

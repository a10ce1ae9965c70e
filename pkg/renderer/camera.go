package renderer

import (
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// CameraConfig describes the view, the image and the per-pixel sampling budget
type CameraConfig struct {
	AspectRatio     float64   // Width over height
	ImageWidth      int       // Image width in pixels
	SamplesPerPixel int       // Rounded down to a perfect square for stratification
	MaxDepth        int       // Maximum number of bounces per path
	Background      core.Vec3 // Radiance of rays that escape the scene

	VFov     float64   // Vertical field of view in degrees
	LookFrom core.Vec3 // Camera position
	LookAt   core.Vec3 // Point the camera looks at
	VUp      core.Vec3 // Camera-relative up direction

	FocusDist    float64 // Distance from the camera to the plane of perfect focus
	DefocusAngle float64 // Variation angle of rays through each pixel, in degrees
}

// DefaultCameraConfig returns sensible default values
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		AspectRatio:     1.0,
		ImageWidth:      100,
		SamplesPerPixel: 10,
		MaxDepth:        10,
		VFov:            90,
		LookFrom:        core.NewVec3(0, 0, 0),
		LookAt:          core.NewVec3(0, 0, -1),
		VUp:             core.NewVec3(0, 1, 0),
		FocusDist:       10,
	}
}

// Validate rejects configurations that cannot produce an image
func (c CameraConfig) Validate() error {
	switch {
	case c.ImageWidth <= 0:
		return fmt.Errorf("%w: image width %d", ErrInvalidDimensions, c.ImageWidth)
	case !(c.AspectRatio > 0) || math.IsInf(c.AspectRatio, 0):
		return fmt.Errorf("%w: aspect ratio %g", ErrInvalidDimensions, c.AspectRatio)
	case c.SamplesPerPixel <= 0:
		return fmt.Errorf("%w: samples per pixel %d", ErrInvalidDimensions, c.SamplesPerPixel)
	case c.MaxDepth <= 0:
		return fmt.Errorf("%w: max depth %d", ErrInvalidDimensions, c.MaxDepth)
	}
	return nil
}

// ImageHeight derives the image height from width and aspect ratio, at least 1
func (c CameraConfig) ImageHeight() int {
	return max(1, int(float64(c.ImageWidth)/c.AspectRatio))
}

// Camera generates primary rays through stratified sub-pixel positions
type Camera struct {
	imageWidth   int
	imageHeight  int
	sqrtSPP      int
	recipSqrtSPP float64

	center       core.Vec3
	pixel00      core.Vec3 // Center of the top-left pixel
	pixelDeltaU  core.Vec3 // One pixel to the right
	pixelDeltaV  core.Vec3 // One pixel down
	defocusDiskU core.Vec3
	defocusDiskV core.Vec3
	defocusAngle float64
}

// NewCamera sets up the viewport for a validated configuration
func NewCamera(config CameraConfig) *Camera {
	imageHeight := config.ImageHeight()
	sqrtSPP := max(1, int(math.Sqrt(float64(config.SamplesPerPixel))))

	theta := core.DegreesToRadians(config.VFov)
	viewportHeight := 2 * math.Tan(theta/2) * config.FocusDist
	viewportWidth := viewportHeight * float64(config.ImageWidth) / float64(imageHeight)

	// Orthonormal camera frame; the camera looks along -w
	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.VUp.Cross(w).Normalize()
	v := w.Cross(u)

	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Multiply(-viewportHeight)
	pixelDeltaU := viewportU.Divide(float64(config.ImageWidth))
	pixelDeltaV := viewportV.Divide(float64(imageHeight))

	viewportUpperLeft := config.LookFrom.
		Subtract(w.Multiply(config.FocusDist)).
		Subtract(viewportU.Divide(2)).
		Subtract(viewportV.Divide(2))
	pixel00 := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	defocusRadius := config.FocusDist * math.Tan(core.DegreesToRadians(config.DefocusAngle/2))

	return &Camera{
		imageWidth:   config.ImageWidth,
		imageHeight:  imageHeight,
		sqrtSPP:      sqrtSPP,
		recipSqrtSPP: 1.0 / float64(sqrtSPP),
		center:       config.LookFrom,
		pixel00:      pixel00,
		pixelDeltaU:  pixelDeltaU,
		pixelDeltaV:  pixelDeltaV,
		defocusDiskU: u.Multiply(defocusRadius),
		defocusDiskV: v.Multiply(defocusRadius),
		defocusAngle: config.DefocusAngle,
	}
}

// ImageWidth returns the width in pixels
func (c *Camera) ImageWidth() int { return c.imageWidth }

// ImageHeight returns the height in pixels
func (c *Camera) ImageHeight() int { return c.imageHeight }

// SqrtSPP returns the number of strata along each pixel axis
func (c *Camera) SqrtSPP() int { return c.sqrtSPP }

// SamplesPerPixel returns the number of samples actually taken per pixel
func (c *Camera) SamplesPerPixel() int { return c.sqrtSPP * c.sqrtSPP }

// GetRay returns a ray through a random point of stratum (si, sj) of pixel (i, j),
// starting on the defocus disk and at a random shutter time
func (c *Camera) GetRay(i, j, si, sj int, sampler core.Sampler) core.Ray {
	jitter := sampler.Get2D()
	offsetX := (float64(si)+jitter.X)*c.recipSqrtSPP - 0.5
	offsetY := (float64(sj)+jitter.Y)*c.recipSqrtSPP - 0.5

	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i) + offsetX)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offsetY))

	origin := c.center
	if c.defocusAngle > 0 {
		p := core.SamplePointInUnitDisk(sampler.Get2D())
		origin = c.center.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
	}

	return core.NewRayAtTime(origin, pixelSample.Subtract(origin), sampler.Get1D())
}

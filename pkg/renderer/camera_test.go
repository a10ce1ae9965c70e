package renderer

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestCameraConfig_ImageHeight(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		aspect   float64
		expected int
	}{
		{"square", 100, 1.0, 100},
		{"widescreen", 400, 16.0 / 9.0, 225},
		{"truncates", 10, 3.0, 3},
		{"clamps to one", 4, 10.0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultCameraConfig()
			config.ImageWidth = tt.width
			config.AspectRatio = tt.aspect
			if got := config.ImageHeight(); got != tt.expected {
				t.Errorf("Expected height %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestCameraConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*CameraConfig)
	}{
		{"zero width", func(c *CameraConfig) { c.ImageWidth = 0 }},
		{"negative aspect", func(c *CameraConfig) { c.AspectRatio = -1 }},
		{"NaN aspect", func(c *CameraConfig) { c.AspectRatio = math.NaN() }},
		{"zero samples", func(c *CameraConfig) { c.SamplesPerPixel = 0 }},
		{"zero depth", func(c *CameraConfig) { c.MaxDepth = 0 }},
	}

	if err := DefaultCameraConfig().Validate(); err != nil {
		t.Fatalf("Default config should be valid, got %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultCameraConfig()
			tt.modify(&config)
			if err := config.Validate(); !errors.Is(err, ErrInvalidDimensions) {
				t.Errorf("Expected ErrInvalidDimensions, got %v", err)
			}
		})
	}
}

func TestCamera_SamplesPerPixelRoundsDownToSquare(t *testing.T) {
	tests := []struct {
		spp      int
		sqrt     int
		expected int
	}{
		{1, 1, 1},
		{4, 2, 4},
		{5, 2, 4},
		{10, 3, 9},
		{100, 10, 100},
	}

	for _, tt := range tests {
		config := DefaultCameraConfig()
		config.SamplesPerPixel = tt.spp
		camera := NewCamera(config)
		if camera.SqrtSPP() != tt.sqrt || camera.SamplesPerPixel() != tt.expected {
			t.Errorf("spp %d: expected %d strata per axis and %d samples, got %d and %d",
				tt.spp, tt.sqrt, tt.expected, camera.SqrtSPP(), camera.SamplesPerPixel())
		}
	}
}

func TestCamera_GetRayStaysInsideStratum(t *testing.T) {
	config := DefaultCameraConfig()
	config.ImageWidth = 4
	config.AspectRatio = 2
	config.SamplesPerPixel = 4
	config.VFov = 90
	config.FocusDist = 1
	camera := NewCamera(config)
	sampler := core.NewRandomSampler(1, 2)

	// The viewport is 4x2 units on the plane z=-1; every pixel is one unit wide
	for n := 0; n < 200; n++ {
		i, j := n%4, (n/4)%2
		si, sj := n%2, (n/2)%2
		ray := camera.GetRay(i, j, si, sj, sampler)

		if ray.Origin != config.LookFrom {
			t.Fatalf("Expected pinhole origin %v, got %v", config.LookFrom, ray.Origin)
		}
		if ray.Time < 0 || ray.Time >= 1 {
			t.Fatalf("Expected time in [0,1), got %f", ray.Time)
		}

		p := ray.At(-1 / ray.Direction.Z)
		x := p.X + 2 // Distance from the left edge
		y := 1 - p.Y // Distance from the top edge
		minX := float64(i) + 0.5*float64(si)
		minY := float64(j) + 0.5*float64(sj)
		if x < minX-1e-9 || x > minX+0.5+1e-9 || y < minY-1e-9 || y > minY+0.5+1e-9 {
			t.Fatalf("Ray for pixel (%d,%d) stratum (%d,%d) hit viewport at (%f,%f)", i, j, si, sj, x, y)
		}
	}
}

func TestCamera_LooksAtTarget(t *testing.T) {
	config := DefaultCameraConfig()
	config.ImageWidth = 101
	config.AspectRatio = 1
	config.SamplesPerPixel = 1
	config.LookFrom = core.NewVec3(278, 278, -800)
	config.LookAt = core.NewVec3(278, 278, 0)
	config.VFov = 40
	camera := NewCamera(config)

	// The center pixel of an odd-sized image points straight at the target, up to jitter
	ray := camera.GetRay(50, 50, 0, 0, core.NewRandomSampler(3, 4))
	direction := ray.Direction.Normalize()
	expected := core.NewVec3(0, 0, 1)
	if direction.Subtract(expected).Length() > 0.01 {
		t.Errorf("Expected direction near %v, got %v", expected, direction)
	}

	// Row 0 is the top of the image
	top := camera.GetRay(50, 0, 0, 0, core.NewRandomSampler(3, 4))
	if top.Direction.Y <= 0 {
		t.Errorf("Expected top row to point upward, got %v", top.Direction)
	}
}

func TestCamera_DefocusOriginsOnDisk(t *testing.T) {
	config := DefaultCameraConfig()
	config.FocusDist = 10
	config.DefocusAngle = 10
	camera := NewCamera(config)
	sampler := core.NewRandomSampler(5, 6)

	radius := 10 * math.Tan(core.DegreesToRadians(5))
	moved := false
	for n := 0; n < 100; n++ {
		ray := camera.GetRay(50, 50, 0, 0, sampler)
		offset := ray.Origin.Subtract(config.LookFrom)
		if offset.Length() > radius+1e-9 {
			t.Fatalf("Origin offset %v exceeds defocus radius %f", offset, radius)
		}
		if math.Abs(offset.Z) > 1e-9 {
			t.Fatalf("Origin should stay on the lens plane, got %v", offset)
		}
		if offset.Length() > 1e-6 {
			moved = true
		}
	}
	if !moved {
		t.Error("Expected some ray origins to leave the camera center")
	}
}

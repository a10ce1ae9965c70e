// Package scene builds the worlds the renderer can draw, each with its own
// camera defaults and the subset of geometry worth sampling as lights.
package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	World  geometry.Hittable     // Everything a ray can hit
	Lights geometry.LightTarget  // Geometry sampled directly by the integrator, nil for none
	Camera renderer.CameraConfig // Default view and sampling budget
}

// PrimitiveCount returns the number of primitives in the world
func (s *Scene) PrimitiveCount() int {
	return geometry.PrimitiveCount(s.World)
}

// LightCount returns the number of primitives sampled as lights
func (s *Scene) LightCount() int {
	if s.Lights == nil {
		return 0
	}
	return geometry.PrimitiveCount(s.Lights)
}

// skyBackground is the pale blue used by the outdoor scenes
var skyBackground = core.NewVec3(0.70, 0.80, 1.00)

// cornellWalls returns the five walls of a 555-unit Cornell box, open toward -z
func cornellWalls() []geometry.Hittable {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	return []geometry.Hittable{
		geometry.NewQuad(core.NewVec3(555, 0, 0), core.NewVec3(0, 555, 0), core.NewVec3(0, 0, 555), green), // Right
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, 555, 0), core.NewVec3(0, 0, 555), red),     // Left
		geometry.NewQuad(core.NewVec3(0, 555, 0), core.NewVec3(555, 0, 0), core.NewVec3(0, 0, 555), white), // Ceiling
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(555, 0, 0), core.NewVec3(0, 0, 555), white),   // Floor
		geometry.NewQuad(core.NewVec3(0, 0, 555), core.NewVec3(555, 0, 0), core.NewVec3(0, 555, 0), white), // Back
	}
}

// cornellCamera returns the camera looking into the box through its open side
func cornellCamera(samplesPerPixel int) renderer.CameraConfig {
	config := renderer.DefaultCameraConfig()
	config.AspectRatio = 1.0
	config.ImageWidth = 600
	config.SamplesPerPixel = samplesPerPixel
	config.MaxDepth = 50
	config.Background = core.NewVec3(0, 0, 0)
	config.VFov = 40
	config.LookFrom = core.NewVec3(278, 278, -800)
	config.LookAt = core.NewVec3(278, 278, 0)
	config.VUp = core.NewVec3(0, 1, 0)
	config.DefocusAngle = 0
	return config
}

// outdoorCamera returns the 16:9 camera shared by the sphere scenes
func outdoorCamera(background core.Vec3) renderer.CameraConfig {
	config := renderer.DefaultCameraConfig()
	config.AspectRatio = 16.0 / 9.0
	config.ImageWidth = 400
	config.SamplesPerPixel = 100
	config.MaxDepth = 50
	config.Background = background
	config.VFov = 20
	config.LookFrom = core.NewVec3(13, 2, 3)
	config.LookAt = core.NewVec3(0, 0, 0)
	config.VUp = core.NewVec3(0, 1, 0)
	config.DefocusAngle = 0
	return config
}

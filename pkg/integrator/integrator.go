// Package integrator estimates the radiance carried along camera rays.
package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// Radiance returns a single-sample estimate of the light arriving along ray.
	// The sampler belongs to the calling goroutine.
	Radiance(ray core.Ray, sampler core.Sampler) core.Vec3
}

// Config controls path length and termination
type Config struct {
	MaxDepth   int       // Maximum number of surface interactions per path
	Background core.Vec3 // Radiance returned by rays that escape the scene

	// Paths that survive this many bounces are subject to Russian roulette; 0 disables it
	RussianRouletteMinBounces int
}

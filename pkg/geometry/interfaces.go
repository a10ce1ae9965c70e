// Package geometry holds the ray-intersectable shapes, their space transforms
// and the bounding volume hierarchy that accelerates queries against them.
package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Hittable is anything a ray can intersect
type Hittable interface {
	// Hit returns the closest intersection with t inside rayT
	Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool)
	BoundingBox() core.AABB
}

// LightTarget is a hittable that can be sampled by direction, as area lights are.
// It satisfies pdf.Target so it can back a pdf.HittablePDF.
type LightTarget interface {
	Hittable
	PDFValue(origin, direction core.Vec3) float64
	Random(origin core.Vec3, sampler core.Sampler) core.Vec3
}

// primitiveCounter is implemented by aggregates so light sampling can pick
// each primitive with equal probability
type primitiveCounter interface {
	PrimitiveCount() int
}

// lightRayT is the parameter range used when probing a light by direction
var lightRayT = core.NewInterval(0.001, core.UniverseInterval.Max)

// pdfValue returns h's directional density, zero for shapes that can't be sampled
func pdfValue(h Hittable, origin, direction core.Vec3) float64 {
	if target, ok := h.(LightTarget); ok {
		return target.PDFValue(origin, direction)
	}
	return 0
}

// randomToward returns a direction toward h, or +X for shapes that can't be sampled
func randomToward(h Hittable, origin core.Vec3, sampler core.Sampler) core.Vec3 {
	if target, ok := h.(LightTarget); ok {
		return target.Random(origin, sampler)
	}
	return core.NewVec3(1, 0, 0)
}

// PrimitiveCount returns how many primitives h stands for when sampled as a light
func PrimitiveCount(h Hittable) int {
	if counter, ok := h.(primitiveCounter); ok {
		return counter.PrimitiveCount()
	}
	return 1
}

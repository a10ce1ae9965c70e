package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// hitRayT skips self-intersections just above a surface
var hitRayT = core.NewInterval(0.001, math.Inf(1))

// PathTracer implements unidirectional path tracing with a 50/50 mixture of light and material sampling
type PathTracer struct {
	config Config
	world  geometry.Hittable
	lights geometry.LightTarget
}

// NewPathTracer creates a path tracer over world.
// lights may be nil or empty, in which case only material sampling is used.
func NewPathTracer(config Config, world geometry.Hittable, lights geometry.LightTarget) *PathTracer {
	if lights != nil && geometry.PrimitiveCount(lights) == 0 {
		lights = nil
	}
	return &PathTracer{
		config: config,
		world:  world,
		lights: lights,
	}
}

// Radiance traces one path, iterating bounce by bounce with a running throughput
func (pt *PathTracer) Radiance(ray core.Ray, sampler core.Sampler) core.Vec3 {
	radiance := core.Vec3{}
	throughput := core.NewVec3(1, 1, 1)

	for bounce := 0; bounce < pt.config.MaxDepth; bounce++ {
		hit, isHit := pt.world.Hit(ray, hitRayT)
		if !isHit {
			return radiance.Add(throughput.MultiplyVec(pt.config.Background))
		}

		radiance = radiance.Add(throughput.MultiplyVec(material.Emitted(hit.Material, ray, hit)))

		scatter, didScatter := hit.Material.Scatter(ray, hit, sampler)
		if !didScatter {
			return radiance
		}

		if scatter.SkipPDF {
			throughput = throughput.MultiplyVec(scatter.Attenuation)
			ray = scatter.SkipPDFRay
		} else {
			scattered, weight, ok := pt.sampleDirection(ray, hit, scatter, sampler)
			if !ok {
				return radiance
			}
			throughput = throughput.MultiplyVec(scatter.Attenuation).Multiply(weight)
			ray = scattered
		}

		if !throughput.IsFinite() || throughput == (core.Vec3{}) {
			return radiance
		}

		survive, compensation := pt.applyRussianRoulette(bounce, throughput, sampler)
		if !survive {
			return radiance
		}
		throughput = throughput.Multiply(compensation)
	}

	// Depth exhausted: no more light is gathered
	return radiance
}

// sampleDirection draws the next direction from the light/material mixture and
// returns the estimator weight scattering_pdf / mixture_pdf.
// ok is false when the density is zero or not finite.
func (pt *PathTracer) sampleDirection(rayIn core.Ray, hit *material.HitRecord, scatter material.ScatterRecord, sampler core.Sampler) (core.Ray, float64, bool) {
	var sampling pdf.PDF = scatter.PDF
	if pt.lights != nil {
		sampling = pdf.NewMixturePDF(pdf.NewHittablePDF(pt.lights, hit.Point), scatter.PDF)
	}

	scattered := core.NewRayAtTime(hit.Point, sampling.Generate(sampler), rayIn.Time)
	pdfValue := sampling.Value(scattered.Direction)
	if !(pdfValue > 0) || math.IsInf(pdfValue, 1) {
		return core.Ray{}, 0, false
	}

	scatteringPDF := hit.Material.ScatteringPDF(rayIn, hit, scattered)
	return scattered, scatteringPDF / pdfValue, true
}

// applyRussianRoulette decides whether a path continues and returns the compensation factor
func (pt *PathTracer) applyRussianRoulette(bounce int, throughput core.Vec3, sampler core.Sampler) (bool, float64) {
	if pt.config.RussianRouletteMinBounces <= 0 || bounce+1 < pt.config.RussianRouletteMinBounces {
		return true, 1.0
	}

	// Survival between 0.5 and 0.95 keeps the compensation between 1.05x and 2x
	survivalProb := math.Min(0.95, math.Max(0.5, throughput.Luminance()))
	if sampler.Get1D() > survivalProb {
		return false, 0
	}
	return true, 1.0 / survivalProb
}

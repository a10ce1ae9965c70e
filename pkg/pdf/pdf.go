// Package pdf implements the direction densities used to importance-sample
// scattered rays: uniform sphere, cosine lobe, shape-directed and 50/50 mixtures.
package pdf

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// PDF is a probability density over directions.
// Value and Generate are defined over the same distribution.
type PDF interface {
	// Value returns the solid-angle density of the given direction
	Value(direction core.Vec3) float64
	// Generate draws a direction from the distribution
	Generate(sampler core.Sampler) core.Vec3
}

// Target is anything that can be sampled by direction from an external point,
// typically a light-emitting shape or a collection of them
type Target interface {
	PDFValue(origin, direction core.Vec3) float64
	Random(origin core.Vec3, sampler core.Sampler) core.Vec3
}

// SpherePDF is uniform over the unit sphere
type SpherePDF struct{}

// Value returns 1/(4π) for every direction
func (SpherePDF) Value(direction core.Vec3) float64 {
	return 1.0 / (4.0 * math.Pi)
}

// Generate returns a uniform random unit vector
func (SpherePDF) Generate(sampler core.Sampler) core.Vec3 {
	return core.SampleOnUnitSphere(sampler.Get2D())
}

// CosinePDF is cosine-weighted about a surface normal
type CosinePDF struct {
	uvw core.ONB
}

// NewCosinePDF creates a cosine lobe around w (normalized internally)
func NewCosinePDF(w core.Vec3) *CosinePDF {
	return &CosinePDF{uvw: core.NewONB(w)}
}

// Value returns max(0, cos θ)/π
func (p *CosinePDF) Value(direction core.Vec3) float64 {
	cosTheta := direction.Normalize().Dot(p.uvw.W)
	return math.Max(0, cosTheta/math.Pi)
}

// Generate returns a cosine-weighted direction in the hemisphere around the normal
func (p *CosinePDF) Generate(sampler core.Sampler) core.Vec3 {
	return p.uvw.Local(core.SampleCosineDirection(sampler.Get2D()))
}

// HittablePDF samples directions from Origin toward a Target
type HittablePDF struct {
	Target Target
	Origin core.Vec3
}

// NewHittablePDF creates a density aimed at target as seen from origin
func NewHittablePDF(target Target, origin core.Vec3) *HittablePDF {
	return &HittablePDF{Target: target, Origin: origin}
}

// Value delegates to the target's density
func (p *HittablePDF) Value(direction core.Vec3) float64 {
	return p.Target.PDFValue(p.Origin, direction)
}

// Generate delegates to the target's sampling
func (p *HittablePDF) Generate(sampler core.Sampler) core.Vec3 {
	return p.Target.Random(p.Origin, sampler)
}

// MixturePDF blends two densities with equal weight
type MixturePDF struct {
	p [2]PDF
}

// NewMixturePDF creates the 50/50 mixture of p0 and p1
func NewMixturePDF(p0, p1 PDF) *MixturePDF {
	return &MixturePDF{p: [2]PDF{p0, p1}}
}

// Value returns the average of both densities
func (m *MixturePDF) Value(direction core.Vec3) float64 {
	return 0.5*m.p[0].Value(direction) + 0.5*m.p[1].Value(direction)
}

// Generate picks one child uniformly and draws from it
func (m *MixturePDF) Generate(sampler core.Sampler) core.Vec3 {
	if sampler.Get1D() < 0.5 {
		return m.p[0].Generate(sampler)
	}
	return m.p[1].Generate(sampler)
}

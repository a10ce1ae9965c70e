package pdf

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

// countingPDF records how often it is asked to generate
type countingPDF struct {
	PDF
	generated int
}

func (c *countingPDF) Generate(sampler core.Sampler) core.Vec3 {
	c.generated++
	return c.PDF.Generate(sampler)
}

// mockTarget always points at a fixed direction with a fixed density
type mockTarget struct {
	direction core.Vec3
	density   float64
}

func (m mockTarget) PDFValue(origin, direction core.Vec3) float64 { return m.density }
func (m mockTarget) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return m.direction
}

func TestSpherePDF_ValueIntegratesToOne(t *testing.T) {
	sampler := core.NewRandomSampler(42, 0)
	p := SpherePDF{}
	const n = 10000

	// E[1/p(d)] under p equals the measure of the support: 4π
	sum := 0.0
	for i := 0; i < n; i++ {
		d := p.Generate(sampler)
		sum += 1.0 / p.Value(d)
	}
	if mean := sum / n; math.Abs(mean-4*math.Pi) > 1e-9 {
		t.Errorf("Expected 4π, got %f", mean)
	}
}

func TestCosinePDF_GenerateMatchesValue(t *testing.T) {
	normals := []core.Vec3{
		core.NewVec3(0, 0, 1),
		core.NewVec3(0, 1, 0),
		core.NewVec3(1, 2, -3),
	}

	for _, normal := range normals {
		sampler := core.NewRandomSampler(42, 1)
		p := NewCosinePDF(normal)
		unitNormal := normal.Normalize()
		const n = 50000

		inverseSum := 0.0
		bins := [4]int{}
		for i := 0; i < n; i++ {
			d := p.Generate(sampler)
			value := p.Value(d)
			if value <= 0 {
				t.Fatalf("Generated direction %v has zero density for normal %v", d, normal)
			}
			inverseSum += 1.0 / value

			cosTheta := d.Normalize().Dot(unitNormal)
			bin := int(cosTheta * 4)
			if bin > 3 {
				bin = 3
			}
			bins[bin]++
		}

		// E[1/p(d)] equals the hemisphere's solid angle
		if mean := inverseSum / n; math.Abs(mean-2*math.Pi)/(2*math.Pi) > 0.05 {
			t.Errorf("Normal %v: expected E[1/p] ≈ 2π, got %f", normal, mean)
		}

		// P(a < cos θ < b) = b² - a² under the cosine lobe
		for i, count := range bins {
			a, b := float64(i)/4, float64(i+1)/4
			expected := b*b - a*a
			if got := float64(count) / n; math.Abs(got-expected) > 0.01 {
				t.Errorf("Normal %v bin %d: expected fraction %f, got %f", normal, i, expected, got)
			}
		}
	}
}

func TestCosinePDF_BelowSurfaceIsZero(t *testing.T) {
	p := NewCosinePDF(core.NewVec3(0, 1, 0))
	if v := p.Value(core.NewVec3(0, -1, 0)); v != 0 {
		t.Errorf("Expected zero density below the surface, got %f", v)
	}
	if v := p.Value(core.NewVec3(0, 5, 0)); math.Abs(v-1/math.Pi) > 1e-12 {
		t.Errorf("Expected 1/π along the normal, got %f", v)
	}
}

func TestMixturePDF_EqualWeights(t *testing.T) {
	sampler := core.NewRandomSampler(42, 2)
	a := &countingPDF{PDF: SpherePDF{}}
	b := &countingPDF{PDF: NewCosinePDF(core.NewVec3(0, 0, 1))}
	m := NewMixturePDF(a, b)

	const n = 20000
	for i := 0; i < n; i++ {
		m.Generate(sampler)
	}

	if fraction := float64(a.generated) / n; math.Abs(fraction-0.5) > 0.02 {
		t.Errorf("Expected first child drawn ≈50%% of the time, got %f", fraction)
	}
	if a.generated+b.generated != n {
		t.Errorf("Expected %d draws, got %d", n, a.generated+b.generated)
	}

	up := core.NewVec3(0, 0, 1)
	expected := 0.5*(1/(4*math.Pi)) + 0.5*(1/math.Pi)
	if v := m.Value(up); math.Abs(v-expected) > 1e-12 {
		t.Errorf("Expected mixture density %f, got %f", expected, v)
	}
}

func TestHittablePDF_DelegatesToTarget(t *testing.T) {
	sampler := core.NewRandomSampler(1, 1)
	target := mockTarget{direction: core.NewVec3(0, 1, 0), density: 0.25}
	p := NewHittablePDF(target, core.NewVec3(0, 0, 0))

	if v := p.Value(core.NewVec3(1, 0, 0)); v != 0.25 {
		t.Errorf("Expected delegated density 0.25, got %f", v)
	}
	if d := p.Generate(sampler); d != target.direction {
		t.Errorf("Expected delegated direction %v, got %v", target.direction, d)
	}
}

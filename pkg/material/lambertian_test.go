package material

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestLambertian_ScatterUsesCosinePDF(t *testing.T) {
	albedo := core.NewVec3(0.5, 0.7, 0.9)
	lambertian := NewLambertian(albedo)
	sampler := core.NewRandomSampler(42, 0)

	normal := core.NewVec3(0, 0, 1)
	hit := &HitRecord{Point: core.NewVec3(0, 0, 0), Normal: normal, FrontFace: true}
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	scatter, didScatter := lambertian.Scatter(ray, hit, sampler)
	if !didScatter {
		t.Fatal("Lambertian should always scatter")
	}
	if scatter.SkipPDF {
		t.Error("Lambertian scatter should not skip the PDF")
	}
	if scatter.Attenuation != albedo {
		t.Errorf("Expected attenuation %v, got %v", albedo, scatter.Attenuation)
	}

	// Generated directions agree with both the PDF and ScatteringPDF
	for i := 0; i < 100; i++ {
		direction := scatter.PDF.Generate(sampler)
		if direction.Dot(normal) < 0 {
			t.Fatalf("Generated direction %v below the surface", direction)
		}
		scattered := core.NewRay(hit.Point, direction)
		expected := direction.Normalize().Dot(normal) / math.Pi
		if got := lambertian.ScatteringPDF(ray, hit, scattered); math.Abs(got-expected) > 1e-10 {
			t.Errorf("ScatteringPDF mismatch: got %f, expected %f", got, expected)
		}
		if got := scatter.PDF.Value(direction); math.Abs(got-expected) > 1e-10 {
			t.Errorf("PDF value mismatch: got %f, expected %f", got, expected)
		}
	}
}

func TestLambertian_ScatteringPDFBelowSurface(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.8, 0.8, 0.8))
	hit := &HitRecord{Normal: core.NewVec3(0, 1, 0)}
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	if got := lambertian.ScatteringPDF(ray, hit, core.NewRay(hit.Point, core.NewVec3(0, -1, 0))); got != 0 {
		t.Errorf("Expected zero density below the surface, got %f", got)
	}
}

func TestLambertian_TexturedAlbedo(t *testing.T) {
	checker := NewCheckerColors(1.0, core.NewVec3(1, 1, 1), core.NewVec3(0, 0, 0))
	lambertian := NewTexturedLambertian(checker)
	sampler := core.NewRandomSampler(1, 0)
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	even, _ := lambertian.Scatter(ray, &HitRecord{Point: core.NewVec3(0.5, 0.5, 0.5), Normal: core.NewVec3(0, 1, 0)}, sampler)
	odd, _ := lambertian.Scatter(ray, &HitRecord{Point: core.NewVec3(1.5, 0.5, 0.5), Normal: core.NewVec3(0, 1, 0)}, sampler)

	if even.Attenuation != core.NewVec3(1, 1, 1) || odd.Attenuation != core.NewVec3(0, 0, 0) {
		t.Errorf("Unexpected checker attenuations %v and %v", even.Attenuation, odd.Attenuation)
	}
}

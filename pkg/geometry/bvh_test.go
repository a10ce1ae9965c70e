package geometry

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func randomSpheres(random *rand.Rand, n int) []Hittable {
	objects := make([]Hittable, n)
	for i := range objects {
		center := core.NewVec3(random.Float64()*20-10, random.Float64()*20-10, random.Float64()*20-10)
		objects[i] = NewSphere(center, 0.1+random.Float64(), nil)
	}
	return objects
}

func bruteForceHit(objects []Hittable, ray core.Ray, rayT core.Interval) (float64, bool) {
	closest := math.Inf(1)
	found := false
	for _, object := range objects {
		if hit, ok := object.Hit(ray, rayT); ok && hit.T < closest {
			closest = hit.T
			found = true
		}
	}
	return closest, found
}

func TestBVH_MatchesBruteForce(t *testing.T) {
	random := rand.New(rand.NewPCG(1, 2))

	for _, n := range []int{1, 2, 3, 17, 200} {
		objects := randomSpheres(random, n)
		bvh := NewBVH(objects)

		for i := 0; i < 1000; i++ {
			origin := core.NewVec3(random.Float64()*30-15, random.Float64()*30-15, random.Float64()*30-15)
			direction := core.NewVec3(random.Float64()*2-1, random.Float64()*2-1, random.Float64()*2-1)
			ray := core.NewRay(origin, direction)

			expectedT, expectedHit := bruteForceHit(objects, ray, defaultRayT)
			hit, ok := bvh.Hit(ray, defaultRayT)

			if ok != expectedHit {
				t.Fatalf("n=%d: BVH hit=%t, brute force hit=%t for ray %v -> %v", n, ok, expectedHit, origin, direction)
			}
			if ok && math.Abs(hit.T-expectedT) > 1e-9 {
				t.Fatalf("n=%d: BVH t=%f, brute force t=%f", n, hit.T, expectedT)
			}
		}
	}
}

func TestBVH_PreservesInputOrder(t *testing.T) {
	objects := randomSpheres(rand.New(rand.NewPCG(3, 4)), 50)
	original := make([]Hittable, len(objects))
	copy(original, objects)

	NewBVH(objects)

	for i := range objects {
		if objects[i] != original[i] {
			t.Fatal("NewBVH reordered the caller's slice")
		}
	}
}

func TestBVH_AllEqualCoordinates(t *testing.T) {
	objects := make([]Hittable, 100)
	for i := range objects {
		objects[i] = NewSphere(core.NewVec3(1, 1, 1), 0.5, nil)
	}

	bvh := NewBVH(objects)
	if bvh.PrimitiveCount() != 100 {
		t.Errorf("Expected 100 primitives, got %d", bvh.PrimitiveCount())
	}

	hit, ok := bvh.Hit(core.NewRay(core.NewVec3(1, 1, -5), core.NewVec3(0, 0, 1)), defaultRayT)
	if !ok || math.Abs(hit.T-5.5) > 1e-12 {
		t.Errorf("Expected hit at t=5.5, got %v (hit=%t)", hit, ok)
	}

	stats := bvh.Stats()
	if stats.MaxDepth > 8 {
		t.Errorf("Expected balanced tree depth for 100 objects, got %d", stats.MaxDepth)
	}
}

func TestBVH_SingleObjectAndEmpty(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, nil)
	bvh := NewBVH([]Hittable{sphere})

	if bvh.Left != bvh.Right {
		t.Error("Expected a single object to occupy both children")
	}
	if bvh.PrimitiveCount() != 1 {
		t.Errorf("Expected 1 primitive, got %d", bvh.PrimitiveCount())
	}
	if _, ok := bvh.Hit(core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1)), defaultRayT); !ok {
		t.Error("Expected hit on single-object BVH")
	}

	empty := NewBVH(nil)
	if _, ok := empty.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1)), defaultRayT); ok {
		t.Error("Expected empty BVH to miss")
	}
	if empty.PDFValue(core.Vec3{}, core.NewVec3(0, 0, 1)) != 0 {
		t.Error("Expected zero density for empty BVH")
	}
}

func TestBVH_LightSamplingMatchesList(t *testing.T) {
	var quads []Hittable
	for i := 0; i < 7; i++ {
		x := float64(i)*3 - 9
		quads = append(quads, NewQuad(core.NewVec3(x, 5, -1), core.NewVec3(2, 0, 0), core.NewVec3(0, 0, 2), nil))
	}
	list := NewHittableList(quads...)
	bvh := NewBVH(quads)
	origin := core.NewVec3(0, 0, 0)
	sampler := core.NewRandomSampler(13, 0)

	for i := 0; i < 200; i++ {
		direction := list.Random(origin, sampler)
		listPDF := list.PDFValue(origin, direction)
		bvhPDF := bvh.PDFValue(origin, direction)
		if math.Abs(listPDF-bvhPDF) > 1e-9*math.Max(1, listPDF) {
			t.Fatalf("Density mismatch for %v: list %f, bvh %f", direction, listPDF, bvhPDF)
		}
	}

	for i := 0; i < 200; i++ {
		direction := bvh.Random(origin, sampler)
		if _, ok := bvh.Hit(core.NewRay(origin, direction), defaultRayT); !ok {
			t.Fatalf("BVH light sample %v misses every quad", direction)
		}
	}
}

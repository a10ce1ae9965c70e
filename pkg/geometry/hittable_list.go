package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// HittableList is an ordered collection tested linearly.
// It doubles as the light collection handed to the integrator.
type HittableList struct {
	Objects []Hittable
	bbox    core.AABB
	count   int
}

// NewHittableList creates a list holding objects
func NewHittableList(objects ...Hittable) *HittableList {
	list := &HittableList{bbox: core.EmptyAABB}
	for _, object := range objects {
		list.Add(object)
	}
	return list
}

// Add appends an object and grows the cached bounding box
func (l *HittableList) Add(object Hittable) {
	l.Objects = append(l.Objects, object)
	l.bbox = l.bbox.Union(object.BoundingBox())
	l.count += PrimitiveCount(object)
}

// Len returns the number of direct children
func (l *HittableList) Len() int {
	return len(l.Objects)
}

// PrimitiveCount returns the number of leaf primitives below the list
func (l *HittableList) PrimitiveCount() int {
	return l.count
}

// Hit returns the closest hit among all objects
func (l *HittableList) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	closestSoFar := rayT.Max

	for _, object := range l.Objects {
		if hit, ok := object.Hit(ray, core.NewInterval(rayT.Min, closestSoFar)); ok {
			closest = hit
			closestSoFar = hit.T
		}
	}

	return closest, closest != nil
}

// BoundingBox returns the union of all child boxes
func (l *HittableList) BoundingBox() core.AABB {
	return l.bbox
}

// PDFValue averages the children's densities weighted by their primitive counts
func (l *HittableList) PDFValue(origin, direction core.Vec3) float64 {
	if l.count == 0 {
		return 0
	}

	sum := 0.0
	for _, object := range l.Objects {
		sum += float64(PrimitiveCount(object)) * pdfValue(object, origin, direction)
	}
	return sum / float64(l.count)
}

// Random picks a child with probability proportional to its primitive count
// and returns a direction toward it
func (l *HittableList) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	if l.count == 0 {
		return core.NewVec3(1, 0, 0)
	}

	pick := min(int(sampler.Get1D()*float64(l.count)), l.count-1)
	for _, object := range l.Objects {
		n := PrimitiveCount(object)
		if pick < n {
			return randomToward(object, origin, sampler)
		}
		pick -= n
	}
	return randomToward(l.Objects[len(l.Objects)-1], origin, sampler)
}

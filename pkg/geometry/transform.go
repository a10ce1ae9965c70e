package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Translate moves a hittable by a fixed offset.
// Rays are moved into object space instead of moving the object.
type Translate struct {
	Object Hittable
	Offset core.Vec3
	bbox   core.AABB
}

// NewTranslate wraps object displaced by offset
func NewTranslate(object Hittable, offset core.Vec3) *Translate {
	return &Translate{
		Object: object,
		Offset: offset,
		bbox:   object.BoundingBox().Shift(offset),
	}
}

// Hit intersects the offset ray with the wrapped object and moves the hit point back
func (t *Translate) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	offsetRay := core.NewRayAtTime(ray.Origin.Subtract(t.Offset), ray.Direction, ray.Time)

	hit, ok := t.Object.Hit(offsetRay, rayT)
	if !ok {
		return nil, false
	}

	hit.Point = hit.Point.Add(t.Offset)
	return hit, true
}

// BoundingBox returns the wrapped box shifted by the offset
func (t *Translate) BoundingBox() core.AABB {
	return t.bbox
}

// PrimitiveCount forwards to the wrapped object
func (t *Translate) PrimitiveCount() int {
	return PrimitiveCount(t.Object)
}

// PDFValue evaluates the wrapped object's density from the origin in object space
func (t *Translate) PDFValue(origin, direction core.Vec3) float64 {
	return pdfValue(t.Object, origin.Subtract(t.Offset), direction)
}

// Random samples the wrapped object; directions are unchanged by translation
func (t *Translate) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return randomToward(t.Object, origin.Subtract(t.Offset), sampler)
}

// RotateY rotates a hittable about the Y axis
type RotateY struct {
	Object   Hittable
	sinTheta float64
	cosTheta float64
	bbox     core.AABB
}

// NewRotateY wraps object rotated by angle degrees about +Y
func NewRotateY(object Hittable, angle float64) *RotateY {
	radians := core.DegreesToRadians(angle)
	r := &RotateY{
		Object:   object,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
	}

	// Rotate all eight corners of the object's box and take their extent
	bbox := object.BoundingBox()
	minCorner := core.NewVec3(math.Inf(1), math.Inf(1), math.Inf(1))
	maxCorner := core.NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1))

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				x := float64(i)*bbox.X.Max + float64(1-i)*bbox.X.Min
				y := float64(j)*bbox.Y.Max + float64(1-j)*bbox.Y.Min
				z := float64(k)*bbox.Z.Max + float64(1-k)*bbox.Z.Min

				corner := r.toWorld(core.NewVec3(x, y, z))
				minCorner = core.NewVec3(math.Min(minCorner.X, corner.X), math.Min(minCorner.Y, corner.Y), math.Min(minCorner.Z, corner.Z))
				maxCorner = core.NewVec3(math.Max(maxCorner.X, corner.X), math.Max(maxCorner.Y, corner.Y), math.Max(maxCorner.Z, corner.Z))
			}
		}
	}

	r.bbox = core.NewAABBFromPoints(minCorner, maxCorner)
	return r
}

// toObject rotates a world-space vector by -θ
func (r *RotateY) toObject(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X-r.sinTheta*v.Z,
		v.Y,
		r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// toWorld rotates an object-space vector by +θ
func (r *RotateY) toWorld(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X+r.sinTheta*v.Z,
		v.Y,
		-r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// Hit intersects in object space and rotates the point and normal back to world space
func (r *RotateY) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	rotated := core.NewRayAtTime(r.toObject(ray.Origin), r.toObject(ray.Direction), ray.Time)

	hit, ok := r.Object.Hit(rotated, rayT)
	if !ok {
		return nil, false
	}

	hit.Point = r.toWorld(hit.Point)
	hit.Normal = r.toWorld(hit.Normal)
	return hit, true
}

// BoundingBox returns the box around the rotated corners of the wrapped box
func (r *RotateY) BoundingBox() core.AABB {
	return r.bbox
}

// PrimitiveCount forwards to the wrapped object
func (r *RotateY) PrimitiveCount() int {
	return PrimitiveCount(r.Object)
}

// PDFValue evaluates the wrapped object's density in object space
func (r *RotateY) PDFValue(origin, direction core.Vec3) float64 {
	return pdfValue(r.Object, r.toObject(origin), r.toObject(direction))
}

// Random samples the wrapped object in object space and rotates the result back
func (r *RotateY) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return r.toWorld(randomToward(r.Object, r.toObject(origin), sampler))
}

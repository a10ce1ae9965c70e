package core

import "math"

// aabbPadding is the minimum thickness of every axis of a bounding box.
// Flat shapes like quads would otherwise produce zero-volume boxes.
const aabbPadding = 1e-4

// AABB represents an axis-aligned bounding box as three per-axis intervals
type AABB struct {
	X, Y, Z Interval
}

// EmptyAABB contains no points; it is the identity for Union
var EmptyAABB = AABB{X: EmptyInterval, Y: EmptyInterval, Z: EmptyInterval}

// NewAABB creates a box from three axis intervals, padding thin axes
func NewAABB(x, y, z Interval) AABB {
	box := AABB{X: x, Y: y, Z: z}
	box.padToMinimums()
	return box
}

// NewAABBFromPoints creates the box spanned by two corner points, in any order
func NewAABBFromPoints(a, b Vec3) AABB {
	return NewAABB(
		NewInterval(min(a.X, b.X), max(a.X, b.X)),
		NewInterval(min(a.Y, b.Y), max(a.Y, b.Y)),
		NewInterval(min(a.Z, b.Z), max(a.Z, b.Z)),
	)
}

// Union returns the smallest box enclosing both boxes. No padding is reapplied.
func (aabb AABB) Union(other AABB) AABB {
	return AABB{
		X: IntervalUnion(aabb.X, other.X),
		Y: IntervalUnion(aabb.Y, other.Y),
		Z: IntervalUnion(aabb.Z, other.Z),
	}
}

// AxisInterval returns the interval for axis 0=X, 1=Y, 2=Z
func (aabb AABB) AxisInterval(axis int) Interval {
	switch axis {
	case 1:
		return aabb.Y
	case 2:
		return aabb.Z
	default:
		return aabb.X
	}
}

// Hit tests if a ray intersects the box within rayT using the slab method.
// Zero direction components divide to ±Inf, which the interval logic handles without branching on sign.
func (aabb AABB) Hit(ray Ray, rayT Interval) bool {
	for axis := 0; axis < 3; axis++ {
		ax := aabb.AxisInterval(axis)
		origin := ray.Origin.Axis(axis)
		invDirection := 1.0 / ray.Direction.Axis(axis)

		t0 := (ax.Min - origin) * invDirection
		t1 := (ax.Max - origin) * invDirection
		if invDirection < 0 {
			t0, t1 = t1, t0
		}

		if t0 > rayT.Min {
			rayT.Min = t0
		}
		if t1 < rayT.Max {
			rayT.Max = t1
		}

		if rayT.Min >= rayT.Max {
			return false
		}
	}
	return true
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent.
// Ties resolve toward Z, then X.
func (aabb AABB) LongestAxis() int {
	if aabb.X.Size() > aabb.Y.Size() {
		if aabb.X.Size() > aabb.Z.Size() {
			return 0
		}
		return 2
	}
	if aabb.Y.Size() > aabb.Z.Size() {
		return 1
	}
	return 2
}

// Contains reports whether the point lies inside or on the box
func (aabb AABB) Contains(p Vec3) bool {
	return aabb.X.Contains(p.X) && aabb.Y.Contains(p.Y) && aabb.Z.Contains(p.Z)
}

// Center returns the center point of the box
func (aabb AABB) Center() Vec3 {
	return NewVec3(
		(aabb.X.Min+aabb.X.Max)*0.5,
		(aabb.Y.Min+aabb.Y.Max)*0.5,
		(aabb.Z.Min+aabb.Z.Max)*0.5,
	)
}

// Shift returns the box translated by offset
func (aabb AABB) Shift(offset Vec3) AABB {
	return NewAABB(aabb.X.Shift(offset.X), aabb.Y.Shift(offset.Y), aabb.Z.Shift(offset.Z))
}

// padToMinimums widens any non-empty axis thinner than aabbPadding to exactly that size,
// centered on the original interval
func (aabb *AABB) padToMinimums() {
	aabb.X = padInterval(aabb.X)
	aabb.Y = padInterval(aabb.Y)
	aabb.Z = padInterval(aabb.Z)
}

func padInterval(i Interval) Interval {
	if i.IsEmpty() || i.Size() >= aabbPadding {
		return i
	}
	center := (i.Min + i.Max) * 0.5
	padded := Interval{Min: center - aabbPadding/2, Max: center + aabbPadding/2}
	// rounding far from the origin can leave the padded size a few ulps short
	for padded.Size() < aabbPadding {
		padded.Max = math.Nextafter(padded.Max, math.Inf(1))
	}
	return padded
}

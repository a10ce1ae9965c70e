package geometry

import (
	"slices"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// BVHNode is an interior node of a bounding volume hierarchy.
// Children are either further nodes or the primitives themselves.
type BVHNode struct {
	Left  Hittable
	Right Hittable
	bbox  core.AABB
	count int
}

// NewBVH builds a hierarchy over a copy of objects
func NewBVH(objects []Hittable) *BVHNode {
	if len(objects) == 0 {
		return &BVHNode{bbox: core.EmptyAABB}
	}

	// Sorting happens in place; keep the caller's slice intact
	shapes := slices.Clone(objects)
	return buildBVH(shapes, 0, len(shapes))
}

// NewBVHFromList builds a hierarchy over the objects of a list
func NewBVHFromList(list *HittableList) *BVHNode {
	return NewBVH(list.Objects)
}

// buildBVH recursively partitions objects[start:end] at the median along the longest axis
func buildBVH(objects []Hittable, start, end int) *BVHNode {
	bbox := core.EmptyAABB
	for _, object := range objects[start:end] {
		bbox = bbox.Union(object.BoundingBox())
	}
	axis := bbox.LongestAxis()

	node := &BVHNode{bbox: bbox}

	switch span := end - start; span {
	case 1:
		node.Left = objects[start]
		node.Right = objects[start]
	case 2:
		node.Left = objects[start]
		node.Right = objects[start+1]
	default:
		slices.SortFunc(objects[start:end], func(a, b Hittable) int {
			aMin := a.BoundingBox().AxisInterval(axis).Min
			bMin := b.BoundingBox().AxisInterval(axis).Min
			switch {
			case aMin < bMin:
				return -1
			case aMin > bMin:
				return 1
			}
			return 0
		})

		mid := start + span/2
		node.Left = buildBVH(objects, start, mid)
		node.Right = buildBVH(objects, mid, end)
	}

	node.count = PrimitiveCount(node.Left)
	if node.Right != node.Left {
		node.count += PrimitiveCount(node.Right)
	}
	return node
}

// Hit tests the left subtree first and limits the right subtree to anything closer
func (n *BVHNode) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	if n.Left == nil || !n.bbox.Hit(ray, rayT) {
		return nil, false
	}

	leftHit, hitLeft := n.Left.Hit(ray, rayT)

	rightT := rayT
	if hitLeft {
		rightT = core.NewInterval(rayT.Min, leftHit.T)
	}
	rightHit, hitRight := n.Right.Hit(ray, rightT)

	if hitRight {
		return rightHit, true
	}
	return leftHit, hitLeft
}

// BoundingBox returns the union of the children's boxes
func (n *BVHNode) BoundingBox() core.AABB {
	return n.bbox
}

// PrimitiveCount returns the number of distinct primitives under the node
func (n *BVHNode) PrimitiveCount() int {
	return n.count
}

// PDFValue averages the children's densities weighted by their primitive counts
func (n *BVHNode) PDFValue(origin, direction core.Vec3) float64 {
	if n.Left == nil {
		return 0
	}
	if n.Right == n.Left {
		return pdfValue(n.Left, origin, direction)
	}

	leftCount := float64(PrimitiveCount(n.Left))
	rightCount := float64(PrimitiveCount(n.Right))
	return (leftCount*pdfValue(n.Left, origin, direction) + rightCount*pdfValue(n.Right, origin, direction)) /
		(leftCount + rightCount)
}

// Random descends into a child with probability proportional to its primitive count
func (n *BVHNode) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	if n.Left == nil {
		return core.NewVec3(1, 0, 0)
	}
	if n.Right == n.Left {
		return randomToward(n.Left, origin, sampler)
	}

	leftCount := float64(PrimitiveCount(n.Left))
	if sampler.Get1D()*float64(n.count) < leftCount {
		return randomToward(n.Left, origin, sampler)
	}
	return randomToward(n.Right, origin, sampler)
}

// BVHStats describes the shape of a hierarchy
type BVHStats struct {
	InteriorNodes int
	Primitives    int
	MaxDepth      int
	AvgLeafDepth  float64
}

// Stats walks the hierarchy and collects node counts and depths
func (n *BVHNode) Stats() BVHStats {
	stats := BVHStats{}
	leaves := 0
	depthSum := 0

	var walk func(h Hittable, depth int)
	walk = func(h Hittable, depth int) {
		node, ok := h.(*BVHNode)
		if !ok {
			leaves++
			depthSum += depth
			stats.MaxDepth = max(stats.MaxDepth, depth)
			return
		}
		if node.Left == nil {
			return
		}
		stats.InteriorNodes++
		walk(node.Left, depth+1)
		if node.Right != node.Left {
			walk(node.Right, depth+1)
		}
	}
	walk(n, 0)

	stats.Primitives = n.count
	if leaves > 0 {
		stats.AvgLeafDepth = float64(depthSum) / float64(leaves)
	}
	return stats
}

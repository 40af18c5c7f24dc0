package scene

import (
	"math/rand"
	"sort"
	"time"

	"github.com/david14higgins/Pathtracer/log"
	"github.com/david14higgins/Pathtracer/types"
)

// BVHNode is either an internal node with two children, or a leaf wrapping a
// single primitive, with Prim nil on internal nodes and Left/Right nil on
// leaves.
type BVHNode struct {
	Box         AABB
	Left, Right *BVHNode
	Prim        Shape
}

func (n *BVHNode) isLeaf() bool {
	return n.Prim != nil
}

// bvhBuilder is a small stateful type that logs timing and shape once it's
// done partitioning. partition implements a median split on a per-node
// randomly chosen axis rather than a surface-area-heuristic search.
type bvhBuilder struct {
	logger log.Logger
	rng    *rand.Rand
	nodes  int
	leaves int
}

// BuildBVH constructs a BVH over prims. rng supplies the per-node random
// axis choice; pass a seeded *rand.Rand for deterministic builds.
func BuildBVH(prims []Shape, rng *rand.Rand) *BVHNode {
	b := &bvhBuilder{logger: log.New("bvh"), rng: rng}

	start := time.Now()
	span := make([]Shape, len(prims))
	copy(span, prims)
	root := b.partition(span)
	b.logger.Debugf("bvh build: %d primitives, %d nodes, %d leaves, %s",
		len(prims), b.nodes, b.leaves, time.Since(start))
	return root
}

// partition recursively builds a subtree over span, which the caller owns —
// sorting it in place does not affect the Scene's primitive list, since
// BuildBVH made its own copy up front.
func (b *bvhBuilder) partition(span []Shape) *BVHNode {
	switch len(span) {
	case 0:
		return nil
	case 1:
		b.leaves++
		return &BVHNode{Box: span[0].BoundingBox(), Prim: span[0]}
	case 2:
		b.leaves += 2
		axis := b.rng.Intn(3)
		left, right := span[0], span[1]
		if right.BoundingBox().Min.Get(axis) < left.BoundingBox().Min.Get(axis) {
			left, right = right, left
		}
		leftNode := &BVHNode{Box: left.BoundingBox(), Prim: left}
		rightNode := &BVHNode{Box: right.BoundingBox(), Prim: right}
		b.nodes++
		return &BVHNode{
			Box:   SurroundingBox(leftNode.Box, rightNode.Box),
			Left:  leftNode,
			Right: rightNode,
		}
	default:
		axis := b.rng.Intn(3)
		sort.SliceStable(span, func(i, j int) bool {
			return span[i].BoundingBox().Min.Get(axis) < span[j].BoundingBox().Min.Get(axis)
		})
		mid := len(span) / 2
		left := b.partition(span[:mid])
		right := b.partition(span[mid:])
		b.nodes++
		return &BVHNode{
			Box:   SurroundingBox(left.Box, right.Box),
			Left:  left,
			Right: right,
		}
	}
}

// Intersect walks the tree without pruning against a running best-t.
// Correctness is unaffected, only speed.
func (n *BVHNode) Intersect(ray types.Ray) (t float64, prim Shape, ok bool) {
	if n == nil || !n.Box.Intersects(ray) {
		return 0, nil, false
	}

	if n.isLeaf() {
		if t, hit := n.Prim.Intersect(ray); hit {
			return t, n.Prim, true
		}
		return 0, nil, false
	}

	lt, lp, lok := n.Left.Intersect(ray)
	rt, rp, rok := n.Right.Intersect(ray)

	switch {
	case lok && rok:
		if lt <= rt {
			return lt, lp, true
		}
		return rt, rp, true
	case lok:
		return lt, lp, true
	case rok:
		return rt, rp, true
	default:
		return 0, nil, false
	}
}

// IntersectShadow reports whether any primitive occludes the ray before
// maxDist, stopping traversal at the first such hit.
func (n *BVHNode) IntersectShadow(ray types.Ray, maxDist float64) bool {
	if n == nil || !n.Box.Intersects(ray) {
		return false
	}

	if n.isLeaf() {
		t, hit := n.Prim.Intersect(ray)
		return hit && t < maxDist
	}

	if n.Left.IntersectShadow(ray, maxDist) {
		return true
	}
	return n.Right.IntersectShadow(ray, maxDist)
}

// IntersectLinear performs a brute-force linear scan over prims, used by
// tests (and the renderer when useBVH is disabled) to check agreement with
// the BVH traversal.
func IntersectLinear(prims []Shape, ray types.Ray) (t float64, prim Shape, ok bool) {
	best := 0.0
	var bestPrim Shape
	found := false

	for _, p := range prims {
		if pt, hit := p.Intersect(ray); hit && (!found || pt < best) {
			best, bestPrim, found = pt, p, true
		}
	}
	return best, bestPrim, found
}

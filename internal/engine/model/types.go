// Package model poses model skeletons over time for renderers and tools.
package model

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/mdxcore/pkg/mdx"
)

// Pose is the evaluated state of one node at the current time.
type Pose struct {
	Node   mdx.Node
	Parent int // Index into the pose list, or -1 for roots

	Translation mgl32.Vec3
	Rotation    mgl32.Quat
	Scaling     mgl32.Vec3

	// Local is relative to the parent, World is model space.
	Local mgl32.Mat4
	World mgl32.Mat4

	inherited mgl32.Mat4
}

// Name returns the node name.
func (p *Pose) Name() string { return p.Node.Base().Name }

// Position returns the node pivot moved into model space.
func (p *Pose) Position() mgl32.Vec3 {
	return TransformPoint(p.World, p.Node.Base().PivotPoint)
}

// Bounds holds the axis-aligned bounding box of posed points.
type Bounds struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// emptyBounds is inverted so the first point sets both corners.
func emptyBounds() Bounds {
	return Bounds{
		Min: mgl32.Vec3{1e10, 1e10, 1e10},
		Max: mgl32.Vec3{-1e10, -1e10, -1e10},
	}
}

func (b *Bounds) extend(p mgl32.Vec3) {
	for i := 0; i < 3; i++ {
		b.Min[i] = min(b.Min[i], p[i])
		b.Max[i] = max(b.Max[i], p[i])
	}
}

// Vertex is one skeleton joint in model space.
type Vertex struct {
	Position mgl32.Vec3
	Node     int
}

// SkeletonMesh is a line list joining every posed node to its parent.
type SkeletonMesh struct {
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
}

package model

import (
	"github.com/go-gl/mathgl/mgl32"
)

// BuildLocalMatrix builds the node transform relative to its parent:
// scale and rotate around the pivot, then translate.
func BuildLocalMatrix(pivot, translation mgl32.Vec3, rotation mgl32.Quat, scaling mgl32.Vec3) mgl32.Mat4 {
	m := mgl32.Translate3D(pivot[0]+translation[0], pivot[1]+translation[1], pivot[2]+translation[2])
	m = m.Mul4(rotation.Normalize().Mat4())
	m = m.Mul4(mgl32.Scale3D(scaling[0], scaling[1], scaling[2]))
	return m.Mul4(mgl32.Translate3D(-pivot[0], -pivot[1], -pivot[2]))
}

// inheritedMatrix returns the part of the parent's world transform a child
// picks up given its DontInherit flags. Skipped components are dropped from
// the parent's pose, not from its own parents.
func inheritedMatrix(parent *Pose, base *inheritance) mgl32.Mat4 {
	if !base.translation && !base.rotation && !base.scaling {
		return parent.World
	}
	if base.translation && base.rotation && base.scaling {
		return parentOf(parent)
	}

	t, r, s := parent.Translation, parent.Rotation, parent.Scaling
	if base.translation {
		t = mgl32.Vec3{}
	}
	if base.rotation {
		r = mgl32.QuatIdent()
	}
	if base.scaling {
		s = mgl32.Vec3{1, 1, 1}
	}
	local := BuildLocalMatrix(parent.Node.Base().PivotPoint, t, r, s)
	return parentOf(parent).Mul4(local)
}

// parentOf returns the world matrix the parent itself inherited.
func parentOf(p *Pose) mgl32.Mat4 {
	return p.inherited
}

type inheritance struct {
	translation, rotation, scaling bool
}

// TransformPoint applies a 4x4 matrix transformation to a 3D point.
func TransformPoint(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}

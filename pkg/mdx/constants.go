package mdx

import "github.com/go-gl/mathgl/mgl32"

// InvalidID marks an absent cross reference in the file formats.
const InvalidID = -1

// Default values of freshly created tracks.
var (
	DefaultTranslation = mgl32.Vec3{0, 0, 0}
	DefaultRotation    = mgl32.QuatIdent()
	DefaultScaling     = mgl32.Vec3{1, 1, 1}
	DefaultColor       = mgl32.Vec3{1, 1, 1}
)

package mdx

import "github.com/go-gl/mathgl/mgl32"

// Geoset is a renderable mesh. Only its links and selection settings live in
// the core; vertex data belongs to the codecs and the renderer.
type Geoset struct {
	SelectionGroup int
	Unselectable   bool
	Extent         Extent
	Material       Reference[*Material]
}

// NewGeoset creates a geoset without a material.
func NewGeoset() *Geoset {
	return &Geoset{}
}

// GeosetAnimation animates the color and alpha of one geoset.
type GeosetAnimation struct {
	UseColor   bool
	DropShadow bool
	Color      *Track[mgl32.Vec3]
	Alpha      *Track[float32]
	Geoset     Reference[*Geoset]
}

// NewGeosetAnimation creates a fully opaque white geoset animation.
func NewGeosetAnimation() *GeosetAnimation {
	return &GeosetAnimation{
		Color: NewTrack[mgl32.Vec3](Vector3{}, DefaultColor),
		Alpha: NewTrack[float32](Float{}, 1),
	}
}

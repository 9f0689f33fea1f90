package mdx

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// FilterMode is how a material layer blends with what is behind it.
type FilterMode int32

const (
	FilterNone FilterMode = iota
	FilterTransparent
	FilterBlend
	FilterAdditive
	FilterAdditiveAlpha
	FilterModulate
	FilterModulate2x
)

var filterModeNames = []string{"None", "Transparent", "Blend", "Additive", "AddAlpha", "Modulate", "Modulate2x"}

// String returns the filter mode name used in text models.
func (m FilterMode) String() string {
	if m >= 0 && int(m) < len(filterModeNames) {
		return filterModeNames[m]
	}
	return fmt.Sprintf("Unknown(%d)", int32(m))
}

// ParseFilterMode parses a name produced by String (case-insensitive).
func ParseFilterMode(s string) (FilterMode, error) {
	for i, name := range filterModeNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return FilterMode(i), nil
		}
	}
	if strings.TrimSpace(s) == "" {
		return FilterNone, nil
	}
	return FilterNone, fmt.Errorf("unknown filter mode %q", s)
}

// Material is an ordered stack of layers.
type Material struct {
	PriorityPlane       int
	ConstantColor       bool
	FullResolution      bool
	SortPrimitivesFarZ  bool
	SortPrimitivesNearZ bool
	Layers              []*MaterialLayer
}

// NewMaterial creates a material without layers.
func NewMaterial() *Material {
	return &Material{}
}

// AddLayer appends a new layer and returns it.
func (m *Material) AddLayer() *MaterialLayer {
	layer := NewMaterialLayer()
	m.Layers = append(m.Layers, layer)
	return layer
}

// MaterialLayer is one textured pass of a material.
type MaterialLayer struct {
	FilterMode           FilterMode
	CoordID              int
	Unshaded             bool
	Unfogged             bool
	TwoSided             bool
	SphereEnvironmentMap bool
	NoDepthTest          bool
	NoDepthSet           bool

	// TextureID flips between textures over time (flip-book animation).
	TextureID *Track[int]
	Alpha     *Track[float32]

	Texture          Reference[*Texture]
	TextureAnimation Reference[*TextureAnimation]
}

// NewMaterialLayer creates an opaque layer without a texture.
func NewMaterialLayer() *MaterialLayer {
	return &MaterialLayer{
		TextureID: NewTrack[int](Integer{}, InvalidID),
		Alpha:     NewTrack[float32](Float{}, 1),
	}
}

// TextureAnimation scrolls, rotates and scales texture coordinates.
type TextureAnimation struct {
	Translation *Track[mgl32.Vec3]
	Rotation    *Track[mgl32.Quat]
	Scaling     *Track[mgl32.Vec3]
}

// NewTextureAnimation creates an identity texture animation.
func NewTextureAnimation() *TextureAnimation {
	return &TextureAnimation{
		Translation: NewTrack[mgl32.Vec3](Vector3{}, DefaultTranslation),
		Rotation:    NewTrack[mgl32.Quat](Quaternion{}, DefaultRotation),
		Scaling:     NewTrack[mgl32.Vec3](Vector3{}, DefaultScaling),
	}
}

// Texture is an image file or a team-color style replaceable texture.
type Texture struct {
	FileName      string
	ReplaceableID int
	WrapWidth     bool
	WrapHeight    bool
}

// NewTexture creates a texture for the given file.
func NewTexture(fileName string) *Texture {
	return &Texture{FileName: fileName}
}

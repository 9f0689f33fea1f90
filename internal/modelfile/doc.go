// Package modelfile reads and writes models as YAML documents.
//
// Cross references are stored as IDs (positions in their list, -1 or absent
// for none) and resolved with an mdx.Attacher after the whole document has
// been decoded, so objects may reference ones that appear later in the file.
// Quaternions are written as [x, y, z, w].
package modelfile

type modelDoc struct {
	Name            string        `yaml:"name"`
	AnimationFile   string        `yaml:"animationFile,omitempty"`
	BlendTime       int           `yaml:"blendTime"`
	Extent          *extentDoc    `yaml:"extent,omitempty"`
	Sequences       []sequenceDoc `yaml:"sequences,omitempty"`
	GlobalSequences []int         `yaml:"globalSequences,omitempty"`
	Textures        []textureDoc  `yaml:"textures,omitempty"`
	Materials       []materialDoc `yaml:"materials,omitempty"`

	TextureAnimations []textureAnimationDoc `yaml:"textureAnimations,omitempty"`

	Geosets          []geosetDoc          `yaml:"geosets,omitempty"`
	GeosetAnimations []geosetAnimationDoc `yaml:"geosetAnimations,omitempty"`
	Nodes            []nodeDoc            `yaml:"nodes,omitempty"`
}

type extentDoc struct {
	Min    [3]float32 `yaml:"min,flow"`
	Max    [3]float32 `yaml:"max,flow"`
	Radius float32    `yaml:"radius,omitempty"`
}

type sequenceDoc struct {
	Name       string     `yaml:"name"`
	Interval   [2]int     `yaml:"interval,flow"`
	NonLooping bool       `yaml:"nonLooping,omitempty"`
	SyncPoint  int        `yaml:"syncPoint,omitempty"`
	Rarity     float32    `yaml:"rarity,omitempty"`
	MoveSpeed  float32    `yaml:"moveSpeed,omitempty"`
	Extent     *extentDoc `yaml:"extent,omitempty"`
}

type textureDoc struct {
	File          string `yaml:"file"`
	ReplaceableID int    `yaml:"replaceableId,omitempty"`
	WrapWidth     bool   `yaml:"wrapWidth,omitempty"`
	WrapHeight    bool   `yaml:"wrapHeight,omitempty"`
}

type materialDoc struct {
	PriorityPlane int        `yaml:"priorityPlane,omitempty"`
	Flags         []string   `yaml:"flags,omitempty,flow"`
	Layers        []layerDoc `yaml:"layers"`
}

type layerDoc struct {
	FilterMode       string   `yaml:"filterMode"`
	CoordID          int      `yaml:"coordId,omitempty"`
	Flags            []string `yaml:"flags,omitempty,flow"`
	Texture          *int     `yaml:"texture,omitempty"`
	TextureAnimation *int     `yaml:"textureAnimation,omitempty"`

	TextureID *trackDoc[int]     `yaml:"textureId,omitempty"`
	Alpha     *trackDoc[float32] `yaml:"alpha,omitempty"`
}

type textureAnimationDoc struct {
	Translation *trackDoc[[3]float32] `yaml:"translation,omitempty"`
	Rotation    *trackDoc[[4]float32] `yaml:"rotation,omitempty"`
	Scaling     *trackDoc[[3]float32] `yaml:"scaling,omitempty"`
}

type geosetDoc struct {
	Material       *int       `yaml:"material,omitempty"`
	SelectionGroup int        `yaml:"selectionGroup,omitempty"`
	Unselectable   bool       `yaml:"unselectable,omitempty"`
	Extent         *extentDoc `yaml:"extent,omitempty"`
}

type geosetAnimationDoc struct {
	Geoset     *int                  `yaml:"geoset,omitempty"`
	UseColor   bool                  `yaml:"useColor,omitempty"`
	DropShadow bool                  `yaml:"dropShadow,omitempty"`
	Alpha      *trackDoc[float32]    `yaml:"alpha,omitempty"`
	Color      *trackDoc[[3]float32] `yaml:"color,omitempty"`
}

type nodeDoc struct {
	Kind   string     `yaml:"kind"`
	Name   string     `yaml:"name"`
	Parent *int       `yaml:"parent,omitempty"`
	Pivot  [3]float32 `yaml:"pivot,flow"`
	Flags  []string   `yaml:"flags,omitempty,flow"`

	Translation *trackDoc[[3]float32] `yaml:"translation,omitempty"`
	Rotation    *trackDoc[[4]float32] `yaml:"rotation,omitempty"`
	Scaling     *trackDoc[[3]float32] `yaml:"scaling,omitempty"`

	// Bone
	Geoset          *int `yaml:"geoset,omitempty"`
	GeosetAnimation *int `yaml:"geosetAnimation,omitempty"`

	// Light
	LightType        string                `yaml:"lightType,omitempty"`
	AttenuationStart *trackDoc[float32]    `yaml:"attenuationStart,omitempty"`
	AttenuationEnd   *trackDoc[float32]    `yaml:"attenuationEnd,omitempty"`
	Color            *trackDoc[[3]float32] `yaml:"color,omitempty"`
	Intensity        *trackDoc[float32]    `yaml:"intensity,omitempty"`
	AmbientColor     *trackDoc[[3]float32] `yaml:"ambientColor,omitempty"`
	AmbientIntensity *trackDoc[float32]    `yaml:"ambientIntensity,omitempty"`

	// Light and attachment
	Visibility *trackDoc[float32] `yaml:"visibility,omitempty"`

	// Attachment
	Path         string `yaml:"path,omitempty"`
	AttachmentID int    `yaml:"attachmentId,omitempty"`
}

// trackDoc holds a static value, keyframes, or both. An animated track
// keeps its static value for sequences where it has no keyframes.
type trackDoc[V any] struct {
	Interpolation  string      `yaml:"interpolation,omitempty"`
	GlobalSequence *int        `yaml:"globalSequence,omitempty"`
	Static         *V          `yaml:"static,omitempty,flow"`
	Animated       bool        `yaml:"animated,omitempty"`
	Keys           []keyDoc[V] `yaml:"keys,omitempty"`
}

type keyDoc[V any] struct {
	Time       int `yaml:"time"`
	Value      V   `yaml:"value,flow"`
	InTangent  *V  `yaml:"inTan,omitempty,flow"`
	OutTangent *V  `yaml:"outTan,omitempty,flow"`
}

func idPtr(id int) *int {
	if id < 0 {
		return nil
	}
	return &id
}

func idOf(p *int) int {
	if p == nil {
		return -1
	}
	return *p
}

package mdx

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// NodeKind identifies the concrete type behind a Node.
type NodeKind int

const (
	NodeKindBone NodeKind = iota
	NodeKindHelper
	NodeKindLight
	NodeKindAttachment
)

// String returns a human-readable node kind name.
func (k NodeKind) String() string {
	switch k {
	case NodeKindBone:
		return "Bone"
	case NodeKindHelper:
		return "Helper"
	case NodeKindLight:
		return "Light"
	case NodeKindAttachment:
		return "Attachment"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Node is any object placed in the model's node hierarchy. All node kinds
// share one ID space.
type Node interface {
	Base() *NodeBase
	Kind() NodeKind
}

// NodeBase holds what every node has: a name, inheritance and billboard
// flags, a pivot point, the transform tracks and a parent link.
type NodeBase struct {
	Name string

	DontInheritTranslation bool
	DontInheritRotation    bool
	DontInheritScaling     bool
	Billboarded            bool
	BillboardedLockX       bool
	BillboardedLockY       bool
	BillboardedLockZ       bool
	CameraAnchored         bool

	PivotPoint mgl32.Vec3

	Translation *Track[mgl32.Vec3]
	Rotation    *Track[mgl32.Quat]
	Scaling     *Track[mgl32.Vec3]

	Parent NodeReference
}

func newNodeBase(name string) NodeBase {
	return NodeBase{
		Name:        name,
		Translation: NewTrack[mgl32.Vec3](Vector3{}, DefaultTranslation),
		Rotation:    NewTrack[mgl32.Quat](Quaternion{}, DefaultRotation),
		Scaling:     NewTrack[mgl32.Vec3](Vector3{}, DefaultScaling),
	}
}

// Base returns the shared node fields.
func (n *NodeBase) Base() *NodeBase { return n }

// Bone is a skeletal node that geoset vertices are skinned to.
type Bone struct {
	NodeBase
	Geoset          Reference[*Geoset]
	GeosetAnimation Reference[*GeosetAnimation]
}

// NewBone creates a bone with default transform tracks.
func NewBone(name string) *Bone {
	return &Bone{NodeBase: newNodeBase(name)}
}

// Kind returns NodeKindBone.
func (*Bone) Kind() NodeKind { return NodeKindBone }

// Helper is a node used only to group or offset other nodes.
type Helper struct {
	NodeBase
}

// NewHelper creates a helper with default transform tracks.
func NewHelper(name string) *Helper {
	return &Helper{NodeBase: newNodeBase(name)}
}

// Kind returns NodeKindHelper.
func (*Helper) Kind() NodeKind { return NodeKindHelper }

// LightType is the shape of a light source.
type LightType int32

const (
	LightOmnidirectional LightType = 0
	LightDirectional     LightType = 1
	LightAmbient         LightType = 2
)

// String returns a human-readable light type name.
func (t LightType) String() string {
	switch t {
	case LightOmnidirectional:
		return "Omnidirectional"
	case LightDirectional:
		return "Directional"
	case LightAmbient:
		return "Ambient"
	default:
		return fmt.Sprintf("Unknown(%d)", int32(t))
	}
}

// Light is a node emitting light with animated color and intensity.
type Light struct {
	NodeBase
	Type             LightType
	AttenuationStart *Track[float32]
	AttenuationEnd   *Track[float32]
	Color            *Track[mgl32.Vec3]
	Intensity        *Track[float32]
	AmbientColor     *Track[mgl32.Vec3]
	AmbientIntensity *Track[float32]
	Visibility       *Track[float32]
}

// NewLight creates an omnidirectional light.
func NewLight(name string) *Light {
	return &Light{
		NodeBase:         newNodeBase(name),
		AttenuationStart: NewTrack[float32](Float{}, 0),
		AttenuationEnd:   NewTrack[float32](Float{}, 0),
		Color:            NewTrack[mgl32.Vec3](Vector3{}, DefaultColor),
		Intensity:        NewTrack[float32](Float{}, 0),
		AmbientColor:     NewTrack[mgl32.Vec3](Vector3{}, DefaultColor),
		AmbientIntensity: NewTrack[float32](Float{}, 0),
		Visibility:       NewTrack[float32](Float{}, 1),
	}
}

// Kind returns NodeKindLight.
func (*Light) Kind() NodeKind { return NodeKindLight }

// Attachment is a named mount point, optionally carrying a child model path.
type Attachment struct {
	NodeBase
	Path         string
	AttachmentID int
	Visibility   *Track[float32]
}

// NewAttachment creates an attachment point.
func NewAttachment(name string) *Attachment {
	return &Attachment{
		NodeBase:   newNodeBase(name),
		Visibility: NewTrack[float32](Float{}, 1),
	}
}

// Kind returns NodeKindAttachment.
func (*Attachment) Kind() NodeKind { return NodeKindAttachment }

var (
	_ Node = (*Bone)(nil)
	_ Node = (*Helper)(nil)
	_ Node = (*Light)(nil)
	_ Node = (*Attachment)(nil)
)

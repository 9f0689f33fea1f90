package mdx

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// Field is a typed accessor for one mutable property of O.
type Field[O, V any] struct {
	Name string
	Get  func(O) V
	Set  func(O, V)
}

type fieldCommand[O, V any] struct {
	target   O
	field    Field[O, V]
	oldValue V
	newValue V
}

func (c *fieldCommand[O, V]) Do()   { c.field.Set(c.target, c.newValue) }
func (c *fieldCommand[O, V]) Undo() { c.field.Set(c.target, c.oldValue) }

// NewSetField creates a command writing value through f. The current value is
// captured now.
func NewSetField[O, V any](target O, f Field[O, V], value V) Command {
	return &fieldCommand[O, V]{
		target:   target,
		field:    f,
		oldValue: f.Get(target),
		newValue: value,
	}
}

// lookupField finds the accessor called name in fields and checks that it
// reads and writes V.
func lookupField[O, V any](fields map[string]any, owner, name string) (Field[O, V], error) {
	raw, ok := fields[name]
	if !ok {
		return Field[O, V]{}, errors.Wrapf(ErrInvalidFieldLocator, "%s has no field %q", owner, name)
	}
	f, ok := raw.(Field[O, V])
	if !ok {
		var v V
		return Field[O, V]{}, errors.Wrapf(ErrInvalidFieldLocator, "%s field %q does not hold %T", owner, name, v)
	}
	return f, nil
}

func boolField[O any](name string, ptr func(O) *bool) Field[O, bool] {
	return Field[O, bool]{
		Name: name,
		Get:  func(o O) bool { return *ptr(o) },
		Set:  func(o O, v bool) { *ptr(o) = v },
	}
}

var nodeBaseFields = map[string]any{
	"name": Field[*NodeBase, string]{
		Name: "name",
		Get:  func(n *NodeBase) string { return n.Name },
		Set:  func(n *NodeBase, v string) { n.Name = v },
	},
	"pivotPoint": Field[*NodeBase, mgl32.Vec3]{
		Name: "pivotPoint",
		Get:  func(n *NodeBase) mgl32.Vec3 { return n.PivotPoint },
		Set:  func(n *NodeBase, v mgl32.Vec3) { n.PivotPoint = v },
	},
	"dontInheritTranslation": boolField("dontInheritTranslation", func(n *NodeBase) *bool { return &n.DontInheritTranslation }),
	"dontInheritRotation":    boolField("dontInheritRotation", func(n *NodeBase) *bool { return &n.DontInheritRotation }),
	"dontInheritScaling":     boolField("dontInheritScaling", func(n *NodeBase) *bool { return &n.DontInheritScaling }),
	"billboarded":            boolField("billboarded", func(n *NodeBase) *bool { return &n.Billboarded }),
	"billboardedLockX":       boolField("billboardedLockX", func(n *NodeBase) *bool { return &n.BillboardedLockX }),
	"billboardedLockY":       boolField("billboardedLockY", func(n *NodeBase) *bool { return &n.BillboardedLockY }),
	"billboardedLockZ":       boolField("billboardedLockZ", func(n *NodeBase) *bool { return &n.BillboardedLockZ }),
	"cameraAnchored":         boolField("cameraAnchored", func(n *NodeBase) *bool { return &n.CameraAnchored }),
}

var attachmentFields = map[string]any{
	"path": Field[*Attachment, string]{
		Name: "path",
		Get:  func(a *Attachment) string { return a.Path },
		Set:  func(a *Attachment, v string) { a.Path = v },
	},
	"attachmentId": Field[*Attachment, int]{
		Name: "attachmentId",
		Get:  func(a *Attachment) int { return a.AttachmentID },
		Set:  func(a *Attachment, v int) { a.AttachmentID = v },
	},
}

var lightFields = map[string]any{
	"type": Field[*Light, LightType]{
		Name: "type",
		Get:  func(l *Light) LightType { return l.Type },
		Set:  func(l *Light, v LightType) { l.Type = v },
	},
}

// NewSetNodeField creates a command writing a named node field. Fields shared
// by all nodes are available on every kind; "path" and "attachmentId" exist
// on attachments and "type" on lights.
func NewSetNodeField[V any](n Node, name string, value V) (Command, error) {
	if n == nil {
		return nil, errors.Wrap(ErrInvalidFieldLocator, "nil node")
	}
	switch node := n.(type) {
	case *Attachment:
		if _, ok := attachmentFields[name]; ok {
			f, err := lookupField[*Attachment, V](attachmentFields, "attachment", name)
			if err != nil {
				return nil, err
			}
			return NewSetField(node, f, value), nil
		}
	case *Light:
		if _, ok := lightFields[name]; ok {
			f, err := lookupField[*Light, V](lightFields, "light", name)
			if err != nil {
				return nil, err
			}
			return NewSetField(node, f, value), nil
		}
	}
	f, err := lookupField[*NodeBase, V](nodeBaseFields, n.Kind().String(), name)
	if err != nil {
		return nil, err
	}
	return NewSetField(n.Base(), f, value), nil
}

func trackFields[T any]() map[string]any {
	return map[string]any{
		"interpolation": Field[*Track[T], Interpolation]{
			Name: "interpolation",
			Get:  func(t *Track[T]) Interpolation { return t.interpolation },
			Set:  func(t *Track[T], v Interpolation) { t.interpolation = v },
		},
		"animated": Field[*Track[T], bool]{
			Name: "animated",
			Get:  func(t *Track[T]) bool { return t.animated },
			Set:  func(t *Track[T], v bool) { t.animated = v },
		},
		"static": Field[*Track[T], T]{
			Name: "static",
			Get:  func(t *Track[T]) T { return t.staticValue },
			Set:  func(t *Track[T], v T) { t.staticValue = v },
		},
		"globalSequence": Field[*Track[T], Reference[*GlobalSequence]]{
			Name: "globalSequence",
			Get:  func(t *Track[T]) Reference[*GlobalSequence] { return t.GlobalSequence },
			Set:  func(t *Track[T], v Reference[*GlobalSequence]) { t.GlobalSequence = v },
		},
	}
}

// NewSetTrackField creates a command writing a named track field:
// "interpolation" (Interpolation), "animated" (bool), "static" (T) or
// "globalSequence" (Reference[*GlobalSequence]).
func NewSetTrackField[T, V any](t *Track[T], name string, value V) (Command, error) {
	if t == nil {
		return nil, errors.Wrap(ErrInvalidFieldLocator, "nil track")
	}
	f, err := lookupField[*Track[T], V](trackFields[T](), "track", name)
	if err != nil {
		return nil, err
	}
	return NewSetField(t, f, value), nil
}

var modelFields = map[string]any{
	"name": Field[*Model, string]{
		Name: "name",
		Get:  func(m *Model) string { return m.Name },
		Set:  func(m *Model, v string) { m.Name = v },
	},
	"animationFile": Field[*Model, string]{
		Name: "animationFile",
		Get:  func(m *Model) string { return m.AnimationFile },
		Set:  func(m *Model, v string) { m.AnimationFile = v },
	},
	"blendTime": Field[*Model, int]{
		Name: "blendTime",
		Get:  func(m *Model) int { return m.BlendTime },
		Set:  func(m *Model, v int) { m.BlendTime = v },
	},
}

// NewSetModelField creates a command writing "name", "animationFile" or
// "blendTime" on the model.
func NewSetModelField[V any](m *Model, name string, value V) (Command, error) {
	if m == nil {
		return nil, errors.Wrap(ErrInvalidFieldLocator, "nil model")
	}
	f, err := lookupField[*Model, V](modelFields, "model", name)
	if err != nil {
		return nil, err
	}
	return NewSetField(m, f, value), nil
}

// NewMakeStatic creates a command switching t to static mode with value.
func NewMakeStatic[T any](t *Track[T], value T) (Command, error) {
	animated, err := NewSetTrackField(t, "animated", false)
	if err != nil {
		return nil, err
	}
	static, err := NewSetTrackField(t, "static", value)
	if err != nil {
		return nil, err
	}
	return NewGroup(static, animated), nil
}

// NewMakeAnimated creates a command switching t to keyframe evaluation.
func NewMakeAnimated[T any](t *Track[T]) (Command, error) {
	return NewSetTrackField(t, "animated", true)
}

type referenceCommand[T comparable] struct {
	slot     *Reference[T]
	oldValue Reference[T]
	newValue Reference[T]
}

func (c *referenceCommand[T]) Do()   { *c.slot = c.newValue }
func (c *referenceCommand[T]) Undo() { *c.slot = c.oldValue }

// NewSetReference creates a command pointing slot at obj in c. The zero
// value of T clears the slot.
func NewSetReference[T comparable](slot *Reference[T], c *Container[T], obj T) (Command, error) {
	if slot == nil || c == nil {
		return nil, errors.Wrap(ErrInvalidFieldLocator, "nil reference slot or collection")
	}
	var next Reference[T]
	var zero T
	if obj != zero {
		if err := next.Set(c, obj); err != nil {
			return nil, err
		}
	}
	return &referenceCommand[T]{slot: slot, oldValue: *slot, newValue: next}, nil
}

package modelfile

import (
	"github.com/pkg/errors"

	"github.com/Faultbox/mdxcore/pkg/mdx"
)

// flag binds a document flag name to a boolean field of O.
type flag[O any] struct {
	name string
	ptr  func(O) *bool
}

var nodeFlags = []flag[*mdx.NodeBase]{
	{"dontInheritTranslation", func(n *mdx.NodeBase) *bool { return &n.DontInheritTranslation }},
	{"dontInheritRotation", func(n *mdx.NodeBase) *bool { return &n.DontInheritRotation }},
	{"dontInheritScaling", func(n *mdx.NodeBase) *bool { return &n.DontInheritScaling }},
	{"billboarded", func(n *mdx.NodeBase) *bool { return &n.Billboarded }},
	{"billboardedLockX", func(n *mdx.NodeBase) *bool { return &n.BillboardedLockX }},
	{"billboardedLockY", func(n *mdx.NodeBase) *bool { return &n.BillboardedLockY }},
	{"billboardedLockZ", func(n *mdx.NodeBase) *bool { return &n.BillboardedLockZ }},
	{"cameraAnchored", func(n *mdx.NodeBase) *bool { return &n.CameraAnchored }},
}

var materialFlags = []flag[*mdx.Material]{
	{"constantColor", func(m *mdx.Material) *bool { return &m.ConstantColor }},
	{"fullResolution", func(m *mdx.Material) *bool { return &m.FullResolution }},
	{"sortPrimsFarZ", func(m *mdx.Material) *bool { return &m.SortPrimitivesFarZ }},
	{"sortPrimsNearZ", func(m *mdx.Material) *bool { return &m.SortPrimitivesNearZ }},
}

var layerFlags = []flag[*mdx.MaterialLayer]{
	{"unshaded", func(l *mdx.MaterialLayer) *bool { return &l.Unshaded }},
	{"unfogged", func(l *mdx.MaterialLayer) *bool { return &l.Unfogged }},
	{"twoSided", func(l *mdx.MaterialLayer) *bool { return &l.TwoSided }},
	{"sphereEnvMap", func(l *mdx.MaterialLayer) *bool { return &l.SphereEnvironmentMap }},
	{"noDepthTest", func(l *mdx.MaterialLayer) *bool { return &l.NoDepthTest }},
	{"noDepthSet", func(l *mdx.MaterialLayer) *bool { return &l.NoDepthSet }},
}

func encodeFlags[O any](o O, table []flag[O]) []string {
	var out []string
	for _, f := range table {
		if *f.ptr(o) {
			out = append(out, f.name)
		}
	}
	return out
}

func decodeFlags[O any](o O, table []flag[O], names []string) error {
next:
	for _, name := range names {
		for _, f := range table {
			if f.name == name {
				*f.ptr(o) = true
				continue next
			}
		}
		return errors.Errorf("unknown flag %q", name)
	}
	return nil
}

package mdx

import "github.com/pkg/errors"

// Model is the editable object graph of one skeletal model. It owns every
// object through its containers; objects link to each other with References
// into those containers.
type Model struct {
	Name          string
	AnimationFile string
	BlendTime     int
	Extent        Extent

	Sequences         *Container[*Sequence]
	GlobalSequences   *Container[*GlobalSequence]
	Textures          *Container[*Texture]
	Materials         *Container[*Material]
	TextureAnimations *Container[*TextureAnimation]
	Geosets           *Container[*Geoset]
	GeosetAnimations  *Container[*GeosetAnimation]

	// Nodes holds bones, helpers, lights and attachments in one ID space.
	Nodes *Container[Node]
}

// NewModel creates an empty model.
func NewModel(name string) *Model {
	return &Model{
		Name:              name,
		BlendTime:         150,
		Sequences:         NewContainer[*Sequence]("sequences"),
		GlobalSequences:   NewContainer[*GlobalSequence]("global sequences"),
		Textures:          NewContainer[*Texture]("textures"),
		Materials:         NewContainer[*Material]("materials"),
		TextureAnimations: NewContainer[*TextureAnimation]("texture animations"),
		Geosets:           NewContainer[*Geoset]("geosets"),
		GeosetAnimations:  NewContainer[*GeosetAnimation]("geoset animations"),
		Nodes:             NewContainer[Node]("nodes"),
	}
}

// SequenceByName returns the first sequence with the given name.
func (m *Model) SequenceByName(name string) (*Sequence, bool) {
	for _, seq := range m.Sequences.All() {
		if seq.Name == name {
			return seq, true
		}
	}
	return nil, false
}

// NodeByName returns the first node with the given name.
func (m *Model) NodeByName(name string) (Node, bool) {
	for _, n := range m.Nodes.All() {
		if n.Base().Name == name {
			return n, true
		}
	}
	return nil, false
}

// Children returns the nodes whose parent is n, in ID order.
func (m *Model) Children(n Node) []Node {
	var out []Node
	for _, child := range m.Nodes.All() {
		if parent, ok := child.Base().Parent.Get(); ok && parent == n {
			out = append(out, child)
		}
	}
	return out
}

// SetParent links child under parent. A nil parent makes child a root.
// Links that would create a cycle are rejected.
func (m *Model) SetParent(child, parent Node) error {
	if parent == nil {
		child.Base().Parent.Clear()
		return nil
	}
	for p, hops := parent, 0; p != nil && hops <= m.Nodes.Len(); hops++ {
		if p == child {
			return errors.Errorf("node %q cannot be parented under its own descendant %q",
				child.Base().Name, parent.Base().Name)
		}
		next, ok := p.Base().Parent.Get()
		if !ok {
			break
		}
		p = next
	}
	return child.Base().Parent.Set(m.Nodes, parent)
}

// GeosetAnimationFor returns the geoset animation targeting g, if any.
func (m *Model) GeosetAnimationFor(g *Geoset) (*GeosetAnimation, bool) {
	for _, ga := range m.GeosetAnimations.All() {
		if target, ok := ga.Geoset.Get(); ok && target == g {
			return ga, true
		}
	}
	return nil, false
}

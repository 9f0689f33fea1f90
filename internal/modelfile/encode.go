package modelfile

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/mdxcore/pkg/mdx"
)

// Save writes m to path.
func Save(path string, m *mdx.Model, opts ...Option) error {
	data, err := Marshal(m, opts...)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "save %s", path)
	}
	return nil
}

// Marshal encodes m as a YAML document.
func Marshal(m *mdx.Model, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, m, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode writes m as a YAML document. References that no longer resolve are
// written as absent.
func Encode(w io.Writer, m *mdx.Model, opts ...Option) error {
	o := buildOptions(opts)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(encodeModel(m)); err != nil {
		return errors.Wrap(err, "encode model document")
	}
	if err := enc.Close(); err != nil {
		return err
	}

	o.log.Debug("model encoded",
		zap.String("name", m.Name),
		zap.Int("nodes", m.Nodes.Len()))
	return nil
}

func encodeModel(m *mdx.Model) *modelDoc {
	doc := &modelDoc{
		Name:          m.Name,
		AnimationFile: m.AnimationFile,
		BlendTime:     m.BlendTime,
		Extent:        encodeExtent(m.Extent),
	}

	for _, seq := range m.Sequences.All() {
		doc.Sequences = append(doc.Sequences, sequenceDoc{
			Name:       seq.Name,
			Interval:   [2]int{seq.IntervalStart, seq.IntervalEnd},
			NonLooping: seq.NonLooping,
			SyncPoint:  seq.SyncPoint,
			Rarity:     seq.Rarity,
			MoveSpeed:  seq.MoveSpeed,
			Extent:     encodeExtent(seq.Extent),
		})
	}

	for _, gs := range m.GlobalSequences.All() {
		doc.GlobalSequences = append(doc.GlobalSequences, gs.Duration)
	}

	for _, tex := range m.Textures.All() {
		doc.Textures = append(doc.Textures, textureDoc{
			File:          tex.FileName,
			ReplaceableID: tex.ReplaceableID,
			WrapWidth:     tex.WrapWidth,
			WrapHeight:    tex.WrapHeight,
		})
	}

	for _, mat := range m.Materials.All() {
		md := materialDoc{
			PriorityPlane: mat.PriorityPlane,
			Flags:         encodeFlags(mat, materialFlags),
			Layers:        []layerDoc{},
		}
		for _, layer := range mat.Layers {
			md.Layers = append(md.Layers, layerDoc{
				FilterMode:       layer.FilterMode.String(),
				CoordID:          layer.CoordID,
				Flags:            encodeFlags(layer, layerFlags),
				Texture:          idPtr(layer.Texture.ID()),
				TextureAnimation: idPtr(layer.TextureAnimation.ID()),
				TextureID:        encodeTrack(layer.TextureID, intCodec, mdx.InvalidID),
				Alpha:            encodeTrack(layer.Alpha, floatCodec, 1),
			})
		}
		doc.Materials = append(doc.Materials, md)
	}

	for _, anim := range m.TextureAnimations.All() {
		doc.TextureAnimations = append(doc.TextureAnimations, textureAnimationDoc{
			Translation: encodeTrack(anim.Translation, vec3Codec, mdx.DefaultTranslation),
			Rotation:    encodeTrack(anim.Rotation, quatCodec, mdx.DefaultRotation),
			Scaling:     encodeTrack(anim.Scaling, vec3Codec, mdx.DefaultScaling),
		})
	}

	for _, g := range m.Geosets.All() {
		doc.Geosets = append(doc.Geosets, geosetDoc{
			Material:       idPtr(g.Material.ID()),
			SelectionGroup: g.SelectionGroup,
			Unselectable:   g.Unselectable,
			Extent:         encodeExtent(g.Extent),
		})
	}

	for _, ga := range m.GeosetAnimations.All() {
		doc.GeosetAnimations = append(doc.GeosetAnimations, geosetAnimationDoc{
			Geoset:     idPtr(ga.Geoset.ID()),
			UseColor:   ga.UseColor,
			DropShadow: ga.DropShadow,
			Alpha:      encodeTrack(ga.Alpha, floatCodec, 1),
			Color:      encodeTrack(ga.Color, vec3Codec, mdx.DefaultColor),
		})
	}

	for _, n := range m.Nodes.All() {
		doc.Nodes = append(doc.Nodes, encodeNode(n))
	}

	return doc
}

func encodeNode(n mdx.Node) nodeDoc {
	base := n.Base()
	nd := nodeDoc{
		Name:        base.Name,
		Parent:      idPtr(base.Parent.ID()),
		Pivot:       base.PivotPoint,
		Flags:       encodeFlags(base, nodeFlags),
		Translation: encodeTrack(base.Translation, vec3Codec, mdx.DefaultTranslation),
		Rotation:    encodeTrack(base.Rotation, quatCodec, mdx.DefaultRotation),
		Scaling:     encodeTrack(base.Scaling, vec3Codec, mdx.DefaultScaling),
	}

	switch node := n.(type) {
	case *mdx.Bone:
		nd.Kind = "bone"
		nd.Geoset = idPtr(node.Geoset.ID())
		nd.GeosetAnimation = idPtr(node.GeosetAnimation.ID())
	case *mdx.Helper:
		nd.Kind = "helper"
	case *mdx.Light:
		nd.Kind = "light"
		nd.LightType = node.Type.String()
		nd.AttenuationStart = encodeTrack(node.AttenuationStart, floatCodec, 0)
		nd.AttenuationEnd = encodeTrack(node.AttenuationEnd, floatCodec, 0)
		nd.Color = encodeTrack(node.Color, vec3Codec, mdx.DefaultColor)
		nd.Intensity = encodeTrack(node.Intensity, floatCodec, 0)
		nd.AmbientColor = encodeTrack(node.AmbientColor, vec3Codec, mdx.DefaultColor)
		nd.AmbientIntensity = encodeTrack(node.AmbientIntensity, floatCodec, 0)
		nd.Visibility = encodeTrack(node.Visibility, floatCodec, 1)
	case *mdx.Attachment:
		nd.Kind = "attachment"
		nd.Path = node.Path
		nd.AttachmentID = node.AttachmentID
		nd.Visibility = encodeTrack(node.Visibility, floatCodec, 1)
	}
	return nd
}

func encodeExtent(e mdx.Extent) *extentDoc {
	if e == (mdx.Extent{}) {
		return nil
	}
	return &extentDoc{Min: e.Min, Max: e.Max, Radius: e.Radius}
}

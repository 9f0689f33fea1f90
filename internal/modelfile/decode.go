package modelfile

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/mdxcore/pkg/mdx"
)

// Option configures loading and saving.
type Option func(*options)

type options struct {
	log *zap.Logger
}

// WithLogger sets the logger for codec diagnostics.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

type decoder struct {
	model    *mdx.Model
	attacher *mdx.Attacher
	log      *zap.Logger
}

// Load reads a model document from path.
func Load(path string, opts ...Option) (*mdx.Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := Decode(f, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return m, nil
}

// Unmarshal decodes a model document held in memory.
func Unmarshal(data []byte, opts ...Option) (*mdx.Model, error) {
	return Decode(bytes.NewReader(data), opts...)
}

// Decode reads one model document and returns the fully attached model.
func Decode(r io.Reader, opts ...Option) (*mdx.Model, error) {
	o := buildOptions(opts)

	var doc modelDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "parse model document")
	}

	d := &decoder{
		model:    mdx.NewModel(doc.Name),
		attacher: mdx.NewAttacher(mdx.WithAttacherLogger(o.log.Named("attacher"))),
		log:      o.log,
	}
	if err := d.decode(&doc); err != nil {
		return nil, err
	}
	if err := d.attacher.Attach(); err != nil {
		return nil, errors.Wrap(err, "resolve references")
	}

	d.log.Debug("model decoded",
		zap.String("name", d.model.Name),
		zap.Int("sequences", d.model.Sequences.Len()),
		zap.Int("nodes", d.model.Nodes.Len()))
	return d.model, nil
}

func (d *decoder) decode(doc *modelDoc) error {
	m := d.model
	m.AnimationFile = doc.AnimationFile
	m.BlendTime = doc.BlendTime
	if doc.Extent != nil {
		m.Extent = decodeExtent(doc.Extent)
	}

	// Nodes first: their links point at containers filled further down.
	for i := range doc.Nodes {
		if err := d.decodeNode(&doc.Nodes[i]); err != nil {
			return errors.Wrapf(err, "node %d (%s)", i, doc.Nodes[i].Name)
		}
	}

	for i, sd := range doc.Sequences {
		seq := mdx.NewSequence(sd.Name, sd.Interval[0], sd.Interval[1])
		seq.NonLooping = sd.NonLooping
		seq.SyncPoint = sd.SyncPoint
		seq.Rarity = sd.Rarity
		seq.MoveSpeed = sd.MoveSpeed
		if sd.Extent != nil {
			seq.Extent = decodeExtent(sd.Extent)
		}
		if seq.IntervalEnd < seq.IntervalStart {
			return errors.Errorf("sequence %d (%s): interval end %d before start %d",
				i, sd.Name, seq.IntervalEnd, seq.IntervalStart)
		}
		if _, err := m.Sequences.Add(seq); err != nil {
			return err
		}
	}

	for _, duration := range doc.GlobalSequences {
		if _, err := m.GlobalSequences.Add(mdx.NewGlobalSequence(duration)); err != nil {
			return err
		}
	}

	for _, td := range doc.Textures {
		tex := mdx.NewTexture(td.File)
		tex.ReplaceableID = td.ReplaceableID
		tex.WrapWidth = td.WrapWidth
		tex.WrapHeight = td.WrapHeight
		if _, err := m.Textures.Add(tex); err != nil {
			return err
		}
	}

	for i := range doc.Materials {
		if err := d.decodeMaterial(&doc.Materials[i]); err != nil {
			return errors.Wrapf(err, "material %d", i)
		}
	}

	for i, ta := range doc.TextureAnimations {
		anim := mdx.NewTextureAnimation()
		if err := d.decodeTransform(ta.Translation, ta.Rotation, ta.Scaling,
			anim.Translation, anim.Rotation, anim.Scaling); err != nil {
			return errors.Wrapf(err, "texture animation %d", i)
		}
		if _, err := m.TextureAnimations.Add(anim); err != nil {
			return err
		}
	}

	for i, gd := range doc.Geosets {
		g := mdx.NewGeoset()
		g.SelectionGroup = gd.SelectionGroup
		g.Unselectable = gd.Unselectable
		if gd.Extent != nil {
			g.Extent = decodeExtent(gd.Extent)
		}
		if err := mdx.RegisterObject(d.attacher, m.Materials, &g.Material, idOf(gd.Material)); err != nil {
			return errors.Wrapf(err, "geoset %d", i)
		}
		if _, err := m.Geosets.Add(g); err != nil {
			return err
		}
	}

	for i := range doc.GeosetAnimations {
		gd := &doc.GeosetAnimations[i]
		ga := mdx.NewGeosetAnimation()
		ga.UseColor = gd.UseColor
		ga.DropShadow = gd.DropShadow
		if err := decodeTrack(d, "alpha", gd.Alpha, ga.Alpha, floatCodec); err != nil {
			return errors.Wrapf(err, "geoset animation %d", i)
		}
		if err := decodeTrack(d, "color", gd.Color, ga.Color, vec3Codec); err != nil {
			return errors.Wrapf(err, "geoset animation %d", i)
		}
		if err := mdx.RegisterObject(d.attacher, m.Geosets, &ga.Geoset, idOf(gd.Geoset)); err != nil {
			return errors.Wrapf(err, "geoset animation %d", i)
		}
		if _, err := m.GeosetAnimations.Add(ga); err != nil {
			return err
		}
	}

	return nil
}

func (d *decoder) decodeMaterial(md *materialDoc) error {
	mat := mdx.NewMaterial()
	mat.PriorityPlane = md.PriorityPlane
	if err := decodeFlags(mat, materialFlags, md.Flags); err != nil {
		return err
	}

	for i := range md.Layers {
		ld := &md.Layers[i]
		layer := mat.AddLayer()
		mode, err := mdx.ParseFilterMode(ld.FilterMode)
		if err != nil {
			return errors.Wrapf(err, "layer %d", i)
		}
		layer.FilterMode = mode
		layer.CoordID = ld.CoordID
		if err := decodeFlags(layer, layerFlags, ld.Flags); err != nil {
			return errors.Wrapf(err, "layer %d", i)
		}
		if err := decodeTrack(d, "textureId", ld.TextureID, layer.TextureID, intCodec); err != nil {
			return errors.Wrapf(err, "layer %d", i)
		}
		if err := decodeTrack(d, "alpha", ld.Alpha, layer.Alpha, floatCodec); err != nil {
			return errors.Wrapf(err, "layer %d", i)
		}
		if err := mdx.RegisterObject(d.attacher, d.model.Textures, &layer.Texture, idOf(ld.Texture)); err != nil {
			return errors.Wrapf(err, "layer %d", i)
		}
		if err := mdx.RegisterObject(d.attacher, d.model.TextureAnimations, &layer.TextureAnimation, idOf(ld.TextureAnimation)); err != nil {
			return errors.Wrapf(err, "layer %d", i)
		}
	}

	_, err := d.model.Materials.Add(mat)
	return err
}

func (d *decoder) decodeNode(nd *nodeDoc) error {
	var node mdx.Node
	switch strings.ToLower(nd.Kind) {
	case "bone":
		bone := mdx.NewBone(nd.Name)
		if err := mdx.RegisterObject(d.attacher, d.model.Geosets, &bone.Geoset, idOf(nd.Geoset)); err != nil {
			return err
		}
		if err := mdx.RegisterObject(d.attacher, d.model.GeosetAnimations, &bone.GeosetAnimation, idOf(nd.GeosetAnimation)); err != nil {
			return err
		}
		node = bone
	case "helper":
		node = mdx.NewHelper(nd.Name)
	case "light":
		light := mdx.NewLight(nd.Name)
		lt, err := parseLightType(nd.LightType)
		if err != nil {
			return err
		}
		light.Type = lt
		for _, err := range []error{
			decodeTrack(d, "attenuationStart", nd.AttenuationStart, light.AttenuationStart, floatCodec),
			decodeTrack(d, "attenuationEnd", nd.AttenuationEnd, light.AttenuationEnd, floatCodec),
			decodeTrack(d, "color", nd.Color, light.Color, vec3Codec),
			decodeTrack(d, "intensity", nd.Intensity, light.Intensity, floatCodec),
			decodeTrack(d, "ambientColor", nd.AmbientColor, light.AmbientColor, vec3Codec),
			decodeTrack(d, "ambientIntensity", nd.AmbientIntensity, light.AmbientIntensity, floatCodec),
			decodeTrack(d, "visibility", nd.Visibility, light.Visibility, floatCodec),
		} {
			if err != nil {
				return err
			}
		}
		node = light
	case "attachment":
		att := mdx.NewAttachment(nd.Name)
		att.Path = nd.Path
		att.AttachmentID = nd.AttachmentID
		if err := decodeTrack(d, "visibility", nd.Visibility, att.Visibility, floatCodec); err != nil {
			return err
		}
		node = att
	default:
		return errors.Errorf("unknown node kind %q", nd.Kind)
	}

	base := node.Base()
	base.PivotPoint = nd.Pivot
	if err := decodeFlags(base, nodeFlags, nd.Flags); err != nil {
		return err
	}
	if err := d.decodeTransform(nd.Translation, nd.Rotation, nd.Scaling,
		base.Translation, base.Rotation, base.Scaling); err != nil {
		return err
	}
	if err := d.attacher.RegisterNode(d.model, &base.Parent, idOf(nd.Parent)); err != nil {
		return err
	}

	_, err := d.model.Nodes.Add(node)
	return err
}

func (d *decoder) decodeTransform(
	td *trackDoc[[3]float32], rd *trackDoc[[4]float32], sd *trackDoc[[3]float32],
	t *mdx.Track[mgl32.Vec3], r *mdx.Track[mgl32.Quat], s *mdx.Track[mgl32.Vec3],
) error {
	if err := decodeTrack(d, "translation", td, t, vec3Codec); err != nil {
		return err
	}
	if err := decodeTrack(d, "rotation", rd, r, quatCodec); err != nil {
		return err
	}
	return decodeTrack(d, "scaling", sd, s, vec3Codec)
}

func decodeExtent(e *extentDoc) mdx.Extent {
	return mdx.Extent{Min: e.Min, Max: e.Max, Radius: e.Radius}
}

func parseLightType(s string) (mdx.LightType, error) {
	for _, lt := range []mdx.LightType{mdx.LightOmnidirectional, mdx.LightDirectional, mdx.LightAmbient} {
		if strings.EqualFold(lt.String(), s) {
			return lt, nil
		}
	}
	if s == "" {
		return mdx.LightOmnidirectional, nil
	}
	return 0, errors.Errorf("unknown light type %q", s)
}

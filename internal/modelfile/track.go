package modelfile

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/Faultbox/mdxcore/pkg/math"
	"github.com/Faultbox/mdxcore/pkg/mdx"
)

// valueCodec converts between track values and their document form.
type valueCodec[T, V any] struct {
	encode func(T) V
	decode func(V) T
}

func identity[T any](v T) T { return v }

var (
	floatCodec = valueCodec[float32, float32]{identity[float32], identity[float32]}
	intCodec   = valueCodec[int, int]{identity[int], identity[int]}
	vec3Codec  = valueCodec[mgl32.Vec3, [3]float32]{
		encode: func(v mgl32.Vec3) [3]float32 { return v },
		decode: func(v [3]float32) mgl32.Vec3 { return v },
	}
	quatCodec = valueCodec[mgl32.Quat, [4]float32]{
		encode: math.QuatToXYZW,
		decode: math.QuatFromXYZW,
	}
)

// encodeTrack returns nil for a static track still holding its default.
func encodeTrack[T comparable, V any](t *mdx.Track[T], c valueCodec[T, V], def T) *trackDoc[V] {
	gs := t.GlobalSequence.ID()
	if t.Static() && t.StaticValue() == def && gs == mdx.InvalidID && t.Interpolation() == mdx.InterpolationNone {
		return nil
	}

	doc := &trackDoc[V]{GlobalSequence: idPtr(gs)}
	if t.Interpolation() != mdx.InterpolationNone {
		doc.Interpolation = t.Interpolation().String()
	}
	if t.Static() {
		v := c.encode(t.StaticValue())
		doc.Static = &v
		return doc
	}

	// Animated tracks fall back to the static value for windows without keys.
	if v := t.StaticValue(); v != def {
		ev := c.encode(v)
		doc.Static = &ev
	}
	doc.Animated = true
	tangents := t.Interpolation().HasTangents()
	for _, k := range t.Keyframes() {
		key := keyDoc[V]{Time: k.Time, Value: c.encode(k.Value)}
		if tangents {
			in, out := c.encode(k.InTangent), c.encode(k.OutTangent)
			key.InTangent, key.OutTangent = &in, &out
		}
		doc.Keys = append(doc.Keys, key)
	}
	return doc
}

// decodeTrack fills t from doc and registers its global sequence link.
// A nil doc leaves the track at its default.
func decodeTrack[T comparable, V any](d *decoder, name string, doc *trackDoc[V], t *mdx.Track[T], c valueCodec[T, V]) error {
	if doc == nil {
		return nil
	}

	interp, err := mdx.ParseInterpolation(doc.Interpolation)
	if err != nil {
		return errors.Wrapf(err, "%s", name)
	}
	t.SetInterpolation(interp)

	if doc.Static != nil {
		t.MakeStatic(c.decode(*doc.Static))
	}
	if doc.Animated || len(doc.Keys) > 0 {
		t.MakeAnimated()
		for _, key := range doc.Keys {
			k := mdx.NewKeyframe(key.Time, c.decode(key.Value))
			if key.InTangent != nil {
				k.InTangent = c.decode(*key.InTangent)
			}
			if key.OutTangent != nil {
				k.OutTangent = c.decode(*key.OutTangent)
			}
			t.Add(k)
		}
	}

	err = mdx.RegisterObject(d.attacher, d.model.GlobalSequences, &t.GlobalSequence, idOf(doc.GlobalSequence))
	return errors.Wrapf(err, "%s", name)
}

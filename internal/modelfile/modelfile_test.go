package modelfile

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	mdxmath "github.com/Faultbox/mdxcore/pkg/math"
	"github.com/Faultbox/mdxcore/pkg/mdx"
)

func loadFootman(t *testing.T) *mdx.Model {
	t.Helper()
	m, err := Load(filepath.Join("testdata", "footman.yaml"))
	if err != nil {
		t.Fatalf("failed to load footman: %v", err)
	}
	return m
}

func TestLoad_Counts(t *testing.T) {
	m := loadFootman(t)

	if m.Name != "Footman" {
		t.Errorf("expected name Footman, got %s", m.Name)
	}
	checks := []struct {
		name string
		got  int
		want int
	}{
		{"sequences", m.Sequences.Len(), 3},
		{"global sequences", m.GlobalSequences.Len(), 1},
		{"textures", m.Textures.Len(), 2},
		{"materials", m.Materials.Len(), 1},
		{"geosets", m.Geosets.Len(), 1},
		{"geoset animations", m.GeosetAnimations.Len(), 1},
		{"nodes", m.Nodes.Len(), 4},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("expected %d %s, got %d", c.want, c.name, c.got)
		}
	}
}

func TestLoad_ForwardReferencesResolved(t *testing.T) {
	m := loadFootman(t)

	root, _ := m.Nodes.Get(0)
	bone, _ := m.Nodes.Get(1)
	if parent, ok := root.Base().Parent.Get(); !ok || parent != bone {
		t.Errorf("expected Mesh_Root parented to Bone_Root, got %v", parent)
	}
	if bone.Base().Parent.IsSet() {
		t.Error("expected Bone_Root to be a root")
	}

	b, ok := bone.(*mdx.Bone)
	if !ok {
		t.Fatalf("expected *mdx.Bone, got %T", bone)
	}
	g, _ := m.Geosets.Get(0)
	if b.Geoset.Object() != g {
		t.Error("expected bone to reference geoset 0")
	}
	if b.GeosetAnimation.IsSet() {
		t.Error("expected absent geoset animation to stay unset")
	}

	mat, _ := m.Materials.Get(0)
	if g.Material.Object() != mat {
		t.Error("expected geoset material 0")
	}
	tex, _ := m.Textures.Get(1)
	if mat.Layers[0].Texture.Object() != tex {
		t.Error("expected first layer to use texture 1")
	}

	gs, _ := m.GlobalSequences.Get(0)
	if root.Base().Rotation.GlobalSequence.Object() != gs {
		t.Error("expected rotation to run on global sequence 0")
	}
}

func TestLoad_TracksEvaluate(t *testing.T) {
	m := loadFootman(t)
	walk, ok := m.SequenceByName("Walk")
	if !ok {
		t.Fatal("expected Walk sequence")
	}

	bone, _ := m.NodeByName("Bone_Root")
	v, err := bone.Base().Translation.ValueAt(mdx.SequenceTime(walk, 1500))
	if err != nil {
		t.Fatal(err)
	}
	if !mdxmath.Vec3ApproxEqual(v, mgl32.Vec3{50, 0, 0}, 1e-4) {
		t.Errorf("expected {50 0 0}, got %v", v)
	}

	torch, _ := m.NodeByName("Torch")
	light := torch.(*mdx.Light)
	if i, err := light.Intensity.Value(); err != nil || i != 2.5 {
		t.Errorf("expected static intensity 2.5, got %v (%v)", i, err)
	}

	att, _ := m.NodeByName("Hand Right Ref")
	if !att.Base().DontInheritScaling {
		t.Error("expected dontInheritScaling flag")
	}
	if att.(*mdx.Attachment).AttachmentID != 2 {
		t.Errorf("expected attachment id 2, got %d", att.(*mdx.Attachment).AttachmentID)
	}
}

func TestRoundTrip(t *testing.T) {
	m := loadFootman(t)

	data, err := Marshal(m)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}
	again, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("failed to reload:\n%s\n%v", data, err)
	}
	second, err := Marshal(again)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != string(second) {
		t.Errorf("round trip changed document:\n--- first\n%s\n--- second\n%s", data, second)
	}

	root, _ := again.NodeByName("Mesh_Root")
	rot := root.Base().Rotation
	if rot.Interpolation() != mdx.InterpolationHermite || rot.Len() != 2 {
		t.Errorf("expected 2 Hermite keyframes, got %d %s", rot.Len(), rot.Interpolation())
	}
	k, _ := rot.Get(1)
	want := mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 0, 1})
	if !mdxmath.QuatApproxEqual(k.Value, want, 1e-4) {
		t.Errorf("expected 90 degree rotation, got %v", k.Value)
	}
}

func TestRoundTrip_AnimatedKeepsStaticValue(t *testing.T) {
	m := loadFootman(t)
	anim, _ := m.GeosetAnimations.Get(0)
	alpha := anim.Alpha
	alpha.Clear()
	alpha.MakeStatic(0.25)
	alpha.MakeAnimated()
	alpha.Add(mdx.NewKeyframe[float32](0, 1))
	alpha.Add(mdx.NewKeyframe[float32](500, 0))

	walkAlpha := func(m *mdx.Model) float32 {
		t.Helper()
		walk, ok := m.SequenceByName("Walk")
		if !ok {
			t.Fatal("expected Walk sequence")
		}
		anim, _ := m.GeosetAnimations.Get(0)
		v, err := anim.Alpha.ValueAt(mdx.SequenceTime(walk, 1500))
		if err != nil {
			t.Fatal(err)
		}
		return v
	}

	before := walkAlpha(m)
	if before != 0.25 {
		t.Fatalf("expected static fallback 0.25 outside the keyed sequence, got %v", before)
	}

	data, err := Marshal(m)
	if err != nil {
		t.Fatal(err)
	}
	again, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("failed to reload:\n%s\n%v", data, err)
	}
	if after := walkAlpha(again); after != before {
		t.Errorf("expected Walk alpha %v after reload, got %v", before, after)
	}
	reloaded, _ := again.GeosetAnimations.Get(0)
	if !reloaded.Alpha.Animated() || reloaded.Alpha.Len() != 2 {
		t.Errorf("expected animated alpha with 2 keyframes, got animated=%v len=%d",
			reloaded.Alpha.Animated(), reloaded.Alpha.Len())
	}
}

func TestSaveAndLoad(t *testing.T) {
	m := mdx.NewModel("Tiny")
	m.Sequences.Add(mdx.NewSequence("Stand", 0, 100))
	m.Nodes.Add(mdx.NewBone("Root"))

	path := filepath.Join(t.TempDir(), "tiny.yaml")
	if err := Save(path, m); err != nil {
		t.Fatalf("failed to save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if loaded.Nodes.Len() != 1 || loaded.Sequences.Len() != 1 {
		t.Errorf("expected 1 node and 1 sequence, got %d and %d", loaded.Nodes.Len(), loaded.Sequences.Len())
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
		substr  string
	}{
		{
			name:    "dangling parent",
			doc:     "name: x\nnodes:\n  - kind: bone\n    name: a\n    parent: 7\n",
			wantErr: mdx.ErrDanglingReference,
		},
		{
			name:    "dangling material",
			doc:     "name: x\ngeosets:\n  - material: 3\n",
			wantErr: mdx.ErrDanglingReference,
		},
		{
			name:   "unknown node kind",
			doc:    "name: x\nnodes:\n  - kind: emitter\n    name: a\n",
			substr: "unknown node kind",
		},
		{
			name:   "unknown field",
			doc:    "name: x\ncolour: red\n",
			substr: "colour",
		},
		{
			name:   "bad interpolation",
			doc:    "name: x\nnodes:\n  - kind: helper\n    name: a\n    scaling:\n      interpolation: cubic\n      keys: []\n",
			substr: "interpolation",
		},
		{
			name:   "inverted interval",
			doc:    "name: x\nsequences:\n  - name: Bad\n    interval: [10, 0]\n",
			substr: "before start",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unmarshal([]byte(tt.doc))
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
			if tt.substr != "" && !strings.Contains(err.Error(), tt.substr) {
				t.Errorf("expected %q in %v", tt.substr, err)
			}
		})
	}
}

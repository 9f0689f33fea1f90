package model

import (
	"context"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/mdxcore/pkg/mdx"
)

// ErrParentCycle is returned when node parent links form a loop.
var ErrParentCycle = errors.New("node parent links form a cycle")

// ErrUnknownSequence is returned by SetSequence for a name the model lacks.
var ErrUnknownSequence = errors.New("unknown sequence")

// Instance is one animated copy of a model: a timeline plus the poses of
// every node at the timeline's current time.
//
// Update evaluates tracks concurrently and only reads the model, so many
// instances may share one model as long as nothing edits it meanwhile.
type Instance struct {
	model    *mdx.Model
	timeline *mdx.Timeline
	nodes    []mdx.Node
	order    []int // parents before children
	poses    []Pose
	log      *zap.Logger
	workers  int
}

// Option configures an Instance.
type Option func(*Instance)

// WithLogger sets the instance logger.
func WithLogger(log *zap.Logger) Option {
	return func(inst *Instance) {
		if log != nil {
			inst.log = log
		}
	}
}

// WithWorkers caps concurrent track evaluation. Values below 1 mean GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(inst *Instance) { inst.workers = n }
}

// NewInstance prepares m for playback, starting at its first sequence.
func NewInstance(m *mdx.Model, opts ...Option) (*Instance, error) {
	inst := &Instance{
		model: m,
		nodes: m.Nodes.Items(),
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(inst)
	}
	if inst.workers < 1 {
		inst.workers = runtime.GOMAXPROCS(0)
	}

	order, parents, err := sortNodes(inst.nodes)
	if err != nil {
		return nil, err
	}
	inst.order = order
	inst.poses = make([]Pose, len(inst.nodes))
	for i, n := range inst.nodes {
		inst.poses[i] = Pose{
			Node:        n,
			Parent:      parents[i],
			Translation: mdx.DefaultTranslation,
			Rotation:    mdx.DefaultRotation,
			Scaling:     mdx.DefaultScaling,
			Local:       mgl32.Ident4(),
			World:       mgl32.Ident4(),
			inherited:   mgl32.Ident4(),
		}
	}

	first, _ := m.Sequences.Get(0)
	inst.timeline = mdx.NewTimeline(first, m.GlobalSequences.Items())
	return inst, nil
}

// sortNodes orders nodes parents first and reports each node's parent
// index. A loop in the parent links fails with ErrParentCycle.
func sortNodes(nodes []mdx.Node) ([]int, []int, error) {
	parents := make([]int, len(nodes))
	for i, n := range nodes {
		parents[i] = n.Base().Parent.ID()
		if parents[i] != mdx.InvalidID && n.Base().Parent.Object() != nodes[parents[i]] {
			// Parent lives outside this model's node list.
			parents[i] = mdx.InvalidID
		}
	}

	const (
		unvisited = iota
		visiting
		done
	)
	state := make([]int, len(nodes))
	order := make([]int, 0, len(nodes))

	var visit func(i int) error
	visit = func(i int) error {
		switch state[i] {
		case done:
			return nil
		case visiting:
			return errors.Wrapf(ErrParentCycle, "at node %d (%s)", i, nodes[i].Base().Name)
		}
		state[i] = visiting
		if p := parents[i]; p != mdx.InvalidID {
			if err := visit(p); err != nil {
				return err
			}
		}
		state[i] = done
		order = append(order, i)
		return nil
	}

	for i := range nodes {
		if err := visit(i); err != nil {
			return nil, nil, err
		}
	}
	return order, parents, nil
}

// Model returns the model being animated.
func (inst *Instance) Model() *mdx.Model { return inst.model }

// Timeline returns the instance clock.
func (inst *Instance) Timeline() *mdx.Timeline { return inst.timeline }

// SetSequence switches to the named sequence and rewinds it.
func (inst *Instance) SetSequence(name string) error {
	seq, ok := inst.model.SequenceByName(name)
	if !ok {
		return errors.Wrapf(ErrUnknownSequence, "%q", name)
	}
	inst.timeline.SetSequence(seq)
	inst.log.Debug("sequence changed",
		zap.String("sequence", seq.Name),
		zap.Int("start", seq.IntervalStart),
		zap.Int("end", seq.IntervalEnd))
	return nil
}

// Advance moves the clock forward. It returns false once a non-looping
// sequence has played to its end.
func (inst *Instance) Advance(ticks int) bool {
	return inst.timeline.Advance(ticks)
}

// Update evaluates every node at the current time. A cancelled ctx stops
// sampling before world matrices are rebuilt.
func (inst *Instance) Update(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(inst.workers)

	for i := range inst.poses {
		pose := &inst.poses[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return inst.sampleLocal(pose)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, i := range inst.order {
		pose := &inst.poses[i]
		pose.inherited = mgl32.Ident4()
		if pose.Parent != mdx.InvalidID {
			base := pose.Node.Base()
			pose.inherited = inheritedMatrix(&inst.poses[pose.Parent], &inheritance{
				translation: base.DontInheritTranslation,
				rotation:    base.DontInheritRotation,
				scaling:     base.DontInheritScaling,
			})
		}
		pose.World = pose.inherited.Mul4(pose.Local)
	}
	return nil
}

// sampleLocal writes only to pose, so calls for different nodes may run
// concurrently.
func (inst *Instance) sampleLocal(pose *Pose) error {
	base := pose.Node.Base()
	var err error
	if pose.Translation, err = base.Translation.Sample(inst.timeline); err != nil {
		return errors.Wrapf(err, "%s translation", base.Name)
	}
	if pose.Rotation, err = base.Rotation.Sample(inst.timeline); err != nil {
		return errors.Wrapf(err, "%s rotation", base.Name)
	}
	if pose.Scaling, err = base.Scaling.Sample(inst.timeline); err != nil {
		return errors.Wrapf(err, "%s scaling", base.Name)
	}
	pose.Local = BuildLocalMatrix(base.PivotPoint, pose.Translation, pose.Rotation, pose.Scaling)
	return nil
}

// Poses returns the node poses in node ID order. The slice is reused by
// the next Update.
func (inst *Instance) Poses() []Pose { return inst.poses }

// Pose returns the pose of the named node.
func (inst *Instance) Pose(name string) (*Pose, bool) {
	for i := range inst.poses {
		if inst.poses[i].Name() == name {
			return &inst.poses[i], true
		}
	}
	return nil, false
}

// GeosetAlpha returns the opacity of g at the current time. Geosets
// without a geoset animation are fully opaque.
func (inst *Instance) GeosetAlpha(g *mdx.Geoset) (float32, error) {
	ga, ok := inst.model.GeosetAnimationFor(g)
	if !ok {
		return 1, nil
	}
	return ga.Alpha.Sample(inst.timeline)
}

// HasAnimation reports whether any node transform of m is keyframed.
func HasAnimation(m *mdx.Model) bool {
	for _, n := range m.Nodes.All() {
		base := n.Base()
		if base.Translation.Animated() || base.Rotation.Animated() || base.Scaling.Animated() {
			return true
		}
	}
	return false
}

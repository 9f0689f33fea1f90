// mdxtool is a CLI utility for inspecting and converting skeletal models.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/mdxcore/internal/config"
	"github.com/Faultbox/mdxcore/internal/engine/model"
	"github.com/Faultbox/mdxcore/internal/logger"
	"github.com/Faultbox/mdxcore/internal/modelfile"
	"github.com/Faultbox/mdxcore/pkg/math"
	"github.com/Faultbox/mdxcore/pkg/mdx"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	command := args[0]
	args = args[1:]
	logger.Sugar.Debugf("command %s %v, config %+v", command, args, cfg)

	switch command {
	case "info":
		err = cmdInfo(args)
	case "sample":
		err = cmdSample(cfg, args)
	case "play":
		err = cmdPlay(cfg, args)
	case "dump":
		err = cmdDump(cfg, args)
	case "convert":
		err = cmdConvert(args)
	case "rename":
		err = cmdRename(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`mdxtool - skeletal model utility

Usage:
  mdxtool [flags] <command> [arguments]

Commands:
  info <model.yaml>                        Show object counts and sequences
  sample <model.yaml> [node]               Print node transforms every -step ticks
  play <model.yaml>                        Play the sequence and report the final pose
  dump <model.yaml>                        Dump evaluated poses
  convert <in.yaml> <out.yaml>             Load and re-save a model
  rename <in.yaml> <node> <name> <out.yaml> Rename a node and save

Flags:
  -config <path>   Config file
  -sequence <name> Sequence to play or sample (default: first)
  -step <ticks>    Ticks between samples
  -tps <ticks>     Ticks per second
  -debug           Debug logging

Examples:
  mdxtool info footman.yaml
  mdxtool -sequence Walk -step 250 sample footman.yaml Bone_Root
  mdxtool convert footman.yaml footman-clean.yaml`)
}

func loadModel(path string) (*mdx.Model, error) {
	return modelfile.Load(path, modelfile.WithLogger(logger.Named("modelfile")))
}

func cmdInfo(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: mdxtool info <model.yaml>")
	}
	m, err := loadModel(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Model:    %s\n", m.Name)
	if m.AnimationFile != "" {
		fmt.Printf("Anim:     %s\n", m.AnimationFile)
	}
	fmt.Printf("Animated: %v\n", model.HasAnimation(m))
	fmt.Println()

	counts := []struct {
		name  string
		count int
	}{
		{"Sequences", m.Sequences.Len()},
		{"Global sequences", m.GlobalSequences.Len()},
		{"Textures", m.Textures.Len()},
		{"Materials", m.Materials.Len()},
		{"Texture animations", m.TextureAnimations.Len()},
		{"Geosets", m.Geosets.Len()},
		{"Geoset animations", m.GeosetAnimations.Len()},
		{"Nodes", m.Nodes.Len()},
	}
	for _, c := range counts {
		fmt.Printf("  %-20s %d\n", c.name, c.count)
	}

	if m.Sequences.Len() > 0 {
		fmt.Println()
		fmt.Println("Sequences:")
		for id, seq := range m.Sequences.All() {
			fmt.Printf("  [%d] %s\n", id, seq)
		}
	}
	if m.GlobalSequences.Len() > 0 {
		fmt.Println()
		fmt.Println("Global sequences:")
		for id, gs := range m.GlobalSequences.All() {
			fmt.Printf("  [%d] %s\n", id, gs)
		}
	}

	kinds := make(map[mdx.NodeKind]int)
	for _, n := range m.Nodes.All() {
		kinds[n.Kind()]++
	}
	if len(kinds) > 0 {
		fmt.Println()
		fmt.Println("Nodes by kind:")
		for _, k := range []mdx.NodeKind{mdx.NodeKindBone, mdx.NodeKindHelper, mdx.NodeKindLight, mdx.NodeKindAttachment} {
			if kinds[k] > 0 {
				fmt.Printf("  %-12s %d\n", k, kinds[k])
			}
		}
	}
	return nil
}

// newInstance loads a model and selects the configured sequence.
func newInstance(cfg *config.Config, path string) (*model.Instance, error) {
	m, err := loadModel(path)
	if err != nil {
		return nil, err
	}
	inst, err := model.NewInstance(m, model.WithLogger(logger.Named("instance")))
	if err != nil {
		return nil, err
	}
	if cfg.Playback.Sequence != "" {
		if err := inst.SetSequence(cfg.Playback.Sequence); err != nil {
			return nil, err
		}
	}
	if inst.Timeline().Sequence() == nil {
		return nil, fmt.Errorf("model %s has no sequences", m.Name)
	}
	return inst, nil
}

func cmdSample(cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: mdxtool sample <model.yaml> [node]")
	}
	inst, err := newInstance(cfg, args[0])
	if err != nil {
		return err
	}
	filter := ""
	if len(args) > 1 {
		filter = args[1]
	}

	seq := inst.Timeline().Sequence()
	fmt.Printf("Sequence %s, every %d ticks\n", seq, cfg.Sampling.Step)

	prec := cfg.Sampling.Precision
	playhead := inst.Timeline().Active()
	ctx := context.Background()
	for tick := seq.IntervalStart; tick <= seq.IntervalEnd; tick += cfg.Sampling.Step {
		playhead.Seek(tick)
		if err := inst.Update(ctx); err != nil {
			return err
		}
		fmt.Printf("tick %d\n", tick)
		for _, pose := range inst.Poses() {
			if filter != "" && pose.Name() != filter {
				continue
			}
			rot := math.QuatToXYZW(pose.Rotation)
			fmt.Printf("  %-24s T=%s R=%s S=%s\n", pose.Name(),
				formatVec(pose.Translation[:], prec),
				formatVec(rot[:], prec),
				formatVec(pose.Scaling[:], prec))
		}
	}
	return nil
}

func cmdPlay(cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: mdxtool play <model.yaml>")
	}
	inst, err := newInstance(cfg, args[0])
	if err != nil {
		return err
	}

	seq := inst.Timeline().Sequence()
	step := cfg.TicksPerFrame()
	maxFrames := cfg.Playback.MaxFrames
	if maxFrames <= 0 {
		maxFrames = seq.Duration()/step + 1
	}

	ctx := context.Background()
	frames, finished := 0, false
	for frames < maxFrames {
		if err := inst.Update(ctx); err != nil {
			return err
		}
		frames++
		if !inst.Advance(step) {
			finished = true
			break
		}
	}
	if err := inst.Update(ctx); err != nil {
		return err
	}

	fmt.Printf("Played %s: %d frames at %d ticks/frame, now at tick %d\n",
		seq.Name, frames, step, inst.Timeline().Active().Current())
	if finished {
		fmt.Println("Sequence finished (non-looping)")
	}
	if mesh := model.BuildSkeleton(inst); mesh != nil {
		prec := cfg.Sampling.Precision
		fmt.Printf("Skeleton: %d joints, %d bones\n", len(mesh.Vertices), len(mesh.Indices)/2)
		fmt.Printf("Bounds:   min=%s max=%s\n",
			formatVec(mesh.Bounds.Min[:], prec), formatVec(mesh.Bounds.Max[:], prec))
	}
	return nil
}

// poseDump is the spew-friendly view of a Pose; the node itself would drag
// the whole model graph into the dump.
type poseDump struct {
	Name        string
	Kind        string
	Parent      int
	Translation mgl32.Vec3
	Rotation    [4]float32
	Scaling     mgl32.Vec3
	Position    mgl32.Vec3
}

func cmdDump(cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: mdxtool dump <model.yaml>")
	}
	inst, err := newInstance(cfg, args[0])
	if err != nil {
		return err
	}
	if err := inst.Update(context.Background()); err != nil {
		return err
	}

	dumps := make([]poseDump, 0, len(inst.Poses()))
	for _, pose := range inst.Poses() {
		dumps = append(dumps, poseDump{
			Name:        pose.Name(),
			Kind:        pose.Node.Kind().String(),
			Parent:      pose.Parent,
			Translation: pose.Translation,
			Rotation:    math.QuatToXYZW(pose.Rotation),
			Scaling:     pose.Scaling,
			Position:    pose.Position(),
		})
	}

	dumper := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}
	dumper.Dump(dumps)
	return nil
}

func cmdConvert(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: mdxtool convert <in.yaml> <out.yaml>")
	}
	m, err := loadModel(args[0])
	if err != nil {
		return err
	}
	if err := modelfile.Save(args[1], m, modelfile.WithLogger(logger.Named("modelfile"))); err != nil {
		return err
	}
	fmt.Printf("Wrote %s (%d nodes)\n", args[1], m.Nodes.Len())
	return nil
}

func cmdRename(args []string) error {
	if len(args) < 4 {
		return fmt.Errorf("usage: mdxtool rename <in.yaml> <node> <name> <out.yaml>")
	}
	m, err := loadModel(args[0])
	if err != nil {
		return err
	}
	node, ok := m.NodeByName(args[1])
	if !ok {
		return fmt.Errorf("node %q not found", args[1])
	}
	cmd, err := mdx.NewSetNodeField(node, "name", args[2])
	if err != nil {
		return err
	}
	cmd.Do()
	if err := modelfile.Save(args[3], m); err != nil {
		return err
	}
	fmt.Printf("Renamed %s to %s in %s\n", args[1], args[2], args[3])
	return nil
}

func formatVec(v []float32, prec int) string {
	parts := make([]string, len(v))
	for i, c := range v {
		parts[i] = fmt.Sprintf("%.*f", prec, c)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

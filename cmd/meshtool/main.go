// meshtool is a CLI utility for generating, meshing and benchmarking voxel
// chunk fixtures.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/Faultbox/voxmesh/internal/batch"
	"github.com/Faultbox/voxmesh/internal/config"
	"github.com/Faultbox/voxmesh/internal/geometry"
	"github.com/Faultbox/voxmesh/internal/logger"
	"github.com/Faultbox/voxmesh/internal/mesher"
	"github.com/Faultbox/voxmesh/pkg/chunkfile"
	"github.com/Faultbox/voxmesh/pkg/quad"
	"github.com/Faultbox/voxmesh/pkg/voxel"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "gen", "generate":
		cmdGen(args)
	case "mesh":
		cmdMesh(args)
	case "bench":
		cmdBench(args)
	case "blocks":
		cmdBlocks(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`meshtool - voxel chunk meshing utility

Usage:
  meshtool <command> [options]

Commands:
  gen <out.vxc> [pattern]      Write a generated chunk fixture
  mesh <file.vxc>              Mesh a chunk and print quad and buffer statistics
  bench <file.vxc>...          Mesh chunks concurrently and report throughput
  blocks                       List the block registry

Shared options (mesh, bench, blocks):
  -config <path>               Config file (default ./voxmesh.yaml)
  -registry <path>             Block registry YAML (default built-in blocks)
  -no-greedy                   Emit one quad per visible face
  -ignore-block-type           Merge faces across different blocks
  -workers <n>                 Concurrent meshing workers
  -debug                       Enable debug logging

Examples:
  meshtool gen terrain.vxc flat
  meshtool mesh -surfaces terrain.vxc
  meshtool bench -n 100 -workers 8 terrain.vxc sphere.vxc
  meshtool blocks -registry blocks.yaml`)
}

// env is the state shared by the meshing commands.
type env struct {
	cfg    *config.Config
	reg    *voxel.MapRegistry
	mesher *mesher.Mesher
}

// setup loads config, starts logging and builds the mesher.
func setup(flags *config.Flags) (*env, error) {
	cfg, err := config.Load(flags)
	if err != nil {
		return nil, err
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return nil, fmt.Errorf("initializing logger: %w", err)
	}

	reg, err := loadRegistry(cfg.Registry.Path)
	if err != nil {
		return nil, err
	}

	m, err := mesher.New(reg, mesher.Options{
		EnableGreedyMeshing: cfg.Mesher.Greedy,
		IgnoreBlockType:     cfg.Mesher.IgnoreBlockType,
		Logger:              logger.Named("mesher"),
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("meshtool configured",
		zap.Bool("greedy", cfg.Mesher.Greedy),
		zap.Bool("ignore_block_type", cfg.Mesher.IgnoreBlockType),
		zap.String("registry", cfg.Registry.Path),
		zap.Int("blocks", reg.Len()),
	)
	return &env{cfg: cfg, reg: reg, mesher: m}, nil
}

func cmdGen(args []string) {
	fs := flag.NewFlagSet("gen", flag.ExitOnError)
	seed := fs.Uint64("seed", 1, "Seed for the noise pattern")
	halo := fs.Bool("halo", false, "Continue the pattern into the halo")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: meshtool gen <out.vxc> [%s]\n", strings.Join(generatorNames(), "|"))
		os.Exit(1)
	}

	out := fs.Arg(0)
	pattern := "flat"
	if fs.NArg() > 1 {
		pattern = fs.Arg(1)
	}

	vol, err := generate(pattern, *seed, *halo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := chunkfile.WriteFile(out, vol); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	size := int64(0)
	if st, err := os.Stat(out); err == nil {
		size = st.Size()
	}
	fmt.Printf("Wrote %s: %s pattern, %s solid voxels, %s on disk\n",
		out, pattern, humanize.Comma(int64(vol.Count())), humanize.Bytes(uint64(size)))
}

func cmdMesh(args []string) {
	fs := flag.NewFlagSet("mesh", flag.ExitOnError)
	flags := config.RegisterFlags(fs)
	surfaces := fs.Bool("surfaces", false, "List every surface")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshtool mesh [options] <file.vxc>")
		os.Exit(1)
	}

	e, err := setup(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	vol, err := chunkfile.ReadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	start := time.Now()
	res, err := e.mesher.Mesh(vol)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	elapsed := time.Since(start)

	emitter, err := geometry.NewEmitter(e.reg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	surfs, err := emitter.BuildSurfaces(res)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	collision, err := emitter.BuildCollision(res)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Chunk:      %s\n", fs.Arg(0))
	fmt.Printf("Voxels:     %s\n", humanize.Comma(int64(vol.Count())))
	fmt.Printf("Greedy:     %v\n", res.Merged)
	fmt.Printf("Faces:      %s\n", humanize.Comma(int64(res.Stats.Faces)))
	fmt.Printf("Quads:      %s\n", humanize.Comma(int64(res.Stats.Quads)))
	if res.Stats.Anomalies > 0 {
		fmt.Printf("Anomalies:  %s face cells without a block\n", humanize.Comma(int64(res.Stats.Anomalies)))
	}
	fmt.Printf("Time:       %v\n", elapsed)
	fmt.Println()

	fmt.Println("Quads by direction:")
	for _, d := range voxel.Directions {
		fmt.Printf("  %-3s %6d\n", d, res.Ranges[d].Len)
	}
	fmt.Println()

	var vertexBytes int
	for _, s := range surfs {
		vertexBytes += s.ByteSize()
	}
	fmt.Printf("Packed quads:   %s\n", humanize.Bytes(uint64(res.Len()*quad.PackedSize)))
	fmt.Printf("Vertex buffers: %s in %d surfaces\n", humanize.Bytes(uint64(vertexBytes)), len(surfs))
	fmt.Printf("Collision:      %s, %d triangles\n", humanize.Bytes(uint64(collision.ByteSize())), collision.TriangleCount())

	if *surfaces {
		fmt.Println()
		fmt.Println("Surfaces:")
		for _, s := range surfs {
			name := fmt.Sprintf("#%d", s.Material)
			if b, ok := e.reg.Block(s.Material); ok {
				name = b.Name
			}
			fmt.Printf("  %-10s %-3s tex %-4d %6d tris %10s\n",
				name, s.Direction, s.Texture, s.TriangleCount(), humanize.Bytes(uint64(s.ByteSize())))
		}
	}
}

func cmdBench(args []string) {
	fs := flag.NewFlagSet("bench", flag.ExitOnError)
	flags := config.RegisterFlags(fs)
	repeat := fs.Int("n", 10, "Mesh each chunk N times")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshtool bench [options] <file.vxc>...")
		os.Exit(1)
	}

	e, err := setup(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	var chunks []*voxel.Volume
	for _, path := range fs.Args() {
		vol, err := chunkfile.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		chunks = append(chunks, vol)
	}

	volumes := make([]*voxel.Volume, 0, len(chunks)*max(*repeat, 1))
	for i := 0; i < max(*repeat, 1); i++ {
		volumes = append(volumes, chunks...)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	workers := e.cfg.WorkerCount()
	_, sum, err := batch.MeshAll(ctx, e.mesher, volumes, batch.Options{
		Workers: workers,
		Logger:  logger.Named("batch"),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	perChunk := time.Duration(0)
	if sum.Chunks > 0 {
		perChunk = sum.Elapsed / time.Duration(sum.Chunks)
	}
	fmt.Printf("Files:      %d\n", len(chunks))
	fmt.Printf("Chunks:     %s (%d workers)\n", humanize.Comma(int64(sum.Chunks)), workers)
	fmt.Printf("Elapsed:    %v (%v per chunk)\n", sum.Elapsed, perChunk)
	fmt.Printf("Quads:      %s\n", humanize.Comma(int64(sum.Quads)))
	fmt.Printf("Faces:      %s (%.2f faces per quad)\n", humanize.Comma(int64(sum.Faces)), sum.MergeRatio())
	fmt.Printf("Output:     %s packed\n", humanize.Bytes(uint64(sum.Quads*quad.PackedSize)))
	if sum.Empty > 0 {
		fmt.Printf("Empty:      %d chunks\n", sum.Empty)
	}
	if sum.Anomalies > 0 {
		fmt.Printf("Anomalies:  %s face cells without a block\n", humanize.Comma(int64(sum.Anomalies)))
	}
}

func cmdBlocks(args []string) {
	fs := flag.NewFlagSet("blocks", flag.ExitOnError)
	flags := config.RegisterFlags(fs)
	fs.Parse(args)

	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	reg, err := loadRegistry(cfg.Registry.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	source := "built-in"
	if cfg.Registry.Path != "" {
		source = filepath.Clean(cfg.Registry.Path)
	}
	fmt.Printf("Registry: %s (%d blocks)\n\n", source, reg.Len())
	fmt.Printf("  %-5s %-12s %-12s %s\n", "ID", "Name", "Kind", "Textures (+Y -Y +X -X +Z -Z)")
	for _, b := range reg.All() {
		kind := "solid"
		switch {
		case b.Transparent:
			kind = "transparent"
		case !b.Opaque:
			kind = "decor"
		}
		if b.Directional {
			kind += "*"
		}
		fmt.Printf("  %-5d %-12s %-12s %v\n", b.ID, b.Name, kind, b.Textures)
	}
	fmt.Println("\n  * directional: one surface per face direction")
}

// navtool is a CLI utility for generating, building, and inspecting
// navigation meshes.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/navmesh/internal/config"
	"github.com/Faultbox/navmesh/internal/logger"
	"github.com/Faultbox/navmesh/internal/mapgen"
	"github.com/Faultbox/navmesh/internal/nav"
	"github.com/Faultbox/navmesh/internal/nav/navdebug"
	"github.com/Faultbox/navmesh/internal/world"
	"github.com/Faultbox/navmesh/pkg/formats"
)

func main() {
	// Global flags come before the subcommand
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

	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	switch args[0] {
	case "gen":
		cmdGen(cfg, args[1:])
	case "info":
		cmdInfo(args[1:])
	case "build":
		cmdBuild(cfg, args[1:])
	case "draw":
		cmdDraw(cfg, args[1:])
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", args[0])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`navtool - navigation mesh utility

Usage:
  navtool [global flags] <command> [options]

Commands:
  gen [-name n] [-size n] [-seed n] [-o dir]   Generate a synthetic scenario
  info <map.tmap>                              Show terrain map information
  build <scenario.yaml>                        Generate the mesh, print stats
  draw [-o dir] [-scale n] <scenario.yaml>     Generate and render overlays
  help                                         Show this help

Global flags:
  -config path   Explicit config file
  -debug         Enable debug logging
  -logfile path  Write logs to a file
  -workers n     Worker goroutines for mesh generation`)
}

func cmdGen(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("gen", flag.ExitOnError)
	name := fs.String("name", "generated", "Scenario name")
	size := fs.Int("size", cfg.Gen.Size, "Map side length in cells")
	seed := fs.Int64("seed", cfg.Gen.Seed, "Noise seed")
	outDir := fs.String("o", ".", "Output directory")
	fs.Parse(args)

	params := mapgen.Params{
		Seed:         *seed,
		Size:         *size,
		NoiseScale:   cfg.Gen.NoiseScale,
		HeightScale:  cfg.Gen.HeightScale,
		PlateauStep:  cfg.Gen.PlateauStep,
		SeaLevel:     cfg.Gen.SeaLevel,
		MassSpots:    cfg.Gen.MassSpots,
		Hydrocarbons: cfg.Gen.Hydrocarbons,
	}

	gen := mapgen.New(params)
	terrain := gen.Terrain()
	markers := gen.Markers(terrain)

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		fatal("creating output directory", err)
	}
	terrainFile := *name + ".tmap"
	if err := terrain.WriteFile(filepath.Join(*outDir, terrainFile)); err != nil {
		fatal("writing terrain", err)
	}
	scenario := gen.Scenario(*name, terrainFile, markers)
	scenarioPath := filepath.Join(*outDir, *name+".yaml")
	if err := scenario.Save(scenarioPath); err != nil {
		fatal("writing scenario", err)
	}

	fmt.Printf("Scenario: %s\n", scenarioPath)
	fmt.Printf("Terrain:  %s (%dx%d)\n", filepath.Join(*outDir, terrainFile), *size, *size)
	fmt.Printf("Markers:  %d\n", len(markers))
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: navtool info <map.tmap>")
		os.Exit(1)
	}

	m, err := formats.ParseTMapFile(args[0])
	if err != nil {
		fatal("parsing terrain map", err)
	}

	min, max := m.HeightRange()
	flooded := 0
	for z := 0; z <= m.Size(); z++ {
		for x := 0; x <= m.Size(); x++ {
			if m.SurfaceHeight(x, z) > m.TerrainHeight(x, z) {
				flooded++
			}
		}
	}
	corners := (m.Size() + 1) * (m.Size() + 1)

	fmt.Printf("Map:     %s\n", args[0])
	fmt.Printf("Version: %s\n", m.Version)
	fmt.Printf("Size:    %dx%d cells\n", m.Size(), m.Size())
	fmt.Printf("Heights: %.2f .. %.2f\n", min, max)
	fmt.Printf("Water:   %.1f%% of corners\n", 100*float64(flooded)/float64(corners))
	fmt.Printf("Blocked: %d cells\n", m.CountBlocked())
}

func cmdBuild(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: navtool build <scenario.yaml>")
		os.Exit(1)
	}

	mesh, _ := buildMesh(cfg, args[0])
	printStats(mesh)
}

func cmdDraw(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("draw", flag.ExitOnError)
	outDir := fs.String("o", cfg.Draw.OutputDir, "Overlay output directory")
	scale := fs.Int("scale", cfg.Draw.Scale, "Image pixels per map cell")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: navtool draw [-o dir] [-scale n] <scenario.yaml>")
		os.Exit(1)
	}

	mesh, m := buildMesh(cfg, fs.Arg(0))
	printStats(mesh)

	renderer := navdebug.NewRenderer(mesh, *scale)
	paths, err := renderer.WriteAll(*outDir, m.Markers())
	if err != nil {
		fatal("writing overlays", err)
	}
	fmt.Println("\nOverlays:")
	for _, p := range paths {
		fmt.Printf("  %s\n", p)
	}
}

// buildMesh loads a scenario and runs the full generation pipeline.
func buildMesh(cfg *config.Config, scenarioPath string) (*nav.Mesh, *world.Map) {
	m, err := world.LoadMap(scenarioPath)
	if err != nil {
		fatal("loading map", err)
	}
	logger.Info("map loaded", zap.String("name", m.Name), zap.Int("size", m.Size()))

	builder := nav.NewBuilder(m,
		nav.WithMarkers(m),
		nav.WithWorkers(cfg.Build.Workers),
		nav.WithLogger(logger.L()),
	)
	mesh, err := builder.Generate()
	if err != nil {
		fatal("generating mesh", err)
	}
	return mesh, m
}

func printStats(mesh *nav.Mesh) {
	fmt.Printf("%-11s %9s %11s %12s %10s %7s\n",
		"Layer", "Pathable", "Unpathable", "Subdivisions", "Neighbors", "Labels")
	for _, layer := range nav.Layers {
		s := mesh.LayerData[layer]
		fmt.Printf("%-11s %9d %11d %12d %10d %7d\n",
			layer, s.PathableLeafs, s.UnpathableLeafs, s.Subdivisions, s.Neighbors, s.Labels)
	}
	fmt.Printf("\nComponents: %d total, %d culled\n", len(mesh.Labels), mesh.CulledLabels)
}

func fatal(context string, err error) {
	logger.Error(context, zap.Error(err))
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", context, err)
	os.Exit(1)
}

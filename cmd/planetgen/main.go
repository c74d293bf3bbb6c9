// planetgen is a CLI for generating planets and star systems.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go.uber.org/zap"

	"github.com/Faultbox/planetgen/internal/catalog"
	"github.com/Faultbox/planetgen/internal/config"
	"github.com/Faultbox/planetgen/internal/logger"
	"github.com/Faultbox/planetgen/internal/planet"
	"github.com/Faultbox/planetgen/internal/preview"
	"github.com/Faultbox/planetgen/internal/server"
	"github.com/Faultbox/planetgen/internal/system"
)

var (
	flagOut        = flag.String("out", ".", "Output directory")
	flagPreview    = flag.String("preview", "biome", "Preview mode: biome, height or none")
	flagPreviewW   = flag.Int("preview-width", 512, "Preview width in pixels")
	flagPreviewH   = flag.Int("preview-height", 256, "Preview height in pixels")
	flagMarkFlora  = flag.Bool("mark-flora", false, "Mark flora placements on the preview")
	flagRand       = flag.Int64("rand", 0, "Seed of the generation random source (0 = planet seed)")
	flagSystemSeed = flag.Int64("system-seed", 1, "System layout seed")
	flagLimit      = flag.Int("n", 20, "Number of catalog entries to list")
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var run func(context.Context, *config.Config) error
	switch command {
	case "planet":
		run = cmdPlanet
	case "system":
		run = cmdSystem
	case "catalog":
		run = cmdCatalog
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err := config.ParseArgs(args); err != nil {
		os.Exit(2)
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile, cfg.Logging.LogFormat); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logger.Error(command+" failed", zap.Error(err))
		stop()
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`planetgen - procedural planet generator

Usage:
  planetgen <command> [options]

Commands:
  planet     Generate one planet and write its preview and summary
  system     Generate a star system with several planets
  catalog    List planets recorded in the catalog

Common options:
  -config <file>    Config file (default ./config.yaml)
  -seed <n>         Planet noise seed
  -depth <n>        Subdivision depth
  -db <file>        Record results in a SQLite catalog
  -out <dir>        Output directory
  -preview <mode>   biome, height or none

Examples:
  planetgen planet -seed 42 -depth 6 -out ./out
  planetgen system -system-seed 7 -db planets.db
  planetgen catalog -db planets.db -n 10`)
}

func cmdPlanet(ctx context.Context, cfg *config.Config) error {
	randSeed := *flagRand
	if randSeed == 0 {
		randSeed = int64(cfg.Planet.Seed)
	}

	p, err := planet.Generate(ctx, cfg.Planet, cfg.Options(), rand.New(rand.NewSource(randSeed)))
	if err != nil {
		return err
	}

	if err := writeOutputs(*flagOut, "planet", p); err != nil {
		return err
	}
	if err := record(ctx, cfg, []*planet.Planet{p}, nil); err != nil {
		return err
	}

	printPlanet(p)
	return nil
}

func cmdSystem(ctx context.Context, cfg *config.Config) error {
	seed := *flagSystemSeed
	sys, err := system.Generate(ctx, seed, cfg.System, cfg.Planet, cfg.Options())
	if err != nil {
		return err
	}

	for i, p := range sys.Planets {
		if err := writeOutputs(*flagOut, fmt.Sprintf("planet-%02d", i), p); err != nil {
			return err
		}
	}
	if err := record(ctx, cfg, sys.Planets, &seed); err != nil {
		return err
	}

	fmt.Printf("System %d: %d planets in %v\n", sys.Seed, len(sys.Planets), sys.Duration)
	for _, p := range sys.Planets {
		printPlanet(p)
	}
	return nil
}

func cmdCatalog(ctx context.Context, cfg *config.Config) error {
	if !cfg.Catalog.Enabled {
		return fmt.Errorf("catalog disabled; pass -db or set catalog.enabled")
	}
	store, err := catalog.Open(cfg.Catalog.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	total, err := store.Count(ctx)
	if err != nil {
		return err
	}
	entries, err := store.List(ctx, *flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Catalog: %s (%d planets)\n\n", cfg.Catalog.Path, total)
	for _, e := range entries {
		sysLabel := "-"
		if e.SystemSeed != nil {
			sysLabel = fmt.Sprint(*e.SystemSeed)
		}
		fmt.Printf("  %s  seed %-6d  %6.1f K  %7d tris  %5d flora  system %s  %s\n",
			e.ID, e.Descriptor.Seed, e.Temperature, e.Stats.Triangles,
			e.Stats.PlacementCount(), sysLabel, e.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

// writeOutputs writes <name>.json and, unless disabled, <name>.png.
func writeOutputs(dir, name string, p *planet.Planet) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(server.Summarize(p), "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, name+".json"), data, 0644); err != nil {
		return err
	}

	if *flagPreview == "none" {
		return nil
	}
	mode, err := preview.ParseMode(*flagPreview)
	if err != nil {
		return err
	}
	img, err := preview.Render(p, mode, *flagPreviewW, *flagPreviewH)
	if err != nil {
		return err
	}
	if *flagMarkFlora {
		preview.MarkPlacements(img, p.Placements)
	}

	f, err := os.Create(filepath.Join(dir, name+".png"))
	if err != nil {
		return err
	}
	if err := preview.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func record(ctx context.Context, cfg *config.Config, planets []*planet.Planet, systemSeed *int64) error {
	if !cfg.Catalog.Enabled {
		return nil
	}
	store, err := catalog.Open(cfg.Catalog.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	for _, p := range planets {
		if _, err := store.Record(ctx, p, systemSeed); err != nil {
			return fmt.Errorf("record %s: %w", p.ID, err)
		}
	}
	logger.Info("recorded planets", zap.Int("count", len(planets)), zap.String("catalog", cfg.Catalog.Path))
	return nil
}

func printPlanet(p *planet.Planet) {
	s := p.Stats
	fmt.Printf("Planet %s\n", p.ID)
	fmt.Printf("  Seed:        %d\n", p.Descriptor.Seed)
	fmt.Printf("  Temperature: %.1f K\n", p.Temperature)
	fmt.Printf("  Mesh:        %d triangles, %d vertices, %d chunks\n", s.Triangles, s.Vertices, s.Chunks)
	fmt.Printf("  Flora:       %d placed, %d barren, %d degenerate\n", s.PlacementCount(), s.BarrenSlots, s.DegenerateSlots)
	fmt.Printf("  Generated:   %v\n", s.Duration)
}

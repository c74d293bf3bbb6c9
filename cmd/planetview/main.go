// planetview opens a window showing a generated planet or star system.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Faultbox/planetgen/internal/config"
	"github.com/Faultbox/planetgen/internal/logger"
	"github.com/Faultbox/planetgen/internal/planet"
	"github.com/Faultbox/planetgen/internal/system"
	"github.com/Faultbox/planetgen/internal/viewer"
	"github.com/Faultbox/planetgen/pkg/math"
)

var flagSystem = flag.Int64("system", 0, "Show the star system with this seed instead of one planet")

func main() {
	config.ParseFlags()

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

	logger.Info("=== Planet Viewer ===")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	star, planets, err := build(ctx, cfg)
	if err != nil {
		logger.Error("generation failed", zap.Error(err))
		os.Exit(1)
	}

	v, err := viewer.New(viewer.Config{
		Title:      "PlanetGen",
		Width:      cfg.Viewer.Width,
		Height:     cfg.Viewer.Height,
		Fullscreen: cfg.Viewer.Fullscreen,
		VSync:      cfg.Viewer.VSync,
		FPSLimit:   cfg.Viewer.FPSLimit,
		TimeScale:  cfg.Viewer.TimeScale,
		ShowFlora:  cfg.Viewer.ShowFlora,

		ScreenshotDir: cfg.Viewer.ScreenshotDir,
	}, star, planets)
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		os.Exit(1)
	}
	defer v.Close()

	if err := v.Run(ctx); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}

// build generates a single planet, or a whole system when -system is set.
func build(ctx context.Context, cfg *config.Config) (math.Vec3, []*planet.Planet, error) {
	if *flagSystem != 0 {
		sys, err := system.Generate(ctx, *flagSystem, cfg.System, cfg.Planet, cfg.Options())
		if err != nil {
			return math.Vec3{}, nil, err
		}
		return sys.Star, sys.Planets, nil
	}

	opts := cfg.Options()
	p, err := planet.Generate(ctx, cfg.Planet, opts, rand.New(rand.NewSource(int64(cfg.Planet.Seed))))
	if err != nil {
		return math.Vec3{}, nil, err
	}
	return opts.StarPosition, []*planet.Planet{p}, nil
}

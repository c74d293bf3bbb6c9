// Package system lays out a star system and generates its planets
// concurrently on a bounded worker pool.
package system

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/Faultbox/planetgen/internal/logger"
	"github.com/Faultbox/planetgen/internal/planet"
	"github.com/Faultbox/planetgen/pkg/math"
)

// ErrInvalidLayout is returned for an unusable system configuration.
var ErrInvalidLayout = errors.New("invalid system layout")

// Config controls the system layout.
type Config struct {
	MinPlanets int     `yaml:"min_planets"`
	MaxPlanets int     `yaml:"max_planets"`
	InnerAU    float64 `yaml:"inner_au"`
	MinGapAU   float64 `yaml:"min_gap_au"`
	MaxGapAU   float64 `yaml:"max_gap_au"`
	// Workers bounds the pool; 0 uses one worker per CPU.
	Workers int `yaml:"workers"`
}

// DefaultConfig returns the stock layout: three to seven planets.
func DefaultConfig() Config {
	return Config{
		MinPlanets: 3,
		MaxPlanets: 7,
		InnerAU:    0.4,
		MinGapAU:   0.3,
		MaxGapAU:   0.8,
	}
}

// Validate checks the layout bounds.
func (c Config) Validate() error {
	switch {
	case c.MinPlanets < 1 || c.MaxPlanets < c.MinPlanets:
		return fmt.Errorf("%w: planet count range [%d, %d]", ErrInvalidLayout, c.MinPlanets, c.MaxPlanets)
	case c.InnerAU <= 0:
		return fmt.Errorf("%w: inner orbit %v AU must be positive", ErrInvalidLayout, c.InnerAU)
	case c.MinGapAU < 0 || c.MaxGapAU < c.MinGapAU:
		return fmt.Errorf("%w: gap range [%v, %v] AU", ErrInvalidLayout, c.MinGapAU, c.MaxGapAU)
	}
	return nil
}

func (c Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.NumCPU()
}

// Slot is one planned planet: its descriptor and the seed of its private
// random source.
type Slot struct {
	Descriptor planet.Descriptor
	RandSeed   int64
}

// System is a star with its generated planets, ordered by orbital distance.
type System struct {
	Seed     int64
	Star     math.Vec3
	Planets  []*planet.Planet
	Duration time.Duration
}

// Layout plans the planets of a system. Each planet varies the base
// descriptor within the usual parameter ranges and orbits farther out than
// the one before it. Layout is a pure function of its arguments.
func Layout(seed int64, cfg Config, base planet.Descriptor) ([]Slot, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(seed))

	n := cfg.MinPlanets + rng.Intn(cfg.MaxPlanets-cfg.MinPlanets+1)
	slots := make([]Slot, n)
	distance := cfg.InnerAU
	for i := range slots {
		d := base
		d.Seed = rng.Intn(65536)
		d.Radius = 1 + 2*rng.Float32()
		d.OceanHeight = -0.2 + 0.3*rng.Float32()
		d.NoiseFrequency = 1 + 9*rng.Float32()
		d.TerrainHeight = 0.01 + 0.09*rng.Float32()
		d.Albedo = 0.1 + 0.3*rng.Float64()
		d.AxisTilt = 45 * rng.Float32()
		d.KeplerRatio = 0.8 + 0.4*rng.Float32()
		d.Forestation = rng.Float32()
		d.DistanceAU = distance

		slots[i] = Slot{Descriptor: d, RandSeed: rng.Int63()}
		distance += cfg.MinGapAU + (cfg.MaxGapAU-cfg.MinGapAU)*rng.Float64()
	}
	return slots, nil
}

// Generate lays out a system and generates every planet. Planets are built
// in parallel; each owns its random source and buffers. The first failure
// cancels the remaining work and no system is returned.
func Generate(ctx context.Context, seed int64, cfg Config, base planet.Descriptor, opts planet.Options) (*System, error) {
	start := time.Now()
	slots, err := Layout(seed, cfg, base)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	star := math.Vec3{}
	opts.StarPosition = star
	planets := make([]*planet.Planet, len(slots))

	var (
		mu       sync.Mutex
		firstErr error
		wg       sync.WaitGroup
	)

	pool := pond.NewPool(cfg.workers())
	defer pool.StopAndWait()

	for i, slot := range slots {
		wg.Add(1)
		pool.Submit(func() {
			defer wg.Done()

			p, err := planet.Generate(ctx, slot.Descriptor, opts, rand.New(rand.NewSource(slot.RandSeed)))
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("system: planet %d: %w", i, err)
					cancel()
				}
				mu.Unlock()
				return
			}
			planets[i] = p
		})
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	sys := &System{
		Seed:     seed,
		Star:     star,
		Planets:  planets,
		Duration: time.Since(start),
	}
	logger.Named("system").Info("system generated",
		zap.Int64("seed", seed),
		zap.Int("planets", len(planets)),
		zap.Int("workers", cfg.workers()),
		zap.Duration("duration", sys.Duration))
	return sys, nil
}

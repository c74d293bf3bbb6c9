package planet

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Faultbox/planetgen/internal/logger"
	"github.com/Faultbox/planetgen/internal/planet/biome"
	"github.com/Faultbox/planetgen/internal/planet/chunk"
	"github.com/Faultbox/planetgen/internal/planet/climate"
	"github.com/Faultbox/planetgen/internal/planet/flora"
	"github.com/Faultbox/planetgen/internal/planet/geosphere"
	"github.com/Faultbox/planetgen/internal/planet/noise"
	"github.com/Faultbox/planetgen/internal/planet/orbit"
	"github.com/Faultbox/planetgen/internal/planet/terrain"
	"github.com/Faultbox/planetgen/pkg/math"
)

// Options tune the generator without changing what planet is described.
type Options struct {
	NoiseBackend string
	MaxVertices  int
	MaxAttempts  int
	Palette      *biome.Palette
	Variants     *flora.Variants
	StarPosition math.Vec3
}

// DefaultOptions returns the stock generator options.
func DefaultOptions() Options {
	return Options{
		NoiseBackend: noise.BackendClassic,
		MaxVertices:  chunk.DefaultMaxVertices,
		MaxAttempts:  flora.DefaultMaxAttempts,
	}
}

func (o Options) palette() biome.Palette {
	if o.Palette != nil {
		return *o.Palette
	}
	return biome.DefaultPalette()
}

func (o Options) variants() flora.Variants {
	if o.Variants != nil {
		return *o.Variants
	}
	return flora.DefaultVariants()
}

func (o Options) maxVertices() int {
	if o.MaxVertices > 0 {
		return o.MaxVertices
	}
	return chunk.DefaultMaxVertices
}

// Generate builds a planet. All randomness (color jitter, orbit phase,
// flora) is drawn from rng, so a seeded rng reproduces the planet exactly.
//
// Generation is all-or-nothing: on any error, including cancellation, no
// planet is returned. Configuration errors are reported before any mesh
// buffer is allocated.
func Generate(ctx context.Context, d Descriptor, opts Options, rng *rand.Rand) (*Planet, error) {
	start := time.Now()

	if err := d.Validate(); err != nil {
		return nil, err
	}
	palette := opts.palette()
	if err := palette.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	variants := opts.variants()
	if d.FloraEnabled {
		if err := variants.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
		}
	}
	maxVertices := opts.maxVertices()
	if maxVertices%3 != 0 {
		return nil, fmt.Errorf("%w: max vertices %d must be a multiple of 3", ErrConfiguration, maxVertices)
	}
	field, err := noise.New(opts.NoiseBackend, d.Seed)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	log := logger.Named("planet").With(zap.Int("seed", d.Seed))

	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		return nil, fmt.Errorf("planet: drawing id: %w", err)
	}

	temperature, err := climate.EquilibriumTemperature(climate.Inputs{
		Albedo:           d.Albedo,
		GreenhouseOffset: d.GreenhouseOffset,
		DistanceAU:       d.DistanceAU,
		LuminosityFactor: d.LuminosityFactor,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	log.Debug("temperature", zap.Float64("kelvin", temperature))

	geo, err := geosphere.Build(d.SubdivisionDepth)
	if err != nil {
		return nil, err
	}
	log.Debug("geosphere built",
		zap.Int("vertices", len(geo.Vertices)),
		zap.Int("triangles", len(geo.Triangles)))

	surface := terrain.Surface{
		Field:          field,
		NoiseFrequency: d.NoiseFrequency,
		HeightScale:    d.TerrainHeight,
		Radius:         d.Radius,
		OceanHeight:    d.OceanHeight,
	}
	mesh, err := terrain.Synthesize(ctx, geo, surface)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("planet: cancelled after synthesis: %w", err)
	}

	colorizer := biome.NewColorizer(palette, temperature, biome.DefaultThresholds(d.OceanHeight), d.ColorRandomness)
	colored := colorizer.Colorize(mesh.MaxHeights, rng)

	chunks, err := chunk.Split(mesh.Positions, mesh.Normals, colored.Colors, chunk.FlatIndices(mesh.VertexCount()), maxVertices)
	if err != nil {
		return nil, fmt.Errorf("planet: chunking: %w", err)
	}
	log.Debug("mesh chunked", zap.Int("chunks", len(chunks)), zap.Int("max_vertices", maxVertices))

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("planet: cancelled after chunking: %w", err)
	}

	orb, err := orbit.New(opts.StarPosition, orbit.Params{
		Distance:      float32(climate.SceneDistance(d.DistanceAU)),
		KeplerRatio:   d.KeplerRatio,
		AxisTilt:      d.AxisTilt,
		RotationSpeed: d.RotationSpeed,
	}, rng)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	p := &Planet{
		ID:          id,
		Descriptor:  d,
		Temperature: temperature,
		BandColors:  make(map[biome.Band]biome.Color, len(biome.Bands)),
		Chunks:      chunks,
		Core:        Core{Radius: d.Radius * coreScale},
		Orbit:       orb,
		Surface:     surface,
		Stats: Stats{
			Triangles:  mesh.TriangleCount(),
			Vertices:   mesh.VertexCount(),
			Chunks:     len(chunks),
			Bands:      make(map[string]int, len(biome.Bands)),
			Placements: make(map[string]int, len(flora.Categories)),
		},
	}
	for _, b := range biome.Bands {
		p.BandColors[b] = colorizer.BandColor(b)
		p.Stats.Bands[b.String()] = colored.Histogram[b]
	}

	if d.FloraEnabled {
		sampler := &flora.Sampler{
			Surface:        surface,
			MountainHeight: biome.DefaultMountainHeight,
			Temperature:    temperature,
			MaxAttempts:    opts.MaxAttempts,
			Variants:       variants,
			Namespace:      id,
		}
		res, err := sampler.Place(ctx, flora.TargetCount(d.Radius, d.Forestation), rng)
		if err != nil {
			return nil, fmt.Errorf("planet: placing flora: %w", err)
		}
		p.Placements = res.Placements
		p.Stats.BarrenSlots = res.Barren
		p.Stats.DegenerateSlots = res.Degenerate
		for _, c := range flora.Categories {
			p.Stats.Placements[c.String()] = res.PerCategory[c]
		}
		if res.Degenerate > 0 {
			log.Warn("flora slots abandoned", zap.Int("degenerate", res.Degenerate))
		}
	}

	p.Stats.Duration = time.Since(start)
	log.Info("planet generated",
		zap.String("id", id.String()),
		zap.Int("depth", d.SubdivisionDepth),
		zap.Int("triangles", p.Stats.Triangles),
		zap.Int("chunks", p.Stats.Chunks),
		zap.Int("placements", len(p.Placements)),
		zap.Float64("temperature", temperature),
		zap.Duration("duration", p.Stats.Duration))

	return p, nil
}

// Package flora scatters vegetation over a planet surface by rejection
// sampling geocentric coordinates against the terrain height function.
package flora

import (
	"context"
	"errors"
	"fmt"
	gomath "math"
	"math/rand"
	"strconv"

	"github.com/google/uuid"

	"github.com/Faultbox/planetgen/internal/planet/climate"
	"github.com/Faultbox/planetgen/internal/planet/terrain"
	"github.com/Faultbox/planetgen/pkg/math"
)

// Defaults used when a Sampler field is left zero.
const (
	DefaultMaxAttempts = 1000
	DefaultObjectScale = 0.04
	// AmountPerUnitArea is the flora count per squared unit of radius at
	// full forestation.
	AmountPerUnitArea = 250.0
)

// Longitude and latitude ranges candidates are drawn from, in degrees.
// Latitude is the polar angle measured from +Z.
const (
	maxLongitude = 359.0
	maxLatitude  = 179.0
)

// ErrDegenerateSampling is returned when no eligible terrain was found for
// a slot within the attempt cap.
var ErrDegenerateSampling = errors.New("no eligible terrain within attempt cap")

// TargetCount returns how many flora slots a planet gets.
func TargetCount(radius, forestation float32) int {
	return int(AmountPerUnitArea * radius * radius * forestation)
}

// Placement is one object on the planet surface.
type Placement struct {
	ID        uuid.UUID
	Tag       string
	Category  Category
	Variant   int
	Longitude float32 // degrees
	Latitude  float32 // degrees, polar angle
	Height    float32 // raw noise sample at the site
	Position  math.Vec3
	Rotation  math.Quat
}

// Result summarises a sampling run.
type Result struct {
	Placements []Placement
	// PerCategory counts placements by category.
	PerCategory [categoryCount]int
	// Barren counts slots whose regional temperature supports no flora.
	Barren int
	// Degenerate counts slots abandoned after the attempt cap.
	Degenerate int
}

// Sampler places flora on one planet.
type Sampler struct {
	Surface        terrain.Surface
	Center         math.Vec3
	MountainHeight float32 // candidates must sit strictly below this height
	Temperature    float64 // planet temperature in Kelvin
	ObjectScale    float32
	MaxAttempts    int
	Selector       Selector
	Variants       Variants
	// Namespace seeds the deterministic placement IDs.
	Namespace uuid.UUID
}

func (s *Sampler) maxAttempts() int {
	if s.MaxAttempts > 0 {
		return s.MaxAttempts
	}
	return DefaultMaxAttempts
}

func (s *Sampler) objectScale() float32 {
	if s.ObjectScale > 0 {
		return s.ObjectScale
	}
	return DefaultObjectScale
}

func (s *Sampler) selector() Selector {
	if s.Selector != nil {
		return s.Selector
	}
	return SelectByTemperature
}

// Place fills up to target slots. Each slot first draws a regional
// temperature within the planet's variation range; barren regions consume
// the slot without placing anything. Otherwise candidates are drawn until one
// lands strictly between the ocean and mountain heights. A slot that
// exhausts the attempt cap is counted as degenerate and skipped.
//
// The only error returned is a wrapped context error.
func (s *Sampler) Place(ctx context.Context, target int, rng *rand.Rand) (Result, error) {
	if err := s.Variants.Validate(); err != nil {
		return Result{}, err
	}

	var res Result
	for slot := 0; slot < target; slot++ {
		regional := climate.VariationHalfRange * (2*rng.Float64() - 1)
		category, ok := s.selector()(s.Temperature + regional)
		if !ok {
			// Spent, not retried: a frozen world would never finish otherwise.
			res.Barren++
			continue
		}
		variant := rng.Intn(len(s.Variants[category]))

		p, err := s.sampleSlot(ctx, rng)
		switch {
		case errors.Is(err, ErrDegenerateSampling):
			res.Degenerate++
			continue
		case err != nil:
			return Result{}, fmt.Errorf("flora: slot %d: %w", slot, err)
		}

		p.Category = category
		p.Variant = variant
		p.Tag = s.Variants[category][variant]
		p.ID = uuid.NewSHA1(s.Namespace, []byte(strconv.Itoa(slot)))

		res.Placements = append(res.Placements, p)
		res.PerCategory[category]++
	}
	return res, nil
}

// sampleSlot rejection-samples one site. It checks ctx on every attempt.
func (s *Sampler) sampleSlot(ctx context.Context, rng *rand.Rand) (Placement, error) {
	for attempt := 0; attempt < s.maxAttempts(); attempt++ {
		if err := ctx.Err(); err != nil {
			return Placement{}, err
		}

		lon := rng.Float32() * maxLongitude
		lat := rng.Float32() * maxLatitude
		dir := GeocentricToCartesian(lon, lat)

		h := s.Surface.RawHeight(dir)
		if h <= s.Surface.OceanHeight || h >= s.MountainHeight {
			continue
		}

		return Placement{
			Longitude: lon,
			Latitude:  lat,
			Height:    h,
			Position:  s.position(dir, h),
			Rotation:  Orientation(dir),
		}, nil
	}
	return Placement{}, fmt.Errorf("%w (%d attempts)", ErrDegenerateSampling, s.maxAttempts())
}

// position lifts a site along dir to the surface, sunk by the object's
// half-height so it does not float.
func (s *Sampler) position(dir math.Vec3, h float32) math.Vec3 {
	dist := s.Surface.Radius + h*s.Surface.HeightScale - s.objectScale()*1.5
	return s.Center.Add(dir.Scale(dist))
}

// Orientation returns the rotation that stands an object upright on the
// sphere at outward direction dir.
func Orientation(dir math.Vec3) math.Quat {
	look := math.QuatLookRotation(dir, math.Vec3{Y: 1})
	return look.Mul(math.QuatFromEuler(90, 0, 0))
}

// GeocentricToCartesian converts a longitude and polar latitude in degrees
// to a unit vector.
func GeocentricToCartesian(longitude, latitude float32) math.Vec3 {
	lon := float64(longitude) * gomath.Pi / 180
	lat := float64(latitude) * gomath.Pi / 180
	sinLat := gomath.Sin(lat)
	return math.Vec3{
		X: float32(gomath.Cos(lon) * sinLat),
		Y: float32(gomath.Sin(lon) * sinLat),
		Z: float32(gomath.Cos(lat)),
	}
}

// Package planet turns a Descriptor into a complete procedural planet:
// chunked terrain mesh, surface flora, temperature and orbit.
package planet

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/Faultbox/planetgen/internal/planet/geosphere"
)

// ErrConfiguration marks an invalid Descriptor. It is the same error value
// the geosphere builder returns for a bad depth.
var ErrConfiguration = geosphere.ErrConfiguration

// Descriptor is the full parameter set of one planet.
type Descriptor struct {
	Seed             int     `yaml:"seed" json:"seed"`
	Radius           float32 `yaml:"radius" json:"radius"`
	SubdivisionDepth int     `yaml:"subdivision_depth" json:"subdivision_depth"`
	OceanHeight      float32 `yaml:"ocean_height" json:"ocean_height"`
	NoiseFrequency   float32 `yaml:"noise_frequency" json:"noise_frequency"`
	TerrainHeight    float32 `yaml:"terrain_height" json:"terrain_height"`
	ColorRandomness  float32 `yaml:"color_randomness" json:"color_randomness"`

	Albedo           float64 `yaml:"albedo" json:"albedo"`
	GreenhouseOffset float64 `yaml:"greenhouse_offset" json:"greenhouse_offset"`
	DistanceAU       float64 `yaml:"distance_au" json:"distance_au"`
	LuminosityFactor float64 `yaml:"luminosity_factor" json:"luminosity_factor"`

	AxisTilt      float32 `yaml:"axis_tilt" json:"axis_tilt"`
	KeplerRatio   float32 `yaml:"kepler_ratio" json:"kepler_ratio"`
	RotationSpeed float32 `yaml:"rotation_speed" json:"rotation_speed"`

	FloraEnabled bool    `yaml:"flora_enabled" json:"flora_enabled"`
	Forestation  float32 `yaml:"forestation" json:"forestation"`
}

// DefaultDescriptor returns an Earth-like planet.
func DefaultDescriptor() Descriptor {
	return Descriptor{
		Seed:             32768,
		Radius:           2,
		SubdivisionDepth: 7,
		OceanHeight:      0.05,
		NoiseFrequency:   4,
		TerrainHeight:    0.05,
		ColorRandomness:  0.05,
		Albedo:           0.29,
		GreenhouseOffset: 0,
		DistanceAU:       1,
		LuminosityFactor: 1,
		AxisTilt:         0,
		KeplerRatio:      1,
		RotationSpeed:    1,
		FloraEnabled:     true,
		Forestation:      0.5,
	}
}

// Validate reports every invalid field at once. The returned error wraps
// ErrConfiguration. Values that are merely unusual are accepted and only
// degrade the output.
func (d Descriptor) Validate() error {
	var errs error
	if d.SubdivisionDepth < 0 || d.SubdivisionDepth > geosphere.MaxDepth {
		errs = multierr.Append(errs, fmt.Errorf("subdivision_depth %d outside [0, %d]", d.SubdivisionDepth, geosphere.MaxDepth))
	}
	if d.Radius <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("radius %v must be positive", d.Radius))
	}
	if d.DistanceAU <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("distance_au %v must be positive", d.DistanceAU))
	}
	if d.Albedo <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("albedo %v must be positive", d.Albedo))
	}
	if d.LuminosityFactor <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("luminosity_factor %v must be positive", d.LuminosityFactor))
	}
	if d.KeplerRatio <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("kepler_ratio %v must be positive", d.KeplerRatio))
	}
	if d.Forestation < 0 {
		errs = multierr.Append(errs, fmt.Errorf("forestation %v must not be negative", d.Forestation))
	}
	if errs != nil {
		return fmt.Errorf("%w: %w", ErrConfiguration, errs)
	}
	return nil
}

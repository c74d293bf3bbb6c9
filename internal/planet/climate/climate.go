// Package climate computes a planet's equilibrium temperature and holds the
// temperature barriers that biome palettes and flora categories key on.
package climate

import (
	"errors"
	"fmt"
	"math"
)

// Physical and scene constants.
const (
	// SolarLuminosity is the Sun's luminosity in watts.
	SolarLuminosity = 3.846e26
	// StefanBoltzmann is σ in W·m⁻²·K⁻⁴.
	StefanBoltzmann = 5.670373e-8
	// SceneUnitsPerAU converts astronomical units to scene units.
	SceneUnitsPerAU = 50.0
	// MetresPerSceneUnit converts scene units to metres for the flux model.
	MetresPerSceneUnit = 2.98e9
)

// Temperature barriers in Kelvin.
const (
	// ColdBarrier is the temperature below which nothing grows.
	ColdBarrier = 193.15
	// TemperateBarrier separates cold from temperate regions.
	TemperateBarrier = 273.15
	// TropicalBarrier separates temperate from tropical regions.
	TropicalBarrier = 323.15
	// HotBarrier is the temperature above which nothing grows.
	HotBarrier = 353.15
	// VariationHalfRange is how far a region's temperature may stray from
	// the planetary temperature.
	VariationHalfRange = 25.0
)

// ErrInvalidOrbit is returned for non-positive distances.
var ErrInvalidOrbit = errors.New("orbital distance must be positive")

// Inputs are the parameters of the temperature model.
type Inputs struct {
	Albedo           float64 // fraction of incident light reflected, 0..1
	GreenhouseOffset float64 // Kelvin added on top of the blackbody estimate
	DistanceAU       float64 // orbital distance in astronomical units
	LuminosityFactor float64 // stellar luminosity relative to the Sun
}

// SceneDistance converts an orbital distance in AU to scene units.
func SceneDistance(au float64) float64 {
	return au * SceneUnitsPerAU
}

// EquilibriumTemperature returns the blackbody equilibrium temperature in
// Kelvin plus the greenhouse offset:
//
//	T = ((L·(1-a)) / (16·π·d²·σ))^¼ + g
func EquilibriumTemperature(in Inputs) (float64, error) {
	if in.DistanceAU <= 0 {
		return 0, fmt.Errorf("%w: got %v AU", ErrInvalidOrbit, in.DistanceAU)
	}

	d := SceneDistance(in.DistanceAU) * MetresPerSceneUnit
	l := SolarLuminosity * in.LuminosityFactor

	flux := (l * (1 - in.Albedo)) / (16 * math.Pi * d * d * StefanBoltzmann)
	return math.Pow(flux, 0.25) + in.GreenhouseOffset, nil
}

// Habitable reports whether a regional temperature can support flora.
func Habitable(t float64) bool {
	return t >= ColdBarrier && t <= HotBarrier
}

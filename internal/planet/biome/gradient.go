package biome

import (
	"errors"
	"fmt"
)

// Stop is one entry of a gradient table.
type Stop struct {
	Color       Color
	Temperature float64 // Kelvin
}

// GradientTable is an ordered list of stops with strictly increasing
// temperatures.
type GradientTable []Stop

// ErrInvalidTable is returned by Validate.
var ErrInvalidTable = errors.New("invalid gradient table")

// Validate checks that the table is non-empty and strictly increasing.
func (t GradientTable) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("%w: no stops", ErrInvalidTable)
	}
	for i := 1; i < len(t); i++ {
		if t[i].Temperature <= t[i-1].Temperature {
			return fmt.Errorf("%w: stop %d (%.2fK) does not exceed stop %d (%.2fK)",
				ErrInvalidTable, i, t[i].Temperature, i-1, t[i-1].Temperature)
		}
	}
	return nil
}

// PickColor evaluates the table at a temperature. Temperatures at or below
// the first stop return the first color exactly, temperatures above the last
// stop return the last color exactly, and anything in between is linearly
// interpolated between the bracketing stops. A temperature landing exactly on
// a stop returns that stop's color unblended. An empty table yields the zero
// Color.
func PickColor(table GradientTable, temperature float64) Color {
	if len(table) == 0 {
		return Color{}
	}

	idx := 0
	for idx < len(table) && temperature > table[idx].Temperature {
		idx++
	}

	switch {
	case idx == 0:
		return table[0].Color
	case idx >= len(table):
		return table[len(table)-1].Color
	}

	if temperature == table[idx].Temperature {
		return table[idx].Color
	}

	lower, upper := table[idx-1], table[idx]
	alpha := 1 - (upper.Temperature-temperature)/(upper.Temperature-lower.Temperature)
	return lower.Color.Lerp(upper.Color, float32(alpha))
}

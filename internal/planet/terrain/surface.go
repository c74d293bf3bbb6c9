// Package terrain displaces the unit geosphere into planetary terrain and
// flattens it into per-triangle buffers ready for coloring and chunking.
package terrain

import (
	"github.com/Faultbox/planetgen/internal/planet/noise"
	"github.com/Faultbox/planetgen/pkg/math"
)

// Surface is the analytic height function of a planet. The mesh synthesizer
// and the placement sampler share it, so both agree on where land is.
type Surface struct {
	Field          noise.Field
	NoiseFrequency float32
	HeightScale    float32
	Radius         float32
	OceanHeight    float32
}

// RawHeight returns the unclamped noise sample at a unit-sphere point.
func (s Surface) RawHeight(p math.Vec3) float32 {
	return s.Field.Sample(p, s.NoiseFrequency)
}

// Height returns the terrain height at a unit-sphere point. Samples below
// the ocean height are raised to it, flattening the seabed.
func (s Surface) Height(p math.Vec3) float32 {
	return max(s.RawHeight(p), s.OceanHeight)
}

// Displace moves a unit-sphere point radially according to height h and
// scales it to the planet radius.
func (s Surface) Displace(p math.Vec3, h float32) math.Vec3 {
	return p.Add(p.Scale((h - 0.5) * s.HeightScale)).Scale(s.Radius)
}

// SeabedRadius is the distance from the planet center of any vertex whose
// height was clamped to the ocean height. No vertex lies below it.
func (s Surface) SeabedRadius() float32 {
	return s.Radius * (1 + (s.OceanHeight-0.5)*s.HeightScale)
}

package planet

import (
	"time"

	"github.com/google/uuid"

	"github.com/Faultbox/planetgen/internal/planet/biome"
	"github.com/Faultbox/planetgen/internal/planet/chunk"
	"github.com/Faultbox/planetgen/internal/planet/flora"
	"github.com/Faultbox/planetgen/internal/planet/orbit"
	"github.com/Faultbox/planetgen/internal/planet/terrain"
	"github.com/Faultbox/planetgen/pkg/math"
)

// coreScale relates the core sphere radius to the planet radius.
const coreScale = 0.5

// Planet is a fully generated planet. It is immutable once returned.
type Planet struct {
	ID          uuid.UUID
	Descriptor  Descriptor
	Temperature float64 // Kelvin
	BandColors  map[biome.Band]biome.Color
	Chunks      []chunk.Chunk
	Placements  []flora.Placement
	Core        Core
	Orbit       *orbit.Orbit
	Stats       Stats

	// Surface is the analytic height function the mesh was built from.
	Surface terrain.Surface
}

// Core is an inner sphere drawn under the terrain shell.
type Core struct {
	Center math.Vec3
	Radius float32
}

// Stats summarises one generation run.
type Stats struct {
	Triangles       int            `json:"triangles"`
	Vertices        int            `json:"vertices"`
	Chunks          int            `json:"chunks"`
	Bands           map[string]int `json:"bands"`
	Placements      map[string]int `json:"placements"`
	BarrenSlots     int            `json:"barren_slots"`
	DegenerateSlots int            `json:"degenerate_slots"`
	Duration        time.Duration  `json:"duration"`
}

// Thresholds returns the band thresholds used to color the planet.
func (p *Planet) Thresholds() biome.Thresholds {
	return biome.DefaultThresholds(p.Descriptor.OceanHeight)
}

// PlacementCount returns the total number of placed objects.
func (s Stats) PlacementCount() int {
	n := 0
	for _, c := range s.Placements {
		n += c
	}
	return n
}

package server

import (
	"github.com/google/uuid"

	"github.com/Faultbox/planetgen/internal/planet"
	"github.com/Faultbox/planetgen/internal/planet/biome"
	"github.com/Faultbox/planetgen/internal/planet/chunk"
	"github.com/Faultbox/planetgen/internal/planet/flora"
)

// Message types sent on the stream.
const (
	msgPlanet     = "planet"
	msgChunk      = "chunk"
	msgPlacements = "placements"
	msgDone       = "done"
	msgError      = "error"
)

// PlanetSummary describes a generated planet without its mesh.
type PlanetSummary struct {
	Type        string                `json:"type,omitempty"`
	ID          uuid.UUID             `json:"id"`
	Descriptor  planet.Descriptor     `json:"descriptor"`
	Temperature float64               `json:"temperature"`
	BandColors  map[string][4]float32 `json:"band_colors"`
	CoreRadius  float32               `json:"core_radius"`
	OrbitPeriod float32               `json:"orbit_period"`
	Position    [3]float32            `json:"position"`
	Chunks      int                   `json:"chunks"`
	Stats       planet.Stats          `json:"stats"`
}

// Summarize describes p without its mesh.
func Summarize(p *planet.Planet) PlanetSummary {
	s := PlanetSummary{
		ID:          p.ID,
		Descriptor:  p.Descriptor,
		Temperature: p.Temperature,
		BandColors:  make(map[string][4]float32, len(p.BandColors)),
		CoreRadius:  p.Core.Radius,
		OrbitPeriod: p.Orbit.Period,
		Position:    p.Orbit.Position().Array(),
		Chunks:      len(p.Chunks),
		Stats:       p.Stats,
	}
	for _, b := range biome.Bands {
		s.BandColors[b.String()] = p.BandColors[b].Array()
	}
	return s
}

// ChunkMessage carries one mesh chunk as flat arrays.
type ChunkMessage struct {
	Type      string    `json:"type"`
	Index     int       `json:"index"`
	Positions []float32 `json:"positions"` // xyz per vertex
	Normals   []float32 `json:"normals"`   // xyz per vertex
	Colors    []float32 `json:"colors"`    // rgba per vertex
	Indices   []uint32  `json:"indices"`
}

func chunkMessage(i int, c *chunk.Chunk) ChunkMessage {
	m := ChunkMessage{
		Type:      msgChunk,
		Index:     i,
		Positions: make([]float32, 0, 3*len(c.Positions)),
		Normals:   make([]float32, 0, 3*len(c.Normals)),
		Colors:    make([]float32, 0, 4*len(c.Colors)),
		Indices:   c.Indices,
	}
	for _, p := range c.Positions {
		m.Positions = append(m.Positions, p.X, p.Y, p.Z)
	}
	for _, n := range c.Normals {
		m.Normals = append(m.Normals, n.X, n.Y, n.Z)
	}
	for _, col := range c.Colors {
		m.Colors = append(m.Colors, col.R, col.G, col.B, col.A)
	}
	return m
}

// PlacementJSON is one flora placement.
type PlacementJSON struct {
	ID       uuid.UUID  `json:"id"`
	Tag      string     `json:"tag"`
	Position [3]float32 `json:"position"`
	Rotation [4]float32 `json:"rotation"` // x, y, z, w
}

func placementsJSON(ps []flora.Placement) []PlacementJSON {
	out := make([]PlacementJSON, len(ps))
	for i, p := range ps {
		out[i] = PlacementJSON{
			ID:       p.ID,
			Tag:      p.Tag,
			Position: p.Position.Array(),
			Rotation: [4]float32{p.Rotation.X, p.Rotation.Y, p.Rotation.Z, p.Rotation.W},
		}
	}
	return out
}

// PlacementsMessage carries every placement of a planet.
type PlacementsMessage struct {
	Type       string          `json:"type"`
	Placements []PlacementJSON `json:"placements"`
}

// StatusMessage ends a stream or reports an error.
type StatusMessage struct {
	Type  string `json:"type"`
	Error string `json:"error,omitempty"`
}

// SystemSummary lists the planets of a system.
type SystemSummary struct {
	Seed    int64           `json:"seed"`
	Planets []PlanetSummary `json:"planets"`
}

package scene

import (
	"github.com/Faultbox/planetgen/internal/planet/biome"
	"github.com/Faultbox/planetgen/internal/planet/chunk"
	"github.com/Faultbox/planetgen/internal/planet/flora"
	"github.com/Faultbox/planetgen/internal/planet/geosphere"
	"github.com/Faultbox/planetgen/pkg/math"
)

// Vertex is the interleaved layout of lit geometry: position at location 0,
// normal at 1, color at 2.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	Color    [4]float32
}

// MarkerVertex is one flora marker point: position at location 0, color
// at 1.
type MarkerVertex struct {
	Position [3]float32
	Color    [4]float32
}

// markerLift raises markers off the ground, in multiples of object scale.
const markerLift = 2.5

// CategoryColors tint flora markers by climate class.
var CategoryColors = [...][4]float32{
	flora.Winter:    {0.92, 0.95, 1, 1},
	flora.Temperate: {0.13, 0.55, 0.18, 1},
	flora.Tropical:  {0.65, 0.85, 0.1, 1},
}

// ChunkVertices interleaves one chunk for upload.
func ChunkVertices(c chunk.Chunk) []Vertex {
	out := make([]Vertex, len(c.Positions))
	for i := range out {
		out[i] = Vertex{
			Position: c.Positions[i].Array(),
			Normal:   c.Normals[i].Array(),
			Color:    c.Colors[i].Array(),
		}
	}
	return out
}

// SphereVertices returns an indexed sphere of the given radius in one
// flat color. Normals point outward.
func SphereVertices(depth int, radius float32, color biome.Color) ([]Vertex, []uint32, error) {
	mesh, err := geosphere.Build(depth)
	if err != nil {
		return nil, nil, err
	}
	verts := make([]Vertex, len(mesh.Vertices))
	for i, v := range mesh.Vertices {
		n := v.Normalize()
		verts[i] = Vertex{
			Position: n.Scale(radius).Array(),
			Normal:   n.Array(),
			Color:    color.Array(),
		}
	}
	indices := make([]uint32, 0, len(mesh.Triangles)*3)
	for _, tri := range mesh.Triangles {
		indices = append(indices, tri[0], tri[1], tri[2])
	}
	return verts, indices, nil
}

// MarkerVertices places one marker per placement, lifted along the local
// up axis so it clears the terrain.
func MarkerVertices(placements []flora.Placement, objectScale float32) []MarkerVertex {
	out := make([]MarkerVertex, len(placements))
	for i, p := range placements {
		up := p.Rotation.Rotate(math.Vec3{Y: 1})
		out[i] = MarkerVertex{
			Position: p.Position.Add(up.Scale(objectScale * markerLift)).Array(),
			Color:    CategoryColors[p.Category],
		}
	}
	return out
}

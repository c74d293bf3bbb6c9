package terrain

import "github.com/Faultbox/planetgen/pkg/math"

// Mesh holds flattened, unshared per-triangle buffers. Triangle t owns
// entries 3t, 3t+1 and 3t+2 of Positions, Normals and Heights, and entry t of
// MaxHeights.
type Mesh struct {
	Positions  []math.Vec3
	Normals    []math.Vec3
	Heights    []float32 // clamped height sample per vertex
	MaxHeights []float32 // tallest corner per triangle, used for biome bands
	Bounds     Bounds
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.MaxHeights)
}

// VertexCount returns the number of flattened vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// Bounds holds the axis-aligned bounding box of the terrain.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

func emptyBounds() Bounds {
	return Bounds{
		Min: [3]float32{1e10, 1e10, 1e10},
		Max: [3]float32{-1e10, -1e10, -1e10},
	}
}

func updateBounds(b *Bounds, p math.Vec3) {
	for i, c := range p.Array() {
		if c < b.Min[i] {
			b.Min[i] = c
		}
		if c > b.Max[i] {
			b.Max[i] = c
		}
	}
}

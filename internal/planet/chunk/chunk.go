// Package chunk splits flat triangle buffers into drawable units that never
// exceed a fixed vertex count.
package chunk

import (
	"errors"
	"fmt"

	"github.com/Faultbox/planetgen/internal/planet/biome"
	"github.com/Faultbox/planetgen/pkg/math"
)

// DefaultMaxVertices is the per-chunk vertex cap used when none is given.
// It is divisible by 3 so no triangle straddles two chunks.
const DefaultMaxVertices = 49152

// ErrInvalidInput is returned when the buffers cannot be chunked.
var ErrInvalidInput = errors.New("invalid chunk input")

// Chunk is a bounded drawable unit. Indices are local to the chunk.
type Chunk struct {
	Positions []math.Vec3
	Normals   []math.Vec3
	Colors    []biome.Color
	Indices   []uint32
}

// VertexCount returns the number of vertices in the chunk.
func (c *Chunk) VertexCount() int {
	return len(c.Positions)
}

// TriangleCount returns the number of triangles in the chunk.
func (c *Chunk) TriangleCount() int {
	return len(c.Indices) / 3
}

// Count returns how many chunks Split produces for a vertex total.
func Count(vertices, maxVertices int) int {
	if vertices <= 0 || maxVertices <= 0 {
		return 0
	}
	return (vertices + maxVertices - 1) / maxVertices
}

// Split cuts the flattened buffers into ceil(len(positions)/maxVertices)
// chunks. Vertex i of the input lands in chunk i/maxVertices, so each chunk
// holds a contiguous slice. Indices of chunk k > 0 are remapped with
// index % (maxVertices*k), which for the contiguous layout equals
// index - maxVertices*k.
//
// The returned chunks share no memory with the inputs.
func Split(positions, normals []math.Vec3, colors []biome.Color, indices []uint32, maxVertices int) ([]Chunk, error) {
	if maxVertices <= 0 || maxVertices%3 != 0 {
		return nil, fmt.Errorf("%w: max vertices %d must be a positive multiple of 3", ErrInvalidInput, maxVertices)
	}
	n := len(positions)
	if len(normals) != n || len(colors) != n {
		return nil, fmt.Errorf("%w: buffer lengths differ (positions %d, normals %d, colors %d)",
			ErrInvalidInput, n, len(normals), len(colors))
	}
	if len(indices) != n {
		return nil, fmt.Errorf("%w: expected %d indices for a flat triangle list, got %d", ErrInvalidInput, n, len(indices))
	}
	if n%3 != 0 {
		return nil, fmt.Errorf("%w: vertex count %d is not a multiple of 3", ErrInvalidInput, n)
	}

	num := Count(n, maxVertices)
	chunks := make([]Chunk, num)
	for k := 0; k < num; k++ {
		lo := k * maxVertices
		hi := lo + maxVertices
		if hi > n {
			hi = n
		}

		c := Chunk{
			Positions: append([]math.Vec3(nil), positions[lo:hi]...),
			Normals:   append([]math.Vec3(nil), normals[lo:hi]...),
			Colors:    append([]biome.Color(nil), colors[lo:hi]...),
			Indices:   make([]uint32, hi-lo),
		}
		for i, idx := range indices[lo:hi] {
			c.Indices[i] = remap(idx, maxVertices, k)
		}
		chunks[k] = c
	}
	return chunks, nil
}

// FlatIndices returns the identity index list 0..n-1 for a triangle soup.
func FlatIndices(n int) []uint32 {
	idx := make([]uint32, n)
	for i := range idx {
		idx[i] = uint32(i)
	}
	return idx
}

func remap(index uint32, maxVertices, ordinal int) uint32 {
	if ordinal == 0 {
		return index
	}
	return index % uint32(maxVertices*ordinal)
}

// Package geosphere builds a near-uniform triangulated unit sphere by
// recursively subdividing a regular tetrahedron.
//
// Edge midpoints are appended once per split triangle and never shared with
// the neighbouring triangle, so the vertex buffer holds duplicates along
// every interior edge. Downstream stages flatten the mesh per triangle and
// depend on this vertex ordering; an edge-midpoint cache would roughly halve
// the vertex count but would also change the ordering.
package geosphere

import (
	"errors"
	"fmt"
	gomath "math"

	"github.com/Faultbox/planetgen/pkg/math"
)

// ErrConfiguration reports invalid geometry parameters.
var ErrConfiguration = errors.New("invalid planet configuration")

// MaxDepth is the deepest subdivision Build accepts. Depth 11 already
// produces 16.7 million triangles.
const MaxDepth = 11

// Triangle holds three indices into a vertex buffer, wound counter-clockwise
// when seen from outside the sphere.
type Triangle [3]uint32

// Mesh is the output of Build.
type Mesh struct {
	Vertices  []math.Vec3
	Triangles []Triangle
}

// seedTriangles are the four faces of the base tetrahedron.
var seedTriangles = [4]Triangle{
	{0, 1, 2},
	{0, 2, 3},
	{0, 3, 1},
	{1, 3, 2},
}

// Tetrahedron returns the four vertices of the regular tetrahedron inscribed
// in the unit sphere with one vertex on +Z.
func Tetrahedron() [4]math.Vec3 {
	rootTwo := float32(gomath.Sqrt(2))
	rootSixOverThree := float32(gomath.Sqrt(6) / 3)
	oneThird := float32(1.0 / 3.0)

	return [4]math.Vec3{
		{X: 0, Y: 0, Z: 1},
		{X: 0, Y: 2 * rootTwo / 3, Z: -oneThird},
		{X: -rootSixOverThree, Y: -rootTwo / 3, Z: -oneThird},
		{X: rootSixOverThree, Y: -rootTwo / 3, Z: -oneThird},
	}
}

// TriangleCount returns the number of triangles Build emits for depth.
func TriangleCount(depth int) int {
	return 4 << (2 * depth)
}

// VertexCount returns the number of vertices Build emits for depth: the four
// seed vertices plus three new midpoints for every triangle split on every
// level.
func VertexCount(depth int) int {
	n := 4
	splits := 4
	for range depth {
		n += 3 * splits
		splits *= 4
	}
	return n
}

// Build subdivides the base tetrahedron depth times. Negative depths and
// depths above MaxDepth are rejected with ErrConfiguration before any
// allocation happens.
func Build(depth int) (*Mesh, error) {
	if depth < 0 {
		return nil, fmt.Errorf("%w: subdivision depth %d is negative", ErrConfiguration, depth)
	}
	if depth > MaxDepth {
		return nil, fmt.Errorf("%w: subdivision depth %d exceeds %d", ErrConfiguration, depth, MaxDepth)
	}

	b := &builder{
		vertices:  make([]math.Vec3, 0, VertexCount(depth)),
		triangles: make([]Triangle, 0, TriangleCount(depth)),
	}
	base := Tetrahedron()
	b.vertices = append(b.vertices, base[:]...)

	for _, tri := range seedTriangles {
		b.subdivide(tri, depth)
	}

	return &Mesh{
		Vertices:  b.vertices,
		Triangles: b.triangles,
	}, nil
}

type builder struct {
	vertices  []math.Vec3
	triangles []Triangle
}

func (b *builder) subdivide(tri Triangle, level int) {
	if level == 0 {
		b.triangles = append(b.triangles, tri)
		return
	}

	v0, v1, v2 := b.vertices[tri[0]], b.vertices[tri[1]], b.vertices[tri[2]]
	b.vertices = append(b.vertices,
		v0.Midpoint(v1).Normalize(),
		v1.Midpoint(v2).Normalize(),
		v2.Midpoint(v0).Normalize(),
	)

	n := uint32(len(b.vertices))
	m01, m12, m20 := n-3, n-2, n-1

	level--
	b.subdivide(Triangle{tri[0], m01, m20}, level)
	b.subdivide(Triangle{m01, tri[1], m12}, level)
	b.subdivide(Triangle{m01, m12, m20}, level)
	b.subdivide(Triangle{m20, m12, tri[2]}, level)
}

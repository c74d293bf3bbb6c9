package geosphere

import (
	"errors"
	"testing"
)

func TestBuildTriangleCount(t *testing.T) {
	for depth := 0; depth <= 5; depth++ {
		mesh, err := Build(depth)
		if err != nil {
			t.Fatalf("depth %d: unexpected error: %v", depth, err)
		}

		want := 4
		for i := 0; i < depth; i++ {
			want *= 4
		}
		if len(mesh.Triangles) != want {
			t.Errorf("depth %d: expected %d triangles, got %d", depth, want, len(mesh.Triangles))
		}
		if TriangleCount(depth) != want {
			t.Errorf("depth %d: TriangleCount expected %d, got %d", depth, want, TriangleCount(depth))
		}
		if len(mesh.Vertices) != VertexCount(depth) {
			t.Errorf("depth %d: expected %d vertices, got %d", depth, VertexCount(depth), len(mesh.Vertices))
		}
	}
}

func TestBuildVerticesOnUnitSphere(t *testing.T) {
	mesh, err := Build(4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, v := range mesh.Vertices {
		l := v.Length()
		if l < 0.9999 || l > 1.0001 {
			t.Fatalf("vertex %d: expected unit length, got %v", i, l)
		}
	}
}

func TestBuildIndicesInRange(t *testing.T) {
	mesh, err := Build(3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n := uint32(len(mesh.Vertices))
	for i, tri := range mesh.Triangles {
		for _, idx := range tri {
			if idx >= n {
				t.Fatalf("triangle %d: index %d out of range %d", i, idx, n)
			}
		}
	}
}

func TestBuildOutwardWinding(t *testing.T) {
	mesh, err := Build(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, tri := range mesh.Triangles {
		a, b, c := mesh.Vertices[tri[0]], mesh.Vertices[tri[1]], mesh.Vertices[tri[2]]
		normal := b.Sub(a).Cross(c.Sub(a))
		center := a.Add(b).Add(c)
		if normal.Dot(center) <= 0 {
			t.Fatalf("triangle %d: expected outward-facing winding", i)
		}
	}
}

func TestBuildDuplicatesMidpoints(t *testing.T) {
	// Depth 1 splits four triangles, each adding its own three midpoints.
	mesh, err := Build(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mesh.Vertices) != 4+12 {
		t.Errorf("expected 16 vertices, got %d", len(mesh.Vertices))
	}
}

func TestBuildRejectsBadDepth(t *testing.T) {
	for _, depth := range []int{-1, -10, MaxDepth + 1} {
		mesh, err := Build(depth)
		if !errors.Is(err, ErrConfiguration) {
			t.Errorf("depth %d: expected ErrConfiguration, got %v", depth, err)
		}
		if mesh != nil {
			t.Errorf("depth %d: expected no mesh", depth)
		}
	}
}

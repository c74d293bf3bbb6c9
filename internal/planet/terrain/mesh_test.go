package terrain

import (
	"context"
	"errors"
	"testing"

	"github.com/Faultbox/planetgen/internal/planet/geosphere"
	"github.com/Faultbox/planetgen/internal/planet/noise"
	"github.com/Faultbox/planetgen/pkg/math"
)

func testSurface() Surface {
	return Surface{
		Field:          noise.Classic{Seed: 32768},
		NoiseFrequency: 4,
		HeightScale:    0.05,
		Radius:         2,
		OceanHeight:    0.05,
	}
}

func buildGeo(t *testing.T, depth int) *geosphere.Mesh {
	t.Helper()
	geo, err := geosphere.Build(depth)
	if err != nil {
		t.Fatalf("geosphere.Build(%d): %v", depth, err)
	}
	return geo
}

func TestSynthesizeBufferSizes(t *testing.T) {
	geo := buildGeo(t, 3)
	mesh, err := Synthesize(context.Background(), geo, testSurface())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tris := len(geo.Triangles)
	if mesh.TriangleCount() != tris {
		t.Errorf("expected %d triangles, got %d", tris, mesh.TriangleCount())
	}
	if mesh.VertexCount() != 3*tris || len(mesh.Normals) != 3*tris || len(mesh.Heights) != 3*tris {
		t.Errorf("expected %d flattened vertices, got positions=%d normals=%d heights=%d",
			3*tris, len(mesh.Positions), len(mesh.Normals), len(mesh.Heights))
	}
}

func TestSynthesizeHeightsNeverBelowOcean(t *testing.T) {
	s := testSurface()
	s.OceanHeight = 0.3
	mesh, err := Synthesize(context.Background(), buildGeo(t, 4), s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, h := range mesh.Heights {
		if h < s.OceanHeight {
			t.Fatalf("vertex %d: height %v below ocean height %v", i, h, s.OceanHeight)
		}
	}
	for i, h := range mesh.MaxHeights {
		corners := mesh.Heights[3*i : 3*i+3]
		want := max(corners[0], corners[1], corners[2])
		if h != want {
			t.Fatalf("triangle %d: expected max height %v, got %v", i, want, h)
		}
	}
}

func TestSynthesizeDepthZeroScenario(t *testing.T) {
	s := testSurface()
	mesh, err := Synthesize(context.Background(), buildGeo(t, 0), s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mesh.TriangleCount() != 4 {
		t.Fatalf("expected 4 triangles, got %d", mesh.TriangleCount())
	}

	floor := s.SeabedRadius()
	for i, p := range mesh.Positions {
		d := p.Length()
		if d < floor-1e-4 {
			t.Errorf("vertex %d: distance %v below seabed radius %v", i, d, floor)
		}
		// Raw noise stays well inside [-1.5, 1.5], so the offset is small.
		if d < s.Radius*0.9 || d > s.Radius*1.1 {
			t.Errorf("vertex %d: distance %v too far from radius %v", i, d, s.Radius)
		}
	}
}

func TestSynthesizeFaceNormals(t *testing.T) {
	mesh, err := Synthesize(context.Background(), buildGeo(t, 2), testSurface())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < mesh.TriangleCount(); i++ {
		n := mesh.Normals[3*i]
		if mesh.Normals[3*i+1] != n || mesh.Normals[3*i+2] != n {
			t.Fatalf("triangle %d: expected one shared face normal", i)
		}
		center := mesh.Positions[3*i].Add(mesh.Positions[3*i+1]).Add(mesh.Positions[3*i+2])
		if n.Dot(center) <= 0 {
			t.Fatalf("triangle %d: expected outward normal", i)
		}
		if l := n.Length(); l < 0.999 || l > 1.001 {
			t.Fatalf("triangle %d: expected unit normal, got length %v", i, l)
		}
	}
}

func TestSynthesizeDeterministic(t *testing.T) {
	geo := buildGeo(t, 3)
	a, err := Synthesize(context.Background(), geo, testSurface())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Synthesize(context.Background(), geo, testSurface())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range a.Positions {
		if a.Positions[i] != b.Positions[i] || a.Normals[i] != b.Normals[i] {
			t.Fatalf("vertex %d differs between runs", i)
		}
	}
}

func TestSynthesizeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mesh, err := Synthesize(ctx, buildGeo(t, 1), testSurface())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if mesh != nil {
		t.Error("expected no mesh from a cancelled run")
	}
}

func TestSurfaceDisplace(t *testing.T) {
	s := Surface{HeightScale: 0.1, Radius: 3}
	p := math.Vec3{X: 0, Y: 1, Z: 0}

	got := s.Displace(p, 0.5)
	if got.Distance(math.Vec3{Y: 3}) > 1e-6 {
		t.Errorf("height 0.5 should leave the radius unchanged, got %v", got)
	}
	got = s.Displace(p, 1.5)
	if got.Distance(math.Vec3{Y: 3.3}) > 1e-5 {
		t.Errorf("expected (0, 3.3, 0), got %v", got)
	}
}

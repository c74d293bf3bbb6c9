package scene

import (
	gomath "math"
	"testing"
	"unsafe"

	"github.com/Faultbox/planetgen/internal/planet/biome"
	"github.com/Faultbox/planetgen/internal/planet/chunk"
	"github.com/Faultbox/planetgen/internal/planet/flora"
	"github.com/Faultbox/planetgen/pkg/math"
)

func TestVertexLayout(t *testing.T) {
	if s := unsafe.Sizeof(Vertex{}); s != 40 {
		t.Errorf("expected 40 byte vertex, got %d", s)
	}
	if o := unsafe.Offsetof(Vertex{}.Color); o != 24 {
		t.Errorf("expected color at offset 24, got %d", o)
	}
	if s := unsafe.Sizeof(MarkerVertex{}); s != 28 {
		t.Errorf("expected 28 byte marker vertex, got %d", s)
	}
}

func TestChunkVertices(t *testing.T) {
	c := chunk.Chunk{
		Positions: []math.Vec3{{X: 1}, {Y: 2}, {Z: 3}},
		Normals:   []math.Vec3{{X: 1}, {Y: 1}, {Z: 1}},
		Colors:    []biome.Color{{R: 1, A: 1}, {G: 1, A: 1}, {B: 1, A: 1}},
		Indices:   []uint32{0, 1, 2},
	}

	verts := ChunkVertices(c)
	if len(verts) != 3 {
		t.Fatalf("expected 3 vertices, got %d", len(verts))
	}
	if verts[1].Position != [3]float32{0, 2, 0} {
		t.Errorf("unexpected position %v", verts[1].Position)
	}
	if verts[2].Normal != [3]float32{0, 0, 1} {
		t.Errorf("unexpected normal %v", verts[2].Normal)
	}
	if verts[0].Color != [4]float32{1, 0, 0, 1} {
		t.Errorf("unexpected color %v", verts[0].Color)
	}
}

func TestSphereVertices(t *testing.T) {
	color := biome.Color{R: 0.1, G: 0.2, B: 0.7, A: 1}
	verts, indices, err := SphereVertices(2, 3, color)
	if err != nil {
		t.Fatalf("SphereVertices: %v", err)
	}
	if len(indices) != 64*3 {
		t.Errorf("expected %d indices, got %d", 64*3, len(indices))
	}
	for i, v := range verts {
		p := math.Vec3{X: v.Position[0], Y: v.Position[1], Z: v.Position[2]}
		if gomath.Abs(float64(p.Length()-3)) > 1e-4 {
			t.Fatalf("vertex %d at radius %v, expected 3", i, p.Length())
		}
		if v.Color != color.Array() {
			t.Fatalf("vertex %d color %v, expected %v", i, v.Color, color.Array())
		}
	}
	for _, idx := range indices {
		if int(idx) >= len(verts) {
			t.Fatalf("index %d out of range %d", idx, len(verts))
		}
	}

	if _, _, err := SphereVertices(-1, 1, color); err == nil {
		t.Error("expected error for negative depth")
	}
}

func TestMarkerVerticesLifted(t *testing.T) {
	dir := math.Vec3{X: 1, Y: 1}.Normalize()
	p := flora.Placement{
		Category: flora.Tropical,
		Position: dir.Scale(2),
		Rotation: flora.Orientation(dir),
	}

	markers := MarkerVertices([]flora.Placement{p}, 0.04)
	if len(markers) != 1 {
		t.Fatalf("expected 1 marker, got %d", len(markers))
	}
	m := markers[0]
	got := math.Vec3{X: m.Position[0], Y: m.Position[1], Z: m.Position[2]}
	want := 2 + 0.04*markerLift
	if gomath.Abs(float64(got.Length())-want) > 1e-4 {
		t.Errorf("expected marker at radius %v, got %v", want, got.Length())
	}
	if m.Color != CategoryColors[flora.Tropical] {
		t.Errorf("expected tropical color, got %v", m.Color)
	}
}

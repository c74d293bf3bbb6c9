package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/planetgen/internal/engine/shader"
	"github.com/Faultbox/planetgen/internal/planet"
	"github.com/Faultbox/planetgen/internal/planet/biome"
	"github.com/Faultbox/planetgen/internal/planet/flora"
	"github.com/Faultbox/planetgen/pkg/math"
)

// coreDepth is the subdivision depth of the core sphere.
const coreDepth = 4

// gpuMesh is one uploaded draw call.
type gpuMesh struct {
	vao, vbo, ebo uint32
	count         int32
}

func (m *gpuMesh) delete() {
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	*m = gpuMesh{}
}

// PlanetRenderer owns the GPU resources of one generated planet.
type PlanetRenderer struct {
	planet *planet.Planet

	chunks  []gpuMesh
	core    gpuMesh
	markers gpuMesh

	ShowFlora bool
}

// NewPlanetRenderer uploads every chunk, the core sphere and the flora
// markers of p.
func NewPlanetRenderer(p *planet.Planet) (*PlanetRenderer, error) {
	pr := &PlanetRenderer{planet: p, ShowFlora: true}

	for _, c := range p.Chunks {
		if c.VertexCount() == 0 {
			continue
		}
		pr.chunks = append(pr.chunks, uploadLit(ChunkVertices(c), c.Indices))
	}

	verts, indices, err := SphereVertices(coreDepth, p.Core.Radius, p.BandColors[biome.Ocean])
	if err != nil {
		pr.Destroy()
		return nil, fmt.Errorf("core sphere: %w", err)
	}
	pr.core = uploadLit(verts, indices)

	if len(p.Placements) > 0 {
		pr.markers = uploadMarkers(MarkerVertices(p.Placements, flora.DefaultObjectScale))
	}

	return pr, nil
}

func uploadLit(vertices []Vertex, indices []uint32) gpuMesh {
	var m gpuMesh
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	vertexSize := int(unsafe.Sizeof(Vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*vertexSize, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	// Position (location 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(vertexSize), 0)
	gl.EnableVertexAttribArray(0)

	// Normal (location 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, int32(vertexSize), 3*4)
	gl.EnableVertexAttribArray(1)

	// Color (location 2)
	gl.VertexAttribPointerWithOffset(2, 4, gl.FLOAT, false, int32(vertexSize), 6*4)
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	m.count = int32(len(indices))
	return m
}

func uploadMarkers(vertices []MarkerVertex) gpuMesh {
	var m gpuMesh
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	vertexSize := int(unsafe.Sizeof(MarkerVertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*vertexSize, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(vertexSize), 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 4, gl.FLOAT, false, int32(vertexSize), 3*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	m.count = int32(len(vertices))
	return m
}

// Model returns the planet's current world transform.
func (pr *PlanetRenderer) Model() math.Mat4 {
	if pr.planet.Orbit == nil {
		return math.Identity()
	}
	return pr.planet.Orbit.Model()
}

// Planet returns the rendered planet.
func (pr *PlanetRenderer) Planet() *planet.Planet {
	return pr.planet
}

// renderSurface draws the core and the terrain chunks. The lit program
// must be bound.
func (pr *PlanetRenderer) renderSurface(prog *shader.Program) {
	prog.SetMat4("uModel", pr.Model())

	gl.BindVertexArray(pr.core.vao)
	gl.DrawElements(gl.TRIANGLES, pr.core.count, gl.UNSIGNED_INT, nil)

	for _, c := range pr.chunks {
		gl.BindVertexArray(c.vao)
		gl.DrawElements(gl.TRIANGLES, c.count, gl.UNSIGNED_INT, nil)
	}
	gl.BindVertexArray(0)
}

// renderMarkers draws flora markers. The marker program must be bound.
func (pr *PlanetRenderer) renderMarkers(prog *shader.Program) {
	if !pr.ShowFlora || pr.markers.count == 0 {
		return
	}
	prog.SetMat4("uModel", pr.Model())
	gl.BindVertexArray(pr.markers.vao)
	gl.DrawArrays(gl.POINTS, 0, pr.markers.count)
	gl.BindVertexArray(0)
}

// Destroy releases all GPU resources.
func (pr *PlanetRenderer) Destroy() {
	for i := range pr.chunks {
		pr.chunks[i].delete()
	}
	pr.chunks = nil
	pr.core.delete()
	pr.markers.delete()
}

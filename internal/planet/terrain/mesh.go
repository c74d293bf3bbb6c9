package terrain

import (
	"context"
	"fmt"

	"github.com/Faultbox/planetgen/internal/planet/geosphere"
	"github.com/Faultbox/planetgen/pkg/math"
)

// cancelCheckInterval is how many triangles are synthesized between
// context checks.
const cancelCheckInterval = 4096

// Synthesize displaces every triangle of geo by the surface height function.
// Each triangle gets its own three positions and normals so it can be colored
// independently. The face normal comes from the undisplaced unit-sphere
// corners.
func Synthesize(ctx context.Context, geo *geosphere.Mesh, s Surface) (*Mesh, error) {
	if s.Field == nil {
		return nil, fmt.Errorf("terrain: surface has no noise field")
	}

	n := len(geo.Triangles)
	mesh := &Mesh{
		Positions:  make([]math.Vec3, 0, 3*n),
		Normals:    make([]math.Vec3, 0, 3*n),
		Heights:    make([]float32, 0, 3*n),
		MaxHeights: make([]float32, 0, n),
		Bounds:     emptyBounds(),
	}

	for i, tri := range geo.Triangles {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("terrain: synthesis interrupted at triangle %d: %w", i, err)
			}
		}

		corners := [3]math.Vec3{
			geo.Vertices[tri[0]],
			geo.Vertices[tri[1]],
			geo.Vertices[tri[2]],
		}

		normal := corners[1].Sub(corners[0]).Cross(corners[2].Sub(corners[0])).Normalize()

		var tallest float32
		for c, p := range corners {
			h := s.Height(p)
			if c == 0 || h > tallest {
				tallest = h
			}
			pos := s.Displace(p, h)
			updateBounds(&mesh.Bounds, pos)

			mesh.Positions = append(mesh.Positions, pos)
			mesh.Normals = append(mesh.Normals, normal)
			mesh.Heights = append(mesh.Heights, h)
		}
		mesh.MaxHeights = append(mesh.MaxHeights, tallest)
	}

	return mesh, nil
}

package noise

import (
	"fmt"

	"github.com/ojrac/opensimplex-go"

	"github.com/Faultbox/planetgen/pkg/math"
)

// Backend names accepted by New.
const (
	BackendClassic     = "classic"
	BackendOpenSimplex = "opensimplex"
)

// Field is a scalar noise field over 3D space. Implementations must be pure
// functions of their inputs and safe for concurrent use.
type Field interface {
	Sample(p math.Vec3, frequency float32) float32
}

// Classic is the simplex field seeded by offsetting the input coordinates:
// Sample evaluates Simplex3((p + seed*(1,1,1)) * frequency). The
// permutation table is shared and fixed.
type Classic struct {
	Seed int
}

// Sample implements Field.
func (c Classic) Sample(p math.Vec3, frequency float32) float32 {
	return Simplex3(p.Add(math.Splat(float32(c.Seed))).Scale(frequency))
}

// OpenSimplex is an alternative field backed by a genuinely reseeded
// OpenSimplex generator. Its output differs from Classic for the same seed.
type OpenSimplex struct {
	seed int64
	os   opensimplex.Noise
}

// NewOpenSimplex returns an OpenSimplex field for the given seed.
func NewOpenSimplex(seed int64) *OpenSimplex {
	return &OpenSimplex{
		seed: seed,
		os:   opensimplex.New(seed),
	}
}

// Sample implements Field.
func (o *OpenSimplex) Sample(p math.Vec3, frequency float32) float32 {
	q := p.Scale(frequency)
	return float32(o.os.Eval3(float64(q.X), float64(q.Y), float64(q.Z)))
}

// Seed returns the generator seed.
func (o *OpenSimplex) Seed() int64 {
	return o.seed
}

// New returns the field for the named backend. An empty name selects the
// classic backend.
func New(backend string, seed int) (Field, error) {
	switch backend {
	case "", BackendClassic:
		return Classic{Seed: seed}, nil
	case BackendOpenSimplex:
		return NewOpenSimplex(int64(seed)), nil
	default:
		return nil, fmt.Errorf("unknown noise backend %q", backend)
	}
}

// Package orbit moves a planet along a circular orbit around its star and
// spins it about a tilted axis.
package orbit

import (
	"errors"
	"fmt"
	gomath "math"
	"math/rand"

	"github.com/Faultbox/planetgen/pkg/math"
)

// ErrInvalidParams is returned by New for a non-positive distance or Kepler
// ratio.
var ErrInvalidParams = errors.New("invalid orbit parameters")

var worldUp = math.Vec3{Y: 1}

const degToRad = gomath.Pi / 180

// Params describe an orbit.
type Params struct {
	Distance      float32 // orbit radius in scene units
	KeplerRatio   float32 // scales the orbital period
	AxisTilt      float32 // degrees
	RotationSpeed float32 // spin in degrees per second, halved
}

// Orbit is the kinematic state of one planet.
type Orbit struct {
	Center    math.Vec3
	Period    float32 // seconds per revolution
	Perimeter float32
	// DegreesPerSecond is the angular speed about world up.
	DegreesPerSecond float32
	TiltAxis         math.Vec3
	SpinSpeed        float32

	offset   math.Vec3
	rotation math.Quat
}

// New places a planet at a random angle on its orbit around center.
func New(center math.Vec3, p Params, rng *rand.Rand) (*Orbit, error) {
	if p.Distance <= 0 || p.KeplerRatio <= 0 {
		return nil, fmt.Errorf("%w: distance %v, kepler ratio %v", ErrInvalidParams, p.Distance, p.KeplerRatio)
	}

	angle := rng.Float64() * 2 * gomath.Pi
	a := float64(p.Distance)
	period := gomath.Sqrt(a * a * a * float64(p.KeplerRatio))
	perimeter := 2 * gomath.Pi * a
	tilt := float64(p.AxisTilt) * degToRad

	return &Orbit{
		Center:           center,
		Period:           float32(period),
		Perimeter:        float32(perimeter),
		DegreesPerSecond: float32(perimeter / period),
		TiltAxis:         math.Vec3{X: float32(gomath.Sin(tilt)), Y: float32(gomath.Cos(tilt))},
		SpinSpeed:        p.RotationSpeed,
		offset: math.Vec3{
			X: float32(gomath.Cos(angle) * a),
			Z: float32(gomath.Sin(angle) * a),
		},
		rotation: math.QuatIdentity(),
	}, nil
}

// Position returns the planet center in world space.
func (o *Orbit) Position() math.Vec3 {
	return o.Center.Add(o.offset)
}

// Rotation returns the planet orientation.
func (o *Orbit) Rotation() math.Quat {
	return o.rotation
}

// Step advances the orbit by dt seconds: the planet spins about its tilt
// axis and revolves about the world up axis through the star.
func (o *Orbit) Step(dt float32) {
	spin := math.QuatFromAxisAngle(o.TiltAxis, o.SpinSpeed*dt*2*degToRad)
	revolve := math.QuatFromAxisAngle(worldUp, o.DegreesPerSecond*dt*degToRad)

	o.offset = revolve.Rotate(o.offset)
	o.rotation = revolve.Mul(o.rotation.Mul(spin)).Normalize()
}

// Model returns the world transform of the planet.
func (o *Orbit) Model() math.Mat4 {
	p := o.Position()
	return math.Translate(p.X, p.Y, p.Z).Mul(o.rotation.ToMat4())
}

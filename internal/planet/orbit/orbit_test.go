package orbit

import (
	"errors"
	gomath "math"
	"math/rand"
	"testing"

	"github.com/Faultbox/planetgen/pkg/math"
)

func near(a, b, eps float32) bool {
	return float32(gomath.Abs(float64(a-b))) <= eps
}

func TestNewKinematics(t *testing.T) {
	o, err := New(math.Vec3{}, Params{Distance: 4, KeplerRatio: 1}, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !near(o.Period, 8, 1e-5) {
		t.Errorf("expected period 8, got %v", o.Period)
	}
	if !near(o.Perimeter, 8*gomath.Pi, 1e-4) {
		t.Errorf("expected perimeter 8π, got %v", o.Perimeter)
	}
	if !near(o.DegreesPerSecond, gomath.Pi, 1e-4) {
		t.Errorf("expected π degrees per second, got %v", o.DegreesPerSecond)
	}
}

func TestNewStartsOnOrbit(t *testing.T) {
	center := math.Vec3{X: 10, Y: 2, Z: -3}
	for seed := int64(0); seed < 10; seed++ {
		o, err := New(center, Params{Distance: 50, KeplerRatio: 1}, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		p := o.Position()
		if !near(p.Distance(center), 50, 1e-3) {
			t.Errorf("seed %d: expected distance 50, got %v", seed, p.Distance(center))
		}
		if p.Y != center.Y {
			t.Errorf("seed %d: expected orbit in the star's plane, got y=%v", seed, p.Y)
		}
	}
}

func TestTiltAxis(t *testing.T) {
	o, err := New(math.Vec3{}, Params{Distance: 1, KeplerRatio: 1, AxisTilt: 90}, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !near(o.TiltAxis.X, 1, 1e-6) || !near(o.TiltAxis.Y, 0, 1e-6) {
		t.Errorf("expected tilt axis (1,0,0), got %+v", o.TiltAxis)
	}
}

func TestStepFullRevolution(t *testing.T) {
	o, err := New(math.Vec3{}, Params{Distance: 4, KeplerRatio: 1, RotationSpeed: 10}, rand.New(rand.NewSource(5)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	start := o.Position()

	// DegreesPerSecond is π, so 360/π seconds is one revolution.
	steps := 1000
	dt := float32(360/gomath.Pi) / float32(steps)
	for i := 0; i < steps; i++ {
		o.Step(dt)
		if !near(o.Position().Length(), 4, 1e-2) {
			t.Fatalf("step %d: left the orbit, radius %v", i, o.Position().Length())
		}
	}

	end := o.Position()
	if end.Distance(start) > 0.05 {
		t.Errorf("expected to return to %+v after a revolution, got %+v", start, end)
	}
}

func TestStepSpinsAboutTiltAxis(t *testing.T) {
	o, err := New(math.Vec3{}, Params{Distance: 1, KeplerRatio: 1, RotationSpeed: 45}, rand.New(rand.NewSource(2)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Freeze revolution to isolate spin.
	o.DegreesPerSecond = 0
	o.Step(1)

	// 45 deg/s doubled is a quarter turn about +Y.
	got := o.Rotation().Rotate(math.Vec3{X: 1})
	if !near(got.X, 0, 1e-4) || !near(got.Z, -1, 1e-4) {
		t.Errorf("expected +X to rotate to -Z, got %+v", got)
	}
}

func TestNewInvalid(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, p := range []Params{
		{Distance: 0, KeplerRatio: 1},
		{Distance: 1, KeplerRatio: 0},
		{Distance: -2, KeplerRatio: 1},
	} {
		if _, err := New(math.Vec3{}, p, rng); !errors.Is(err, ErrInvalidParams) {
			t.Errorf("%+v: expected ErrInvalidParams, got %v", p, err)
		}
	}
}

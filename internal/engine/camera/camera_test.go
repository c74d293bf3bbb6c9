package camera

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/planetgen/pkg/math"
)

func approx(a, b float32) bool {
	return gomath.Abs(float64(a-b)) < 1e-4
}

func TestPositionOnSphere(t *testing.T) {
	c := NewOrbitCamera()
	c.Target = math.Vec3{X: 10, Y: -2, Z: 3}
	c.RotationX = 0.7
	c.RotationY = 1.9

	if d := c.Position().Distance(c.Target); !approx(d, c.Distance) {
		t.Errorf("expected distance %v from target, got %v", c.Distance, d)
	}
}

func TestPositionAxes(t *testing.T) {
	c := NewOrbitCamera()
	c.Distance = 5
	c.RotationX = 0
	c.RotationY = 0

	p := c.Position()
	if !approx(p.X, 0) || !approx(p.Y, 0) || !approx(p.Z, 5) {
		t.Errorf("expected (0,0,5), got %+v", p)
	}
}

func TestViewMatrixMapsTargetAhead(t *testing.T) {
	c := NewOrbitCamera()
	c.Target = math.Vec3{X: 1, Y: 2, Z: 3}
	c.RotationX = 0.4
	c.RotationY = -0.8

	v := c.ViewMatrix().TransformVec3(c.Target)
	if !approx(v.X, 0) || !approx(v.Y, 0) {
		t.Errorf("expected target on the view axis, got %+v", v)
	}
	if !approx(v.Z, -c.Distance) {
		t.Errorf("expected target at depth %v, got %v", -c.Distance, v.Z)
	}
}

func TestHandleDragClampsPitch(t *testing.T) {
	c := NewOrbitCamera()
	c.HandleDrag(0, 1e6)
	if c.RotationX != c.MaxPitch {
		t.Errorf("expected pitch clamped to %v, got %v", c.MaxPitch, c.RotationX)
	}
	c.HandleDrag(0, -1e6)
	if c.RotationX != c.MinPitch {
		t.Errorf("expected pitch clamped to %v, got %v", c.MinPitch, c.RotationX)
	}

	yaw := c.RotationY
	c.HandleDrag(100, 0)
	if !approx(c.RotationY, yaw-100*c.DragSensitivity) {
		t.Errorf("expected yaw %v, got %v", yaw-100*c.DragSensitivity, c.RotationY)
	}
}

func TestHandleZoomClamps(t *testing.T) {
	c := NewOrbitCamera()
	for range 200 {
		c.HandleZoom(1)
	}
	if c.Distance != c.MinDistance {
		t.Errorf("expected distance clamped to %v, got %v", c.MinDistance, c.Distance)
	}
	for range 500 {
		c.HandleZoom(-1)
	}
	if c.Distance != c.MaxDistance {
		t.Errorf("expected distance clamped to %v, got %v", c.MaxDistance, c.Distance)
	}
}

func TestFrame(t *testing.T) {
	c := NewOrbitCamera()
	center := math.Vec3{X: 50}
	c.Frame(center, 2)

	if c.Target != center {
		t.Errorf("expected target %+v, got %+v", center, c.Target)
	}
	if c.Distance <= 2 {
		t.Errorf("expected camera outside the sphere, got distance %v", c.Distance)
	}
	if c.MinDistance > 2.1+1e-4 {
		t.Errorf("expected min distance near the surface, got %v", c.MinDistance)
	}
}

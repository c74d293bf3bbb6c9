package math

import (
	"math"
	"testing"
)

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("Identity quaternion should be (0,0,0,1), got (%v,%v,%v,%v)", q.X, q.Y, q.Z, q.W)
	}
}

func TestQuatNormalize(t *testing.T) {
	q := Quat{X: 1, Y: 2, Z: 3, W: 4}
	n := q.Normalize()

	length := float32(math.Sqrt(float64(n.X*n.X + n.Y*n.Y + n.Z*n.Z + n.W*n.W)))
	if math.Abs(float64(length-1.0)) > 0.0001 {
		t.Errorf("Normalized quaternion length should be 1, got %v", length)
	}
}

func TestQuatToMat4(t *testing.T) {
	// Identity quaternion should produce identity matrix
	q := QuatIdentity()
	m := q.ToMat4()

	identity := Identity()
	for i := 0; i < 16; i++ {
		if math.Abs(float64(m[i]-identity[i])) > 0.0001 {
			t.Errorf("Identity quat should produce identity matrix, element %d: got %v, want %v", i, m[i], identity[i])
		}
	}
}

func TestQuatFromAxisAngle(t *testing.T) {
	// 90 degrees around Y axis
	q := QuatFromAxisAngle(Vec3{X: 0, Y: 1, Z: 0}, float32(math.Pi/2))

	// Should have Y component and W = cos(45deg)
	expectedW := float32(math.Cos(math.Pi / 4))
	expectedY := float32(math.Sin(math.Pi / 4))

	if math.Abs(float64(q.W-expectedW)) > 0.001 {
		t.Errorf("QuatFromAxisAngle W: expected %v, got %v", expectedW, q.W)
	}
	if math.Abs(float64(q.Y-expectedY)) > 0.001 {
		t.Errorf("QuatFromAxisAngle Y: expected %v, got %v", expectedY, q.Y)
	}
}

func TestQuatRotateMatchesMatrix(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{X: 0, Y: 1, Z: 0}, float32(math.Pi/2))
	v := Vec3{1, 0, 0}

	got := q.Rotate(v)
	want := q.ToMat4().TransformVec3(v)
	if got.Distance(want) > 0.001 {
		t.Errorf("Rotate: got %v, matrix gives %v", got, want)
	}
	if got.Distance(Vec3{0, 0, -1}) > 0.001 {
		t.Errorf("Rotate 90 around Y: expected (0,0,-1), got %v", got)
	}
}

func TestQuatLookRotation(t *testing.T) {
	tests := []struct {
		name    string
		forward Vec3
	}{
		{"forward z", Vec3{0, 0, 1}},
		{"backward z", Vec3{0, 0, -1}},
		{"right", Vec3{1, 0, 0}},
		{"diagonal", Vec3{1, 2, 3}},
		{"parallel to up", Vec3{0, 1, 0}},
		{"anti-parallel to up", Vec3{0, -1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := QuatLookRotation(tt.forward, Vec3{0, 1, 0})
			got := q.Rotate(Vec3{0, 0, 1})
			want := tt.forward.Normalize()
			if got.Distance(want) > 0.001 {
				t.Errorf("expected +Z to map to %v, got %v", want, got)
			}
		})
	}
}

func TestQuatFromEuler(t *testing.T) {
	q := QuatFromEuler(90, 0, 0)
	got := q.Rotate(Vec3{0, 1, 0})
	if got.Distance(Vec3{0, 0, 1}) > 0.001 {
		t.Errorf("90 degrees around X should map +Y to +Z, got %v", got)
	}
}

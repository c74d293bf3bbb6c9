// Package noise provides the deterministic 3D gradient-noise fields used to
// shape terrain and to decide where surface objects may be placed.
package noise

import (
	gomath "math"

	"github.com/Faultbox/planetgen/pkg/math"
)

const (
	skew3   = float32(1.0 / 3.0)
	unskew3 = float32(1.0 / 6.0)

	// falloff is the squared radius of each corner's contribution kernel.
	falloff = float32(0.6)
	// scale maps the summed kernel contributions to roughly [-1, 1].
	scale = float32(32.0)
)

var grad3 = [12]math.Vec3{
	{X: 1, Y: 1, Z: 0}, {X: -1, Y: 1, Z: 0}, {X: 1, Y: -1, Z: 0}, {X: -1, Y: -1, Z: 0},
	{X: 1, Y: 0, Z: 1}, {X: -1, Y: 0, Z: 1}, {X: 1, Y: 0, Z: -1}, {X: -1, Y: 0, Z: -1},
	{X: 0, Y: 1, Z: 1}, {X: 0, Y: -1, Z: 1}, {X: 0, Y: 1, Z: -1}, {X: 0, Y: -1, Z: -1},
}

// permutation is Ken Perlin's reference table. It is never reseeded.
var permutation = [256]uint8{
	151, 160, 137, 91, 90, 15,
	131, 13, 201, 95, 96, 53, 194, 233, 7, 225, 140, 36, 103, 30, 69, 142, 8, 99, 37, 240, 21, 10, 23,
	190, 6, 148, 247, 120, 234, 75, 0, 26, 197, 62, 94, 252, 219, 203, 117, 35, 11, 32, 57, 177, 33,
	88, 237, 149, 56, 87, 174, 20, 125, 136, 171, 168, 68, 175, 74, 165, 71, 134, 139, 48, 27, 166,
	77, 146, 158, 231, 83, 111, 229, 122, 60, 211, 133, 230, 220, 105, 92, 41, 55, 46, 245, 40, 244,
	102, 143, 54, 65, 25, 63, 161, 1, 216, 80, 73, 209, 76, 132, 187, 208, 89, 18, 169, 200, 196,
	135, 130, 116, 188, 159, 86, 164, 100, 109, 198, 173, 186, 3, 64, 52, 217, 226, 250, 124, 123,
	5, 202, 38, 147, 118, 126, 255, 82, 85, 212, 207, 206, 59, 227, 47, 16, 58, 17, 182, 189, 28, 42,
	223, 183, 170, 213, 119, 248, 152, 2, 44, 154, 163, 70, 221, 153, 101, 155, 167, 43, 172, 9,
	129, 22, 39, 253, 19, 98, 108, 110, 79, 113, 224, 232, 178, 185, 112, 104, 218, 246, 97, 228,
	251, 34, 242, 193, 238, 210, 144, 12, 191, 179, 162, 241, 81, 51, 145, 235, 249, 14, 239, 107,
	49, 192, 214, 31, 181, 199, 106, 157, 184, 84, 204, 176, 115, 121, 50, 45, 127, 4, 150, 254,
	138, 236, 205, 93, 222, 114, 67, 29, 24, 72, 243, 141, 128, 195, 78, 66, 215, 61, 156, 180,
}

// perm and permMod12 are the doubled lookup tables. They are filled once in
// init and only read afterwards, so concurrent Simplex3 calls need no locking.
var (
	perm      [512]int
	permMod12 [512]int
)

func init() {
	for i := range perm {
		perm[i] = int(permutation[i&255])
		permMod12[i] = perm[i] % 12
	}
}

// Simplex3 evaluates classic 3D simplex noise at p.
func Simplex3(p math.Vec3) float32 {
	// Skew the input space to find the containing simplex cell.
	s := (p.X + p.Y + p.Z) * skew3
	i := floor(p.X + s)
	j := floor(p.Y + s)
	k := floor(p.Z + s)

	t := float32(i+j+k) * unskew3
	x0 := p.X - (float32(i) - t)
	y0 := p.Y - (float32(j) - t)
	z0 := p.Z - (float32(k) - t)

	// Offsets of the second and third corners, picked by coordinate order.
	var i1, j1, k1, i2, j2, k2 int
	if x0 >= y0 {
		switch {
		case y0 >= z0:
			i1, j1, k1, i2, j2, k2 = 1, 0, 0, 1, 1, 0 // X Y Z
		case x0 >= z0:
			i1, j1, k1, i2, j2, k2 = 1, 0, 0, 1, 0, 1 // X Z Y
		default:
			i1, j1, k1, i2, j2, k2 = 0, 0, 1, 1, 0, 1 // Z X Y
		}
	} else {
		switch {
		case y0 < z0:
			i1, j1, k1, i2, j2, k2 = 0, 0, 1, 0, 1, 1 // Z Y X
		case x0 < z0:
			i1, j1, k1, i2, j2, k2 = 0, 1, 0, 0, 1, 1 // Y Z X
		default:
			i1, j1, k1, i2, j2, k2 = 0, 1, 0, 1, 1, 0 // Y X Z
		}
	}

	// Corner offsets step by skew3, not unskew3; terrain depends on this exact field.
	c1 := math.Vec3{X: x0 - float32(i1) + skew3, Y: y0 - float32(j1) + skew3, Z: z0 - float32(k1) + skew3}
	c2 := math.Vec3{X: x0 - float32(i2) + 2*skew3, Y: y0 - float32(j2) + 2*skew3, Z: z0 - float32(k2) + 2*skew3}
	c3 := math.Vec3{X: x0 - 1 + 3*skew3, Y: y0 - 1 + 3*skew3, Z: z0 - 1 + 3*skew3}

	ii := i & 255
	jj := j & 255
	kk := k & 255

	gi0 := permMod12[ii+perm[jj+perm[kk]]]
	gi1 := permMod12[ii+i1+perm[jj+j1+perm[kk+k1]]]
	gi2 := permMod12[ii+i2+perm[jj+j2+perm[kk+k2]]]
	gi3 := permMod12[ii+1+perm[jj+1+perm[kk+1]]]

	n := corner(gi0, math.Vec3{X: x0, Y: y0, Z: z0}) +
		corner(gi1, c1) +
		corner(gi2, c2) +
		corner(gi3, c3)

	return scale * n
}

// corner returns one corner's kernel-weighted gradient contribution.
func corner(gi int, d math.Vec3) float32 {
	t := falloff - d.Dot(d)
	if t < 0 {
		return 0
	}
	t *= t
	return t * t * grad3[gi].Dot(d)
}

func floor(v float32) int {
	return int(gomath.Floor(float64(v)))
}

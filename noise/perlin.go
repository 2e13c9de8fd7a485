// Package noise provides deterministic gradient noise and multi-octave summation
// for the procedural field effects.
package noise

import "math"

// reference is Ken Perlin's published permutation of 0..255.
var reference = [256]uint8{
	151, 160, 137, 91, 90, 15, 131, 13, 201, 95, 96, 53, 194, 233, 7, 225,
	140, 36, 103, 30, 69, 142, 8, 99, 37, 240, 21, 10, 23, 190, 6, 148,
	247, 120, 234, 75, 0, 26, 197, 62, 94, 252, 219, 203, 117, 35, 11, 32,
	57, 177, 33, 88, 237, 149, 56, 87, 174, 20, 125, 136, 171, 168, 68, 175,
	74, 165, 71, 134, 139, 48, 27, 166, 77, 146, 158, 231, 83, 111, 229, 122,
	60, 211, 133, 230, 220, 105, 92, 41, 55, 46, 245, 40, 244, 102, 143, 54,
	65, 25, 63, 161, 1, 216, 80, 73, 209, 76, 132, 187, 208, 89, 18, 169,
	200, 196, 135, 130, 116, 188, 159, 86, 164, 100, 109, 198, 173, 186, 3, 64,
	52, 217, 226, 250, 124, 123, 5, 202, 38, 147, 118, 126, 255, 82, 85, 212,
	207, 206, 59, 227, 47, 16, 58, 17, 182, 189, 28, 42, 223, 183, 170, 213,
	119, 248, 152, 2, 44, 154, 163, 70, 221, 153, 101, 155, 167, 43, 172, 9,
	129, 22, 39, 253, 19, 98, 108, 110, 79, 113, 224, 232, 178, 185, 112, 104,
	218, 246, 97, 228, 251, 34, 242, 193, 238, 210, 144, 12, 191, 179, 162, 241,
	81, 51, 145, 235, 249, 14, 239, 107, 49, 192, 214, 31, 181, 199, 106, 157,
	184, 84, 204, 176, 115, 121, 50, 45, 127, 4, 150, 254, 138, 236, 205, 93,
	222, 114, 67, 29, 24, 72, 243, 141, 128, 195, 78, 66, 215, 61, 156, 180,
}

// perm is the reference table duplicated so lookups of p[i+1] never wrap.
var perm [512]int

func init() {
	for i := 0; i < 512; i++ {
		perm[i] = int(reference[i&255])
	}
}

// Perlin3 returns improved Perlin gradient noise at (x, y, z), in [-1, 1].
// It is a pure function of its inputs.
func Perlin3(x, y, z float64) float64 {
	fx, fy, fz := math.Floor(x), math.Floor(y), math.Floor(z)
	X := int(fx) & 255
	Y := int(fy) & 255
	Z := int(fz) & 255

	x -= fx
	y -= fy
	z -= fz

	u := fade(x)
	v := fade(y)
	w := fade(z)

	A := perm[X] + Y
	AA := perm[A] + Z
	AB := perm[A+1] + Z
	B := perm[X+1] + Y
	BA := perm[B] + Z
	BB := perm[B+1] + Z

	n := lerp(w,
		lerp(v,
			lerp(u, grad(perm[AA], x, y, z), grad(perm[BA], x-1, y, z)),
			lerp(u, grad(perm[AB], x, y-1, z), grad(perm[BB], x-1, y-1, z))),
		lerp(v,
			lerp(u, grad(perm[AA+1], x, y, z-1), grad(perm[BA+1], x-1, y, z-1)),
			lerp(u, grad(perm[AB+1], x, y-1, z-1), grad(perm[BB+1], x-1, y-1, z-1))))

	return clamp(n, -1, 1)
}

// FractalNoise sums octaves of Perlin3 at doubling frequency, each octave's
// amplitude scaled by persistence, normalized by the total amplitude.
func FractalNoise(x, y, z float64, octaves int, persistence float64) float64 {
	return Fractal(Perlin{}, x, y, z, octaves, persistence)
}

// fade is the quintic interpolant 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// grad dots (x, y, z) with one of the 12 cube-edge gradients picked by hash.
func grad(hash int, x, y, z float64) float64 {
	h := hash & 15
	u := y
	if h < 8 {
		u = x
	}
	var v float64
	switch {
	case h < 4:
		v = y
	case h == 12 || h == 14:
		v = x
	default:
		v = z
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

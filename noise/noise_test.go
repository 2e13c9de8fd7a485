package noise

import (
	"math"
	"testing"
)

func TestPerlin3Deterministic(t *testing.T) {
	points := [][3]float64{
		{0.5, 0.5, 0.5},
		{1.3, -2.7, 4.1},
		{123.456, 78.9, -0.25},
	}
	for _, p := range points {
		a := Perlin3(p[0], p[1], p[2])
		b := Perlin3(p[0], p[1], p[2])
		if a != b {
			t.Errorf("Perlin3(%v) not deterministic: %v != %v", p, a, b)
		}
	}
}

func TestPerlin3ZeroAtLattice(t *testing.T) {
	for x := -3; x <= 3; x++ {
		for z := -3; z <= 3; z++ {
			if v := Perlin3(float64(x), 2, float64(z)); math.Abs(v) > 1e-12 {
				t.Errorf("Perlin3(%d,2,%d) = %v, expected 0 at lattice point", x, z, v)
			}
		}
	}
}

func TestPerlin3Range(t *testing.T) {
	nonZero := false
	for i := 0; i < 2000; i++ {
		x := float64(i) * 0.137
		y := float64(i) * 0.071
		z := float64(i) * 0.029
		v := Perlin3(x, y, z)
		if v < -1 || v > 1 {
			t.Fatalf("Perlin3(%v,%v,%v) = %v out of [-1,1]", x, y, z, v)
		}
		if v != 0 {
			nonZero = true
		}
	}
	if !nonZero {
		t.Error("expected some non-zero noise values")
	}
}

func TestFractalNoiseNormalized(t *testing.T) {
	for i := 0; i < 500; i++ {
		x := float64(i) * 0.31
		v := FractalNoise(x, x*0.5, 1.7, 4, 0.5)
		if v < -1 || v > 1 {
			t.Fatalf("FractalNoise out of range at %v: %v", x, v)
		}
	}
}

func TestFractalNoiseSingleOctaveMatchesPerlin(t *testing.T) {
	x, y, z := 3.21, 6.54, 0.98
	if got, want := FractalNoise(x, y, z, 1, 0.5), Perlin3(x, y, z); got != want {
		t.Errorf("one octave should equal Perlin3: got %v, want %v", got, want)
	}
}

func TestFractalZeroOctaves(t *testing.T) {
	if v := FractalNoise(1.5, 2.5, 3.5, 0, 0.5); v != 0 {
		t.Errorf("expected 0 for zero octaves, got %v", v)
	}
}

func TestSimplexRangeAndSeed(t *testing.T) {
	a := NewSimplex(7)
	b := NewSimplex(7)
	for i := 0; i < 200; i++ {
		x := float64(i) * 0.173
		va := a.Noise3(x, 0.3, -x)
		if va < -1 || va > 1 {
			t.Fatalf("simplex out of range: %v", va)
		}
		if vb := b.Noise3(x, 0.3, -x); va != vb {
			t.Fatalf("same seed produced different values: %v vs %v", va, vb)
		}
	}
}

func TestNewKernel(t *testing.T) {
	tests := []struct {
		kind    string
		wantErr bool
	}{
		{"", false},
		{"perlin", false},
		{"simplex", false},
		{"worley", true},
	}
	for _, tt := range tests {
		_, err := New(tt.kind, 1)
		if (err != nil) != tt.wantErr {
			t.Errorf("New(%q) error = %v, wantErr %v", tt.kind, err, tt.wantErr)
		}
	}
}

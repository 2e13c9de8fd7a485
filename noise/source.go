package noise

import (
	"fmt"

	"github.com/ojrac/opensimplex-go"
)

// Source is a 3D noise kernel returning values in [-1, 1].
type Source interface {
	Noise3(x, y, z float64) float64
}

// Perlin is the fixed-table Perlin kernel. The zero value is ready to use.
type Perlin struct{}

// Noise3 implements Source.
func (Perlin) Noise3(x, y, z float64) float64 {
	return Perlin3(x, y, z)
}

// Simplex is a seeded OpenSimplex kernel.
type Simplex struct {
	noise opensimplex.Noise
}

// NewSimplex creates a simplex kernel for the given seed.
func NewSimplex(seed int64) *Simplex {
	return &Simplex{noise: opensimplex.NewNormalized(seed)}
}

// Noise3 implements Source. The normalized generator yields [0, 1], remapped to [-1, 1].
func (s *Simplex) Noise3(x, y, z float64) float64 {
	return s.noise.Eval3(x, y, z)*2 - 1
}

// New returns the kernel named by kind ("perlin" or "simplex").
func New(kind string, seed int64) (Source, error) {
	switch kind {
	case "", "perlin":
		return Perlin{}, nil
	case "simplex":
		return NewSimplex(seed), nil
	default:
		return nil, fmt.Errorf("unknown noise kernel %q", kind)
	}
}

// Fractal sums octaves of src at doubling frequency with persistence-decaying
// amplitude, normalized by the total amplitude so the result stays in [-1, 1].
func Fractal(src Source, x, y, z float64, octaves int, persistence float64) float64 {
	if octaves < 1 {
		return 0
	}
	total := 0.0
	frequency := 1.0
	amplitude := 1.0
	maxValue := 0.0
	for i := 0; i < octaves; i++ {
		total += src.Noise3(x*frequency, y*frequency, z*frequency) * amplitude
		maxValue += amplitude
		amplitude *= persistence
		frequency *= 2
	}
	if maxValue == 0 {
		return 0
	}
	return total / maxValue
}

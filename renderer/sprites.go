package renderer

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/itsjaydesu/jayfolio-sub000/scene"
)

// Sprite is one projected point in target pixels.
type Sprite struct {
	X, Y  float32
	Size  float32
	Depth float32
	R     float32
	G     float32
	B     float32
}

// minSpriteSize drops points too small to rasterize.
const minSpriteSize = 0.35

// Project turns the grid into screen sprites for a target scale times the
// viewport. Size is scale × pointSize × pointBase / depth in target pixels,
// and color is dimmed by exponential-squared fog. dst is reused.
func Project(v *scene.View, pointBase, targetScale float64, dst []Sprite) []Sprite {
	dst = dst[:0]
	g := v.Grid
	cam := v.Camera
	fog := v.Settings.FogDensity
	ps := v.Settings.PointSize

	for i := 0; i < g.Len(); i++ {
		p := r3.Vec{
			X: float64(g.Positions[i*3]),
			Y: float64(g.Positions[i*3+1]),
			Z: float64(g.Positions[i*3+2]),
		}
		sx, sy, depth, ok := cam.Project(p)
		if !ok {
			continue
		}
		size := float64(g.Scales[i]) * ps * pointBase / depth
		if size < minSpriteSize || offscreen(sx, sy, size, cam.ViewportW, cam.ViewportH) {
			continue
		}
		f := FogFactor(fog, depth)
		if f <= 0 {
			continue
		}
		dst = append(dst, Sprite{
			X:     float32(sx * targetScale),
			Y:     float32(sy * targetScale),
			Size:  float32(size),
			Depth: float32(depth),
			R:     g.Colors[i*3] * float32(f),
			G:     g.Colors[i*3+1] * float32(f),
			B:     g.Colors[i*3+2] * float32(f),
		})
	}
	return dst
}

func offscreen(sx, sy, size, w, h float64) bool {
	return sx < -size || sy < -size || sx > w+size || sy > h+size
}

// FogFactor is the fraction of a point's color surviving exp² fog.
func FogFactor(density, depth float64) float64 {
	d := density * depth
	return math.Exp(-d * d)
}

// TargetScale clamps the pixel ratio used for the render target.
func TargetScale(ratio float64) float64 {
	if ratio <= 0 {
		return 1
	}
	return ratio
}

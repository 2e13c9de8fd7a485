// Package field computes the per-point height, scale and color of the grid
// every frame.
package field

import (
	"math"

	"github.com/itsjaydesu/jayfolio-sub000/config"
	"github.com/itsjaydesu/jayfolio-sub000/effects"
	"github.com/itsjaydesu/jayfolio-sub000/pointer"
	"github.com/itsjaydesu/jayfolio-sub000/settings"
	"github.com/itsjaydesu/jayfolio-sub000/transient"
)

const (
	distEpsilon = 1e-4
	minScale    = 0.1
	maxScale    = 4.0
)

// Frame is the state read by one Compute pass. Nothing in it is written.
type Frame struct {
	AnimTime float64
	Settings *settings.Settings
	Pointer  *pointer.Tracker
	Ripples  *transient.Registry
	Effects  *effects.Engine
}

// Grid owns the flat point buffers. Positions and Colors hold three floats
// per point; Scales one. Cell (ix, iy) is point ix*AmountY + iy.
type Grid struct {
	AmountX, AmountY int
	Separation       float64
	HalfWidth        float64
	HalfDepth        float64

	Positions []float32
	Scales    []float32
	Colors    []float32

	// Dirty is set by Compute and cleared by the surface after upload
	Dirty bool

	homeMode bool
	radial   []float64
	theta    []float64
	frame    Frame
	pool     *workerPool
}

// New allocates the lattice centered on the origin.
func New(cfg *config.Config) *Grid {
	n := cfg.Derived.NumPoints
	g := &Grid{
		AmountX:    cfg.Grid.AmountX,
		AmountY:    cfg.Grid.AmountY,
		Separation: cfg.Grid.Separation,
		HalfWidth:  cfg.Derived.HalfWidth,
		HalfDepth:  cfg.Derived.HalfDepth,
		Positions:  make([]float32, n*3),
		Scales:     make([]float32, n),
		Colors:     make([]float32, n*3),
		homeMode:   cfg.Interaction.HomeMode,
		radial:     make([]float64, n),
		theta:      make([]float64, n),
	}
	for ix := 0; ix < g.AmountX; ix++ {
		for iy := 0; iy < g.AmountY; iy++ {
			i := ix*g.AmountY + iy
			x, z := g.Cell(ix, iy)
			g.Positions[i*3] = float32(x)
			g.Positions[i*3+2] = float32(z)
			g.Scales[i] = 1
			g.radial[i] = math.Hypot(x, z)
			g.theta[i] = math.Atan2(z, x)
		}
	}
	g.pool = newWorkerPool(cfg.Grid.Workers, g.AmountX, g.computeRows)
	return g
}

// Len returns the number of points.
func (g *Grid) Len() int {
	return len(g.Scales)
}

// Cell returns the world position of lattice cell (ix, iy) on the ground plane.
func (g *Grid) Cell(ix, iy int) (x, z float64) {
	return float64(ix)*g.Separation - g.HalfWidth, float64(iy)*g.Separation - g.HalfDepth
}

// EffectsGrid describes the lattice to the effect engine.
func (g *Grid) EffectsGrid() effects.Grid {
	return effects.Grid{
		AmountX:    g.AmountX,
		AmountY:    g.AmountY,
		Separation: g.Separation,
		HalfWidth:  g.HalfWidth,
		HalfDepth:  g.HalfDepth,
	}
}

// Compute evaluates every cell for f and marks the buffers dirty. Transient
// summaries and effect updates must already be prepared for this frame.
func (g *Grid) Compute(f Frame) {
	g.frame = f
	g.pool.run()
	g.Dirty = true
}

// Close stops the row workers.
func (g *Grid) Close() {
	g.pool.stop()
}

// computeRows evaluates rows [start, end). Rows write disjoint ranges of the
// buffers so they may run concurrently.
func (g *Grid) computeRows(start, end int) {
	f := &g.frame
	s := f.Settings
	pt := f.Pointer
	t := f.AnimTime
	amp := s.Amplitude
	fxActive := f.Effects != nil && f.Effects.Active()

	speed := math.Hypot(pt.VelX, pt.VelY)
	flowCos, flowSin := math.Cos(pt.FlowAngle), math.Sin(pt.FlowAngle)

	for ix := start; ix < end; ix++ {
		for iy := 0; iy < g.AmountY; iy++ {
			i := ix*g.AmountY + iy
			px, pz := g.Cell(ix, iy)
			radial := g.radial[i]

			h := math.Sin(float64(ix)*s.WaveXFrequency+t) * amp
			h += math.Cos(float64(iy)*s.WaveYFrequency-t*1.25) * amp * 0.6
			h += math.Sin(radial*s.SwirlFrequency-t*1.6) * s.SwirlStrength * amp * 0.4

			dx := px - pt.SmoothWorldX
			dz := pz - pt.SmoothWorldZ
			dist := math.Sqrt(dx*dx+dz*dz) + distEpsilon
			if pt.Energy > 0 {
				falloff := math.Exp(-dist * s.MouseInfluence * 0.55)
				h += math.Cos(dist*s.MouseInfluence*14-t*2.4) * pt.Energy * amp * 0.28 * falloff
			}

			if g.homeMode {
				if speed > 0 {
					glide := math.Exp(-(dist * dist) / (380 * 380))
					h += glide * math.Min(speed, 2) * amp * 0.12
				}
				if pt.FlowStrength > 0 {
					along := dx*flowCos - dz*flowSin
					h += math.Sin(along*0.01-t*2) * pt.FlowStrength * math.Exp(-dist*0.0015) * amp * 0.1
				}
			}

			var scale, light float64
			if f.Ripples != nil {
				c := f.Ripples.Sample(px, pz)
				h += c.Height
				scale += c.Scale
				light += c.Light
			}
			if fxActive {
				c := f.Effects.Sample(effects.Point{
					Index:  i,
					IX:     ix,
					IY:     iy,
					X:      px,
					Z:      pz,
					Radial: radial,
					Theta:  g.theta[i],
				})
				h += c.Height
				scale += c.Scale
				light += c.Light
			}

			g.Positions[i*3+1] = float32(h)

			hn := clamp(0.5+h*0.0015, 0, 1)
			g.Scales[i] = float32(clamp(0.6+hn*2.1+scale, minScale, maxScale))

			gray := float32(clamp(s.Brightness+hn*s.Contrast*0.65+light, 0, 1))
			g.Colors[i*3] = gray
			g.Colors[i*3+1] = gray
			g.Colors[i*3+2] = gray
		}
	}
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

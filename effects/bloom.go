package effects

import (
	"math"

	"github.com/itsjaydesu/jayfolio-sub000/settings"
)

const (
	bloomDuration   = 24.0
	bloomIterations = 4 // Solver steps per frame
	bloomDiffuseU   = 1.0
	bloomDiffuseV   = 0.5
	bloomSeeds      = 5
)

// bloom runs a Gray-Scott reaction-diffusion on a torus the size of the
// lattice and raises cells by their V concentration.
type bloom struct {
	nx, ny     int
	u, v       []float64
	nu, nv     []float64
	t, env     float64
	halfW      float64
	halfD      float64
	separation float64
}

func newBloom(env *Env) effect {
	g := env.Grid
	n := g.Cells()
	b := &bloom{
		nx: g.AmountX, ny: g.AmountY,
		u: make([]float64, n), v: make([]float64, n),
		nu: make([]float64, n), nv: make([]float64, n),
		halfW: g.HalfWidth, halfD: g.HalfDepth,
		separation: g.Separation,
	}
	for i := range b.u {
		b.u[i] = 1
	}
	b.seed(b.nx/2, b.ny/2, 3)
	for i := 0; i < bloomSeeds; i++ {
		b.seed(env.Rng.Intn(b.nx), env.Rng.Intn(b.ny), 2)
	}
	return b
}

func (b *bloom) idx(ix, iy int) int {
	ix = (ix%b.nx + b.nx) % b.nx
	iy = (iy%b.ny + b.ny) % b.ny
	return ix*b.ny + iy
}

// seed drops V into a square of the given radius around (cx, cy).
func (b *bloom) seed(cx, cy, r int) {
	for dx := -r; dx <= r; dx++ {
		for dy := -r; dy <= r; dy++ {
			i := b.idx(cx+dx, cy+dy)
			b.u[i] = 0.5
			b.v[i] = 0.9
		}
	}
}

func (b *bloom) duration() float64 { return bloomDuration }

func (b *bloom) start(env *Env, now float64) {
	env.Model.Apply(settings.AnimationSpeed, 0.3, false)
	env.Model.Apply(settings.Amplitude, 40, false)
}

func (b *bloom) update(env *Env, delta, t, now float64) {
	b.t = t
	b.env = rampIn(t, 2.5)

	if pt := env.Pointer; pt.Energy > 0.3 {
		cx := int(math.Round((pt.SmoothWorldX + b.halfW) / b.separation))
		cy := int(math.Round((pt.SmoothWorldZ + b.halfD) / b.separation))
		if cx >= 0 && cx < b.nx && cy >= 0 && cy < b.ny {
			b.seed(cx, cy, 1)
		}
	}

	f := 0.037 + 0.008*math.Sin(0.15*t)
	k := 0.06 + 0.003*math.Sin(0.11*t+1)
	for i := 0; i < bloomIterations; i++ {
		b.step(f, k)
	}
}

// step advances the solver once with unit time step, using a 3x3 stencil
// weighted 0.2 on edges, 0.05 on corners and -1 at the center.
func (b *bloom) step(f, k float64) {
	for ix := 0; ix < b.nx; ix++ {
		for iy := 0; iy < b.ny; iy++ {
			i := ix*b.ny + iy
			var lu, lv float64
			for dx := -1; dx <= 1; dx++ {
				for dy := -1; dy <= 1; dy++ {
					w := 0.05
					switch {
					case dx == 0 && dy == 0:
						w = -1
					case dx == 0 || dy == 0:
						w = 0.2
					}
					j := b.idx(ix+dx, iy+dy)
					lu += b.u[j] * w
					lv += b.v[j] * w
				}
			}
			u, v := b.u[i], b.v[i]
			uvv := u * v * v
			b.nu[i] = clamp01(u + bloomDiffuseU*lu - uvv + f*(1-u))
			b.nv[i] = clamp01(v + bloomDiffuseV*lv + uvv - (f+k)*v)
		}
	}
	b.u, b.nu = b.nu, b.u
	b.v, b.nv = b.nv, b.v
}

func (b *bloom) perPoint(p Point) Contribution {
	if b.env <= 0 || p.Index >= len(b.v) {
		return Contribution{}
	}
	v := b.v[p.Index]
	return Contribution{
		Height: (v*2.4 - 0.3) * 38 * b.env,
		Scale:  v * 0.8 * b.env,
		Light:  v * 0.5 * b.env,
	}
}

func (b *bloom) cleanup(env *Env, _ bool) {
	env.Model.ResetToDefaults()
	b.u, b.v, b.nu, b.nv = nil, nil, nil, nil
}

package effects

import (
	"math"

	"github.com/itsjaydesu/jayfolio-sub000/settings"
)

const (
	juliaDuration   = 20.0
	juliaIterations = 32
	juliaRadius     = 0.7885
)

// julia maps the lattice onto a slowly zooming Julia set whose constant
// circles the origin, lifting cells by their smooth escape count.
type julia struct {
	halfW, halfD float64
	cr, ci       float64
	zoom         float64
	env          float64
	t            float64
}

func newJulia(env *Env) effect {
	return &julia{halfW: env.Grid.HalfWidth, halfD: env.Grid.HalfDepth, zoom: 1}
}

func (j *julia) duration() float64 { return juliaDuration }

func (j *julia) start(env *Env, now float64) {
	env.Model.Apply(settings.AnimationSpeed, 0.2, false)
	env.Model.Apply(settings.Amplitude, 36, false)
}

func (j *julia) update(env *Env, delta, t, now float64) {
	j.t = t
	j.env = rampIn(t, 2)
	j.zoom = math.Exp(t * 0.08)
	a := 0.15 * t
	j.cr = juliaRadius * math.Cos(a)
	j.ci = juliaRadius * math.Sin(a)
}

// escape returns the normalized smooth iteration count at z, 1 inside the set.
func (j *julia) escape(zr, zi float64) float64 {
	for n := 0; n < juliaIterations; n++ {
		r2 := zr*zr + zi*zi
		if r2 > 4 {
			mu := float64(n) + 1 - math.Log(math.Log(math.Sqrt(r2)))/math.Ln2
			return clamp01(mu / juliaIterations)
		}
		zr, zi = zr*zr-zi*zi+j.cr, 2*zr*zi+j.ci
	}
	return 1
}

func (j *julia) perPoint(p Point) Contribution {
	if j.env <= 0 {
		return Contribution{}
	}
	v := j.escape(p.X/j.halfW*1.6/j.zoom, p.Z/j.halfD*1.6/j.zoom)
	return Contribution{
		Height: (v*2 - 1) * 46 * j.env,
		Scale:  v * 0.6 * j.env,
		Light:  v * 0.35 * j.env,
	}
}

func (j *julia) cleanup(env *Env, _ bool) {
	env.Model.ResetToDefaults()
}

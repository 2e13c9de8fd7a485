package effects

import (
	"math"

	"github.com/itsjaydesu/jayfolio-sub000/noise"
	"github.com/itsjaydesu/jayfolio-sub000/settings"
	"github.com/itsjaydesu/jayfolio-sub000/transient"
)

const riverDuration = 15.0

// river is a seismic mode: a noise-carved channel with banded tremors along
// one direction and periodic shockwaves from random epicenters.
type river struct {
	src       noise.Source
	cos, sin  float64
	nextShock float64
	t         float64
	env       float64
}

func newRiver(env *Env) effect {
	dir := env.Rng.Float64() * 2 * math.Pi
	return &river{
		src: env.Noise,
		cos: math.Cos(dir),
		sin: math.Sin(dir),
	}
}

func (r *river) duration() float64 { return riverDuration }

func (r *river) start(env *Env, now float64) {
	env.Model.Apply(settings.AnimationSpeed, 0.5, false)
	env.Model.Apply(settings.RippleSpeed, 340, false)
	env.Model.Apply(settings.Amplitude, 58, false)
	r.nextShock = 0.6
}

func (r *river) update(env *Env, delta, t, now float64) {
	r.t = t
	r.env = rampIn(t, 1.5)
	if t < r.nextShock || t >= riverDuration {
		return
	}
	g := env.Grid
	x := (env.Rng.Float64()*2 - 1) * g.HalfWidth * 0.5
	z := (env.Rng.Float64()*2 - 1) * g.HalfDepth * 0.5
	env.Ripples.AddRipple(transient.Ripple{
		X: x, Z: z, Start: now,
		Strength: 1.1,
		Profile:  transient.ProfileShockwave,
		Easing:   transient.EaseOutQuart,
		SpeedMul: 1.6,
	})
	env.Ripples.AddRipple(transient.Ripple{
		X: x, Z: z, Start: now + 0.25,
		Strength: 0.7,
		Profile:  transient.ProfileSeismic,
		Easing:   transient.EaseInOutSine,
		WidthMul: 1.5,
	})
	r.nextShock = t + 2.2 + env.Rng.Float64()*1.6
}

func (r *river) perPoint(p Point) Contribution {
	if r.env <= 0 {
		return Contribution{}
	}
	along := p.X*r.cos + p.Z*r.sin
	across := -p.X*r.sin + p.Z*r.cos
	channel := noise.Fractal(r.src, along*0.0009-r.t*0.35, across*0.0016, r.t*0.1, 4, 0.55)
	bands := math.Sin(across*0.006+channel*3-r.t*1.8) * math.Exp(-math.Abs(across)*0.0006)
	return Contribution{
		Height: (channel*40 + bands*26) * r.env,
		Scale:  math.Abs(channel) * 0.3 * r.env,
		Light:  math.Max(bands, 0) * 0.15 * r.env,
	}
}

func (r *river) cleanup(env *Env, _ bool) {
	env.Model.ResetToDefaults()
}

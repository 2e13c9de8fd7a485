package effects

import (
	"math"

	"github.com/itsjaydesu/jayfolio-sub000/settings"
	"github.com/itsjaydesu/jayfolio-sub000/transient"
)

const (
	jitterDuration = 3.0
	jitterRipples  = 6
)

// jitter is a short high-frequency shake with a cascade of tremor ripples
// and scattered bursts.
type jitter struct {
	t         float64
	env       float64
	nextBurst float64
	noise     func(x, y, z float64) float64

	prevSpeed float64
	prevSwirl float64
}

func newJitter(env *Env) effect {
	return &jitter{noise: env.Noise.Noise3}
}

func (j *jitter) duration() float64 { return jitterDuration }

func (j *jitter) start(env *Env, now float64) {
	m := env.Model
	j.prevSpeed = m.Target.AnimationSpeed
	j.prevSwirl = m.Target.SwirlStrength
	m.Apply(settings.AnimationSpeed, math.Min(j.prevSpeed*2.6, 2.4), false)
	m.Apply(settings.SwirlStrength, math.Min(j.prevSwirl+1.4, 3), false)

	g := env.Grid
	for i := 0; i < jitterRipples; i++ {
		env.Ripples.AddRipple(transient.Ripple{
			X:        (env.Rng.Float64()*2 - 1) * g.HalfWidth * 0.6,
			Z:        (env.Rng.Float64()*2 - 1) * g.HalfDepth * 0.6,
			Start:    now + float64(i)*0.1,
			Strength: 0.6 + env.Rng.Float64()*0.4,
			Profile:  transient.ProfileTremor,
			Easing:   transient.EaseOutCubic,
			SpeedMul: 1.4,
			MaxAge:   4,
		})
	}
	j.nextBurst = 0.2
}

func (j *jitter) update(env *Env, delta, t, now float64) {
	j.t = t
	j.env = math.Sin(math.Pi * clamp01(t/jitterDuration))
	if t >= j.nextBurst && t < jitterDuration {
		g := env.Grid
		env.Ripples.AddClickBurst(
			(env.Rng.Float64()*2-1)*g.HalfWidth*0.7,
			(env.Rng.Float64()*2-1)*g.HalfDepth*0.7,
			now, 0.5+env.Rng.Float64()*0.5)
		j.nextBurst = t + 0.3 + env.Rng.Float64()*0.3
	}
}

func (j *jitter) perPoint(p Point) Contribution {
	if j.env <= 0 {
		return Contribution{}
	}
	n := j.noise(float64(p.IX)*0.9, float64(p.IY)*0.9, j.t*12)
	return Contribution{
		Height: n * 18 * j.env,
		Scale:  math.Abs(n) * 0.25 * j.env,
		Light:  n * 0.08 * j.env,
	}
}

// cleanup restores only the keys jitter changed while another effect still
// owns the profile, and the defaults once jitter is the last one out.
func (j *jitter) cleanup(env *Env, last bool) {
	if last {
		env.Model.ResetToDefaults()
		return
	}
	env.Model.Apply(settings.AnimationSpeed, j.prevSpeed, false)
	env.Model.Apply(settings.SwirlStrength, j.prevSwirl, false)
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// rampIn eases from 0 to 1 over secs.
func rampIn(t, secs float64) float64 {
	u := clamp01(t / secs)
	return u * u * (3 - 2*u)
}

package effects

import (
	"math"

	"github.com/itsjaydesu/jayfolio-sub000/noise"
	"github.com/itsjaydesu/jayfolio-sub000/settings"
)

const spiralDuration = 18.0

// spiral winds logarithmic arms around the origin, broken up with fractal
// noise. Pointer energy speeds the rotation.
type spiral struct {
	src      noise.Source
	arms     float64
	tight    float64
	rotation float64
	t        float64
	env      float64
}

func newSpiral(env *Env) effect {
	return &spiral{
		src:   env.Noise,
		arms:  float64(2 + env.Rng.Intn(3)),
		tight: 0.8 + env.Rng.Float64()*0.4,
	}
}

func (s *spiral) duration() float64 { return spiralDuration }

func (s *spiral) start(env *Env, now float64) {
	env.Model.Apply(settings.SwirlStrength, 1.8, false)
	env.Model.Apply(settings.AnimationSpeed, 0.4, false)
	env.Model.Apply(settings.Amplitude, 42, false)
}

func (s *spiral) update(env *Env, delta, t, now float64) {
	s.t = t
	s.env = rampIn(t, 2)
	s.rotation += delta * 0.25 * (1 + env.Pointer.Energy)
}

func (s *spiral) perPoint(p Point) Contribution {
	if s.env <= 0 {
		return Contribution{}
	}
	arm := math.Sin(s.arms*p.Theta + math.Log(p.Radial/180+1)*s.tight*6 - 1.4*s.t + s.rotation)
	n := noise.Fractal(s.src, p.X*0.0012, p.Z*0.0012, s.t*0.15, 3, 0.5)
	w := s.env * math.Exp(-p.Radial*0.00035)
	return Contribution{
		Height: (arm*34 + n*22) * w,
		Scale:  arm * 0.2 * w,
		Light:  math.Max(arm, 0) * 0.18 * w,
	}
}

func (s *spiral) cleanup(env *Env, _ bool) {
	env.Model.ResetToDefaults()
}

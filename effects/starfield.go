package effects

import (
	"math"

	"github.com/itsjaydesu/jayfolio-sub000/settings"
)

const (
	starfieldDuration = 22.0
	starfieldFadeIn   = 2.5
	starfieldFadeOut  = 3.0
	starfieldDensity  = 0.08 // Share of cells that become bright stars
)

type starPhase int

const (
	starsIn starPhase = iota
	starsShining
	starsOut
	starsDone
)

// starfield calms the sea and turns a scatter of cells into twinkling stars
// drifting with parallax. It fades itself in and out.
type starfield struct {
	depth     []float64
	twinkle   []float64
	speed     []float64
	intensity []float64

	phase    starPhase
	outStart float64
	level    float64
	drift    float64
	t        float64
}

func newStarfield(env *Env) effect {
	n := env.Grid.Cells()
	s := &starfield{
		depth:     make([]float64, n),
		twinkle:   make([]float64, n),
		speed:     make([]float64, n),
		intensity: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		s.depth[i] = 0.2 + env.Rng.Float64()*0.8
		s.twinkle[i] = env.Rng.Float64() * 2 * math.Pi
		s.speed[i] = 1 + env.Rng.Float64()*3
		if env.Rng.Float64() < starfieldDensity {
			s.intensity[i] = 0.6 + env.Rng.Float64()*0.4
		}
	}
	return s
}

func (s *starfield) duration() float64 { return starfieldDuration }

func (s *starfield) start(env *Env, now float64) {
	env.Model.Apply(settings.Amplitude, 18, false)
	env.Model.Apply(settings.AnimationSpeed, 0.12, false)
	env.Model.Apply(settings.Brightness, 0.3, false)
}

func (s *starfield) update(env *Env, delta, t, now float64) {
	s.t = t
	s.drift += delta * (0.15 + env.Pointer.SmoothX*0.1)
	switch s.phase {
	case starsIn:
		s.level = clamp01(t / starfieldFadeIn)
		if s.level >= 1 {
			s.phase = starsShining
		}
	case starsShining:
		s.level = 1
	case starsOut:
		s.level = 1 - (now-s.outStart)/starfieldFadeOut
		if s.level <= 0 {
			s.level = 0
			s.phase = starsDone
		}
	}
}

func (s *starfield) beginExit(now float64) {
	if s.phase < starsOut {
		s.phase = starsOut
		s.outStart = now
	}
}

func (s *starfield) done() bool {
	return s.phase == starsDone
}

func (s *starfield) perPoint(p Point) Contribution {
	if s.level <= 0 || p.Index >= len(s.depth) {
		return Contribution{}
	}
	star := s.intensity[p.Index]
	depth := s.depth[p.Index]
	tw := 0.5 + 0.5*math.Sin(s.t*s.speed[p.Index]+s.twinkle[p.Index])
	swell := math.Sin(p.Z*0.002 + s.drift*depth)
	return Contribution{
		Height: ((depth-0.5)*120 + swell*20) * s.level,
		Scale:  star * tw * 1.4 * s.level,
		Light:  (star*tw*0.9 - 0.15*(1-star)) * s.level,
	}
}

func (s *starfield) cleanup(env *Env, _ bool) {
	env.Model.ResetToDefaults()
	s.depth, s.twinkle, s.speed, s.intensity = nil, nil, nil, nil
}

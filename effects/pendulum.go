package effects

import (
	"math"

	"github.com/itsjaydesu/jayfolio-sub000/settings"
)

const (
	pendulumDuration = 20.0
	pendulumSystems  = 3
	pendulumGravity  = 9.81
	pendulumTimeMul  = 0.9 // Integration step as a fraction of frame delta
)

// doublePendulum is one chaotic two-bob system hung from an anchor on the
// ground plane.
type doublePendulum struct {
	th1, th2 float64
	w1, w2   float64
	l1, l2   float64
	m1, m2   float64

	anchorX, anchorZ float64
	scale            float64
	phase            float64

	bobX, bobZ float64 // Projected position of the outer bob
}

// accel returns the angular accelerations of both arms.
func (d *doublePendulum) accel() (a1, a2 float64) {
	g := pendulumGravity
	delta := d.th1 - d.th2
	den := 2*d.m1 + d.m2 - d.m2*math.Cos(2*delta)
	a1 = (-g*(2*d.m1+d.m2)*math.Sin(d.th1) -
		d.m2*g*math.Sin(d.th1-2*d.th2) -
		2*math.Sin(delta)*d.m2*(d.w2*d.w2*d.l2+d.w1*d.w1*d.l1*math.Cos(delta))) / (d.l1 * den)
	a2 = (2 * math.Sin(delta) *
		(d.w1*d.w1*d.l1*(d.m1+d.m2) +
			g*(d.m1+d.m2)*math.Cos(d.th1) +
			d.w2*d.w2*d.l2*d.m2*math.Cos(delta))) / (d.l2 * den)
	return a1, a2
}

// step integrates with semi-implicit Euler and reprojects the outer bob.
func (d *doublePendulum) step(h float64) {
	a1, a2 := d.accel()
	d.w1 += a1 * h
	d.w2 += a2 * h
	d.th1 += d.w1 * h
	d.th2 += d.w2 * h
	d.project()
}

func (d *doublePendulum) project() {
	x := d.l1*math.Sin(d.th1) + d.l2*math.Sin(d.th2)
	z := d.l1*math.Cos(d.th1) + d.l2*math.Cos(d.th2)
	d.bobX = d.anchorX + x*d.scale
	d.bobZ = d.anchorZ + z*d.scale
}

// pendulum drives the field with cosine waves radiating from the outer bobs
// of several double pendulums.
type pendulum struct {
	systems [pendulumSystems]doublePendulum
	t, env  float64
}

func newPendulum(env *Env) effect {
	p := &pendulum{}
	g := env.Grid
	for i := range p.systems {
		ang := float64(i) * 2 * math.Pi / pendulumSystems
		p.systems[i] = doublePendulum{
			th1:     math.Pi/2 + (env.Rng.Float64()-0.5)*1.2,
			th2:     math.Pi/2 + (env.Rng.Float64()-0.5)*2,
			l1:      1,
			l2:      0.8 + env.Rng.Float64()*0.4,
			m1:      1,
			m2:      0.8 + env.Rng.Float64()*0.4,
			anchorX: math.Cos(ang) * g.HalfWidth * 0.35,
			anchorZ: math.Sin(ang) * g.HalfDepth * 0.35,
			scale:   g.HalfWidth * 0.22,
			phase:   float64(i) * 2.1,
		}
		p.systems[i].project()
	}
	return p
}

func (p *pendulum) duration() float64 { return pendulumDuration }

func (p *pendulum) start(env *Env, now float64) {
	env.Model.Apply(settings.AnimationSpeed, 0.35, false)
	env.Model.Apply(settings.Amplitude, 30, false)
}

func (p *pendulum) update(env *Env, delta, t, now float64) {
	p.t = t
	p.env = rampIn(t, 1.5)
	h := delta * pendulumTimeMul
	for i := range p.systems {
		p.systems[i].step(h)
	}
}

func (p *pendulum) perPoint(pt Point) Contribution {
	if p.env <= 0 {
		return Contribution{}
	}
	var c Contribution
	for i := range p.systems {
		s := &p.systems[i]
		dx, dz := pt.X-s.bobX, pt.Z-s.bobZ
		d := math.Sqrt(dx*dx+dz*dz) + 1e-4
		w := math.Cos(d*0.02-p.t*3+s.phase) / (1 + d*0.004)
		c.Height += w * 28 * p.env
		c.Scale += math.Abs(w) * 0.25 * p.env
		c.Light += math.Max(w, 0) * 0.12 * p.env
	}
	return c
}

func (p *pendulum) cleanup(env *Env, _ bool) {
	env.Model.ResetToDefaults()
}

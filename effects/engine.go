package effects

import (
	"log/slog"
	"math/rand"

	"github.com/itsjaydesu/jayfolio-sub000/noise"
	"github.com/itsjaydesu/jayfolio-sub000/pointer"
	"github.com/itsjaydesu/jayfolio-sub000/settings"
	"github.com/itsjaydesu/jayfolio-sub000/transient"
)

// Grid describes the lattice effects sample.
type Grid struct {
	AmountX, AmountY     int
	Separation           float64
	HalfWidth, HalfDepth float64
}

// Cells returns the number of lattice points.
func (g Grid) Cells() int {
	return g.AmountX * g.AmountY
}

// Env is the shared state effects read and steer.
type Env struct {
	Model   *settings.Model
	Ripples *transient.Registry
	Pointer *pointer.Tracker
	Noise   noise.Source
	Rng     *rand.Rand
	Grid    Grid
}

// Point is one lattice cell handed to the per-point hook.
type Point struct {
	Index  int // ix*AmountY + iy
	IX, IY int
	X, Z   float64
	Radial float64 // Distance from the origin
	Theta  float64 // atan2(Z, X)
}

// Contribution is added to a point's height, scale and brightness.
type Contribution struct {
	Height float64
	Scale  float64
	Light  float64
}

func (c Contribution) add(o Contribution, w float64) Contribution {
	return Contribution{
		Height: c.Height + o.Height*w,
		Scale:  c.Scale + o.Scale*w,
		Light:  c.Light + o.Light*w,
	}
}

// effect is the per-kind payload. start runs once after construction,
// update once per frame with the seconds since activation, perPoint once per
// cell, cleanup once when the effect is removed. last is set when no other
// effect remains running.
//
// perPoint is called concurrently from the field's row workers and must only
// read effect state; all mutation belongs in update.
type effect interface {
	duration() float64
	start(env *Env, now float64)
	update(env *Env, delta, t, now float64)
	perPoint(p Point) Contribution
	cleanup(env *Env, last bool)
}

// exiter is implemented by effects that run their own fade-out once their
// duration elapses instead of the engine's grace fade.
type exiter interface {
	beginExit(now float64)
	done() bool
}

func newEffect(kind Kind, env *Env) effect {
	switch kind {
	case Jitter:
		return newJitter(env)
	case SpiralFlow:
		return newSpiral(env)
	case RiverFlow:
		return newRiver(env)
	case MandelbrotZoom:
		return newJulia(env)
	case ReactionDiffusionBloom:
		return newBloom(env)
	case HarmonicPendulum:
		return newPendulum(env)
	case Starfield:
		return newStarfield(env)
	default:
		return nil
	}
}

type instance struct {
	kind      Kind
	fx        effect
	started   float64
	fading    bool
	fadeStart float64
	fade      float64 // Output multiplier for this frame
}

// ChangeFunc is told when an effect starts (true, kind), begins fading
// (false, kind) and finishes fading (false, None).
type ChangeFunc func(active bool, kind Kind)

// Engine owns the running effects and their lifecycle.
type Engine struct {
	env       *Env
	fadeGrace float64
	running   []*instance
	onChange  ChangeFunc
}

// NewEngine creates an idle engine. fadeGrace is the seconds between an
// effect's expiry and its removal.
func NewEngine(env *Env, fadeGrace float64) *Engine {
	return &Engine{env: env, fadeGrace: fadeGrace}
}

// OnChange registers the effect-change callback, replacing any previous one.
func (e *Engine) OnChange(fn ChangeFunc) {
	e.onChange = fn
}

func (e *Engine) notify(active bool, kind Kind) {
	if e.onChange != nil {
		e.onChange(active, kind)
	}
}

// Activate starts kind at now. Unless combine is set and kind is combinable,
// every running effect is cleaned up first. Re-activating a running kind
// restarts it. Pending settings eases are dropped unless the new effect is
// layered over another.
func (e *Engine) Activate(kind Kind, combine bool, now float64) bool {
	if kind <= None || kind >= numKinds {
		return false
	}
	if combine && kind.Combinable() {
		e.remove(kind)
	} else {
		e.removeAll()
	}

	if len(e.running) == 0 {
		e.env.Model.SyncTargetToCurrent()
	}
	fx := newEffect(kind, e.env)
	inst := &instance{kind: kind, fx: fx, started: now, fade: 1}
	fx.start(e.env, now)
	e.running = append(e.running, inst)

	slog.Debug("effect started", "effect", kind.String(), "combine", combine, "running", len(e.running))
	e.notify(true, kind)
	return true
}

func (e *Engine) remove(kind Kind) {
	var dropped []*instance
	kept := e.running[:0]
	for _, inst := range e.running {
		if inst.kind == kind {
			dropped = append(dropped, inst)
			continue
		}
		kept = append(kept, inst)
	}
	e.running = kept
	for _, inst := range dropped {
		inst.fx.cleanup(e.env, len(e.running) == 0)
	}
}

func (e *Engine) removeAll() {
	for i, inst := range e.running {
		inst.fx.cleanup(e.env, i == len(e.running)-1)
	}
	e.running = e.running[:0]
}

// Clear removes every effect and reports the engine idle.
func (e *Engine) Clear() {
	if len(e.running) == 0 {
		return
	}
	e.removeAll()
	e.notify(false, None)
}

// Update advances running effects and their lifecycles.
func (e *Engine) Update(delta, now float64) {
	if len(e.running) == 0 {
		return
	}

	var finished []*instance
	for _, inst := range e.running {
		t := now - inst.started
		inst.fx.update(e.env, delta, t, now)

		ex, selfExit := inst.fx.(exiter)
		if !inst.fading {
			if d := inst.fx.duration(); d > 0 && t >= d {
				inst.fading = true
				inst.fadeStart = now
				if selfExit {
					ex.beginExit(now)
				}
				slog.Debug("effect fading", "effect", inst.kind.String(), "elapsed", t)
				e.notify(false, inst.kind)
			}
		}

		switch {
		case !inst.fading:
			inst.fade = 1
		case selfExit:
			inst.fade = 1
			if ex.done() {
				finished = append(finished, inst)
			}
		default:
			p := (now - inst.fadeStart) / e.fadeGrace
			if p >= 1 {
				finished = append(finished, inst)
				inst.fade = 0
				continue
			}
			inst.fade = (1 - p) * (1 - p)
		}
	}

	for _, done := range finished {
		kept := e.running[:0]
		for _, inst := range e.running {
			if inst != done {
				kept = append(kept, inst)
			}
		}
		e.running = kept
		done.fx.cleanup(e.env, len(e.running) == 0)
		slog.Debug("effect cleared", "effect", done.kind.String())
	}
	if len(finished) > 0 && len(e.running) == 0 {
		e.notify(false, None)
	}
}

// Active reports whether any effect is running or fading.
func (e *Engine) Active() bool {
	return len(e.running) > 0
}

// Running lists the kinds currently running or fading, oldest first.
func (e *Engine) Running() []Kind {
	ks := make([]Kind, len(e.running))
	for i, inst := range e.running {
		ks[i] = inst.kind
	}
	return ks
}

// Fading reports whether kind is running and past its duration.
func (e *Engine) Fading(kind Kind) bool {
	for _, inst := range e.running {
		if inst.kind == kind {
			return inst.fading
		}
	}
	return false
}

// FadeFactor returns the output multiplier of kind, 0 if it is not running.
func (e *Engine) FadeFactor(kind Kind) float64 {
	for _, inst := range e.running {
		if inst.kind == kind {
			return inst.fade
		}
	}
	return 0
}

// Sample sums the contributions of every running effect at p.
func (e *Engine) Sample(p Point) Contribution {
	var c Contribution
	for _, inst := range e.running {
		if inst.fade <= 0 {
			continue
		}
		c = c.add(inst.fx.perPoint(p), inst.fade)
	}
	return c
}

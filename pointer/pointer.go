// Package pointer tracks pointer position, velocity, energy and flow with
// frame-rate independent smoothing.
package pointer

import (
	"math"

	"github.com/itsjaydesu/jayfolio-sub000/config"
)

const (
	minMoveDT       = 1.0 / 240 // Floor for the finite-difference time step
	moveEnergyGain  = 0.35      // Energy per unit of normalized travel
	speedEnergyGain = 0.015     // Energy per unit of normalized speed
	flowThreshold   = 0.05      // Speed below which flow is considered idle
	idleVelocity    = 0.9       // Per-frame velocity damping without input
)

// Tracker holds pointer state. Targets are written by input handlers;
// smoothed values advance once per frame.
type Tracker struct {
	cfg       config.InteractionConfig
	smoothing float64
	flowRate  float64

	// Normalized screen position in [-1, 1] and its smoothed follower
	X, Y             float64
	SmoothX, SmoothY float64

	// World-space projection on the Y=0 plane and its smoothed follower
	WorldX, WorldZ             float64
	SmoothWorldX, SmoothWorldZ float64

	// Velocity in normalized units per second
	VelX, VelY float64

	Energy       float64
	FlowAngle    float64
	FlowStrength float64

	lastMove    float64
	hasMoved    bool
	movedFrame  bool
	lastTrigger float64
	triggered   bool
}

// New creates a tracker at rest in the center.
func New(cfg *config.Config) *Tracker {
	return &Tracker{
		cfg:       cfg.Interaction,
		smoothing: cfg.Easing.PointerSmoothing,
		flowRate:  cfg.Easing.FlowSmoothing,
	}
}

// Move records a pointer move to normalized (nx, ny) and world (wx, wz) at time now.
func (t *Tracker) Move(nx, ny, wx, wz, now float64) {
	dx := nx - t.X
	dy := ny - t.Y

	if t.hasMoved {
		dt := math.Max(now-t.lastMove, minMoveDT)
		lerp := t.cfg.VelocityLerp
		t.VelX += (dx/dt - t.VelX) * lerp
		t.VelY += (dy/dt - t.VelY) * lerp
	}

	t.X, t.Y = nx, ny
	t.WorldX, t.WorldZ = wx, wz
	t.lastMove = now
	t.hasMoved = true
	t.movedFrame = true

	// Passive movement never pushes energy past the passive ceiling, but
	// leaves a higher click-boosted value alone.
	speed := math.Hypot(t.VelX, t.VelY)
	gain := (math.Abs(dx)+math.Abs(dy))*moveEnergyGain + speed*speedEnergyGain
	target := math.Min(t.Energy+gain, t.cfg.PassiveEnergyMax)
	if target > t.Energy {
		t.Energy += (target - t.Energy) * 0.5
	}
}

// Down registers a click trigger at time now. It returns false when the
// trigger falls within the debounce window of the last accepted one.
func (t *Tracker) Down(wx, wz, now float64) bool {
	if t.triggered && now-t.lastTrigger <= t.cfg.Debounce {
		return false
	}
	t.triggered = true
	t.lastTrigger = now
	t.WorldX, t.WorldZ = wx, wz

	target := math.Min(t.Energy+t.cfg.ClickEnergyBoost, t.cfg.ClickEnergyMax)
	t.Energy += (target - t.Energy) * t.cfg.ClickEnergyLerp
	return true
}

// Leave recenters the targets and damps velocity. Smoothed values glide
// back over the following frames.
func (t *Tracker) Leave() {
	t.X, t.Y = 0, 0
	t.WorldX, t.WorldZ = 0, 0
	t.VelX *= t.cfg.LeaveDamping
	t.VelY *= t.cfg.LeaveDamping
}

// Smooth moves the smoothed position toward the targets.
func (t *Tracker) Smooth(delta float64) {
	a := alpha(t.smoothing, delta)
	t.SmoothX += (t.X - t.SmoothX) * a
	t.SmoothY += (t.Y - t.SmoothY) * a
	t.SmoothWorldX += (t.WorldX - t.SmoothWorldX) * a
	t.SmoothWorldZ += (t.WorldZ - t.SmoothWorldZ) * a
}

// UpdateFlow derives flow direction and strength from velocity.
func (t *Tracker) UpdateFlow(delta float64) {
	speed := math.Hypot(t.VelX, t.VelY)
	if t.movedFrame && speed > flowThreshold {
		a := alpha(t.flowRate, delta)
		target := math.Atan2(t.VelY, t.VelX)
		t.FlowAngle = wrapAngle(t.FlowAngle + wrapAngle(target-t.FlowAngle)*a)
		t.FlowStrength += (math.Min(speed*0.5, 1) - t.FlowStrength) * a
	} else {
		t.FlowStrength *= t.cfg.FlowDecay
		t.VelX *= idleVelocity
		t.VelY *= idleVelocity
	}
	t.movedFrame = false
}

// DecayEnergy applies the per-frame geometric energy decay.
func (t *Tracker) DecayEnergy() {
	t.Energy = math.Max(t.Energy*t.cfg.EnergyDecay-t.cfg.EnergyDrain, 0)
}

// Step runs Smooth, UpdateFlow and DecayEnergy in frame order.
func (t *Tracker) Step(delta float64) {
	t.Smooth(delta)
	t.UpdateFlow(delta)
	t.DecayEnergy()
}

// alpha converts a smoothing rate and a frame delta into a lerp factor.
func alpha(rate, delta float64) float64 {
	if delta <= 0 {
		return 0
	}
	return 1 - math.Exp(-rate*delta)
}

// wrapAngle maps a to (-π, π].
func wrapAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

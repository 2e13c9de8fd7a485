package scene

import (
	"log/slog"

	"github.com/itsjaydesu/jayfolio-sub000/effects"
	"github.com/itsjaydesu/jayfolio-sub000/settings"
	"github.com/itsjaydesu/jayfolio-sub000/transient"
)

// AddRipple starts a standard ripple at world (x, z) now. A zero strength
// adds a ripple that displaces nothing.
func (s *Simulation) AddRipple(x, z, strength float64) {
	s.addRipple(x, z, strength, 0, transient.ProfileStandard)
}

func (s *Simulation) addRipple(x, z, strength, delay float64, p transient.Profile) {
	if s.closed {
		return
	}
	s.ripples.AddRipple(transient.Ripple{
		X:        x,
		Z:        z,
		Start:    s.clock + delay,
		Strength: strength,
		Profile:  p,
	})
	if s.collector != nil {
		s.collector.RecordRipple()
	}
}

// ApplySettings sets the targets in p. With immediate the current values
// snap too.
func (s *Simulation) ApplySettings(p settings.Partial, immediate bool) {
	if s.closed {
		return
	}
	s.model.ApplyPartial(p, immediate)
}

// ResetToDefaults eases every parameter back to the bootstrap base.
func (s *Simulation) ResetToDefaults() {
	if s.closed {
		return
	}
	s.model.ResetToDefaults()
}

// TriggerEffect starts the named timed effect. Unknown names are logged and
// change nothing.
func (s *Simulation) TriggerEffect(name string, combine bool) bool {
	if s.closed {
		return false
	}
	kind, ok := effects.ParseKind(name)
	if !ok {
		slog.Warn("unknown effect", "effect", name)
		return false
	}
	return s.effects.Activate(kind, combine, s.clock)
}

// ClearEffects stops every running effect immediately.
func (s *Simulation) ClearEffects() {
	if s.closed {
		return
	}
	s.effects.Clear()
}

// OnEffectChange registers the effect lifecycle callback.
func (s *Simulation) OnEffectChange(fn EffectChangeFunc) {
	if s.closed {
		return
	}
	s.onEffect = fn
}

// SetControlsVisible shows or hides the parameter panel.
func (s *Simulation) SetControlsVisible(visible bool) {
	if s.closed {
		return
	}
	s.controlsVisible = visible
}

// ControlsVisible reports whether the parameter panel is shown.
func (s *Simulation) ControlsVisible() bool {
	return !s.closed && s.controlsVisible
}

// ApplyMenuInfluence eases toward the overlay for section. Unknown sections
// change nothing.
func (s *Simulation) ApplyMenuInfluence(section string) {
	if s.closed {
		return
	}
	keys := s.model.ApplyInfluence(section)
	slog.Debug("menu influence", "section", section, "keys", len(keys))
}

// SetPaused stops or resumes simulation.
func (s *Simulation) SetPaused(paused bool) {
	if s.closed {
		return
	}
	s.paused = paused
}

// Paused reports whether simulation is stopped.
func (s *Simulation) Paused() bool {
	return s.paused
}

// Resize updates the camera and surface for a new viewport size.
func (s *Simulation) Resize(w, h int) {
	if s.closed || w <= 0 || h <= 0 {
		return
	}
	wasMobile := s.camera.Mobile()
	s.camera.Resize(float64(w), float64(h))
	if s.surfaceReady {
		s.surface.Resize(w, h)
	}
	if wasMobile != s.camera.Mobile() {
		slog.Debug("camera profile changed", "mobile", s.camera.Mobile(), "width", w)
	}
}

// SetDeviceRatio records the display's pixel density. It takes effect after
// the first frame has been drawn.
func (s *Simulation) SetDeviceRatio(r float64) {
	if r > 0 {
		s.deviceRatio = r
	}
}

// PointerMove handles a pointer move to screen pixel (sx, sy).
func (s *Simulation) PointerMove(sx, sy float64) {
	if s.closed {
		return
	}
	nx, ny := s.camera.Normalize(sx, sy)
	wx, wz := s.camera.GroundHit(nx, ny)
	s.pointer.Move(nx, ny, wx, wz, s.clock)
}

// PointerMoveWorld handles a pointer move reported directly on the ground
// plane, as top-down hosts do. The normalized position is derived from the
// lattice extent.
func (s *Simulation) PointerMoveWorld(wx, wz float64) {
	if s.closed {
		return
	}
	nx := clampUnit(wx / s.grid.HalfWidth)
	ny := clampUnit(-wz / s.grid.HalfDepth)
	s.pointer.Move(nx, ny, wx, wz, s.clock)
}

// PointerDownWorld handles a primary press on the ground plane. It reports
// whether the press passed the debounce.
func (s *Simulation) PointerDownWorld(wx, wz float64) bool {
	if s.closed {
		return false
	}
	return s.pointerDownWorld(wx, wz)
}

// PointerDown handles a primary press at screen pixel (sx, sy).
func (s *Simulation) PointerDown(sx, sy float64) {
	if s.closed {
		return
	}
	s.pointerDownWorld(s.camera.GroundHit(s.camera.Normalize(sx, sy)))
}

// pointerDownWorld spawns a droplet burst and click flash at a world point
// unless the trigger is debounced.
func (s *Simulation) pointerDownWorld(wx, wz float64) bool {
	ok := s.pointer.Down(wx, wz, s.clock)
	if s.collector != nil {
		s.collector.RecordClick(ok)
	}
	if !ok {
		return false
	}
	s.ripples.DropletBurst(wx, wz, s.clock, 1)
	s.ripples.AddClickBurst(wx, wz, s.clock, 1)
	return true
}

// ContextMenu handles a secondary press at screen pixel (sx, sy). It shares
// the click debounce and drops layered slow-motion rings with a trailing
// shimmer.
func (s *Simulation) ContextMenu(sx, sy float64) {
	if s.closed {
		return
	}
	wx, wz := s.camera.GroundHit(s.camera.Normalize(sx, sy))
	ok := s.pointer.Down(wx, wz, s.clock)
	if s.collector != nil {
		s.collector.RecordClick(ok)
	}
	if !ok {
		return
	}
	for _, l := range slowBurst {
		s.ripples.AddRipple(transient.Ripple{
			X:          wx,
			Z:          wz,
			Start:      s.clock + l.delay,
			Strength:   l.strength,
			Profile:    l.profile,
			Easing:     l.easing,
			WidthMul:   l.width,
			SlowMotion: true,
		})
	}
	s.ripples.AddShimmer(wx, wz, s.clock, 0.15, 0.8)
}

// slowBurst is the layered slow-motion ring set dropped by ContextMenu.
var slowBurst = []struct {
	profile  transient.Profile
	easing   transient.Easing
	strength float64
	delay    float64
	width    float64
}{
	{transient.ProfilePrimary, transient.EaseOutQuint, 1.2, 0, 1},
	{transient.ProfileHarmonic, transient.EaseInOutSine, 0.8, 0.12, 1.3},
	{transient.ProfileEcho, transient.EaseInOutQuart, 0.6, 0.3, 1.6},
}

// PointerLeave recenters the pointer target.
func (s *Simulation) PointerLeave() {
	if s.closed {
		return
	}
	s.pointer.Leave()
}

// Randomize applies random values to every unlocked parameter and returns
// what was applied.
func (s *Simulation) Randomize() settings.Partial {
	if s.closed {
		return nil
	}
	p := s.model.Randomize(s.rng)
	s.model.ApplyPartial(p, false)
	return p
}

// TargetSettings returns the values parameters are easing toward.
func (s *Simulation) TargetSettings() settings.Settings {
	return s.model.Target
}

// CurrentSettings returns the values in effect this frame.
func (s *Simulation) CurrentSettings() settings.Settings {
	return s.model.Current
}

// SetLocked fixes or frees k against influences and randomizing.
func (s *Simulation) SetLocked(k settings.Key, locked bool) {
	if s.closed {
		return
	}
	s.model.SetLocked(k, locked)
}

// Locked reports whether k is fixed.
func (s *Simulation) Locked(k settings.Key) bool {
	return s.model.Locked(k)
}

// Export returns the shareable settings snapshot.
func (s *Simulation) Export() settings.Export {
	return s.model.Export()
}

func clampUnit(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}

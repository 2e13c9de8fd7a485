package scene

import (
	"math"

	"github.com/itsjaydesu/jayfolio-sub000/settings"
	"github.com/itsjaydesu/jayfolio-sub000/transient"
)

// Preset names accepted by ApplyFieldEffect besides the timed effects.
const (
	PresetCalmReset  = "calmReset"
	PresetSwirlPulse = "swirlPulse"
	PresetDropBall   = "dropBall"
	PresetShockwave  = "shockwave"
)

// Presets lists the host presets in menu order.
func Presets() []string {
	return []string{PresetCalmReset, PresetSwirlPulse, PresetDropBall, PresetShockwave}
}

var swirlPulse = settings.Partial{
	settings.SwirlStrength:  2.5,
	settings.SwirlFrequency: 0.008,
	settings.AnimationSpeed: 1.8,
	settings.Amplitude:      60,
}

// ApplyFieldEffect runs a host preset or, failing that, starts the timed
// effect of that name exclusively.
func (s *Simulation) ApplyFieldEffect(name string) bool {
	if s.closed {
		return false
	}
	switch name {
	case PresetCalmReset:
		s.ResetToDefaults()
		s.addRipple(0, 0, 0.6, 0, transient.ProfileSwell)
	case PresetSwirlPulse:
		s.ApplySettings(swirlPulse, false)
	case PresetDropBall:
		s.dropBall()
	case PresetShockwave:
		s.shockwave()
	default:
		return s.TriggerEffect(name, false)
	}
	return true
}

// dropBall is a heavy drop at the origin followed by two rings of bounces
// and a scatter of glinting splashes.
func (s *Simulation) dropBall() {
	s.addRipple(0, 0, 3, 0, transient.ProfileStandard)

	for i := 0; i < 6; i++ {
		a := float64(i) * 2 * math.Pi / 6
		s.addRipple(math.Cos(a)*800, math.Sin(a)*800, 1.5, 0.2, transient.ProfileSecondary)
	}
	for i := 0; i < 8; i++ {
		a := float64(i)*2*math.Pi/8 + math.Pi/8
		s.addRipple(math.Cos(a)*1400, math.Sin(a)*1400, 0.8, 0.4, transient.ProfileSecondary)
	}
	for i := 0; i < 5; i++ {
		a := s.rng.Float64() * 2 * math.Pi
		d := 600 + s.rng.Float64()*1000
		s.addRipple(math.Cos(a)*d, math.Sin(a)*d, 0.5+s.rng.Float64()*0.5, 0.6, transient.ProfileGlint)
	}
}

// shockwave is a central blast, three spiral arms of weakening ripples
// winding outward, and random aftershocks.
func (s *Simulation) shockwave() {
	const (
		arms  = 3
		loops = 2
		steps = 5
	)
	s.addRipple(0, 0, 4, 0, transient.ProfileStandard)

	delay := 0.0
	for loop := 0; loop < loops; loop++ {
		for arm := 0; arm < arms; arm++ {
			for step := 0; step < steps; step++ {
				delay += 0.03
				progress := float64(loop*steps+step) / (loops * steps)
				a := float64(arm)*2*math.Pi/arms + progress*2*math.Pi
				d := 500 + progress*2000
				s.addRipple(math.Cos(a)*d, math.Sin(a)*d, math.Max(3-progress*2, 0.5), delay, transient.ProfileStandard)
			}
		}
	}

	for i := 0; i < 8; i++ {
		a := s.rng.Float64() * 2 * math.Pi
		d := 1000 + s.rng.Float64()*1500
		s.addRipple(math.Cos(a)*d, math.Sin(a)*d, s.rng.Float64()*1.5+0.5, 0.6+float64(i)*0.1, transient.ProfileStandard)
	}
}

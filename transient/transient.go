// Package transient keeps the short-lived, spatially local events layered
// onto the base field: ripples, click bursts and shimmer waves.
package transient

import (
	"math"
	"math/rand"

	"github.com/itsjaydesu/jayfolio-sub000/config"
	"github.com/itsjaydesu/jayfolio-sub000/settings"
)

const (
	epsilon       = 1e-4
	slowMotionMax = 32.0 // Longest lifetime a slow-motion ripple may have
	burstSpeed    = 420.0
	burstWidth    = 60.0
	burstRings    = 3
	shimmerSpeed  = 180.0
	shimmerBand   = 260.0
	heightToScale = 0.35
	heightToLight = 0.25
)

// Ripple is a ring wavefront expanding from (X, Z).
type Ripple struct {
	X, Z     float64
	Start    float64 // May lie in the future for scheduled cascades
	Strength float64 // Multiplier on the rippleStrength parameter
	Easing   Easing
	Profile  Profile

	SpeedMul float64
	WidthMul float64
	DecayMul float64
	FreqMul  float64

	MaxAge     float64 // Zero uses the configured default
	SlowMotion bool    // Quarter speed, lifetime stretched up to 32s

	Seq uint64 // Insertion order, assigned by the registry
}

// ClickBurst is an instant multi-ring flash at a click point.
type ClickBurst struct {
	X, Z      float64
	Start     float64
	Intensity float64
	Phase     float64
}

// ShimmerWave is a travelling oscillatory glint.
type ShimmerWave struct {
	X, Z      float64
	Start     float64
	Intensity float64
	Frequency float64
	Phase     float64
}

// Contribution is the additive effect of transients on one grid point.
type Contribution struct {
	Height float64
	Scale  float64
	Light  float64
}

// rippleSummary holds the per-frame invariants of one active ripple.
type rippleSummary struct {
	x, z      float64
	wavefront float64
	invWidth  float64
	decay     float64
	amp       float64 // strength * ageDecay
	freq      float64
	profile   Profile
	innerSq   float64
	outerSq   float64
}

type burstSummary struct {
	x, z    float64
	radius  float64
	amp     float64
	phase   float64
	outerSq float64
}

type shimmerSummary struct {
	x, z    float64
	front   float64
	amp     float64
	age     float64
	freq    float64
	phase   float64
	outerSq float64
}

// Registry owns the bounded transient collections.
type Registry struct {
	cfg config.TransientConfig
	rng *rand.Rand

	ripples  []Ripple
	bursts   []ClickBurst
	shimmers []ShimmerWave
	nextSeq  uint64

	rippleStrength float64
	activeRipples  []rippleSummary
	activeBursts   []burstSummary
	activeShimmers []shimmerSummary
}

// NewRegistry creates an empty registry.
func NewRegistry(cfg *config.Config, rng *rand.Rand) *Registry {
	tc := cfg.Transient
	return &Registry{
		cfg:      tc,
		rng:      rng,
		ripples:  make([]Ripple, 0, tc.MaxRipples),
		bursts:   make([]ClickBurst, 0, tc.MaxBursts),
		shimmers: make([]ShimmerWave, 0, tc.MaxShimmers),
	}
}

// AddRipple inserts rp, filling unset multipliers, and evicts the oldest
// ripples beyond the cap. Strength is taken as given. It returns the assigned
// sequence number.
func (r *Registry) AddRipple(rp Ripple) uint64 {
	if rp.SpeedMul == 0 {
		rp.SpeedMul = 1
	}
	if rp.WidthMul == 0 {
		rp.WidthMul = 1
	}
	if rp.DecayMul == 0 {
		rp.DecayMul = 1
	}
	if rp.FreqMul == 0 {
		rp.FreqMul = 1
	}
	if rp.MaxAge <= 0 {
		rp.MaxAge = r.cfg.RippleMaxAge
	}
	if rp.SlowMotion {
		rp.MaxAge = math.Min(rp.MaxAge*4, slowMotionMax)
	}
	r.nextSeq++
	rp.Seq = r.nextSeq

	r.ripples = append(r.ripples, rp)
	if over := len(r.ripples) - r.cfg.MaxRipples; over > 0 {
		n := copy(r.ripples, r.ripples[over:])
		r.ripples = r.ripples[:n]
	}
	return rp.Seq
}

// AddClickBurst inserts a burst, evicting the oldest beyond the cap.
func (r *Registry) AddClickBurst(x, z, now, intensity float64) {
	r.bursts = append(r.bursts, ClickBurst{
		X: x, Z: z, Start: now, Intensity: intensity,
		Phase: r.rng.Float64() * 2 * math.Pi,
	})
	if over := len(r.bursts) - r.cfg.MaxBursts; over > 0 {
		n := copy(r.bursts, r.bursts[over:])
		r.bursts = r.bursts[:n]
	}
}

// AddShimmer inserts a shimmer starting after delay seconds.
func (r *Registry) AddShimmer(x, z, now, delay, intensity float64) {
	r.shimmers = append(r.shimmers, ShimmerWave{
		X: x, Z: z, Start: now + delay, Intensity: intensity,
		Frequency: 0.012 + r.rng.Float64()*0.018,
		Phase:     r.rng.Float64() * 2 * math.Pi,
	})
	if over := len(r.shimmers) - r.cfg.MaxShimmers; over > 0 {
		n := copy(r.shimmers, r.shimmers[over:])
		r.shimmers = r.shimmers[:n]
	}
}

// DropletBurst schedules the layered ripple set of a droplet impact at
// (x, z): flash, leading front, inner trough, caustic glints and three
// delayed trailing waves.
func (r *Registry) DropletBurst(x, z, now, strength float64) {
	r.AddRipple(Ripple{X: x, Z: z, Start: now, Strength: strength * 0.9,
		Profile: ProfileDropletFlash, Easing: EaseOutExpo, SpeedMul: 0.2, WidthMul: 2.2, MaxAge: 1.6})
	r.AddRipple(Ripple{X: x, Z: z, Start: now, Strength: strength * 1.2,
		Profile: ProfileDropletFront, Easing: EaseOutCubic, SpeedMul: 1.15, WidthMul: 0.8})
	r.AddRipple(Ripple{X: x, Z: z, Start: now, Strength: strength * 0.8,
		Profile: ProfileDropletInner, Easing: EaseOutQuart, SpeedMul: 0.95, WidthMul: 1.1, DecayMul: 1.2})
	r.AddRipple(Ripple{X: x, Z: z, Start: now, Strength: strength * 0.6,
		Profile: ProfileDropletCaustic, Easing: EaseInOutSine, SpeedMul: 1.05, FreqMul: 1.3, MaxAge: 6})
	for i := 1; i <= 3; i++ {
		f := float64(i)
		r.AddRipple(Ripple{X: x, Z: z, Start: now + 0.18*f, Strength: strength * (0.55 - 0.12*f),
			Profile: ProfileDropletTrail, Easing: EaseOutQuint, SpeedMul: 0.85 - 0.08*f, FreqMul: 1 + 0.15*f})
	}
}

// Ripples returns a copy of the stored ripples, oldest first.
func (r *Registry) Ripples() []Ripple {
	out := make([]Ripple, len(r.ripples))
	copy(out, r.ripples)
	return out
}

// Counts returns the stored ripple, burst and shimmer counts.
func (r *Registry) Counts() (ripples, bursts, shimmers int) {
	return len(r.ripples), len(r.bursts), len(r.shimmers)
}

// ActiveRipples returns how many ripples contributed in the last Prepare.
func (r *Registry) ActiveRipples() int {
	return len(r.activeRipples)
}

// Clear drops every transient.
func (r *Registry) Clear() {
	r.ripples = r.ripples[:0]
	r.bursts = r.bursts[:0]
	r.shimmers = r.shimmers[:0]
	r.activeRipples = r.activeRipples[:0]
	r.activeBursts = r.activeBursts[:0]
	r.activeShimmers = r.activeShimmers[:0]
}

// AgeDecay returns 1 - eased(age/maxAge) for rp at time now.
func AgeDecay(rp Ripple, now float64) float64 {
	age := now - rp.Start
	if age <= 0 {
		return 1
	}
	return 1 - rp.Easing.Apply(age/rp.MaxAge)
}

// Prepare purges expired records and builds the per-frame summaries Sample reads.
func (r *Registry) Prepare(now float64, s *settings.Settings) {
	r.rippleStrength = s.RippleStrength
	r.prepareRipples(now, s)
	r.prepareBursts(now)
	r.prepareShimmers(now)
}

func (r *Registry) prepareRipples(now float64, s *settings.Settings) {
	r.activeRipples = r.activeRipples[:0]
	kept := r.ripples[:0]
	for _, rp := range r.ripples {
		age := now - rp.Start
		if age >= rp.MaxAge {
			continue
		}
		kept = append(kept, rp)
		if age < 0 {
			continue
		}

		speed := s.RippleSpeed * rp.SpeedMul
		if rp.SlowMotion {
			speed *= 0.25
		}
		width := math.Max(s.RippleWidth*rp.WidthMul, 1)
		wavefront := age * speed
		behind, ahead := rp.Profile.reach()
		outer := wavefront + ahead*width
		inner := math.Max(wavefront-behind*width, 0)

		r.activeRipples = append(r.activeRipples, rippleSummary{
			x:         rp.X,
			z:         rp.Z,
			wavefront: wavefront,
			invWidth:  1 / width,
			decay:     s.RippleDecay * rp.DecayMul,
			amp:       rp.Strength * (1 - rp.Easing.Apply(age/rp.MaxAge)),
			freq:      rp.FreqMul,
			profile:   rp.Profile,
			innerSq:   inner * inner,
			outerSq:   outer * outer,
		})
	}
	r.ripples = kept
}

func (r *Registry) prepareBursts(now float64) {
	r.activeBursts = r.activeBursts[:0]
	kept := r.bursts[:0]
	for _, b := range r.bursts {
		age := now - b.Start
		if age >= r.cfg.BurstMaxAge {
			continue
		}
		kept = append(kept, b)
		if age < 0 {
			continue
		}
		fade := 1 - age/r.cfg.BurstMaxAge
		radius := age * burstSpeed
		outer := radius + 4*burstWidth
		r.activeBursts = append(r.activeBursts, burstSummary{
			x: b.X, z: b.Z,
			radius:  radius,
			amp:     b.Intensity * fade * fade,
			phase:   b.Phase,
			outerSq: outer * outer,
		})
	}
	r.bursts = kept
}

func (r *Registry) prepareShimmers(now float64) {
	r.activeShimmers = r.activeShimmers[:0]
	kept := r.shimmers[:0]
	for _, sw := range r.shimmers {
		age := now - sw.Start
		if age >= r.cfg.ShimmerMaxAge {
			continue
		}
		kept = append(kept, sw)
		if age < 0 {
			continue
		}
		front := age * shimmerSpeed
		outer := front + 3*shimmerBand
		r.activeShimmers = append(r.activeShimmers, shimmerSummary{
			x: sw.X, z: sw.Z,
			front:   front,
			amp:     sw.Intensity * math.Sin(math.Pi*age/r.cfg.ShimmerMaxAge),
			age:     age,
			freq:    sw.Frequency,
			phase:   sw.Phase,
			outerSq: outer * outer,
		})
	}
	r.shimmers = kept
}

// Sample accumulates every active transient at grid point (px, pz).
func (r *Registry) Sample(px, pz float64) Contribution {
	var c Contribution

	for i := range r.activeBursts {
		b := &r.activeBursts[i]
		dx, dz := px-b.x, pz-b.z
		dSq := dx*dx + dz*dz
		if dSq > b.outerSq {
			continue
		}
		dist := math.Sqrt(dSq) + epsilon
		ring := 0.0
		weight := 1.0
		for k := 0; k < burstRings; k++ {
			rk := b.radius * (1 - 0.22*float64(k))
			ring += gauss(dist-rk, burstWidth) * weight * math.Cos(b.phase+float64(k))
			weight *= 0.6
		}
		c.Height += ring * b.amp * 40
		c.Scale += math.Abs(ring) * b.amp * 0.4
		c.Light += math.Abs(ring) * b.amp * 0.5
	}

	for i := range r.activeShimmers {
		sw := &r.activeShimmers[i]
		dx, dz := px-sw.x, pz-sw.z
		dSq := dx*dx + dz*dz
		if dSq > sw.outerSq {
			continue
		}
		dist := math.Sqrt(dSq) + epsilon
		band := gauss(dist-sw.front, shimmerBand)
		glint := math.Sin(dist*sw.freq-sw.age*6+sw.phase) * band * sw.amp
		c.Height += glint * 6
		c.Scale += math.Abs(glint) * 0.15
		c.Light += math.Max(glint, 0) * 0.35
	}

	for i := range r.activeRipples {
		rs := &r.activeRipples[i]
		dx, dz := px-rs.x, pz-rs.z
		dSq := dx*dx + dz*dz
		if dSq > rs.outerSq || dSq < rs.innerSq {
			continue
		}
		dist := math.Sqrt(dSq) + epsilon
		u := (dist - rs.wavefront) * rs.invWidth
		w := rs.profile.eval(u, rs.freq)
		amp := rs.amp * math.Exp(-dist*rs.decay)
		c.Height += w.h * amp * r.rippleStrength
		c.Scale += w.s * amp * heightToScale
		c.Light += w.l * amp * heightToLight
	}

	return c
}

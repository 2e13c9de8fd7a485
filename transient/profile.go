package transient

import "math"

// Profile selects the spatial shape a ripple draws around its wavefront.
type Profile int

const (
	ProfileStandard Profile = iota
	ProfilePrimary
	ProfileHarmonic
	ProfileSecondary
	ProfileEcho
	ProfileDropletFlash
	ProfileDropletFront
	ProfileDropletInner
	ProfileDropletTrail
	ProfileDropletCaustic
	ProfileShockwave
	ProfileSwell
	ProfileTremor
	ProfileGlint
	ProfileSeismic

	numProfiles
)

var profileNames = [numProfiles]string{
	ProfileStandard:       "standard",
	ProfilePrimary:        "primary",
	ProfileHarmonic:       "harmonic",
	ProfileSecondary:      "secondary",
	ProfileEcho:           "echo",
	ProfileDropletFlash:   "droplet_flash",
	ProfileDropletFront:   "droplet_front",
	ProfileDropletInner:   "droplet_inner",
	ProfileDropletTrail:   "droplet_trail",
	ProfileDropletCaustic: "droplet_caustic",
	ProfileShockwave:      "shockwave",
	ProfileSwell:          "swell",
	ProfileTremor:         "tremor",
	ProfileGlint:          "glint",
	ProfileSeismic:        "seismic",
}

// String returns the profile name.
func (p Profile) String() string {
	if p < 0 || p >= numProfiles {
		return "standard"
	}
	return profileNames[p]
}

// reach is how many widths from the wavefront a profile can contribute,
// behind (inside) and ahead (outside) of it.
func (p Profile) reach() (behind, ahead float64) {
	switch p {
	case ProfileStandard, ProfileEcho:
		return 10, 10
	case ProfileHarmonic:
		return 8, 8
	case ProfileSwell:
		return 8, 8
	case ProfileDropletTrail:
		return 12, 0.5
	case ProfileShockwave:
		return 5, 1.5
	case ProfileSeismic:
		return 9, 9
	default:
		return 6, 4
	}
}

// wave is the per-unit-strength contribution of a profile.
type wave struct {
	h, s, l float64
}

// eval returns the contribution at u, the signed distance from the
// wavefront in widths (negative is inside the ring).
func (p Profile) eval(u, freq float64) wave {
	switch p {
	case ProfilePrimary:
		crest := gauss(u, 0.8)
		return wave{
			h: crest + math.Sin(u*1.6*freq)*math.Exp(-math.Abs(u)*0.4)*0.5,
			s: crest * 0.6,
			l: gauss(u, 0.7) * 0.5,
		}
	case ProfileHarmonic:
		env := gauss(u, 2.5)
		h := (math.Sin(u*freq) + math.Sin(2*u*freq)*0.5 + math.Sin(3*u*freq)*0.25) * env * 0.7
		return wave{h: h, s: math.Abs(h) * 0.3, l: math.Max(h, 0) * 0.25}
	case ProfileSecondary:
		h := gauss(u-1.5, 1.1)*0.6 - gauss(u+1, 0.9)*0.3
		return wave{h: h, s: math.Max(h, 0) * 0.4, l: math.Max(h, 0) * 0.2}
	case ProfileEcho:
		h := math.Sin(u*0.8*freq) * gauss(u, 3.5) * 0.45
		return wave{h: h, l: math.Max(h, 0) * 0.15}
	case ProfileDropletFlash:
		flash := gauss(u, 0.6)
		return wave{h: flash * 0.4, s: flash * 0.9, l: flash * 1.2}
	case ProfileDropletFront:
		crest := gauss(u, 0.5)
		return wave{
			h: crest*1.2 - gauss(u+1.2, 0.6)*0.5,
			s: crest * 0.8,
			l: gauss(u, 0.45) * 0.7,
		}
	case ProfileDropletInner:
		h := -gauss(u+0.8, 0.7)*0.6 + gauss(u+2.2, 0.9)*0.35
		return wave{h: h, s: math.Max(h, 0) * 0.3, l: math.Max(-h, 0) * 0.1}
	case ProfileDropletTrail:
		if u > 0 {
			return wave{}
		}
		h := math.Sin(u*2.2*freq) * math.Exp(u*0.35) * 0.5
		return wave{h: h, s: math.Abs(h) * 0.2, l: math.Max(h, 0) * 0.2}
	case ProfileDropletCaustic:
		env := gauss(u, 1.6)
		l := (0.5 + 0.5*math.Cos(u*3*freq)) * env * 0.6
		return wave{h: l * 0.15, s: l * 0.5, l: l}
	case ProfileShockwave:
		var h float64
		if u < 0 {
			h = math.Exp(u*1.5) * 1.4
		} else {
			h = math.Exp(-u*6) * 1.4
		}
		return wave{h: h, s: h * 0.4, l: h * 0.45}
	case ProfileSwell:
		h := gauss(u, 2.5) * 0.8
		return wave{h: h, s: h * 0.2, l: h * 0.1}
	case ProfileTremor:
		h := math.Sin(u*5*freq) * gauss(u, 1.5) * 0.4
		return wave{h: h, s: math.Abs(h) * 0.5, l: math.Abs(h) * 0.2}
	case ProfileGlint:
		g := gauss(u, 0.35)
		return wave{h: g * 0.05, s: g * 0.4, l: g}
	case ProfileSeismic:
		env := gauss(u, 3)
		h := (math.Sin(u*1.2*freq) + math.Sin(u*1.9*freq+0.7)*0.6) * env * 0.55
		return wave{h: h, s: math.Abs(h) * 0.25, l: math.Max(h, 0) * 0.2}
	default:
		h := math.Sin(u*freq) * gauss(u, 3) * 0.65
		return wave{h: h, l: math.Max(h, 0) * 0.1}
	}
}

// gauss is an unnormalized Gaussian bump with peak 1 at x=0.
func gauss(x, sigma float64) float64 {
	return math.Exp(-x * x / (2 * sigma * sigma))
}

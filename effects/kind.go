// Package effects runs the timed, named animation modes layered on the field.
package effects

// Kind names a timed effect.
type Kind int

const (
	None Kind = iota
	Jitter
	SpiralFlow
	RiverFlow
	MandelbrotZoom
	ReactionDiffusionBloom
	HarmonicPendulum
	Starfield

	numKinds
)

var kindNames = [numKinds]string{
	None:                   "",
	Jitter:                 "jitter",
	SpiralFlow:             "spiralFlow",
	RiverFlow:              "riverFlow",
	MandelbrotZoom:         "mandelbrotZoom",
	ReactionDiffusionBloom: "reactionDiffusionBloom",
	HarmonicPendulum:       "harmonicPendulum",
	Starfield:              "starfield",
}

// Labels shown on host controls.
var kindLabels = [numKinds]string{
	Jitter:                 "Jitter",
	SpiralFlow:             "Spiral",
	RiverFlow:              "Quake",
	MandelbrotZoom:         "Hop",
	ReactionDiffusionBloom: "Bloom",
	HarmonicPendulum:       "Blink",
	Starfield:              "Stars",
}

// String returns the wire name of the kind, empty for None.
func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return ""
	}
	return kindNames[k]
}

// Label returns a short display name.
func (k Kind) Label() string {
	if k < 0 || k >= numKinds {
		return ""
	}
	return kindLabels[k]
}

// Combinable reports whether the kind may run alongside others when asked to.
func (k Kind) Combinable() bool {
	return k == Jitter
}

// ParseKind resolves a wire name. Unknown names report false.
func ParseKind(name string) (Kind, bool) {
	for i := Jitter; i < numKinds; i++ {
		if kindNames[i] == name {
			return i, true
		}
	}
	return None, false
}

// Kinds lists every effect kind in declaration order.
func Kinds() []Kind {
	ks := make([]Kind, 0, numKinds-1)
	for k := Jitter; k < numKinds; k++ {
		ks = append(ks, k)
	}
	return ks
}

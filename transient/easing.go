package transient

import "math"

// Easing selects the curve mapping normalized age to fade progress.
type Easing int

const (
	EaseSmoothstep Easing = iota // Default
	EaseOutExpo
	EaseOutCubic
	EaseOutQuart
	EaseOutQuint
	EaseInOutSine
	EaseInOutQuart
	EaseLinear
)

var easingNames = map[Easing]string{
	EaseSmoothstep: "smoothstep",
	EaseOutExpo:    "easeOutExpo",
	EaseOutCubic:   "easeOutCubic",
	EaseOutQuart:   "easeOutQuart",
	EaseOutQuint:   "easeOutQuint",
	EaseInOutSine:  "easeInOutSine",
	EaseInOutQuart: "easeInOutQuart",
	EaseLinear:     "linear",
}

// String returns the curve name.
func (e Easing) String() string {
	if name, ok := easingNames[e]; ok {
		return name
	}
	return "smoothstep"
}

// Apply evaluates the curve at t, clamped to [0, 1].
func (e Easing) Apply(t float64) float64 {
	t = clamp01(t)
	switch e {
	case EaseOutExpo:
		if t >= 1 {
			return 1
		}
		return 1 - math.Pow(2, -10*t)
	case EaseOutCubic:
		u := 1 - t
		return 1 - u*u*u
	case EaseOutQuart:
		u := 1 - t
		return 1 - u*u*u*u
	case EaseOutQuint:
		u := 1 - t
		return 1 - u*u*u*u*u
	case EaseInOutSine:
		return -(math.Cos(math.Pi*t) - 1) / 2
	case EaseInOutQuart:
		if t < 0.5 {
			return 8 * t * t * t * t
		}
		u := -2*t + 2
		return 1 - u*u*u*u/2
	case EaseLinear:
		return t
	default:
		return t * t * (3 - 2*t)
	}
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

package settings

import "math/rand"

// DefaultInfluences returns the compiled-in per-section overrides.
func DefaultInfluences() map[string]Partial {
	return map[string]Partial{
		"about": {
			MouseInfluence: 0.0025,
			AnimationSpeed: 0.28,
			Brightness:     0.45,
		},
		"projects": {
			AnimationSpeed: 0.35,
			SwirlStrength:  1.2,
			PointSize:      24,
		},
		"content": {
			AnimationSpeed: 0.22,
			RippleWidth:    32,
			Contrast:       1.9,
		},
		"words": {
			AnimationSpeed: 0.24,
			RippleWidth:    28,
			Contrast:       2.1,
		},
		"sounds": {
			RippleStrength: 45,
			RippleDecay:    0.001,
			MouseInfluence: 0.003,
		},
		"art": {
			RippleStrength: 45,
			RippleDecay:    0.001,
			MouseInfluence: 0.003,
		},
	}
}

// DefaultLocked lists the keys whose values section influences and
// randomization leave alone until unlocked.
var DefaultLocked = []Key{Opacity, PointSize, Brightness, Contrast, FogDensity}

// Range describes the tuning bounds of a numeric key.
type Range struct {
	Min, Max, Step float64
}

// Clamp bounds v to the range.
func (r Range) Clamp(v float64) float64 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// Ranges holds the slider bounds for every numeric key.
var Ranges = map[Key]Range{
	Amplitude:      {30, 140, 1},
	WaveXFrequency: {0.05, 0.45, 0.005},
	WaveYFrequency: {0.05, 0.45, 0.005},
	SwirlStrength:  {0, 3, 0.01},
	SwirlFrequency: {0.001, 0.02, 0.0005},
	AnimationSpeed: {0.05, 1.2, 0.01},
	PointSize:      {6, 32, 0.5},
	MouseInfluence: {0.001, 0.02, 0.0005},
	RippleStrength: {10, 120, 1},
	RippleSpeed:    {120, 520, 5},
	RippleWidth:    {8, 40, 0.1},
	RippleDecay:    {0.0005, 0.01, 0.0001},
	Opacity:        {0.3, 1, 0.01},
	Brightness:     {0.1, 0.6, 0.01},
	Contrast:       {0.6, 2.5, 0.05},
	FogDensity:     {0.0002, 0.003, 0.0001},
}

// randomRanges are narrower than Ranges so a random pick stays watchable.
var randomRanges = map[Key][2]float64{
	Amplitude:      {30, 140},
	WaveXFrequency: {0.05, 0.45},
	WaveYFrequency: {0.05, 0.45},
	SwirlStrength:  {0, 3},
	SwirlFrequency: {0.001, 0.02},
	AnimationSpeed: {0.05, 1.2},
	Opacity:        {0.35, 0.95},
	PointSize:      {8, 30},
	Brightness:     {0.15, 0.55},
	Contrast:       {0.8, 2.5},
	FogDensity:     {0.00025, 0.0022},
	MouseInfluence: {0.0015, 0.015},
	RippleStrength: {15, 110},
	RippleSpeed:    {140, 480},
	RippleWidth:    {10, 32},
	RippleDecay:    {0.0009, 0.006},
}

// RandomPartial draws a value for every key not present in skip.
func RandomPartial(rng *rand.Rand, skip func(Key) bool) Partial {
	p := make(Partial, numKeys)
	for _, k := range Keys() {
		if skip != nil && skip(k) {
			continue
		}
		if k.IsBool() {
			p[k] = boolValue(rng.Float64() > 0.5)
			continue
		}
		r := randomRanges[k]
		p[k] = r[0] + rng.Float64()*(r[1]-r[0])
	}
	return p
}

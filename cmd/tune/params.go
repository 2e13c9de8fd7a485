package main

import (
	"github.com/itsjaydesu/jayfolio-sub000/settings"
)

// ParamSpec defines a single tunable parameter.
type ParamSpec struct {
	Key settings.Key
	Min float64 // Lower bound
	Max float64 // Upper bound
}

// ParamVector holds the set of tunable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the wave-shape parameter set. Bounds come from the
// slider ranges so results can be reproduced in the controls panel.
func NewParamVector() *ParamVector {
	keys := []settings.Key{
		settings.Amplitude,
		settings.WaveXFrequency,
		settings.WaveYFrequency,
		settings.SwirlStrength,
		settings.SwirlFrequency,
		settings.AnimationSpeed,
	}
	pv := &ParamVector{}
	for _, k := range keys {
		r := settings.Ranges[k]
		pv.Specs = append(pv.Specs, ParamSpec{Key: k, Min: r.Min, Max: r.Max})
	}
	return pv
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// Extract returns the values of s in spec order.
func (pv *ParamVector) Extract(s settings.Settings) []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = s.Get(spec.Key)
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		clamped[i] = settings.Range{Min: spec.Min, Max: spec.Max}.Clamp(v[i])
	}
	return clamped
}

// Partial turns a vector into a settings overlay, clamped to bounds.
func (pv *ParamVector) Partial(values []float64) settings.Partial {
	clamped := pv.Clamp(values)
	p := make(settings.Partial, len(pv.Specs))
	for i, spec := range pv.Specs {
		p[spec.Key] = clamped[i]
	}
	return p
}

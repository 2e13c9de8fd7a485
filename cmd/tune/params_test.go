package main

import (
	"math"
	"testing"

	"github.com/itsjaydesu/jayfolio-sub000/config"
	"github.com/itsjaydesu/jayfolio-sub000/settings"
	"github.com/itsjaydesu/jayfolio-sub000/telemetry"
)

func TestNormalizeRoundTrip(t *testing.T) {
	pv := NewParamVector()
	raw := pv.Extract(settings.Defaults())
	back := pv.Denormalize(pv.Normalize(raw))
	for i := range raw {
		if math.Abs(raw[i]-back[i]) > 1e-9 {
			t.Errorf("%v: %v != %v", pv.Specs[i].Key, raw[i], back[i])
		}
	}
}

func TestPartialClamps(t *testing.T) {
	pv := NewParamVector()
	v := make([]float64, pv.Dim())
	for i := range v {
		v[i] = 1e6
	}
	p := pv.Partial(v)
	if got := p[settings.Amplitude]; got != settings.Ranges[settings.Amplitude].Max {
		t.Errorf("expected amplitude clamped to max, got %v", got)
	}
	if len(p) != pv.Dim() {
		t.Errorf("expected %d keys, got %d", pv.Dim(), len(p))
	}
}

func TestScorePrefersTarget(t *testing.T) {
	fe := NewFitnessEvaluator(NewParamVector(), 0, nil, config.Default(), settings.DefaultDocument(),
		Target{Std: 30, Spread: 80})
	exact := fe.score(telemetry.Summary{Std: 30, P10: -40, P90: 40})
	off := fe.score(telemetry.Summary{Std: 60, P10: -40, P90: 40})
	if exact != 0 {
		t.Errorf("expected zero at target, got %v", exact)
	}
	if off <= exact {
		t.Error("expected higher score away from target")
	}
}

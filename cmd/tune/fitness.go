package main

import (
	"math"
	"sync"

	"github.com/itsjaydesu/jayfolio-sub000/config"
	"github.com/itsjaydesu/jayfolio-sub000/scene"
	"github.com/itsjaydesu/jayfolio-sub000/settings"
	"github.com/itsjaydesu/jayfolio-sub000/telemetry"
)

// Target is the height distribution the tuner aims for, in world units.
type Target struct {
	Std    float64 // Standard deviation of point heights
	Spread float64 // P90 - P10
}

// FitnessEvaluator runs headless simulations and scores their height
// distribution against a target.
type FitnessEvaluator struct {
	params *ParamVector
	frames int
	seeds  []int64
	cfg    *config.Config
	base   settings.Document
	target Target

	mu         sync.Mutex
	lastStats  telemetry.Summary
	sampleStep int
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, frames int, seeds []int64, cfg *config.Config, base settings.Document, target Target) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:     params,
		frames:     frames,
		seeds:      seeds,
		cfg:        cfg,
		base:       base,
		target:     target,
		sampleStep: 10,
	}
}

// LastStats returns the averaged height summary of the most recent call.
func (fe *FitnessEvaluator) LastStats() telemetry.Summary {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastStats
}

// Evaluate scores a raw parameter vector (lower = better).
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	doc := fe.base
	doc.Base.Overlay(fe.params.Partial(x))

	results := make([]telemetry.Summary, len(fe.seeds))
	errs := make([]error, len(fe.seeds))
	var wg sync.WaitGroup
	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			results[idx], errs[idx] = fe.run(doc, s)
		}(i, seed)
	}
	wg.Wait()

	var avg telemetry.Summary
	for i, r := range results {
		if errs[i] != nil {
			return math.Inf(1)
		}
		avg.Mean += r.Mean
		avg.Std += r.Std
		avg.P10 += r.P10
		avg.P50 += r.P50
		avg.P90 += r.P90
	}
	n := float64(len(results))
	avg = telemetry.Summary{Mean: avg.Mean / n, Std: avg.Std / n, P10: avg.P10 / n, P50: avg.P50 / n, P90: avg.P90 / n}

	fe.mu.Lock()
	fe.lastStats = avg
	fe.mu.Unlock()

	return fe.score(avg)
}

// score is the squared relative error against the target.
func (fe *FitnessEvaluator) score(s telemetry.Summary) float64 {
	var f float64
	if fe.target.Std > 0 {
		d := (s.Std - fe.target.Std) / fe.target.Std
		f += d * d
	}
	if fe.target.Spread > 0 {
		d := (s.P90 - s.P10 - fe.target.Spread) / fe.target.Spread
		f += d * d
	}
	return f
}

// run simulates one seed and averages height summaries sampled through
// the run.
func (fe *FitnessEvaluator) run(doc settings.Document, seed int64) (telemetry.Summary, error) {
	sim, err := scene.New(fe.cfg, doc, scene.WithSeed(seed))
	if err != nil {
		return telemetry.Summary{}, err
	}
	defer sim.Close()

	dt := 1.0 / 60
	var acc telemetry.Summary
	samples := 0
	for i := 1; i <= fe.frames; i++ {
		if err := sim.Frame(dt); err != nil {
			return telemetry.Summary{}, err
		}
		if i%fe.sampleStep != 0 {
			continue
		}
		s := telemetry.Summarize(sim.Snapshot().Heights)
		acc.Mean += s.Mean
		acc.Std += s.Std
		acc.P10 += s.P10
		acc.P50 += s.P50
		acc.P90 += s.P90
		samples++
	}
	if samples == 0 {
		return telemetry.Summarize(sim.Snapshot().Heights), nil
	}
	n := float64(samples)
	return telemetry.Summary{Mean: acc.Mean / n, Std: acc.Std / n, P10: acc.P10 / n, P50: acc.P50 / n, P90: acc.P90 / n}, nil
}

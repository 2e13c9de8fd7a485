package telemetry

import (
	"log/slog"

	"gonum.org/v1/gonum/stat"
)

// FieldStats holds aggregated field statistics for a time window.
type FieldStats struct {
	Frame   int64   `csv:"frame"`
	SimTime float64 `csv:"sim_time"`

	// Transients alive at window end
	Ripples  int `csv:"ripples"`
	Bursts   int `csv:"bursts"`
	Shimmers int `csv:"shimmers"`

	// Input during the window
	Clicks       int `csv:"clicks"`
	Debounced    int `csv:"debounced"`
	RipplesAdded int `csv:"ripples_added"`
	EffectStarts int `csv:"effect_starts"`

	// Effects running at window end, joined with '+'
	Effects string `csv:"effects"`

	Energy float64 `csv:"energy"`

	// Point height distribution sampled at window end
	HeightMean float64 `csv:"height_mean"`
	HeightStd  float64 `csv:"height_std"`
	HeightP10  float64 `csv:"height_p10"`
	HeightP50  float64 `csv:"height_p50"`
	HeightP90  float64 `csv:"height_p90"`
}

// Summary is the mean, standard deviation and deciles of a sample.
type Summary struct {
	Mean, Std     float64
	P10, P50, P90 float64
}

// Summarize computes a Summary of values. An empty sample gives zeros.
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}
	var s Summary
	if len(values) == 1 {
		s.Mean = values[0]
	} else {
		s.Mean, s.Std = stat.PopMeanStdDev(values, nil)
	}
	s.P10 = Quantile(values, 0.10)
	s.P50 = Quantile(values, 0.50)
	s.P90 = Quantile(values, 0.90)
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s FieldStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("frame", s.Frame),
		slog.Float64("sim_time", s.SimTime),
		slog.Int("ripples", s.Ripples),
		slog.Int("bursts", s.Bursts),
		slog.Int("shimmers", s.Shimmers),
		slog.Int("clicks", s.Clicks),
		slog.Int("debounced", s.Debounced),
		slog.Int("ripples_added", s.RipplesAdded),
		slog.Int("effect_starts", s.EffectStarts),
		slog.String("effects", s.Effects),
		slog.Float64("energy", s.Energy),
		slog.Float64("height_mean", s.HeightMean),
		slog.Float64("height_std", s.HeightStd),
		slog.Float64("height_p50", s.HeightP50),
	)
}

// LogStats logs the window stats using slog.
func (s FieldStats) LogStats() {
	slog.Info("stats",
		"frame", s.Frame,
		"sim_time", s.SimTime,
		"ripples", s.Ripples,
		"bursts", s.Bursts,
		"shimmers", s.Shimmers,
		"clicks", s.Clicks,
		"debounced", s.Debounced,
		"effects", s.Effects,
		"energy", s.Energy,
		"height_mean", s.HeightMean,
		"height_p10", s.HeightP10,
		"height_p90", s.HeightP90,
	)
}

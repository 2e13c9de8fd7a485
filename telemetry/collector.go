package telemetry

import "strings"

// Snapshot is the field state sampled when a window is flushed.
type Snapshot struct {
	Frame    int64
	SimTime  float64
	Ripples  int
	Bursts   int
	Shimmers int
	Effects  []string
	Energy   float64
	Heights  []float64
}

// Collector accumulates input counters within time windows and produces
// FieldStats.
type Collector struct {
	windowSec   float64
	windowStart float64

	clicks       int
	debounced    int
	ripplesAdded int
	effectStarts int
}

// NewCollector creates a collector flushing every windowSec seconds of
// simulation time.
func NewCollector(windowSec float64) *Collector {
	if windowSec <= 0 {
		windowSec = 10
	}
	return &Collector{windowSec: windowSec}
}

// RecordClick records a pointer trigger; accepted is false when debounced.
func (c *Collector) RecordClick(accepted bool) {
	if accepted {
		c.clicks++
	} else {
		c.debounced++
	}
}

// RecordRipple records a host-requested ripple.
func (c *Collector) RecordRipple() {
	c.ripplesAdded++
}

// RecordEffectStart records an effect activation.
func (c *Collector) RecordEffectStart() {
	c.effectStarts++
}

// ShouldFlush reports whether the window ending at now is complete.
func (c *Collector) ShouldFlush(now float64) bool {
	return now-c.windowStart >= c.windowSec
}

// Flush produces FieldStats from snap and resets counters for the next window.
func (c *Collector) Flush(snap Snapshot) FieldStats {
	h := Summarize(snap.Heights)
	stats := FieldStats{
		Frame:        snap.Frame,
		SimTime:      snap.SimTime,
		Ripples:      snap.Ripples,
		Bursts:       snap.Bursts,
		Shimmers:     snap.Shimmers,
		Clicks:       c.clicks,
		Debounced:    c.debounced,
		RipplesAdded: c.ripplesAdded,
		EffectStarts: c.effectStarts,
		Effects:      strings.Join(snap.Effects, "+"),
		Energy:       snap.Energy,
		HeightMean:   h.Mean,
		HeightStd:    h.Std,
		HeightP10:    h.P10,
		HeightP50:    h.P50,
		HeightP90:    h.P90,
	}

	c.windowStart = snap.SimTime
	c.clicks = 0
	c.debounced = 0
	c.ripplesAdded = 0
	c.effectStarts = 0
	return stats
}

package telemetry

import (
	"log/slog"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Phase names for one animation frame, in execution order.
const (
	PhaseSettings   = "settings"
	PhasePointer    = "pointer"
	PhaseEffects    = "effects"
	PhaseTransients = "transients"
	PhaseField      = "field"
	PhaseCamera     = "camera"
	PhaseDraw       = "draw"
)

var phaseOrder = []string{
	PhaseSettings, PhasePointer, PhaseEffects, PhaseTransients,
	PhaseField, PhaseCamera, PhaseDraw,
}

// PerfSample holds timing data for a single frame.
type PerfSample struct {
	FrameDuration time.Duration
	Phases        map[string]time.Duration
}

// PerfCollector tracks frame timing over a rolling window.
type PerfCollector struct {
	windowSize    int
	samples       []PerfSample
	writeIndex    int
	sampleCount   int
	currentPhases map[string]time.Duration
	frameStart    time.Time
	phaseStart    time.Time
	lastPhase     string

	// Wall time between presented frames
	lastPresent time.Time
	interval    time.Duration
}

// NewPerfCollector creates a collector averaging over windowSize frames.
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{
		windowSize:    windowSize,
		samples:       make([]PerfSample, windowSize),
		currentPhases: make(map[string]time.Duration),
	}
}

// StartFrame begins timing a new frame.
func (p *PerfCollector) StartFrame() {
	if p == nil {
		return
	}
	p.frameStart = time.Now()
	p.currentPhases = make(map[string]time.Duration, len(phaseOrder))
	p.lastPhase = ""
}

// StartPhase ends the running phase, if any, and begins timing phase.
func (p *PerfCollector) StartPhase(phase string) {
	if p == nil {
		return
	}
	now := time.Now()
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
	}
	p.phaseStart = now
	p.lastPhase = phase
}

// EndFrame finishes timing the current frame and records the sample.
func (p *PerfCollector) EndFrame() {
	if p == nil {
		return
	}
	now := time.Now()
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
	}

	p.samples[p.writeIndex] = PerfSample{
		FrameDuration: now.Sub(p.frameStart),
		Phases:        p.currentPhases,
	}
	p.writeIndex = (p.writeIndex + 1) % p.windowSize
	if p.sampleCount < p.windowSize {
		p.sampleCount++
	}
}

// RecordPresent records the wall time of a presented frame.
func (p *PerfCollector) RecordPresent() {
	if p == nil {
		return
	}
	now := time.Now()
	if !p.lastPresent.IsZero() {
		p.interval = now.Sub(p.lastPresent)
	}
	p.lastPresent = now
}

// PerfStats holds aggregated frame statistics.
type PerfStats struct {
	AvgFrame time.Duration
	MinFrame time.Duration
	MaxFrame time.Duration
	P95Frame time.Duration

	// Average duration and share of frame time per phase
	PhaseAvg map[string]time.Duration
	PhasePct map[string]float64

	// Presented frame rate
	Interval time.Duration
	FPS      float64
}

// Stats computes aggregated statistics over the current window.
func (p *PerfCollector) Stats() PerfStats {
	var fps float64
	if p.interval > 0 {
		fps = float64(time.Second) / float64(p.interval)
	}

	out := PerfStats{
		PhaseAvg: make(map[string]time.Duration),
		PhasePct: make(map[string]float64),
		Interval: p.interval,
		FPS:      fps,
	}
	if p.sampleCount == 0 {
		return out
	}

	durations := make([]float64, p.sampleCount)
	phaseSum := make(map[string]time.Duration)
	var total time.Duration
	for i := 0; i < p.sampleCount; i++ {
		s := p.samples[i]
		total += s.FrameDuration
		durations[i] = float64(s.FrameDuration)
		if i == 0 || s.FrameDuration < out.MinFrame {
			out.MinFrame = s.FrameDuration
		}
		if s.FrameDuration > out.MaxFrame {
			out.MaxFrame = s.FrameDuration
		}
		for phase, d := range s.Phases {
			phaseSum[phase] += d
		}
	}

	out.AvgFrame = total / time.Duration(p.sampleCount)
	out.P95Frame = time.Duration(Quantile(durations, 0.95))
	for phase, sum := range phaseSum {
		avg := sum / time.Duration(p.sampleCount)
		out.PhaseAvg[phase] = avg
		if out.AvgFrame > 0 {
			out.PhasePct[phase] = float64(avg) / float64(out.AvgFrame) * 100
		}
	}
	return out
}

// Quantile returns the empirical p-quantile of values, 0 if empty.
// values is not modified.
func Quantile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	return stat.Quantile(p, stat.Empirical, sorted, nil)
}

// LogStats logs performance statistics.
func (s PerfStats) LogStats() {
	attrs := []any{
		"avg_frame_us", s.AvgFrame.Microseconds(),
		"max_frame_us", s.MaxFrame.Microseconds(),
		"p95_frame_us", s.P95Frame.Microseconds(),
	}
	if s.FPS > 0 {
		attrs = append(attrs, "fps", int(s.FPS))
	}
	for _, phase := range phaseOrder {
		if pct, ok := s.PhasePct[phase]; ok && pct > 0.1 {
			attrs = append(attrs, phase+"_pct", int(pct*10)/10.0)
		}
	}
	slog.Info("perf", attrs...)
}

// LogValue implements slog.LogValuer for structured logging.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("avg_frame_us", s.AvgFrame.Microseconds()),
		slog.Int64("min_frame_us", s.MinFrame.Microseconds()),
		slog.Int64("max_frame_us", s.MaxFrame.Microseconds()),
		slog.Int64("p95_frame_us", s.P95Frame.Microseconds()),
	}
	if s.FPS > 0 {
		attrs = append(attrs, slog.Float64("fps", s.FPS))
	}
	for _, phase := range phaseOrder {
		if pct, ok := s.PhasePct[phase]; ok {
			attrs = append(attrs, slog.Float64(phase+"_pct", pct))
		}
	}
	return slog.GroupValue(attrs...)
}

// PerfStatsCSV is a flat struct for CSV export of performance stats.
type PerfStatsCSV struct {
	Frame         int64   `csv:"frame"`
	AvgFrameUS    int64   `csv:"avg_frame_us"`
	MinFrameUS    int64   `csv:"min_frame_us"`
	MaxFrameUS    int64   `csv:"max_frame_us"`
	P95FrameUS    int64   `csv:"p95_frame_us"`
	FPS           float64 `csv:"fps"`
	SettingsPct   float64 `csv:"settings_pct"`
	PointerPct    float64 `csv:"pointer_pct"`
	EffectsPct    float64 `csv:"effects_pct"`
	TransientsPct float64 `csv:"transients_pct"`
	FieldPct      float64 `csv:"field_pct"`
	CameraPct     float64 `csv:"camera_pct"`
	DrawPct       float64 `csv:"draw_pct"`
}

// ToCSV converts PerfStats to a flat CSV-friendly struct.
func (s PerfStats) ToCSV(frame int64) PerfStatsCSV {
	return PerfStatsCSV{
		Frame:         frame,
		AvgFrameUS:    s.AvgFrame.Microseconds(),
		MinFrameUS:    s.MinFrame.Microseconds(),
		MaxFrameUS:    s.MaxFrame.Microseconds(),
		P95FrameUS:    s.P95Frame.Microseconds(),
		FPS:           s.FPS,
		SettingsPct:   s.PhasePct[PhaseSettings],
		PointerPct:    s.PhasePct[PhasePointer],
		EffectsPct:    s.PhasePct[PhaseEffects],
		TransientsPct: s.PhasePct[PhaseTransients],
		FieldPct:      s.PhasePct[PhaseField],
		CameraPct:     s.PhasePct[PhaseCamera],
		DrawPct:       s.PhasePct[PhaseDraw],
	}
}

// Package app connects a simulation to its host: a raylib window, a
// terminal, or no surface at all. It owns telemetry output, periodic
// logging and the effect chime.
package app

import (
	"fmt"
	"log/slog"

	"github.com/itsjaydesu/jayfolio-sub000/audio"
	"github.com/itsjaydesu/jayfolio-sub000/config"
	"github.com/itsjaydesu/jayfolio-sub000/scene"
	"github.com/itsjaydesu/jayfolio-sub000/settings"
	"github.com/itsjaydesu/jayfolio-sub000/telemetry"
)

// Options configures a host run.
type Options struct {
	Seed        int64
	OutputDir   string  // CSV and config snapshot; empty disables output
	MaxFrames   int64   // Stop after N frames (0 = unlimited)
	Effect      string  // Started on boot when set
	Chime       bool    // Play a tone on each effect start
	DeviceRatio float64 // Overrides the detected pixel ratio when > 0
}

// Host drives one simulation and its side outputs.
type Host struct {
	cfg       *config.Config
	opts      Options
	sim       *scene.Simulation
	perf      *telemetry.PerfCollector
	collector *telemetry.Collector
	output    *telemetry.OutputManager
	chime     *audio.Chime
}

func newHost(cfg *config.Config, doc settings.Document, surface scene.Surface, opts Options) (*Host, error) {
	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := output.WriteConfig(cfg); err != nil {
		output.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	h := &Host{
		cfg:       cfg,
		opts:      opts,
		perf:      telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		collector: telemetry.NewCollector(cfg.Telemetry.LogInterval),
		output:    output,
	}

	sim, err := scene.New(cfg, doc,
		scene.WithSurface(surface),
		scene.WithSeed(opts.Seed),
		scene.WithPerf(h.perf),
		scene.WithCollector(h.collector),
	)
	if err != nil {
		output.Close()
		return nil, err
	}
	h.sim = sim

	if opts.Chime || cfg.Audio.Enabled {
		chime := audio.NewChime(cfg.Audio)
		if err := chime.Init(); err != nil {
			slog.Warn("audio unavailable", "error", err)
		} else {
			h.chime = chime
		}
	}
	sim.OnEffectChange(h.effectChanged)

	if section := cfg.Settings.Section; section != "" {
		sim.ApplyMenuInfluence(section)
	}
	if opts.DeviceRatio > 0 {
		sim.SetDeviceRatio(opts.DeviceRatio)
	}
	if opts.Effect != "" && !sim.TriggerEffect(opts.Effect, false) {
		slog.Warn("boot effect not started", "effect", opts.Effect)
	}
	return h, nil
}

// Simulation returns the driven simulation.
func (h *Host) Simulation() *scene.Simulation {
	return h.sim
}

func (h *Host) effectChanged(active bool, effect string) {
	ev := telemetry.NewEffectEvent(h.sim.Frames(), h.sim.Time(), active, effect)
	if err := h.output.WriteEffect(ev); err != nil {
		slog.Warn("effect log write failed", "error", err)
	}
	if h.chime != nil {
		h.chime.OnEffectChange(active, effect)
	}
}

// step advances one frame. A paused simulation is still drawn so window
// hosts keep polling input.
func (h *Host) step(delta float64) error {
	if h.sim.Paused() {
		return h.sim.Render()
	}
	if err := h.sim.Frame(delta); err != nil {
		return err
	}
	h.report()
	return nil
}

// done reports whether the frame limit has been reached.
func (h *Host) done() bool {
	return h.opts.MaxFrames > 0 && h.sim.Frames() >= h.opts.MaxFrames
}

// report flushes the telemetry window once it is complete.
func (h *Host) report() {
	if !h.collector.ShouldFlush(h.sim.Time()) {
		return
	}
	stats := h.collector.Flush(h.sim.Snapshot())
	stats.LogStats()
	if err := h.output.WriteField(stats); err != nil {
		slog.Warn("field stats write failed", "error", err)
	}

	perf := h.perf.Stats()
	perf.LogStats()
	if err := h.output.WritePerf(perf, h.sim.Frames()); err != nil {
		slog.Warn("perf write failed", "error", err)
	}
}

// Close stops the simulation and flushes output.
func (h *Host) Close() {
	h.sim.Close()
	if h.chime != nil {
		h.chime.Close()
	}
	if err := h.output.Close(); err != nil {
		slog.Warn("closing output", "error", err)
	}
	if dir := h.output.Dir(); dir != "" {
		slog.Info("output written", "dir", dir)
	}
}

// Package scene owns one running field simulation: its clock, parameter
// model, pointer, transients, effects, grid and camera, and the control
// handle hosts drive it through.
//
// A Simulation is not safe for concurrent use. Input handlers and Frame must
// be called from the same goroutine.
package scene

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"

	"github.com/itsjaydesu/jayfolio-sub000/camera"
	"github.com/itsjaydesu/jayfolio-sub000/config"
	"github.com/itsjaydesu/jayfolio-sub000/effects"
	"github.com/itsjaydesu/jayfolio-sub000/field"
	"github.com/itsjaydesu/jayfolio-sub000/noise"
	"github.com/itsjaydesu/jayfolio-sub000/pointer"
	"github.com/itsjaydesu/jayfolio-sub000/settings"
	"github.com/itsjaydesu/jayfolio-sub000/telemetry"
	"github.com/itsjaydesu/jayfolio-sub000/transient"
)

// View is everything a surface needs to draw one frame.
type View struct {
	Grid     *field.Grid
	Camera   *camera.Camera
	Settings settings.Settings

	// Render keys whose value changed since the previous frame
	Changed []settings.Key

	PixelRatio float64
	Frame      int64
	Time       float64
	Effects    []effects.Kind
}

// Surface draws frames. Implementations own their window or terminal.
type Surface interface {
	Init(w, h int) error
	Draw(v *View) error
	Resize(w, h int)
	Close()
}

// EffectChangeFunc receives effect lifecycle notifications. effect is the
// wire name of the effect, empty once everything has finished fading.
type EffectChangeFunc func(active bool, effect string)

// Option configures a Simulation.
type Option func(*Simulation)

// WithSurface attaches the drawing surface.
func WithSurface(s Surface) Option {
	return func(sim *Simulation) { sim.surface = s }
}

// WithSeed seeds the random source used by effects and presets.
func WithSeed(seed int64) Option {
	return func(sim *Simulation) { sim.rng = rand.New(rand.NewSource(seed)) }
}

// WithPerf records per-phase frame timing into p.
func WithPerf(p *telemetry.PerfCollector) Option {
	return func(sim *Simulation) { sim.perf = p }
}

// WithCollector counts input events into c.
func WithCollector(c *telemetry.Collector) Option {
	return func(sim *Simulation) { sim.collector = c }
}

// Simulation is one field instance. Multiple instances may coexist.
type Simulation struct {
	cfg     *config.Config
	model   *settings.Model
	pointer *pointer.Tracker
	ripples *transient.Registry
	effects *effects.Engine
	grid    *field.Grid
	camera  *camera.Camera
	surface Surface
	rng     *rand.Rand

	perf      *telemetry.PerfCollector
	collector *telemetry.Collector
	onEffect  EffectChangeFunc

	clock    float64
	animTime float64
	frames   int64

	surfaceReady    bool
	pixelRatio      float64
	deviceRatio     float64
	paused          bool
	controlsVisible bool
	closed          bool
}

// New builds a simulation from cfg and the bootstrap settings document.
func New(cfg *config.Config, doc settings.Document, opts ...Option) (*Simulation, error) {
	src, err := noise.New(cfg.Noise.Kernel, cfg.Noise.Seed)
	if err != nil {
		return nil, fmt.Errorf("creating noise source: %w", err)
	}

	sim := &Simulation{
		cfg:         cfg,
		model:       settings.NewModel(cfg.Easing.SettingsFactor, doc.Base, doc.Influences),
		pointer:     pointer.New(cfg),
		grid:        field.New(cfg),
		camera:      camera.New(cfg),
		rng:         rand.New(rand.NewSource(cfg.Noise.Seed)),
		pixelRatio:  cfg.Render.BootRatio,
		deviceRatio: 1,
	}
	for _, opt := range opts {
		opt(sim)
	}

	sim.ripples = transient.NewRegistry(cfg, sim.rng)
	sim.effects = effects.NewEngine(&effects.Env{
		Model:   sim.model,
		Ripples: sim.ripples,
		Pointer: sim.pointer,
		Noise:   src,
		Rng:     sim.rng,
		Grid:    sim.grid.EffectsGrid(),
	}, cfg.Effects.FadeGrace)
	sim.effects.OnChange(sim.effectChanged)

	if sim.surface != nil {
		if err := sim.surface.Init(cfg.Screen.Width, cfg.Screen.Height); err != nil {
			sim.grid.Close()
			return nil, fmt.Errorf("initializing surface: %w", err)
		}
		sim.surfaceReady = true
	}

	slog.Info("simulation created",
		"points", sim.grid.Len(),
		"kernel", cfg.Noise.Kernel,
		"home_mode", cfg.Interaction.HomeMode,
	)
	return sim, nil
}

func (s *Simulation) effectChanged(active bool, kind effects.Kind) {
	if active && s.collector != nil {
		s.collector.RecordEffectStart()
	}
	slog.Debug("effect change", "active", active, "effect", kind.String(), "time", s.clock)
	if s.onEffect != nil {
		s.onEffect(active, kind.String())
	}
}

// Frame advances the simulation by delta seconds and draws. While paused the
// delta is consumed without simulating so resuming does not jump.
func (s *Simulation) Frame(delta float64) error {
	if s.closed || s.paused {
		return nil
	}
	if delta < 0 {
		delta = 0
	}
	if limit := s.cfg.Effects.MaxDelta; limit > 0 && delta > limit {
		delta = limit
	}

	s.perf.StartFrame()
	defer s.perf.EndFrame()

	s.perf.StartPhase(telemetry.PhaseSettings)
	s.clock += delta
	s.model.Step()
	cur := &s.model.Current
	s.animTime += delta * cur.AnimationSpeed

	s.perf.StartPhase(telemetry.PhasePointer)
	s.pointer.Step(delta)

	s.perf.StartPhase(telemetry.PhaseEffects)
	s.effects.Update(delta, s.clock)

	s.perf.StartPhase(telemetry.PhaseTransients)
	s.ripples.Prepare(s.clock, cur)

	s.perf.StartPhase(telemetry.PhaseField)
	s.grid.Compute(field.Frame{
		AnimTime: s.animTime,
		Settings: cur,
		Pointer:  s.pointer,
		Ripples:  s.ripples,
		Effects:  s.effects,
	})

	s.perf.StartPhase(telemetry.PhaseCamera)
	s.camera.Update(delta, s.pointer.SmoothX, s.pointer.SmoothY, cur.AutoRotate)
	s.frames++

	s.perf.StartPhase(telemetry.PhaseDraw)
	return s.Render()
}

// Render draws the current state. It is a no-op without a ready surface.
func (s *Simulation) Render() error {
	if s.closed || !s.surfaceReady {
		return nil
	}
	v := &View{
		Grid:       s.grid,
		Camera:     s.camera,
		Settings:   s.model.Current,
		Changed:    s.model.Changed(),
		PixelRatio: s.pixelRatio,
		Frame:      s.frames,
		Time:       s.clock,
		Effects:    s.effects.Running(),
	}
	if err := s.surface.Draw(v); err != nil {
		return fmt.Errorf("drawing frame %d: %w", s.frames, err)
	}
	s.perf.RecordPresent()

	// First paint happens at the boot ratio; later frames use the device ratio
	if want := math.Min(s.deviceRatio, s.cfg.Render.MaxPixelRatio); s.pixelRatio != want {
		s.pixelRatio = want
	}
	return nil
}

// Close releases the surface and workers. Later calls on the simulation are
// no-ops; Close itself may be called more than once.
func (s *Simulation) Close() {
	if s.closed {
		return
	}
	s.onEffect = nil
	s.effects.Clear()
	s.closed = true
	s.grid.Close()
	if s.surface != nil && s.surfaceReady {
		s.surface.Close()
	}
	s.surfaceReady = false
	slog.Info("simulation closed", "frames", s.frames, "time", s.clock)
}

// Time returns the simulation clock in seconds.
func (s *Simulation) Time() float64 {
	return s.clock
}

// Frames returns the number of simulated frames.
func (s *Simulation) Frames() int64 {
	return s.frames
}

// Grid exposes the point buffers for surfaces and tools.
func (s *Simulation) Grid() *field.Grid {
	return s.grid
}

// Camera exposes the camera for surfaces and tools.
func (s *Simulation) Camera() *camera.Camera {
	return s.camera
}

// Snapshot samples the field for telemetry.
func (s *Simulation) Snapshot() telemetry.Snapshot {
	r, b, sh := s.ripples.Counts()
	running := s.effects.Running()
	names := make([]string, len(running))
	for i, k := range running {
		names[i] = k.String()
	}
	heights := make([]float64, s.grid.Len())
	for i := range heights {
		heights[i] = float64(s.grid.Positions[i*3+1])
	}
	return telemetry.Snapshot{
		Frame:    s.frames,
		SimTime:  s.clock,
		Ripples:  r,
		Bursts:   b,
		Shimmers: sh,
		Effects:  names,
		Energy:   s.pointer.Energy,
		Heights:  heights,
	}
}

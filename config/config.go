// Package config provides configuration loading and access for the field engine.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all engine configuration parameters.
type Config struct {
	Screen      ScreenConfig      `yaml:"screen"`
	Grid        GridConfig        `yaml:"grid"`
	Easing      EasingConfig      `yaml:"easing"`
	Interaction InteractionConfig `yaml:"interaction"`
	Transient   TransientConfig   `yaml:"transient"`
	Effects     EffectsConfig     `yaml:"effects"`
	Camera      CameraConfig      `yaml:"camera"`
	Noise       NoiseConfig       `yaml:"noise"`
	Settings    SettingsConfig    `yaml:"settings"`
	Render      RenderConfig      `yaml:"render"`
	Telemetry   TelemetryConfig   `yaml:"telemetry"`
	Audio       AudioConfig       `yaml:"audio"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width            int    `yaml:"width"`
	Height           int    `yaml:"height"`
	TargetFPS        int    `yaml:"target_fps"`
	Title            string `yaml:"title"`
	MobileBreakpoint int    `yaml:"mobile_breakpoint"` // Viewports narrower than this use the mobile camera profile
}

// GridConfig holds the point lattice dimensions.
type GridConfig struct {
	AmountX    int     `yaml:"amount_x"`
	AmountY    int     `yaml:"amount_y"`
	Separation float64 `yaml:"separation"` // World units between neighbouring points
	Workers    int     `yaml:"workers"`    // Row workers for the field pass; 0 uses GOMAXPROCS
}

// EasingConfig holds the per-frame blend factors.
type EasingConfig struct {
	SettingsFactor   float64 `yaml:"settings_factor"`   // current += (target-current) * this
	PointerSmoothing float64 `yaml:"pointer_smoothing"` // Smoothing rate (1/s) for pointer position
	FlowSmoothing    float64 `yaml:"flow_smoothing"`    // Smoothing rate (1/s) for flow angle/strength
}

// InteractionConfig holds pointer tracker constants.
type InteractionConfig struct {
	Debounce         float64 `yaml:"debounce"`           // Seconds between accepted click triggers
	ClickEnergyBoost float64 `yaml:"click_energy_boost"` // Energy injected per accepted click
	ClickEnergyLerp  float64 `yaml:"click_energy_lerp"`  // How far energy jumps toward its boosted target
	ClickEnergyMax   float64 `yaml:"click_energy_max"`   // Ceiling for click-boosted energy
	PassiveEnergyMax float64 `yaml:"passive_energy_max"` // Ceiling for movement-accumulated energy
	EnergyDecay      float64 `yaml:"energy_decay"`
	EnergyDrain      float64 `yaml:"energy_drain"`
	FlowDecay        float64 `yaml:"flow_decay"`
	VelocityLerp     float64 `yaml:"velocity_lerp"`
	LeaveDamping     float64 `yaml:"leave_damping"` // Velocity multiplier on pointer leave
	HomeMode         bool    `yaml:"home_mode"`     // Enables pointer glide and flow lift
}

// TransientConfig holds bounds for short-lived field events.
type TransientConfig struct {
	MaxRipples    int     `yaml:"max_ripples"`
	RippleMaxAge  float64 `yaml:"ripple_max_age"`
	MaxBursts     int     `yaml:"max_bursts"`
	BurstMaxAge   float64 `yaml:"burst_max_age"`
	MaxShimmers   int     `yaml:"max_shimmers"`
	ShimmerMaxAge float64 `yaml:"shimmer_max_age"`
}

// EffectsConfig holds timed effect engine parameters.
type EffectsConfig struct {
	FadeGrace float64 `yaml:"fade_grace"` // Seconds between fade start and clear
	MaxDelta  float64 `yaml:"max_delta"`  // Upper bound on a single frame delta
}

// CameraConfig holds the perspective camera and its viewport profiles.
type CameraConfig struct {
	FOV     float64       `yaml:"fov"`
	Near    float64       `yaml:"near"`
	Far     float64       `yaml:"far"`
	Start   [3]float64    `yaml:"start"`
	Desktop CameraProfile `yaml:"desktop"`
	Mobile  CameraProfile `yaml:"mobile"`
}

// CameraProfile holds viewport-dependent orbit constants.
type CameraProfile struct {
	FOV         float64 `yaml:"fov"`
	OrbitRadius float64 `yaml:"orbit_radius"`
	DepthScale  float64 `yaml:"depth_scale"` // Fraction of the orbit radius applied along Z
	DepthOffset float64 `yaml:"depth_offset"`
	Height      float64 `yaml:"height"`
	PointerX    float64 `yaml:"pointer_x"` // Target X offset per unit of pointer X
	PointerY    float64 `yaml:"pointer_y"` // Target Y offset per unit of pointer Y
	PointerZ    float64 `yaml:"pointer_z"` // Target Z offset per unit of pointer Y
	LerpX       float64 `yaml:"lerp_x"`
	LerpY       float64 `yaml:"lerp_y"`
	LerpZ       float64 `yaml:"lerp_z"`
	RotateSpeed float64 `yaml:"rotate_speed"` // Radians per second of wall time
}

// NoiseConfig selects the noise kernel used by procedural effects.
type NoiseConfig struct {
	Kernel string `yaml:"kernel"` // "perlin" or "simplex"
	Seed   int64  `yaml:"seed"`
}

// SettingsConfig locates the bootstrap settings document.
type SettingsConfig struct {
	Source  string  `yaml:"source"`  // http(s) URL or file path; empty = compiled defaults
	Section string  `yaml:"section"` // Influence section applied after bootstrap
	Timeout float64 `yaml:"timeout"` // Seconds
}

// RenderConfig holds surface parameters.
type RenderConfig struct {
	Background    [3]uint8 `yaml:"background"`
	BootRatio     float64  `yaml:"boot_ratio"`
	MaxPixelRatio float64  `yaml:"max_pixel_ratio"`
	PointBase     float64  `yaml:"point_base"` // Point size numerator before depth division
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	PerfWindow  int     `yaml:"perf_window"`
	LogInterval float64 `yaml:"log_interval"` // Seconds between perf log lines
}

// AudioConfig holds effect chime parameters.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Frequency  float64 `yaml:"frequency"`
	DurationMS int     `yaml:"duration_ms"`
	SampleRate int     `yaml:"sample_rate"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	NumPoints int     // Grid.AmountX * Grid.AmountY
	HalfWidth float64 // Half of the lattice extent along X
	HalfDepth float64 // Half of the lattice extent along Z
	ScreenW32 float32
	ScreenH32 float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Default returns a fresh copy of the embedded defaults.
// Core packages take a *Config explicitly, so tests use this instead of Init.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in the file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// validate rejects values the frame loop cannot run with.
func (c *Config) validate() error {
	if c.Grid.AmountX < 2 || c.Grid.AmountY < 2 {
		return fmt.Errorf("grid must be at least 2x2, got %dx%d", c.Grid.AmountX, c.Grid.AmountY)
	}
	if c.Grid.Separation <= 0 {
		return fmt.Errorf("grid separation must be positive, got %v", c.Grid.Separation)
	}
	if c.Easing.SettingsFactor <= 0 || c.Easing.SettingsFactor > 1 {
		return fmt.Errorf("easing settings_factor must be in (0,1], got %v", c.Easing.SettingsFactor)
	}
	if c.Transient.MaxRipples < 1 || c.Transient.MaxBursts < 1 || c.Transient.MaxShimmers < 1 {
		return fmt.Errorf("transient bounds must be positive")
	}
	switch c.Noise.Kernel {
	case "", "perlin", "simplex":
	default:
		return fmt.Errorf("unknown noise kernel %q", c.Noise.Kernel)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.NumPoints = c.Grid.AmountX * c.Grid.AmountY
	c.Derived.HalfWidth = float64(c.Grid.AmountX-1) * c.Grid.Separation / 2
	c.Derived.HalfDepth = float64(c.Grid.AmountY-1) * c.Grid.Separation / 2
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	if c.Render.MaxPixelRatio <= 0 {
		c.Render.MaxPixelRatio = 2
	}
	if c.Render.BootRatio <= 0 {
		c.Render.BootRatio = 1
	}
	if c.Noise.Kernel == "" {
		c.Noise.Kernel = "perlin"
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

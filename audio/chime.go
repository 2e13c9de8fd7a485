// Package audio plays a short chime when a timed field effect starts.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/itsjaydesu/jayfolio-sub000/config"
	"github.com/itsjaydesu/jayfolio-sub000/effects"
)

// Pentatonic ratios so effects started together stay consonant.
var intervals = []float64{1, 9.0 / 8, 5.0 / 4, 3.0 / 2, 5.0 / 3, 2, 9.0 / 4}

// Chime owns the speaker and a mixer that effect tones are added to.
type Chime struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	rate        beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
}

// NewChime creates a chime. Nothing is audible until Init succeeds.
func NewChime(cfg config.AudioConfig) *Chime {
	return &Chime{
		cfg:   cfg,
		rate:  beep.SampleRate(cfg.SampleRate),
		mixer: &beep.Mixer{},
	}
}

// Init opens the speaker.
func (c *Chime) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(c.rate, c.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("initializing speaker: %w", err)
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Frequency returns the pitch used for an effect.
func (c *Chime) Frequency(kind effects.Kind) float64 {
	i := int(kind) - 1
	if i < 0 {
		i = 0
	}
	return c.cfg.Frequency * intervals[i%len(intervals)]
}

// Play queues the tone for kind.
func (c *Chime) Play(kind effects.Kind) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	d := time.Duration(c.cfg.DurationMS) * time.Millisecond
	speaker.Lock()
	c.mixer.Add(bell(c.Frequency(kind), d, c.rate, 0.4))
	speaker.Unlock()
}

// OnEffectChange matches the simulation's effect callback; only starts chime.
func (c *Chime) OnEffectChange(active bool, effect string) {
	if !active {
		return
	}
	if kind, ok := effects.ParseKind(effect); ok {
		c.Play(kind)
	}
}

// Close silences pending tones and releases the speaker.
func (c *Chime) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	c.initialized = false
}

package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/itsjaydesu/jayfolio-sub000/config"
	"github.com/itsjaydesu/jayfolio-sub000/effects"
)

func TestToneLengthAndRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	tn := newTone(660, 100*time.Millisecond, rate)

	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for {
		n, ok := tn.Stream(buf)
		for i := 0; i < n; i++ {
			if math.Abs(buf[i][0]) > 1 {
				t.Fatalf("sample %d out of range: %v", total+i, buf[i][0])
			}
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			break
		}
	}
	if total != rate.N(100*time.Millisecond) {
		t.Errorf("expected %d samples, got %d", rate.N(100*time.Millisecond), total)
	}
	if peak < 0.5 {
		t.Errorf("tone too quiet, peak %v", peak)
	}
}

func TestToneStartsSilent(t *testing.T) {
	tn := newTone(440, 50*time.Millisecond, beep.SampleRate(44100))
	buf := make([][2]float64, 1)
	tn.Stream(buf)
	if buf[0][0] != 0 {
		t.Errorf("first sample should be silent, got %v", buf[0][0])
	}
}

func TestBellMixesPartials(t *testing.T) {
	s := bell(440, 80*time.Millisecond, beep.SampleRate(22050), 1)
	buf := make([][2]float64, 256)
	n, ok := s.Stream(buf)
	if !ok || n == 0 {
		t.Fatal("expected bell to stream")
	}
	nonzero := false
	for i := 0; i < n; i++ {
		if buf[i][0] != 0 {
			nonzero = true
			break
		}
	}
	if !nonzero {
		t.Error("expected audible bell")
	}
}

func TestChimeFrequencies(t *testing.T) {
	c := NewChime(config.AudioConfig{Frequency: 400, DurationMS: 100, SampleRate: 44100})
	if f := c.Frequency(effects.Jitter); f != 400 {
		t.Errorf("expected jitter at the base pitch, got %v", f)
	}
	if f := c.Frequency(effects.RiverFlow); f != 500 {
		t.Errorf("expected riverFlow a third up, got %v", f)
	}
}

func TestChimeSilentBeforeInit(t *testing.T) {
	c := NewChime(config.AudioConfig{Frequency: 400, DurationMS: 100, SampleRate: 44100})
	c.OnEffectChange(true, "spiralFlow")
	c.OnEffectChange(false, "")
	if c.mixer.Len() != 0 {
		t.Errorf("expected nothing queued before Init, got %d", c.mixer.Len())
	}
	c.Close()
}

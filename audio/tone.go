package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// tone is a sine partial with a linear attack and an exponential tail.
type tone struct {
	freq    float64
	phase   float64
	pos     int
	total   int
	attack  int
	rate    beep.SampleRate
	damping float64
}

func newTone(freq float64, d time.Duration, rate beep.SampleRate) *tone {
	total := rate.N(d)
	return &tone{
		freq:    freq,
		total:   total,
		attack:  rate.N(6 * time.Millisecond),
		rate:    rate,
		damping: 5 / float64(max(total, 1)),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}
		env := math.Exp(-float64(t.pos) * t.damping)
		if t.pos < t.attack {
			env *= float64(t.pos) / float64(t.attack)
		}
		v := math.Sin(2*math.Pi*t.phase) * env
		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// bell mixes a fundamental with a quieter fifth and octave.
func bell(freq float64, d time.Duration, rate beep.SampleRate, vol float64) beep.Streamer {
	mixed := beep.Mix(
		withVolume(newTone(freq, d, rate), 0.6),
		withVolume(newTone(freq*1.5, d*3/4, rate), 0.25),
		withVolume(newTone(freq*2, d/2, rate), 0.15),
	)
	return withVolume(mixed, vol)
}

// withVolume scales s linearly. Log2(0) is -Inf so zero is mapped to silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Package settings holds the field parameter record, its defaults, the
// per-section influence table, and the eased current/target model.
package settings

// Key identifies one field parameter.
type Key int

const (
	Amplitude Key = iota
	WaveXFrequency
	WaveYFrequency
	SwirlStrength
	SwirlFrequency
	AnimationSpeed
	PointSize
	MouseInfluence
	RippleStrength
	RippleSpeed
	RippleWidth
	RippleDecay
	Opacity
	AutoRotate
	ShowStats
	Brightness
	Contrast
	FogDensity

	numKeys
)

var keyNames = [numKeys]string{
	Amplitude:      "amplitude",
	WaveXFrequency: "waveXFrequency",
	WaveYFrequency: "waveYFrequency",
	SwirlStrength:  "swirlStrength",
	SwirlFrequency: "swirlFrequency",
	AnimationSpeed: "animationSpeed",
	PointSize:      "pointSize",
	MouseInfluence: "mouseInfluence",
	RippleStrength: "rippleStrength",
	RippleSpeed:    "rippleSpeed",
	RippleWidth:    "rippleWidth",
	RippleDecay:    "rippleDecay",
	Opacity:        "opacity",
	AutoRotate:     "autoRotate",
	ShowStats:      "showStats",
	Brightness:     "brightness",
	Contrast:       "contrast",
	FogDensity:     "fogDensity",
}

var keyIndex = func() map[string]Key {
	m := make(map[string]Key, numKeys)
	for k, name := range keyNames {
		m[name] = Key(k)
	}
	return m
}()

// String returns the camelCase wire name of the key.
func (k Key) String() string {
	if k < 0 || k >= numKeys {
		return "unknown"
	}
	return keyNames[k]
}

// ParseKey resolves a wire name. Unknown names return false.
func ParseKey(name string) (Key, bool) {
	k, ok := keyIndex[name]
	return k, ok
}

// IsBool reports whether the key is a toggle rather than a numeric parameter.
func (k Key) IsBool() bool {
	return k == AutoRotate || k == ShowStats
}

// Keys returns every key in declaration order.
func Keys() []Key {
	keys := make([]Key, numKeys)
	for i := range keys {
		keys[i] = Key(i)
	}
	return keys
}

// Settings is the full parameter record driving the field.
type Settings struct {
	Amplitude      float64 `json:"amplitude" yaml:"amplitude"`
	WaveXFrequency float64 `json:"waveXFrequency" yaml:"wave_x_frequency"`
	WaveYFrequency float64 `json:"waveYFrequency" yaml:"wave_y_frequency"`
	SwirlStrength  float64 `json:"swirlStrength" yaml:"swirl_strength"`
	SwirlFrequency float64 `json:"swirlFrequency" yaml:"swirl_frequency"`
	AnimationSpeed float64 `json:"animationSpeed" yaml:"animation_speed"`
	PointSize      float64 `json:"pointSize" yaml:"point_size"`
	MouseInfluence float64 `json:"mouseInfluence" yaml:"mouse_influence"`
	RippleStrength float64 `json:"rippleStrength" yaml:"ripple_strength"`
	RippleSpeed    float64 `json:"rippleSpeed" yaml:"ripple_speed"`
	RippleWidth    float64 `json:"rippleWidth" yaml:"ripple_width"`
	RippleDecay    float64 `json:"rippleDecay" yaml:"ripple_decay"`
	Opacity        float64 `json:"opacity" yaml:"opacity"`
	AutoRotate     bool    `json:"autoRotate" yaml:"auto_rotate"`
	ShowStats      bool    `json:"showStats" yaml:"show_stats"`
	Brightness     float64 `json:"brightness" yaml:"brightness"`
	Contrast       float64 `json:"contrast" yaml:"contrast"`
	FogDensity     float64 `json:"fogDensity" yaml:"fog_density"`
}

// Defaults returns the compiled-in parameter table.
func Defaults() Settings {
	return Settings{
		Amplitude:      50,
		WaveXFrequency: 0.12,
		WaveYFrequency: 0.16,
		SwirlStrength:  0.8,
		SwirlFrequency: 0.004,
		AnimationSpeed: 0.28,
		PointSize:      26,
		MouseInfluence: 0.0025,
		RippleStrength: 35,
		RippleSpeed:    250,
		RippleWidth:    28,
		RippleDecay:    0.0015,
		Opacity:        0.75,
		AutoRotate:     true,
		ShowStats:      false,
		Brightness:     0.45,
		Contrast:       2.2,
		FogDensity:     0.0012,
	}
}

// field returns a pointer to the numeric field for k, or nil for toggles.
func (s *Settings) field(k Key) *float64 {
	switch k {
	case Amplitude:
		return &s.Amplitude
	case WaveXFrequency:
		return &s.WaveXFrequency
	case WaveYFrequency:
		return &s.WaveYFrequency
	case SwirlStrength:
		return &s.SwirlStrength
	case SwirlFrequency:
		return &s.SwirlFrequency
	case AnimationSpeed:
		return &s.AnimationSpeed
	case PointSize:
		return &s.PointSize
	case MouseInfluence:
		return &s.MouseInfluence
	case RippleStrength:
		return &s.RippleStrength
	case RippleSpeed:
		return &s.RippleSpeed
	case RippleWidth:
		return &s.RippleWidth
	case RippleDecay:
		return &s.RippleDecay
	case Opacity:
		return &s.Opacity
	case Brightness:
		return &s.Brightness
	case Contrast:
		return &s.Contrast
	case FogDensity:
		return &s.FogDensity
	}
	return nil
}

// Get returns the value for k. Toggles read as 0 or 1.
func (s *Settings) Get(k Key) float64 {
	switch k {
	case AutoRotate:
		return boolValue(s.AutoRotate)
	case ShowStats:
		return boolValue(s.ShowStats)
	}
	if f := s.field(k); f != nil {
		return *f
	}
	return 0
}

// Set writes v to k. Toggles treat any non-zero value as true.
func (s *Settings) Set(k Key, v float64) {
	switch k {
	case AutoRotate:
		s.AutoRotate = v != 0
		return
	case ShowStats:
		s.ShowStats = v != 0
		return
	}
	if f := s.field(k); f != nil {
		*f = v
	}
}

// Overlay writes every key present in p onto s.
func (s *Settings) Overlay(p Partial) {
	for k, v := range p {
		s.Set(k, v)
	}
}

// Partial returns s as a complete partial record.
func (s Settings) Partial() Partial {
	p := make(Partial, numKeys)
	for _, k := range Keys() {
		p[k] = s.Get(k)
	}
	return p
}

func boolValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

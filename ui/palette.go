package ui

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/itsjaydesu/jayfolio-sub000/effects"
	"github.com/itsjaydesu/jayfolio-sub000/scene"
)

// EffectHandle starts and stops timed effects and presets.
type EffectHandle interface {
	TriggerEffect(name string, combine bool) bool
	ClearEffects()
	ApplyFieldEffect(name string) bool
}

// PaletteEntry is one button in the effects palette.
type PaletteEntry struct {
	Name  string
	Label string
}

var presetLabels = map[string]string{
	scene.PresetCalmReset:  "Zen",
	scene.PresetSwirlPulse: "Swirl",
	scene.PresetDropBall:   "Drop Ball",
	scene.PresetShockwave:  "Shockwave",
}

// PaletteEntries lists the timed effects followed by the presets.
func PaletteEntries() []PaletteEntry {
	var out []PaletteEntry
	for _, k := range effects.Kinds() {
		out = append(out, PaletteEntry{Name: k.String(), Label: k.Label()})
	}
	for _, p := range scene.Presets() {
		out = append(out, PaletteEntry{Name: p, Label: presetLabels[p]})
	}
	return out
}

// EffectsPalette is a column of effect buttons. Holding shift layers an
// effect on top of the running ones where that is allowed.
type EffectsPalette struct {
	handle  EffectHandle
	entries []PaletteEntry
	x, y    int32
	width   int32
}

// NewEffectsPalette creates the palette anchored at (x, y).
func NewEffectsPalette(h EffectHandle, x, y, width int32) *EffectsPalette {
	return &EffectsPalette{handle: h, entries: PaletteEntries(), x: x, y: y, width: width}
}

// Activate runs entry i. Timed effects go through TriggerEffect so combine
// is honoured; presets through ApplyFieldEffect.
func (p *EffectsPalette) Activate(i int, combine bool) bool {
	if i < 0 || i >= len(p.entries) {
		return false
	}
	name := p.entries[i].Name
	if _, ok := effects.ParseKind(name); ok {
		return p.handle.TriggerEffect(name, combine)
	}
	return p.handle.ApplyFieldEffect(name)
}

const paletteRow = 24

// Bounds returns the palette rectangle.
func (p *EffectsPalette) Bounds() rl.Rectangle {
	return rl.Rectangle{
		X:      float32(p.x),
		Y:      float32(p.y),
		Width:  float32(p.width),
		Height: float32(paletteRow*(len(p.entries)+1) + 20),
	}
}

// Contains reports whether the palette covers (x, y).
func (p *EffectsPalette) Contains(x, y float32) bool {
	return rl.CheckCollisionPointRec(rl.Vector2{X: x, Y: y}, p.Bounds())
}

// Draw renders the palette.
func (p *EffectsPalette) Draw() {
	const row = paletteRow
	combine := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
	gui.GroupBox(p.Bounds(), "Effects")

	y := float32(p.y) + 12
	bw := float32(p.width) - 16
	for i, e := range p.entries {
		if gui.Button(rl.Rectangle{X: float32(p.x) + 8, Y: y, Width: bw, Height: row - 4}, e.Label) {
			p.Activate(i, combine)
		}
		y += row
	}
	if gui.Button(rl.Rectangle{X: float32(p.x) + 8, Y: y, Width: bw, Height: row - 4}, "Stop") {
		p.handle.ClearEffects()
	}
}
